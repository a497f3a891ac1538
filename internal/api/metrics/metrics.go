// Package metrics defines the Prometheus metrics shared by the goals API client
// and the reference server. Metrics are registered on the default registry at init.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "lifeassist"

// Outcome label values for APIRequestsTotal.
const (
	OutcomeSuccess   = "success"
	OutcomeAPIError  = "api_error"
	OutcomeTransport = "transport_error"
)

// ── Client metrics ────────────────────────────────────────────────────────────

// APIRequestsTotal counts remote calls made by the client.
// Labels:
//   - operation: register, login, get_user, submit_goal, update_goal_status, update_profile, update_description
//   - outcome: success, api_error, transport_error
var APIRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "api_requests_total",
		Help:      "Total number of remote API calls, by operation and outcome.",
	},
	[]string{"operation", "outcome"},
)

// APIRequestDuration measures round-trip time of remote calls.
var APIRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "api_request_duration_seconds",
		Help:      "Duration of remote API calls, from request write to body decode.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"operation"},
)

// ── Reference server metrics ──────────────────────────────────────────────────

// RegistrationsTotal counts registration attempts on the reference server.
// Label:
//   - result: "created", "conflict" or "invalid"
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "server",
		Name:      "registrations_total",
		Help:      "Total number of registration attempts, by result.",
	},
	[]string{"result"},
)

// GoalsSubmittedTotal counts goals stored by the reference server.
var GoalsSubmittedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "server",
		Name:      "goals_submitted_total",
		Help:      "Total number of goals created through the reference server.",
	},
)
