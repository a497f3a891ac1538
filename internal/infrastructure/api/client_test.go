package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/lifeassist/goals/internal/api/metrics"
	"github.com/lifeassist/goals/internal/core/domain"
	"github.com/lifeassist/goals/internal/core/ports"
)

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	c, err := NewClient(srv.URL + "/api")
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	return c
}

func TestClient_Login_SendsCredentials(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/login" {
			t.Fatalf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		var body ports.CredentialsRequest
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if body.Email != "a@b.com" || body.Password != "x" {
			t.Fatalf("unexpected body: %+v", body)
		}
		_, _ = io.WriteString(w, `{"userId":"u1","email":"a@b.com"}`)
	})

	resp, err := c.Login(context.Background(), ports.CredentialsRequest{Email: "a@b.com", Password: "x"})
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if resp.UserID != "u1" || resp.Username != "" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestClient_APIErrorCarriesServerMessage(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = io.WriteString(w, `{"error":"invalid credentials"}`)
	})

	_, err := c.Login(context.Background(), ports.CredentialsRequest{Email: "a@b.com", Password: "bad"})
	var apiErr *domain.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %T %v", err, err)
	}
	if apiErr.StatusCode != http.StatusUnauthorized || apiErr.Message != "invalid credentials" {
		t.Fatalf("unexpected api error: %+v", apiErr)
	}
}

func TestClient_APIErrorFallsBackToStatusText(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = io.WriteString(w, "<html>upstream down</html>")
	})

	_, err := c.GetUser(context.Background(), "u1")
	var apiErr *domain.APIError
	if !errors.As(err, &apiErr) || apiErr.Message != "Bad Gateway" {
		t.Fatalf("expected status text fallback, got %v", err)
	}
}

func TestClient_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	c, err := NewClient(srv.URL)
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	srv.Close()

	_, err = c.GetUser(context.Background(), "u1")
	var te *domain.TransportError
	if !errors.As(err, &te) || te.Op != "get_user" {
		t.Fatalf("expected TransportError for get_user, got %v", err)
	}
}

func TestClient_UndecodableBodyIsTransportError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, "{not json")
	})

	_, err := c.GetUser(context.Background(), "u1")
	var te *domain.TransportError
	if !errors.As(err, &te) {
		t.Fatalf("expected TransportError, got %v", err)
	}
}

func TestClient_EscapesPathSegments(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut {
			t.Fatalf("expected PUT, got %s", r.Method)
		}
		if r.URL.EscapedPath() != "/api/users/u%2F1/goals/g%201/status" {
			t.Fatalf("unexpected path %s", r.URL.EscapedPath())
		}
		var body ports.GoalStatusRequest
		_ = json.NewDecoder(r.Body).Decode(&body)
		if body.Status != "completed" {
			t.Fatalf("unexpected status body: %+v", body)
		}
		w.WriteHeader(http.StatusOK)
	})

	if err := c.UpdateGoalStatus(context.Background(), "u/1", "g 1", ports.GoalStatusRequest{Status: "completed"}); err != nil {
		t.Fatalf("update failed: %v", err)
	}
}

func TestClient_SubmitGoal_AckReturnsNil(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		_, _ = io.WriteString(w, `{"message":"goal saved"}`)
	})

	goal, err := c.SubmitGoal(context.Background(), "u1", ports.GoalRequest{Title: "t"})
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if goal != nil {
		t.Fatalf("expected nil goal for bare ack, got %+v", goal)
	}
}

func TestClient_CountsRequests(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	counter := metrics.APIRequestsTotal.WithLabelValues("update_description", metrics.OutcomeAPIError)
	before := testutil.ToFloat64(counter)
	_, _ = c.UpdateDescription(context.Background(), "u1", ports.UpdateDescriptionRequest{Description: "d"})
	if got := testutil.ToFloat64(counter) - before; got != 1 {
		t.Fatalf("expected counter to grow by 1, grew by %v", got)
	}
}

func TestNewClient_RejectsRelativeURL(t *testing.T) {
	if _, err := NewClient("api/"); err == nil {
		t.Fatal("expected error for relative base url")
	}
}

func TestEndpoint_Expand(t *testing.T) {
	if got := epUpdateGoalStatus.expand("u1", "g1"); got != "users/u1/goals/g1/status" {
		t.Fatalf("unexpected path %s", got)
	}
	if got := epRegister.expand(); got != "register" {
		t.Fatalf("unexpected path %s", got)
	}
}
