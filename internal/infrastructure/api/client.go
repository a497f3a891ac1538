// Package api is the HTTP transport for the goals API.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/lifeassist/goals/internal/api/metrics"
	"github.com/lifeassist/goals/internal/core/domain"
	"github.com/lifeassist/goals/internal/core/ports"
)

const maxBodyBytes = 1 << 20

// Client executes the remote endpoints. One request per call, no retries.
type Client struct {
	base *url.URL
	http *http.Client
	log  zerolog.Logger
}

var _ ports.APIClient = (*Client)(nil)

// Option customises a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying *http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithTimeout sets a whole-request timeout. Zero keeps the transport default.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.http.Timeout = d
		}
	}
}

// WithLogger attaches a logger for per-request debug lines.
func WithLogger(log zerolog.Logger) Option {
	return func(c *Client) { c.log = log }
}

// NewClient builds a client for the API rooted at baseURL, e.g. "http://localhost:8080/api/".
func NewClient(baseURL string, opts ...Option) (*Client, error) {
	u, err := url.Parse(strings.TrimSpace(baseURL))
	if err != nil {
		return nil, fmt.Errorf("api client: parse base url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("api client: base url %q must be absolute", baseURL)
	}
	if !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}

	c := &Client{base: u, http: &http.Client{}, log: zerolog.Nop()}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

func (c *Client) Register(ctx context.Context, req ports.CredentialsRequest) (*ports.RegisterResponse, error) {
	var out ports.RegisterResponse
	if err := c.do(ctx, epRegister, nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Login(ctx context.Context, req ports.CredentialsRequest) (*ports.LoginResponse, error) {
	var out ports.LoginResponse
	if err := c.do(ctx, epLogin, nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetUser(ctx context.Context, userID string) (*ports.UserDataResponse, error) {
	var out ports.UserDataResponse
	if err := c.do(ctx, epGetUser, []string{userID}, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) SubmitGoal(ctx context.Context, userID string, req ports.GoalRequest) (*ports.GoalResponse, error) {
	var out ports.GoalResponse
	if err := c.do(ctx, epSubmitGoal, []string{userID}, req, &out); err != nil {
		return nil, err
	}
	if out.ID == "" {
		return nil, nil
	}
	return &out, nil
}

func (c *Client) UpdateGoalStatus(ctx context.Context, userID, goalID string, req ports.GoalStatusRequest) error {
	return c.do(ctx, epUpdateGoalStatus, []string{userID, goalID}, req, nil)
}

func (c *Client) UpdateProfile(ctx context.Context, userID string, req ports.UpdateProfileRequest) (*ports.UserDataResponse, error) {
	var out ports.UserDataResponse
	if err := c.do(ctx, epUpdateProfile, []string{userID}, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateDescription(ctx context.Context, userID string, req ports.UpdateDescriptionRequest) (*ports.UserDataResponse, error) {
	var out ports.UserDataResponse
	if err := c.do(ctx, epUpdateDescription, []string{userID}, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// do performs one exchange. out may be nil when the body is ignored; an empty
// success body leaves out untouched.
func (c *Client) do(ctx context.Context, ep endpoint, pathArgs []string, body, out any) (err error) {
	start := time.Now()
	outcome := metrics.OutcomeSuccess
	status := 0
	defer func() {
		elapsed := time.Since(start)
		metrics.APIRequestsTotal.WithLabelValues(ep.operation, outcome).Inc()
		metrics.APIRequestDuration.WithLabelValues(ep.operation).Observe(elapsed.Seconds())
		c.log.Debug().
			Str("operation", ep.operation).
			Int("status", status).
			Dur("elapsed", elapsed).
			Err(err).
			Msg("api call")
	}()

	var payload io.Reader
	if body != nil {
		raw, mErr := json.Marshal(body)
		if mErr != nil {
			outcome = metrics.OutcomeTransport
			return &domain.TransportError{Op: ep.operation, Err: fmt.Errorf("encode request: %w", mErr)}
		}
		payload = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, ep.method, c.base.String()+ep.expand(pathArgs...), payload)
	if err != nil {
		outcome = metrics.OutcomeTransport
		return &domain.TransportError{Op: ep.operation, Err: err}
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		outcome = metrics.OutcomeTransport
		return &domain.TransportError{Op: ep.operation, Err: err}
	}
	defer resp.Body.Close()
	status = resp.StatusCode

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		outcome = metrics.OutcomeTransport
		return &domain.TransportError{Op: ep.operation, Err: fmt.Errorf("read response: %w", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		outcome = metrics.OutcomeAPIError
		return &domain.APIError{StatusCode: resp.StatusCode, Message: errorMessage(resp.StatusCode, data)}
	}

	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		outcome = metrics.OutcomeTransport
		return &domain.TransportError{Op: ep.operation, Err: fmt.Errorf("decode response: %w", err)}
	}
	return nil
}

// errorMessage pulls the server's explanation out of an error body,
// falling back to the status text.
func errorMessage(code int, data []byte) string {
	var envelope struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if json.Unmarshal(data, &envelope) == nil {
		if envelope.Error != "" {
			return envelope.Error
		}
		if envelope.Message != "" {
			return envelope.Message
		}
	}
	return http.StatusText(code)
}
