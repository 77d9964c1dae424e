package goalstore

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/fyrsmithlabs/skillstack/internal/goal"
)

const (
	goalsPath     = "/api/goals/"
	dashboardPath = "/api/dashboard"

	defaultTimeout = 10 * time.Second
)

// Client talks to the GoalStore HTTP API.
type Client struct {
	baseURL string
	client  *http.Client
	logger  *zap.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout overrides the transport timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.client.Timeout = d }
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.client = hc }
}

// WithLogger attaches a logger for request-level debug logging.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Client) { c.logger = logger }
}

// New creates a GoalStore client for the given base URL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		client:  &http.Client{Timeout: defaultTimeout},
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// List fetches every goal in server order.
func (c *Client) List(ctx context.Context) ([]goal.Goal, error) {
	var goals []goal.Goal
	if err := c.do(ctx, http.MethodGet, goalsPath, nil, &goals); err != nil {
		return nil, fmt.Errorf("list goals: %w", err)
	}
	return goals, nil
}

// Create adds a new goal and returns the stored record with its assigned
// id and timestamps.
func (c *Client) Create(ctx context.Context, req goal.CreateRequest) (*goal.Goal, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("invalid goal: %w", err)
	}
	var created goal.Goal
	if err := c.do(ctx, http.MethodPost, goalsPath, req, &created); err != nil {
		return nil, fmt.Errorf("create goal: %w", err)
	}
	return &created, nil
}

// Update applies a partial mutation to the goal with the given id and
// returns the updated record.
func (c *Client) Update(ctx context.Context, id int64, req goal.UpdateRequest) (*goal.Goal, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("invalid update: %w", err)
	}
	var updated goal.Goal
	path := fmt.Sprintf("/api/goals/%d", id)
	if err := c.do(ctx, http.MethodPut, path, req, &updated); err != nil {
		return nil, fmt.Errorf("update goal %d: %w", id, err)
	}
	return &updated, nil
}

// Delete removes the goal with the given id.
func (c *Client) Delete(ctx context.Context, id int64) error {
	path := fmt.Sprintf("/api/goals/%d", id)
	if err := c.do(ctx, http.MethodDelete, path, nil, nil); err != nil {
		return fmt.Errorf("delete goal %d: %w", id, err)
	}
	return nil
}

// DashboardSummary is the optional pre-aggregated dashboard payload.
// TotalGoals is a pointer so a response missing the field can be told apart
// from a zero count.
type DashboardSummary struct {
	TotalGoals        *int            `json:"total_goals"`
	CompletedGoals    int             `json:"completed_goals"`
	InProgressGoals   int             `json:"in_progress_goals"`
	TotalHours        float64         `json:"total_hours"`
	CompletionRate    float64         `json:"completion_rate"`
	CategoryBreakdown []CategoryEntry `json:"category_breakdown"`
}

// CategoryEntry is one resource-type count in the summary.
type CategoryEntry struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// Dashboard fetches the optional server-side aggregate. Any failure,
// including a payload without total_goals, is reported as
// ErrDashboardUnavailable so callers fall back to local computation.
func (c *Client) Dashboard(ctx context.Context) (*DashboardSummary, error) {
	var summary DashboardSummary
	if err := c.do(ctx, http.MethodGet, dashboardPath, nil, &summary); err != nil {
		c.logger.Debug("dashboard aggregate fetch failed", zap.Error(err))
		return nil, fmt.Errorf("%w: %w", ErrDashboardUnavailable, err)
	}
	if summary.TotalGoals == nil {
		c.logger.Debug("dashboard aggregate missing total_goals")
		return nil, ErrDashboardUnavailable
	}
	return &summary, nil
}

// do performs one request and decodes the response into out (when non-nil).
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	c.logger.Debug("goalstore request",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", time.Since(start)))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{StatusCode: resp.StatusCode, Method: method, Path: path}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
