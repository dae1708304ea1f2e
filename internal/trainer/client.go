package trainer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// PlanAPI defines the backend operations stride consumes. It is implemented
// by *Client and can be used for testing.
type PlanAPI interface {
	ListWorkouts(ctx context.Context, planID int64, week int) ([]Workout, error)
	UpdateWorkout(ctx context.Context, id int64, patch WorkoutPatch) (*Workout, error)
	UpsertNote(ctx context.Context, workoutID int64, patch NotePatch) (*RunNote, error)
	FetchCountdown(ctx context.Context, planID int64) (*Countdown, error)
	FetchSyncStatus(ctx context.Context) (*SyncStatus, error)
	TriggerSync(ctx context.Context, query SyncQuery) (*SyncResult, error)
}

// Ensure Client implements PlanAPI at compile time.
var _ PlanAPI = (*Client)(nil)

// Client talks to the training backend HTTP API.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	userAgent string
}

const (
	defaultAPIURL    = "http://127.0.0.1:8000/api"
	defaultUserAgent = "stride/0.1"
	requestTimeout   = 5 * time.Second
)

// NewClient builds a Client from the configured API base URL. The path
// component (typically /api) is preserved as a prefix for every request.
func NewClient(apiURL string) (*Client, error) {
	base, err := parseBaseURL(apiURL)
	if err != nil {
		return nil, err
	}
	return &Client{
		baseURL: base,
		http: &http.Client{
			Timeout: requestTimeout,
		},
		userAgent: defaultUserAgent,
	}, nil
}

// ListWorkouts retrieves the workouts of a plan, optionally scoped to one week.
func (c *Client) ListWorkouts(ctx context.Context, planID int64, week int) ([]Workout, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	values := url.Values{}
	values.Set("plan_id", strconv.FormatInt(planID, 10))
	if week > 0 {
		values.Set("week", strconv.Itoa(week))
	}
	var payload []Workout
	if err := c.do(ctx, http.MethodGet, "/workouts/", values, nil, &payload); err != nil {
		return nil, err
	}
	return payload, nil
}

// UpdateWorkout applies a partial update to a workout's plan fields.
func (c *Client) UpdateWorkout(ctx context.Context, id int64, patch WorkoutPatch) (*Workout, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	if len(patch) == 0 {
		return nil, fmt.Errorf("empty workout patch")
	}
	var payload Workout
	path := fmt.Sprintf("/workouts/%d", id)
	if err := c.do(ctx, http.MethodPatch, path, nil, patch, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// UpsertNote creates or updates the note attached to a workout. Only the
// keys present in the patch are touched server-side.
func (c *Client) UpsertNote(ctx context.Context, workoutID int64, patch NotePatch) (*RunNote, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	if len(patch) == 0 {
		return nil, fmt.Errorf("empty note patch")
	}
	var payload RunNote
	path := fmt.Sprintf("/notes/workout/%d", workoutID)
	if err := c.do(ctx, http.MethodPut, path, nil, patch, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// FetchCountdown retrieves race countdown stats for a plan.
func (c *Client) FetchCountdown(ctx context.Context, planID int64) (*Countdown, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	values := url.Values{}
	values.Set("plan_id", strconv.FormatInt(planID, 10))
	var payload Countdown
	if err := c.do(ctx, http.MethodGet, "/stats/countdown", values, nil, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// FetchSyncStatus checks the sync provider connection.
func (c *Client) FetchSyncStatus(ctx context.Context) (*SyncStatus, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	var payload SyncStatus
	if err := c.do(ctx, http.MethodGet, "/sync/garmin/status", nil, nil, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// SyncQuery configures /sync/garmin/activities requests. StartDate and
// EndDate are optional ISO day strings narrowing the sync window.
type SyncQuery struct {
	PlanID    int64
	StartDate string
	EndDate   string
}

// TriggerSync asks the backend to pull new activities from the provider.
func (c *Client) TriggerSync(ctx context.Context, query SyncQuery) (*SyncResult, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	values := url.Values{}
	values.Set("plan_id", strconv.FormatInt(query.PlanID, 10))
	if start := strings.TrimSpace(query.StartDate); start != "" {
		values.Set("start_date", start)
	}
	if end := strings.TrimSpace(query.EndDate); end != "" {
		values.Set("end_date", end)
	}
	var payload SyncResult
	if err := c.do(ctx, http.MethodPost, "/sync/garmin/activities", values, nil, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

func (c *Client) do(ctx context.Context, method, path string, values url.Values, body, dest any) error {
	reqURL := c.endpoint(path, values)

	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("api %s returned status %d", path, resp.StatusCode)
	}
	if dest == nil {
		return nil
	}
	decoder := json.NewDecoder(resp.Body)
	if err := decoder.Decode(dest); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// endpoint joins the base URL's path prefix with an operation path.
func (c *Client) endpoint(path string, values url.Values) string {
	u := *c.baseURL
	u.Path = strings.TrimSuffix(u.Path, "/") + path
	if values != nil {
		u.RawQuery = values.Encode()
	}
	return u.String()
}

func parseBaseURL(apiURL string) (*url.URL, error) {
	trimmed := strings.TrimSpace(apiURL)
	if trimmed == "" {
		trimmed = defaultAPIURL
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "http://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse api_url %q: %w", apiURL, err)
	}
	u.Path = strings.TrimSuffix(u.Path, "/")
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
