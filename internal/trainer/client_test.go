package trainer

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"
)

func TestParseBaseURL_DefaultsAndNormalizes(t *testing.T) {
	u, err := parseBaseURL("")
	if err != nil {
		t.Fatalf("parseBaseURL returned error: %v", err)
	}
	if u.String() != defaultAPIURL {
		t.Fatalf("base url = %q, want %q", u.String(), defaultAPIURL)
	}

	u, err = parseBaseURL("example.com:9000/api/")
	if err != nil {
		t.Fatalf("parseBaseURL returned error: %v", err)
	}
	if u.Scheme != "http" {
		t.Fatalf("scheme = %q, want http", u.Scheme)
	}
	if u.Path != "/api" {
		t.Fatalf("path = %q, want /api (trailing slash stripped)", u.Path)
	}

	u, err = parseBaseURL("https://host/api?x=1#frag")
	if err != nil {
		t.Fatalf("parseBaseURL returned error: %v", err)
	}
	if u.RawQuery != "" || u.Fragment != "" {
		t.Fatalf("url not normalized: %q", u.String())
	}
}

func TestClient_EndpointKeepsBasePrefix(t *testing.T) {
	c, err := NewClient("http://127.0.0.1:8000/api")
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	values := url.Values{}
	values.Set("plan_id", "1")
	got := c.endpoint("/workouts/", values)
	want := "http://127.0.0.1:8000/api/workouts/?plan_id=1"
	if got != want {
		t.Fatalf("endpoint = %q, want %q", got, want)
	}
}

func TestClient_FetchesEndpointsAndEncodesQueries(t *testing.T) {
	t.Parallel()

	var gotListQuery url.Values
	var gotSyncQuery url.Values
	var gotCountdownQuery url.Values
	var gotUserAgent string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserAgent = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "application/json")

		switch r.URL.Path {
		case "/api/workouts/":
			gotListQuery = r.URL.Query()
			_ = json.NewEncoder(w).Encode([]Workout{{ID: 42, Week: 3, WorkoutType: TypeLong}})
		case "/api/stats/countdown":
			gotCountdownQuery = r.URL.Query()
			_ = json.NewEncoder(w).Encode(Countdown{RaceName: "Paris Marathon", DaysLeft: 100})
		case "/api/sync/garmin/status":
			_ = json.NewEncoder(w).Encode(SyncStatus{Status: "connected"})
		case "/api/sync/garmin/activities":
			if r.Method != http.MethodPost {
				http.Error(w, "method", http.StatusMethodNotAllowed)
				return
			}
			gotSyncQuery = r.URL.Query()
			_ = json.NewEncoder(w).Encode(SyncResult{Status: "success", ActivitiesSynced: 3})
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL + "/api")
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	t.Cleanup(cancel)

	workouts, err := c.ListWorkouts(ctx, 1, 3)
	if err != nil {
		t.Fatalf("ListWorkouts returned error: %v", err)
	}
	if len(workouts) != 1 || workouts[0].ID != 42 {
		t.Fatalf("ListWorkouts = %#v, want 1 workout id=42", workouts)
	}
	if gotListQuery.Get("plan_id") != "1" || gotListQuery.Get("week") != "3" {
		t.Fatalf("ListWorkouts query = %v, want plan_id=1 week=3", gotListQuery)
	}

	countdown, err := c.FetchCountdown(ctx, 1)
	if err != nil {
		t.Fatalf("FetchCountdown returned error: %v", err)
	}
	if countdown.RaceName != "Paris Marathon" || countdown.DaysLeft != 100 {
		t.Fatalf("FetchCountdown = %#v, want Paris Marathon 100 days", countdown)
	}
	if gotCountdownQuery.Get("plan_id") != "1" {
		t.Fatalf("FetchCountdown query = %v, want plan_id=1", gotCountdownQuery)
	}

	status, err := c.FetchSyncStatus(ctx)
	if err != nil {
		t.Fatalf("FetchSyncStatus returned error: %v", err)
	}
	if !status.Connected() {
		t.Fatalf("FetchSyncStatus = %#v, want connected", status)
	}

	result, err := c.TriggerSync(ctx, SyncQuery{PlanID: 1, StartDate: "2026-03-01", EndDate: "2026-03-31"})
	if err != nil {
		t.Fatalf("TriggerSync returned error: %v", err)
	}
	if result.ActivitiesSynced != 3 {
		t.Fatalf("TriggerSync = %#v, want 3 activities", result)
	}
	if gotSyncQuery.Get("plan_id") != "1" ||
		gotSyncQuery.Get("start_date") != "2026-03-01" ||
		gotSyncQuery.Get("end_date") != "2026-03-31" {
		t.Fatalf("TriggerSync query = %v, want params encoded", gotSyncQuery)
	}

	if gotUserAgent == "" || !strings.HasPrefix(gotUserAgent, "stride/") {
		t.Fatalf("User-Agent = %q, want stride/*", gotUserAgent)
	}
}

func TestClient_UpdateWorkoutSendsPartialPatchWithNull(t *testing.T) {
	t.Parallel()

	var gotMethod, gotPath, gotContentType string
	var gotBody map[string]json.RawMessage

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotContentType = r.Header.Get("Content-Type")
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(Workout{ID: 7})
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL + "/api")
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	updated, err := c.UpdateWorkout(context.Background(), 7, WorkoutPatch{"target_distance": nil})
	if err != nil {
		t.Fatalf("UpdateWorkout returned error: %v", err)
	}
	if updated.ID != 7 {
		t.Fatalf("UpdateWorkout = %#v, want id=7", updated)
	}
	if gotMethod != http.MethodPatch || gotPath != "/api/workouts/7" {
		t.Fatalf("request = %s %s, want PATCH /api/workouts/7", gotMethod, gotPath)
	}
	if gotContentType != "application/json" {
		t.Fatalf("Content-Type = %q, want application/json", gotContentType)
	}
	raw, ok := gotBody["target_distance"]
	if !ok || string(raw) != "null" {
		t.Fatalf("body = %v, want explicit target_distance null", gotBody)
	}
	if len(gotBody) != 1 {
		t.Fatalf("body has %d keys, want only the edited field", len(gotBody))
	}
}

func TestClient_UpsertNoteRoutesToSubResource(t *testing.T) {
	t.Parallel()

	var gotMethod, gotPath string
	var gotBody map[string]json.RawMessage

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(RunNote{ID: 99, PlannedWorkoutID: 7})
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL + "/api")
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	note, err := c.UpsertNote(context.Background(), 7, NotePatch{"content": "felt great"})
	if err != nil {
		t.Fatalf("UpsertNote returned error: %v", err)
	}
	if note.ID != 99 {
		t.Fatalf("UpsertNote = %#v, want id=99", note)
	}
	if gotMethod != http.MethodPut || gotPath != "/api/notes/workout/7" {
		t.Fatalf("request = %s %s, want PUT /api/notes/workout/7", gotMethod, gotPath)
	}
	if string(gotBody["content"]) != `"felt great"` {
		t.Fatalf("body = %v, want content field", gotBody)
	}
}

func TestClient_EmptyPatchRejected(t *testing.T) {
	c, err := NewClient("127.0.0.1:1/api")
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	if _, err := c.UpdateWorkout(context.Background(), 1, WorkoutPatch{}); err == nil {
		t.Fatalf("UpdateWorkout returned nil error, want error for empty patch")
	}
	if _, err := c.UpsertNote(context.Background(), 1, NotePatch{}); err == nil {
		t.Fatalf("UpsertNote returned nil error, want error for empty patch")
	}
}

func TestClient_HTTPErrorAndDecodeError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/workouts/":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte("{not-json"))
		case "/api/stats/countdown":
			http.Error(w, "nope", http.StatusInternalServerError)
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL + "/api")
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	_, err = c.ListWorkouts(context.Background(), 1, 0)
	if err == nil || !strings.Contains(err.Error(), "decode response") {
		t.Fatalf("ListWorkouts error = %v, want decode response error", err)
	}

	_, err = c.FetchCountdown(context.Background(), 1)
	if err == nil || !strings.Contains(err.Error(), "returned status 500") {
		t.Fatalf("FetchCountdown error = %v, want status 500 error", err)
	}
}
