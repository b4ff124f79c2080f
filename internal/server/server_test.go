package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/froghouse/jumper/internal/leaderboard"
	"github.com/froghouse/jumper/internal/storage"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	store, err := storage.OpenFile(filepath.Join(t.TempDir(), "leaderboard.json"))
	if err != nil {
		t.Fatalf("OpenFile() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	srv := New(DefaultConfig(), leaderboard.NewService(store))
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return ts
}

func postScore(t *testing.T, ts *httptest.Server, body string) *http.Response {
	t.Helper()
	resp, err := http.Post(ts.URL+"/api/leaderboard", "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatalf("POST failed: %v", err)
	}
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var v T
	if err := json.NewDecoder(resp.Body).Decode(&v); err != nil {
		t.Fatalf("decoding response failed: %v", err)
	}
	return v
}

func TestSubmitAndQuery(t *testing.T) {
	ts := newTestServer(t)

	resp := postScore(t, ts, `{"score": 42, "username": "alice", "character": "zeek"}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("POST status = %d, want 200", resp.StatusCode)
	}
	sub := decode[submitResponse](t, resp)
	if !sub.Success || sub.Message != "Score saved successfully" {
		t.Errorf("unexpected submit response: %+v", sub)
	}

	resp, err := http.Get(ts.URL + "/api/leaderboard")
	if err != nil {
		t.Fatalf("GET failed: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("GET status = %d, want 200", resp.StatusCode)
	}
	top := decode[topResponse](t, resp)
	if !top.Success || len(top.Scores) != 1 {
		t.Fatalf("unexpected leaderboard response: %+v", top)
	}
	e := top.Scores[0]
	if e.Score != 42 || e.Username != "alice" || e.Character != leaderboard.CharacterZeek {
		t.Errorf("unexpected entry: %+v", e)
	}
	if e.Timestamp == 0 || e.ID == "" || e.Date == "" || e.Time == "" {
		t.Errorf("server should assign timestamp, id, date, and time: %+v", e)
	}
}

func TestSubmitValidationStatus(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantError  string
	}{
		{"missing score", `{"username": "alice"}`, http.StatusBadRequest, "Invalid score or username"},
		{"negative score", `{"score": -5, "username": "alice"}`, http.StatusBadRequest, "Invalid score or username"},
		{"non-numeric score", `{"score": "high", "username": "alice"}`, http.StatusBadRequest, "Invalid score or username"},
		{"malformed json", `{score:`, http.StatusBadRequest, "Invalid score or username"},
		{"username length 1", `{"score": 10, "username": "a"}`, http.StatusBadRequest, "Username must be between 2 and 20 characters"},
		{"username length 21", fmt.Sprintf(`{"score": 10, "username": %q}`, strings.Repeat("x", 21)), http.StatusBadRequest, "Username must be between 2 and 20 characters"},
		{"username length 2", `{"score": 10, "username": "ab"}`, http.StatusOK, ""},
		{"username length 20", fmt.Sprintf(`{"score": 10, "username": %q}`, strings.Repeat("x", 20)), http.StatusOK, ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ts := newTestServer(t)
			resp := postScore(t, ts, tc.body)
			if resp.StatusCode != tc.wantStatus {
				t.Fatalf("status = %d, want %d", resp.StatusCode, tc.wantStatus)
			}
			if tc.wantError != "" {
				errResp := decode[errorResponse](t, resp)
				if errResp.Success || errResp.Error != tc.wantError {
					t.Errorf("error response = %+v, want %q", errResp, tc.wantError)
				}
			} else {
				resp.Body.Close()
			}
		})
	}
}

func TestSubmitFloorsFractionalScore(t *testing.T) {
	ts := newTestServer(t)

	resp := postScore(t, ts, `{"score": 3.7, "username": "alice"}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("POST status = %d, want 200", resp.StatusCode)
	}
	resp.Body.Close()

	resp, err := http.Get(ts.URL + "/api/leaderboard")
	if err != nil {
		t.Fatalf("GET failed: %v", err)
	}
	top := decode[topResponse](t, resp)
	if len(top.Scores) != 1 || top.Scores[0].Score != 3 {
		t.Errorf("fractional score should store as 3, got %+v", top.Scores)
	}
}

func TestTopReturnsAtMostTwenty(t *testing.T) {
	ts := newTestServer(t)

	for i := 1; i <= 30; i++ {
		resp := postScore(t, ts, fmt.Sprintf(`{"score": %d, "username": "alice"}`, i))
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("POST %d status = %d", i, resp.StatusCode)
		}
		resp.Body.Close()
	}

	resp, err := http.Get(ts.URL + "/api/leaderboard")
	if err != nil {
		t.Fatalf("GET failed: %v", err)
	}
	top := decode[topResponse](t, resp)
	if len(top.Scores) != leaderboard.MaxRanked {
		t.Fatalf("leaderboard returned %d entries, want %d", len(top.Scores), leaderboard.MaxRanked)
	}
	for i := range top.Scores {
		if want := 30 - i; top.Scores[i].Score != want {
			t.Errorf("rank %d score = %d, want %d", i+1, top.Scores[i].Score, want)
		}
	}
}

func TestUserStatsEndpoint(t *testing.T) {
	ts := newTestServer(t)

	for _, s := range []int{10, 50, 30} {
		resp := postScore(t, ts, fmt.Sprintf(`{"score": %d, "username": "Alice"}`, s))
		resp.Body.Close()
	}

	for _, name := range []string{"Alice", "alice"} {
		resp, err := http.Get(ts.URL + "/api/leaderboard/user/" + name)
		if err != nil {
			t.Fatalf("GET failed: %v", err)
		}
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("status = %d, want 200", resp.StatusCode)
		}
		stats := decode[userStatsResponse](t, resp)
		if !stats.Success || stats.TotalGames != 3 {
			t.Errorf("%s: total games = %d, want 3", name, stats.TotalGames)
		}
		if stats.PersonalBest == nil || stats.PersonalBest.Score != 50 {
			t.Errorf("%s: personal best = %+v, want score 50", name, stats.PersonalBest)
		}
	}

	// Unknown user: success with null personal best.
	resp, err := http.Get(ts.URL + "/api/leaderboard/user/nobody")
	if err != nil {
		t.Fatalf("GET failed: %v", err)
	}
	stats := decode[userStatsResponse](t, resp)
	if !stats.Success || stats.PersonalBest != nil || stats.TotalGames != 0 {
		t.Errorf("unknown user response = %+v", stats)
	}
}

func TestHealthEndpoint(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/api/health")
	if err != nil {
		t.Fatalf("GET failed: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	health := decode[healthResponse](t, resp)
	if health.Status != "OK" || health.Timestamp == "" {
		t.Errorf("unexpected health response: %+v", health)
	}
}

func TestCORSHeaders(t *testing.T) {
	ts := newTestServer(t)

	req, err := http.NewRequest(http.MethodOptions, ts.URL+"/api/leaderboard", nil)
	if err != nil {
		t.Fatal(err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("OPTIONS failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNoContent {
		t.Errorf("preflight status = %d, want 204", resp.StatusCode)
	}
	if got := resp.Header.Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("Access-Control-Allow-Origin = %q, want *", got)
	}
}
