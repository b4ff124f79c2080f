package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/froghouse/jumper/internal/leaderboard"
)

// Client is the two-tier leaderboard store used by the game: a remote API
// first, the local mirror when the network is unavailable. A submission is
// attempted remotely exactly once; there is no retry policy.
type Client struct {
	baseURL string
	httpc   *http.Client
	local   *LocalStore
	logger  *log.Logger
}

// New creates a client for the API at baseURL (e.g. "http://localhost:3001")
// backed by the given local store.
func New(baseURL string, local *LocalStore) *Client {
	return &Client{
		baseURL: baseURL,
		httpc:   &http.Client{Timeout: 5 * time.Second},
		local:   local,
		logger: log.NewWithOptions(os.Stderr, log.Options{
			Prefix: "jumper-client",
		}),
	}
}

// Local returns the underlying local store.
func (c *Client) Local() *LocalStore {
	return c.local
}

// RecordScore persists a finished run: always into the personal history,
// and - when an identity is set - once to the remote leaderboard. A remote
// failure falls back to the local global mirror without surfacing an error;
// validation rejections are returned.
func (c *Client) RecordScore(ctx context.Context, score int) error {
	state, err := c.local.Load()
	if err != nil {
		return err
	}

	now := time.Now()
	entry := leaderboard.Entry{
		Score:     score,
		Username:  state.Username,
		Character: leaderboard.Character(state.Character),
		Date:      now.Format("1/2/2006"),
		Time:      now.Format("3:04:05 PM"),
		Timestamp: now.UnixMilli(),
	}

	if err := c.local.AddHistory(entry); err != nil {
		return err
	}

	if state.Username == "" {
		return nil
	}

	if err := c.submit(ctx, entry); err != nil {
		if isValidationError(err) {
			return err
		}
		c.logger.Warn("leaderboard unreachable, keeping score locally", "error", err)
		return c.local.AddMirror(entry)
	}
	return nil
}

// Top returns the global top 20: from the remote API when reachable,
// otherwise from the local mirror.
func (c *Client) Top(ctx context.Context) ([]leaderboard.Entry, error) {
	var payload struct {
		Success bool                `json:"success"`
		Scores  []leaderboard.Entry `json:"scores"`
	}
	if err := c.get(ctx, "/api/leaderboard", &payload); err != nil {
		c.logger.Warn("leaderboard unreachable, using local mirror", "error", err)
		return c.local.MirrorTop()
	}
	return payload.Scores, nil
}

// UserStats fetches a user's personal best and game count from the remote
// API. There is no local fallback for this query.
func (c *Client) UserStats(ctx context.Context, username string) (leaderboard.UserStats, error) {
	var payload struct {
		Success      bool               `json:"success"`
		PersonalBest *leaderboard.Entry `json:"personalBest"`
		TotalGames   int                `json:"totalGames"`
	}
	path := "/api/leaderboard/user/" + url.PathEscape(username)
	if err := c.get(ctx, path, &payload); err != nil {
		return leaderboard.UserStats{}, err
	}
	return leaderboard.UserStats{
		PersonalBest: payload.PersonalBest,
		TotalGames:   payload.TotalGames,
	}, nil
}

// Health reports whether the remote API is reachable.
func (c *Client) Health(ctx context.Context) error {
	var payload struct {
		Status string `json:"status"`
	}
	if err := c.get(ctx, "/api/health", &payload); err != nil {
		return err
	}
	if payload.Status != "OK" {
		return fmt.Errorf("client: unexpected health status %q", payload.Status)
	}
	return nil
}

// validationError marks a submission the server rejected; it must not fall
// back to the mirror.
type validationError struct {
	message string
}

func (e *validationError) Error() string {
	return "client: " + e.message
}

func isValidationError(err error) bool {
	var ve *validationError
	return errors.As(err, &ve)
}

func (c *Client) submit(ctx context.Context, entry leaderboard.Entry) error {
	score := float64(entry.Score)
	body, err := json.Marshal(map[string]any{
		"score":     score,
		"username":  entry.Username,
		"character": string(entry.Character),
		"date":      entry.Date,
		"time":      entry.Time,
	})
	if err != nil {
		return fmt.Errorf("client: cannot encode submission: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/leaderboard", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("client: cannot build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("client: submit failed: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
		return nil
	case resp.StatusCode == http.StatusBadRequest:
		var payload struct {
			Error string `json:"error"`
		}
		//nolint:errcheck // Fall back to a generic message on decode failure
		json.NewDecoder(resp.Body).Decode(&payload)
		if payload.Error == "" {
			payload.Error = "submission rejected"
		}
		return &validationError{message: payload.Error}
	default:
		return fmt.Errorf("client: submit failed with status %d", resp.StatusCode)
	}
}

func (c *Client) get(ctx context.Context, path string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("client: cannot build request: %w", err)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("client: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("client: %s returned status %d", path, resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("client: cannot decode response: %w", err)
	}
	return nil
}
