// Package client implements the game-side view of the leaderboard: an HTTP
// client for the remote API layered over a local JSON mirror. Remote
// failures degrade silently to the mirror, so a finished run is never lost
// to a network error.
package client

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/froghouse/jumper/internal/leaderboard"
)

// History and mirror caps.
const (
	maxHistory   = 10 // Personal score history kept locally
	maxMirrorTop = 20 // Entries served from the mirror as the "global" view
)

// LocalState is everything the game persists on the player's machine:
// identity, preferences, personal history, and the fallback mirror of
// scores that could not reach (or came from) the remote leaderboard.
type LocalState struct {
	Username     string              `json:"username"`
	Character    string              `json:"character"`
	History      []leaderboard.Entry `json:"history"`
	GlobalMirror []leaderboard.Entry `json:"globalMirror"`
}

// LocalStore persists LocalState as a single JSON file.
type LocalStore struct {
	path string
}

// OpenLocal creates or opens the local store at the given path.
func OpenLocal(path string) (*LocalStore, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("client: cannot locate home directory: %w", err)
		}
		path = filepath.Join(home, ".jumper", "local.json")
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("client: cannot create directory %s: %w", dir, err)
	}
	return &LocalStore{path: path}, nil
}

// Load reads the local state. A missing file yields empty state.
func (s *LocalStore) Load() (LocalState, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return LocalState{}, nil
	}
	if err != nil {
		return LocalState{}, fmt.Errorf("client: cannot read %s: %w", s.path, err)
	}

	var state LocalState
	if err := json.Unmarshal(data, &state); err != nil {
		return LocalState{}, fmt.Errorf("client: cannot parse %s: %w", s.path, err)
	}
	return state, nil
}

// Save rewrites the local state.
func (s *LocalStore) Save(state LocalState) error {
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("client: cannot encode state: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("client: cannot write %s: %w", s.path, err)
	}
	return nil
}

// SetIdentity stores the chosen username and character.
func (s *LocalStore) SetIdentity(username, character string) error {
	state, err := s.Load()
	if err != nil {
		return err
	}
	state.Username = username
	state.Character = character
	return s.Save(state)
}

// AddHistory records a finished run in the personal history, which is kept
// ranked and capped at maxHistory.
func (s *LocalStore) AddHistory(entry leaderboard.Entry) error {
	state, err := s.Load()
	if err != nil {
		return err
	}

	state.History = append(state.History, entry)
	sortByScore(state.History)
	if len(state.History) > maxHistory {
		state.History = state.History[:maxHistory]
	}
	return s.Save(state)
}

// AddMirror appends an entry to the fallback global mirror. The mirror
// itself is uncapped; MirrorTop applies the view limit.
func (s *LocalStore) AddMirror(entry leaderboard.Entry) error {
	state, err := s.Load()
	if err != nil {
		return err
	}
	state.GlobalMirror = append(state.GlobalMirror, entry)
	return s.Save(state)
}

// MirrorTop returns the fallback view of the global leaderboard: mirror
// entries ranked by score, capped at maxMirrorTop.
func (s *LocalStore) MirrorTop() ([]leaderboard.Entry, error) {
	state, err := s.Load()
	if err != nil {
		return nil, err
	}

	entries := state.GlobalMirror
	sortByScore(entries)
	if len(entries) > maxMirrorTop {
		entries = entries[:maxMirrorTop]
	}
	return entries, nil
}

func sortByScore(entries []leaderboard.Entry) {
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Score != entries[j].Score {
			return entries[i].Score > entries[j].Score
		}
		return entries[i].Timestamp < entries[j].Timestamp
	})
}
