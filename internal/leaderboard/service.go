package leaderboard

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"sort"
	"strings"
	"time"
	"unicode/utf8"
)

// Retention and query limits.
const (
	MaxStored = 100 // Entries kept in the durable store
	MaxRanked = 20  // Entries exposed by a ranked query
)

// Username length bounds, applied after trimming.
const (
	MinUsernameLen = 2
	MaxUsernameLen = 20
)

// Validation errors, returned synchronously and never retried.
var (
	ErrInvalidScore    = errors.New("leaderboard: score must be a non-negative number")
	ErrInvalidUsername = fmt.Errorf("leaderboard: username must be between %d and %d characters", MinUsernameLen, MaxUsernameLen)
)

// SubmitRequest carries a client submission. Score is a pointer so a missing
// field is distinguishable from zero; fractional scores are floored.
type SubmitRequest struct {
	Score     *float64
	Username  string
	Character string
	Date      string
	Time      string
}

// UserStats is the per-user query result.
type UserStats struct {
	PersonalBest *Entry
	TotalGames   int
}

// Service validates submissions and ranks entries over a Store.
type Service struct {
	store Store
	now   func() time.Time
}

// NewService creates a leaderboard service over the given store.
func NewService(store Store) *Service {
	return &Service{
		store: store,
		now:   time.Now,
	}
}

// Submit validates a score submission and persists it. Accepted entries get
// a server-assigned timestamp and id; the stored set is re-ranked and
// truncated to MaxStored before saving.
func (s *Service) Submit(req SubmitRequest) (Entry, error) {
	if req.Score == nil || math.IsNaN(*req.Score) || *req.Score < 0 {
		return Entry{}, ErrInvalidScore
	}

	username := strings.TrimSpace(req.Username)
	if n := utf8.RuneCountInString(username); n < MinUsernameLen || n > MaxUsernameLen {
		return Entry{}, ErrInvalidUsername
	}

	character := Character(req.Character)
	if !character.Valid() {
		character = CharacterCooper
	}

	now := s.now()
	date := req.Date
	if date == "" {
		date = now.Format("1/2/2006")
	}
	timeOfDay := req.Time
	if timeOfDay == "" {
		timeOfDay = now.Format("3:04:05 PM")
	}

	entry := Entry{
		Score:     int(math.Floor(*req.Score)),
		Username:  username,
		Character: character,
		Date:      date,
		Time:      timeOfDay,
		Timestamp: now.UnixMilli(),
		ID:        newID(now),
	}

	entries, err := s.store.Load()
	if err != nil {
		return Entry{}, fmt.Errorf("leaderboard: load failed: %w", err)
	}

	entries = append(entries, entry)
	rank(entries)
	if len(entries) > MaxStored {
		entries = entries[:MaxStored]
	}

	if err := s.store.Save(entries); err != nil {
		return Entry{}, fmt.Errorf("leaderboard: save failed: %w", err)
	}
	return entry, nil
}

// Top returns the ranked view: up to MaxRanked entries, highest score first.
func (s *Service) Top() ([]Entry, error) {
	entries, err := s.store.Load()
	if err != nil {
		return nil, fmt.Errorf("leaderboard: load failed: %w", err)
	}

	rank(entries)
	if len(entries) > MaxRanked {
		entries = entries[:MaxRanked]
	}
	return entries, nil
}

// UserStats returns the personal best and game count for a username,
// matched case-insensitively. PersonalBest is nil when the user has no
// recorded games.
func (s *Service) UserStats(username string) (UserStats, error) {
	entries, err := s.store.Load()
	if err != nil {
		return UserStats{}, fmt.Errorf("leaderboard: load failed: %w", err)
	}

	var stats UserStats
	for i := range entries {
		if !strings.EqualFold(entries[i].Username, username) {
			continue
		}
		stats.TotalGames++
		if stats.PersonalBest == nil || better(entries[i], *stats.PersonalBest) {
			e := entries[i]
			stats.PersonalBest = &e
		}
	}
	return stats, nil
}

// rank sorts entries by score descending. Equal scores order by earlier
// timestamp first, then id, so the ranking is a deterministic total order
// rather than a sort-stability artifact.
func rank(entries []Entry) {
	sort.Slice(entries, func(i, j int) bool {
		return better(entries[i], entries[j])
	})
}

func better(a, b Entry) bool {
	if a.Score != b.Score {
		return a.Score > b.Score
	}
	if a.Timestamp != b.Timestamp {
		return a.Timestamp < b.Timestamp
	}
	return a.ID < b.ID
}

// newID builds a best-effort unique token from the current time plus a
// random fraction. Collisions are possible but harmless: ids are only used
// to break ranking ties deterministically.
func newID(now time.Time) string {
	return fmt.Sprintf("%d.%09d", now.UnixMilli(), rand.Int63n(1_000_000_000))
}
