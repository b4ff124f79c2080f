// Package leaderboard implements the global score service: submission
// validation, descending ranking with a deterministic tie-break, and the
// top-100 retention policy over a pluggable durable store.
package leaderboard

// Character identifies the in-game character a score was achieved with.
type Character string

const (
	CharacterCooper Character = "cooper"
	CharacterZeek   Character = "zeek"
)

// Valid reports whether c is one of the known characters.
func (c Character) Valid() bool {
	return c == CharacterCooper || c == CharacterZeek
}

// Entry is a single persisted score record.
type Entry struct {
	Score     int       `json:"score"`
	Username  string    `json:"username"`
	Character Character `json:"character"`
	Date      string    `json:"date"`
	Time      string    `json:"time"`
	Timestamp int64     `json:"timestamp"` // Server-assigned, unix milliseconds
	ID        string    `json:"id"`        // Best-effort unique, time plus random fraction
}

// Store is the durable backend for the full entry set. Implementations do
// whole-set load/save; concurrent submissions can lose updates on the
// read-modify-write cycle, an accepted limitation of this service.
type Store interface {
	Load() ([]Entry, error)
	Save(entries []Entry) error
	Close() error
}
