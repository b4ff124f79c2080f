package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/froghouse/jumper/internal/leaderboard"
)

// SQLiteStore persists the entry set in a SQLite database. It implements the
// same whole-set Load/Save contract as FileStore; Save replaces the table
// contents in one transaction.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite creates or opens a SQLite store at the given path.
// It creates the parent directories if needed and runs migrations.
func OpenSQLite(dbPath string) (*SQLiteStore, error) {
	dbPath, err := expandHome(dbPath)
	if err != nil {
		return nil, err
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &SQLiteStore{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}
	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *SQLiteStore) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS entries (
			id TEXT PRIMARY KEY,
			score INTEGER NOT NULL,
			username TEXT NOT NULL,
			character TEXT NOT NULL,
			date TEXT NOT NULL,
			time TEXT NOT NULL,
			timestamp INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_entries_rank ON entries(score DESC, timestamp ASC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Load reads the whole entry set.
func (s *SQLiteStore) Load() ([]leaderboard.Entry, error) {
	rows, err := s.db.Query(
		`SELECT id, score, username, character, date, time, timestamp
		 FROM entries
		 ORDER BY score DESC, timestamp ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query entries: %w", err)
	}
	defer rows.Close()

	entries := []leaderboard.Entry{}
	for rows.Next() {
		var e leaderboard.Entry
		if err := rows.Scan(&e.ID, &e.Score, &e.Username, &e.Character, &e.Date, &e.Time, &e.Timestamp); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return entries, nil
}

// Save replaces the table contents with the given entry set.
func (s *SQLiteStore) Save(entries []leaderboard.Entry) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM entries"); err != nil {
		return fmt.Errorf("storage: cannot clear entries: %w", err)
	}

	stmt, err := tx.Prepare(
		`INSERT INTO entries (id, score, username, character, date, time, timestamp)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, e := range entries {
		if _, err := stmt.Exec(e.ID, e.Score, e.Username, string(e.Character), e.Date, e.Time, e.Timestamp); err != nil {
			return fmt.Errorf("storage: cannot insert entry %s: %w", e.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit: %w", err)
	}
	return nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}
