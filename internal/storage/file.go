// Package storage provides durable backends for the leaderboard entry set:
// a single-file JSON array store and a SQLite store using the pure-Go
// modernc.org/sqlite driver.
package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/froghouse/jumper/internal/leaderboard"
)

// FileStore persists the full entry set as one JSON array file, rewritten on
// every save. There is no locking: concurrent writers can lose updates on
// the read-modify-write cycle, an accepted limitation of the service.
type FileStore struct {
	path string
}

// OpenFile creates or opens a JSON file store at the given path.
// Parent directories are created and the file is initialized to an empty
// array on first run.
func OpenFile(path string) (*FileStore, error) {
	path, err := expandHome(path)
	if err != nil {
		return nil, err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := os.WriteFile(path, []byte("[]"), 0o644); err != nil {
			return nil, fmt.Errorf("storage: cannot initialize %s: %w", path, err)
		}
	}

	return &FileStore{path: path}, nil
}

// Load reads the whole entry set.
func (s *FileStore) Load() ([]leaderboard.Entry, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot read %s: %w", s.path, err)
	}

	var entries []leaderboard.Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("storage: cannot parse %s: %w", s.path, err)
	}
	return entries, nil
}

// Save rewrites the whole entry set.
func (s *FileStore) Save(entries []leaderboard.Entry) error {
	if entries == nil {
		entries = []leaderboard.Entry{}
	}
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("storage: cannot encode entries: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("storage: cannot write %s: %w", s.path, err)
	}
	return nil
}

// Close is a no-op for the file store.
func (s *FileStore) Close() error {
	return nil
}

// Open selects a backend by path extension: .db and .sqlite open a SQLite
// store, everything else a JSON file store.
func Open(path string) (leaderboard.Store, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".db", ".sqlite":
		return OpenSQLite(path)
	default:
		return OpenFile(path)
	}
}

// expandHome resolves a leading ~ to the user's home directory.
func expandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("storage: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}
