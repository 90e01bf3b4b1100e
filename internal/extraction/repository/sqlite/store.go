// Package sqlite is the persistent quota/history store, backed by SQLite in
// WAL mode. It is the production counterpart of the memory repositories.
package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"
)

// Store owns the database handle shared by the quota and history
// repositories.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore creates and initializes the SQLite database at dbPath.
func NewStore(dbPath string) (*Store, error) {
	dbPath = strings.TrimSpace(dbPath)
	if dbPath == "" {
		return nil, fmt.Errorf("sqlite db path is empty")
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA foreign_keys=ON",
		"PRAGMA synchronous=NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("exec %q: %w", p, err)
		}
	}

	store := &Store{db: db, path: dbPath}
	if err := store.ensureSchema(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ensure schema: %w", err)
	}
	return store, nil
}

func (s *Store) ensureSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS usage (
		user_id TEXT NOT NULL,
		date    TEXT NOT NULL,
		count   INTEGER NOT NULL DEFAULT 0,
		PRIMARY KEY(user_id, date)
	);

	CREATE TABLE IF NOT EXISTS results (
		id           TEXT NOT NULL,
		user_id      TEXT NOT NULL,
		url          TEXT NOT NULL DEFAULT '',
		title        TEXT NOT NULL DEFAULT '',
		tasks        TEXT NOT NULL DEFAULT '[]',
		completed_at TEXT NOT NULL,
		PRIMARY KEY(user_id, id)
	);

	CREATE INDEX IF NOT EXISTS idx_results_completed
		ON results(user_id, completed_at DESC);
	`
	if _, err := s.db.Exec(schema); err != nil {
		return err
	}
	return nil
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}
