package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/cognicore/etymon/pkg/etymon/internalerr"
	"github.com/cognicore/etymon/pkg/etymon/store"
)

// sqliteStore implements the Store interface using SQLite
type sqliteStore struct {
	db *sql.DB
}

// Open opens a SQLite lookup cache with WAL mode enabled, creating the
// schema if needed.
func Open(ctx context.Context, path string) (store.Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", internalerr.ErrStoreUnavailable, err)
	}

	// Enable WAL mode for better concurrency
	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: %v", internalerr.ErrStoreUnavailable, err)
	}

	if err := initSchema(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	return &sqliteStore{db: db}, nil
}

// Close closes the database connection
func (s *sqliteStore) Close() error {
	return s.db.Close()
}

// initSchema creates tables if they don't exist
func initSchema(ctx context.Context, db *sql.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS lookups (
	word TEXT PRIMARY KEY,
	title TEXT NOT NULL,
	sections TEXT NOT NULL,
	fetched_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_lookups_fetched_at ON lookups(fetched_at);
`
	_, err := db.ExecContext(ctx, schema)
	return err
}

// GetLookup returns the cached lookup for a normalized word.
func (s *sqliteStore) GetLookup(ctx context.Context, word string) (store.Lookup, bool, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT word, title, sections, fetched_at FROM lookups WHERE word = ?",
		strings.ToLower(word))

	var l store.Lookup
	var sectionsJSON, fetchedAt string
	if err := row.Scan(&l.Word, &l.Title, &sectionsJSON, &fetchedAt); err != nil {
		if err == sql.ErrNoRows {
			return store.Lookup{}, false, nil
		}
		return store.Lookup{}, false, err
	}

	if err := json.Unmarshal([]byte(sectionsJSON), &l.Sections); err != nil {
		return store.Lookup{}, false, fmt.Errorf("decode sections: %w", err)
	}
	t, err := time.Parse(time.RFC3339Nano, fetchedAt)
	if err != nil {
		return store.Lookup{}, false, fmt.Errorf("decode fetched_at: %w", err)
	}
	l.FetchedAt = t
	return l, true, nil
}

// PutLookup inserts or replaces the cached lookup for its word.
func (s *sqliteStore) PutLookup(ctx context.Context, l store.Lookup) error {
	if l.Word == "" {
		return nil
	}
	if l.Sections == nil {
		l.Sections = []store.Section{}
	}

	sectionsJSON, err := json.Marshal(l.Sections)
	if err != nil {
		return fmt.Errorf("encode sections: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
INSERT INTO lookups (word, title, sections, fetched_at)
VALUES (?, ?, ?, ?)
ON CONFLICT(word) DO UPDATE SET
	title = excluded.title,
	sections = excluded.sections,
	fetched_at = excluded.fetched_at`,
		strings.ToLower(l.Word), l.Title, string(sectionsJSON),
		l.FetchedAt.UTC().Format(time.RFC3339Nano))
	return err
}

// PurgeBefore removes lookups fetched before cutoff.
func (s *sqliteStore) PurgeBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		"DELETE FROM lookups WHERE fetched_at < ?",
		cutoff.UTC().Format(time.RFC3339Nano))
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
