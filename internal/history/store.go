// Package history keeps a local SQLite log of finished downloads.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/ytget/easytube/internal/model"
	"github.com/ytget/easytube/internal/platform"
)

const (
	// DBFileName is the database file inside the per-user config directory
	DBFileName = "history.db"
	// DefaultLimit is used by Recent when no positive limit is given
	DefaultLimit = 20
	appDirName   = "easytube"
)

// Entry is one finished or failed download
type Entry struct {
	ID         int64
	TaskID     string
	URL        string
	Title      string
	Mode       model.Mode
	Folder     string
	OK         bool
	Error      string
	FinishedAt time.Time
}

// Store is a SQLite-backed history
type Store struct {
	db *sql.DB
}

// DefaultPath returns the history database location under the user config dir
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve config dir: %w", err)
	}
	return filepath.Join(dir, appDirName, DBFileName), nil
}

// Open opens (creating if needed) the database at path and ensures its schema
func Open(ctx context.Context, path string) (*Store, error) {
	if err := platform.CreateDirectoryIfNotExists(filepath.Dir(path)); err != nil {
		return nil, fmt.Errorf("failed to create history directory: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open history: %w", err)
	}
	// one writer at a time
	db.SetMaxOpenConns(1)

	s := &Store{db: db}
	if err := s.EnsureSchema(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// EnsureSchema creates the downloads table if it does not exist
func (s *Store) EnsureSchema(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `
CREATE TABLE IF NOT EXISTS downloads (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	task_id TEXT NOT NULL,
	url TEXT NOT NULL,
	title TEXT NOT NULL DEFAULT '',
	mode TEXT NOT NULL,
	folder TEXT NOT NULL,
	ok INTEGER NOT NULL,
	error TEXT NOT NULL DEFAULT '',
	finished_at INTEGER NOT NULL
);`)
	if err != nil {
		return fmt.Errorf("failed to create history schema: %w", err)
	}
	return nil
}

// Record appends an entry. A zero FinishedAt is stamped with the current time.
func (s *Store) Record(ctx context.Context, e Entry) error {
	if e.FinishedAt.IsZero() {
		e.FinishedAt = time.Now()
	}
	_, err := s.db.ExecContext(ctx, `
INSERT INTO downloads (task_id, url, title, mode, folder, ok, error, finished_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?);`,
		e.TaskID, e.URL, e.Title, string(e.Mode), e.Folder, e.OK, e.Error, e.FinishedAt.UTC().UnixMilli())
	if err != nil {
		return fmt.Errorf("failed to record download: %w", err)
	}
	return nil
}

// Recent returns up to limit entries, newest first
func (s *Store) Recent(ctx context.Context, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	rows, err := s.db.QueryContext(ctx, `
SELECT id, task_id, url, title, mode, folder, ok, error, finished_at
FROM downloads
ORDER BY finished_at DESC, id DESC
LIMIT ?;`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var (
			e        Entry
			mode     string
			finished int64
		)
		if err := rows.Scan(&e.ID, &e.TaskID, &e.URL, &e.Title, &mode, &e.Folder, &e.OK, &e.Error, &finished); err != nil {
			return nil, fmt.Errorf("failed to read history row: %w", err)
		}
		e.Mode = model.Mode(mode)
		e.FinishedAt = time.UnixMilli(finished)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Close releases the database
func (s *Store) Close() error {
	return s.db.Close()
}
