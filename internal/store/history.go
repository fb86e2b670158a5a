package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

// Entry is one submitted pick.
type Entry struct {
	ID          int64     `json:"id"`
	Command     string    `json:"command"`
	Locale      string    `json:"locale"`
	Granularity string    `json:"granularity"`
	Value       string    `json:"value"`
	To          string    `json:"to,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// History is the SQLite-backed log of submitted picks.
type History struct {
	db  *sql.DB
	now func() time.Time
}

// DefaultHistoryPath is history.sqlite under the config dir.
func DefaultHistoryPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "history.sqlite"), nil
}

// OpenHistory opens (creating if needed) the history database at path.
func OpenHistory(ctx context.Context, path string) (*History, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, errors.New("history path is empty")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	// modernc.org/sqlite driver name is "sqlite".
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// WAL enables one writer + many readers; busy_timeout helps avoid "database is locked" flakiness.
	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
		"PRAGMA busy_timeout=5000;",
	}
	for _, p := range pragmas {
		if _, err := db.ExecContext(ctx, p); err != nil {
			_ = db.Close()
			return nil, err
		}
	}
	h := &History{db: db, now: time.Now}
	if err := h.migrate(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return h, nil
}

func (h *History) migrate(ctx context.Context) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS picks (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			command TEXT NOT NULL,
			locale TEXT NOT NULL,
			granularity TEXT NOT NULL,
			value TEXT NOT NULL,
			to_value TEXT NOT NULL DEFAULT '',
			created_at_unixms INTEGER NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS picks_created_idx ON picks(created_at_unixms);`,
	}
	for _, s := range stmts {
		if _, err := h.db.ExecContext(ctx, s); err != nil {
			return fmt.Errorf("migrate history: %w", err)
		}
	}
	return nil
}

// Record appends e, filling ID and CreatedAt.
func (h *History) Record(ctx context.Context, e *Entry) error {
	if e == nil {
		return errors.New("nil entry")
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = h.now()
	}
	res, err := h.db.ExecContext(ctx,
		`INSERT INTO picks (command, locale, granularity, value, to_value, created_at_unixms) VALUES (?, ?, ?, ?, ?, ?)`,
		e.Command, e.Locale, e.Granularity, e.Value, e.To, e.CreatedAt.UnixMilli(),
	)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	e.ID = id
	return nil
}

// Recent returns up to limit entries, newest first. limit <= 0 means all.
func (h *History) Recent(ctx context.Context, limit int) ([]Entry, error) {
	q := `SELECT id, command, locale, granularity, value, to_value, created_at_unixms FROM picks ORDER BY created_at_unixms DESC, id DESC`
	args := []any{}
	if limit > 0 {
		q += ` LIMIT ?`
		args = append(args, limit)
	}
	rows, err := h.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Entry{}
	for rows.Next() {
		var e Entry
		var ms int64
		if err := rows.Scan(&e.ID, &e.Command, &e.Locale, &e.Granularity, &e.Value, &e.To, &ms); err != nil {
			return nil, err
		}
		e.CreatedAt = time.UnixMilli(ms).UTC()
		out = append(out, e)
	}
	return out, rows.Err()
}

func (h *History) Close() error {
	if h == nil || h.db == nil {
		return nil
	}
	return h.db.Close()
}
