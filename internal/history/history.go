// Package history provides SQLite-backed persistence for successfully sent
// thoughts. It is a local record for the history view, not an offline queue:
// failed sends are never stored and nothing here is ever retried.
package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// sentAtLayout pins the fractional seconds to nine digits. RFC3339Nano drops
// trailing zeros, which breaks the lexicographic ORDER BY on the sent_at
// column ('.' sorts before 'Z'); a fixed-width rendering keeps string order
// equal to time order.
const sentAtLayout = "2006-01-02T15:04:05.000000000Z07:00"

// Entry is one successfully sent thought.
type Entry struct {
	ID        int64
	ThoughtID string
	URL       string
	Thought   string
	SourceURL string
	SentAt    time.Time
}

// Store provides SQLite-backed persistence for sent thoughts.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the history database at path and ensures
// the schema is current.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create history dir: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open history db: %w", err)
	}
	if err := migrate(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Record inserts a sent thought and returns its row ID.
func (s *Store) Record(e Entry) (int64, error) {
	if s == nil || s.db == nil {
		return -1, fmt.Errorf("record send: store is nil")
	}
	if e.Thought == "" {
		return -1, fmt.Errorf("record send: thought is empty")
	}
	sentAt := e.SentAt
	if sentAt.IsZero() {
		sentAt = time.Now().UTC()
	}
	result, err := s.db.Exec(
		`INSERT INTO sends (thought_id, url, thought, source_url, sent_at) VALUES (?, ?, ?, ?, ?)`,
		e.ThoughtID, e.URL, e.Thought, e.SourceURL, sentAt.UTC().Format(sentAtLayout),
	)
	if err != nil {
		return -1, fmt.Errorf("record send: insert: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return -1, fmt.Errorf("record send: last insert id: %w", err)
	}
	return id, nil
}

// Recent returns up to limit sends, newest first.
func (s *Store) Recent(limit int) ([]Entry, error) {
	if s == nil || s.db == nil {
		return nil, fmt.Errorf("recent sends: store is nil")
	}
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.db.Query(
		`SELECT id, thought_id, url, thought, source_url, sent_at FROM sends ORDER BY sent_at DESC, id DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("recent sends: query: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var sentAt string
		if err := rows.Scan(&e.ID, &e.ThoughtID, &e.URL, &e.Thought, &e.SourceURL, &sentAt); err != nil {
			return nil, fmt.Errorf("recent sends: scan: %w", err)
		}
		parsed, err := time.Parse(time.RFC3339Nano, sentAt)
		if err != nil {
			return nil, fmt.Errorf("recent sends: parse sent_at %q: %w", sentAt, err)
		}
		e.SentAt = parsed
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("recent sends: rows: %w", err)
	}
	return entries, nil
}
