// Package storage provides SQLite-based persistence for spoken announcements.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for the announcement transcript.
type Store struct {
	db *sql.DB
}

// Announcement is a single spoken line recorded in the transcript.
type Announcement struct {
	ID        int64
	SessionID string
	Source    string // "menu", "build", "worldgen"
	Kind      string
	Text      string
	Forced    bool
	CreatedAt time.Time
}

// SessionSummary describes one recorded narration session.
type SessionSummary struct {
	SessionID string
	Count     int
	StartedAt time.Time
	EndedAt   time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
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

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS announcements (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			session_id TEXT NOT NULL,
			source TEXT NOT NULL,
			kind TEXT NOT NULL,
			text TEXT NOT NULL,
			forced INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_announcements_session ON announcements(session_id, id);
		CREATE INDEX IF NOT EXISTS idx_announcements_created ON announcements(created_at);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveAnnouncement records one announcement. A zero CreatedAt is stamped with
// the current time. Returns the ID of the inserted record.
func (s *Store) SaveAnnouncement(a Announcement) (int64, error) {
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now()
	}
	result, err := s.db.Exec(
		`INSERT INTO announcements (session_id, source, kind, text, forced, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		a.SessionID, a.Source, a.Kind, a.Text, a.Forced, a.CreatedAt.UTC(),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save announcement: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentAnnouncements returns up to limit announcements in spoken order.
// An empty sessionID matches every session; otherwise only that session's
// lines are returned. The most recent lines are kept when limiting.
func (s *Store) RecentAnnouncements(sessionID string, limit int) ([]Announcement, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := s.db.Query(
		`SELECT id, session_id, source, kind, text, forced, created_at FROM (
			SELECT * FROM announcements
			WHERE ? = '' OR session_id = ?
			ORDER BY id DESC
			LIMIT ?
		 ) ORDER BY id ASC`,
		sessionID, sessionID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query announcements: %w", err)
	}
	defer rows.Close()

	var entries []Announcement
	for rows.Next() {
		var a Announcement
		var createdAt any
		if err := rows.Scan(&a.ID, &a.SessionID, &a.Source, &a.Kind, &a.Text, &a.Forced, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		a.CreatedAt = parseTime(createdAt)
		entries = append(entries, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// Sessions lists recorded sessions, most recently started first.
func (s *Store) Sessions(limit int) ([]SessionSummary, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT session_id, COUNT(*), MIN(created_at), MAX(created_at), MIN(id) AS first_id
		 FROM announcements
		 GROUP BY session_id
		 ORDER BY first_id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query sessions: %w", err)
	}
	defer rows.Close()

	var sessions []SessionSummary
	for rows.Next() {
		var ss SessionSummary
		var started, ended any
		var firstID int64
		if err := rows.Scan(&ss.SessionID, &ss.Count, &started, &ended, &firstID); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		ss.StartedAt = parseTime(started)
		ss.EndedAt = parseTime(ended)
		sessions = append(sessions, ss)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return sessions, nil
}

// ClearSession deletes every announcement of a session.
func (s *Store) ClearSession(sessionID string) error {
	_, err := s.db.Exec("DELETE FROM announcements WHERE session_id = ?", sessionID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear session: %w", err)
	}
	return nil
}

// parseTime handles the driver returning either time.Time or a string.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		for _, layout := range []string{
			"2006-01-02 15:04:05.999999999 -0700 MST",
			time.RFC3339Nano,
			"2006-01-02 15:04:05.999999999-07:00",
			"2006-01-02 15:04:05",
		} {
			if parsed, err := time.Parse(layout, t); err == nil {
				return parsed
			}
		}
	}
	return time.Time{}
}
