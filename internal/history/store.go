package history

import (
	"database/sql"
	_ "embed"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

//go:embed schema.sql
var schemaSQL string

// Entry represents a single recently opened file
type Entry struct {
	ID         int
	Path       string
	LastOpened time.Time
	OpenCount  int
}

// Store manages recent-file persistence
type Store struct {
	db *sql.DB
}

// NewStore creates a new recent-files store
func NewStore(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	// Create schema
	_, err = db.Exec(schemaSQL)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Store{db: db}, nil
}

// Touch records that a file was opened, creating or bumping its entry
func (s *Store) Touch(path string) error {
	_, err := s.db.Exec(`
		INSERT INTO recent_files (path, last_opened, open_count)
		VALUES (?, CURRENT_TIMESTAMP, 1)
		ON CONFLICT(path) DO UPDATE SET
			last_opened = CURRENT_TIMESTAMP,
			open_count = open_count + 1`,
		path,
	)
	return err
}

// Recent retrieves the most recently opened files
func (s *Store) Recent(limit int) ([]Entry, error) {
	rows, err := s.db.Query(`
		SELECT id, path, last_opened, open_count
		FROM recent_files
		ORDER BY last_opened DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var lastOpened string

		err := rows.Scan(&e.ID, &e.Path, &lastOpened, &e.OpenCount)
		if err != nil {
			return nil, err
		}

		e.LastOpened, _ = time.Parse("2006-01-02 15:04:05", lastOpened)

		entries = append(entries, e)
	}

	return entries, nil
}

// Prune drops everything beyond the newest max entries
func (s *Store) Prune(max int) error {
	_, err := s.db.Exec(`
		DELETE FROM recent_files
		WHERE id NOT IN (
			SELECT id FROM recent_files
			ORDER BY last_opened DESC
			LIMIT ?
		)`, max)
	return err
}

// Remove deletes a single file from the history
func (s *Store) Remove(path string) error {
	_, err := s.db.Exec(`DELETE FROM recent_files WHERE path = ?`, path)
	return err
}

// Close closes the database connection
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}
