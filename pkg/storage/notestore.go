package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	_ "github.com/mattn/go-sqlite3"

	"jot/pkg/models"
)

// ErrNotFound is returned when no note matches the requested id.
var ErrNotFound = errors.New("note not found")

const schema = `
CREATE TABLE IF NOT EXISTS notes (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	title      TEXT NOT NULL,
	content    TEXT NOT NULL DEFAULT '',
	created_at DATETIME NOT NULL,
	updated_at DATETIME NOT NULL
);
`

// NoteStore manages the SQLite database holding all notes.
type NoteStore struct {
	db      *sql.DB
	path    string
	watcher *fsnotify.Watcher
	wg      sync.WaitGroup
}

// Open opens (creating if necessary) the note database at path and
// prepares the schema. The parent directory is created when missing.
func Open(path string) (*NoteStore, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create data directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	store := &NoteStore{
		db:   db,
		path: path,
	}
	store.startWatching()

	return store, nil
}

// Path returns the database file location
func (s *NoteStore) Path() string {
	return s.path
}

// CreateNote inserts a new note. Both timestamps come from a single
// clock read so created_at == updated_at on the stored row.
func (s *NoteStore) CreateNote(ctx context.Context, title, content string) (*models.Note, error) {
	now := time.Now().UTC()

	result, err := s.db.ExecContext(ctx,
		`INSERT INTO notes (title, content, created_at, updated_at) VALUES (?, ?, ?, ?)`,
		title, content, now, now,
	)
	if err != nil {
		return nil, fmt.Errorf("insert note: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("get last insert id: %w", err)
	}

	return &models.Note{
		ID:        id,
		Title:     title,
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// GetNote retrieves a note by id
func (s *NoteStore) GetNote(ctx context.Context, id int64) (*models.Note, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, title, content, created_at, updated_at FROM notes WHERE id = ?`, id)

	note := &models.Note{}
	err := row.Scan(&note.ID, &note.Title, &note.Content, &note.CreatedAt, &note.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query note: %w", err)
	}

	return note, nil
}

// GetAllNotes returns all notes, most recently touched first. Id breaks
// ties so a fresh insert always sorts ahead of same-instant rows.
func (s *NoteStore) GetAllNotes(ctx context.Context) ([]*models.Note, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, title, content, created_at, updated_at FROM notes ORDER BY updated_at DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("query notes: %w", err)
	}
	defer rows.Close()

	notes := make([]*models.Note, 0)
	for rows.Next() {
		note := &models.Note{}
		if err := rows.Scan(&note.ID, &note.Title, &note.Content, &note.CreatedAt, &note.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan note: %w", err)
		}
		notes = append(notes, note)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate notes: %w", err)
	}

	return notes, nil
}

// UpdateNote overwrites title and content and refreshes updated_at. Id
// and created_at never change.
func (s *NoteStore) UpdateNote(ctx context.Context, id int64, title, content string) (*models.Note, error) {
	now := time.Now().UTC()

	result, err := s.db.ExecContext(ctx,
		`UPDATE notes SET title = ?, content = ?, updated_at = ? WHERE id = ?`,
		title, content, now, id,
	)
	if err != nil {
		return nil, fmt.Errorf("update note: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("get rows affected: %w", err)
	}
	if affected == 0 {
		return nil, ErrNotFound
	}

	return s.GetNote(ctx, id)
}

// DeleteNote permanently removes a note by id
func (s *NoteStore) DeleteNote(ctx context.Context, id int64) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM notes WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete note: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("get rows affected: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}

	return nil
}

// Close stops the file watcher and releases the database handle
func (s *NoteStore) Close() error {
	if s.watcher != nil {
		if err := s.watcher.Close(); err != nil {
			return err
		}
		s.wg.Wait()
	}
	return s.db.Close()
}
