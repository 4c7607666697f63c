package services

import (
	"context"
	stderrors "errors"
	"log"

	"jot/pkg/errors"
	"jot/pkg/models"
	"jot/pkg/storage"
)

// NoteService handles note business logic
type NoteService struct {
	store *storage.NoteStore
}

// NewNoteService creates a new note service
func NewNoteService(store *storage.NoteStore) *NoteService {
	return &NoteService{
		store: store,
	}
}

// GetAllNotes returns all notes, most recently updated first
func (s *NoteService) GetAllNotes(ctx context.Context) ([]*models.Note, error) {
	notes, err := s.store.GetAllNotes(ctx)
	if err != nil {
		appErr := errors.Wrap(err, errors.ErrTypeStore, "NOTE_LIST_FAILED",
			"failed to list notes").
			WithUserMessage("Unable to load notes")
		appErr.Log()
		return nil, appErr
	}
	return notes, nil
}

// GetNote returns a specific note by ID
func (s *NoteService) GetNote(ctx context.Context, id int64) (*models.Note, error) {
	note, err := s.store.GetNote(ctx, id)
	if err != nil {
		if stderrors.Is(err, storage.ErrNotFound) {
			appErr := errors.ErrNoteNotFound.WithContext("noteId", id)
			appErr.Log()
			return nil, appErr
		}

		appErr := errors.Wrap(err, errors.ErrTypeStore, "NOTE_READ_FAILED",
			"failed to read note").
			WithUserMessage("Unable to load the requested note").
			WithContext("noteId", id)
		appErr.Log()
		return nil, appErr
	}

	return note, nil
}

// CreateNote creates a new note after validating the title
func (s *NoteService) CreateNote(ctx context.Context, title, content string) (*models.Note, error) {
	validator := errors.NewValidator()
	if result := validator.ValidateNoteTitle(title); !result.IsValid {
		err := result.GetFirstError()
		err.Log()
		return nil, err
	}

	note, err := s.store.CreateNote(ctx, title, content)
	if err != nil {
		appErr := errors.Wrap(err, errors.ErrTypeStore, "NOTE_CREATE_FAILED",
			"failed to create note").
			WithUserMessage("Unable to save the note")
		appErr.Log()
		return nil, appErr
	}

	log.Printf("Note created successfully: %d", note.ID)
	return note, nil
}

// UpdateNote updates an existing note after validating the title
func (s *NoteService) UpdateNote(ctx context.Context, id int64, title, content string) (*models.Note, error) {
	validator := errors.NewValidator()
	if result := validator.ValidateNoteTitle(title); !result.IsValid {
		err := result.GetFirstError()
		err.Log()
		return nil, err
	}

	note, err := s.store.UpdateNote(ctx, id, title, content)
	if err != nil {
		if stderrors.Is(err, storage.ErrNotFound) {
			appErr := errors.ErrNoteNotFound.WithContext("noteId", id)
			appErr.Log()
			return nil, appErr
		}

		appErr := errors.Wrap(err, errors.ErrTypeStore, "NOTE_UPDATE_FAILED",
			"failed to update note").
			WithUserMessage("Unable to save changes").
			WithContext("noteId", id)
		appErr.Log()
		return nil, appErr
	}

	log.Printf("Note updated successfully: %d", note.ID)
	return note, nil
}

// DeleteNote permanently removes a note
func (s *NoteService) DeleteNote(ctx context.Context, id int64) error {
	if err := s.store.DeleteNote(ctx, id); err != nil {
		if stderrors.Is(err, storage.ErrNotFound) {
			appErr := errors.ErrNoteNotFound.WithContext("noteId", id)
			appErr.Log()
			return appErr
		}

		appErr := errors.Wrap(err, errors.ErrTypeStore, "NOTE_DELETE_FAILED",
			"failed to delete note").
			WithUserMessage("Unable to delete the note").
			WithContext("noteId", id)
		appErr.Log()
		return appErr
	}

	log.Printf("Note deleted successfully: %d", id)
	return nil
}

// Backup copies the database file aside and reports the new copy's path
func (s *NoteService) Backup() (string, error) {
	path, err := s.store.Backup()
	if err != nil {
		appErr := errors.Wrap(err, errors.ErrTypeStore, "BACKUP_FAILED",
			"failed to back up database").
			WithUserMessage("Unable to create backup")
		appErr.Log()
		return "", appErr
	}

	log.Printf("Backup created: %s", path)
	return path, nil
}
