package handlers

import (
	"encoding/json"
	"net/http"
	"path/filepath"
	"strconv"

	"github.com/go-chi/chi/v5"

	"jot/pkg/config"
	"jot/pkg/errors"
	"jot/pkg/services"
	"jot/pkg/summarize"
)

// APIHandlers contains API endpoint handlers
type APIHandlers struct {
	notes      *services.NoteService
	summarizer *summarize.Client
	config     *config.Config
}

// NewAPIHandlers creates a new API handlers instance
func NewAPIHandlers(notes *services.NoteService, summarizer *summarize.Client, config *config.Config) *APIHandlers {
	return &APIHandlers{
		notes:      notes,
		summarizer: summarizer,
		config:     config,
	}
}

type noteRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type summarizeRequest struct {
	Text string `json:"text"`
}

// GetNotesHandler returns all notes as JSON
func (h *APIHandlers) GetNotesHandler(w http.ResponseWriter, r *http.Request) {
	notes, err := h.notes.GetAllNotes(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, notes)
}

// GetNoteHandler returns a specific note by ID
func (h *APIHandlers) GetNoteHandler(w http.ResponseWriter, r *http.Request) {
	id, err := noteID(r)
	if err != nil {
		h.writeError(w, err)
		return
	}

	note, err := h.notes.GetNote(r.Context(), id)
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, note)
}

// CreateNoteHandler creates a new note
func (h *APIHandlers) CreateNoteHandler(w http.ResponseWriter, r *http.Request) {
	var req noteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, errors.New(errors.ErrTypeValidation, "INVALID_JSON", "invalid JSON body").
			WithUserMessage("Invalid JSON"))
		return
	}

	note, err := h.notes.CreateNote(r.Context(), req.Title, req.Content)
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, note)
}

// UpdateNoteHandler updates an existing note
func (h *APIHandlers) UpdateNoteHandler(w http.ResponseWriter, r *http.Request) {
	id, err := noteID(r)
	if err != nil {
		h.writeError(w, err)
		return
	}

	var req noteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, errors.New(errors.ErrTypeValidation, "INVALID_JSON", "invalid JSON body").
			WithUserMessage("Invalid JSON"))
		return
	}

	note, err := h.notes.UpdateNote(r.Context(), id, req.Title, req.Content)
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, note)
}

// DeleteNoteHandler deletes a note by ID
func (h *APIHandlers) DeleteNoteHandler(w http.ResponseWriter, r *http.Request) {
	id, err := noteID(r)
	if err != nil {
		h.writeError(w, err)
		return
	}

	if err := h.notes.DeleteNote(r.Context(), id); err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{
		"message": "Note deleted successfully",
	})
}

// SummarizeHandler proxies text to the summarization API
func (h *APIHandlers) SummarizeHandler(w http.ResponseWriter, r *http.Request) {
	var req summarizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, errors.New(errors.ErrTypeValidation, "INVALID_JSON", "invalid JSON body").
			WithUserMessage("Invalid JSON"))
		return
	}

	summary, err := h.summarizer.Summarize(r.Context(), req.Text)
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{
		"summary": summary,
	})
}

// BackupHandler creates a manual backup of the database file
func (h *APIHandlers) BackupHandler(w http.ResponseWriter, r *http.Request) {
	path, err := h.notes.Backup()
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{
		"message": "Backup created successfully",
		"file":    filepath.Base(path),
	})
}

// noteID parses the {id} URL parameter. A non-numeric id cannot match
// any stored note, so it reports not-found rather than a parse error.
func noteID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return 0, errors.ErrNoteNotFound.WithContext("noteId", chi.URLParam(r, "id"))
	}
	return id, nil
}

func (h *APIHandlers) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		// Headers are gone at this point; nothing left to do but log.
		errors.Wrap(err, errors.ErrTypeStore, "RESPONSE_ENCODE_FAILED",
			"failed to encode response").Log()
	}
}

func (h *APIHandlers) writeError(w http.ResponseWriter, err error) {
	apiErr, status := errors.ToAPIError(err, !h.config.IsProduction())
	h.writeJSON(w, status, apiErr)
}
