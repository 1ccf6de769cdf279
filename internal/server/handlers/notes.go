package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/iudanet/notekeeper/internal/server/storage"
	"github.com/iudanet/notekeeper/internal/validation"
	"github.com/iudanet/notekeeper/pkg/api"
)

// NotesHandler обрабатывает CRUD заметок владельца токена
type NotesHandler struct {
	logger *slog.Logger
	notes  storage.NoteStorage
}

// NewNotesHandler создает новый handler для заметок
func NewNotesHandler(logger *slog.Logger, notes storage.NoteStorage) *NotesHandler {
	return &NotesHandler{
		logger: logger,
		notes:  notes,
	}
}

// List обрабатывает GET /api/notes
func (h *NotesHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := GetUserID(ctx)
	if !ok {
		sendError(h.logger, w, msgUnauthorized, http.StatusUnauthorized)
		return
	}

	notes, err := h.notes.ListNotes(ctx, userID)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list notes", slog.Any("error", err))
		sendError(h.logger, w, msgInternal, http.StatusInternalServerError)
		return
	}

	sendJSON(h.logger, w, notes, http.StatusOK)
}

// Create обрабатывает POST /api/notes
func (h *NotesHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := GetUserID(ctx)
	if !ok {
		sendError(h.logger, w, msgUnauthorized, http.StatusUnauthorized)
		return
	}

	var req api.CreateNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WarnContext(ctx, "failed to decode note", slog.Any("error", err))
		sendError(h.logger, w, msgInvalidBody, http.StatusBadRequest)
		return
	}

	if err := validation.ValidateNoteTitle(req.Title); err != nil {
		sendError(h.logger, w, err.Error(), http.StatusBadRequest)
		return
	}

	note, err := h.notes.CreateNote(ctx, userID, req.Title, req.Content)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to create note", slog.Any("error", err))
		sendError(h.logger, w, msgInternal, http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "note created", slog.Int64("user_id", userID), slog.Int64("note_id", note.ID))

	sendJSON(h.logger, w, note, http.StatusCreated)
}

// Delete обрабатывает DELETE /api/notes/{id}
func (h *NotesHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := GetUserID(ctx)
	if !ok {
		sendError(h.logger, w, msgUnauthorized, http.StatusUnauthorized)
		return
	}

	noteID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || noteID <= 0 {
		sendError(h.logger, w, "invalid note id", http.StatusBadRequest)
		return
	}

	if err := h.notes.DeleteNote(ctx, userID, noteID); err != nil {
		if errors.Is(err, storage.ErrNoteNotFound) {
			sendError(h.logger, w, "note not found", http.StatusNotFound)
			return
		}
		h.logger.ErrorContext(ctx, "failed to delete note", slog.Any("error", err))
		sendError(h.logger, w, msgInternal, http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "note deleted", slog.Int64("user_id", userID), slog.Int64("note_id", noteID))

	w.WriteHeader(http.StatusNoContent)
}
