package storage

import (
	"context"

	"github.com/iudanet/notekeeper/internal/models"
)

// NoteStorage defines interface for notes persistence.
// Every operation is scoped to the owner.
type NoteStorage interface {
	// ListNotes returns user's notes ordered by ID.
	// Returns empty slice if user has no notes
	ListNotes(ctx context.Context, userID int64) ([]models.Note, error)

	// CreateNote stores a note and returns it with the assigned ID
	CreateNote(ctx context.Context, userID int64, title, content string) (*models.Note, error)

	// DeleteNote removes user's note.
	// Returns ErrNoteNotFound if note doesn't exist or belongs to another user
	DeleteNote(ctx context.Context, userID, noteID int64) error
}
