package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/iudanet/notekeeper/internal/models"
	"github.com/iudanet/notekeeper/internal/server/storage"
)

// ListNotes returns user's notes ordered by ID
func (s *Storage) ListNotes(ctx context.Context, userID int64) ([]models.Note, error) {
	query := `
		SELECT id, title, content
		FROM notes
		WHERE user_id = ?
		ORDER BY id
	`

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query notes: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	notes := make([]models.Note, 0)
	for rows.Next() {
		var note models.Note
		if err := rows.Scan(&note.ID, &note.Title, &note.Content); err != nil {
			return nil, fmt.Errorf("failed to scan note: %w", err)
		}
		notes = append(notes, note)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return notes, nil
}

// CreateNote stores a note and returns it with the assigned ID
func (s *Storage) CreateNote(ctx context.Context, userID int64, title, content string) (*models.Note, error) {
	query := `
		INSERT INTO notes (user_id, title, content, created_at)
		VALUES (?, ?, ?, ?)
	`

	result, err := s.db.ExecContext(ctx, query, userID, title, content, time.Now().UTC())
	if err != nil {
		return nil, fmt.Errorf("failed to insert note: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get note id: %w", err)
	}

	return &models.Note{ID: id, Title: title, Content: content}, nil
}

// DeleteNote removes user's note
func (s *Storage) DeleteNote(ctx context.Context, userID, noteID int64) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM notes WHERE id = ? AND user_id = ?`, noteID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete note: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return storage.ErrNoteNotFound
	}

	return nil
}
