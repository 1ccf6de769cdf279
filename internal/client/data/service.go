package data

import (
	"context"
	"log/slog"
	"sync"

	"github.com/iudanet/notekeeper/internal/client/api"
	"github.com/iudanet/notekeeper/internal/models"
	pkgapi "github.com/iudanet/notekeeper/pkg/api"
)

// TokenSource отдает текущий bearer токен сессии (пустой, если сессии нет)
type TokenSource interface {
	Token() string
}

// NotesAPI describes the remote notes endpoints used by the service
type NotesAPI interface {
	ListNotes(ctx context.Context, token string) ([]models.Note, error)
	CreateNote(ctx context.Context, token string, req pkgapi.CreateNoteRequest) (*models.Note, error)
	DeleteNote(ctx context.Context, token string, id int64) error
}

var _ NotesAPI = (*api.Client)(nil)

//go:generate moq -out service_mock.go . Service

// Service определяет интерфейс клиентского сервиса заметок
type Service interface {
	FetchAll(ctx context.Context) ([]models.Note, error)
	Add(ctx context.Context, title, content string) (*models.Note, error)
	Remove(ctx context.Context, id int64) error
	Notes() []models.Note
}

// service хранит последнюю загруженную с сервера копию заметок.
// После каждого изменения кэш перезагружается целиком.
type service struct {
	api    NotesAPI
	tokens TokenSource
	notes  []models.Note
	mu     sync.RWMutex
}

// NewService creates a new notes service
func NewService(notesAPI NotesAPI, tokens TokenSource) Service {
	return &service{
		api:    notesAPI,
		tokens: tokens,
	}
}

// FetchAll загружает все заметки и заменяет ими кэш.
// При ошибке кэш не меняется.
func (s *service) FetchAll(ctx context.Context) ([]models.Note, error) {
	notes, err := s.api.ListNotes(ctx, s.tokens.Token())
	if err != nil {
		return nil, err
	}
	if notes == nil {
		notes = []models.Note{}
	}

	s.mu.Lock()
	s.notes = notes
	s.mu.Unlock()

	slog.DebugContext(ctx, "notes reloaded", "count", len(notes))

	return clone(notes), nil
}

// Add создает заметку и перезагружает кэш
func (s *service) Add(ctx context.Context, title, content string) (*models.Note, error) {
	note, err := s.api.CreateNote(ctx, s.tokens.Token(), pkgapi.CreateNoteRequest{
		Title:   title,
		Content: content,
	})
	if err != nil {
		return nil, err
	}

	if _, err := s.FetchAll(ctx); err != nil {
		slog.WarnContext(ctx, "note created but reload failed", "id", note.ID, "error", err)
		return nil, err
	}

	return note, nil
}

// Remove удаляет заметку и перезагружает кэш
func (s *service) Remove(ctx context.Context, id int64) error {
	if err := s.api.DeleteNote(ctx, s.tokens.Token(), id); err != nil {
		return err
	}

	if _, err := s.FetchAll(ctx); err != nil {
		slog.WarnContext(ctx, "note deleted but reload failed", "id", id, "error", err)
		return err
	}

	return nil
}

// Notes возвращает копию кэша
func (s *service) Notes() []models.Note {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return clone(s.notes)
}

func clone(notes []models.Note) []models.Note {
	if notes == nil {
		return nil
	}
	out := make([]models.Note, len(notes))
	copy(out, notes)
	return out
}
