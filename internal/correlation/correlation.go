// Package correlation связывает записи лога и исходящие HTTP запросы
// одной команды клиента общим идентификатором.
package correlation

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
)

// HeaderName — заголовок, в котором идентификатор уходит на сервер
const HeaderName = "X-Request-ID"

type contextKey struct{}

// NewID генерирует новый идентификатор запроса (UUID v4)
func NewID() string {
	return uuid.NewString()
}

// WithID возвращает контекст с идентификатором id
func WithID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, contextKey{}, id)
}

// ID извлекает идентификатор из контекста, ("", false) если его нет
func ID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(contextKey{}).(string)
	return id, ok && id != ""
}

// Handler оборачивает slog.Handler и добавляет атрибут "request_id",
// если контекст записи его содержит.
type Handler struct {
	inner slog.Handler
}

// NewHandler создает обертку над inner
func NewHandler(inner slog.Handler) *Handler {
	return &Handler{inner: inner}
}

func (h *Handler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.inner.Enabled(ctx, level)
}

func (h *Handler) Handle(ctx context.Context, r slog.Record) error {
	if id, ok := ID(ctx); ok {
		r.AddAttrs(slog.String("request_id", id))
	}
	if err := h.inner.Handle(ctx, r); err != nil {
		return fmt.Errorf("correlation handler: %w", err)
	}
	return nil
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &Handler{inner: h.inner.WithAttrs(attrs)}
}

func (h *Handler) WithGroup(name string) slog.Handler {
	return &Handler{inner: h.inner.WithGroup(name)}
}
