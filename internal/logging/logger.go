// Package logging настраивает структурированный логгер клиента.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/iudanet/notekeeper/internal/correlation"
)

// ParseLevel переводит строковый уровень в slog.Level.
// Неизвестные значения дают slog.LevelInfo.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// New создает логгер, пишущий в w.
// format: "json" или "text" (по умолчанию text).
func New(w io.Writer, level, format string) *slog.Logger {
	if w == nil {
		w = os.Stderr
	}

	opts := &slog.HandlerOptions{Level: ParseLevel(level)}

	var handler slog.Handler
	if format == "json" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(correlation.NewHandler(handler))
}

// Init создает логгер и делает его логгером по умолчанию
func Init(w io.Writer, level, format string) *slog.Logger {
	logger := New(w, level, format)
	slog.SetDefault(logger)
	return logger
}
