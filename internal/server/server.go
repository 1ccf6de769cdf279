// Package server собирает HTTP API заметок: маршруты, middleware и
// фоновую очистку отозванных токенов.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/iudanet/notekeeper/internal/server/handlers"
	"github.com/iudanet/notekeeper/internal/server/jwt"
	"github.com/iudanet/notekeeper/internal/server/middleware"
	"github.com/iudanet/notekeeper/internal/server/storage"
)

const (
	healthPath      = "/api/health"
	shutdownTimeout = 10 * time.Second
)

// Store объединяет все хранилища, нужные серверу
type Store interface {
	storage.UserStorage
	storage.NoteStorage
	storage.TokenStorage
	handlers.Pinger
}

// Options задает параметры сервера
type Options struct {
	Clock          clockwork.Clock
	Logger         *slog.Logger
	Addr           string
	JWTSecret      string
	Version        string
	TokenTTL       time.Duration
	AuthRateWindow time.Duration
	AuthRateLimit  int
}

// Server — HTTP сервер API заметок
type Server struct {
	store   Store
	clock   clockwork.Clock
	logger  *slog.Logger
	limiter *middleware.RateLimiter
	handler http.Handler
	addr    string
	ttl     time.Duration
}

// New создает сервер поверх store
func New(store Store, opts Options) *Server {
	if opts.Clock == nil {
		opts.Clock = clockwork.NewRealClock()
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	s := &Server{
		store:  store,
		clock:  opts.Clock,
		logger: opts.Logger,
		addr:   opts.Addr,
		ttl:    opts.TokenTTL,
	}

	jwtService := jwt.NewService(opts.JWTSecret, opts.TokenTTL, opts.Clock)
	s.limiter = middleware.NewRateLimiter(opts.AuthRateLimit, opts.AuthRateWindow, opts.Clock, opts.Logger)

	authHandler := handlers.NewAuthHandler(opts.Logger, store, store, jwtService, opts.Clock)
	notesHandler := handlers.NewNotesHandler(opts.Logger, store)
	healthHandler := handlers.NewHealthHandler(opts.Logger, store, opts.Version)

	requireAuth := middleware.AuthMiddleware(opts.Logger, jwtService, store)
	limited := s.limiter.Middleware

	mux := http.NewServeMux()

	// Public endpoints
	mux.Handle("POST /api/reg", limited(http.HandlerFunc(authHandler.Register)))
	mux.Handle("POST /api/auth", limited(http.HandlerFunc(authHandler.Login)))
	mux.HandleFunc("GET "+healthPath, healthHandler.Health)

	// Protected endpoints
	mux.Handle("GET /api/auth", requireAuth(http.HandlerFunc(authHandler.Profile)))
	mux.Handle("DELETE /api/auth", requireAuth(http.HandlerFunc(authHandler.Logout)))
	mux.Handle("GET /api/notes", requireAuth(http.HandlerFunc(notesHandler.List)))
	mux.Handle("POST /api/notes", requireAuth(http.HandlerFunc(notesHandler.Create)))
	mux.Handle("DELETE /api/notes/{id}", requireAuth(http.HandlerFunc(notesHandler.Delete)))

	// Порядок: request id -> logging -> recovery -> маршруты
	var handler http.Handler = mux
	handler = middleware.RecoveryMiddleware(opts.Logger)(handler)
	handler = middleware.LoggingMiddleware(opts.Logger, healthPath)(handler)
	handler = middleware.RequestID(handler)
	s.handler = handler

	return s
}

// Handler возвращает корневой http.Handler
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Close освобождает фоновые ресурсы сервера
func (s *Server) Close() {
	s.limiter.Stop()
}

// Run слушает addr до отмены ctx, затем корректно завершает соединения
func (s *Server) Run(ctx context.Context) error {
	httpServer := &http.Server{
		Addr:              s.addr,
		Handler:           s.handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       2 * time.Minute,
		BaseContext: func(net.Listener) context.Context {
			return ctx
		},
	}

	go s.cleanupRevokedTokens(ctx)

	errC := make(chan error, 1)
	go func() {
		s.logger.Info("server listening", slog.String("addr", s.addr))
		errC <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errC:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	s.logger.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shutdown server: %w", err)
	}

	return nil
}

// cleanupRevokedTokens периодически удаляет записи об отозванных токенах,
// срок действия которых уже истек
func (s *Server) cleanupRevokedTokens(ctx context.Context) {
	interval := s.ttl
	if interval <= 0 || interval > time.Hour {
		interval = time.Hour
	}

	ticker := s.clock.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.Chan():
			s.purgeExpired(ctx)
		}
	}
}

func (s *Server) purgeExpired(ctx context.Context) {
	deleted, err := s.store.DeleteExpiredTokens(ctx, s.clock.Now())
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to delete expired tokens", slog.Any("error", err))
		return
	}
	if deleted > 0 {
		s.logger.InfoContext(ctx, "expired revoked tokens deleted", slog.Int("count", deleted))
	}
}
