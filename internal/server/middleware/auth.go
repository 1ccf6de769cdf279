package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/iudanet/notekeeper/internal/server/handlers"
	"github.com/iudanet/notekeeper/internal/server/jwt"
	"github.com/iudanet/notekeeper/internal/server/storage"
)

// AuthMiddleware создает middleware для проверки JWT токена.
// Отозванные через logout токены отклоняются.
func AuthMiddleware(logger *slog.Logger, jwtService *jwt.Service, tokens storage.TokenStorage) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				logger.WarnContext(ctx, "missing Authorization header")
				writeError(w, "missing token", http.StatusUnauthorized)
				return
			}

			// Ожидаем формат: "Bearer <token>"
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
				logger.WarnContext(ctx, "invalid Authorization header format")
				writeError(w, "invalid token format", http.StatusUnauthorized)
				return
			}

			claims, err := jwtService.Validate(parts[1])
			if err != nil {
				logger.WarnContext(ctx, "invalid access token", "error", err)
				writeError(w, "invalid token", http.StatusUnauthorized)
				return
			}

			revoked, err := tokens.IsRevoked(ctx, claims.ID)
			if err != nil {
				logger.ErrorContext(ctx, "failed to check token revocation", "error", err)
				writeError(w, "internal server error", http.StatusInternalServerError)
				return
			}
			if revoked {
				logger.WarnContext(ctx, "revoked token used", "user_id", claims.Data.ID)
				writeError(w, "token has been revoked", http.StatusUnauthorized)
				return
			}

			logger.DebugContext(ctx, "user authenticated", "user_id", claims.Data.ID)

			next.ServeHTTP(w, r.WithContext(handlers.WithClaims(ctx, claims)))
		})
	}
}
