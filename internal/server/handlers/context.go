package handlers

import (
	"context"

	"github.com/iudanet/notekeeper/internal/server/jwt"
)

// contextKey тип для ключей контекста
type contextKey string

// ClaimsKey ключ для хранения claims проверенного токена в контексте
const ClaimsKey contextKey = "claims"

// WithClaims возвращает контекст с claims аутентифицированного запроса
func WithClaims(ctx context.Context, claims *jwt.Claims) context.Context {
	return context.WithValue(ctx, ClaimsKey, claims)
}

// GetClaims извлекает claims из контекста запроса
func GetClaims(ctx context.Context) (*jwt.Claims, bool) {
	claims, ok := ctx.Value(ClaimsKey).(*jwt.Claims)
	return claims, ok && claims != nil
}

// GetUserID извлекает идентификатор пользователя из контекста запроса
func GetUserID(ctx context.Context) (int64, bool) {
	claims, ok := GetClaims(ctx)
	if !ok || claims.Data.ID == 0 {
		return 0, false
	}
	return claims.Data.ID, true
}
