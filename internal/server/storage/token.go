package storage

import (
	"context"
	"time"
)

// TokenStorage хранит отозванные access токены (по jti) до истечения их срока
type TokenStorage interface {
	// RevokeToken marks token id as revoked until expiresAt.
	// Revoking the same id twice is not an error
	RevokeToken(ctx context.Context, tokenID string, expiresAt time.Time) error

	// IsRevoked reports whether token id was revoked
	IsRevoked(ctx context.Context, tokenID string) (bool, error)

	// DeleteExpiredTokens removes revocations whose tokens have expired.
	// Returns number of deleted records
	DeleteExpiredTokens(ctx context.Context, now time.Time) (int, error)
}
