package sqlite

import (
	"context"
	"fmt"
	"time"
)

// RevokeToken marks token id as revoked until expiresAt
func (s *Storage) RevokeToken(ctx context.Context, tokenID string, expiresAt time.Time) error {
	query := `
		INSERT OR REPLACE INTO revoked_tokens (token_id, expires_at)
		VALUES (?, ?)
	`

	if _, err := s.db.ExecContext(ctx, query, tokenID, expiresAt.Unix()); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}

	return nil
}

// IsRevoked reports whether token id was revoked
func (s *Storage) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	var count int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM revoked_tokens WHERE token_id = ?`, tokenID,
	).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to check token: %w", err)
	}

	return count > 0, nil
}

// DeleteExpiredTokens removes revocations whose tokens have expired
func (s *Storage) DeleteExpiredTokens(ctx context.Context, now time.Time) (int, error) {
	result, err := s.db.ExecContext(ctx, `DELETE FROM revoked_tokens WHERE expires_at < ?`, now.Unix())
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired tokens: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return int(rows), nil
}
