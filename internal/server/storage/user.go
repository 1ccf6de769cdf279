package storage

import (
	"context"
	"time"

	"github.com/iudanet/notekeeper/internal/models"
)

// UserStorage defines interface for account persistence
type UserStorage interface {
	// CreateUser creates a new account and assigns its ID.
	// Returns ErrUserAlreadyExists if email is taken
	CreateUser(ctx context.Context, account *models.Account) error

	// GetUserByEmail retrieves account by email
	// Returns ErrUserNotFound if account doesn't exist
	GetUserByEmail(ctx context.Context, email string) (*models.Account, error)

	// GetUserByID retrieves account by ID
	// Returns ErrUserNotFound if account doesn't exist
	GetUserByID(ctx context.Context, userID int64) (*models.Account, error)

	// UpdateLastLogin updates the last login timestamp
	UpdateLastLogin(ctx context.Context, userID int64, lastLogin time.Time) error
}
