package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/notekeeper/internal/models"
	"github.com/iudanet/notekeeper/internal/server/storage"
)

func TestUserStorage_CreateUser(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	first := &models.Account{Email: "a@b.com", PasswordHash: "hash1", CreatedAt: time.Now()}
	require.NoError(t, s.CreateUser(ctx, first))
	assert.Equal(t, int64(1), first.ID)

	second := &models.Account{Email: "c@d.com", PasswordHash: "hash2", CreatedAt: time.Now()}
	require.NoError(t, s.CreateUser(ctx, second))
	assert.Equal(t, int64(2), second.ID)

	retrieved, err := s.GetUserByID(ctx, second.ID)
	require.NoError(t, err)
	assert.Equal(t, "c@d.com", retrieved.Email)
	assert.Equal(t, "hash2", retrieved.PasswordHash)
	assert.Nil(t, retrieved.LastLogin)
}

func TestUserStorage_CreateUser_DuplicateEmail(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	require.NoError(t, s.CreateUser(ctx, &models.Account{Email: "dup@b.com", PasswordHash: "h", CreatedAt: time.Now()}))

	tests := []struct {
		name  string
		email string
	}{
		{name: "same email", email: "dup@b.com"},
		{name: "different case", email: "DUP@b.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := s.CreateUser(ctx, &models.Account{Email: tt.email, PasswordHash: "h", CreatedAt: time.Now()})
			assert.ErrorIs(t, err, storage.ErrUserAlreadyExists)
		})
	}
}

func TestUserStorage_GetUserByEmail(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	account := &models.Account{Email: "a@b.com", PasswordHash: "h", CreatedAt: time.Now()}
	require.NoError(t, s.CreateUser(ctx, account))

	got, err := s.GetUserByEmail(ctx, "A@B.COM")
	require.NoError(t, err)
	assert.Equal(t, account.ID, got.ID)
	assert.Equal(t, models.User{Email: "a@b.com", ID: account.ID}, got.User())

	_, err = s.GetUserByEmail(ctx, "missing@b.com")
	assert.ErrorIs(t, err, storage.ErrUserNotFound)

	_, err = s.GetUserByID(ctx, 404)
	assert.ErrorIs(t, err, storage.ErrUserNotFound)
}

func TestUserStorage_UpdateLastLogin(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	account := &models.Account{Email: "a@b.com", PasswordHash: "h", CreatedAt: time.Now()}
	require.NoError(t, s.CreateUser(ctx, account))

	loginTime := time.Date(2030, 5, 6, 7, 8, 9, 0, time.UTC)
	require.NoError(t, s.UpdateLastLogin(ctx, account.ID, loginTime))

	got, err := s.GetUserByID(ctx, account.ID)
	require.NoError(t, err)
	require.NotNil(t, got.LastLogin)
	assert.True(t, loginTime.Equal(*got.LastLogin))

	err = s.UpdateLastLogin(ctx, 404, loginTime)
	assert.ErrorIs(t, err, storage.ErrUserNotFound)
}
