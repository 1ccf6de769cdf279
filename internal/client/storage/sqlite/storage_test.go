package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/notekeeper/internal/client/storage"
)

func newTestStorage(t *testing.T) *Storage {
	t.Helper()

	store, err := New(context.Background(), ":memory:")
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = store.Close()
	})

	return store
}

func TestNew_RunsMigrations(t *testing.T) {
	store := newTestStorage(t)

	var name string
	err := store.DB().QueryRow(
		`SELECT name FROM sqlite_master WHERE type = 'table' AND name = 'local_storage'`,
	).Scan(&name)
	require.NoError(t, err)
	assert.Equal(t, "local_storage", name)
}

func TestStorage_SetGetDelete(t *testing.T) {
	ctx := context.Background()
	store := newTestStorage(t)

	_, err := store.Get(ctx, storage.KeyToken)
	assert.ErrorIs(t, err, storage.ErrKeyNotFound)

	require.NoError(t, store.Set(ctx, storage.KeyToken, "header.payload.sig"))
	require.NoError(t, store.Set(ctx, storage.KeyUser, `{"email":"a@b.com","id":7}`))

	token, err := store.Get(ctx, storage.KeyToken)
	require.NoError(t, err)
	assert.Equal(t, "header.payload.sig", token)

	// Upsert заменяет значение
	require.NoError(t, store.Set(ctx, storage.KeyToken, "other.token.sig"))
	token, err = store.Get(ctx, storage.KeyToken)
	require.NoError(t, err)
	assert.Equal(t, "other.token.sig", token)

	require.NoError(t, store.Delete(ctx, storage.KeyToken))
	_, err = store.Get(ctx, storage.KeyToken)
	assert.ErrorIs(t, err, storage.ErrKeyNotFound)

	user, err := store.Get(ctx, storage.KeyUser)
	require.NoError(t, err)
	assert.JSONEq(t, `{"email":"a@b.com","id":7}`, user)
}

func TestStorage_DeleteMissingKey(t *testing.T) {
	store := newTestStorage(t)
	assert.NoError(t, store.Delete(context.Background(), "absent"))
}

func TestStorage_FileReopen(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "local.sqlite")

	store, err := New(ctx, dbPath)
	require.NoError(t, err)
	require.NoError(t, store.Set(ctx, storage.KeyToken, "persisted"))
	require.NoError(t, store.Close())

	// Повторный запуск миграций на существующей БД не должен падать
	store, err = New(ctx, dbPath)
	require.NoError(t, err)
	defer func() {
		require.NoError(t, store.Close())
	}()

	got, err := store.Get(ctx, storage.KeyToken)
	require.NoError(t, err)
	assert.Equal(t, "persisted", got)
}

func TestStorage_Closed(t *testing.T) {
	ctx := context.Background()
	store, err := New(ctx, ":memory:")
	require.NoError(t, err)
	require.NoError(t, store.Close())

	_, err = store.Get(ctx, storage.KeyToken)
	assert.Error(t, err)
	assert.Error(t, store.Set(ctx, storage.KeyToken, "x"))
	assert.Error(t, store.Delete(ctx, storage.KeyToken))
}
