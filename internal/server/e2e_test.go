package server_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/notekeeper/internal/client/api"
	"github.com/iudanet/notekeeper/internal/client/auth"
	"github.com/iudanet/notekeeper/internal/client/data"
	"github.com/iudanet/notekeeper/internal/client/storage/boltdb"
	"github.com/iudanet/notekeeper/internal/models"
	"github.com/iudanet/notekeeper/internal/server"
	"github.com/iudanet/notekeeper/internal/server/storage/sqlite"
)

// startServer поднимает настоящий API поверх SQLite в памяти
func startServer(t *testing.T) *api.Client {
	t.Helper()

	store, err := sqlite.New(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	srv := server.New(store, server.Options{
		Clock:          clockwork.NewRealClock(),
		JWTSecret:      "e2e-secret-0123456789",
		TokenTTL:       time.Hour,
		AuthRateLimit:  100,
		AuthRateWindow: time.Minute,
	})
	t.Cleanup(srv.Close)

	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)

	return api.NewClient(ts.URL)
}

func openBolt(t *testing.T, path string) *boltdb.Storage {
	t.Helper()
	store, err := boltdb.New(context.Background(), path)
	require.NoError(t, err)
	return store
}

func TestClientServer_SessionAndNotes(t *testing.T) {
	ctx := context.Background()
	client := startServer(t)
	dbPath := filepath.Join(t.TempDir(), "client.db")

	local := openBolt(t, dbPath)
	manager, err := auth.NewManager(ctx, client, local)
	require.NoError(t, err)
	require.False(t, manager.IsAuthenticated())

	// Регистрация сразу выполняет вход
	result, err := manager.Register(ctx, "user@example.com", "pw", "pw")
	require.NoError(t, err)
	require.NotNil(t, result.Login)
	assert.True(t, manager.IsAuthenticated())
	assert.Equal(t, &models.User{Email: "user@example.com", ID: 1}, manager.User())

	// Повторная регистрация — фиксированное сообщение о дубликате
	_, err = manager.Register(ctx, "USER@example.com", "pw", "pw")
	var dup *auth.DuplicateAccountError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, auth.DuplicateAccountMessage, dup.Message)
	assert.True(t, manager.IsAuthenticated())

	profile, err := manager.FetchUserData(ctx)
	require.NoError(t, err)
	assert.Equal(t, "user@example.com", profile.Email)

	notes := data.NewService(client, manager)

	first, err := notes.Add(ctx, "first", "alpha")
	require.NoError(t, err)
	_, err = notes.Add(ctx, "second", "beta")
	require.NoError(t, err)

	cached := notes.Notes()
	require.Len(t, cached, 2)
	assert.Equal(t, "first", cached[0].Title)
	assert.Equal(t, "second", cached[1].Title)

	require.NoError(t, notes.Remove(ctx, first.ID))
	cached = notes.Notes()
	require.Len(t, cached, 1)
	assert.Equal(t, "second", cached[0].Title)

	// Сессия переживает перезапуск клиента
	require.NoError(t, local.Close())
	local = openBolt(t, dbPath)
	t.Cleanup(func() { _ = local.Close() })

	restored, err := auth.NewManager(ctx, client, local)
	require.NoError(t, err)
	assert.Equal(t, manager.Token(), restored.Token())
	assert.Equal(t, manager.User(), restored.User())

	oldToken := restored.Token()
	require.NoError(t, restored.Logout(ctx))
	assert.False(t, restored.IsAuthenticated())

	// Токен отозван на сервере
	_, err = client.ListNotes(ctx, oldToken)
	code, ok := api.StatusCode(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, code)

	// Без токена запрос уходит без Authorization и отклоняется
	_, err = data.NewService(client, restored).FetchAll(ctx)
	code, ok = api.StatusCode(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, code)
}

func TestClientServer_LoginFailureKeepsState(t *testing.T) {
	ctx := context.Background()
	client := startServer(t)

	local := openBolt(t, filepath.Join(t.TempDir(), "client.db"))
	t.Cleanup(func() { _ = local.Close() })

	manager, err := auth.NewManager(ctx, client, local)
	require.NoError(t, err)

	_, err = manager.Register(ctx, "user@example.com", "pw", "pw")
	require.NoError(t, err)
	before := manager.Session()

	_, err = manager.Login(ctx, "user@example.com", "wrong")
	var remote *api.RemoteError
	require.ErrorAs(t, err, &remote)
	assert.Equal(t, http.StatusUnauthorized, remote.StatusCode)
	assert.Equal(t, "invalid credentials", remote.Message)

	assert.Equal(t, before, manager.Session())
}
