package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/notekeeper/internal/correlation"
	"github.com/iudanet/notekeeper/internal/server/storage/sqlite"
	"github.com/iudanet/notekeeper/pkg/api"
)

const testSecret = "test-secret-0123456789"

func newTestServer(t *testing.T, clock clockwork.Clock, rateLimit int) (*Server, *sqlite.Storage) {
	t.Helper()

	store, err := sqlite.New(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	srv := New(store, Options{
		Clock:          clock,
		JWTSecret:      testSecret,
		Version:        "test",
		TokenTTL:       time.Hour,
		AuthRateLimit:  rateLimit,
		AuthRateWindow: time.Minute,
	})
	t.Cleanup(srv.Close)

	return srv, store
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
	}
	req.RemoteAddr = "198.51.100.1:4000"

	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestServer_Health(t *testing.T) {
	srv, _ := newTestServer(t, clockwork.NewFakeClock(), 10)

	w := do(t, srv.Handler(), http.MethodGet, "/api/health", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok","version":"test"}`, w.Body.String())
	assert.NotEmpty(t, w.Header().Get(correlation.HeaderName))
}

func TestServer_Routes(t *testing.T) {
	srv, _ := newTestServer(t, clockwork.NewFakeClock(), 10)

	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
	}{
		{name: "notes require token", method: http.MethodGet, path: "/api/notes", wantStatus: http.StatusUnauthorized},
		{name: "profile requires token", method: http.MethodGet, path: "/api/auth", wantStatus: http.StatusUnauthorized},
		{name: "logout requires token", method: http.MethodDelete, path: "/api/auth", wantStatus: http.StatusUnauthorized},
		{name: "delete requires token", method: http.MethodDelete, path: "/api/notes/1", wantStatus: http.StatusUnauthorized},
		{name: "unknown path", method: http.MethodGet, path: "/api/unknown", wantStatus: http.StatusNotFound},
		{name: "wrong method", method: http.MethodPut, path: "/api/notes", wantStatus: http.StatusMethodNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(t, srv.Handler(), tt.method, tt.path, "")
			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestServer_AuthRateLimit(t *testing.T) {
	srv, _ := newTestServer(t, clockwork.NewFakeClock(), 2)

	body := `{"email":"a@b.com","password":"wrong"}`
	for i := 0; i < 2; i++ {
		w := do(t, srv.Handler(), http.MethodPost, "/api/auth", body)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	}

	w := do(t, srv.Handler(), http.MethodPost, "/api/auth", body)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)

	// Остальные маршруты лимит не затрагивает
	w = do(t, srv.Handler(), http.MethodGet, "/api/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestServer_NotesFlow(t *testing.T) {
	srv, _ := newTestServer(t, clockwork.NewFakeClock(), 10)
	h := srv.Handler()

	w := do(t, h, http.MethodPost, "/api/reg", `{"email":"a@b.com","password":"pw","confirm_password":"pw"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"email":"a@b.com","id":1}`, w.Body.String())

	w = do(t, h, http.MethodPost, "/api/reg", `{"email":"a@b.com","password":"pw","confirm_password":"pw"}`)
	require.Equal(t, http.StatusConflict, w.Code)

	w = do(t, h, http.MethodPost, "/api/auth", `{"email":"a@b.com","password":"pw"}`)
	require.Equal(t, http.StatusOK, w.Code)
	var token api.TokenResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&token))
	require.NotEmpty(t, token.AccessToken)

	authed := func(method, path, body string) *httptest.ResponseRecorder {
		var req *http.Request
		if body == "" {
			req = httptest.NewRequest(method, path, nil)
		} else {
			req = httptest.NewRequest(method, path, strings.NewReader(body))
		}
		req.Header.Set("Authorization", "Bearer "+token.AccessToken)
		w := httptest.NewRecorder()
		h.ServeHTTP(w, req)
		return w
	}

	w = authed(http.MethodPost, "/api/notes", `{"title":"first","content":"body"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"id":1,"title":"first","content":"body"}`, w.Body.String())

	w = authed(http.MethodGet, "/api/notes", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"id":1,"title":"first","content":"body"}]`, w.Body.String())

	w = authed(http.MethodDelete, "/api/notes/1", "")
	require.Equal(t, http.StatusNoContent, w.Code)

	w = authed(http.MethodDelete, "/api/auth", "")
	require.Equal(t, http.StatusNoContent, w.Code)

	// Отозванный токен больше не принимается
	w = authed(http.MethodGet, "/api/notes", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestServer_PurgeExpired(t *testing.T) {
	clock := clockwork.NewFakeClock()
	srv, store := newTestServer(t, clock, 10)
	ctx := context.Background()

	require.NoError(t, store.RevokeToken(ctx, "expired", clock.Now().Add(-time.Minute)))
	require.NoError(t, store.RevokeToken(ctx, "active", clock.Now().Add(time.Minute)))

	srv.purgeExpired(ctx)

	revoked, err := store.IsRevoked(ctx, "expired")
	require.NoError(t, err)
	assert.False(t, revoked)

	revoked, err = store.IsRevoked(ctx, "active")
	require.NoError(t, err)
	assert.True(t, revoked)
}
