package auth

import (
	"encoding/base64"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// makeToken собирает токен header.payload.signature. Payload кодируется
// стандартным base64 с паддингом, как это делают некоторые серверы.
func makeToken(t *testing.T, payload any) string {
	t.Helper()

	header := base64.RawURLEncoding.EncodeToString([]byte(`{"alg":"HS256","typ":"JWT"}`))
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	return header + "." + base64.StdEncoding.EncodeToString(body) + ".signature"
}

func TestParseClaims(t *testing.T) {
	exp := time.Date(2030, 1, 2, 3, 4, 5, 0, time.UTC)

	tests := []struct {
		name      string
		token     string
		wantEmail string
		wantID    int64
		wantErr   bool
	}{
		{
			name:      "standard base64 payload",
			token:     makeToken(t, map[string]any{"data": map[string]any{"email": "a@b.com", "id": 7}}),
			wantEmail: "a@b.com",
			wantID:    7,
		},
		{
			name: "raw url payload",
			token: "h." + base64.RawURLEncoding.EncodeToString(
				[]byte(`{"data":{"email":"ü@example.com","id":42},"exp":1893553445}`)) + ".s",
			wantEmail: "ü@example.com",
			wantID:    42,
		},
		{
			name: "numeric sub",
			token: makeToken(t, map[string]any{
				"sub":  7,
				"data": map[string]any{"email": "a@b.com", "id": 7},
			}),
			wantEmail: "a@b.com",
			wantID:    7,
		},
		{
			name: "numeric jti and object aud",
			token: makeToken(t, map[string]any{
				"jti":  12345,
				"aud":  map[string]any{"app": "notes"},
				"data": map[string]any{"email": "a@b.com", "id": 7},
			}),
			wantEmail: "a@b.com",
			wantID:    7,
		},
		{
			name: "unparsable exp",
			token: makeToken(t, map[string]any{
				"exp":  "tomorrow",
				"data": map[string]any{"email": "a@b.com", "id": 7},
			}),
			wantEmail: "a@b.com",
			wantID:    7,
		},
		{
			name:    "two segments",
			token:   "header.payload",
			wantErr: true,
		},
		{
			name:    "four segments",
			token:   "a.b.c.d",
			wantErr: true,
		},
		{
			name:    "empty token",
			token:   "",
			wantErr: true,
		},
		{
			name:    "payload is not base64",
			token:   "h.@@@###.s",
			wantErr: true,
		},
		{
			name:    "payload is not json",
			token:   "h." + base64.RawURLEncoding.EncodeToString([]byte("not json")) + ".s",
			wantErr: true,
		},
		{
			name:    "no data claim",
			token:   makeToken(t, map[string]any{"sub": "7", "exp": exp.Unix()}),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := ParseClaims(tt.token)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrMalformedToken)
				assert.Nil(t, claims)
				return
			}

			require.NoError(t, err)
			user := claims.User()
			assert.Equal(t, tt.wantEmail, user.Email)
			assert.Equal(t, tt.wantID, user.ID)
		})
	}
}

func TestParseClaims_Expiry(t *testing.T) {
	exp := time.Date(2030, 1, 2, 3, 4, 5, 0, time.UTC)
	data := map[string]any{"email": "a@b.com", "id": 7}

	tests := []struct {
		name    string
		exp     any
		wantExp bool
	}{
		{name: "numeric exp", exp: exp.Unix(), wantExp: true},
		{name: "fractional exp", exp: float64(exp.Unix()) + 0.5, wantExp: true},
		{name: "string exp", exp: "tomorrow"},
		{name: "object exp", exp: map[string]any{"at": 1}},
		{name: "null exp", exp: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := ParseClaims(makeToken(t, map[string]any{"data": data, "exp": tt.exp}))
			require.NoError(t, err)
			assert.Equal(t, "a@b.com", claims.User().Email)

			if !tt.wantExp {
				assert.Nil(t, claims.ExpiresAt)
				return
			}
			require.NotNil(t, claims.ExpiresAt)
			assert.Equal(t, exp.Unix(), claims.ExpiresAt.Unix())
		})
	}

	t.Run("missing exp", func(t *testing.T) {
		claims, err := ParseClaims(makeToken(t, map[string]any{"data": data}))
		require.NoError(t, err)
		assert.Nil(t, claims.ExpiresAt)
	})
}

func TestClaims_UserWithoutData(t *testing.T) {
	c := &Claims{}
	assert.True(t, c.User().IsZero())
}

func TestErrTokenNotReceived_IsMalformed(t *testing.T) {
	assert.ErrorIs(t, ErrTokenNotReceived, ErrMalformedToken)
}
