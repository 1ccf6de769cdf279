package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
)

func TestRateLimiter_Allow(t *testing.T) {
	logger := setupTestLogger()

	t.Run("First requests within limit are allowed", func(t *testing.T) {
		limiter := NewRateLimiter(5, time.Minute, clockwork.NewFakeClock(), logger)
		defer limiter.Stop()

		for i := 0; i < 5; i++ {
			assert.True(t, limiter.Allow("192.168.1.1"), fmt.Sprintf("request %d should be allowed", i+1))
		}
	})

	t.Run("Requests over limit are denied", func(t *testing.T) {
		limiter := NewRateLimiter(3, time.Minute, clockwork.NewFakeClock(), logger)
		defer limiter.Stop()

		for i := 0; i < 3; i++ {
			assert.True(t, limiter.Allow("192.168.1.2"))
		}
		assert.False(t, limiter.Allow("192.168.1.2"), "request over limit should be denied")
	})

	t.Run("Different keys are tracked separately", func(t *testing.T) {
		limiter := NewRateLimiter(1, time.Minute, clockwork.NewFakeClock(), logger)
		defer limiter.Stop()

		assert.True(t, limiter.Allow("10.0.0.1"))
		assert.False(t, limiter.Allow("10.0.0.1"))
		assert.True(t, limiter.Allow("10.0.0.2"))
	})

	t.Run("Limit resets after window", func(t *testing.T) {
		clock := clockwork.NewFakeClock()
		limiter := NewRateLimiter(1, time.Minute, clock, logger)
		defer limiter.Stop()

		assert.True(t, limiter.Allow("10.0.0.1"))
		assert.False(t, limiter.Allow("10.0.0.1"))

		clock.Advance(time.Minute)

		assert.True(t, limiter.Allow("10.0.0.1"))
	})
}

func TestRateLimiter_CleanupOldBuckets(t *testing.T) {
	clock := clockwork.NewFakeClock()
	limiter := NewRateLimiter(1, time.Minute, clock, setupTestLogger())
	defer limiter.Stop()

	limiter.Allow("old")
	clock.Advance(90 * time.Second)
	limiter.Allow("fresh")
	clock.Advance(40 * time.Second)

	limiter.cleanupOldBuckets()

	assert.Equal(t, 1, limiter.Len())
}

func TestRateLimiter_StopTwice(t *testing.T) {
	limiter := NewRateLimiter(1, time.Minute, clockwork.NewFakeClock(), setupTestLogger())
	limiter.Stop()
	assert.NotPanics(t, limiter.Stop)
}

func TestRateLimiter_Middleware(t *testing.T) {
	limiter := NewRateLimiter(2, 30*time.Second, clockwork.NewFakeClock(), setupTestLogger())
	defer limiter.Stop()

	handler := limiter.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodPost, "/api/auth", nil)
		req.RemoteAddr = "203.0.113.7:5000"
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	}

	// Другой порт того же адреса — тот же клиент
	req := httptest.NewRequest(http.MethodPost, "/api/auth", nil)
	req.RemoteAddr = "203.0.113.7:6000"
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "30", w.Header().Get("Retry-After"))
	assert.Contains(t, w.Body.String(), "rate limit exceeded")
}

func TestGetClientIP(t *testing.T) {
	tests := []struct {
		name       string
		headers    map[string]string
		remoteAddr string
		want       string
	}{
		{name: "X-Forwarded-For list", headers: map[string]string{"X-Forwarded-For": "1.1.1.1, 2.2.2.2"}, remoteAddr: "3.3.3.3:1", want: "1.1.1.1"},
		{name: "X-Real-IP", headers: map[string]string{"X-Real-IP": "4.4.4.4"}, remoteAddr: "3.3.3.3:1", want: "4.4.4.4"},
		{name: "RemoteAddr with port", remoteAddr: "3.3.3.3:1234", want: "3.3.3.3"},
		{name: "RemoteAddr without port", remoteAddr: "3.3.3.3", want: "3.3.3.3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remoteAddr
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			assert.Equal(t, tt.want, getClientIP(req))
		})
	}
}
