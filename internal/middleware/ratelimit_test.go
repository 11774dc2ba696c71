package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/pokecatch/pokecatch/internal/cache"
)

// countingLimiter is a per-key fixed window without expiry.
type countingLimiter struct {
	mu     sync.Mutex
	counts map[string]int
	keys   []string
	err    error
}

func (l *countingLimiter) CheckRateLimit(ctx context.Context, clientKey string, limit int, window time.Duration) (*cache.RateLimitResult, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.keys = append(l.keys, clientKey)
	if l.err != nil {
		return nil, l.err
	}
	if l.counts == nil {
		l.counts = make(map[string]int)
	}
	l.counts[clientKey]++
	count := l.counts[clientKey]

	res := &cache.RateLimitResult{
		Allowed:   count <= limit,
		Limit:     limit,
		Remaining: int64(max(limit-count, 0)),
		ResetAt:   time.Now().Add(window),
	}
	if !res.Allowed {
		res.RetryAfter = window
	}
	return res, nil
}

func newRateLimited(limiter RateLimiter, enabled bool) (http.Handler, *int) {
	calls := 0
	h := RateLimit(RateLimitConfig{
		Logger:   discardLogger(),
		Limiter:  limiter,
		Enabled:  enabled,
		Requests: 3,
		Window:   2 * time.Minute,
	})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusOK)
	}))
	return h, &calls
}

func TestRateLimit_BlocksAfterLimit(t *testing.T) {
	limiter := &countingLimiter{}
	handler, calls := newRateLimited(limiter, true)

	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodPost, "/login", nil)
		req.Header.Set("X-Forwarded-For", "203.0.113.7")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "3", rec.Header().Get("X-RateLimit-Limit"))
	}

	req := httptest.NewRequest(http.MethodPost, "/login", nil)
	req.Header.Set("X-Forwarded-For", "203.0.113.7")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.JSONEq(t, `{"message":"Too many requests"}`, rec.Body.String())
	assert.Equal(t, "120", rec.Header().Get("Retry-After"))
	assert.Equal(t, "0", rec.Header().Get("X-RateLimit-Remaining"))
	assert.Equal(t, 3, *calls)

	// A different client has its own window.
	req = httptest.NewRequest(http.MethodPost, "/login", nil)
	req.Header.Set("X-Forwarded-For", "198.51.100.1")
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRateLimit_FailsOpen(t *testing.T) {
	limiter := &countingLimiter{err: errors.New("redis: connection refused")}
	handler, calls := newRateLimited(limiter, true)

	for i := 0; i < 5; i++ {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/pokemon/pikachu", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
	}
	assert.Equal(t, 5, *calls)
}

func TestRateLimit_Disabled(t *testing.T) {
	limiter := &countingLimiter{}
	handler, calls := newRateLimited(limiter, false)

	for i := 0; i < 5; i++ {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
	}
	assert.Equal(t, 5, *calls)
	assert.Empty(t, limiter.keys)
}

func TestClientKey(t *testing.T) {
	tests := []struct {
		name string
		xff  string
		want string
	}{
		{"no header", "", "default"},
		{"single", "203.0.113.7", "203.0.113.7"},
		{"chain takes first", "203.0.113.7, 10.0.0.1, 10.0.0.2", "203.0.113.7"},
		{"blank first entry", " , 10.0.0.1", "default"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.xff != "" {
				req.Header.Set("X-Forwarded-For", tt.xff)
			}
			assert.Equal(t, tt.want, clientKey(req))
		})
	}
}
