package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/pokecatch/pokecatch/internal/cache"
)

// defaultClientKey is shared by every request that carries no X-Forwarded-For.
const defaultClientKey = "default"

// RateLimiter records a request against a client's window.
type RateLimiter interface {
	CheckRateLimit(ctx context.Context, clientKey string, limit int, window time.Duration) (*cache.RateLimitResult, error)
}

// RateLimitConfig holds configuration for rate limiting middleware.
type RateLimitConfig struct {
	Logger   *slog.Logger
	Limiter  RateLimiter
	Enabled  bool
	Requests int
	Window   time.Duration
}

// RateLimit returns middleware that allows cfg.Requests per cfg.Window
// for each client. Limiter errors let the request through.
func RateLimit(cfg RateLimitConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !cfg.Enabled {
				next.ServeHTTP(w, r)
				return
			}

			client := clientKey(r)

			result, err := cfg.Limiter.CheckRateLimit(r.Context(), client, cfg.Requests, cfg.Window)
			if err != nil {
				cfg.Logger.Error("rate limit check failed",
					slog.String("error", err.Error()),
					slog.String("request_id", GetRequestID(r.Context())),
				)
				next.ServeHTTP(w, r)
				return
			}

			setRateLimitHeaders(w, result)

			if !result.Allowed {
				retryAfter := int(result.RetryAfter / time.Second)
				cfg.Logger.Warn("rate limit exceeded",
					slog.String("endpoint", r.Method+" "+r.URL.Path),
					slog.Int("retry_after_seconds", retryAfter),
					slog.String("request_id", GetRequestID(r.Context())),
				)

				w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
				writeMessage(w, http.StatusTooManyRequests, "Too many requests")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func setRateLimitHeaders(w http.ResponseWriter, result *cache.RateLimitResult) {
	w.Header().Set("X-RateLimit-Limit", strconv.Itoa(result.Limit))
	w.Header().Set("X-RateLimit-Remaining", strconv.FormatInt(result.Remaining, 10))
	w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(result.ResetAt.Unix(), 10))
}

// clientKey returns the first X-Forwarded-For entry, or defaultClientKey.
func clientKey(r *http.Request) string {
	xff := r.Header.Get("X-Forwarded-For")
	first, _, _ := strings.Cut(xff, ",")
	if first = strings.TrimSpace(first); first != "" {
		return first
	}
	return defaultClientKey
}
