package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// rateLimitPrefix is the Redis key prefix for per-client rate limit windows.
const rateLimitPrefix = "ratelimit:client:"

// RateLimitResult contains the result of a rate limit check.
type RateLimitResult struct {
	Allowed    bool
	Limit      int
	Remaining  int64
	ResetAt    time.Time
	RetryAfter time.Duration
}

// fixedWindowScript counts requests in the current window.
// The window starts with the first request and expires after window_ms.
var fixedWindowScript = redis.NewScript(`
	local key = KEYS[1]
	local window_ms = tonumber(ARGV[1])

	local count = redis.call('INCR', key)
	if count == 1 then
		redis.call('PEXPIRE', key, window_ms)
	end

	local ttl = redis.call('PTTL', key)
	if ttl < 0 then
		redis.call('PEXPIRE', key, window_ms)
		ttl = window_ms
	end

	return {count, ttl}
`)

// CheckRateLimit records a request for clientKey and reports whether it fits
// within limit requests per window.
func (c *Cache) CheckRateLimit(ctx context.Context, clientKey string, limit int, window time.Duration) (*RateLimitResult, error) {
	key := rateLimitPrefix + hashClientKey(clientKey)

	result, err := fixedWindowScript.Run(ctx, c.client,
		[]string{key},
		window.Milliseconds(),
	).Int64Slice()
	if err != nil {
		return nil, fmt.Errorf("rate limit script failed: %w", err)
	}

	return windowResult(result[0], time.Duration(result[1])*time.Millisecond, limit, time.Now()), nil
}

// windowResult converts a window count and remaining TTL into a RateLimitResult.
func windowResult(count int64, ttl time.Duration, limit int, now time.Time) *RateLimitResult {
	remaining := int64(limit) - count
	if remaining < 0 {
		remaining = 0
	}

	res := &RateLimitResult{
		Allowed:   count <= int64(limit),
		Limit:     limit,
		Remaining: remaining,
		ResetAt:   now.Add(ttl),
	}
	if !res.Allowed {
		// Round up so clients never retry before the window closes.
		res.RetryAfter = ttl.Truncate(time.Second)
		if res.RetryAfter < ttl {
			res.RetryAfter += time.Second
		}
	}
	return res
}

// hashClientKey creates a truncated SHA256 hash of a client identifier.
// This keeps raw IP addresses out of Redis.
func hashClientKey(key string) string {
	hash := sha256.Sum256([]byte(key))
	return hex.EncodeToString(hash[:8]) // 16 hex chars
}
