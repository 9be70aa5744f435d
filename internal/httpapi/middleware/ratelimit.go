package middleware

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
)

// RateLimiter throttles routes with a Redis fixed-window counter. A nil
// client disables limiting; the middleware becomes a passthrough.
type RateLimiter struct {
	client    *redis.Client
	namespace string
}

// NewRateLimiter creates a new instance.
func NewRateLimiter(client *redis.Client, namespace string) *RateLimiter {
	return &RateLimiter{client: client, namespace: namespace}
}

// Limit returns middleware allowing at most limit requests per window for
// each key produced by keyFn.
func (rl *RateLimiter) Limit(bucket string, limit int, window time.Duration, keyFn func(*http.Request) string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if rl == nil || rl.client == nil {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := fmt.Sprintf("%s:ratelimit:%s:%s", rl.namespace, bucket, keyFn(r))

			count, err := rl.client.Incr(r.Context(), key).Result()
			if err != nil {
				// Redis being down must not take the API with it.
				next.ServeHTTP(w, r)
				return
			}
			if count == 1 {
				rl.client.Expire(r.Context(), key, window)
			}
			if count > int64(limit) {
				w.Header().Set("Content-Type", "application/json")
				w.Header().Set("Retry-After", fmt.Sprintf("%d", int(window.Seconds())))
				w.WriteHeader(http.StatusTooManyRequests)
				_ = json.NewEncoder(w).Encode(map[string]any{
					"error": "rate limit exceeded",
					"code":  "rate_limited",
				})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
