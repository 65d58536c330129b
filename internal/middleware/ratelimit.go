package middleware

import (
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/hrplatform/freelancer-api/internal/logger"
)

// RateLimiter enforces a per-client request ceiling using token-bucket
// limiters. State is in-process; a multi-instance deployment rate limits
// per instance.
type RateLimiter struct {
	// limiters stores one rate limiter per client key
	limiters sync.Map
	// perMinute is the sustained request allowance
	perMinute int
	// burst is the maximum burst size
	burst int
	// cleanupInterval is how often idle limiters are dropped
	cleanupInterval time.Duration
}

// limiterEntry holds a limiter and its last access time.
type limiterEntry struct {
	limiter    *rate.Limiter
	lastAccess time.Time
}

// NewRateLimiter allows requestsPerMinute sustained requests per client
// with the given burst.
func NewRateLimiter(requestsPerMinute, burst int) *RateLimiter {
	rl := &RateLimiter{
		perMinute:       requestsPerMinute,
		burst:           burst,
		cleanupInterval: 5 * time.Minute,
	}

	go rl.cleanup()

	return rl
}

// cleanup removes limiters that have not been accessed recently.
func (rl *RateLimiter) cleanup() {
	ticker := time.NewTicker(rl.cleanupInterval)
	defer ticker.Stop()

	for range ticker.C {
		now := time.Now()
		rl.limiters.Range(func(key, value interface{}) bool {
			if entry, ok := value.(*limiterEntry); ok {
				if now.Sub(entry.lastAccess) > 10*time.Minute {
					rl.limiters.Delete(key)
				}
			}
			return true
		})
	}
}

// getLimiter returns the limiter for a client key, creating it on first
// sight.
func (rl *RateLimiter) getLimiter(key string) *rate.Limiter {
	if val, ok := rl.limiters.Load(key); ok {
		entry := val.(*limiterEntry)
		entry.lastAccess = time.Now()
		return entry.limiter
	}

	entry := &limiterEntry{
		limiter:    rate.NewLimiter(rate.Limit(float64(rl.perMinute)/60), rl.burst),
		lastAccess: time.Now(),
	}

	actual, _ := rl.limiters.LoadOrStore(key, entry)
	return actual.(*limiterEntry).limiter
}

// clientKey identifies the caller: API key when present, IP otherwise.
func clientKey(c *gin.Context) string {
	if apiKey := c.GetHeader("X-API-Key"); apiKey != "" {
		if len(apiKey) >= 8 {
			return "key:" + apiKey[:8]
		}
		return "key:" + apiKey
	}

	if ip := c.ClientIP(); ip != "" {
		return "ip:" + ip
	}
	return "ip:unknown"
}

// Middleware refuses requests over the limit with 429.
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := clientKey(c)
		limiter := rl.getLimiter(key)

		if !limiter.Allow() {
			logger.Warn("Rate limit exceeded",
				zap.String("client", key),
				zap.String("path", c.Request.URL.Path),
				zap.String("method", c.Request.Method))

			c.Header("X-RateLimit-Limit", fmt.Sprintf("%d", rl.perMinute))
			c.Header("X-RateLimit-Remaining", "0")
			c.Header("Retry-After", "1")

			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": "Too many requests. Please try again later.",
			})
			return
		}

		c.Next()
	}
}
