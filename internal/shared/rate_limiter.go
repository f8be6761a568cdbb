package shared

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
	"github.com/rs/zerolog"

	"todoapi/internal/core/model/response"
)

// RateLimiter caps requests per client address in a fixed window.
type RateLimiter struct {
	cache   *cache.Cache
	config  RateLimitConfig
	logger  zerolog.Logger
	metrics *AppMetrics
	mutex   sync.Mutex
}

type rateLimitEntry struct {
	Count     int
	ResetTime time.Time
}

func NewRateLimiter(config RateLimitConfig, logger zerolog.Logger, metrics *AppMetrics) *RateLimiter {
	if config.Requests <= 0 {
		config.Requests = 100
	}
	if config.Window <= 0 {
		config.Window = 15 * time.Minute
	}

	return &RateLimiter{
		cache:  cache.New(config.Window, 2*config.Window),
		config: config,
		logger:  logger,
		metrics: metrics,
	}
}

// Middleware rejects with 429 once the window cap is reached. The counter is
// shared across every route the middleware is attached to, keyed by client IP.
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := "rate_limit:" + c.ClientIP()

		allowed, remaining, resetTime := rl.allow(key)

		c.Header("X-RateLimit-Limit", strconv.Itoa(rl.config.Requests))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))
		c.Header("X-RateLimit-Reset", strconv.FormatInt(resetTime.Unix(), 10))

		if !allowed {
			path := c.FullPath()
			if path == "" {
				path = c.Request.URL.Path
			}

			if rl.metrics != nil {
				rl.metrics.RecordRateLimitHit(path)
			}

			rl.logger.Warn().
				Str("key", key).
				Str("path", path).
				Int("limit", rl.config.Requests).
				Dur("window", rl.config.Window).
				Msg("rate limit exceeded")

			c.AbortWithStatusJSON(http.StatusTooManyRequests, response.Envelope{
				Success: false,
				Message: "Too many requests, please try again later.",
			})
			return
		}

		c.Next()
	}
}

func (rl *RateLimiter) allow(key string) (bool, int, time.Time) {
	now := time.Now()

	rl.mutex.Lock()
	defer rl.mutex.Unlock()

	if raw, found := rl.cache.Get(key); found {
		entry := raw.(rateLimitEntry)

		if now.After(entry.ResetTime) {
			resetTime := now.Add(rl.config.Window)
			rl.cache.Set(key, rateLimitEntry{Count: 1, ResetTime: resetTime}, rl.config.Window)
			return true, rl.config.Requests - 1, resetTime
		}

		if entry.Count >= rl.config.Requests {
			return false, 0, entry.ResetTime
		}

		entry.Count++
		rl.cache.Set(key, entry, cache.DefaultExpiration)

		return true, rl.config.Requests - entry.Count, entry.ResetTime
	}

	resetTime := now.Add(rl.config.Window)
	rl.cache.Set(key, rateLimitEntry{Count: 1, ResetTime: resetTime}, rl.config.Window)

	return true, rl.config.Requests - 1, resetTime
}
