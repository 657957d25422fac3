package middleware

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"mf_backend/internal/platform/http/response"
)

// incrExpireScript increments KEYS[1] and starts its window on the first hit.
var incrExpireScript = redis.NewScript(`
local current = redis.call("INCR", KEYS[1])
if current == 1 then
  redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
return current
`)

// ThrottleConfig holds the limits for the credential endpoints.
type ThrottleConfig struct {
	Limit  int           `env:"LOGIN_RATE_LIMIT" envDefault:"10"`
	Window time.Duration `env:"LOGIN_RATE_WINDOW" envDefault:"1m"`
}

// Throttle limits requests per client IP and route using a fixed window
// counter in Redis. It is a no-op when rdb is nil and fails open on Redis
// errors so an outage never locks users out.
func Throttle(rdb *redis.Client, cfg ThrottleConfig) gin.HandlerFunc {
	if rdb == nil || cfg.Limit <= 0 || cfg.Window <= 0 {
		return func(c *gin.Context) { c.Next() }
	}
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		key := throttleKey(c)

		count, err := incrExpireScript.Run(ctx, rdb, []string{key}, cfg.Window.Milliseconds()).Int()
		if err != nil {
			slog.Warn("throttle check failed; allowing request", "error", err, "key", key)
			c.Next()
			return
		}

		remaining := cfg.Limit - count
		if remaining < 0 {
			remaining = 0
		}
		c.Header("X-RateLimit-Limit", strconv.Itoa(cfg.Limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))

		if count > cfg.Limit {
			if ttl, err := rdb.PTTL(ctx, key).Result(); err == nil && ttl > 0 {
				c.Header("Retry-After", strconv.Itoa(int((ttl+time.Second-1)/time.Second)))
			}
			slog.Warn("request throttled", "key", key, "count", count)
			c.AbortWithStatusJSON(http.StatusTooManyRequests, response.ErrorBody{
				Error: "too many requests",
				Code:  "rate_limited",
			})
			return
		}
		c.Next()
	}
}

func throttleKey(c *gin.Context) string {
	path := c.FullPath()
	if path == "" {
		path = c.Request.URL.Path
	}
	ip := c.ClientIP()
	if ip == "" {
		ip = "unknown"
	}
	return "throttle:" + path + ":" + ip
}
