package di

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"mf_backend/internal/platform/config"
	"mf_backend/internal/platform/http/middleware"
)

// NewAuthThrottle creates the limiter for the credential endpoints.
// Without Redis the returned middleware lets every request through.
func NewAuthThrottle(rdb *redis.Client) (gin.HandlerFunc, error) {
	var cfg middleware.ThrottleConfig
	if err := config.ParseEnv(&cfg); err != nil {
		return nil, err
	}
	if rdb == nil {
		slog.Warn("redis unavailable, auth endpoints are not throttled")
	}
	return middleware.Throttle(rdb, cfg), nil
}
