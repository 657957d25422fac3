// Package handler はプラットフォームレベルのエンドポイント用HTTPハンドラーを提供します。
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Check reports whether a dependency is reachable.
type Check struct {
	Name string
	Run  func(ctx context.Context) error
}

// Health returns the /healthz handler. With no checks it only reports that
// the process is serving; otherwise every check must pass within two seconds.
func Health(checks ...Check) gin.HandlerFunc {
	return func(c *gin.Context) {
		// 明示的にキャッシュを防止
		c.Header("Cache-Control", "no-store")

		if c.Request.Method == http.MethodOptions {
			c.Status(http.StatusNoContent)
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		failed := map[string]string{}
		for _, chk := range checks {
			if err := chk.Run(ctx); err != nil {
				slog.Warn("health check failed", "check", chk.Name, "error", err)
				failed[chk.Name] = "unavailable"
			}
		}

		status := http.StatusOK
		body := gin.H{"status": "ok"}
		if len(failed) > 0 {
			status = http.StatusServiceUnavailable
			body = gin.H{"status": "degraded", "checks": failed}
		}

		if c.Request.Method == http.MethodHead {
			c.Status(status)
			return
		}
		c.JSON(status, body)
	}
}
