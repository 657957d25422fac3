package jwtmw

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"mf_backend/internal/platform/http/response"
)

const (
	// ContextUserID is the gin context key holding the verified user id (uint).
	ContextUserID = "userID"
	// ContextEmail is the gin context key holding the verified email.
	ContextEmail = "email"
)

// TokenVerifier validates a bearer token and returns the identity it asserts.
// Following Go convention: the interface is defined by the consumer (middleware),
// implemented by the auth usecase.
type TokenVerifier interface {
	VerifyToken(ctx context.Context, token string) (uint, string, error)
}

// AuthRequired returns a Gin middleware that rejects requests without a
// valid bearer token. Handlers behind it can rely on ContextUserID being set.
func AuthRequired(v TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := c.GetHeader("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.ErrorBody{
				Error: "authorization token required",
				Code:  "unauthorized",
			})
			return
		}
		tokenStr := strings.TrimSpace(strings.TrimPrefix(auth, "Bearer "))

		userID, email, err := v.VerifyToken(c.Request.Context(), tokenStr)
		if err != nil {
			// The reason is logged but never returned: expired and forged tokens look the same to clients.
			slog.Warn("token verification failed", "error", err, "path", c.FullPath(), "remote_addr", c.ClientIP())
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.ErrorBody{
				Error: "invalid token",
				Code:  "unauthorized",
			})
			return
		}

		c.Set(ContextUserID, userID)
		c.Set(ContextEmail, email)
		c.Next()
	}
}

// UserID returns the verified user id stored by AuthRequired.
func UserID(c *gin.Context) (uint, bool) {
	v, ok := c.Get(ContextUserID)
	if !ok {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok && id != 0
}
