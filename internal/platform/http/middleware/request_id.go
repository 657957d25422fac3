// Package middleware provides cross-cutting gin middleware.
package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// ContextRequestID is the gin context key for the request id.
	ContextRequestID = "request_id"
	// HeaderRequestID is echoed back on every response.
	HeaderRequestID = "X-Request-ID"
)

// RequestID tags every request with an id. A well-formed UUID supplied by
// the client is reused; anything else is replaced.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}
		c.Set(ContextRequestID, id)
		c.Header(HeaderRequestID, id)
		c.Next()
	}
}
