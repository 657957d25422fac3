// Package response writes API error bodies from apperr values.
package response

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"mf_backend/internal/shared/apperr"
)

// ErrorBody is the JSON shape of every error response.
type ErrorBody struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// MessageBody is the JSON shape of a bare confirmation.
type MessageBody struct {
	Message string `json:"message"`
}

// Status maps an error kind to its HTTP status code.
// Conflicts are reported as 400 to match the public API contract; the code
// field still distinguishes them from validation failures.
func Status(k apperr.Kind) int {
	switch k {
	case apperr.KindValidation, apperr.KindConflict:
		return http.StatusBadRequest
	case apperr.KindAuth:
		return http.StatusUnauthorized
	case apperr.KindNotFound:
		return http.StatusNotFound
	case apperr.KindUpstream:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// Error writes err as an ErrorBody and aborts the chain. Internal errors are
// logged with their cause and answered with a generic message.
func Error(c *gin.Context, err error) {
	kind := apperr.KindOf(err)
	if kind == apperr.KindInternal || kind == apperr.KindUpstream {
		slog.Error("request failed",
			"error", err,
			"method", c.Request.Method,
			"path", c.FullPath(),
			"request_id", c.GetString("request_id"),
		)
	}
	c.AbortWithStatusJSON(Status(kind), ErrorBody{
		Error: apperr.PublicMessage(err),
		Code:  kind.String(),
	})
}

// BadRequest answers a request whose body could not be bound.
func BadRequest(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, ErrorBody{Error: msg, Code: apperr.KindValidation.String()})
}
