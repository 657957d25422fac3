package response

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"mf_backend/internal/shared/apperr"
)

func TestError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedBody   string
	}{
		{"validation", apperr.Validation("scheme code and name are required"), http.StatusBadRequest, `{"error":"scheme code and name are required","code":"validation"}`},
		{"conflict", apperr.Conflict("fund already saved", errors.New("UNIQUE constraint failed")), http.StatusBadRequest, `{"error":"fund already saved","code":"conflict"}`},
		{"auth", apperr.Auth("invalid email or password", nil), http.StatusUnauthorized, `{"error":"invalid email or password","code":"unauthorized"}`},
		{"not found", apperr.NotFound("saved fund not found", nil), http.StatusNotFound, `{"error":"saved fund not found","code":"not_found"}`},
		{"upstream", apperr.Upstream("fund data provider unavailable", errors.New("dial tcp")), http.StatusBadGateway, `{"error":"fund data provider unavailable","code":"upstream"}`},
		{"internal hides cause", errors.New("pq: connection reset"), http.StatusInternalServerError, `{"error":"internal server error","code":"internal"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

			Error(c, tt.err)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
			assert.True(t, c.IsAborted())
		})
	}
}

func TestBadRequest(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	BadRequest(c, "invalid request")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"invalid request","code":"validation"}`, w.Body.String())
}
