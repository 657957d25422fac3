// Package handler はfundsフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"mf_backend/internal/feature/funds/domain/entity"
	"mf_backend/internal/feature/funds/transport/http/dto"
	"mf_backend/internal/platform/http/response"
)

// FundsUsecase はファンドカタログ参照のユースケースインターフェースです。
type FundsUsecase interface {
	Search(ctx context.Context, query string) ([]entity.SchemeSummary, error)
	GetScheme(ctx context.Context, schemeCode string) (*entity.Scheme, error)
}

// FundsHandler はファンド検索・詳細のHTTPリクエストを処理します。認証は不要です。
type FundsHandler struct {
	uc FundsUsecase
}

// NewFundsHandler はFundsHandlerの新しいインスタンスを生成します。
func NewFundsHandler(uc FundsUsecase) *FundsHandler {
	return &FundsHandler{uc: uc}
}

// Search は GET /api/funds/search?q=hdfc を処理します。
func (h *FundsHandler) Search(c *gin.Context) {
	hits, err := h.uc.Search(c.Request.Context(), c.Query("q"))
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToSchemeSummaries(hits))
}

// GetScheme は GET /api/funds/scheme/:schemeCode を処理します。
func (h *FundsHandler) GetScheme(c *gin.Context) {
	s, err := h.uc.GetScheme(c.Request.Context(), c.Param("schemeCode"))
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToSchemeResponse(s))
}
