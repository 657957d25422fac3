// Package handler はsavedfundsフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"mf_backend/internal/feature/savedfunds/domain/entity"
	"mf_backend/internal/feature/savedfunds/transport/http/dto"
	"mf_backend/internal/feature/savedfunds/usecase"
	"mf_backend/internal/platform/http/response"
	jwtmw "mf_backend/internal/platform/jwt"
)

// SavedFundsUsecase は保存済みファンド操作のユースケースインターフェースです。
type SavedFundsUsecase interface {
	Save(ctx context.Context, ownerID uint, in usecase.SaveInput) (*entity.SavedFund, error)
	List(ctx context.Context, ownerID uint) ([]entity.SavedFund, error)
	Remove(ctx context.Context, ownerID uint, schemeCode string) error
}

// SavedFundsHandler は保存済みファンドのHTTPリクエストを処理します。
// ルーターでjwtmw.AuthRequiredの後ろに登録する前提です。
type SavedFundsHandler struct {
	uc SavedFundsUsecase
}

// NewSavedFundsHandler はSavedFundsHandlerの新しいインスタンスを生成します。
func NewSavedFundsHandler(uc SavedFundsUsecase) *SavedFundsHandler {
	return &SavedFundsHandler{uc: uc}
}

// ownerID はミドルウェアが検証済みのユーザーIDを返します。未設定なら0で、ユースケースが拒否します。
func ownerID(c *gin.Context) uint {
	id, _ := jwtmw.UserID(c)
	return id
}

// Save は POST /api/funds/save を処理します。
func (h *SavedFundsHandler) Save(c *gin.Context) {
	var req dto.SaveFundReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("save fund bind failed", "error", err, "remote_addr", c.ClientIP())
		response.BadRequest(c, "invalid request body")
		return
	}
	f, err := h.uc.Save(c.Request.Context(), ownerID(c), usecase.SaveInput{
		SchemeCode: req.SchemeCode,
		SchemeName: req.SchemeName,
		FundHouse:  req.FundHouse,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.SaveFundResponse{
		Message:   "Fund saved successfully",
		SavedFund: dto.ToSavedFundResponse(*f),
	})
}

// List は GET /api/funds/saved を処理します。
func (h *SavedFundsHandler) List(c *gin.Context) {
	fs, err := h.uc.List(c.Request.Context(), ownerID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	out := make([]dto.SavedFundResponse, 0, len(fs))
	for _, f := range fs {
		out = append(out, dto.ToSavedFundResponse(f))
	}
	c.JSON(http.StatusOK, out)
}

// Remove は DELETE /api/funds/remove/:schemeCode を処理します。
func (h *SavedFundsHandler) Remove(c *gin.Context) {
	if err := h.uc.Remove(c.Request.Context(), ownerID(c), c.Param("schemeCode")); err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, response.MessageBody{Message: "Fund removed successfully"})
}
