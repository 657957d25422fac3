// Package handler はauthフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"mf_backend/internal/feature/auth/domain/entity"
	"mf_backend/internal/feature/auth/transport/http/dto"
	"mf_backend/internal/platform/http/response"
)

// AuthUsecase は認証操作のユースケースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type AuthUsecase interface {
	// Register は新規ユーザーを登録し、トークンとユーザーを返します。
	Register(ctx context.Context, name, email, password string) (string, *entity.User, error)
	// Login はユーザーを認証し、成功時にトークンとユーザーを返します。
	Login(ctx context.Context, email, password string) (string, *entity.User, error)
}

// AuthHandler は認証操作のHTTPリクエストを処理します。
type AuthHandler struct {
	auth AuthUsecase
}

// NewAuthHandler はAuthHandlerの新しいインスタンスを生成します。
func NewAuthHandler(auth AuthUsecase) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Register はユーザー登録APIエンドポイントを処理します。
// - バインド失敗時は400（validation）
// - メール重複時は400（conflict）
// - 成功時はトークンとユーザー付きで200
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("register validation failed", "error", err, "remote_addr", c.ClientIP())
		response.BadRequest(c, "name, valid email and password are required")
		return
	}
	token, user, err := h.auth.Register(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		slog.Warn("register failed", "error", err, "remote_addr", c.ClientIP())
		response.Error(c, err)
		return
	}
	slog.Info("user registered", "user_id", user.ID, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, dto.AuthResponse{
		Message: "User registered successfully",
		Token:   token,
		User:    dto.ToUserResponse(user),
	})
}

// Login はユーザーログインAPIエンドポイントを処理します。
// ユーザー列挙攻撃を防止するため、未登録とパスワード不一致は同じ401を返します。
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("login validation failed", "error", err, "remote_addr", c.ClientIP())
		response.BadRequest(c, "email and password are required")
		return
	}
	token, user, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		slog.Warn("login failed", "error", err, "remote_addr", c.ClientIP())
		response.Error(c, err)
		return
	}
	slog.Info("user login successful", "user_id", user.ID, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, dto.AuthResponse{
		Message: "Login successful",
		Token:   token,
		User:    dto.ToUserResponse(user),
	})
}
