// Package router はアプリケーションのHTTPルーティングを定義します。
package router

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	authhandler "mf_backend/internal/feature/auth/transport/handler"
	fundshandler "mf_backend/internal/feature/funds/transport/handler"
	savedfundshandler "mf_backend/internal/feature/savedfunds/transport/handler"
	platformhandler "mf_backend/internal/platform/http/handler"
	"mf_backend/internal/platform/http/middleware"
	"mf_backend/internal/platform/http/response"
	jwtmw "mf_backend/internal/platform/jwt"
)

// Config はルーター全体の設定です。
type Config struct {
	// TrustedProxies は X-Forwarded-For を信頼するプロキシのIP/CIDRです。
	// 空の場合はどのヘッダーも信頼せず、接続元アドレスをクライアントIPとします。
	TrustedProxies []string `env:"TRUSTED_PROXIES" envSeparator:","`
}

// Deps はルーターが必要とするハンドラーとミドルウェアです。
type Deps struct {
	Config Config

	Auth       *authhandler.AuthHandler
	SavedFunds *savedfundshandler.SavedFundsHandler
	Funds      *fundshandler.FundsHandler

	// Verifier は保存済みファンドAPIの前段でトークンを検証します。
	Verifier jwtmw.TokenVerifier
	// AuthThrottle は /api/auth/* に適用されます。nilなら制限しません。
	AuthThrottle gin.HandlerFunc
	HealthChecks []platformhandler.Check
}

// NewRouter は全ルートを登録したエンジンを返します。
// TrustedProxies に不正な値が含まれる場合はエラーを返します。
func NewRouter(d Deps) (*gin.Engine, error) {
	r := gin.Default()
	// 空なら全プロキシを信頼しない（gin の既定は全信頼）
	if err := r.SetTrustedProxies(d.Config.TrustedProxies); err != nil {
		return nil, fmt.Errorf("trusted proxies: %w", err)
	}
	r.Use(middleware.RequestID())

	// 認証不要
	// 導通確認用
	health := platformhandler.Health(d.HealthChecks...)
	r.GET("/healthz", health)
	r.HEAD("/healthz", health)

	api := r.Group("/api")

	authGroup := api.Group("/auth")
	if d.AuthThrottle != nil {
		authGroup.Use(d.AuthThrottle)
	}
	{
		// 新規ユーザー登録
		authGroup.POST("/register", d.Auth.Register)
		// ログイン（JWT 発行）
		authGroup.POST("/login", d.Auth.Login)
	}

	funds := api.Group("/funds")
	{
		// ファンド検索・詳細（外部APIのプロキシ）
		funds.GET("/search", d.Funds.Search)
		funds.GET("/scheme/:schemeCode", d.Funds.GetScheme)
	}

	// 認証必須のルート
	// → リクエストヘッダーに JWT が必要になる
	saved := api.Group("/funds", jwtmw.AuthRequired(d.Verifier))
	{
		saved.POST("/save", d.SavedFunds.Save)
		saved.GET("/saved", d.SavedFunds.List)
		saved.DELETE("/remove/:schemeCode", d.SavedFunds.Remove)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, response.ErrorBody{Error: "route not found", Code: "not_found"})
	})

	return r, nil
}
