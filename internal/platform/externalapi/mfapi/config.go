// Package mfapi はmfapi.in投資信託データAPIのクライアントを提供します。
package mfapi

import (
	"time"

	"mf_backend/internal/platform/config"
)

// Config はmfapi.inクライアントの設定を保持します。
type Config struct {
	BaseURL string        `env:"MFAPI_BASE_URL" envDefault:"https://api.mfapi.in"` // APIのベースURL
	Timeout time.Duration `env:"MFAPI_TIMEOUT" envDefault:"10s"`                   // HTTPリクエストタイムアウト
}

// LoadConfig は環境変数からmfapiの設定を読み込みます。
func LoadConfig() (Config, error) {
	var cfg Config
	if err := config.ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
