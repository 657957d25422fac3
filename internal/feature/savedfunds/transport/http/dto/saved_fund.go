// Package dto はsavedfundsフィーチャーのリクエスト/レスポンスDTOを定義します。
package dto

import (
	"time"

	"mf_backend/internal/feature/savedfunds/domain/entity"
)

// SaveFundReq は POST /api/funds/save のリクエストボディです。
// 必須チェックはユースケースで行います（前後の空白を除去した後に判定するため）。
type SaveFundReq struct {
	SchemeCode string `json:"schemeCode"`
	SchemeName string `json:"schemeName"`
	FundHouse  string `json:"fundHouse"`
}

// SavedFundResponse は保存済みファンド1件のJSON表現です。
type SavedFundResponse struct {
	ID         uint      `json:"id"`
	UserID     uint      `json:"userId"`
	SchemeCode string    `json:"schemeCode"`
	SchemeName string    `json:"schemeName"`
	FundHouse  string    `json:"fundHouse"`
	SavedAt    time.Time `json:"savedAt"`
}

// SaveFundResponse は保存成功時のレスポンスです。
type SaveFundResponse struct {
	Message   string            `json:"message"`
	SavedFund SavedFundResponse `json:"savedFund"`
}

// ToSavedFundResponse はエンティティをレスポンス形式に変換します。
func ToSavedFundResponse(f entity.SavedFund) SavedFundResponse {
	return SavedFundResponse{
		ID:         f.ID,
		UserID:     f.UserID,
		SchemeCode: f.SchemeCode,
		SchemeName: f.SchemeName,
		FundHouse:  f.FundHouse,
		SavedAt:    f.SavedAt,
	}
}
