// Package dto はfundsフィーチャーのレスポンスDTOを定義します。
package dto

import (
	"github.com/shopspring/decimal"

	"mf_backend/internal/feature/funds/domain/entity"
)

// navDateLayout はプロバイダーと同じ dd-mm-yyyy 形式です。
const navDateLayout = "02-01-2006"

// SchemeSummaryResponse は検索結果1件です。
type SchemeSummaryResponse struct {
	SchemeCode string `json:"schemeCode"`
	SchemeName string `json:"schemeName"`
}

// SchemeMetaResponse はスキームのメタ情報です。キー名はプロバイダー形式に合わせています。
type SchemeMetaResponse struct {
	SchemeCode     string `json:"scheme_code"`
	SchemeName     string `json:"scheme_name"`
	FundHouse      string `json:"fund_house"`
	SchemeType     string `json:"scheme_type"`
	SchemeCategory string `json:"scheme_category"`
}

// NAVResponse はNAV1日分です。NAVは精度を保つため文字列でエンコードされます。
type NAVResponse struct {
	Date string          `json:"date"`
	NAV  decimal.Decimal `json:"nav"`
}

// SchemeResponse はスキーム詳細です。
type SchemeResponse struct {
	Meta          SchemeMetaResponse `json:"meta"`
	Data          []NAVResponse      `json:"data"`
	LatestNAV     *decimal.Decimal   `json:"latest_nav"`
	LatestNAVDate *string            `json:"latest_nav_date"`
}

// ToSchemeSummaries は検索結果をレスポンス形式に変換します。空でもnilは返しません。
func ToSchemeSummaries(in []entity.SchemeSummary) []SchemeSummaryResponse {
	out := make([]SchemeSummaryResponse, 0, len(in))
	for _, s := range in {
		out = append(out, SchemeSummaryResponse{SchemeCode: s.SchemeCode, SchemeName: s.SchemeName})
	}
	return out
}

// ToSchemeResponse はNAV履歴のうち先頭（最新）をlatest_navとして展開します。
// 履歴が空の場合、latest系はnullになります。
func ToSchemeResponse(s *entity.Scheme) SchemeResponse {
	res := SchemeResponse{
		Meta: SchemeMetaResponse{
			SchemeCode:     s.Meta.SchemeCode,
			SchemeName:     s.Meta.SchemeName,
			FundHouse:      s.Meta.FundHouse,
			SchemeType:     s.Meta.SchemeType,
			SchemeCategory: s.Meta.SchemeCategory,
		},
		Data: make([]NAVResponse, 0, len(s.NAV)),
	}
	for _, p := range s.NAV {
		res.Data = append(res.Data, NAVResponse{Date: p.Date.Format(navDateLayout), NAV: p.NAV})
	}
	if latest, ok := s.Latest(); ok {
		nav := latest.NAV
		date := latest.Date.Format(navDateLayout)
		res.LatestNAV = &nav
		res.LatestNAVDate = &date
	}
	return res
}
