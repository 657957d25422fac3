// Package dto はmfapi.inのレスポンス形式を定義します。
package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Code はmfapiのscheme_codeです。エンドポイントにより数値または文字列で返るため両方を受け付けます。
type Code string

func (c *Code) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*c = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*c = Code(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("scheme code: %w", err)
	}
	*c = Code(n.String())
	return nil
}

// SearchHit は GET /mf/search の要素です。
type SearchHit struct {
	SchemeCode Code   `json:"schemeCode"`
	SchemeName string `json:"schemeName"`
}

// SchemeResponse は GET /mf/{code} のレスポンスです。
type SchemeResponse struct {
	Meta   Meta       `json:"meta"`
	Data   []NAVEntry `json:"data"`
	Status string     `json:"status"`
}

type Meta struct {
	FundHouse      string `json:"fund_house"`
	SchemeType     string `json:"scheme_type"`
	SchemeCategory string `json:"scheme_category"`
	SchemeCode     Code   `json:"scheme_code"`
	SchemeName     string `json:"scheme_name"`
}

// NAVEntry の日付は "dd-mm-yyyy"、NAVは10進文字列です。
type NAVEntry struct {
	Date string `json:"date"`
	NAV  string `json:"nav"`
}
