package mfapi

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"mf_backend/internal/feature/funds/domain/entity"
	"mf_backend/internal/feature/funds/usecase"
	"mf_backend/internal/platform/externalapi/mfapi/dto"
)

// navDateLayout はmfapiの日付形式（dd-mm-yyyy）です。
const navDateLayout = "02-01-2006"

// Client はmfapi.inからスキーム情報を取得するSchemeProvider実装です。
type Client struct {
	cfg    Config
	client *http.Client
}

// ClientがSchemeProviderを実装していることをコンパイル時に検証します。
var _ usecase.SchemeProvider = (*Client)(nil)

// NewClient は指定された設定とHTTPクライアントでClientの新しいインスタンスを生成します。
func NewClient(cfg Config, client *http.Client) *Client {
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	return &Client{cfg: cfg, client: client}
}

// getJSON はGETリクエストを送り、200ならoutにデコードします。戻り値はHTTPステータスです。
func (c *Client) getJSON(ctx context.Context, u string, out any) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return 0, err
	}
	req.Header.Set("Accept", "application/json")

	res, err := c.client.Do(req)
	if err != nil {
		return 0, err
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	if res.StatusCode != http.StatusOK {
		return res.StatusCode, fmt.Errorf("mfapi http %d", res.StatusCode)
	}
	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return res.StatusCode, fmt.Errorf("decode mfapi response: %w", err)
	}
	return res.StatusCode, nil
}

// Search はスキーム名の部分一致検索を行います。
func (c *Client) Search(ctx context.Context, query string) ([]entity.SchemeSummary, error) {
	u := fmt.Sprintf("%s/mf/search?%s", c.cfg.BaseURL, url.Values{"q": {query}}.Encode())

	var hits []dto.SearchHit
	if _, err := c.getJSON(ctx, u, &hits); err != nil {
		return nil, err
	}

	out := make([]entity.SchemeSummary, 0, len(hits))
	for _, h := range hits {
		out = append(out, entity.SchemeSummary{SchemeCode: string(h.SchemeCode), SchemeName: h.SchemeName})
	}
	return out, nil
}

// GetScheme はスキームのメタ情報とNAV履歴（新しい順）を取得します。
// 未知のコードに対してmfapiは空のmetaを返すため、usecase.ErrSchemeNotFoundに変換します。
func (c *Client) GetScheme(ctx context.Context, schemeCode string) (*entity.Scheme, error) {
	u := fmt.Sprintf("%s/mf/%s", c.cfg.BaseURL, url.PathEscape(schemeCode))

	var body dto.SchemeResponse
	status, err := c.getJSON(ctx, u, &body)
	if status == http.StatusNotFound {
		return nil, usecase.ErrSchemeNotFound
	}
	if err != nil {
		return nil, err
	}
	if body.Meta.SchemeCode == "" && len(body.Data) == 0 {
		return nil, usecase.ErrSchemeNotFound
	}

	points := make([]entity.NAVPoint, 0, len(body.Data))
	for _, d := range body.Data {
		// 日付をパース
		day, err := time.Parse(navDateLayout, d.Date)
		if err != nil {
			return nil, fmt.Errorf("parse nav date %q: %w", d.Date, err)
		}
		// NAVをパース
		nav, err := decimal.NewFromString(d.NAV)
		if err != nil {
			return nil, fmt.Errorf("parse nav %q: %w", d.NAV, err)
		}
		points = append(points, entity.NAVPoint{Date: day, NAV: nav})
	}

	return &entity.Scheme{
		Meta: entity.SchemeMeta{
			SchemeCode:     string(body.Meta.SchemeCode),
			SchemeName:     body.Meta.SchemeName,
			FundHouse:      body.Meta.FundHouse,
			SchemeType:     body.Meta.SchemeType,
			SchemeCategory: body.Meta.SchemeCategory,
		},
		NAV: points,
	}, nil
}
