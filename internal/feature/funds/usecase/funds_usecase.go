// Package usecase はファンドカタログ（外部API経由の検索・詳細取得）のビジネスロジックを実装します。
package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"mf_backend/internal/feature/funds/domain/entity"
	"mf_backend/internal/shared/apperr"
)

// ErrSchemeNotFound はプロバイダーがスキームコードを認識しない場合に返します。
var ErrSchemeNotFound = errors.New("scheme not found")

// SchemeProvider は外部のファンドデータ提供元を抽象化します。
type SchemeProvider interface {
	Search(ctx context.Context, query string) ([]entity.SchemeSummary, error)
	GetScheme(ctx context.Context, schemeCode string) (*entity.Scheme, error)
}

type fundsUsecase struct {
	provider SchemeProvider
}

// NewFundsUsecase はfundsUsecaseの新しいインスタンスを生成します。
func NewFundsUsecase(provider SchemeProvider) *fundsUsecase {
	return &fundsUsecase{provider: provider}
}

// Search はスキーム名で検索します。空のクエリはValidationエラーです。
func (u *fundsUsecase) Search(ctx context.Context, query string) ([]entity.SchemeSummary, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, apperr.Validation("search query is required")
	}
	hits, err := u.provider.Search(ctx, query)
	if err != nil {
		return nil, apperr.Upstream("fund data provider unavailable", fmt.Errorf("search %q: %w", query, err))
	}
	if hits == nil {
		hits = []entity.SchemeSummary{}
	}
	return hits, nil
}

// GetScheme はスキームの詳細とNAV履歴を取得します。
func (u *fundsUsecase) GetScheme(ctx context.Context, schemeCode string) (*entity.Scheme, error) {
	schemeCode = strings.TrimSpace(schemeCode)
	if schemeCode == "" {
		return nil, apperr.Validation("scheme code is required")
	}
	s, err := u.provider.GetScheme(ctx, schemeCode)
	if err != nil {
		if errors.Is(err, ErrSchemeNotFound) {
			return nil, apperr.NotFound("scheme not found", err)
		}
		return nil, apperr.Upstream("fund data provider unavailable", fmt.Errorf("scheme %s: %w", schemeCode, err))
	}
	return s, nil
}
