// Package usecase はお気に入りファンドのビジネスロジックを実装します。
package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"mf_backend/internal/feature/savedfunds/domain/entity"
	"mf_backend/internal/shared/apperr"
)

var (
	// ErrSavedFundExists はリポジトリが (user_id, scheme_code) の重複を検出した場合に返します。
	ErrSavedFundExists = errors.New("saved fund already exists")
	// ErrSavedFundNotFound は削除対象が存在しない場合に返します。
	ErrSavedFundNotFound = errors.New("saved fund not found")
)

// 各カラムの最大文字数（saved_funds テーブル定義と一致させる）
const (
	MaxSchemeCodeLen = 32
	MaxSchemeNameLen = 512
	MaxFundHouseLen  = 255
)

// SavedFundRepository は保存済みファンドの永続化層を抽象化します。
// 各メソッドは単一のSQL文で完結します。
type SavedFundRepository interface {
	Create(ctx context.Context, f *entity.SavedFund) error
	ListByUser(ctx context.Context, userID uint) ([]entity.SavedFund, error)
	Delete(ctx context.Context, userID uint, schemeCode string) error
}

// SaveInput は保存リクエストの内容です。
type SaveInput struct {
	SchemeCode string
	SchemeName string
	FundHouse  string
}

type savedFundsUsecase struct {
	repo SavedFundRepository
	now  func() time.Time
}

// NewSavedFundsUsecase はsavedFundsUsecaseの新しいインスタンスを生成します。
func NewSavedFundsUsecase(repo SavedFundRepository) *savedFundsUsecase {
	return &savedFundsUsecase{repo: repo, now: time.Now}
}

func requireOwner(ownerID uint) error {
	if ownerID == 0 {
		return apperr.Auth("authentication required", nil)
	}
	return nil
}

// Save はファンドをユーザーのお気に入りに追加します。
// 既に保存済みの場合はConflictエラーを返します。
func (u *savedFundsUsecase) Save(ctx context.Context, ownerID uint, in SaveInput) (*entity.SavedFund, error) {
	if err := requireOwner(ownerID); err != nil {
		return nil, err
	}
	f := &entity.SavedFund{
		UserID:     ownerID,
		SchemeCode: strings.TrimSpace(in.SchemeCode),
		SchemeName: strings.TrimSpace(in.SchemeName),
		FundHouse:  strings.TrimSpace(in.FundHouse),
	}
	if f.SchemeCode == "" || f.SchemeName == "" {
		return nil, apperr.Validation("scheme code and name are required")
	}
	if err := checkLengths(f); err != nil {
		return nil, err
	}
	// DBの時刻精度に合わせてマイクロ秒未満を切り捨てる
	f.SavedAt = u.now().UTC().Truncate(time.Microsecond)

	if err := u.repo.Create(ctx, f); err != nil {
		if errors.Is(err, ErrSavedFundExists) {
			return nil, apperr.Conflict("fund already saved", err)
		}
		return nil, apperr.Internal(fmt.Errorf("save fund: %w", err))
	}
	return f, nil
}

func checkLengths(f *entity.SavedFund) error {
	switch {
	case utf8.RuneCountInString(f.SchemeCode) > MaxSchemeCodeLen:
		return apperr.Validation(fmt.Sprintf("scheme code must be at most %d characters", MaxSchemeCodeLen))
	case utf8.RuneCountInString(f.SchemeName) > MaxSchemeNameLen:
		return apperr.Validation(fmt.Sprintf("scheme name must be at most %d characters", MaxSchemeNameLen))
	case utf8.RuneCountInString(f.FundHouse) > MaxFundHouseLen:
		return apperr.Validation(fmt.Sprintf("fund house must be at most %d characters", MaxFundHouseLen))
	}
	return nil
}

// List はユーザーの保存済みファンドを新しい順に返します。空の場合は空スライスです。
func (u *savedFundsUsecase) List(ctx context.Context, ownerID uint) ([]entity.SavedFund, error) {
	if err := requireOwner(ownerID); err != nil {
		return nil, err
	}
	fs, err := u.repo.ListByUser(ctx, ownerID)
	if err != nil {
		return nil, apperr.Internal(fmt.Errorf("list saved funds: %w", err))
	}
	if fs == nil {
		fs = []entity.SavedFund{}
	}
	return fs, nil
}

// Remove はユーザー自身の保存済みファンドを削除します。
// 他ユーザーのレコードには触れず、NotFoundを返します。
func (u *savedFundsUsecase) Remove(ctx context.Context, ownerID uint, schemeCode string) error {
	if err := requireOwner(ownerID); err != nil {
		return err
	}
	schemeCode = strings.TrimSpace(schemeCode)
	if schemeCode == "" {
		return apperr.Validation("scheme code is required")
	}

	if err := u.repo.Delete(ctx, ownerID, schemeCode); err != nil {
		if errors.Is(err, ErrSavedFundNotFound) {
			return apperr.NotFound("saved fund not found", err)
		}
		return apperr.Internal(fmt.Errorf("remove saved fund: %w", err))
	}
	return nil
}
