package adapters

import (
	"context"

	"gorm.io/gorm"

	"mf_backend/internal/feature/savedfunds/domain/entity"
	"mf_backend/internal/feature/savedfunds/usecase"
	"mf_backend/internal/platform/db/dberr"
)

type savedFundGorm struct {
	db *gorm.DB
}

var _ usecase.SavedFundRepository = (*savedFundGorm)(nil)

// NewSavedFundRepository はGORMベースのSavedFundRepositoryを生成します。
func NewSavedFundRepository(db *gorm.DB) *savedFundGorm {
	return &savedFundGorm{db: db}
}

// Create は1回のINSERTで保存します。重複は一意インデックスが検出し、
// usecase.ErrSavedFundExistsとして返します。
func (r *savedFundGorm) Create(ctx context.Context, f *entity.SavedFund) error {
	m := toModel(*f)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		if dberr.IsUniqueViolation(err) {
			return usecase.ErrSavedFundExists
		}
		return err
	}
	f.ID = m.ID
	return nil
}

// ListByUser は新しい順（saved_at DESC, id DESC）に返します。
func (r *savedFundGorm) ListByUser(ctx context.Context, userID uint) ([]entity.SavedFund, error) {
	var rows []SavedFundModel
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("saved_at DESC").
		Order("id DESC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]entity.SavedFund, 0, len(rows))
	for _, m := range rows {
		out = append(out, m.ToEntity())
	}
	return out, nil
}

// Delete は所有者とスキームコードの両方で絞り込んで削除します。
// 対象行がない場合はusecase.ErrSavedFundNotFoundを返します。
func (r *savedFundGorm) Delete(ctx context.Context, userID uint, schemeCode string) error {
	res := r.db.WithContext(ctx).
		Where("user_id = ? AND scheme_code = ?", userID, schemeCode).
		Delete(&SavedFundModel{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return usecase.ErrSavedFundNotFound
	}
	return nil
}
