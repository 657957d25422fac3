// Package adapters はsavedfundsフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"time"

	"mf_backend/internal/feature/savedfunds/domain/entity"
)

// SavedFundModel はsaved_fundsテーブルの行を表します。
// (user_id, scheme_code) の一意インデックスが重複保存を防ぎます。
type SavedFundModel struct {
	ID         uint      `gorm:"primaryKey"`
	UserID     uint      `gorm:"not null;uniqueIndex:idx_saved_funds_user_scheme,priority:1;index:idx_saved_funds_user_saved_at,priority:1"`
	SchemeCode string    `gorm:"size:32;not null;uniqueIndex:idx_saved_funds_user_scheme,priority:2"`
	SchemeName string    `gorm:"size:512;not null"`
	FundHouse  string    `gorm:"size:255"`
	SavedAt    time.Time `gorm:"not null;index:idx_saved_funds_user_saved_at,priority:2"`
}

// TableName はGORMが使うテーブル名を返します。
func (SavedFundModel) TableName() string {
	return "saved_funds"
}

func toModel(e entity.SavedFund) SavedFundModel {
	return SavedFundModel{
		ID:         e.ID,
		UserID:     e.UserID,
		SchemeCode: e.SchemeCode,
		SchemeName: e.SchemeName,
		FundHouse:  e.FundHouse,
		SavedAt:    e.SavedAt,
	}
}

// ToEntity converts a row back to the domain type.
func (m SavedFundModel) ToEntity() entity.SavedFund {
	return entity.SavedFund{
		ID:         m.ID,
		UserID:     m.UserID,
		SchemeCode: m.SchemeCode,
		SchemeName: m.SchemeName,
		FundHouse:  m.FundHouse,
		SavedAt:    m.SavedAt,
	}
}
