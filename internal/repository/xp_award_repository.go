// internal/repository/xp_award_repository.go
package repository

import (
	"context"
	"errors"

	"go_manabi_quest/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// XPAwardRepository はXP付与台帳へのアクセスを提供します。
// Create は (user, topic, kind) の複合ユニーク制約違反を model.ErrConflict に変換します。
// 同一イベントへの同時付与はDB側の制約で高々1件に直列化されます。
type XPAwardRepository interface {
	Create(ctx context.Context, tx *gorm.DB, award *model.XPAward) error
	Exists(ctx context.Context, db *gorm.DB, userID, topicID uuid.UUID, kind model.AwardKind) (bool, error)
	SumByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) (int, error)
}

type gormXPAwardRepository struct{}

func NewGormXPAwardRepository() XPAwardRepository {
	return &gormXPAwardRepository{}
}

func (r *gormXPAwardRepository) Create(ctx context.Context, tx *gorm.DB, award *model.XPAward) error {
	result := tx.WithContext(ctx).Create(award)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return model.ErrConflict
		}
		return result.Error
	}
	return nil
}

func (r *gormXPAwardRepository) Exists(ctx context.Context, db *gorm.DB, userID, topicID uuid.UUID, kind model.AwardKind) (bool, error) {
	var count int64
	result := db.WithContext(ctx).
		Model(&model.XPAward{}).
		Where("user_id = ? AND topic_id = ? AND kind = ?", userID, topicID, kind).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}

func (r *gormXPAwardRepository) SumByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) (int, error) {
	var total int64
	result := db.WithContext(ctx).
		Model(&model.XPAward{}).
		Where("user_id = ?", userID).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total)
	if result.Error != nil {
		return 0, result.Error
	}
	return int(total), nil
}
