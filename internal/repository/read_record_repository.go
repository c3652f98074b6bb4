// internal/repository/read_record_repository.go
package repository

import (
	"context"
	"errors"

	"go_manabi_quest/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ReadRecordRepository interface {
	Find(ctx context.Context, db *gorm.DB, userID, topicID uuid.UUID) (*model.ReadRecord, error)
	Create(ctx context.Context, tx *gorm.DB, record *model.ReadRecord) error
	Update(ctx context.Context, tx *gorm.DB, record *model.ReadRecord) error
	CountCompletedByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) (int64, error)
}

type gormReadRecordRepository struct{}

func NewGormReadRecordRepository() ReadRecordRepository {
	return &gormReadRecordRepository{}
}

func (r *gormReadRecordRepository) Find(ctx context.Context, db *gorm.DB, userID, topicID uuid.UUID) (*model.ReadRecord, error) {
	var record model.ReadRecord
	result := db.WithContext(ctx).Where("user_id = ? AND topic_id = ?", userID, topicID).First(&record)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		return nil, result.Error
	}
	return &record, nil
}

func (r *gormReadRecordRepository) Create(ctx context.Context, tx *gorm.DB, record *model.ReadRecord) error {
	result := tx.WithContext(ctx).Create(record)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return model.ErrConflict
		}
		return result.Error
	}
	return nil
}

func (r *gormReadRecordRepository) Update(ctx context.Context, tx *gorm.DB, record *model.ReadRecord) error {
	return tx.WithContext(ctx).Save(record).Error
}

func (r *gormReadRecordRepository) CountCompletedByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) (int64, error) {
	var count int64
	result := db.WithContext(ctx).
		Model(&model.ReadRecord{}).
		Where("user_id = ? AND completed = ?", userID, true).
		Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}
	return count, nil
}
