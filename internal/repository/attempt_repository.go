// internal/repository/attempt_repository.go
package repository

import (
	"context"

	"go_manabi_quest/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AttemptRepository は解答ログ (追記専用) へのアクセスを提供します。
// Update / Delete は提供しません。
type AttemptRepository interface {
	Create(ctx context.Context, tx *gorm.DB, attempt *model.QuizAttempt) error
	FindByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]*model.QuizAttempt, error)
	FindByUserAndQuizzes(ctx context.Context, db *gorm.DB, userID uuid.UUID, quizIDs []uuid.UUID) ([]*model.QuizAttempt, error)
	CountByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) (int64, error)
}

type gormAttemptRepository struct{}

func NewGormAttemptRepository() AttemptRepository {
	return &gormAttemptRepository{}
}

func (r *gormAttemptRepository) Create(ctx context.Context, tx *gorm.DB, attempt *model.QuizAttempt) error {
	return tx.WithContext(ctx).Create(attempt).Error
}

func (r *gormAttemptRepository) FindByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]*model.QuizAttempt, error) {
	var attempts []*model.QuizAttempt
	result := db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&attempts)
	if result.Error != nil {
		return nil, result.Error
	}
	return attempts, nil
}

func (r *gormAttemptRepository) FindByUserAndQuizzes(ctx context.Context, db *gorm.DB, userID uuid.UUID, quizIDs []uuid.UUID) ([]*model.QuizAttempt, error) {
	var attempts []*model.QuizAttempt
	if len(quizIDs) == 0 {
		return attempts, nil
	}
	result := db.WithContext(ctx).
		Where("user_id = ? AND quiz_id IN ?", userID, quizIDs).
		Order("created_at ASC").
		Find(&attempts)
	if result.Error != nil {
		return nil, result.Error
	}
	return attempts, nil
}

func (r *gormAttemptRepository) CountByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) (int64, error) {
	var count int64
	result := db.WithContext(ctx).
		Model(&model.QuizAttempt{}).
		Where("user_id = ?", userID).
		Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}
	return count, nil
}
