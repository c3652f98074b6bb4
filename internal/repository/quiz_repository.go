// internal/repository/quiz_repository.go
package repository

import (
	"context"
	"errors"

	"go_manabi_quest/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type QuizRepository interface {
	// FindByID は設問 (Position 昇順) をPreloadして返します
	FindByID(ctx context.Context, db *gorm.DB, quizID uuid.UUID) (*model.Quiz, error)
	// FindMetaByIDs はクイズ → トピック → レッスンを辿り、集計に必要な属性を返します
	FindMetaByIDs(ctx context.Context, db *gorm.DB, quizIDs []uuid.UUID) (map[uuid.UUID]model.QuizMeta, error)
}

type gormQuizRepository struct{}

func NewGormQuizRepository() QuizRepository {
	return &gormQuizRepository{}
}

func (r *gormQuizRepository) FindByID(ctx context.Context, db *gorm.DB, quizID uuid.UUID) (*model.Quiz, error) {
	var quiz model.Quiz
	result := db.WithContext(ctx).
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("quiz_questions.position ASC")
		}).
		Where("quiz_id = ?", quizID).
		First(&quiz)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		return nil, result.Error
	}
	return &quiz, nil
}

func (r *gormQuizRepository) FindMetaByIDs(ctx context.Context, db *gorm.DB, quizIDs []uuid.UUID) (map[uuid.UUID]model.QuizMeta, error) {
	meta := make(map[uuid.UUID]model.QuizMeta, len(quizIDs))
	if len(quizIDs) == 0 {
		return meta, nil
	}

	type row struct {
		QuizID       uuid.UUID
		PassingScore int
		Category     string
	}
	var rows []row
	result := db.WithContext(ctx).
		Table("quizzes").
		Select("quizzes.quiz_id, quizzes.passing_score, lessons.category").
		Joins("JOIN topics ON topics.topic_id = quizzes.topic_id AND topics.deleted_at IS NULL").
		Joins("JOIN lessons ON lessons.lesson_id = topics.lesson_id AND lessons.deleted_at IS NULL").
		Where("quizzes.quiz_id IN ? AND quizzes.deleted_at IS NULL", quizIDs).
		Scan(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	for _, rw := range rows {
		meta[rw.QuizID] = model.QuizMeta{
			Category:     rw.Category,
			PassingScore: rw.PassingScore,
		}
	}
	return meta, nil
}
