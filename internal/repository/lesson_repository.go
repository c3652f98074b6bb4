// internal/repository/lesson_repository.go
package repository

import (
	"context"
	"errors"

	"go_manabi_quest/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type LessonRepository interface {
	FindByID(ctx context.Context, db *gorm.DB, lessonID uuid.UUID) (*model.Lesson, error)
	// FindTopicsByLesson はレッスン内のトピックを Position 昇順で返します (Quiz をPreload)
	FindTopicsByLesson(ctx context.Context, db *gorm.DB, lessonID uuid.UUID) ([]*model.Topic, error)
	FindTopicByID(ctx context.Context, db *gorm.DB, topicID uuid.UUID) (*model.Topic, error)
}

type gormLessonRepository struct{}

func NewGormLessonRepository() LessonRepository {
	return &gormLessonRepository{}
}

func (r *gormLessonRepository) FindByID(ctx context.Context, db *gorm.DB, lessonID uuid.UUID) (*model.Lesson, error) {
	var lesson model.Lesson
	result := db.WithContext(ctx).Where("lesson_id = ?", lessonID).First(&lesson)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		return nil, result.Error
	}
	return &lesson, nil
}

func (r *gormLessonRepository) FindTopicsByLesson(ctx context.Context, db *gorm.DB, lessonID uuid.UUID) ([]*model.Topic, error) {
	var topics []*model.Topic
	result := db.WithContext(ctx).
		Preload("Quiz", "deleted_at IS NULL").
		Where("lesson_id = ?", lessonID).
		Order("position ASC").
		Find(&topics)
	if result.Error != nil {
		return nil, result.Error
	}
	return topics, nil
}

func (r *gormLessonRepository) FindTopicByID(ctx context.Context, db *gorm.DB, topicID uuid.UUID) (*model.Topic, error) {
	var topic model.Topic
	result := db.WithContext(ctx).Where("topic_id = ?", topicID).First(&topic)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		return nil, result.Error
	}
	return &topic, nil
}
