// internal/model/quiz.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Quiz はトピックに1対1で紐づく確認クイズを表します
type Quiz struct {
	QuizID       uuid.UUID      `gorm:"type:uuid;primaryKey" json:"quiz_id"`
	TopicID      uuid.UUID      `gorm:"type:uuid;not null;unique" json:"topic_id"`
	Title        string         `gorm:"not null" json:"title"`
	PassingScore int            `gorm:"not null;default:70" json:"passing_score"` // 合格点 (パーセント)
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`

	// 関連 (Preload用)
	Questions []QuizQuestion `gorm:"foreignKey:QuizID" json:"-"`
}

func (Quiz) TableName() string {
	return "quizzes"
}

// QuizQuestion はクイズの設問を表します。選択肢はJSONで保持します。
type QuizQuestion struct {
	QuestionID    uuid.UUID `gorm:"type:uuid;primaryKey" json:"question_id"`
	QuizID        uuid.UUID `gorm:"type:uuid;not null;index" json:"quiz_id"`
	Position      int       `gorm:"not null" json:"position"`
	Text          string    `gorm:"not null" json:"text"`
	Choices       []string  `gorm:"serializer:json;not null" json:"choices"`
	CorrectChoice string    `gorm:"not null" json:"-"` // 正解はクライアントに返さない
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (QuizQuestion) TableName() string {
	return "quiz_questions"
}

// QuizResponse はクイズ出題用のレスポンスDTO (正解を含まない)
type QuizResponse struct {
	QuizID       uuid.UUID              `json:"quiz_id"`
	TopicID      uuid.UUID              `json:"topic_id"`
	Title        string                 `json:"title"`
	PassingScore int                    `json:"passing_score"`
	Questions    []QuizQuestionResponse `json:"questions"`
}

type QuizQuestionResponse struct {
	QuestionID uuid.UUID `json:"question_id"`
	Position   int       `json:"position"`
	Text       string    `json:"text"`
	Choices    []string  `json:"choices"`
}

// SubmitAttemptRequest は解答送信リクエストのDTO。
// キーは設問ID (UUID文字列)、値は選択した選択肢。
type SubmitAttemptRequest struct {
	Answers map[string]string `json:"answers" validate:"required"`
}

// AttemptResultResponse は解答送信の結果DTO
type AttemptResultResponse struct {
	AttemptID uuid.UUID `json:"attempt_id"`
	Score     int       `json:"score"`
	Passed    bool      `json:"passed"`
	XP        *XPResult `json:"xp"`
}
