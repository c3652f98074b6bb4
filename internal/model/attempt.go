// internal/model/attempt.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// QuizAttempt は1回の解答提出を表します。
// 追記専用のログで、作成後は変更しません (同一ユーザー・同一クイズの複数回挑戦を許容)。
// 「合格」は保存せず、score >= quiz.PassingScore から導出します。
type QuizAttempt struct {
	AttemptID uuid.UUID         `gorm:"type:uuid;primaryKey" json:"attempt_id"`
	UserID    uuid.UUID         `gorm:"type:uuid;not null;index" json:"user_id"`
	QuizID    uuid.UUID         `gorm:"type:uuid;not null;index" json:"quiz_id"`
	Score     int               `gorm:"not null" json:"score"` // 0-100 の整数パーセント
	Answers   map[string]string `gorm:"serializer:json" json:"answers"`
	CreatedAt time.Time         `json:"created_at"`
}

func (QuizAttempt) TableName() string {
	return "quiz_attempts"
}

// QuizMeta は集計・合否判定に必要なクイズの属性 (クイズ → トピック → レッスンを辿った結果)
type QuizMeta struct {
	Category     string
	PassingScore int
}
