// internal/model/lesson.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Lesson はカリキュラム内のレッスン (トピックの親) を表します
type Lesson struct {
	LessonID  uuid.UUID      `gorm:"type:uuid;primaryKey" json:"lesson_id"`
	Title     string         `gorm:"not null" json:"title"`
	Category  string         `gorm:"not null;index" json:"category"` // 集計のカテゴリ軸 (例: "ICT", "Tourism")
	Position  int            `gorm:"not null" json:"position"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// 関連 (Preload用)
	Topics []Topic `gorm:"foreignKey:LessonID" json:"-"`
}

func (Lesson) TableName() string {
	return "lessons"
}

// Topic はレッスン内の学習単位 (読み物 + 任意のクイズ) を表します。
// Position はレッスン内で一意で、アンロック連鎖の順序を定めます。
type Topic struct {
	TopicID   uuid.UUID      `gorm:"type:uuid;primaryKey" json:"topic_id"`
	LessonID  uuid.UUID      `gorm:"type:uuid;not null;index:idx_lesson_position,unique" json:"lesson_id"`
	Position  int            `gorm:"not null;index:idx_lesson_position,unique" json:"position"`
	Title     string         `gorm:"not null" json:"title"`
	Body      string         `json:"body"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// 関連 (Preload用)。クイズを持たないトピックでは nil。
	Quiz *Quiz `gorm:"foreignKey:TopicID;references:TopicID" json:"-"`
}

func (Topic) TableName() string {
	return "topics"
}

// TopicUnlockState はアンロック評価の結果 (1トピック分)
type TopicUnlockState struct {
	TopicID   uuid.UUID `json:"topic_id"`
	Locked    bool      `json:"locked"`
	Completed bool      `json:"completed"`
}

// TopicStateResponse はレッスン画面向けのトピック一覧レスポンスDTO
type TopicStateResponse struct {
	TopicID   uuid.UUID  `json:"topic_id"`
	Title     string     `json:"title"`
	Position  int        `json:"position"`
	QuizID    *uuid.UUID `json:"quiz_id,omitempty"`
	Locked    bool       `json:"locked"`
	Completed bool       `json:"completed"`
}
