// internal/model/read_record.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// ReadRecord はトピックの読了状態を表します。
// (user, topic) ごとに1レコードで、読了後に未読へ戻ることはありません。
type ReadRecord struct {
	ReadID      uuid.UUID  `gorm:"type:uuid;primaryKey" json:"read_id"`
	UserID      uuid.UUID  `gorm:"type:uuid;not null;index:idx_user_topic,unique" json:"user_id"`
	TopicID     uuid.UUID  `gorm:"type:uuid;not null;index:idx_user_topic,unique" json:"topic_id"`
	Completed   bool       `gorm:"not null;default:false" json:"completed"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func (ReadRecord) TableName() string {
	return "read_records"
}

// ReadProgressRequest はスクロール読了率の送信DTO
type ReadProgressRequest struct {
	Ratio *float64 `json:"ratio" validate:"required,min=0,max=1"`
}

// ReadProgressResponse は読了更新の結果DTO
type ReadProgressResponse struct {
	Completed bool      `json:"completed"`
	XP        *XPResult `json:"xp,omitempty"` // 読了XPが発生した場合のみ
}
