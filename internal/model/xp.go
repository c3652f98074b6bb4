// internal/model/xp.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// AwardKind はXP付与の種別
type AwardKind string

const (
	AwardKindTopicRead AwardKind = "topic_read"
	AwardKindQuizPass  AwardKind = "quiz_pass"
)

// XPAward は確定したXP付与1件を表す台帳レコードです。
// (user, topic, kind) の複合ユニーク制約が二重付与を防ぎます。
type XPAward struct {
	AwardID   uuid.UUID `gorm:"type:uuid;primaryKey" json:"award_id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index:idx_user_topic_kind,unique" json:"user_id"`
	TopicID   uuid.UUID `gorm:"type:uuid;not null;index:idx_user_topic_kind,unique" json:"topic_id"`
	Kind      AwardKind `gorm:"type:varchar(20);not null;index:idx_user_topic_kind,unique" json:"kind"`
	Amount    int       `gorm:"not null" json:"amount"`
	CreatedAt time.Time `json:"created_at"`
}

func (XPAward) TableName() string {
	return "xp_awards"
}

// XPResult はXP付与操作の結果DTO。
// 二重付与ガードが働いた場合 AwardedXP は 0 になります。
type XPResult struct {
	AwardedXP int  `json:"awarded_xp"`
	TotalXP   int  `json:"total_xp"`
	Level     int  `json:"level"`
	LeveledUp bool `json:"leveled_up"`
	XPToNext  int  `json:"xp_to_next"`
}
