// internal/service/level.go
package service

import (
	"go_manabi_quest/internal/model"
)

// レベルは累計XPの純粋な階段関数で、level = totalXP / levelStep + 1。
// totalXP = 0 でレベル1。levelStep は設定値 (App.LevelStep)。

// LevelForXP は累計XPからレベルを求めます
func LevelForXP(totalXP, levelStep int) (int, error) {
	if levelStep <= 0 {
		return 0, model.NewAppError("INVALID_LEVEL_STEP", "レベルステップは正の値である必要があります。", "", model.ErrInvalidInput)
	}
	if totalXP < 0 {
		return 0, model.NewAppError("INVALID_XP", "累計XPは0以上である必要があります。", "", model.ErrInvalidInput)
	}
	return totalXP/levelStep + 1, nil
}

// XPThresholdForLevel はそのレベルに到達するために必要な最小XPを返します。
// すべての x >= 0 について
// XPThresholdForLevel(LevelForXP(x)) <= x < XPThresholdForLevel(LevelForXP(x)+1)
// が成り立ちます (境界での相互整合性)。
func XPThresholdForLevel(level, levelStep int) (int, error) {
	if levelStep <= 0 {
		return 0, model.NewAppError("INVALID_LEVEL_STEP", "レベルステップは正の値である必要があります。", "", model.ErrInvalidInput)
	}
	if level < 1 {
		return 0, model.NewAppError("INVALID_LEVEL", "レベルは1以上である必要があります。", "", model.ErrInvalidInput)
	}
	return (level - 1) * levelStep, nil
}

// XPToNextLevel は次のレベルまでに必要な残りXPを返します
func XPToNextLevel(totalXP, levelStep int) (int, error) {
	level, err := LevelForXP(totalXP, levelStep)
	if err != nil {
		return 0, err
	}
	nextThreshold, err := XPThresholdForLevel(level+1, levelStep)
	if err != nil {
		return 0, err
	}
	return nextThreshold - totalXP, nil
}
