// internal/service/unlock.go
package service

import (
	"go_manabi_quest/internal/model"

	"github.com/google/uuid"
)

// ComputeUnlockState はレッスン内のアンロック状態を導出する純関数です。
// topics は Position 昇順であること。passedQuizzes は合格済みクイズIDの集合。
//
// ルール:
//   - 先頭トピックは常にアンロック。
//   - i > 0 のトピックは、直前トピックのクイズが合格済みならアンロック。
//     直前トピックにクイズがない場合はゲートなしとして自動的に充足する
//     (クイズ削除後のダングリング参照も Quiz が nil になるため同じ扱い)。
//   - ロック中のトピックはゲートを充足しない (連鎖は途切れる)。
//   - completed はそのトピック自身のクイズが合格済みかどうか。
//
// 前から1パスで評価し、空のスライスには空の結果を返します。
func ComputeUnlockState(topics []*model.Topic, passedQuizzes map[uuid.UUID]bool) []model.TopicUnlockState {
	states := make([]model.TopicUnlockState, 0, len(topics))

	prevSatisfied := true // 先頭は常にアンロック
	for _, t := range topics {
		state := model.TopicUnlockState{
			TopicID: t.TopicID,
			Locked:  !prevSatisfied,
		}
		if t.Quiz != nil {
			state.Completed = passedQuizzes[t.Quiz.QuizID]
		}

		// 次のトピックのゲート判定: ロック中なら充足しない
		if state.Locked {
			prevSatisfied = false
		} else if t.Quiz != nil {
			prevSatisfied = state.Completed
		} else {
			prevSatisfied = true
		}

		states = append(states, state)
	}

	return states
}
