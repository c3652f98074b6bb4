// internal/service/scoring.go
package service

import (
	"math"

	"go_manabi_quest/internal/model"

	"github.com/google/uuid"
)

// ComputeScore は解答を採点し、0-100の整数パーセントを返します。
// answers は設問ID → 選択した選択肢のマップで、未回答の設問があっても構いません (不正解扱い)。
// 設問が0件のクイズは採点できないためエラーになります。副作用はありません。
func ComputeScore(questions []model.QuizQuestion, answers map[uuid.UUID]string) (int, error) {
	if len(questions) == 0 {
		return 0, model.NewAppError("INVALID_QUIZ", "設問のないクイズは採点できません。", "", model.ErrInvalidInput)
	}

	correct := 0
	for _, q := range questions {
		if selected, ok := answers[q.QuestionID]; ok && selected == q.CorrectChoice {
			correct++
		}
	}

	return int(math.Round(float64(correct) / float64(len(questions)) * 100)), nil
}
