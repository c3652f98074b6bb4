// internal/handlers/quiz_handler_test.go
package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go_manabi_quest/internal/model"
	"go_manabi_quest/internal/service/mocks"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// withUser は認証ミドルウェアを通過した状態のリクエストを作ります
func withUser(r *http.Request, userID uuid.UUID) *http.Request {
	ctx := context.WithValue(r.Context(), model.UserIDKey, userID)
	return r.WithContext(ctx)
}

func Test_QuizHandler_GetQuiz(t *testing.T) {
	quizID := uuid.New()
	userID := uuid.New()

	t.Run("正常系: クイズが返る", func(t *testing.T) {
		mockService := new(mocks.QuizService)
		mockService.On("GetQuiz", mock.Anything, quizID).
			Return(&model.QuizResponse{
				QuizID:       quizID,
				TopicID:      uuid.New(),
				Title:        "確認クイズ",
				PassingScore: 70,
				Questions:    []model.QuizQuestionResponse{},
			}, nil).Once()

		handler := NewQuizHandler(mockService)
		r := chi.NewRouter()
		r.Get("/quizzes/{quiz_id}", handler.GetQuiz)

		req := httptest.NewRequest(http.MethodGet, "/quizzes/"+quizID.String(), nil)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, withUser(req, userID))

		assert.Equal(t, http.StatusOK, rec.Code)

		var resp model.QuizResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, quizID, resp.QuizID)
		assert.Equal(t, "確認クイズ", resp.Title)
		mockService.AssertExpectations(t)
	})

	t.Run("異常系: クイズが存在しない場合は404", func(t *testing.T) {
		mockService := new(mocks.QuizService)
		mockService.On("GetQuiz", mock.Anything, quizID).
			Return(nil, model.NewAppError("QUIZ_NOT_FOUND", "クイズが見つかりません。", "", model.ErrNotFound)).Once()

		handler := NewQuizHandler(mockService)
		r := chi.NewRouter()
		r.Get("/quizzes/{quiz_id}", handler.GetQuiz)

		req := httptest.NewRequest(http.MethodGet, "/quizzes/"+quizID.String(), nil)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, withUser(req, userID))

		assert.Equal(t, http.StatusNotFound, rec.Code)

		var errResp model.APIErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errResp))
		assert.Equal(t, "QUIZ_NOT_FOUND", errResp.Error.Code)
	})

	t.Run("異常系: クイズIDがUUIDでない場合は400", func(t *testing.T) {
		mockService := new(mocks.QuizService)

		handler := NewQuizHandler(mockService)
		r := chi.NewRouter()
		r.Get("/quizzes/{quiz_id}", handler.GetQuiz)

		req := httptest.NewRequest(http.MethodGet, "/quizzes/not-a-uuid", nil)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, withUser(req, userID))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		mockService.AssertNotCalled(t, "GetQuiz")
	})
}

func Test_QuizHandler_SubmitAttempt(t *testing.T) {
	quizID := uuid.New()
	userID := uuid.New()
	questionID := uuid.New()

	t.Run("正常系: 解答が受理され201と結果が返る", func(t *testing.T) {
		mockService := new(mocks.QuizService)
		mockService.On("SubmitAttempt", mock.Anything, userID, quizID, mock.MatchedBy(func(req *model.SubmitAttemptRequest) bool {
			return req.Answers[questionID.String()] == "a"
		})).Return(&model.AttemptResultResponse{
			AttemptID: uuid.New(),
			Score:     85,
			Passed:    true,
			XP:        &model.XPResult{AwardedXP: 170, TotalXP: 170, Level: 1, XPToNext: 330},
		}, nil).Once()

		handler := NewQuizHandler(mockService)
		r := chi.NewRouter()
		r.Post("/quizzes/{quiz_id}/attempts", handler.SubmitAttempt)

		body, _ := json.Marshal(map[string]any{
			"answers": map[string]string{questionID.String(): "a"},
		})
		req := httptest.NewRequest(http.MethodPost, "/quizzes/"+quizID.String()+"/attempts", bytes.NewReader(body))
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, withUser(req, userID))

		assert.Equal(t, http.StatusCreated, rec.Code)

		var resp model.AttemptResultResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, 85, resp.Score)
		assert.True(t, resp.Passed)
		require.NotNil(t, resp.XP)
		assert.Equal(t, 170, resp.XP.AwardedXP)
		mockService.AssertExpectations(t)
	})

	t.Run("異常系: answersがないボディは400", func(t *testing.T) {
		mockService := new(mocks.QuizService)

		handler := NewQuizHandler(mockService)
		r := chi.NewRouter()
		r.Post("/quizzes/{quiz_id}/attempts", handler.SubmitAttempt)

		req := httptest.NewRequest(http.MethodPost, "/quizzes/"+quizID.String()+"/attempts", bytes.NewReader([]byte(`{}`)))
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, withUser(req, userID))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		mockService.AssertNotCalled(t, "SubmitAttempt")
	})

	t.Run("異常系: 不正なJSONは400", func(t *testing.T) {
		mockService := new(mocks.QuizService)

		handler := NewQuizHandler(mockService)
		r := chi.NewRouter()
		r.Post("/quizzes/{quiz_id}/attempts", handler.SubmitAttempt)

		req := httptest.NewRequest(http.MethodPost, "/quizzes/"+quizID.String()+"/attempts", bytes.NewReader([]byte(`{not json`)))
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, withUser(req, userID))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		mockService.AssertNotCalled(t, "SubmitAttempt")
	})
}
