// internal/handlers/quiz_handler.go
package handlers

import (
	"errors"
	"net/http"

	"go_manabi_quest/internal/middleware"
	"go_manabi_quest/internal/model"
	"go_manabi_quest/internal/service"
	"go_manabi_quest/internal/webutil"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type QuizHandler struct {
	service service.QuizService
}

func NewQuizHandler(s service.QuizService) *QuizHandler {
	return &QuizHandler{service: s}
}

// GetQuiz は出題用のクイズを返します (正解は含まれません)
func (h *QuizHandler) GetQuiz(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	quizID, err := uuid.Parse(chi.URLParam(r, "quiz_id"))
	if err != nil {
		logger.Warn("Invalid quiz ID format", "quiz_id", chi.URLParam(r, "quiz_id"))
		appErr := model.NewAppError("INVALID_ID", "クイズIDの形式が正しくありません。", "quiz_id", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	quiz, err := h.service.GetQuiz(r.Context(), quizID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, quiz)
}

// SubmitAttempt は解答を受け付け、採点結果とXP付与の結果を返します
func (h *QuizHandler) SubmitAttempt(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	quizID, err := uuid.Parse(chi.URLParam(r, "quiz_id"))
	if err != nil {
		logger.Warn("Invalid quiz ID format", "quiz_id", chi.URLParam(r, "quiz_id"))
		appErr := model.NewAppError("INVALID_ID", "クイズIDの形式が正しくありません。", "quiz_id", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	var req model.SubmitAttemptRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode attempt request body", "error", err)
		webutil.HandleError(w, logger, err)
		return
	}

	if err := webutil.Validator.Struct(req); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			logger.Warn("Validation failed for attempt submission", "errors", validationErrors.Error())
			webutil.HandleError(w, logger, webutil.NewValidationErrorResponse(validationErrors))
		} else {
			logger.Error("Unexpected error during validation for attempt submission", "error", err)
			webutil.HandleError(w, logger, err)
		}
		return
	}

	result, err := h.service.SubmitAttempt(r.Context(), userID, quizID, &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusCreated, result)
}
