// internal/handlers/topic_handler.go
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

type TopicHandler struct {
	service service.TopicService
}

func NewTopicHandler(s service.TopicService) *TopicHandler {
	return &TopicHandler{service: s}
}

// GetLessonTopics はレッスン内のトピック一覧をアンロック状態付きで返します
func (h *TopicHandler) GetLessonTopics(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	lessonID, err := uuid.Parse(chi.URLParam(r, "lesson_id"))
	if err != nil {
		logger.Warn("Invalid lesson ID format", "lesson_id", chi.URLParam(r, "lesson_id"))
		appErr := model.NewAppError("INVALID_ID", "レッスンIDの形式が正しくありません。", "lesson_id", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	topics, err := h.service.GetLessonTopics(r.Context(), userID, lessonID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, topics)
}

// UpdateReadProgress はトピックのスクロール読了率を受け付けます
func (h *TopicHandler) UpdateReadProgress(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	topicID, err := uuid.Parse(chi.URLParam(r, "topic_id"))
	if err != nil {
		logger.Warn("Invalid topic ID format", "topic_id", chi.URLParam(r, "topic_id"))
		appErr := model.NewAppError("INVALID_ID", "トピックIDの形式が正しくありません。", "topic_id", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	var req model.ReadProgressRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode read progress request body", "error", err)
		webutil.HandleError(w, logger, err)
		return
	}

	if err := webutil.Validator.Struct(req); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			logger.Warn("Validation failed for read progress", "errors", validationErrors.Error())
			webutil.HandleError(w, logger, webutil.NewValidationErrorResponse(validationErrors))
		} else {
			logger.Error("Unexpected error during validation for read progress", "error", err)
			webutil.HandleError(w, logger, err)
		}
		return
	}

	result, err := h.service.UpdateReadProgress(r.Context(), userID, topicID, *req.Ratio)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, result)
}
