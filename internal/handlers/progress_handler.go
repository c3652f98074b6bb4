// internal/handlers/progress_handler.go
package handlers

import (
	"net/http"

	"go_manabi_quest/internal/middleware"
	"go_manabi_quest/internal/service"
	"go_manabi_quest/internal/webutil"
)

type ProgressHandler struct {
	service service.ProgressService
}

func NewProgressHandler(s service.ProgressService) *ProgressHandler {
	return &ProgressHandler{service: s}
}

// GetProgress は学習者の進捗スナップショットを返します
func (h *ProgressHandler) GetProgress(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	snapshot, err := h.service.GetSnapshot(r.Context(), userID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, snapshot)
}
