package select_category

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	"github.com/m04kA/SMC-SalonService/internal/api/handlers/sessionview"
	"github.com/m04kA/SMC-SalonService/internal/service/selection"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingCategory    = "slug категории обязателен"
	msgSessionNotFound    = "сессия бронирования не найдена или истекла"
	msgCategoryNotFound   = "категория не найдена"
)

type Handler struct {
	service SelectionService
	logger  Logger
}

func NewHandler(service SelectionService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/booking-sessions/{sessionId}/category
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	var req SelectCategoryRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /booking-sessions/{id}/category - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if req.CategorySlug == "" {
		h.logger.Warn("POST /booking-sessions/{id}/category - Missing category slug: session_id=%s", sessionID)
		handlers.RespondBadRequest(w, msgMissingCategory)
		return
	}

	sel, err := h.service.SelectCategory(r.Context(), sessionID, req.CategorySlug)
	if err != nil {
		switch {
		case errors.Is(err, selection.ErrSessionNotFound):
			h.logger.Warn("POST /booking-sessions/{id}/category - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, selection.ErrCategoryNotFound):
			h.logger.Warn("POST /booking-sessions/{id}/category - Category not found: session_id=%s, slug=%s",
				sessionID, req.CategorySlug)
			handlers.RespondNotFound(w, msgCategoryNotFound)

		default:
			h.logger.Error("POST /booking-sessions/{id}/category - Failed to select category: session_id=%s, error=%v",
				sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /booking-sessions/{id}/category - Category selected: session_id=%s, slug=%s",
		sessionID, req.CategorySlug)
	handlers.RespondJSON(w, http.StatusOK, sessionview.FromSelection(sel))
}
