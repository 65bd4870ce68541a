package retreat_step

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	"github.com/m04kA/SMC-SalonService/internal/api/handlers/sessionview"
	"github.com/m04kA/SMC-SalonService/internal/service/selection"
)

const (
	msgSessionNotFound = "сессия бронирования не найдена или истекла"
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

// Handle POST /api/v1/booking-sessions/{sessionId}/retreat
// С первого шага - no-op: возвращается текущее состояние без изменений
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	sel, err := h.service.Retreat(r.Context(), sessionID)
	if err != nil {
		switch {
		case errors.Is(err, selection.ErrSessionNotFound):
			h.logger.Warn("POST /booking-sessions/{id}/retreat - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		default:
			h.logger.Error("POST /booking-sessions/{id}/retreat - Failed to retreat: session_id=%s, error=%v",
				sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /booking-sessions/{id}/retreat - Retreated: session_id=%s, step=%d", sessionID, sel.Step)
	handlers.RespondJSON(w, http.StatusOK, sessionview.FromSelection(sel))
}
