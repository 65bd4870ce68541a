package set_step

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	"github.com/m04kA/SMC-SalonService/internal/api/handlers/sessionview"
	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/internal/service/selection"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidStep        = "некорректный номер шага"
	msgSessionNotFound    = "сессия бронирования не найдена или истекла"
	msgStepIncomplete     = "промежуточный шаг не завершен, переход вперед невозможен"
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

// Handle POST /api/v1/booking-sessions/{sessionId}/step
// Переход по индикатору шагов: назад свободно, вперед - только через
// завершенные шаги
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	var req SetStepRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /booking-sessions/{id}/step - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	sel, err := h.service.GoToStep(r.Context(), sessionID, domain.Step(req.Step))
	if err != nil {
		switch {
		case errors.Is(err, selection.ErrSessionNotFound):
			h.logger.Warn("POST /booking-sessions/{id}/step - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, selection.ErrInvalidStep):
			h.logger.Warn("POST /booking-sessions/{id}/step - Invalid step: session_id=%s, step=%d",
				sessionID, req.Step)
			handlers.RespondBadRequest(w, msgInvalidStep)

		case errors.Is(err, selection.ErrStepGate):
			h.logger.Warn("POST /booking-sessions/{id}/step - Step gate not satisfied: session_id=%s, step=%d",
				sessionID, req.Step)
			handlers.RespondError(w, http.StatusConflict, msgStepIncomplete)

		default:
			h.logger.Error("POST /booking-sessions/{id}/step - Failed to go to step: session_id=%s, error=%v",
				sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /booking-sessions/{id}/step - Step changed: session_id=%s, step=%d", sessionID, sel.Step)
	handlers.RespondJSON(w, http.StatusOK, sessionview.FromSelection(sel))
}
