package select_time

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	"github.com/m04kA/SMC-SalonService/internal/api/handlers/sessionview"
	"github.com/m04kA/SMC-SalonService/internal/service/selection"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidTimeFormat  = "некорректный формат времени, ожидается HH:MM"
	msgNoDateSelected     = "время нельзя выбрать до выбора даты"
	msgSessionNotFound    = "сессия бронирования не найдена или истекла"
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

// Handle POST /api/v1/booking-sessions/{sessionId}/time
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	var req SelectTimeRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /booking-sessions/{id}/time - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	label, err := types.NewTimeStringFromString(req.Time)
	if err != nil {
		h.logger.Warn("POST /booking-sessions/{id}/time - Invalid time format: session_id=%s, time=%q",
			sessionID, req.Time)
		handlers.RespondBadRequest(w, msgInvalidTimeFormat)
		return
	}

	sel, err := h.service.SelectTime(r.Context(), sessionID, label)
	if err != nil {
		switch {
		case errors.Is(err, selection.ErrSessionNotFound):
			h.logger.Warn("POST /booking-sessions/{id}/time - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, selection.ErrNoDateSelected):
			h.logger.Warn("POST /booking-sessions/{id}/time - Time chosen before date: session_id=%s", sessionID)
			handlers.RespondError(w, http.StatusConflict, msgNoDateSelected)

		case errors.Is(err, selection.ErrInvalidTime):
			h.logger.Warn("POST /booking-sessions/{id}/time - Invalid time label: session_id=%s, time=%q",
				sessionID, req.Time)
			handlers.RespondBadRequest(w, msgInvalidTimeFormat)

		default:
			h.logger.Error("POST /booking-sessions/{id}/time - Failed to select time: session_id=%s, error=%v",
				sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /booking-sessions/{id}/time - Time selected: session_id=%s, time=%s", sessionID, req.Time)
	handlers.RespondJSON(w, http.StatusOK, sessionview.FromSelection(sel))
}
