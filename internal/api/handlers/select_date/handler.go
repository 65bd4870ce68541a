package select_date

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
	msgInvalidDateFormat  = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgDateInPast         = "дата не может быть раньше сегодняшней"
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

// Handle POST /api/v1/booking-sessions/{sessionId}/date
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	var req SelectDateRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /booking-sessions/{id}/date - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	date, err := req.ParseDate()
	if err != nil {
		h.logger.Warn("POST /booking-sessions/{id}/date - Invalid date format: session_id=%s, date=%q",
			sessionID, req.Date)
		handlers.RespondBadRequest(w, msgInvalidDateFormat)
		return
	}

	sel, err := h.service.SelectDate(r.Context(), sessionID, date)
	if err != nil {
		switch {
		case errors.Is(err, selection.ErrSessionNotFound):
			h.logger.Warn("POST /booking-sessions/{id}/date - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, selection.ErrInvalidDate):
			h.logger.Warn("POST /booking-sessions/{id}/date - Date in past: session_id=%s, date=%s",
				sessionID, req.Date)
			handlers.RespondBadRequest(w, msgDateInPast)

		default:
			h.logger.Error("POST /booking-sessions/{id}/date - Failed to select date: session_id=%s, error=%v",
				sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /booking-sessions/{id}/date - Date selected: session_id=%s, date=%s", sessionID, req.Date)
	handlers.RespondJSON(w, http.StatusOK, sessionview.FromSelection(sel))
}
