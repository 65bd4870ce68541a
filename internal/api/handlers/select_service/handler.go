package select_service

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
	msgInvalidServiceID   = "некорректный ID услуги"
	msgSessionNotFound    = "сессия бронирования не найдена или истекла"
	msgServiceNotFound    = "услуга не найдена"
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

// Handle POST /api/v1/booking-sessions/{sessionId}/service
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	var req SelectServiceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /booking-sessions/{id}/service - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if req.ServiceID <= 0 {
		h.logger.Warn("POST /booking-sessions/{id}/service - Invalid service ID: session_id=%s, service_id=%d",
			sessionID, req.ServiceID)
		handlers.RespondBadRequest(w, msgInvalidServiceID)
		return
	}

	sel, err := h.service.SelectService(r.Context(), sessionID, req.ServiceID)
	if err != nil {
		switch {
		case errors.Is(err, selection.ErrSessionNotFound):
			h.logger.Warn("POST /booking-sessions/{id}/service - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, selection.ErrServiceNotFound):
			h.logger.Warn("POST /booking-sessions/{id}/service - Service not found: session_id=%s, service_id=%d",
				sessionID, req.ServiceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		default:
			h.logger.Error("POST /booking-sessions/{id}/service - Failed to select service: session_id=%s, error=%v",
				sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /booking-sessions/{id}/service - Service selected: session_id=%s, service_id=%d",
		sessionID, req.ServiceID)
	handlers.RespondJSON(w, http.StatusOK, sessionview.FromSelection(sel))
}
