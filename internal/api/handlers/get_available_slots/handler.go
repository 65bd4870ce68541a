package get_available_slots

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	"github.com/m04kA/SMC-SalonService/internal/domain"
	resolveAvailability "github.com/m04kA/SMC-SalonService/internal/usecase/resolve_availability"
)

const (
	msgMissingDate      = "дата обязательна"
	msgInvalidDate      = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgDateInPast       = "дата не может быть раньше сегодняшней"
	msgInvalidServiceID = "некорректный ID услуги"
	msgSessionNotFound  = "сессия бронирования не найдена или истекла"
)

type Handler struct {
	useCase ResolveAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase ResolveAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/booking-sessions/{sessionId}/available-slots
// Query params: date (required, YYYY-MM-DD), serviceId (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /booking-sessions/{id}/available-slots - Missing date: session_id=%s", sessionID)
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		h.logger.Warn("GET /booking-sessions/{id}/available-slots - Invalid date format: session_id=%s, date=%q",
			sessionID, dateStr)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	var serviceID *int64
	if raw := r.URL.Query().Get("serviceId"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			h.logger.Warn("GET /booking-sessions/{id}/available-slots - Invalid service ID: session_id=%s, service_id=%q",
				sessionID, raw)
			handlers.RespondBadRequest(w, msgInvalidServiceID)
			return
		}
		serviceID = &id
	}

	result, err := h.useCase.Execute(r.Context(), resolveAvailability.Request{
		SessionID: sessionID,
		Date:      date,
		ServiceID: serviceID,
	})
	if err != nil {
		switch {
		case errors.Is(err, resolveAvailability.ErrSessionNotFound):
			h.logger.Warn("GET /booking-sessions/{id}/available-slots - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, resolveAvailability.ErrInvalidDate):
			h.logger.Warn("GET /booking-sessions/{id}/available-slots - Date in past: session_id=%s, date=%s",
				sessionID, dateStr)
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, resolveAvailability.ErrInvalidInput):
			h.logger.Warn("GET /booking-sessions/{id}/available-slots - Invalid input: session_id=%s, error=%v",
				sessionID, err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("GET /booking-sessions/{id}/available-slots - Failed to resolve slots: session_id=%s, error=%v",
				sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /booking-sessions/{id}/available-slots - Slots resolved: session_id=%s, date=%s, slots_count=%d, degraded=%t",
		sessionID, dateStr, len(result.Slots), result.Degraded)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
