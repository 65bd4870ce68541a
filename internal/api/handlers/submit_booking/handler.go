package submit_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	submitBooking "github.com/m04kA/SMC-SalonService/internal/usecase/submit_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgSessionNotFound    = "сессия бронирования не найдена или истекла"
	msgIncompleteBooking  = "выбор неполон: нужны услуга, дата и время"
	msgInvalidContact     = "контактные данные заполнены некорректно"
	msgBookingUnavailable = "сервис бронирования временно недоступен, попробуйте позже"
)

type Handler struct {
	useCase SubmitBookingUseCase
	logger  Logger
}

func NewHandler(useCase SubmitBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/booking-sessions/{sessionId}/submit
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	var req SubmitBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /booking-sessions/{id}/submit - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(sessionID))
	if err != nil {
		switch {
		case errors.Is(err, submitBooking.ErrSessionNotFound):
			h.logger.Warn("POST /booking-sessions/{id}/submit - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, submitBooking.ErrIncompleteBooking):
			h.logger.Warn("POST /booking-sessions/{id}/submit - Incomplete selection: session_id=%s, error=%v",
				sessionID, err)
			handlers.RespondError(w, http.StatusConflict, msgIncompleteBooking)

		case errors.Is(err, submitBooking.ErrInvalidContact):
			h.logger.Warn("POST /booking-sessions/{id}/submit - Invalid contact: session_id=%s, error=%v",
				sessionID, err)
			handlers.RespondBadRequest(w, msgInvalidContact)

		case errors.Is(err, submitBooking.ErrBookingRejected):
			// Бизнес-отказ: сообщение из ответа сервиса бронирований
			// отдается клиенту как есть
			message := msgBookingUnavailable
			var rejected *submitBooking.RejectedError
			if errors.As(err, &rejected) && rejected.Message != "" {
				message = rejected.Message
			}
			h.logger.Warn("POST /booking-sessions/{id}/submit - Booking rejected: session_id=%s, message=%q",
				sessionID, message)
			handlers.RespondError(w, http.StatusConflict, message)

		case errors.Is(err, submitBooking.ErrBookingFailed):
			h.logger.Error("POST /booking-sessions/{id}/submit - Booking service unavailable: session_id=%s, error=%v",
				sessionID, err)
			handlers.RespondError(w, http.StatusBadGateway, msgBookingUnavailable)

		default:
			h.logger.Error("POST /booking-sessions/{id}/submit - Failed to submit booking: session_id=%s, error=%v",
				sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /booking-sessions/{id}/submit - Booking submitted: session_id=%s, confirmation_id=%s",
		sessionID, result.ConfirmationID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
