package auth_session

import (
	"net/http"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
)

const (
	msgAuthUnavailable = "сервис аутентификации временно недоступен"
)

type Handler struct {
	client AuthServiceClient
	logger Logger
}

func NewHandler(client AuthServiceClient, logger Logger) *Handler {
	return &Handler{
		client: client,
		logger: logger,
	}
}

// Handle GET /api/v1/auth/session
// Cookie заголовок проксируется сервису аутентификации как есть:
// механика сессий - внешняя граница, ядро бронирования ее не знает
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	session, err := h.client.CurrentSession(r.Context(), r.Header.Get("Cookie"))
	if err != nil {
		h.logger.Error("GET /auth/session - Failed to get session: error=%v", err)
		handlers.RespondError(w, http.StatusBadGateway, msgAuthUnavailable)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, session)
}
