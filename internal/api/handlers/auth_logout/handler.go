package auth_logout

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

// Handle POST /api/v1/auth/logout
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.client.Logout(r.Context(), r.Header.Get("Cookie"))
	if err != nil {
		h.logger.Error("POST /auth/logout - Failed to logout: error=%v", err)
		handlers.RespondError(w, http.StatusBadGateway, msgAuthUnavailable)
		return
	}

	h.logger.Info("POST /auth/logout - Session terminated")
	handlers.RespondJSON(w, http.StatusOK, result)
}
