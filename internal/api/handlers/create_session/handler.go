package create_session

import (
	"net/http"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	"github.com/m04kA/SMC-SalonService/internal/api/handlers/sessionview"
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

// Handle POST /api/v1/booking-sessions
// Query params: service (optional, slug услуги для предзаполнения из deep-link)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var seedSlug *string
	if raw := r.URL.Query().Get("service"); raw != "" {
		seedSlug = &raw
	}

	sel, seeded, err := h.service.Create(r.Context(), seedSlug)
	if err != nil {
		h.logger.Error("POST /booking-sessions - Failed to create session: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /booking-sessions - Session created: session_id=%s, seeded=%t", sel.ID, seeded)
	handlers.RespondJSON(w, http.StatusCreated, &CreateSessionResponse{
		SessionResponse: sessionview.FromSelection(sel),
		SeededFromLink:  seeded,
	})
}
