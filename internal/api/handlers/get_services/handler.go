package get_services

import (
	"net/http"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
)

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/services
// Query params: category (optional, slug группы услуг)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var categorySlug *string
	if raw := r.URL.Query().Get("category"); raw != "" {
		categorySlug = &raw
	}

	services, err := h.service.ListServices(r.Context(), categorySlug)
	if err != nil {
		h.logger.Error("GET /services - Failed to list services: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /services - Services retrieved successfully: count=%d", len(services))
	handlers.RespondJSON(w, http.StatusOK, FromDomain(services))
}
