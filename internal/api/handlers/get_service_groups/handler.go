package get_service_groups

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

// Handle GET /api/v1/service-groups
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.ListCategories(r.Context())
	if err != nil {
		h.logger.Error("GET /service-groups - Failed to list service groups: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /service-groups - Service groups retrieved successfully: count=%d", len(categories))
	handlers.RespondJSON(w, http.StatusOK, FromDomain(categories))
}
