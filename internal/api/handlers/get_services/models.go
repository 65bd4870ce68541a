package get_services

import (
	"github.com/m04kA/SMC-SalonService/internal/api/handlers/sessionview"
	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// ServicesResponse HTTP response model
type ServicesResponse struct {
	Services []*sessionview.ServiceView `json:"services"`
}

// FromDomain конвертирует список услуг в HTTP response
func FromDomain(services []*domain.Service) *ServicesResponse {
	views := make([]*sessionview.ServiceView, 0, len(services))
	for _, s := range services {
		views = append(views, sessionview.FromService(s))
	}
	return &ServicesResponse{Services: views}
}
