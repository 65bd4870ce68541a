package get_service_groups

import (
	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// ServiceGroupView HTTP представление группы услуг
type ServiceGroupView struct {
	ID          int64             `json:"id"`
	Slug        string            `json:"slug"`
	Name        map[string]string `json:"name"`
	Description map[string]string `json:"description,omitempty"`
}

// ServiceGroupsResponse HTTP response model
type ServiceGroupsResponse struct {
	ServiceGroups []ServiceGroupView `json:"serviceGroups"`
}

// FromDomain конвертирует список групп в HTTP response
func FromDomain(categories []*domain.ServiceCategory) *ServiceGroupsResponse {
	views := make([]ServiceGroupView, 0, len(categories))
	for _, c := range categories {
		views = append(views, ServiceGroupView{
			ID:          c.ID,
			Slug:        c.Slug,
			Name:        c.Name,
			Description: c.Description,
		})
	}
	return &ServiceGroupsResponse{ServiceGroups: views}
}
