package get_available_slots

import (
	"github.com/m04kA/SMC-SalonService/internal/domain"
	resolveAvailability "github.com/m04kA/SMC-SalonService/internal/usecase/resolve_availability"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Date      string   `json:"date"`
	ServiceID *int64   `json:"serviceId,omitempty"`
	Slots     []string `json:"availableSlots"`

	// UsingFallbackSchedule true, когда слоты взяты из офлайн-расписания
	UsingFallbackSchedule bool `json:"usingFallbackSchedule"`
	FromCache             bool `json:"fromCache"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *resolveAvailability.Response) *AvailableSlotsResponse {
	slots := make([]string, 0, len(resp.Slots))
	for _, slot := range resp.Slots {
		slots = append(slots, slot.String())
	}
	return &AvailableSlotsResponse{
		Date:                  resp.Date.Format(domain.DateFormat),
		ServiceID:             resp.ServiceID,
		Slots:                 slots,
		UsingFallbackSchedule: resp.Degraded,
		FromCache:             resp.FromCache,
	}
}
