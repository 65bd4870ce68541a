package sessionview

import (
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// ServiceView HTTP представление услуги каталога
// Name и Description отдаются целиком со всеми переводами - язык выбирает клиент
type ServiceView struct {
	ID              int64             `json:"id"`
	Slug            string            `json:"slug"`
	CategorySlug    string            `json:"categorySlug"`
	Name            map[string]string `json:"name"`
	Description     map[string]string `json:"description,omitempty"`
	DurationMinutes int               `json:"durationMinutes"`
	Price           float64           `json:"price"`
	ImageURL        *string           `json:"imageUrl,omitempty"`
}

// ContactView HTTP представление контактных данных
type ContactView struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// SessionResponse HTTP представление сессии бронирования
// Возвращается каждой операцией над сессией: клиент всегда видит полное
// актуальное состояние после перехода
type SessionResponse struct {
	SessionID    string       `json:"sessionId"`
	Step         int          `json:"step"`
	CategorySlug *string      `json:"categorySlug,omitempty"`
	Service      *ServiceView `json:"service,omitempty"`
	Date         *string      `json:"date,omitempty"` // YYYY-MM-DD
	Time         *string      `json:"time,omitempty"` // HH:MM
	Contact      ContactView  `json:"contact"`

	// AvailableSlots слоты, показанные для текущей выбранной даты
	AvailableSlots []string `json:"availableSlots,omitempty"`

	// UsingFallbackSchedule true, когда показанные слоты взяты из
	// офлайн-расписания - клиент обязан показать индикатор
	UsingFallbackSchedule bool `json:"usingFallbackSchedule"`

	// CanAdvance true, когда гейт текущего шага выполнен
	CanAdvance bool `json:"canAdvance"`

	// ReadyToSubmit true, когда выбор полон и контакты заполнены
	ReadyToSubmit bool `json:"readyToSubmit"`

	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// FromService конвертирует доменную услугу в HTTP представление
func FromService(s *domain.Service) *ServiceView {
	if s == nil {
		return nil
	}
	return &ServiceView{
		ID:              s.ID,
		Slug:            s.Slug,
		CategorySlug:    s.CategorySlug,
		Name:            s.Name,
		Description:     s.Description,
		DurationMinutes: s.DurationMinutes,
		Price:           s.Price,
		ImageURL:        s.ImageURL,
	}
}

// FromSelection конвертирует состояние сессии в HTTP представление
func FromSelection(sel *domain.BookingSelection) *SessionResponse {
	resp := &SessionResponse{
		SessionID:    sel.ID,
		Step:         int(sel.Step),
		CategorySlug: sel.CategorySlug,
		Service:      FromService(sel.Service),
		Contact: ContactView{
			Name:  sel.Contact.Name,
			Email: sel.Contact.Email,
			Phone: sel.Contact.Phone,
		},
		CanAdvance:    sel.Step != domain.StepDetails && sel.StepGateSatisfied(sel.Step),
		ReadyToSubmit: sel.ReadyToSubmit(),
		CreatedAt:     sel.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     sel.UpdatedAt.Format(time.RFC3339),
	}

	if sel.Date != nil {
		date := sel.Date.Format(domain.DateFormat)
		resp.Date = &date
	}
	if sel.Time != nil {
		label := sel.Time.String()
		resp.Time = &label
	}
	if sel.CurrentSlots != nil {
		slots := make([]string, 0, len(sel.CurrentSlots.Slots))
		for _, slot := range sel.CurrentSlots.Slots {
			slots = append(slots, slot.String())
		}
		resp.AvailableSlots = slots
		resp.UsingFallbackSchedule = sel.CurrentSlots.Degraded
	}

	return resp
}
