package bookingservice

// CreateBookingRequest нормализованный payload создания бронирования
// Название, цена и длительность услуги - снапшот на момент отправки,
// защищает историю от изменений каталога
type CreateBookingRequest struct {
	ServiceID       int64   `json:"service"`
	ServiceSlug     string  `json:"serviceSlug"`
	ServiceName     string  `json:"serviceName"`
	Price           float64 `json:"price"`
	DurationMinutes int     `json:"duration"`
	Date            string  `json:"date"` // "2025-03-10"
	Time            string  `json:"time"` // "14:00"
	Name            string  `json:"name"`
	Email           string  `json:"email"`
	Phone           string  `json:"phone"`
}

// CreateBookingResult ответ сервиса бронирований
// Success=false с Message - бизнес-отказ (например, слот уже занят)
type CreateBookingResult struct {
	Success        bool   `json:"success"`
	Message        string `json:"message,omitempty"`
	ConfirmationID string `json:"confirmationId,omitempty"`
}
