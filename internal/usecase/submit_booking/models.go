package submit_booking

import (
	"time"

	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// Request модель запроса отправки бронирования
// Контактные данные приходят вместе с запросом и сохраняются в сессии
// независимо от исхода отправки
type Request struct {
	SessionID string
	Name      string
	Email     string
	Phone     string
	Language  string // Язык локализации названия услуги; пустой - язык по умолчанию
}

// Response модель ответа успешной отправки
type Response struct {
	ConfirmationID string           // ID подтверждения от сервиса бронирований
	Message        string           // Сообщение из ответа (опционально)
	ServiceName    string           // Название услуги на момент отправки
	Date           time.Time        // Дата бронирования
	Time           types.TimeString // Время бронирования
}
