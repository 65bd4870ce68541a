package scheduleservice

// SlotsResponse ответ сервиса расписания со свободными слотами
// availableSlots обязателен: его отсутствие трактуется как некорректный ответ
type SlotsResponse struct {
	AvailableSlots *[]string `json:"availableSlots"`
}

// ErrorResponse модель ошибки от сервиса расписания
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
