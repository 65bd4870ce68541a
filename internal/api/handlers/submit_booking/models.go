package submit_booking

import (
	"github.com/m04kA/SMC-SalonService/internal/domain"
	submitBooking "github.com/m04kA/SMC-SalonService/internal/usecase/submit_booking"
)

// SubmitBookingRequest HTTP request model
type SubmitBookingRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Language string `json:"language,omitempty"`
}

// SubmitBookingResponse HTTP response model
type SubmitBookingResponse struct {
	Success        bool   `json:"success"`
	ConfirmationID string `json:"confirmationId"`
	Message        string `json:"message,omitempty"`
	ServiceName    string `json:"serviceName"`
	Date           string `json:"date"`
	Time           string `json:"time"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *SubmitBookingRequest) ToUseCaseRequest(sessionID string) submitBooking.Request {
	return submitBooking.Request{
		SessionID: sessionID,
		Name:      r.Name,
		Email:     r.Email,
		Phone:     r.Phone,
		Language:  r.Language,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *submitBooking.Response) *SubmitBookingResponse {
	return &SubmitBookingResponse{
		Success:        true,
		ConfirmationID: resp.ConfirmationID,
		Message:        resp.Message,
		ServiceName:    resp.ServiceName,
		Date:           resp.Date.Format(domain.DateFormat),
		Time:           resp.Time.String(),
	}
}
