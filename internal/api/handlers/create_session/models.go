package create_session

import (
	"github.com/m04kA/SMC-SalonService/internal/api/handlers/sessionview"
)

// CreateSessionResponse HTTP response model
// SeededFromLink true, когда выбор предзаполнен из deep-link параметра;
// клиент после этого обязан убрать параметр из URL (replace, без записи
// в историю)
type CreateSessionResponse struct {
	*sessionview.SessionResponse
	SeededFromLink bool `json:"seededFromLink"`
}
