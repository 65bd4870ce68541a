package scheduleservice

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент для работы с сервисом расписания (источник доступности)
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента сервиса расписания
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetAvailableSlots получает свободные слоты на дату (опционально для услуги)
// Пустой список - легитимный ответ (день полностью занят)
func (c *Client) GetAvailableSlots(ctx context.Context, date time.Time, serviceID *int64) ([]types.TimeString, error) {
	query := url.Values{}
	query.Set("date", date.Format(domain.DateFormat))
	if serviceID != nil {
		query.Set("serviceId", fmt.Sprintf("%d", *serviceID))
	}

	endpoint := fmt.Sprintf("%s/internal/schedule/slots?%s", c.baseURL, query.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch {
	case resp.StatusCode == http.StatusOK:
		// Продолжаем обработку
	case resp.StatusCode >= http.StatusInternalServerError:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: status code %d: %s", ErrUnavailable, resp.StatusCode, string(body))
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	// Парсим ответ
	var slotsResp SlotsResponse
	if err := json.NewDecoder(resp.Body).Decode(&slotsResp); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	// Отсутствующее поле availableSlots - некорректный ответ, не пустой день
	if slotsResp.AvailableSlots == nil {
		return nil, fmt.Errorf("%w: availableSlots field is missing", ErrInvalidResponse)
	}

	// Валидируем метки времени
	slots := make([]types.TimeString, 0, len(*slotsResp.AvailableSlots))
	for _, raw := range *slotsResp.AvailableSlots {
		label, err := types.NewTimeStringFromString(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid slot label %q: %v", ErrInvalidResponse, raw, err)
		}
		slots = append(slots, label)
	}

	return slots, nil
}
