package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics набор prometheus метрик сервиса
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
	IntegrationRequests *prometheus.CounterVec
	FallbackResolutions *prometheus.CounterVec
}

// New создает и регистрирует метрики сервиса
func New(serviceName string) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		HTTPRequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "http_requests_total",
				Help:        "Total number of HTTP requests",
				ConstLabels: constLabels,
			},
			[]string{"method", "path", "status"},
		),
		HTTPRequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:        "http_request_duration_seconds",
				Help:        "HTTP request duration in seconds",
				ConstLabels: constLabels,
				Buckets:     prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),
		IntegrationRequests: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "integration_requests_total",
				Help:        "Total number of outgoing integration requests",
				ConstLabels: constLabels,
			},
			[]string{"target", "outcome"},
		),
		FallbackResolutions: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "availability_fallback_total",
				Help:        "Availability resolutions served from the offline fallback schedule",
				ConstLabels: constLabels,
			},
			[]string{"reason"},
		),
	}
}

// IncIntegrationRequest инкрементирует счетчик исходящих запросов
// Безопасен при выключенных метриках (nil-receiver)
func (m *Metrics) IncIntegrationRequest(target, outcome string) {
	if m == nil {
		return
	}
	m.IntegrationRequests.WithLabelValues(target, outcome).Inc()
}

// IncFallbackResolution инкрементирует счетчик срабатываний офлайн-расписания
// Безопасен при выключенных метриках (nil-receiver)
func (m *Metrics) IncFallbackResolution(reason string) {
	if m == nil {
		return
	}
	m.FallbackResolutions.WithLabelValues(reason).Inc()
}
