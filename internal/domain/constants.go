package domain

// Default configuration values
const (
	DefaultLanguage = "en"

	DefaultSessionTTLMinutes      = 120
	DefaultCleanupIntervalMinutes = 10

	// Параметры офлайн-расписания (генератор фолбэка)
	DefaultFallbackOpenHour  = 10
	DefaultFallbackCloseHour = 19
	DefaultFallbackDropRate  = 0.3

	// Параметры повторов запроса доступности
	DefaultRetryAttempts     = 2
	DefaultRetryDelaySeconds = 1
)

// Business validation constants
const (
	MaxContactNameLength  = 200
	MaxContactEmailLength = 254
	MaxContactPhoneLength = 32
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
