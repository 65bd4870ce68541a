package config

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/pkg/ptr"
)

// Config конфигурация сервиса, загружается из config.toml
type Config struct {
	Server          ServerConfig      `toml:"server"`
	Logs            LogsConfig        `toml:"logs"`
	Metrics         MetricsConfig     `toml:"metrics"`
	Database        DatabaseConfig    `toml:"database"`
	Session         SessionConfig     `toml:"session"`
	ScheduleService IntegrationConfig `toml:"schedule_service"`
	BookingService  IntegrationConfig `toml:"booking_service"`
	AuthService     IntegrationConfig `toml:"auth_service"`
	Fallback        FallbackConfig    `toml:"fallback"`
}

// ServerConfig настройки HTTP сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки prometheus метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// DatabaseConfig настройки подключения к PostgreSQL (каталог услуг)
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// DSN возвращает строку подключения к PostgreSQL
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// SessionConfig настройки хранилища сессий бронирования
type SessionConfig struct {
	TTLMinutes             int `toml:"ttl_minutes"`
	CleanupIntervalMinutes int `toml:"cleanup_interval_minutes"`
}

// IntegrationConfig настройки клиента внешнего сервиса
// RetryAttempts - указатель, чтобы отличать отсутствующий ключ (дефолт)
// от явного retry_attempts = 0 (повторы отключены)
type IntegrationConfig struct {
	URL               string `toml:"url"`
	Timeout           int    `toml:"timeout"`
	RetryAttempts     *int   `toml:"retry_attempts"`
	RetryDelaySeconds int    `toml:"retry_delay_seconds"`
}

// FallbackConfig настройки офлайн-расписания резолвера доступности
type FallbackConfig struct {
	OpenHour        int     `toml:"open_hour"`
	CloseHour       int     `toml:"close_hour"`
	ThinningEnabled bool    `toml:"thinning_enabled"`
	DropRate        float64 `toml:"drop_rate"`
}

// Load загружает конфигурацию из TOML файла и применяет дефолты
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	cfg.applyDefaults()

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Session.TTLMinutes <= 0 {
		c.Session.TTLMinutes = domain.DefaultSessionTTLMinutes
	}
	if c.Session.CleanupIntervalMinutes <= 0 {
		c.Session.CleanupIntervalMinutes = domain.DefaultCleanupIntervalMinutes
	}
	if c.ScheduleService.RetryAttempts == nil {
		c.ScheduleService.RetryAttempts = ptr.Ptr(domain.DefaultRetryAttempts)
	}
	if c.ScheduleService.RetryDelaySeconds <= 0 {
		c.ScheduleService.RetryDelaySeconds = domain.DefaultRetryDelaySeconds
	}
	if c.Fallback.OpenHour == 0 && c.Fallback.CloseHour == 0 {
		c.Fallback.OpenHour = domain.DefaultFallbackOpenHour
		c.Fallback.CloseHour = domain.DefaultFallbackCloseHour
	}
	if c.Fallback.DropRate == 0 {
		c.Fallback.DropRate = domain.DefaultFallbackDropRate
	}
}

func (c *Config) validate() error {
	if c.Server.HTTPPort <= 0 {
		return fmt.Errorf("config: server.http_port must be positive")
	}
	if *c.ScheduleService.RetryAttempts < 0 {
		return fmt.Errorf("config: schedule_service.retry_attempts must not be negative")
	}
	if c.Fallback.OpenHour < 0 || c.Fallback.CloseHour > 23 || c.Fallback.OpenHour > c.Fallback.CloseHour {
		return fmt.Errorf("config: invalid fallback window %d-%d", c.Fallback.OpenHour, c.Fallback.CloseHour)
	}
	if c.Fallback.DropRate < 0 || c.Fallback.DropRate >= 1 {
		return fmt.Errorf("config: fallback.drop_rate must be in [0, 1)")
	}
	return nil
}
