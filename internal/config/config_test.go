package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func TestLoad_AppliesDefaults(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 8080
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	// Отсутствующий retry_attempts получает дефолт, а не ноль повторов
	require.NotNil(t, cfg.ScheduleService.RetryAttempts)
	assert.Equal(t, domain.DefaultRetryAttempts, *cfg.ScheduleService.RetryAttempts)
	assert.Equal(t, domain.DefaultRetryDelaySeconds, cfg.ScheduleService.RetryDelaySeconds)

	assert.Equal(t, domain.DefaultSessionTTLMinutes, cfg.Session.TTLMinutes)
	assert.Equal(t, domain.DefaultCleanupIntervalMinutes, cfg.Session.CleanupIntervalMinutes)
	assert.Equal(t, domain.DefaultFallbackOpenHour, cfg.Fallback.OpenHour)
	assert.Equal(t, domain.DefaultFallbackCloseHour, cfg.Fallback.CloseHour)
	assert.Equal(t, domain.DefaultFallbackDropRate, cfg.Fallback.DropRate)
}

func TestLoad_ExplicitZeroRetriesKept(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 8080

[schedule_service]
retry_attempts = 0
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	require.NotNil(t, cfg.ScheduleService.RetryAttempts)
	assert.Equal(t, 0, *cfg.ScheduleService.RetryAttempts)
}

func TestLoad_NegativeRetriesRejected(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 8080

[schedule_service]
retry_attempts = -1
`)

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_MissingServerPortRejected(t *testing.T) {
	path := writeConfig(t, `
[schedule_service]
retry_attempts = 1
`)

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	assert.Error(t, err)
}
