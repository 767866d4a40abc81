package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitConfigDefaults(t *testing.T) {
	t.Setenv("APP_ENV", "test")

	cfg := InitConfig("")

	assert.Equal(t, "arcpay", cfg.App.Name)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, 60*time.Second, cfg.Scheduler.Interval)
	assert.True(t, cfg.Scheduler.HotRetry)
	assert.False(t, cfg.Scheduler.RetryBackoff)
	assert.Equal(t, 5*time.Minute, cfg.Guardian.DefaultDelay)
	assert.Equal(t, "USDC", cfg.Guardian.DefaultCurrency)
	assert.Equal(t, 0.2, cfg.Balance.DropThreshold)
	assert.Equal(t, "sandbox", cfg.PaymentAPI.Mode)
	assert.Equal(t, "ops@example.com", cfg.Notification.AdminEmail)
	assert.Empty(t, cfg.Model.URL)
	assert.Empty(t, cfg.APIKey.Keys)
}

func TestInitConfigFromEnv(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("SCHEDULER_INTERVAL", "5s")
	t.Setenv("SCHEDULER_MAX_ATTEMPTS", "4")
	t.Setenv("API_KEYS", "key-a, key-b,,")
	t.Setenv("MODEL_URL", "http://model:8000")

	cfg := InitConfig("")

	assert.Equal(t, "production", cfg.App.Environment)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, 5*time.Second, cfg.Scheduler.Interval)
	assert.Equal(t, 4, cfg.Scheduler.MaxAttempts)
	assert.Equal(t, []string{"key-a", "key-b"}, cfg.APIKey.Keys)
	assert.Equal(t, "http://model:8000", cfg.Model.URL)
}

func TestInitConfigLoadsEnvFileLocally(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "arcpay.env")
	require.NoError(t, os.WriteFile(path, []byte("PAYMENT_API_MODE=http\n"), 0o600))

	t.Setenv("APP_ENV", "local")
	t.Setenv("PAYMENT_API_MODE", "")
	require.NoError(t, os.Unsetenv("PAYMENT_API_MODE"))

	cfg := InitConfig(path)

	assert.Equal(t, "http", cfg.PaymentAPI.Mode)
}

func TestDuration(t *testing.T) {
	assert.Equal(t, time.Second, Duration(0, time.Second))
	assert.Equal(t, time.Minute, Duration(time.Minute, time.Second))
}
