package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Setenv("TELEGRAM_BOT_TOKEN", "token")
	t.Setenv("GEMINI_API_KEY", "gemini-key")
	t.Setenv("USE_MOCK_DB", "true")
}

func TestLoadFromEnv_MissingTelegramToken(t *testing.T) {
	t.Setenv("TELEGRAM_BOT_TOKEN", "")
	t.Setenv("GEMINI_API_KEY", "gemini-key")

	_, err := LoadFromEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "TELEGRAM_BOT_TOKEN")
}

func TestLoadFromEnv_MissingGeminiKey(t *testing.T) {
	t.Setenv("TELEGRAM_BOT_TOKEN", "token")
	t.Setenv("GEMINI_API_KEY", "")

	_, err := LoadFromEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GEMINI_API_KEY")
}

func TestLoadFromEnv_MissingClickHouseHost(t *testing.T) {
	t.Setenv("TELEGRAM_BOT_TOKEN", "token")
	t.Setenv("GEMINI_API_KEY", "gemini-key")
	t.Setenv("USE_MOCK_DB", "")
	t.Setenv("CLICKHOUSE_HOST", "")

	_, err := LoadFromEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "CLICKHOUSE_HOST")
}

func TestLoadFromEnv_Defaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := LoadFromEnv()
	require.NoError(t, err)

	assert.Equal(t, "gemini-2.0-flash", cfg.GeminiModel)
	assert.Equal(t, 24*time.Hour, cfg.SessionTTL)
	assert.Equal(t, 8, cfg.WorkerLimit)
	assert.False(t, cfg.WebhookMode)
	assert.True(t, cfg.UseMockDB)
}

func TestLoadFromEnv_WebhookRequiresURL(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("WEBHOOK_MODE", "true")
	t.Setenv("WEBHOOK_URL", "")

	_, err := LoadFromEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "WEBHOOK_URL")
}

func TestLoadFromEnv_ClickHouseSettings(t *testing.T) {
	t.Setenv("TELEGRAM_BOT_TOKEN", "token")
	t.Setenv("GEMINI_API_KEY", "gemini-key")
	t.Setenv("USE_MOCK_DB", "")
	t.Setenv("CLICKHOUSE_HOST", "ch.example.com")
	t.Setenv("CLICKHOUSE_PORT", "9440")
	t.Setenv("CLICKHOUSE_USE_TLS", "true")

	cfg, err := LoadFromEnv()
	require.NoError(t, err)

	assert.Equal(t, "ch.example.com", cfg.ClickHouseHost)
	assert.Equal(t, 9440, cfg.ClickHousePort)
	assert.Equal(t, "default", cfg.ClickHouseDatabase)
	assert.Equal(t, "default", cfg.ClickHouseUser)
	assert.True(t, cfg.ClickHouseUseTLS)
}

func TestLoadFromEnv_Overrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("GEMINI_MODEL", "gemini-2.5-pro")
	t.Setenv("SESSION_TTL", "1h")
	t.Setenv("WORKER_LIMIT", "16")

	cfg, err := LoadFromEnv()
	require.NoError(t, err)

	assert.Equal(t, "gemini-2.5-pro", cfg.GeminiModel)
	assert.Equal(t, time.Hour, cfg.SessionTTL)
	assert.Equal(t, 16, cfg.WorkerLimit)
}

func TestLoadFromEnv_InvalidValues(t *testing.T) {
	setRequiredEnv(t)

	t.Setenv("SESSION_TTL", "soon")
	_, err := LoadFromEnv()
	assert.Error(t, err)

	t.Setenv("SESSION_TTL", "")
	t.Setenv("WORKER_LIMIT", "0")
	_, err = LoadFromEnv()
	assert.Error(t, err)
}
