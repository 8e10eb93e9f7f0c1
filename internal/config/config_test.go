package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "test-key")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 8000, cfg.Server.Port)
	assert.Equal(t, "./quiz_data.db", cfg.DB.Path)
	assert.Equal(t, "gemini-2.5-pro", cfg.Gemini.Model)
	assert.Equal(t, "test-key", cfg.Gemini.APIKey)
	assert.InDelta(t, 0.3, cfg.Gemini.Temperature, 0.001)
	assert.Equal(t, 10*time.Second, cfg.Fetcher.Timeout)
	assert.Equal(t, 200, cfg.Fetcher.MinArticleLength)
	assert.Equal(t, 40000, cfg.Fetcher.MaxArticleLength)
	assert.Equal(t, 90*time.Second, cfg.Gemini.Timeout)
	assert.Equal(t, time.Hour, cfg.Cache.RecordTTL)

	// Redis is off unless an address is configured.
	assert.False(t, cfg.CacheEnabled())
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "test-key")
	t.Setenv("GEMINI_MODEL", "gemini-2.5-flash")
	t.Setenv("DB_PATH", "/tmp/quiz_test.db")
	t.Setenv("REDIS_ADDRESS", "localhost:6379")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "gemini-2.5-flash", cfg.Gemini.Model)
	assert.Equal(t, "/tmp/quiz_test.db", cfg.DB.Path)
	assert.Equal(t, "localhost:6379", cfg.Redis.Address)
	assert.True(t, cfg.CacheEnabled())
}

func TestLoadConfigMissingAPIKey(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GEMINI_API_KEY")
}
