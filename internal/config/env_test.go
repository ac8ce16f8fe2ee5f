package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_ServerConfig(t *testing.T) {
	t.Setenv("APP_TOKEN_SIGN_KEY", "secret")
	t.Setenv("APP_TOKEN_DURATION", "45m")
	t.Setenv("STORAGE_DB_DATABASE_URI", "postgres://localhost/safebite")
	t.Setenv("SERVER_ADDRESS", "127.0.0.1:9999")
	t.Setenv("GATEWAY_GEMINI_API_KEY", "gm-key")

	cfg := &ServerConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, "secret", cfg.App.TokenSignKey)
	assert.Equal(t, 45*time.Minute, cfg.App.TokenDuration)
	assert.Equal(t, "postgres://localhost/safebite", cfg.Storage.DB.DSN)
	assert.Equal(t, "127.0.0.1:9999", cfg.Server.HTTPAddress)
	assert.Equal(t, "gm-key", cfg.Gateway.GeminiAPIKey)
}

func TestParseEnv_ClientConfig(t *testing.T) {
	t.Setenv("ADAPTER_BASE_URL", "http://example.org:8080")
	t.Setenv("STORAGE_CACHE_PATH", "/tmp/cache.db")

	cfg := &ClientConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, "http://example.org:8080", cfg.Adapter.BaseURL)
	assert.Equal(t, "/tmp/cache.db", cfg.Storage.CachePath)
}
