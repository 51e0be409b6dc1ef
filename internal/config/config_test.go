package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"ROUTE_SERVICE_URL", "ROUTE_SERVICE_TIMEOUT", "PORT", "HISTORY_LIMIT", "SEED_PATH", "CORS_ALLOWED_ORIGINS"} {
		t.Setenv(k, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8000", cfg.RouteServiceURL)
	assert.Equal(t, time.Duration(0), cfg.RouteServiceTimeout)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 10, cfg.HistoryLimit)
	assert.Equal(t, []string{"*"}, cfg.AllowedOrigins)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("ROUTE_SERVICE_URL", "http://routes.internal:9000/")
	t.Setenv("ROUTE_SERVICE_TIMEOUT", "90s")
	t.Setenv("HISTORY_LIMIT", "0")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://localhost:3000, http://example.com")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "http://routes.internal:9000", cfg.RouteServiceURL)
	assert.Equal(t, 90*time.Second, cfg.RouteServiceTimeout)
	assert.Equal(t, 10, cfg.HistoryLimit, "non-positive limit falls back to default")
	assert.Equal(t, []string{"http://localhost:3000", "http://example.com"}, cfg.AllowedOrigins)
}

func TestLoadRejectsBadTimeout(t *testing.T) {
	t.Setenv("ROUTE_SERVICE_TIMEOUT", "soon")
	_, err := Load()
	require.Error(t, err)

	t.Setenv("ROUTE_SERVICE_TIMEOUT", "-1s")
	_, err = Load()
	require.Error(t, err)
}
