package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rigreport/rigreport/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "rigreport.db", cfg.DataPath)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, []string{"http://localhost:5173"}, cfg.CORSOrigins)
	assert.Equal(t, 200*time.Millisecond, cfg.LatencyMin)
	assert.Equal(t, 500*time.Millisecond, cfg.LatencyMax)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9999")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("DATA_LATENCY_MIN_MS", "0")
	t.Setenv("DATA_LATENCY_MAX_MS", "0")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "9999", cfg.Port)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOrigins)
	assert.Zero(t, cfg.LatencyMin)
	assert.Zero(t, cfg.LatencyMax)
}

func TestLoad_EmptyDataPathMeansInMemory(t *testing.T) {
	t.Setenv("DATA_PATH", "")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Empty(t, cfg.DataPath, "explicitly empty DATA_PATH selects the in-memory store")
}

func TestLoad_BadLatency(t *testing.T) {
	t.Setenv("DATA_LATENCY_MIN_MS", "soon")

	_, err := config.Load()
	assert.Error(t, err)
}

func TestLoad_NegativeLatency(t *testing.T) {
	t.Setenv("DATA_LATENCY_MAX_MS", "-10")

	_, err := config.Load()
	assert.Error(t, err)
}

func TestLoad_MaxBelowMin(t *testing.T) {
	t.Setenv("DATA_LATENCY_MIN_MS", "500")
	t.Setenv("DATA_LATENCY_MAX_MS", "100")

	_, err := config.Load()
	assert.Error(t, err)
}
