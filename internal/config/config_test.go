package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, "main_data.csv", cfg.DataPath)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, 10*time.Second, cfg.FetchTimeout)
	assert.Equal(t, 256, cfg.ImageCacheSize)
	assert.Empty(t, cfg.DiagKafkaBrokers)
	assert.Equal(t, "drought-fetch-diagnostics", cfg.DiagKafkaTopic)
	assert.False(t, cfg.DiagEnabled)
}

func TestLoad_CustomEnv(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("DATA_PATH", "/data/drought.csv")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "text")
	t.Setenv("SHUTDOWN_TIMEOUT", "30s")
	t.Setenv("FETCH_TIMEOUT", "5s")
	t.Setenv("IMAGE_CACHE_SIZE", "64")
	t.Setenv("DIAG_KAFKA_BROKERS", "broker1:9092, broker2:9092")
	t.Setenv("DIAG_KAFKA_TOPIC", "custom-diagnostics")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.HTTPAddr)
	assert.Equal(t, "/data/drought.csv", cfg.DataPath)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, 30*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, 5*time.Second, cfg.FetchTimeout)
	assert.Equal(t, 64, cfg.ImageCacheSize)
	assert.Equal(t, []string{"broker1:9092", "broker2:9092"}, cfg.DiagKafkaBrokers)
	assert.Equal(t, "custom-diagnostics", cfg.DiagKafkaTopic)
	assert.True(t, cfg.DiagEnabled)
}

func TestLoad_InvalidShutdownTimeout(t *testing.T) {
	t.Setenv("SHUTDOWN_TIMEOUT", "not-a-duration")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SHUTDOWN_TIMEOUT")
}

func TestLoad_NegativeShutdownTimeout(t *testing.T) {
	t.Setenv("SHUTDOWN_TIMEOUT", "-1s")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SHUTDOWN_TIMEOUT")
}

func TestLoad_InvalidFetchTimeout(t *testing.T) {
	t.Setenv("FETCH_TIMEOUT", "bad")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "FETCH_TIMEOUT")
}

func TestLoad_ZeroCacheSizeDisablesCache(t *testing.T) {
	t.Setenv("IMAGE_CACHE_SIZE", "0")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 0, cfg.ImageCacheSize)
}

func TestLoad_InvalidCacheSizeFallsBack(t *testing.T) {
	t.Setenv("IMAGE_CACHE_SIZE", "-5")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 256, cfg.ImageCacheSize)
}

func TestLoad_BrokersImplyDiagEnabled(t *testing.T) {
	t.Setenv("DIAG_KAFKA_BROKERS", "localhost:9092")
	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.DiagEnabled)
}

func TestLoad_DiagExplicitlyDisabled(t *testing.T) {
	t.Setenv("DIAG_KAFKA_BROKERS", "localhost:9092")
	t.Setenv("DIAG_KAFKA_ENABLED", "false")
	cfg, err := Load()
	require.NoError(t, err)
	assert.False(t, cfg.DiagEnabled)
}

func TestLoad_DiagEnabledWithoutBrokers(t *testing.T) {
	t.Setenv("DIAG_KAFKA_ENABLED", "true")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DIAG_KAFKA_BROKERS")
}
