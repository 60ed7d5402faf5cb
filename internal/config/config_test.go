package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 30, cfg.Fetch.TimeoutSeconds)
	assert.Equal(t, 2, cfg.Fetch.RetryCount)
	assert.Equal(t, int64(10*1024*1024), cfg.Fetch.MaxBodyBytes)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.False(t, cfg.Logging.Development)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("TREEQUERY_FETCH_TIMEOUT", "5")
	t.Setenv("TREEQUERY_LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Fetch.TimeoutSeconds)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoadOrDefault(t *testing.T) {
	cfg := LoadOrDefault()
	require.NotNil(t, cfg)
	assert.Equal(t, "info", cfg.Logging.Level)
}
