package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/busworks/busbar/config"
	"github.com/busworks/busbar/core"
)

func TestDefault(t *testing.T) {
	t.Cleanup(config.Reset)

	cfg := config.Default()
	assert.Equal(t, core.DefaultName, cfg.Name)
	assert.True(t, cfg.AllowUnhandledEvents)
	assert.Equal(t, core.DefaultMaxListeners, cfg.MaxListeners)
	assert.Equal(t, core.DefaultLeakWarningThreshold, cfg.PotentialMemoryLeakWarningThreshold)
}

func TestSetDefault(t *testing.T) {
	t.Cleanup(config.Reset)

	cfg := core.DefaultConfig()
	cfg.Name = "worker"
	cfg.MaxListeners = 10
	config.SetDefault(cfg)

	got := config.Default()
	assert.Equal(t, "worker", got.Name)
	assert.Equal(t, 10, got.MaxListeners)

	config.Reset()
	assert.Equal(t, core.DefaultName, config.Default().Name)
}

func TestFromEnv(t *testing.T) {
	t.Run("all variables set", func(t *testing.T) {
		t.Setenv(config.EnvName, "env-bus")
		t.Setenv(config.EnvAllowUnhandled, "false")
		t.Setenv(config.EnvMaxListeners, "7")
		t.Setenv(config.EnvLeakThreshold, "70")

		cfg, err := config.FromEnv()
		require.NoError(t, err)
		assert.Equal(t, "env-bus", cfg.Name)
		assert.False(t, cfg.AllowUnhandledEvents)
		assert.Equal(t, 7, cfg.MaxListeners)
		assert.Equal(t, 70, cfg.PotentialMemoryLeakWarningThreshold)
	})

	t.Run("missing variables keep defaults", func(t *testing.T) {
		cfg, err := config.FromEnv()
		require.NoError(t, err)
		assert.Equal(t, core.DefaultConfig(), cfg)
	})

	t.Run("invalid integer", func(t *testing.T) {
		t.Setenv(config.EnvMaxListeners, "not-a-number")

		_, err := config.FromEnv()
		require.Error(t, err)
		assert.Contains(t, err.Error(), config.EnvMaxListeners)
	})

	t.Run("invalid bool", func(t *testing.T) {
		t.Setenv(config.EnvAllowUnhandled, "maybe")

		_, err := config.FromEnv()
		require.Error(t, err)
	})
}

func TestLoadEnv(t *testing.T) {
	t.Cleanup(config.Reset)
	t.Setenv(config.EnvName, "loaded")

	require.NoError(t, config.LoadEnv())
	assert.Equal(t, "loaded", config.Default().Name)
}
