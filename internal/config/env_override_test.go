package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvOverrides(t *testing.T) {
	t.Run("input and target", func(t *testing.T) {
		t.Setenv("REPORTREPAIR_INPUT", "other.csv")
		t.Setenv("REPORTREPAIR_TARGET", "-17")

		cfg := DefaultConfig()
		require.NoError(t, cfg.applyEnvOverrides())

		assert.Equal(t, "other.csv", cfg.Report.Path)
		assert.Equal(t, int32(-17), cfg.Report.Target)
	})

	t.Run("database path enables history", func(t *testing.T) {
		t.Setenv("REPORTREPAIR_DB", "/tmp/runs.db")

		cfg := DefaultConfig()
		require.NoError(t, cfg.applyEnvOverrides())

		assert.Equal(t, "/tmp/runs.db", cfg.History.DatabasePath)
		assert.True(t, cfg.History.Enabled)
	})

	t.Run("log level", func(t *testing.T) {
		t.Setenv("REPORTREPAIR_LOG_LEVEL", "debug")

		cfg := DefaultConfig()
		require.NoError(t, cfg.applyEnvOverrides())
		assert.Equal(t, "debug", cfg.Logging.Level)
	})

	t.Run("invalid target is rejected", func(t *testing.T) {
		t.Setenv("REPORTREPAIR_TARGET", "lots")

		cfg := DefaultConfig()
		err := cfg.applyEnvOverrides()
		assert.ErrorIs(t, err, ErrInvalid)
		assert.Equal(t, int32(2020), cfg.Report.Target)
	})

	t.Run("env beats file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		cfg := DefaultConfig()
		cfg.Report.Target = 10
		require.NoError(t, cfg.Save(path))

		t.Setenv("REPORTREPAIR_TARGET", "20")
		loaded, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, int32(20), loaded.Report.Target)
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty path", func(c *Config) { c.Report.Path = "" }},
		{"bad level", func(c *Config) { c.Logging.Level = "trace" }},
		{"bad format", func(c *Config) { c.Logging.Format = "xml" }},
		{"history without db", func(c *Config) { c.History.Enabled = true; c.History.DatabasePath = "" }},
		{"bad debounce", func(c *Config) { c.Watch.Debounce = "quickly" }},
		{"negative concurrency", func(c *Config) { c.Batch.MaxConcurrency = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalid)
		})
	}
}
