package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid configuration")

// Config holds all reportrepair configuration.
type Config struct {
	// What to solve
	Report ReportConfig `yaml:"report"`

	// Logging
	Logging LoggingConfig `yaml:"logging"`

	// Run history database
	History HistoryConfig `yaml:"history"`

	// Watch mode
	Watch WatchConfig `yaml:"watch"`

	// Multi-file solving
	Batch BatchConfig `yaml:"batch"`
}

// ReportConfig selects the report and the pair search target.
type ReportConfig struct {
	Path           string `yaml:"path"`
	Target         int32  `yaml:"target"`
	AllowSelfPairs bool   `yaml:"allow_self_pairs"` // pair an entry with itself when it is half the target
}

// HistoryConfig configures the run history store.
type HistoryConfig struct {
	Enabled      bool   `yaml:"enabled"`
	DatabasePath string `yaml:"database_path"`
}

// WatchConfig configures the report watcher.
type WatchConfig struct {
	Debounce string `yaml:"debounce"` // e.g. "250ms"
}

// BatchConfig bounds concurrent solving of several reports.
type BatchConfig struct {
	MaxConcurrency int `yaml:"max_concurrency"`
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() *Config {
	return &Config{
		Report: ReportConfig{
			Path:           "report.csv",
			Target:         2020,
			AllowSelfPairs: true,
		},

		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},

		History: HistoryConfig{
			Enabled:      false,
			DatabasePath: filepath.Join(".reportrepair", "history.db"),
		},

		Watch: WatchConfig{
			Debounce: "250ms",
		},

		Batch: BatchConfig{
			MaxConcurrency: 4,
		},
	}
}

// Load reads configuration from a YAML file on top of the defaults and
// applies environment overrides. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes the configuration as YAML, creating parent directories.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

func (c *Config) applyEnvOverrides() error {
	if path := os.Getenv("REPORTREPAIR_INPUT"); path != "" {
		c.Report.Path = path
	}
	if raw := os.Getenv("REPORTREPAIR_TARGET"); raw != "" {
		target, err := strconv.ParseInt(raw, 10, 32)
		if err != nil {
			return fmt.Errorf("%w: REPORTREPAIR_TARGET=%q is not a 32-bit integer", ErrInvalid, raw)
		}
		c.Report.Target = int32(target)
	}
	if path := os.Getenv("REPORTREPAIR_DB"); path != "" {
		c.History.DatabasePath = path
		c.History.Enabled = true
	}
	if level := os.Getenv("REPORTREPAIR_LOG_LEVEL"); level != "" {
		c.Logging.Level = level
	}
	return nil
}

// GetWatchDebounce returns the watch debounce interval, falling back to
// 250ms when unset or unparsable.
func (c *Config) GetWatchDebounce() time.Duration {
	d, err := time.ParseDuration(c.Watch.Debounce)
	if err != nil || d <= 0 {
		return 250 * time.Millisecond
	}
	return d
}

// Validate checks the configuration for values no command can run with.
func (c *Config) Validate() error {
	if c.Report.Path == "" {
		return fmt.Errorf("%w: report.path is empty", ErrInvalid)
	}
	if !isValidLevel(c.Logging.Level) {
		return fmt.Errorf("%w: logging.level %q (valid: %v)", ErrInvalid, c.Logging.Level, ValidLevels)
	}
	if c.Logging.Format != "console" && c.Logging.Format != "json" {
		return fmt.Errorf("%w: logging.format %q (valid: console, json)", ErrInvalid, c.Logging.Format)
	}
	if c.History.Enabled && c.History.DatabasePath == "" {
		return fmt.Errorf("%w: history.database_path is empty", ErrInvalid)
	}
	if c.Watch.Debounce != "" {
		if _, err := time.ParseDuration(c.Watch.Debounce); err != nil {
			return fmt.Errorf("%w: watch.debounce: %v", ErrInvalid, err)
		}
	}
	if c.Batch.MaxConcurrency < 0 {
		return fmt.Errorf("%w: batch.max_concurrency must be >= 0", ErrInvalid)
	}
	return nil
}
