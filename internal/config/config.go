// Package config provides configuration loading and parsing for curryhoward.
package config

import (
	"strings"

	"github.com/rs/zerolog"
	"github.com/samber/mo"

	"github.com/omarluq/curryhoward/internal/fp"
)

// RuntimeConfig defines the interface for accessing configuration that supports hot-reload.
// Components that re-read config between runs should use this instead of holding a *Config.
type RuntimeConfig interface {
	Get() *Config
}

// Log level constants.
const (
	LevelDebug = "debug"
	LevelInfo  = "info"
	LevelWarn  = "warn"
	LevelError = "error"
)

// Report format constants.
const (
	OutputText = "text"
	OutputJSON = "json"
)

// Config represents the complete curryhoward configuration.
type Config struct {
	Suite   SuiteConfig   `yaml:"suite" toml:"suite"`
	Logging LoggingConfig `yaml:"logging" toml:"logging"`
	Output  OutputConfig  `yaml:"output" toml:"output"`
	Cache   CacheConfig   `yaml:"cache" toml:"cache"`
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:  LevelInfo,
			Format: "console",
			Output: "stderr",
		},
		Output: OutputConfig{Format: OutputText},
		Cache:  CacheConfig{},
		Suite:  SuiteConfig{},
	}
}

// SuiteConfig selects which exercises run and how failures are handled.
type SuiteConfig struct {
	// FailFast stops the run at the first failed exercise. Defaults to true.
	FailFast *bool `yaml:"fail_fast" toml:"fail_fast"`

	// Only restricts the run to these exercise or section names.
	Only []string `yaml:"only" toml:"only"`

	// Skip removes these exercise or section names from the run.
	Skip []string `yaml:"skip" toml:"skip"`
}

// GetFailFastOption returns the fail_fast setting if it was set explicitly.
func (s *SuiteConfig) GetFailFastOption() mo.Option[bool] {
	return mo.PointerToOption(s.FailFast)
}

// IsFailFast returns the fail_fast setting with its default of true.
func (s *SuiteConfig) IsFailFast() bool {
	return s.GetFailFastOption().OrElse(true)
}

// OutputConfig controls how the run report is rendered.
type OutputConfig struct {
	Format string `yaml:"format" toml:"format"` // text (default), json
}

// GetEffectiveFormat returns the report format with default fallback.
func (o *OutputConfig) GetEffectiveFormat() string {
	if o.Format == "" {
		return OutputText
	}
	return strings.ToLower(o.Format)
}

// CacheConfig sizes the cache behind memoized fixture lookups.
type CacheConfig struct {
	NumCounters int64 `yaml:"num_counters" toml:"num_counters"`
	MaxCost     int64 `yaml:"max_cost" toml:"max_cost"`
	BufferItems int64 `yaml:"buffer_items" toml:"buffer_items"`
}

// MemoConfig converts the cache settings, filling unset values with defaults.
func (c *CacheConfig) MemoConfig() fp.MemoConfig {
	def := fp.DefaultMemoConfig()
	return fp.MemoConfig{
		NumCounters: positiveOr(c.NumCounters, def.NumCounters),
		MaxCost:     positiveOr(c.MaxCost, def.MaxCost),
		BufferItems: positiveOr(c.BufferItems, def.BufferItems),
	}
}

func positiveOr(v, def int64) int64 {
	if v <= 0 {
		return def
	}
	return v
}

// LoggingConfig defines logging behavior.
type LoggingConfig struct {
	Level  string `yaml:"level" toml:"level"`   // debug, info, warn, error
	Format string `yaml:"format" toml:"format"` // json, console, pretty
	Output string `yaml:"output" toml:"output"` // stdout, stderr, or file path
	Pretty bool   `yaml:"pretty" toml:"pretty"` // force colored console output
}

// ParseLevel converts a string log level to zerolog.Level.
// Returns zerolog.InfoLevel if the level string is invalid.
func (l *LoggingConfig) ParseLevel() zerolog.Level {
	switch strings.ToLower(l.Level) {
	case LevelDebug:
		return zerolog.DebugLevel
	case LevelInfo:
		return zerolog.InfoLevel
	case LevelWarn:
		return zerolog.WarnLevel
	case LevelError:
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// EnableDebug turns on debug logging. Used by the --debug CLI flag.
func (l *LoggingConfig) EnableDebug() {
	l.Level = LevelDebug
}
