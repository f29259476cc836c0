package config

import (
	"strings"
)

var validLogLevels = map[string]bool{
	"":         true, // Empty defaults to info
	LevelDebug: true,
	LevelInfo:  true,
	LevelWarn:  true,
	LevelError: true,
}

var validLogFormats = map[string]bool{
	"":        true, // Empty auto-detects a terminal
	"json":    true,
	"console": true,
	"text":    true, // Alias for console
	"pretty":  true,
}

var validOutputFormats = map[string]bool{
	"":         true, // Empty defaults to text
	OutputText: true,
	OutputJSON: true,
}

// Validate checks the configuration for errors.
// Returns a ValidationError containing all errors found, or nil if valid.
func (c *Config) Validate() error {
	errs := &ValidationError{}

	validateLogging(c, errs)
	validateOutput(c, errs)
	validateCache(c, errs)
	validateSuite(c, errs)

	return errs.ToError()
}

func validateLogging(c *Config, errs *ValidationError) {
	if !validLogLevels[strings.ToLower(c.Logging.Level)] {
		errs.Addf("logging.level is invalid (got %q, valid: debug, info, warn, error)", c.Logging.Level)
	}

	if !validLogFormats[strings.ToLower(c.Logging.Format)] {
		errs.Addf("logging.format is invalid (got %q, valid: json, console, text, pretty)", c.Logging.Format)
	}
}

func validateOutput(c *Config, errs *ValidationError) {
	if !validOutputFormats[strings.ToLower(c.Output.Format)] {
		errs.Addf("output.format is invalid (got %q, valid: text, json)", c.Output.Format)
	}
}

func validateCache(c *Config, errs *ValidationError) {
	if c.Cache.NumCounters < 0 {
		errs.Addf("cache.num_counters must be >= 0 (got %d)", c.Cache.NumCounters)
	}
	if c.Cache.MaxCost < 0 {
		errs.Addf("cache.max_cost must be >= 0 (got %d)", c.Cache.MaxCost)
	}
	if c.Cache.BufferItems < 0 {
		errs.Addf("cache.buffer_items must be >= 0 (got %d)", c.Cache.BufferItems)
	}
}

// validateSuite catches names listed in both only and skip, which would select nothing.
func validateSuite(c *Config, errs *ValidationError) {
	skipped := make(map[string]bool, len(c.Suite.Skip))
	for i, name := range c.Suite.Skip {
		if name == "" {
			errs.Addf("suite.skip[%d] is empty", i)
		}
		skipped[name] = true
	}

	for i, name := range c.Suite.Only {
		if name == "" {
			errs.Addf("suite.only[%d] is empty", i)
			continue
		}
		if skipped[name] {
			errs.Addf("suite: %q is listed in both only and skip", name)
		}
	}
}
