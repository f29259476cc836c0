package config

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnsupportedFormat is wrapped by UnsupportedFormatError.
var ErrUnsupportedFormat = errors.New("config: unsupported file format")

// UnsupportedFormatError is returned for config files whose extension is not recognized.
type UnsupportedFormatError struct {
	Extension string
}

func (e *UnsupportedFormatError) Error() string {
	ext := e.Extension
	if ext == "" {
		ext = "(none)"
	}
	return fmt.Sprintf("config: unsupported file extension %s (supported: .yaml, .yml, .toml)", ext)
}

// Unwrap allows errors.Is(err, ErrUnsupportedFormat).
func (e *UnsupportedFormatError) Unwrap() error {
	return ErrUnsupportedFormat
}

// ValidationError collects every problem found in a config so they can be reported at once.
type ValidationError struct {
	Errors []string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	switch len(e.Errors) {
	case 0:
		return "config validation failed"
	case 1:
		return "config validation failed: " + e.Errors[0]
	default:
		return fmt.Sprintf("config validation failed with %d errors:\n  - %s",
			len(e.Errors), strings.Join(e.Errors, "\n  - "))
	}
}

// Addf appends a formatted error message.
func (e *ValidationError) Addf(format string, args ...any) {
	e.Errors = append(e.Errors, fmt.Sprintf(format, args...))
}

// Add appends an error message.
func (e *ValidationError) Add(msg string) {
	e.Errors = append(e.Errors, msg)
}

// HasErrors returns true if there are any validation errors.
func (e *ValidationError) HasErrors() bool {
	return len(e.Errors) > 0
}

// ToError returns e if it holds errors, otherwise nil.
func (e *ValidationError) ToError() error {
	if e.HasErrors() {
		return e
	}
	return nil
}
