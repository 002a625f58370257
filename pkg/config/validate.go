package config

import (
	"fmt"
	"strings"
	"unicode"
)

// maxGap keeps a misconfigured gap from blanking the screen for minutes.
const maxGap = 1000

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	var msgs []string
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return "validation errors:\n  - " + strings.Join(msgs, "\n  - ")
}

// Validate checks the configuration for errors.
func Validate(c *Config) error {
	var errs ValidationErrors

	if _, err := ParseSpeed(string(c.Speed)); err != nil {
		errs = append(errs, ValidationError{"speed", "must be 'fast', 'normal', or 'slow'"})
	}

	if c.Gap < 0 {
		errs = append(errs, ValidationError{"gap", "must not be negative"})
	}
	if c.Gap > maxGap {
		errs = append(errs, ValidationError{"gap", fmt.Sprintf("must be <= %d", maxGap)})
	}

	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		errs = append(errs, ValidationError{"log.level", "must be 'debug', 'info', 'warn', or 'error'"})
	}

	switch strings.ToLower(c.Log.Format) {
	case "json", "text":
	default:
		errs = append(errs, ValidationError{"log.format", "must be 'json' or 'text'"})
	}

	if c.Log.MaxSizeMB < 0 {
		errs = append(errs, ValidationError{"log.max-size-mb", "must not be negative"})
	}
	if c.Log.MaxBackups < 0 {
		errs = append(errs, ValidationError{"log.max-backups", "must not be negative"})
	}

	if strings.IndexFunc(c.Reason, unicode.IsControl) >= 0 {
		errs = append(errs, ValidationError{"reason", "must be a single line without control characters"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
