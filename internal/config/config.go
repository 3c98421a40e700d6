// Package config provides configuration structures and validation for
// the replay engine. Settings are environment-based: the processing
// rules themselves are fixed, so configuration covers only application
// identity and logging.
package config

import (
	"errors"
	"strings"
)

// Config holds the complete application configuration. It is validated
// during startup; an invalid configuration is a fatal boundary fault.
type Config struct {
	Application ApplicationConfig
	Logging     LoggingConfig
}

// ApplicationConfig contains general application configuration
type ApplicationConfig struct {
	Env  string
	Name string
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level string
}

// validate checks all configuration values, collecting every violation
// into a single error
func (c *Config) validate() error {
	var validationErrors []string

	if c.Application.Name == "" {
		validationErrors = append(validationErrors, "APP_NAME is required")
	}

	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "error":
	default:
		validationErrors = append(validationErrors, "LOG_LEVEL must be one of debug, info, warn, error")
	}

	if len(validationErrors) > 0 {
		return errors.New(strings.Join(validationErrors, ", "))
	}

	return nil
}
