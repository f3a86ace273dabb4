package config

import (
	"fmt"
)

// LoggingConfig defines settings for request logging.
type LoggingConfig struct {
	// Level is the minimum severity to emit: "debug", "info", "warn", "error".
	Level string `json:"level"`
	// Requests toggles per-request access logging.
	Requests bool `json:"requests"`
}

// SetDefaults applies sane defaults.
func (c *LoggingConfig) SetDefaults() {
	if c.Level == "" {
		c.Level = "info"
	}
}

// Validate checks mandatory fields.
func (c LoggingConfig) Validate() error {
	switch c.Level {
	case "debug", "info", "warn", "error":
		return nil
	}
	return fmt.Errorf("unknown log level %s", c.Level)
}
