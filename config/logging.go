package config

import (
	"fmt"
	"strings"
)

// LoggingConfig selects the logging backend shared by every pattern.
type LoggingConfig struct {
	// Backend selects the logger implementation: "zerolog" or "logrus".
	Backend string `json:"backend"`
	// Level is the minimum level emitted: debug, info, warn or error.
	Level string `json:"level"`
}

// SetDefaults applies sane defaults.
func (c *LoggingConfig) SetDefaults() {
	if c.Backend == "" {
		c.Backend = "zerolog"
	}
	if c.Level == "" {
		c.Level = "info"
	}
}

// Validate checks mandatory fields.
func (c LoggingConfig) Validate() error {
	switch strings.ToLower(c.Backend) {
	case "zerolog", "logrus":
	default:
		return fmt.Errorf("unknown backend %s", c.Backend)
	}
	switch strings.ToLower(c.Level) {
	case "debug", "info", "warn", "error":
		return nil
	default:
		return fmt.Errorf("unknown level %s", c.Level)
	}
}
