package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if c.Matching.Tolerance < 0 || c.Matching.Tolerance > maxTolerance {
		return fmt.Errorf("matching.tolerance_seconds must be between 0 and %v", maxTolerance)
	}
	if c.Matching.DefaultFPS <= 0 {
		return errors.New("matching.default_fps must be positive")
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	return nil
}
