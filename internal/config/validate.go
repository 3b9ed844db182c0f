package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateCloud(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateCloud() error {
	if c.Cloud.Separators == "" {
		return errors.New("cloud.separators must not be empty")
	}
	if c.Cloud.MinFont <= 0 {
		return errors.New("cloud.min_font must be positive")
	}
	if c.Cloud.MaxFont < c.Cloud.MinFont {
		return fmt.Errorf("cloud.max_font must be at least cloud.min_font (%d)", c.Cloud.MinFont)
	}
	if c.Cloud.DefaultFont < c.Cloud.MinFont || c.Cloud.DefaultFont > c.Cloud.MaxFont {
		return fmt.Errorf("cloud.default_font must be within [%d, %d]", c.Cloud.MinFont, c.Cloud.MaxFont)
	}
	if c.Cloud.DefaultCount <= 0 {
		return errors.New("cloud.default_count must be positive")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	return nil
}
