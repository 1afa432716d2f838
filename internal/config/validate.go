package config

import (
	"fmt"

	"github.com/yourusername/swaynav/internal/types"
)

// Validate checks the configuration for errors
func (c *Config) Validate() error {
	if err := validateSettings(&c.Settings); err != nil {
		return fmt.Errorf("settings: %w", err)
	}
	return nil
}

func validateSettings(s *Settings) error {
	if s.DefaultMode != "" {
		if _, err := types.ParseMode(s.DefaultMode); err != nil {
			return fmt.Errorf("defaultMode: %w", err)
		}
	}

	cfg := Config{Settings: *s}
	d, err := cfg.GetTimeout()
	if err != nil {
		return fmt.Errorf("timeout: %w", err)
	}
	if d < 0 {
		return fmt.Errorf("timeout must not be negative, got %s", d)
	}

	return nil
}
