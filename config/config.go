// Package config loads runtime settings from SPLITTIMER_* environment
// variables.
package config

import (
	"fmt"
	"time"

	"github.com/vrischmann/envconfig"
)

// Prefix is prepended to every environment variable name.
const Prefix = "SPLITTIMER"

type Config struct {
	Debug        bool          `envconfig:"default=false"`
	Chime        bool          `envconfig:"default=false"`
	Lang         string        `envconfig:"optional"`
	TickInterval time.Duration `envconfig:"default=100ms"`
	PollInterval time.Duration `envconfig:"default=50ms"`
}

// Load reads the configuration from the environment and validates it.
func Load() (*Config, error) {
	c := &Config{}
	if err := envconfig.InitWithPrefix(c, Prefix); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate rejects intervals that would turn either loop into a busy spin.
func (c *Config) Validate() error {
	if c.TickInterval <= 0 {
		return fmt.Errorf("tick interval must be positive, got %s", c.TickInterval)
	}
	if c.PollInterval <= 0 {
		return fmt.Errorf("poll interval must be positive, got %s", c.PollInterval)
	}
	return nil
}
