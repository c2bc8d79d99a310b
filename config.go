package main

import (
	"fmt"
	"time"

	"Simon/game"

	"github.com/kelseyhightower/envconfig"
)

// Config is read from the environment.
type Config struct {
	// Forces the UI language (pt, es, ru, en); detected from the system locale when empty
	Lang string `envconfig:"SIMON_LANG"`

	// How long a panel stays lit, and every intro pause
	Pause time.Duration `envconfig:"SIMON_PAUSE" default:"500ms"`

	// Extra pause between replayed panels
	Gap time.Duration `envconfig:"SIMON_GAP" default:"0s"`

	Sound bool `envconfig:"SIMON_SOUND" default:"true"`
	Debug bool `envconfig:"SIMON_DEBUG" default:"false"`
}

// LoadConfig processes the SIMON_* environment variables.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := envconfig.Process("", cfg); err != nil {
		return nil, fmt.Errorf("processing the config: %w", err)
	}
	if cfg.Pause <= 0 {
		return nil, fmt.Errorf("SIMON_PAUSE must be positive, got %s", cfg.Pause)
	}
	if cfg.Gap < 0 {
		return nil, fmt.Errorf("SIMON_GAP must not be negative, got %s", cfg.Gap)
	}
	return cfg, nil
}

// DriverConfig returns the playback settings for one game.
func (c *Config) DriverConfig(l game.Listener) game.DriverConfig {
	return game.DriverConfig{
		Pause:    c.Pause,
		Gap:      c.Gap,
		Listener: l,
	}
}
