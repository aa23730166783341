// Package config handles simulation configuration loading and management.
package config

import (
	"errors"
	"fmt"

	"github.com/Faultbox/hoopshot/internal/engine/camera"
	"github.com/Faultbox/hoopshot/internal/game/hoops"
)

// Config holds all settings.
type Config struct {
	Sim     SimConfig     `yaml:"sim"`
	Physics hoops.Tuning  `yaml:"physics"`
	Court   hoops.Layout  `yaml:"court"`
	Camera  camera.Config `yaml:"camera"`
	Curves  hoops.Guide   `yaml:"curves"`
	Logging LoggingConfig `yaml:"logging"`
}

// SimConfig controls how a session is stepped.
type SimConfig struct {
	TickRate int    `yaml:"tick_rate"` // frames per second
	Frames   int    `yaml:"frames"`    // 0 runs until the script ends or quits
	Realtime bool   `yaml:"realtime"`  // pace frames with a wall-clock ticker
	Script   string `yaml:"script"`    // input script path
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Sim: SimConfig{
			TickRate: 60,
			Frames:   0,
			Realtime: false,
		},
		Physics: hoops.DefaultTuning(),
		Court:   hoops.DefaultLayout(),
		Camera:  camera.DefaultConfig(),
		Curves:  hoops.DefaultGuide(),
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

var ErrInvalid = errors.New("invalid config")

// Validate checks values a session cannot start with.
func (c *Config) Validate() error {
	if c.Sim.TickRate <= 0 {
		return fmt.Errorf("%w: sim.tick_rate must be positive, got %d", ErrInvalid, c.Sim.TickRate)
	}
	if c.Sim.Frames < 0 {
		return fmt.Errorf("%w: sim.frames must not be negative, got %d", ErrInvalid, c.Sim.Frames)
	}
	if err := c.Physics.Validate(); err != nil {
		return fmt.Errorf("%w: physics: %w", ErrInvalid, err)
	}
	if c.Curves.Enabled && c.Curves.Samples < 1 {
		return fmt.Errorf("%w: curves.samples must be at least 1, got %d", ErrInvalid, c.Curves.Samples)
	}
	return nil
}
