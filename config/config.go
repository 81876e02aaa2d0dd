// Package config loads application configuration for a Bella app.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// ColorMode selects the terminal color depth
type ColorMode string

const (
	ColorAuto      ColorMode = "auto"
	Color256       ColorMode = "256"
	ColorTrueColor ColorMode = "truecolor"
)

// Config is the root configuration structure
type Config struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`  // 0 = use full terminal width
	Height int    `yaml:"height"` // 0 = use full terminal height

	TargetFPS     int       `yaml:"targetFps"`
	MaxDeltaMs    int       `yaml:"maxDeltaMs"`
	RelativeSpeed float64   `yaml:"relativeSpeed"`
	ColorMode     ColorMode `yaml:"colorMode"`
	Audio         bool      `yaml:"audio"`
}

// Default returns a Config with usable defaults for all fields
func Default() Config {
	return Config{
		Title:         "bella",
		TargetFPS:     60,
		MaxDeltaMs:    250,
		RelativeSpeed: 1.0,
		ColorMode:     ColorAuto,
		Audio:         false,
	}
}

// MaxDelta returns the virtual clock step clamp as a duration
func (c Config) MaxDelta() time.Duration {
	return time.Duration(c.MaxDeltaMs) * time.Millisecond
}

// Load reads and parses a YAML configuration file, applying defaults
// for omitted fields
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks field ranges and normalizes degenerate values
func (c *Config) Validate() error {
	if c.TargetFPS <= 0 {
		return fmt.Errorf("targetFps must be positive, got %d", c.TargetFPS)
	}
	if c.MaxDeltaMs <= 0 {
		return fmt.Errorf("maxDeltaMs must be positive, got %d", c.MaxDeltaMs)
	}
	if c.RelativeSpeed < 0 {
		// Negative speed would produce time running backwards; clamp
		c.RelativeSpeed = 0
	}
	switch c.ColorMode {
	case ColorAuto, Color256, ColorTrueColor:
	case "":
		c.ColorMode = ColorAuto
	default:
		return fmt.Errorf("unknown colorMode %q", c.ColorMode)
	}
	return nil
}
