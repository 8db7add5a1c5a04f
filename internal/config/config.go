// Package config loads runtime settings from the environment.
package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"

	"fingermaze/internal/maze"
)

// Config holds the environment-tunable settings. Unset variables keep the
// values from Default.
type Config struct {
	Passcode    string  `env:"MAZE_PASSCODE"`
	LaneWidth   float64 `env:"MAZE_LANE_WIDTH"`
	WindowWidth int     `env:"MAZE_WINDOW_WIDTH"`
	Aspect      float64 `env:"MAZE_ASPECT"`
	DPR         float64 `env:"MAZE_DPR"` // 0 = detect
	Mute        bool    `env:"MAZE_MUTE"`
	LogLevel    string  `env:"MAZE_LOG_LEVEL"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Passcode:    maze.DefaultPasscode,
		LaneWidth:   maze.DefaultLaneWidth,
		WindowWidth: 900,
		Aspect:      maze.DefaultAspect,
		LogLevel:    "warn",
	}
}

// Load parses the environment and validates the result.
func Load() (Config, error) {
	cfg := Default()
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadOrDefault is Load with a fallback to Default on any error.
func LoadOrDefault() Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}
	return cfg
}

// Validate checks value ranges.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Passcode) == "" {
		return fmt.Errorf("MAZE_PASSCODE must not be empty")
	}
	if c.LaneWidth <= 0 {
		return fmt.Errorf("MAZE_LANE_WIDTH must be positive, got %v", c.LaneWidth)
	}
	if c.WindowWidth < 100 {
		return fmt.Errorf("MAZE_WINDOW_WIDTH must be at least 100, got %d", c.WindowWidth)
	}
	if c.Aspect <= 0.1 || c.Aspect > 4 {
		return fmt.Errorf("MAZE_ASPECT out of range (0.1, 4]: %v", c.Aspect)
	}
	if c.DPR < 0 || c.DPR > maze.MaxDPR {
		return fmt.Errorf("MAZE_DPR out of range [0, %v]: %v", maze.MaxDPR, c.DPR)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level converts LogLevel to a slog level.
func (c Config) Level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("MAZE_LOG_LEVEL: %w", err)
	}
	return l, nil
}

// Layout returns the built-in corridor with the configured lane width.
func (c Config) Layout() maze.Layout {
	l := maze.DefaultLayout()
	l.LaneWidth = c.LaneWidth
	return l
}
