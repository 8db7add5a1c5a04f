package config

import (
	"log/slog"
	"testing"

	"fingermaze/internal/maze"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Passcode != maze.DefaultPasscode {
		t.Errorf("Passcode = %q", cfg.Passcode)
	}
	if cfg.LaneWidth != 36 || cfg.WindowWidth != 900 || cfg.DPR != 0 || cfg.Mute {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
	if l, _ := cfg.Level(); l != slog.LevelWarn {
		t.Errorf("Level = %v, want warn", l)
	}
	if cfg.Aspect != maze.DefaultAspect {
		t.Errorf("Aspect = %v, want %v", cfg.Aspect, maze.DefaultAspect)
	}
	if cfg != Default() {
		t.Errorf("Load = %+v, want Default() = %+v", cfg, Default())
	}
}

func TestLoadAspectOverride(t *testing.T) {
	t.Setenv("MAZE_ASPECT", "0.75")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Aspect != 0.75 {
		t.Errorf("Aspect = %v, want 0.75", cfg.Aspect)
	}
	if cfg.WindowWidth != Default().WindowWidth {
		t.Errorf("WindowWidth = %d, unset variables must keep defaults", cfg.WindowWidth)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("MAZE_PASSCODE", "OPENSESAME")
	t.Setenv("MAZE_LANE_WIDTH", "48")
	t.Setenv("MAZE_DPR", "2")
	t.Setenv("MAZE_MUTE", "true")
	t.Setenv("MAZE_LOG_LEVEL", "debug")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Passcode != "OPENSESAME" || cfg.LaneWidth != 48 || cfg.DPR != 2 || !cfg.Mute {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	if l, _ := cfg.Level(); l != slog.LevelDebug {
		t.Errorf("Level = %v, want debug", l)
	}
	if got := cfg.Layout().LaneWidth; got != 48 {
		t.Errorf("Layout lane width = %v, want 48", got)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name, key, value string
	}{
		{"not a number", "MAZE_LANE_WIDTH", "wide"},
		{"negative lane", "MAZE_LANE_WIDTH", "-1"},
		{"tiny window", "MAZE_WINDOW_WIDTH", "10"},
		{"dpr too high", "MAZE_DPR", "5"},
		{"bad aspect", "MAZE_ASPECT", "0"},
		{"bad level", "MAZE_LOG_LEVEL", "chatty"},
		{"blank passcode", "MAZE_PASSCODE", "   "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			if _, err := Load(); err == nil {
				t.Fatalf("Load with %s=%q succeeded", tt.key, tt.value)
			}
			if got := LoadOrDefault(); got != Default() {
				t.Errorf("LoadOrDefault = %+v, want defaults", got)
			}
		})
	}
}

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("Default().Validate: %v", err)
	}
}
