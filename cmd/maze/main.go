//go:build !android

package main

import (
	"log/slog"
	"os"

	"github.com/gogpu/gg"

	"fingermaze/internal/config"
	"fingermaze/internal/game"
	"fingermaze/internal/maze"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration, using defaults", "err", err)
		cfg = config.Default()
	}
	logger := newLogger(cfg)
	slog.SetDefault(logger)
	maze.SetLogger(logger)
	gg.SetLogger(logger.With("component", "gg"))

	if err := game.RunDesktop(cfg); err != nil {
		logger.Error("maze exited", "err", err)
		os.Exit(1)
	}
}
