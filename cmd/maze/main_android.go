//go:build android

package main

import (
	"log/slog"

	"github.com/gogpu/gg"

	"fingermaze/internal/config"
	"fingermaze/internal/game"
	"fingermaze/internal/maze"
)

func main() {
	cfg := config.LoadOrDefault()
	logger := newLogger(cfg)
	slog.SetDefault(logger)
	maze.SetLogger(logger)
	gg.SetLogger(logger.With("component", "gg"))
	game.RunAndroid(cfg)
}
