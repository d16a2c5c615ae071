package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// Default returns the built-in configuration: a 25x20 board at 10 ticks per second.
func Default() Config {
	return Config{
		Grid: GridConfig{
			Width:    25,
			Height:   20,
			CellSize: 2,
		},
		TickRate: 10,
		Seed:     0,
		Food: FoodConfig{
			MaxAttempts: 0,
		},
		Log: LogConfig{
			Level: "info",
			File:  "",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
