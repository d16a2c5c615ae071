// Package config provides YAML-based configuration loading for the snake game.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
)

// Config contains all recognized options. Values are fixed once a game starts.
type Config struct {
	Grid     GridConfig `yaml:"grid"`
	TickRate int        `yaml:"tick_rate"` // Simulation ticks per second
	Seed     int64      `yaml:"seed"`      // RNG seed, 0 = time based
	Food     FoodConfig `yaml:"food"`
	Log      LogConfig  `yaml:"log"`
}

// GridConfig defines the play field geometry.
type GridConfig struct {
	Width    int `yaml:"width"`     // Cells across
	Height   int `yaml:"height"`    // Cells down
	CellSize int `yaml:"cell_size"` // Terminal columns per cell, renderer only
}

// FoodConfig tunes food placement.
type FoodConfig struct {
	// MaxAttempts bounds random sampling before falling back to a scan of
	// free cells. 0 means four times the grid area.
	MaxAttempts int `yaml:"max_attempts"`
}

// LogConfig controls the diagnostic log. The terminal belongs to the game,
// so logs go to a file or nowhere.
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// Limits for grid and timing values.
const (
	MinGridWidth  = 4 // Initial three-cell body plus one cell ahead
	MinGridHeight = 1
	MaxGridSide   = 200
	MaxCellSize   = 4
	MaxTickRate   = 120
)

// Validate checks every option and reports all problems at once.
func (c Config) Validate() error {
	var errs []error

	if c.Grid.Width < MinGridWidth || c.Grid.Width > MaxGridSide {
		errs = append(errs, fmt.Errorf("grid.width must be in [%d, %d], got %d", MinGridWidth, MaxGridSide, c.Grid.Width))
	}
	if c.Grid.Height < MinGridHeight || c.Grid.Height > MaxGridSide {
		errs = append(errs, fmt.Errorf("grid.height must be in [%d, %d], got %d", MinGridHeight, MaxGridSide, c.Grid.Height))
	}
	if c.Grid.CellSize < 1 || c.Grid.CellSize > MaxCellSize {
		errs = append(errs, fmt.Errorf("grid.cell_size must be in [1, %d], got %d", MaxCellSize, c.Grid.CellSize))
	}
	if c.TickRate < 1 || c.TickRate > MaxTickRate {
		errs = append(errs, fmt.Errorf("tick_rate must be in [1, %d], got %d", MaxTickRate, c.TickRate))
	}
	if c.Food.MaxAttempts < 0 {
		errs = append(errs, fmt.Errorf("food.max_attempts must not be negative, got %d", c.Food.MaxAttempts))
	}
	if _, err := log.ParseLevel(strings.ToLower(c.Log.Level)); c.Log.Level != "" && err != nil {
		errs = append(errs, fmt.Errorf("log.level %q: %w", c.Log.Level, err))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid configuration: %w", errors.Join(errs...))
	}
	return nil
}

// LogLevel returns the configured log level, defaulting to info.
func (c Config) LogLevel() log.Level {
	level, err := log.ParseLevel(strings.ToLower(c.Log.Level))
	if err != nil {
		return log.InfoLevel
	}
	return level
}

// Overrides holds values supplied on the command line.
// Zero values leave the loaded configuration untouched.
type Overrides struct {
	Width    int
	Height   int
	CellSize int
	TickRate int
	Seed     int64
	LogLevel string
	LogFile  string
}

// Apply copies every non-zero override onto the config.
func (o Overrides) Apply(cfg *Config) {
	if o.Width != 0 {
		cfg.Grid.Width = o.Width
	}
	if o.Height != 0 {
		cfg.Grid.Height = o.Height
	}
	if o.CellSize != 0 {
		cfg.Grid.CellSize = o.CellSize
	}
	if o.TickRate != 0 {
		cfg.TickRate = o.TickRate
	}
	if o.Seed != 0 {
		cfg.Seed = o.Seed
	}
	if o.LogLevel != "" {
		cfg.Log.Level = o.LogLevel
	}
	if o.LogFile != "" {
		cfg.Log.File = o.LogFile
	}
}
