// snake is the classic Snake game for the terminal.
//
// Usage:
//
//	snake                    - Play (same as snake play)
//	snake play               - Play a round
//	snake config             - Print the effective configuration as YAML
//
// Global flags:
//
//	--config <path>   - Config file (default search: ~/.snake/config.yaml, ./configs/snake.yaml)
//	--fps <rate>      - Ticks per second
//	--seed <value>    - RNG seed for reproducible food placement
//	--width, --height - Grid size in cells
//	--cell-size <n>   - Terminal columns per cell
//	--log-file <path> - Write a diagnostic log
//	--log-level <lvl> - debug, info, warn, error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
)

var (
	// Global flags
	flagConfig   string
	flagFPS      int
	flagSeed     int64
	flagWidth    int
	flagHeight   int
	flagCellSize int
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - the classic game in your terminal",
	Long: `Snake is the classic arcade game played on a fixed grid in your terminal.

Steer the snake to the food. Each meal grows the snake and scores a point.
Running into a wall or into yourself ends the round.

Available commands:
  play     - Play a round (default)
  config   - Print the effective configuration

Examples:
  snake
  snake play --width 40 --height 20 --fps 12
  snake play --seed 42 --log-file ~/.snake/snake.log
  snake config --config ./my-snake.yaml`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPlay,
}

func init() {
	// Global persistent flags
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	pf.IntVar(&flagFPS, "fps", 0, "Tick rate (ticks per second, 0 = from config)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = from config, else random based on time)")
	pf.IntVar(&flagWidth, "width", 0, "Grid width in cells (0 = from config)")
	pf.IntVar(&flagHeight, "height", 0, "Grid height in cells (0 = from config)")
	pf.IntVar(&flagCellSize, "cell-size", 0, "Terminal columns per cell (0 = from config)")
	pf.StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	pf.StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig resolves the configuration from file and flags.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, err
	}

	config.Overrides{
		Width:    flagWidth,
		Height:   flagHeight,
		CellSize: flagCellSize,
		TickRate: flagFPS,
		Seed:     flagSeed,
		LogLevel: flagLogLevel,
		LogFile:  flagLogFile,
	}.Apply(&cfg)

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}
