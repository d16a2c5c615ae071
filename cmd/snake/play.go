package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/game"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a round",
	Long: `Start a game of Snake.

Controls:
  Arrows/WASD/HJKL - Turn
  R                - Restart (after game over)
  ?                - Toggle help
  Q/Esc/Ctrl+C     - Quit

Examples:
  snake play
  snake play --width 30 --height 15
  snake play --fps 15 --seed 7`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	loop, err := game.New(gameSettings(cfg, time.Now))
	if err != nil {
		return err
	}

	// Warn early; the TUI also holds the game while the window is too small
	needW, needH := requiredSize(cfg)
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil && (w < needW || h < needH) {
		fmt.Fprintf(os.Stderr, "Warning: terminal is %dx%d, the board needs %dx%d\n", w, h, needW, needH)
		logger.Warn("terminal smaller than board", "have", fmt.Sprintf("%dx%d", w, h), "need", fmt.Sprintf("%dx%d", needW, needH))
	}

	logger.Info("starting",
		"grid", fmt.Sprintf("%dx%d", cfg.Grid.Width, cfg.Grid.Height),
		"tick_rate", cfg.TickRate,
		"seed", loop.Seed(),
	)

	runErr := tui.Run(loop, tui.Options{
		TickRate: cfg.TickRate,
		CellSize: cfg.Grid.CellSize,
		Logger:   logger,
	})
	if runErr != nil {
		logger.Error("tui stopped", "error", runErr)
		return fmt.Errorf("running game: %w", runErr)
	}

	logger.Info("session ended", "best", loop.State().Best)
	return nil
}

// gameSettings maps the configuration onto loop settings. A zero seed is
// replaced by the current time.
func gameSettings(cfg config.Config, now func() time.Time) game.Settings {
	seed := cfg.Seed
	if seed == 0 {
		seed = now().UnixNano()
	}
	return game.Settings{
		Grid:            core.Grid{Width: cfg.Grid.Width, Height: cfg.Grid.Height},
		Seed:            seed,
		MaxFoodAttempts: cfg.Food.MaxAttempts,
	}
}

// requiredSize returns the terminal size the board, HUD and help line need.
func requiredSize(cfg config.Config) (int, int) {
	rc := tui.NewRenderContext(core.Grid{Width: cfg.Grid.Width, Height: cfg.Grid.Height}, cfg.Grid.CellSize)
	w, h := rc.Size()
	return w, h + 1
}
