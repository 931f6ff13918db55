package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/zombie-arcade/internal/config"
	"github.com/vovakirdan/zombie-arcade/internal/core"
	"github.com/vovakirdan/zombie-arcade/internal/games/zombies"
	"github.com/vovakirdan/zombie-arcade/internal/platform/tui"
	"github.com/vovakirdan/zombie-arcade/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a run",
	Long: `Start a Zombie Shooter run.

Controls:
  Mouse click       - Fire toward the pointer
  Arrows/WASD       - Fire up, left, down, right
  7 9 1 3           - Fire diagonally (numpad layout)
  P/Esc             - Pause
  R                 - Restart (after game over)
  ?                 - Toggle full help
  Q/Ctrl+C          - Quit

Difficulty options:
  easy   - 150 HP, slower zombies, gentler spawn floor
  normal - Defaults
  hard   - Double contact damage, faster zombies and spawns
  fixed  - No stage progression, stays at stage 1

Examples:
  zombies play
  zombies play --difficulty easy
  zombies play --seed 42 --fps 30
  zombies play --config ./my-zombies.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runPlay(_ *cobra.Command, _ []string) error {
	if _, err := config.ParsePreset(flagDifficulty); err != nil {
		return err
	}
	logger, err := newLogger("zombies")
	if err != nil {
		return err
	}

	cfg := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed

	// Fail early on a bad config instead of silently using defaults
	if flagConfig != "" {
		if _, err := config.LoadZombies(flagConfig); err != nil {
			return err
		}
	}
	zombies.SetConfigPath(flagConfig)
	zombies.SetDifficultyPreset(flagDifficulty)

	game := zombies.New()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		// Continue without storage - game still works
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	if err := tui.Run(game, store, cfg, tui.WithLogger(logger)); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
