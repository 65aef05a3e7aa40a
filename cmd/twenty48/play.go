package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/twenty48/internal/core"
	"github.com/vovakirdan/twenty48/internal/games/t2048"
	"github.com/vovakirdan/twenty48/internal/platform/tui"
	"github.com/vovakirdan/twenty48/internal/registry"
	"github.com/vovakirdan/twenty48/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a round",
	Long: `Start a new round of 2048.

Controls (defaults, remappable in the config):
  Arrows/WASD/HJKL - Slide tiles
  P/Esc            - Pause
  R                - Restart
  Q/Ctrl+C         - Quit
  Ctrl+S           - Save a screenshot to ~/.twenty48/screenshots

Examples:
  twenty48 play
  twenty48 play --seed 42
  twenty48 play --config ./my-2048.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := t2048.GameID
	if len(args) == 1 {
		gameID = args[0]
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("%w (run 'twenty48 list' to see available games)", err)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rt := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: cfg.Gameplay.TickRate,
		Seed:     flagSeed,
		WinTile:  cfg.Gameplay.WinTile,
	}

	// Continue without storage - the game still works
	store, err := storage.Open(cfg.Storage.DBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
	}

	runErr := tui.Run(game, rt, tui.Options{
		Store:  store,
		Config: cfg,
		Logger: logger,
	})

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		return fmt.Errorf("running game: %w", runErr)
	}
	return nil
}
