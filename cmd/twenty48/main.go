// twenty48 is the 2048 sliding-tile puzzle for the terminal.
//
// Usage:
//
//	twenty48 play            - Play a round
//	twenty48 scores          - Show the best record and round history
//	twenty48 serve           - Start SSH server for remote play
//	twenty48 config          - Print the effective configuration
//	twenty48 list            - List available games
//
// Global flags:
//
//	--fps <rate>      - Set tick rate (default: from config, 60)
//	--seed <value>    - Set RNG seed for reproducible gameplay
//	--db <path>       - Set database path (default: ~/.twenty48/scores.db)
//	--config <path>   - Use a custom YAML config
//	--debug           - Enable debug logging
package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/twenty48/internal/config"

	// Import games to register them
	_ "github.com/vovakirdan/twenty48/internal/games/t2048"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
	flagConfig string
	flagDebug  bool
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	Prefix: "twenty48",
})

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "twenty48",
	Short: "2048 - Slide and merge tiles in your terminal",
	Long: `twenty48 is the 2048 sliding-tile puzzle for the terminal.

Slide all tiles in one direction; equal neighbours merge into their sum.
A new tile appears after every move. Reach 2048 and keep going.

Available commands:
  play     - Play a round
  scores   - Show the best record and round history
  serve    - Start SSH server for remote play
  config   - Print the effective configuration
  list     - Show all available games

Examples:
  twenty48 play
  twenty48 play --seed 42
  twenty48 scores -i
  twenty48 serve --ssh :2222`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		if flagDebug {
			logger.SetLevel(log.DebugLevel)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (0 = use config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to scores database (empty = use config)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig loads the YAML config and applies command-line overrides.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagFPS > 0 {
		cfg.Gameplay.TickRate = flagFPS
	}
	if flagDBPath != "" {
		cfg.Storage.DBPath = flagDBPath
	}
	logger.Debug("config loaded", "win_tile", cfg.Gameplay.WinTile, "tick_rate", cfg.Gameplay.TickRate, "db", cfg.Storage.DBPath)
	return cfg, nil
}
