package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/twenty48/internal/games/t2048"
	"github.com/vovakirdan/twenty48/internal/platform/tui"
	"github.com/vovakirdan/twenty48/internal/storage"
)

var (
	flagScoresLimit       int
	flagScoresInteractive bool
	flagScoresReset       bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the best record and round history",
	Long: `Display the best record and the top rounds, highest tile first.

Examples:
  twenty48 scores
  twenty48 scores --limit 25
  twenty48 scores -i        # Scrollable table
  twenty48 scores --reset   # Forget the best record and all rounds`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVarP(&flagScoresLimit, "limit", "n", 10, "Number of rounds to show")
	scoresCmd.Flags().BoolVarP(&flagScoresInteractive, "interactive", "i", false, "Open the scrollable scoreboard")
	scoresCmd.Flags().BoolVar(&flagScoresReset, "reset", false, "Delete the best record and round history")
}

func runScores(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	store, err := storage.Open(cfg.Storage.DBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if flagScoresReset {
		if err := store.ClearHighScore(cfg.Storage.HighScoreKey); err != nil {
			return err
		}
		if err := store.ClearRounds(t2048.GameID); err != nil {
			return err
		}
		logger.Info("scores cleared", "db", cfg.Storage.DBPath)
		return nil
	}

	if flagScoresInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		return tui.RunScoreboard(store, t2048.GameID, cfg.Storage.HighScoreKey, width, height)
	}

	best, err := store.HighScore(cfg.Storage.HighScoreKey)
	if err != nil {
		return err
	}
	rounds, err := store.TopRounds(t2048.GameID, flagScoresLimit)
	if err != nil {
		return err
	}
	stats, err := store.GameStats(t2048.GameID)
	if err != nil {
		return err
	}

	fmt.Println("High Scores - 2048")
	fmt.Println()

	if best == nil {
		fmt.Println("No high score recorded yet.")
		fmt.Println()
		fmt.Println("Play 'twenty48 play' to set the first one!")
		return nil
	}

	fmt.Printf("Best: %d in %s\n", best.HighestTile, t2048.FormatDuration(best.ElapsedSeconds))
	fmt.Println()

	if len(rounds) > 0 {
		fmt.Printf("  %-4s  %-6s  %-6s  %-6s  %-12s  %-9s  %s\n", "Rank", "Tile", "Time", "Moves", "Player", "End", "Date")
		fmt.Printf("  %-4s  %-6s  %-6s  %-6s  %-12s  %-9s  %s\n", "----", "----", "----", "-----", "------", "---", "----")
		for i, r := range rounds {
			player := r.Player
			if player == "" {
				player = "local"
			}
			fmt.Printf("  %-4d  %-6d  %-6s  %-6d  %-12s  %-9s  %s\n",
				i+1, r.HighestTile, t2048.FormatDuration(r.ElapsedSeconds), r.Moves,
				player, r.EndReason, r.CreatedAt.Format("2006-01-02 15:04"))
		}
		fmt.Println()
	}

	fmt.Printf("Rounds played: %d  Total moves: %d  Average time: %s\n",
		stats.Rounds, stats.TotalMoves, t2048.FormatDuration(int(stats.AvgSeconds)))
	return nil
}
