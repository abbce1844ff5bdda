package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/brickbreaker/internal/games/brickbreaker"
	"github.com/vovakirdan/brickbreaker/internal/platform/tui"
	"github.com/vovakirdan/brickbreaker/internal/storage"
)

var flagScoresLimit int

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the best scores. In a terminal this opens a scrollable
table; when piped it prints a plain listing.

Examples:
  brickbreaker scores
  brickbreaker scores --limit 5 | cat`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores in the plain listing")
}

func runScores(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	const title = "Brick Breaker"
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil && term.IsTerminal(int(os.Stdin.Fd())) {
		return tui.RunScoreboard(store, brickbreaker.ID, title, w, h)
	}

	scores, err := store.TopScores(brickbreaker.ID, flagScoresLimit)
	if err != nil {
		return err
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'brickbreaker play' to set the first high score!")
		return nil
	}

	fmt.Printf("  %-4s  %-8s  %-5s  %-12s  %s\n", "Rank", "Score", "Level", "Player", "Date")
	fmt.Printf("  %-4s  %-8s  %-5s  %-12s  %s\n", "----", "-----", "-----", "------", "----")
	for i, entry := range scores {
		player := entry.Player
		if player == "" {
			player = "-"
		}
		fmt.Printf("  %-4d  %-8d  %-5d  %-12s  %s\n",
			i+1, entry.Score, entry.Level, player, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.Stats(brickbreaker.ID)
	if err == nil {
		fmt.Println()
		fmt.Printf("Games: %d  Best: %d  Best level: %d  Average: %.0f\n",
			stats.GamesCount, stats.HighScore, stats.BestLevel, stats.AvgScore)
	}
	return nil
}
