// brickbreaker is a terminal brick breaker built on the arcade platform.
//
// Usage:
//
//	brickbreaker play          - Play in this terminal
//	brickbreaker sim           - Run headless with an autopilot paddle
//	brickbreaker serve         - Start SSH server for remote play
//	brickbreaker scores        - Show high scores
//	brickbreaker list          - List registered games
//	brickbreaker config        - Print the default configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 100)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.arcade/brickbreaker.db)
//	--config <path>       - Game config file (.yaml or .toml)
//	--difficulty <name>   - Difficulty preset: easy, normal, hard, fixed
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/brickbreaker/internal/core"
	"github.com/vovakirdan/brickbreaker/internal/games/brickbreaker"
	"github.com/vovakirdan/brickbreaker/internal/storage"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagVerbose    bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "brickbreaker",
	Short: "Brick Breaker - break bricks in your terminal",
	Long: `Brick Breaker is a terminal take on the classic paddle and ball game.

Available commands:
  play     - Play in this terminal
  sim      - Run headless with an autopilot paddle
  serve    - Start SSH server for remote play
  scores   - View high scores
  list     - Show registered games
  config   - Print the default configuration

Examples:
  brickbreaker play
  brickbreaker play --difficulty hard --seed 42
  brickbreaker sim --ticks 100000 --restarts 3
  brickbreaker serve --ssh :2222
  brickbreaker scores`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		brickbreaker.SetConfigPath(flagConfig)
		brickbreaker.SetDifficultyPreset(flagDifficulty)
	},
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", core.DefaultTickRate, "Tick rate (ticks per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to game config (.yaml or .toml)")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger returns the stderr logger shared by all commands.
func newLogger(prefix string) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}
