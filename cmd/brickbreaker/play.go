package main

import (
	"fmt"
	"os"
	"os/user"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/brickbreaker/internal/audio"
	"github.com/vovakirdan/brickbreaker/internal/core"
	"github.com/vovakirdan/brickbreaker/internal/games/brickbreaker"
	"github.com/vovakirdan/brickbreaker/internal/platform/tui"
	"github.com/vovakirdan/brickbreaker/internal/registry"
	"github.com/vovakirdan/brickbreaker/internal/storage"
)

var flagMute bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a game of Brick Breaker.

Controls:
  Left/A, Right/D  - Move paddle
  Space            - Launch the ball
  P                - Pause
  Y/N              - Play again / give up after game over
  Ctrl+S           - Save a screenshot
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Wider paddle, slower ball
  normal - Default paddle and ball
  hard   - Narrow paddle, faster ball
  fixed  - Ball speed never increases between levels

Examples:
  brickbreaker play
  brickbreaker play --difficulty easy
  brickbreaker play --config ./my-brickbreaker.toml
  brickbreaker play --mute`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
}

func runPlay(_ *cobra.Command, _ []string) error {
	logger := newLogger("play")

	// Surface config problems before the alt screen hides them.
	warnConfig(logger, flagConfig, flagDifficulty)

	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}

	var sounds core.SoundPlayer = core.Silent{}
	if !flagMute {
		sounds = audio.OpenOrSilent(logger)
		defer audio.Close()
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
		Sounds:   sounds,
	}

	game, err := registry.Create(brickbreaker.ID)
	if err != nil {
		return err
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		// The game still works without storage.
		logger.Warn("could not open scores database", "err", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	if err := tui.Run(game, cfg, tui.Options{
		Store:  store,
		Player: playerName(),
		Logger: logger,
	}); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

// playerName returns the local user name saved alongside scores.
func playerName() string {
	if u, err := user.Current(); err == nil {
		return u.Username
	}
	return os.Getenv("USER")
}
