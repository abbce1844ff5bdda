package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/brickbreaker/internal/config"
	"github.com/vovakirdan/brickbreaker/internal/games/brickbreaker"
)

var (
	flagSimTicks    int
	flagSimRestarts int
	flagSimDeadzone int
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run headless with an autopilot paddle",
	Long: `Run the game without a terminal. An autopilot follows the ball and
launches it whenever it rests on the paddle. After each game over the
simulator restarts until --restarts is used up, then quits.

The final state hash depends only on --seed, the config and the flags,
so two runs with the same inputs print the same hash.

Examples:
  brickbreaker sim --seed 42
  brickbreaker sim --ticks 1000000 --restarts 10 --difficulty hard`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagSimTicks, "ticks", 100_000, "Maximum number of ticks to simulate")
	simCmd.Flags().IntVar(&flagSimRestarts, "restarts", 0, "Number of restarts after game over")
	simCmd.Flags().IntVar(&flagSimDeadzone, "deadzone", 10, "Autopilot tolerance in field units")
}

func runSim(cmd *cobra.Command, _ []string) error {
	logger := newLogger("sim")

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	if preset := config.ParsePreset(flagDifficulty); preset != "" {
		config.ApplyPreset(&cfg, preset)
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	restarts := 0
	prompter := brickbreaker.PrompterFunc(func(score int) brickbreaker.Decision {
		logger.Info("game over", "score", score, "restarts", restarts)
		if restarts < flagSimRestarts {
			restarts++
			return brickbreaker.DecisionRestart
		}
		return brickbreaker.DecisionQuit
	})

	session := brickbreaker.NewSession(cfg, seed, brickbreaker.Hooks{Prompter: prompter})
	pilot := brickbreaker.Autopilot{Deadzone: flagSimDeadzone}

	start := time.Now()
	bricks, levels := simulate(ctx, session, pilot, flagSimTicks)

	snap := session.Snapshot()
	logger.Info("simulation finished",
		"seed", seed,
		"ticks", session.Tick(),
		"phase", session.Phase(),
		"score", session.Score(),
		"level", session.Level(),
		"bricks", bricks,
		"level_ups", levels,
		"restarts", restarts,
		"elapsed", time.Since(start).Round(time.Millisecond),
		"hash", snap.Hash(),
		"interrupted", ctx.Err() != nil,
	)
	return nil
}

// simulate steps the session until it quits, maxTicks is reached or ctx is
// cancelled. It returns the bricks broken and levels cleared along the way.
func simulate(ctx context.Context, s *brickbreaker.Session, pilot brickbreaker.Autopilot, maxTicks int) (bricks, levels int) {
	for i := 0; i < maxTicks && s.Phase() == brickbreaker.PhasePlaying; i++ {
		if i%1024 == 0 && ctx.Err() != nil {
			return bricks, levels
		}
		res := s.Step(pilot.Next(s))
		for _, ev := range res.Events {
			switch ev {
			case brickbreaker.EventBrickBreak:
				bricks++
			case brickbreaker.EventLevelUp:
				levels++
			}
		}
	}
	return bricks, levels
}
