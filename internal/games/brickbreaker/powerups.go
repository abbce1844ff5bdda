package brickbreaker

import (
	"math/rand/v2"

	"github.com/vovakirdan/brickbreaker/internal/config"
	"github.com/vovakirdan/brickbreaker/internal/core"
)

// Spawner decides whether a destroyed brick drops a power-up.
type Spawner struct {
	cfg config.PowerUpsConfig
	rng *rand.Rand
}

// NewSpawner creates a spawner drawing from rng.
func NewSpawner(cfg config.PowerUpsConfig, rng *rand.Rand) *Spawner {
	return &Spawner{cfg: cfg, rng: rng}
}

// Roll draws a uniform integer in [0, spawn_range) and reports a spawn when
// it falls below spawn_chance. The type is then drawn uniformly.
func (s *Spawner) Roll() (PowerUpType, bool) {
	if s.cfg.SpawnRange <= 0 || s.rng.IntN(s.cfg.SpawnRange) >= s.cfg.SpawnChance {
		return 0, false
	}
	return PowerUpType(s.rng.IntN(int(powerUpTypeCount))), true
}

// TrySpawn rolls once and, on success, returns an active power-up with its
// top-left corner at (x, y).
func (s *Spawner) TrySpawn(x, y float64) (PowerUp, bool) {
	t, ok := s.Roll()
	if !ok {
		return PowerUp{}, false
	}
	return PowerUp{X: x, Y: y, Type: t, Active: true}, true
}

// SlowBall halves both velocity components, truncating toward zero.
func SlowBall(vx, vy int) (int, int) {
	return vx / 2, vy / 2
}

func (s *Session) powerUpRect(p PowerUp) core.Rect {
	return core.NewRect(p.X, p.Y, float64(s.cfg.PowerUps.Width), float64(s.cfg.PowerUps.Height))
}

// applyPowerUp applies a collected power-up's effect.
func (s *Session) applyPowerUp(t PowerUpType) {
	switch t {
	case PowerUpExpandPaddle:
		s.setPaddleWidth(s.paddle.Width + s.cfg.PowerUps.WidthDelta)
	case PowerUpShrinkPaddle:
		s.setPaddleWidth(s.paddle.Width - s.cfg.PowerUps.WidthDelta)
	case PowerUpSlowBall:
		s.ball.VX, s.ball.VY = SlowBall(s.ball.VX, s.ball.VY)
	}
}

// setPaddleWidth clamps the width to the configured bounds and keeps the
// paddle inside the field.
func (s *Session) setPaddleWidth(w int) {
	lo, hi := s.cfg.WidthBounds()
	s.paddle.Width = core.Clamp(w, lo, hi)
	s.paddle.X = core.Clamp(s.paddle.X, 0, s.cfg.Field.Width-s.paddle.Width)
}

// compactPowerUps drops collected power-ups so the list holds only active
// entries between ticks.
func (s *Session) compactPowerUps() {
	kept := s.powerUps[:0]
	for _, p := range s.powerUps {
		if p.Active {
			kept = append(kept, p)
		}
	}
	clear(s.powerUps[len(kept):])
	s.powerUps = kept
}
