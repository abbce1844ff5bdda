package brickbreaker

import (
	"math/rand/v2"
	"slices"

	"github.com/vovakirdan/brickbreaker/internal/config"
	"github.com/vovakirdan/brickbreaker/internal/core"
)

// Event is something notable that happened during a tick.
type Event int

const (
	EventPaddleHit Event = iota
	EventBrickBreak
	EventPowerUpSpawned
	EventPowerUpCollected
	EventLevelUp
	EventGameOver
	EventRestart
)

// String returns the event name.
func (e Event) String() string {
	switch e {
	case EventPaddleHit:
		return "paddle_hit"
	case EventBrickBreak:
		return "brick_break"
	case EventPowerUpSpawned:
		return "powerup_spawned"
	case EventPowerUpCollected:
		return "powerup_collected"
	case EventLevelUp:
		return "level_up"
	case EventGameOver:
		return "game_over"
	case EventRestart:
		return "restart"
	default:
		return "unknown"
	}
}

// TickResult reports what a single Step did.
type TickResult struct {
	Events []Event
	Phase  Phase
}

// Has reports whether the tick raised ev.
func (r TickResult) Has(ev Event) bool {
	return slices.Contains(r.Events, ev)
}

// Hooks are the collaborators a Session calls into. Nil fields are allowed.
type Hooks struct {
	Sounds   core.SoundPlayer
	Prompter Prompter
}

// Session holds the complete state of one game: entities, progression and
// the RNG. It is not safe for concurrent use; drive it from a single
// goroutine.
type Session struct {
	cfg      config.BrickBreakerConfig
	src      *rand.PCG
	rng      *rand.Rand
	spawner  *Spawner
	sounds   core.SoundPlayer
	prompter Prompter

	ball     Ball
	paddle   Paddle
	bricks   []Brick
	powerUps []PowerUp

	score           int
	level           int
	bricksDestroyed int
	phase           Phase
	tick            uint64

	events []Event
}

// NewSession creates a session in the Playing phase with the ball at rest in
// the centre of the field.
func NewSession(cfg config.BrickBreakerConfig, seed int64, hooks Hooks) *Session {
	s := &Session{
		cfg:      cfg,
		src:      rand.NewPCG(uint64(seed), uint64(seed)^0x9e3779b97f4a7c15), //#nosec G115 -- seed bits reused as-is
		sounds:   hooks.Sounds,
		prompter: hooks.Prompter,
	}
	if s.sounds == nil {
		s.sounds = core.Silent{}
	}
	s.rng = rand.New(s.src)
	s.spawner = NewSpawner(cfg.PowerUps, s.rng)
	s.reset()
	return s
}

// Step advances the session by one tick using the given input snapshot.
// Nothing happens outside the Playing phase.
func (s *Session) Step(in InputState) TickResult {
	s.events = nil
	if s.phase != PhasePlaying {
		return TickResult{Phase: s.phase}
	}
	s.tick++

	if in.Launch {
		s.ball.Moving = true
	}
	if s.ball.Moving {
		s.advanceBall()
		if slices.Contains(s.events, EventGameOver) {
			return s.finish()
		}
	}
	s.movePaddle(in)
	return s.finish()
}

func (s *Session) finish() TickResult {
	s.compactPowerUps()
	return TickResult{Events: s.events, Phase: s.phase}
}

func (s *Session) emit(ev Event) {
	s.events = append(s.events, ev)
}

// Config returns the configuration the session was created with.
func (s *Session) Config() config.BrickBreakerConfig { return s.cfg }

// Score returns the current score.
func (s *Session) Score() int { return s.score }

// Level returns the current level, starting at 1.
func (s *Session) Level() int { return s.level }

// BricksDestroyed returns the number of bricks destroyed on this level.
func (s *Session) BricksDestroyed() int { return s.bricksDestroyed }

// Phase returns the current phase.
func (s *Session) Phase() Phase { return s.phase }

// Tick returns the number of ticks played.
func (s *Session) Tick() uint64 { return s.tick }

// Ball returns a copy of the ball.
func (s *Session) Ball() Ball { return s.ball }

// Paddle returns a copy of the paddle.
func (s *Session) Paddle() Paddle { return s.paddle }

// Bricks returns a copy of the brick grid.
func (s *Session) Bricks() []Brick { return slices.Clone(s.bricks) }

// PowerUps returns a copy of the power-up list.
func (s *Session) PowerUps() []PowerUp { return slices.Clone(s.powerUps) }

// BrickView is a brick as seen by a renderer.
type BrickView struct {
	Rect  core.Rect
	Color core.Color
}

// PowerUpView is a power-up as seen by a renderer.
type PowerUpView struct {
	Rect core.Rect
	Type PowerUpType
}

// Frame is the read-only view of a session handed to renderers.
type Frame struct {
	FieldW, FieldH int

	Paddle     core.Rect
	BallX      int
	BallY      int
	BallRadius int
	Launched   bool

	Bricks   []BrickView // intact bricks only
	PowerUps []PowerUpView

	Score int
	Level int
	Phase Phase
}

// Frame builds the render view of the current state.
func (s *Session) Frame() Frame {
	f := Frame{
		FieldW:     s.cfg.Field.Width,
		FieldH:     s.cfg.Field.Height,
		Paddle:     s.paddle.Rect(),
		BallX:      s.ball.X,
		BallY:      s.ball.Y,
		BallRadius: s.ball.Radius,
		Launched:   s.ball.Moving,
		Bricks:     make([]BrickView, 0, len(s.bricks)),
		PowerUps:   make([]PowerUpView, 0, len(s.powerUps)),
		Score:      s.score,
		Level:      s.level,
		Phase:      s.phase,
	}
	for _, br := range s.bricks {
		if !br.Destroyed {
			f.Bricks = append(f.Bricks, BrickView{Rect: s.brickRect(br), Color: br.Color})
		}
	}
	for _, p := range s.powerUps {
		if p.Active {
			f.PowerUps = append(f.PowerUps, PowerUpView{Rect: s.powerUpRect(p), Type: p.Type})
		}
	}
	return f
}
