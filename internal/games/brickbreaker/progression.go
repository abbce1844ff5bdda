package brickbreaker

// Phase is the session state machine position.
type Phase int

const (
	PhasePlaying  Phase = iota // Ball at rest or in play
	PhaseGameOver              // Waiting for a restart/quit decision
	PhaseQuit                  // Terminal; the player chose to leave
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "gameover"
	case PhaseQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Decision is the answer to the game-over prompt.
type Decision int

const (
	DecisionRestart Decision = iota
	DecisionQuit
)

// Prompter asks the player what to do after a game over. It is called
// synchronously from Step; asynchronous front ends leave it nil and call
// Session.Decide once the answer arrives.
type Prompter interface {
	GameOver(score int) Decision
}

// PrompterFunc adapts a function to the Prompter interface.
type PrompterFunc func(score int) Decision

// GameOver calls f(score).
func (f PrompterFunc) GameOver(score int) Decision { return f(score) }

// reset puts the session into its starting state. The RNG stream carries on.
func (s *Session) reset() {
	cfg := s.cfg

	s.score = 0
	s.level = 1
	s.bricksDestroyed = 0
	s.phase = PhasePlaying

	s.ball = Ball{
		X:      cfg.Field.Width / 2,
		Y:      cfg.Field.Height / 2,
		VX:     cfg.Ball.SpeedX,
		VY:     cfg.Ball.SpeedY,
		Radius: cfg.Ball.Radius,
	}
	s.paddle = Paddle{
		Y:      cfg.Field.Height - cfg.Paddle.Height - cfg.Paddle.BottomMargin,
		Height: cfg.Paddle.Height,
		Speed:  cfg.Paddle.Speed,
	}
	s.setPaddleWidth(cfg.Paddle.Width)
	s.paddle.X = (cfg.Field.Width - s.paddle.Width) / 2

	s.bricks = NewGrid(cfg.Bricks, s.rng)
	clear(s.powerUps)
	s.powerUps = s.powerUps[:0]
}

// levelUp advances to the next level with a fresh grid and a faster ball.
func (s *Session) levelUp() {
	s.level++
	s.bricksDestroyed = 0
	s.bricks = NewGrid(s.cfg.Bricks, s.rng)

	dx, dy := s.cfg.Difficulty.SpeedIncrease(s.level)
	s.ball.VX += dx
	s.ball.VY += dy
	s.emit(EventLevelUp)
}

// gameOver stops the ball and, when a synchronous prompter is attached,
// applies its decision immediately.
func (s *Session) gameOver() {
	s.ball.Moving = false
	s.phase = PhaseGameOver
	s.emit(EventGameOver)

	if s.prompter != nil {
		s.Decide(s.prompter.GameOver(s.score))
	}
}

// Decide applies a game-over decision. It returns false and does nothing
// unless the session is in the GameOver phase.
func (s *Session) Decide(d Decision) bool {
	if s.phase != PhaseGameOver {
		return false
	}
	switch d {
	case DecisionRestart:
		s.reset()
		s.emit(EventRestart)
	case DecisionQuit:
		s.phase = PhaseQuit
	}
	return true
}
