package brickbreaker

// Autopilot steers the paddle under the ball and launches it when at rest.
// Used by the headless simulator.
type Autopilot struct {
	// Deadzone is how far the ball may drift from the paddle centre before
	// the paddle moves.
	Deadzone int
}

// Next returns the input for the coming tick.
func (a Autopilot) Next(s *Session) InputState {
	ball := s.Ball()
	paddle := s.Paddle()
	centre := paddle.X + paddle.Width/2

	in := InputState{Launch: !ball.Moving}
	switch {
	case ball.X < centre-a.Deadzone:
		in.Left = true
	case ball.X > centre+a.Deadzone:
		in.Right = true
	}
	return in
}
