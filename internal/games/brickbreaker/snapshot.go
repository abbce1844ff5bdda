package brickbreaker

// Snapshot is a flat copy of the session state using primitive types only,
// for replay checks and determinism tests.
type Snapshot struct {
	Tick            uint64
	Phase           int
	Score           int
	Level           int
	BricksDestroyed int

	BallX, BallY   int
	BallVX, BallVY int
	BallMoving     bool

	PaddleX     int
	PaddleWidth int

	// Each brick is 2 ints: Color, Destroyed
	BrickData []int

	// Each power-up is 4 ints: Type, X, Y, Active
	PowerUpData []int

	RNGState []byte
}

// Snapshot returns the current session state.
func (s *Session) Snapshot() Snapshot {
	bricks := make([]int, 0, len(s.bricks)*2)
	for _, br := range s.bricks {
		bricks = append(bricks, int(br.Color), boolInt(br.Destroyed))
	}

	powerUps := make([]int, 0, len(s.powerUps)*4)
	for _, p := range s.powerUps {
		powerUps = append(powerUps, int(p.Type), int(p.X), int(p.Y), boolInt(p.Active))
	}

	// PCG marshalling cannot fail.
	rngState, _ := s.src.MarshalBinary()

	return Snapshot{
		Tick:            s.tick,
		Phase:           int(s.phase),
		Score:           s.score,
		Level:           s.level,
		BricksDestroyed: s.bricksDestroyed,
		BallX:           s.ball.X,
		BallY:           s.ball.Y,
		BallVX:          s.ball.VX,
		BallVY:          s.ball.VY,
		BallMoving:      s.ball.Moving,
		PaddleX:         s.paddle.X,
		PaddleWidth:     s.paddle.Width,
		BrickData:       bricks,
		PowerUpData:     powerUps,
		RNGState:        rngState,
	}
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	mix := func(v int) {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	mix(snap.Phase)
	mix(snap.Score)
	mix(snap.Level)
	mix(snap.BricksDestroyed)
	mix(snap.BallX)
	mix(snap.BallY)
	mix(snap.BallVX)
	mix(snap.BallVY)
	mix(boolInt(snap.BallMoving))
	mix(snap.PaddleX)
	mix(snap.PaddleWidth)
	for _, v := range snap.BrickData {
		mix(v)
	}
	for _, v := range snap.PowerUpData {
		mix(v)
	}
	for _, b := range snap.RNGState {
		mix(int(b))
	}
	return h
}
