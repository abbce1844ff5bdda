package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 100)
	Seed     int64 // RNG seed for deterministic gameplay

	// Sounds receives sound triggers; nil means silent.
	Sounds SoundPlayer
}

// DefaultTickRate matches a 10ms simulation period.
const DefaultTickRate = 100

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: DefaultTickRate,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	Level    int  // Current level (1-based)
	GameOver bool // Whether the game has ended and awaits a decision
	Paused   bool // Whether the game is paused
	Exit     bool // Player chose to terminate after game over
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
