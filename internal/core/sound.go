package core

// Sound identifies a fire-and-forget sound trigger raised by game logic.
type Sound int

const (
	SoundPaddleHit Sound = iota
	SoundBrickBreak
)

// String returns the sound name.
func (s Sound) String() string {
	switch s {
	case SoundPaddleHit:
		return "paddle_hit"
	case SoundBrickBreak:
		return "brick_break"
	default:
		return "unknown"
	}
}

// SoundPlayer plays sound triggers. Implementations must not block and must
// treat playback failures as non-fatal.
type SoundPlayer interface {
	Play(s Sound)
}

// Silent is a SoundPlayer that drops every trigger.
type Silent struct{}

// Play does nothing.
func (Silent) Play(Sound) {}
