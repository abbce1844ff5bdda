// Package brickbreaker implements the brick breaker game core: ball physics,
// paddle, brick and power-up collisions, level progression and the power-up
// spawner. The core is deterministic for a given seed and input sequence and
// talks to the outside world only through the Frame, sound and prompt hooks.
package brickbreaker

import "github.com/vovakirdan/brickbreaker/internal/core"

// Brick is a single destructible brick in the grid.
type Brick struct {
	X, Y      float64
	Color     core.Color
	Destroyed bool
}

// PowerUpType identifies a power-up effect.
type PowerUpType int

const (
	PowerUpExpandPaddle PowerUpType = iota // Widen paddle
	PowerUpShrinkPaddle                    // Narrow paddle
	PowerUpSlowBall                        // Halve ball velocity
	powerUpTypeCount                       // Sentinel for counting types
)

// String returns the name of the power-up type.
func (t PowerUpType) String() string {
	switch t {
	case PowerUpExpandPaddle:
		return "Expand"
	case PowerUpShrinkPaddle:
		return "Shrink"
	case PowerUpSlowBall:
		return "Slow"
	default:
		return "?"
	}
}

// Glyph returns the display character for a power-up type.
func (t PowerUpType) Glyph() rune {
	switch t {
	case PowerUpExpandPaddle:
		return 'E'
	case PowerUpShrinkPaddle:
		return 'S'
	case PowerUpSlowBall:
		return '-'
	default:
		return '?'
	}
}

// Color returns the display color for a power-up type.
func (t PowerUpType) Color() core.Color {
	switch t {
	case PowerUpExpandPaddle:
		return core.ColorCyan
	case PowerUpShrinkPaddle:
		return core.ColorMagenta
	case PowerUpSlowBall:
		return core.ColorWhite
	default:
		return core.ColorDefault
	}
}

// PowerUp is a stationary pickup dropped by a destroyed brick.
type PowerUp struct {
	X, Y   float64
	Type   PowerUpType
	Active bool
}

// Ball is the single ball. Position is the centre; velocity is in field
// units per tick.
type Ball struct {
	X, Y   int
	VX, VY int
	Radius int
	Moving bool
}

// Left returns the x of the ball's left edge.
func (b Ball) Left() int { return b.X - b.Radius }

// Right returns the x of the ball's right edge.
func (b Ball) Right() int { return b.X + b.Radius }

// Top returns the y of the ball's top edge.
func (b Ball) Top() int { return b.Y - b.Radius }

// Bottom returns the y of the ball's bottom edge.
func (b Ball) Bottom() int { return b.Y + b.Radius }

// Rect returns the ball's bounding box.
func (b Ball) Rect() core.Rect {
	d := float64(2 * b.Radius)
	return core.NewRect(float64(b.Left()), float64(b.Top()), d, d)
}

// Paddle is the player-controlled paddle. Y, Height and Speed never change
// during a session; Width changes through power-ups.
type Paddle struct {
	X, Y   int
	Width  int
	Height int
	Speed  int
}

// Rect returns the paddle's bounding box.
func (p Paddle) Rect() core.Rect {
	return core.NewRect(float64(p.X), float64(p.Y), float64(p.Width), float64(p.Height))
}

// Spans reports whether x lies within the paddle's horizontal extent.
func (p Paddle) Spans(x int) bool {
	return x >= p.X && x <= p.X+p.Width
}
