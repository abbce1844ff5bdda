package brickbreaker

// InputState is the per-tick snapshot of player intent. Step reads it exactly
// once per tick.
type InputState struct {
	Left   bool
	Right  bool
	Launch bool
}

// Controls accumulates input events between ticks and produces an InputState
// for each tick.
//
// Terminals report key presses but not releases, so a press holds its
// direction for a fixed number of ticks unless refreshed by key repeat or
// cancelled by the opposite direction or an explicit release. A hold of zero
// ticks means the caller reports releases itself.
type Controls struct {
	holdTicks int

	left, right int // remaining hold ticks; -1 means held until released
	launch      bool
}

// NewControls creates controls that keep a pressed direction for holdTicks.
func NewControls(holdTicks int) *Controls {
	return &Controls{holdTicks: holdTicks}
}

func (c *Controls) hold() int {
	if c.holdTicks <= 0 {
		return -1
	}
	return c.holdTicks
}

// PressLeft starts or refreshes a leftward hold.
func (c *Controls) PressLeft() {
	c.left = c.hold()
	c.right = 0
}

// PressRight starts or refreshes a rightward hold.
func (c *Controls) PressRight() {
	c.right = c.hold()
	c.left = 0
}

// ReleaseLeft ends a leftward hold.
func (c *Controls) ReleaseLeft() { c.left = 0 }

// ReleaseRight ends a rightward hold.
func (c *Controls) ReleaseRight() { c.right = 0 }

// Launch requests a ball launch on the next tick.
func (c *Controls) Launch() { c.launch = true }

// Reset drops every pending hold and launch request.
func (c *Controls) Reset() {
	c.left, c.right = 0, 0
	c.launch = false
}

// Tick returns the input for the coming tick and ages the timed holds.
func (c *Controls) Tick() InputState {
	in := InputState{
		Left:   c.left != 0,
		Right:  c.right != 0,
		Launch: c.launch,
	}
	c.launch = false
	if c.left > 0 {
		c.left--
	}
	if c.right > 0 {
		c.right--
	}
	return in
}
