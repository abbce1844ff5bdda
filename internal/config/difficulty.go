package config

// SpeedIncrease returns the velocity change applied when the player reaches
// the given level. X speed grows and Y speed shrinks by the same amount; the
// sign of Y is not taken into account, so a downward-moving ball slows down.
func (d DifficultyConfig) SpeedIncrease(level int) (dx, dy int) {
	if !d.Enabled {
		return 0, 0
	}
	step := d.Step
	if step <= 0 {
		step = 1
	}
	return level * step, -level * step
}
