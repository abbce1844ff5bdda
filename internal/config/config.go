// Package config provides YAML/TOML-based game configuration loading and
// difficulty presets for the brick breaker.
package config

// BrickBreakerConfig contains all configuration for the brick breaker game.
// Dimensions are in field units (the field is 800x600 by default).
type BrickBreakerConfig struct {
	Field      FieldConfig      `yaml:"field" toml:"field"`
	Paddle     PaddleConfig     `yaml:"paddle" toml:"paddle"`
	Ball       BallConfig       `yaml:"ball" toml:"ball"`
	Bricks     BricksConfig     `yaml:"bricks" toml:"bricks"`
	PowerUps   PowerUpsConfig   `yaml:"powerups" toml:"powerups"`
	Gameplay   GameplayConfig   `yaml:"gameplay" toml:"gameplay"`
	Difficulty DifficultyConfig `yaml:"difficulty" toml:"difficulty"`
}

// FieldConfig defines the playfield size.
type FieldConfig struct {
	Width  int `yaml:"width" toml:"width"`
	Height int `yaml:"height" toml:"height"`
}

// PaddleConfig defines paddle geometry and movement.
type PaddleConfig struct {
	Width        int `yaml:"width" toml:"width"`
	Height       int `yaml:"height" toml:"height"`
	Speed        int `yaml:"speed" toml:"speed"`                 // Field units per tick
	BottomMargin int `yaml:"bottom_margin" toml:"bottom_margin"` // Gap between paddle bottom and field bottom
	MinWidth     int `yaml:"min_width" toml:"min_width"`
	MaxWidth     int `yaml:"max_width" toml:"max_width"` // 0 = field width
}

// BallConfig defines the ball size and launch velocity.
type BallConfig struct {
	Radius int `yaml:"radius" toml:"radius"`
	SpeedX int `yaml:"speed_x" toml:"speed_x"`
	SpeedY int `yaml:"speed_y" toml:"speed_y"` // Negative = upward
}

// BricksConfig defines the brick grid.
type BricksConfig struct {
	Columns int     `yaml:"columns" toml:"columns"`
	Rows    int     `yaml:"rows" toml:"rows"`
	Width   int     `yaml:"width" toml:"width"`
	Height  int     `yaml:"height" toml:"height"`
	Spacing float64 `yaml:"spacing" toml:"spacing"` // Pitch as a multiple of brick size
	Points  int     `yaml:"points" toml:"points"`
}

// Total returns the number of bricks in a full grid.
func (b BricksConfig) Total() int {
	return b.Columns * b.Rows
}

// PowerUpsConfig defines power-up drops and effects.
type PowerUpsConfig struct {
	Width       int `yaml:"width" toml:"width"`
	Height      int `yaml:"height" toml:"height"`
	SpawnRange  int `yaml:"spawn_range" toml:"spawn_range"`   // Roll is uniform in [0, spawn_range)
	SpawnChance int `yaml:"spawn_chance" toml:"spawn_chance"` // Rolls below this spawn a power-up
	WidthDelta  int `yaml:"width_delta" toml:"width_delta"`   // Paddle width change for expand/shrink
}

// GameplayConfig holds settings for the platform layer.
type GameplayConfig struct {
	HoldTicks int `yaml:"hold_ticks" toml:"hold_ticks"` // Ticks a key press keeps the paddle moving
}

// DifficultyConfig defines the per-level speed increase.
type DifficultyConfig struct {
	Enabled bool `yaml:"enabled" toml:"enabled"`
	Step    int  `yaml:"step" toml:"step"` // Multiplier applied to the level number
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI string into a preset. Unknown strings yield "".
func ParsePreset(s string) DifficultyPreset {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p
	default:
		return ""
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
