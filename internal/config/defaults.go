package config

import (
	_ "embed"
)

//go:embed defaults/brickbreaker.yaml
var defaultBrickBreakerYAML []byte

// DefaultBrickBreakerConfig returns the built-in brick breaker configuration.
// It mirrors defaults/brickbreaker.yaml and is used when that cannot be parsed.
func DefaultBrickBreakerConfig() BrickBreakerConfig {
	return BrickBreakerConfig{
		Field: FieldConfig{
			Width:  800,
			Height: 600,
		},
		Paddle: PaddleConfig{
			Width:        100,
			Height:       10,
			Speed:        10,
			BottomMargin: 35,
			MinWidth:     20,
		},
		Ball: BallConfig{
			Radius: 10,
			SpeedX: 5,
			SpeedY: -5,
		},
		Bricks: BricksConfig{
			Columns: 8,
			Rows:    5,
			Width:   60,
			Height:  20,
			Spacing: 1.5,
			Points:  10,
		},
		PowerUps: PowerUpsConfig{
			Width:       20,
			Height:      20,
			SpawnRange:  100,
			SpawnChance: 1,
			WidthDelta:  20,
		},
		Gameplay: GameplayConfig{
			HoldTicks: 12,
		},
		Difficulty: DifficultyConfig{
			Enabled: true,
			Step:    1,
		},
	}
}

// DefaultYAML returns the embedded default YAML, e.g. for `config dump`.
func DefaultYAML() []byte {
	return defaultBrickBreakerYAML
}
