package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

const configName = "brickbreaker"

// Load loads the brick breaker configuration.
// Search order: customPath -> ~/.arcade/configs/brickbreaker.{yaml,toml} ->
// ./configs/brickbreaker.{yaml,toml} -> embedded default.
// Files only need to contain the keys they override.
func Load(customPath string) (BrickBreakerConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultBrickBreakerConfig(), fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := decode(customPath, data)
		if err != nil {
			return DefaultBrickBreakerConfig(), fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return DefaultBrickBreakerConfig(), fmt.Errorf("config: invalid %s: %w", customPath, err)
		}
		return cfg, nil
	}

	for _, path := range searchPaths() {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := decode(path, data); err == nil && cfg.Validate() == nil {
			return cfg, nil
		}
	}

	cfg, err := decode("default.yaml", defaultBrickBreakerYAML)
	if err != nil {
		return DefaultBrickBreakerConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// decode parses data on top of the built-in defaults, choosing the format
// from the file extension.
func decode(path string, data []byte) (BrickBreakerConfig, error) {
	cfg := DefaultBrickBreakerConfig()
	var err error
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		err = toml.Unmarshal(data, &cfg)
	} else {
		err = yaml.Unmarshal(data, &cfg)
	}
	return cfg, err
}

func searchPaths() []string {
	var paths []string
	if home, err := os.UserHomeDir(); err == nil {
		dir := filepath.Join(home, ".arcade", "configs")
		paths = append(paths,
			filepath.Join(dir, configName+".yaml"),
			filepath.Join(dir, configName+".toml"),
		)
	}
	return append(paths,
		filepath.Join("configs", configName+".yaml"),
		filepath.Join("configs", configName+".toml"),
	)
}

// Validate reports every dimension that would make the game unplayable.
func (c BrickBreakerConfig) Validate() error {
	var errs []error
	positive := func(name string, v int) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %d", name, v))
		}
	}

	positive("field.width", c.Field.Width)
	positive("field.height", c.Field.Height)
	positive("paddle.width", c.Paddle.Width)
	positive("paddle.height", c.Paddle.Height)
	positive("paddle.speed", c.Paddle.Speed)
	positive("ball.radius", c.Ball.Radius)
	positive("bricks.columns", c.Bricks.Columns)
	positive("bricks.rows", c.Bricks.Rows)
	positive("bricks.width", c.Bricks.Width)
	positive("bricks.height", c.Bricks.Height)
	positive("powerups.width", c.PowerUps.Width)
	positive("powerups.height", c.PowerUps.Height)
	positive("powerups.spawn_range", c.PowerUps.SpawnRange)
	positive("gameplay.hold_ticks", c.Gameplay.HoldTicks)

	if c.Bricks.Spacing < 1 {
		errs = append(errs, fmt.Errorf("bricks.spacing must be at least 1, got %v", c.Bricks.Spacing))
	}
	if c.Paddle.MinWidth < 0 {
		errs = append(errs, fmt.Errorf("paddle.min_width must not be negative, got %d", c.Paddle.MinWidth))
	}
	if c.Paddle.Width > c.Field.Width {
		errs = append(errs, fmt.Errorf("paddle.width %d exceeds field.width %d", c.Paddle.Width, c.Field.Width))
	}
	if c.Paddle.BottomMargin < 0 || c.Paddle.BottomMargin+c.Paddle.Height > c.Field.Height {
		errs = append(errs, fmt.Errorf("paddle.bottom_margin %d places the paddle outside the field", c.Paddle.BottomMargin))
	}

	return errors.Join(errs...)
}

// WidthBounds returns the allowed paddle width range for the configured field.
func (c BrickBreakerConfig) WidthBounds() (lo, hi int) {
	hi = c.Paddle.MaxWidth
	if hi <= 0 || hi > c.Field.Width {
		hi = c.Field.Width
	}
	lo = min(max(c.Paddle.MinWidth, 1), hi)
	return lo, hi
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *BrickBreakerConfig, preset DifficultyPreset) {
	if IsFixedPreset(preset) {
		cfg.Difficulty.Enabled = false
		return
	}

	switch preset {
	case DifficultyEasy:
		cfg.Difficulty.Enabled = true
		cfg.Paddle.Width = 120
		cfg.Ball.SpeedX, cfg.Ball.SpeedY = 4, -4
	case DifficultyNormal:
		cfg.Difficulty.Enabled = true
	case DifficultyHard:
		cfg.Difficulty.Enabled = true
		cfg.Paddle.Width = 80
		cfg.Ball.SpeedX, cfg.Ball.SpeedY = 7, -7
	}
}
