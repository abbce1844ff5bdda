package brickbreaker

import (
	"math/rand/v2"

	"github.com/vovakirdan/brickbreaker/internal/config"
	"github.com/vovakirdan/brickbreaker/internal/core"
)

// BrickPalette is the set of colors a brick may be drawn with.
var BrickPalette = []core.Color{
	core.ColorRed,
	core.ColorGreen,
	core.ColorBlue,
	core.ColorYellow,
	core.ColorOrange,
}

// NewGrid lays out a fresh rows x columns grid of intact bricks, row-major.
// Brick (row, col) sits at (col*width*spacing, row*height*spacing) and gets a
// color drawn uniformly from BrickPalette.
func NewGrid(cfg config.BricksConfig, rng *rand.Rand) []Brick {
	bricks := make([]Brick, 0, cfg.Total())
	stepX := float64(cfg.Width) * cfg.Spacing
	stepY := float64(cfg.Height) * cfg.Spacing
	for row := range cfg.Rows {
		for col := range cfg.Columns {
			bricks = append(bricks, Brick{
				X:     float64(col) * stepX,
				Y:     float64(row) * stepY,
				Color: BrickPalette[rng.IntN(len(BrickPalette))],
			})
		}
	}
	return bricks
}

// CountIntact returns the number of bricks not yet destroyed.
func CountIntact(bricks []Brick) int {
	n := 0
	for _, b := range bricks {
		if !b.Destroyed {
			n++
		}
	}
	return n
}
