package brickbreaker

import (
	"fmt"

	"github.com/vovakirdan/brickbreaker/internal/config"
	"github.com/vovakirdan/brickbreaker/internal/core"
	"github.com/vovakirdan/brickbreaker/internal/registry"
)

// ID is the registry and score-table identifier of the game.
const ID = "brickbreaker"

// Visual characters for rendering
const (
	PaddleChar = '▀'
	BallChar   = '●'
	BrickChar  = '█'
	RuleChar   = '─'
)

// Minimum terminal size the game can be drawn in.
const (
	MinScreenW = 30
	MinScreenH = 12
)

// hudRows is the number of rows above the playfield.
const hudRows = 2

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// Game adapts a Session to the platform: it maps actions onto Controls,
// owns pause and the game-over prompt, and rasterises frames to a screen.
type Game struct {
	runtime  core.RuntimeConfig
	cfg      config.BrickBreakerConfig
	session  *Session
	controls *Controls

	paused         bool
	screenTooSmall bool
}

// New creates a new brick breaker game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string { return ID }

// Title returns the display name for this game.
func (g *Game) Title() string { return "Brick Breaker" }

// Reset loads the configuration and starts a fresh session.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.Load(configPath)
	if err != nil {
		cfg = config.DefaultBrickBreakerConfig()
	}
	if difficultyPreset != "" {
		config.ApplyPreset(&cfg, difficultyPreset)
	}
	g.cfg = cfg

	g.session = NewSession(cfg, runtime.Seed, Hooks{Sounds: runtime.Sounds})
	g.controls = NewControls(cfg.Gameplay.HoldTicks)
	g.paused = false
	g.Resize(runtime.ScreenW, runtime.ScreenH)
}

// Resize updates the terminal size without touching the session.
func (g *Game) Resize(w, h int) {
	g.runtime.ScreenW, g.runtime.ScreenH = w, h
	g.screenTooSmall = w < MinScreenW || h < MinScreenH
}

// Session returns the underlying session.
func (g *Game) Session() *Session { return g.session }

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.screenTooSmall {
		return core.StepResult{State: g.State()}
	}

	switch g.session.Phase() {
	case PhaseGameOver:
		switch {
		case in.Has(core.ActionConfirm), in.Has(core.ActionRestart):
			g.session.Decide(DecisionRestart)
			g.controls.Reset()
		case in.Has(core.ActionBack):
			g.session.Decide(DecisionQuit)
		}
		return core.StepResult{State: g.State()}
	case PhaseQuit:
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
		g.controls.Reset()
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionLeft) {
		g.controls.PressLeft()
	}
	if in.Has(core.ActionRight) {
		g.controls.PressRight()
	}
	if in.Has(core.ActionLaunch) {
		g.controls.Launch()
	}
	g.session.Step(g.controls.Tick())

	return core.StepResult{State: g.State()}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{}
	}
	phase := g.session.Phase()
	return core.GameState{
		Score:    g.session.Score(),
		Level:    g.session.Level(),
		GameOver: phase == PhaseGameOver,
		Paused:   g.paused,
		Exit:     phase == PhaseQuit,
	}
}

// Render draws the current frame scaled to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.screenTooSmall || g.session == nil {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", MinScreenW, MinScreenH))
		return
	}

	f := g.session.Frame()
	v := newViewport(f, dst.Width(), dst.Height())

	g.renderHUD(dst, f)
	for _, b := range f.Bricks {
		x0, y0, x1, y1 := v.rect(b.Rect)
		dst.FillRect(x0, y0, x1-x0+1, y1-y0+1, BrickChar, b.Color)
	}
	for _, p := range f.PowerUps {
		cx, cy := p.Rect.Center()
		dst.SetColored(v.x(cx), v.y(cy), p.Type.Glyph(), p.Type.Color())
	}
	px0, py, px1, _ := v.rect(f.Paddle)
	dst.FillRect(px0, py, px1-px0+1, 1, PaddleChar, core.ColorWhite)
	dst.SetColored(v.x(float64(f.BallX)), v.y(float64(f.BallY)), BallChar, core.ColorYellow)

	g.renderOverlay(dst, f)
}

func (g *Game) renderHUD(dst *core.Screen, f Frame) {
	dst.DrawText(1, 0, fmt.Sprintf("Score: %d", f.Score))
	level := fmt.Sprintf("Level: %d", f.Level)
	dst.DrawText(dst.Width()-len(level)-1, 0, level)
	for x := range dst.Width() {
		dst.SetColored(x, 1, RuleChar, core.ColorGray)
	}
}

func (g *Game) renderOverlay(dst *core.Screen, f Frame) {
	switch {
	case f.Phase == PhaseGameOver:
		drawCenteredBox(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  Restart? [y/n]", f.Score))
	case g.paused:
		drawCenteredBox(dst, "PAUSED", "Press P to resume")
	case !f.Launched:
		dst.DrawTextCentered(dst.Height()-1, "Press SPACE to launch")
	}
}

// drawCenteredBox draws a centered message box.
func drawCenteredBox(dst *core.Screen, title, subtitle string) {
	boxW := max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	dst.FillRect(boxX, boxY, boxW, boxH, ' ', core.ColorDefault)
	dst.DrawBox(boxX, boxY, boxW, boxH)
	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}

// viewport maps field coordinates to screen cells below the HUD.
type viewport struct {
	fieldW, fieldH float64
	cols, rows     int
}

func newViewport(f Frame, w, h int) viewport {
	return viewport{
		fieldW: float64(f.FieldW),
		fieldH: float64(f.FieldH),
		cols:   w,
		rows:   h - hudRows,
	}
}

func (v viewport) x(fx float64) int {
	return core.Clamp(int(fx*float64(v.cols)/v.fieldW), 0, v.cols-1)
}

func (v viewport) y(fy float64) int {
	return hudRows + core.Clamp(int(fy*float64(v.rows)/v.fieldH), 0, v.rows-1)
}

// rect returns the inclusive cell span covered by r; it is at least one cell.
func (v viewport) rect(r core.Rect) (x0, y0, x1, y1 int) {
	x0, y0 = v.x(r.X), v.y(r.Y)
	x1 = max(v.x(r.Right())-1, x0)
	y1 = max(v.y(r.Bottom())-1, y0)
	return x0, y0, x1, y1
}

// Register the game with the registry
func init() {
	registry.Register(ID, func() registry.Game {
		return New()
	})
}
