package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/brickbreaker/internal/core"
	"github.com/vovakirdan/brickbreaker/internal/registry"
	"github.com/vovakirdan/brickbreaker/internal/storage"
)

// helpRows is the number of terminal rows reserved below the game.
const helpRows = 1

// Options configures a Model beyond the game and runtime config.
type Options struct {
	Store         *storage.Store
	Player        string             // Name saved with scores
	Renderer      *lipgloss.Renderer // Nil for the local terminal
	Logger        *log.Logger        // Nil disables logging
	ScreenshotDir string             // Defaults to ~/.arcade/screenshots
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	opts       Options
	keys       KeyMap
	help       help.Model
	renderer   *ScreenRenderer
	inputFrame core.InputFrame
	gameState  core.GameState
	status     string
	quitting   bool
	scoreSaved bool // Whether score has been saved for current game over
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	cfg.ScreenH = max(cfg.ScreenH-helpRows, 0)
	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:     cfg,
		opts:       opts,
		keys:       DefaultKeyMap(),
		help:       h,
		renderer:   NewScreenRenderer(opts.Renderer),
		inputFrame: core.NewInputFrame(),
	}
}

// Init starts the game and the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		return m.handleResize(msg)
	case TickMsg:
		return m.handleTick()
	}
	return m, nil
}

// handleKey processes keyboard input. Actions accumulate until the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		m.status = m.saveScreenshot()
		return m, nil
	}

	switch a := m.keys.Action(msg); a {
	case core.ActionQuit:
		m.quitting = true
		m.saveScore()
		return m, tea.Quit
	case core.ActionNone:
	default:
		m.inputFrame.Set(a)
	}
	return m, nil
}

// handleResize follows the terminal size. Games that can resize in place
// keep their state; others restart.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = max(msg.Height-helpRows, 0)
	m.screen.Resize(m.config.ScreenW, m.config.ScreenH)
	m.help.Width = msg.Width

	if r, ok := m.game.(registry.Resizable); ok {
		r.Resize(m.config.ScreenW, m.config.ScreenH)
	} else if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}
	return m, nil
}

// handleTick runs one simulation step with the accumulated input.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	wasOver := m.gameState.GameOver
	m.gameState = m.game.Step(m.inputFrame).State
	m.inputFrame.Clear()

	switch {
	case m.gameState.GameOver && !wasOver:
		m.saveScore()
	case wasOver && !m.gameState.GameOver:
		m.scoreSaved = false
		m.status = ""
	}

	if m.gameState.Exit {
		m.quitting = true
		return m, tea.Quit
	}
	return m, tickCmd(m.config.TickRate)
}

// saveScore records the current score once per game over. Failures are
// logged and otherwise ignored.
func (m *Model) saveScore() {
	if m.scoreSaved || m.gameState.Score <= 0 || m.opts.Store == nil {
		return
	}
	m.scoreSaved = true

	runID, err := m.opts.Store.SaveScore(storage.Score{
		GameID: m.game.ID(),
		Player: m.opts.Player,
		Score:  m.gameState.Score,
		Level:  m.gameState.Level,
	})
	if err != nil {
		m.opts.Logger.Warn("could not save score", "err", err)
		return
	}
	m.opts.Logger.Debug("score saved", "run", runID, "score", m.gameState.Score, "level", m.gameState.Level)
}

// saveScreenshot writes the current screen as plain text and returns a
// status line.
func (m *Model) saveScreenshot() string {
	m.screen.Clear()
	m.game.Render(m.screen)

	dir := m.opts.ScreenshotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "screenshot failed: " + err.Error()
		}
		dir = filepath.Join(home, ".arcade", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "screenshot failed: " + err.Error()
	}

	name := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "screenshot failed: " + err.Error()
	}
	return "saved " + path
}

// State returns the last game state seen by the model.
func (m Model) State() core.GameState {
	return m.gameState
}

// View renders the game screen followed by a help line.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	m.game.Render(m.screen)

	footer := m.help.View(m.keys)
	if m.gameState.GameOver {
		footer = m.help.ShortHelpView(m.keys.GameOverHelp())
	}
	if m.status != "" {
		footer = m.status
	}
	return m.renderer.Render(m.screen) + "\n" + footer
}

// Run starts the Bubble Tea program for a game in the local terminal.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	p := tea.NewProgram(
		NewModel(game, cfg, opts),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
