package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/brickbreaker/internal/core"
	"github.com/vovakirdan/brickbreaker/internal/storage"
)

// fakeGame records the input frames it receives and reports a scripted state.
type fakeGame struct {
	resets  int
	frames  []core.InputFrame
	state   core.GameState
	resized [2]int
}

func (g *fakeGame) ID() string { return "fake" }
func (g *fakeGame) Title() string { return "Fake" }
func (g *fakeGame) Reset(core.RuntimeConfig) { g.resets++ }
func (g *fakeGame) State() core.GameState { return g.state }
func (g *fakeGame) Resize(w, h int) { g.resized = [2]int{w, h} }
func (g *fakeGame) Render(dst *core.Screen) { dst.DrawText(0, 0, "fake") }
func (g *fakeGame) Step(in core.InputFrame) core.StepResult {
	frame := core.NewInputFrame()
	for a := range in.Actions {
		frame.Set(a)
	}
	g.frames = append(g.frames, frame)
	return core.StepResult{State: g.state}
}

func newTestModel(t *testing.T, g *fakeGame, opts Options) Model {
	t.Helper()
	cfg := core.RuntimeConfig{ScreenW: 40, ScreenH: 20, TickRate: 100, Seed: 1}
	m := NewModel(g, cfg, opts)
	m.Init()
	return m
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm, cmd
}

func TestModelAccumulatesActionsUntilTick(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(t, g, Options{})

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m, _ = update(t, m, runeKey('p'))
	m, _ = update(t, m, TickMsg{})
	m, _ = update(t, m, TickMsg{})

	if len(g.frames) != 2 {
		t.Fatalf("steps = %d, want 2", len(g.frames))
	}
	if !g.frames[0].Has(core.ActionLeft) || !g.frames[0].Has(core.ActionPause) {
		t.Error("first tick should carry the buffered actions")
	}
	if g.frames[1].Has(core.ActionLeft) {
		t.Error("actions should be cleared after a tick")
	}
}

func TestModelReservesHelpRow(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(t, g, Options{})

	if h := m.screen.Height(); h != 19 {
		t.Errorf("screen height = %d, want 19", h)
	}
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 60, Height: 30})
	if g.resized != [2]int{60, 29} {
		t.Errorf("resize = %v, want [60 29]", g.resized)
	}
	if g.resets != 1 {
		t.Errorf("resizable game was reset %d times, want 1", g.resets)
	}
	if lines := strings.Count(m.View(), "\n"); lines != 29 {
		t.Errorf("view has %d newlines, want 29", lines)
	}
}

func TestModelQuitKey(t *testing.T) {
	m := newTestModel(t, &fakeGame{}, Options{})

	m, cmd := update(t, m, runeKey('q'))

	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit command should produce tea.QuitMsg")
	}
	if m.View() != "" {
		t.Error("view should be empty after quit")
	}
}

func TestModelExitStateQuits(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(t, g, Options{})
	g.state = core.GameState{Exit: true}

	_, cmd := update(t, m, TickMsg{})

	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("exit state should quit the program")
	}
}

func TestModelSavesScoreOncePerGameOver(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer store.Close()

	g := &fakeGame{}
	m := newTestModel(t, g, Options{Store: store, Player: "tester"})

	g.state = core.GameState{Score: 70, Level: 2, GameOver: true}
	m, _ = update(t, m, TickMsg{})
	m, _ = update(t, m, TickMsg{})

	// Restart, then lose again.
	g.state = core.GameState{Level: 1}
	m, _ = update(t, m, TickMsg{})
	g.state = core.GameState{Score: 30, Level: 1, GameOver: true}
	m, _ = update(t, m, TickMsg{})

	scores, err := store.TopScores("fake", 10)
	if err != nil {
		t.Fatalf("TopScores: %v", err)
	}
	if len(scores) != 2 {
		t.Fatalf("saved %d scores, want 2", len(scores))
	}
	if scores[0].Score != 70 || scores[0].Level != 2 || scores[0].Player != "tester" {
		t.Errorf("best = %+v", scores[0])
	}
}

func TestModelScreenshot(t *testing.T) {
	dir := t.TempDir()
	m := newTestModel(t, &fakeGame{}, Options{ScreenshotDir: dir})

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})

	files, err := os.ReadDir(dir)
	if err != nil || len(files) != 1 {
		t.Fatalf("screenshot files = %v, err %v", files, err)
	}
	data, err := os.ReadFile(filepath.Join(dir, files[0].Name()))
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.HasPrefix(string(data), "fake") {
		t.Errorf("screenshot = %q", data)
	}
	if !strings.Contains(m.View(), "saved ") {
		t.Error("view should show the screenshot path")
	}
}
