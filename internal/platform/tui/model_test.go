package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-kokaton/internal/core"
)

// fakeGame records the frames it is stepped with.
type fakeGame struct {
	frames  []core.InputFrame
	endAt   int // Frame that ends the game, 0 for never
	state   core.GameState
	resets  int
	renders int
}

func (g *fakeGame) ID() string    { return "fake" }
func (g *fakeGame) Title() string { return "Fake" }

func (g *fakeGame) Reset(core.RuntimeConfig) {
	g.resets++
	g.frames = nil
	g.state = core.GameState{}
}

func (g *fakeGame) Step(in core.InputFrame) core.StepResult {
	g.frames = append(g.frames, in.Clone())
	if g.state.GameOver || g.state.Quit {
		return core.StepResult{State: g.state}
	}
	if in.Has(core.ActionQuit) {
		g.state.Quit = true
		return core.StepResult{State: g.state}
	}
	g.state.Frame++
	if g.endAt > 0 && g.state.Frame >= g.endAt {
		g.state.GameOver = true
	}
	return core.StepResult{State: g.state}
}

func (g *fakeGame) Render(dst *core.Screen) {
	g.renders++
	dst.Clear()
	dst.DrawText(0, 0, "FAKE")
}

func (g *fakeGame) State() core.GameState { return g.state }

func newTestModel(g *fakeGame, frames int) Model {
	m := NewModel(g, core.RuntimeConfig{ScreenW: 40, ScreenH: 10, TickRate: 60, Seed: 1}, Options{
		FramesPerTick: frames,
		HoldTicks:     2,
		GameOverHold:  time.Second,
		ShowHelp:      true,
	})
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

func TestModelFramesPerTick(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g, 8)

	m, cmd := update(t, m, TickMsg(time.Now()))
	if cmd == nil {
		t.Fatal("tick should schedule the next tick")
	}
	if len(g.frames) != 8 {
		t.Fatalf("expected 8 frames per tick, got %d", len(g.frames))
	}
	if m.State().Frame != 8 {
		t.Errorf("State().Frame = %d, expected 8", m.State().Frame)
	}
}

func TestModelFireOnlyFirstFrame(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g, 4)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeySpace})
	m, _ = update(t, m, TickMsg(time.Now()))

	for i, f := range g.frames {
		if got := f.Has(core.ActionFire); got != (i == 0) {
			t.Errorf("frame %d: fire = %v", i, got)
		}
	}

	g.frames = nil
	update(t, m, TickMsg(time.Now()))
	for i, f := range g.frames {
		if f.Has(core.ActionFire) {
			t.Errorf("fire must not repeat on the next tick, frame %d", i)
		}
	}
}

func TestModelHeldDirections(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g, 3)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m, _ = update(t, m, TickMsg(time.Now()))
	m, _ = update(t, m, TickMsg(time.Now()))
	for i, f := range g.frames {
		if !f.Has(core.ActionLeft) {
			t.Errorf("frame %d should hold left", i)
		}
	}

	g.frames = nil
	update(t, m, TickMsg(time.Now()))
	for i, f := range g.frames {
		if f.Has(core.ActionLeft) {
			t.Errorf("frame %d: left should be released after the hold", i)
		}
	}
}

func TestModelQuitAtNextTick(t *testing.T) {
	ended := 0
	g := &fakeGame{}
	m := newTestModel(g, 4)
	m.opts.OnEnd = func(core.GameState) { ended++ }

	m, cmd := update(t, m, runeKey('q'))
	if cmd != nil {
		t.Error("quit should wait for the next tick")
	}
	if len(g.frames) != 0 {
		t.Error("keys must not step the game")
	}

	m, cmd = update(t, m, TickMsg(time.Now()))
	if cmd == nil {
		t.Fatal("expected tea.Quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit tick should return tea.Quit")
	}
	if len(g.frames) != 1 || !m.State().Quit {
		t.Errorf("expected a single quit frame, got %d frames", len(g.frames))
	}
	if ended != 1 {
		t.Errorf("OnEnd called %d times, expected 1", ended)
	}
	if m.View() != "" {
		t.Error("View should be empty after quit")
	}
}

func TestModelGameOverHold(t *testing.T) {
	ended := 0
	g := &fakeGame{endAt: 5}
	m := newTestModel(g, 8)
	m.opts.OnEnd = func(core.GameState) { ended++ }

	m, cmd := update(t, m, TickMsg(time.Now()))
	if len(g.frames) != 5 {
		t.Errorf("frames after game over should not run, got %d", len(g.frames))
	}
	if cmd == nil {
		t.Fatal("game over should schedule the hold")
	}
	if !m.ending {
		t.Fatal("model should be holding the final frame")
	}
	if !strings.Contains(m.View(), "FAKE") {
		t.Error("final frame should stay visible during the hold")
	}

	// Late ticks are ignored.
	m, cmd = update(t, m, TickMsg(time.Now()))
	if cmd != nil || len(g.frames) != 5 {
		t.Error("ticks during the hold must not step the game")
	}

	m, cmd = update(t, m, gameOverMsg{})
	if cmd == nil {
		t.Fatal("hold end should quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("hold end should return tea.Quit")
	}
	if ended != 1 {
		t.Errorf("OnEnd called %d times, expected 1", ended)
	}
	if m.View() != "" {
		t.Error("View should be empty after exit")
	}
}

func TestModelResizeKeepsGame(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g, 1)
	m, _ = update(t, m, TickMsg(time.Now()))

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	if g.resets != 1 {
		t.Errorf("resize should not reset the game, resets = %d", g.resets)
	}
	if m.screen.Width() != 100 || m.screen.Height() != 29 {
		t.Errorf("screen = %dx%d, expected 100x29 with a help row", m.screen.Width(), m.screen.Height())
	}
}

func TestModelView(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g, 1)

	out := m.View()
	if !strings.Contains(out, "FAKE") {
		t.Error("View should contain the rendered game")
	}
	if !strings.Contains(out, "up") {
		t.Error("View should contain the key help")
	}
	if lines := strings.Count(out, "\n") + 1; lines != 10 {
		t.Errorf("View has %d lines, expected 10", lines)
	}
}

func TestRenderScreen(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawTextColored(0, 0, "ab", core.ColorRed)
	s.DrawTextColored(2, 0, "cd", core.ColorBlue)
	s.DrawText(0, 1, "ef")

	out := RenderScreen(s)
	if strings.Count(out, "\n") != 1 {
		t.Errorf("expected 2 rows, got %q", out)
	}
	for _, want := range []string{"ab", "cd", "ef"} {
		if !strings.Contains(out, want) {
			t.Errorf("RenderScreen should contain %q", want)
		}
	}
}

func TestEndReason(t *testing.T) {
	tests := []struct {
		state core.GameState
		want  string
	}{
		{core.GameState{Quit: true}, "quit"},
		{core.GameState{GameOver: true}, "hit"},
		{core.GameState{}, "unknown"},
	}
	for _, tt := range tests {
		if got := EndReason(tt.state); got != tt.want {
			t.Errorf("EndReason(%+v) = %q, expected %q", tt.state, got, tt.want)
		}
	}
}
