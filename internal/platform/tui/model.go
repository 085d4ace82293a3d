package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-kokaton/internal/config"
	"github.com/vovakirdan/tui-kokaton/internal/core"
)

// DefaultHoldTicks is how long a terminal key press counts as held.
const DefaultHoldTicks = 10

// Game is the contract the terminal frontend drives.
type Game interface {
	ID() string
	Title() string
	Reset(cfg core.RuntimeConfig)
	Step(in core.InputFrame) core.StepResult
	Render(dst *core.Screen)
	State() core.GameState
}

// Options controls frame pacing and the end of a session.
type Options struct {
	FramesPerTick int           // Game frames simulated per tick
	HoldTicks     int           // Ticks a key press stays held
	GameOverHold  time.Duration // Time the final frame stays up before exit
	ShowHelp      bool          // Reserve the last row for key help

	// OnEnd is called once with the final state when the game ends or quits.
	OnEnd func(core.GameState)
}

// NewOptions derives frontend options from the loop configuration.
func NewOptions(loop config.LoopConfig, holdTicks int) Options {
	return Options{
		FramesPerTick: loop.FramesPerTick,
		HoldTicks:     holdTicks,
		GameOverHold:  loop.GameOverHold,
		ShowHelp:      true,
	}
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game        Game
	screen      *core.Screen
	config      core.RuntimeConfig
	opts        Options
	keys        KeyMap
	keyMapper   *KeyMapper
	held        *HeldKeys
	help        help.Model
	pendingFire bool
	pendingQuit bool
	gameState   core.GameState
	ending      bool // Game over, waiting out the hold
	quitting    bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game Game, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	opts.FramesPerTick = core.Max(opts.FramesPerTick, 1)

	keys := DefaultKeyMap()
	m := Model{
		game:      game,
		config:    cfg,
		opts:      opts,
		keys:      keys,
		keyMapper: NewKeyMapper(keys),
		held:      NewHeldKeys(opts.HoldTicks),
		help:      help.New(),
	}
	m.screen = core.NewScreen(m.screenSize(cfg.ScreenW, cfg.ScreenH))
	return m
}

// Init initializes the model and starts the game.
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

	case gameOverMsg:
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// handleKey records input for the next tick. Nothing is applied to the
// game until the tick polls it.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keyMapper.MapKey(msg)

	if m.ending {
		if action == core.ActionQuit {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil
	}

	switch action {
	case core.ActionQuit:
		m.pendingQuit = true
	case core.ActionFire:
		m.pendingFire = true
	case core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight:
		m.held.Press(action)
	}
	return m, nil
}

// handleResize processes window resize events.
// The world has a fixed size, so the game keeps running.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(m.screenSize(msg.Width, msg.Height))
	return m, nil
}

// handleTick runs FramesPerTick game frames. Quit and fire are events and
// only go into the first frame; held directions go into every frame.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.ending || m.quitting {
		return m, nil
	}

	for i := 0; i < m.opts.FramesPerTick; i++ {
		frame := core.NewInputFrame()
		m.held.Apply(&frame)
		if i == 0 {
			if m.pendingQuit {
				frame.Set(core.ActionQuit)
			}
			if m.pendingFire {
				frame.Set(core.ActionFire)
			}
		}

		m.gameState = m.game.Step(frame).State
		if m.gameState.Quit || m.gameState.GameOver {
			break
		}
	}
	m.held.Tick()
	m.pendingFire = false
	m.pendingQuit = false

	switch {
	case m.gameState.Quit:
		m.finish()
		m.quitting = true
		return m, tea.Quit
	case m.gameState.GameOver:
		m.finish()
		m.ending = true
		return m, holdCmd(m.opts.GameOverHold)
	}

	return m, tickCmd(m.config.TickRate)
}

// finish reports the final state.
func (m Model) finish() {
	if m.opts.OnEnd != nil {
		m.opts.OnEnd(m.gameState)
	}
}

// screenSize returns the game area for a terminal size.
func (m Model) screenSize(w, h int) (int, int) {
	if m.opts.ShowHelp && h > 1 {
		h--
	}
	return w, h
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	// Render game to screen buffer
	m.game.Render(m.screen)

	var sb strings.Builder
	sb.WriteString(RenderScreen(m.screen))
	if m.opts.ShowHelp && m.config.ScreenH > 1 {
		m.help.Width = m.config.ScreenW
		sb.WriteRune('\n')
		sb.WriteString(m.help.View(m.keys))
	}
	return sb.String()
}

// State returns the last observed game state.
func (m Model) State() core.GameState {
	return m.gameState
}

// Run starts the Bubble Tea program with the given model and returns the
// final game state.
func Run(game Game, cfg core.RuntimeConfig, opts Options) (core.GameState, error) {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	final, err := p.Run()
	if err != nil {
		return core.GameState{}, err
	}
	if fm, ok := final.(Model); ok {
		return fm.State(), nil
	}
	return game.State(), nil
}
