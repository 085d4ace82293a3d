// Package gui provides the windowed ebiten frontend for Fight Kokaton.
// Unlike the terminal it sees real key-held state and runs one game frame
// per ebiten update.
package gui

import (
	"errors"
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/tui-kokaton/internal/config"
	"github.com/vovakirdan/tui-kokaton/internal/core"
	"github.com/vovakirdan/tui-kokaton/internal/games/kokaton"
)

// facingLength is the length of the facing marker in world units.
const facingLength = 40

// Options controls frame pacing and the end of a session.
type Options struct {
	FrameRate    int           // Updates per second, one game frame each
	GameOverHold time.Duration // Time the final frame stays up before exit

	// OnEnd is called once with the final state when the game ends or quits.
	OnEnd func(core.GameState)
}

// NewOptions derives frontend options from the loop configuration.
func NewOptions(loop config.LoopConfig) Options {
	return Options{
		FrameRate:    loop.FrameRate,
		GameOverHold: loop.GameOverHold,
	}
}

// App adapts a game to ebiten.Game.
type App struct {
	game     *kokaton.Game
	opts     Options
	keys     KeySource
	state    core.GameState
	holdLeft int // Updates left in the game-over hold
	done     bool
}

// NewApp creates an app reading the real keyboard.
func NewApp(game *kokaton.Game, opts Options) *App {
	return newApp(game, opts, ebitenKeys{})
}

func newApp(game *kokaton.Game, opts Options, keys KeySource) *App {
	opts.FrameRate = core.Max(opts.FrameRate, 1)
	return &App{
		game:  game,
		opts:  opts,
		keys:  keys,
		state: game.State(),
	}
}

// holdFrames converts the game-over hold to a number of updates.
func (a *App) holdFrames() int {
	return int(a.opts.GameOverHold * time.Duration(a.opts.FrameRate) / time.Second)
}

// Update advances the game by one frame.
func (a *App) Update() error {
	if a.done {
		return ebiten.Termination
	}
	if a.holdLeft > 0 {
		a.holdLeft--
		if a.holdLeft == 0 {
			a.done = true
			return ebiten.Termination
		}
		return nil
	}

	a.state = a.game.Step(pollInput(a.keys)).State
	switch {
	case a.state.Quit:
		a.finish()
		a.done = true
		return ebiten.Termination
	case a.state.GameOver:
		a.finish()
		a.holdLeft = a.holdFrames()
		if a.holdLeft <= 0 {
			a.done = true
			return ebiten.Termination
		}
	}
	return nil
}

func (a *App) finish() {
	if a.opts.OnEnd != nil {
		a.opts.OnEnd(a.state)
	}
}

// State returns the last observed game state.
func (a *App) State() core.GameState {
	return a.state
}

// Draw renders the game in world coordinates.
func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	sprites := a.game.Sprites()

	for _, h := range a.game.Hazards() {
		cx, cy := h.Rect().Center()
		vector.FillCircle(screen, float32(cx), float32(cy), float32(h.Radius()), rgba(h.Color()), true)
	}

	for _, e := range a.game.Explosions() {
		frame := sprites.ExplosionFrame(e.Life, e.Total)
		c := fade(rgba(frame.Color), e.Life, e.Total)
		vector.FillCircle(screen, float32(e.X), float32(e.Y), float32(e.Radius), c, true)
	}

	if p, ok := a.game.Projectile(); ok {
		r := p.Rect()
		vector.FillRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H),
			rgba(sprites.Projectile.Color), false)
	}

	a.drawPlayer(screen)

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%s%d", sprites.ScoreLabel, a.state.Score), 100, 100)

	if a.state.GameOver {
		area := a.game.Area()
		vector.FillRect(screen, 0, 0, float32(area.W), float32(area.H), overlayColor, false)
		ebitenutil.DebugPrintAt(screen, "GAME OVER", area.W/2-27, area.H/2-8)
	}
}

// drawPlayer fills the player box in the pose color and marks the facing.
func (a *App) drawPlayer(screen *ebiten.Image) {
	p := a.game.Player()
	pose, ok := a.game.Sprites().Pose(p.Pose())
	if !ok {
		return
	}

	r := p.Rect()
	c := rgba(pose.Color)
	vector.FillRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), c, false)

	cx, cy := r.Center()
	f := p.Facing()
	tx, ty := cx+f.DX*facingLength, cy+f.DY*facingLength
	vector.StrokeLine(screen, float32(cx), float32(cy), float32(tx), float32(ty), 6, backgroundColor, true)
}

// Layout keeps the logical screen at the play area size.
func (a *App) Layout(_, _ int) (int, int) {
	area := a.game.Area()
	return area.W, area.H
}

// Run opens a window and plays until the game ends or the window closes.
// It returns the final game state.
func Run(game *kokaton.Game, opts Options) (core.GameState, error) {
	app := NewApp(game, opts)
	area := game.Area()

	ebiten.SetTPS(app.opts.FrameRate)
	ebiten.SetWindowSize(area.W, area.H)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowTitle(game.Title())

	if err := ebiten.RunGame(app); err != nil && !errors.Is(err, ebiten.Termination) {
		return app.State(), fmt.Errorf("gui: %w", err)
	}
	return app.State(), nil
}
