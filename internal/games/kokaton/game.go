// Package kokaton implements Fight Kokaton, a single-screen shooter.
// The player dodges bouncing hazards and shoots them down for points; the
// game ends on the first contact between the player and a hazard.
package kokaton

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-kokaton/internal/assets"
	"github.com/vovakirdan/tui-kokaton/internal/config"
	"github.com/vovakirdan/tui-kokaton/internal/core"
)

// Phase is the lifecycle state of a game. PhaseEnded is terminal.
type Phase int

const (
	PhaseRunning Phase = iota
	PhaseEnded
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseRunning:
		return "running"
	case PhaseEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// Game implements the Fight Kokaton game logic.
type Game struct {
	cfg        config.KokatonConfig
	sprites    *assets.Catalog
	runtime    core.RuntimeConfig
	rng        *rand.Rand
	area       core.Rect
	palette    []core.Color
	player     *Player
	hazards    []*Hazard // Active hazards in spawn order
	projectile ProjectileSlot
	explosions []Explosion
	score      int
	frame      int
	phase      Phase
	quit       bool
}

// New creates a game from a configuration and sprite catalog.
// Both are checked here so that broken assets fail before the first frame.
func New(cfg config.KokatonConfig, sprites *assets.Catalog) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("kokaton: %w", err)
	}
	if sprites == nil {
		return nil, fmt.Errorf("kokaton: %w: no sprite catalog", assets.ErrMissingSprite)
	}
	if err := sprites.Validate(cfg.Player.NormalPose, cfg.Player.FiringPose, cfg.Player.HitPose); err != nil {
		return nil, fmt.Errorf("kokaton: %w", err)
	}
	palette, err := cfg.Hazards.Colors()
	if err != nil {
		return nil, fmt.Errorf("kokaton: %w", err)
	}

	g := &Game{
		cfg:     cfg,
		sprites: sprites,
		area:    cfg.PlayArea.Rect(),
		palette: palette,
	}
	g.Reset(core.DefaultConfig())
	return g, nil
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "kokaton"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Fight Kokaton"
}

// Reset starts a new game: the player at its start position, a fresh set of
// hazards drawn from runtime.Seed, no projectile and a zero score.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.rng = rand.New(rand.NewSource(runtime.Seed))

	g.player = NewPlayer(g.cfg.Player)
	g.hazards = make([]*Hazard, 0, g.cfg.Hazards.Count)
	for i := 0; i < g.cfg.Hazards.Count; i++ {
		g.hazards = append(g.hazards, SpawnHazard(i, g.rng, g.area, g.cfg.Hazards, g.palette))
	}
	g.projectile.Clear()
	g.explosions = g.explosions[:0]
	g.score = 0
	g.frame = 0
	g.phase = PhaseRunning
	g.quit = false
}

// Step advances the game by one frame.
//
// Order within a frame: input events (quit, fire), frame counter, player
// versus hazard contact (which ends the game), then player movement, hazard
// movement and the projectile with its hit test. Once the game has ended or
// quit was requested, Step changes nothing.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.phase == PhaseEnded || g.quit {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionQuit) {
		g.quit = true
		return core.StepResult{State: g.State()}
	}
	if in.Has(core.ActionFire) {
		g.projectile.Fire(g.player.Rect(), g.cfg.Projectile)
	}

	g.frame++

	for _, h := range g.hazards {
		if g.player.CollidesWith(h.Rect()) {
			g.phase = PhaseEnded
			g.player.SetPose(g.cfg.Player.HitPose)
			return core.StepResult{State: g.State()}
		}
	}

	g.ageExplosions()
	g.player.Move(in, g.area)
	for _, h := range g.hazards {
		h.Step(g.area, g.cfg.Hazards.PredictiveBounce)
	}
	g.stepProjectile()

	return core.StepResult{State: g.State()}
}

// stepProjectile moves the projectile and resolves its first hit.
// Hazards are tested in spawn order, so the lowest spawn index wins when
// several overlap the projectile in the same frame.
func (g *Game) stepProjectile() {
	if _, ok := g.projectile.Active(); !ok {
		return
	}
	g.projectile.Step()
	proj, _ := g.projectile.Active()

	for i, h := range g.hazards {
		if h.CollidesWith(proj.Rect()) {
			g.destroyHazard(i)
			return
		}
	}

	if g.cfg.Projectile.DespawnOffscreen && !proj.Rect().Intersects(g.area) {
		g.projectile.Clear()
	}
}

// destroyHazard removes the hazard at index i and scores the hit.
func (g *Game) destroyHazard(i int) {
	h := g.hazards[i]
	g.hazards = append(g.hazards[:i], g.hazards[i+1:]...)
	if g.cfg.Explosion.Life > 0 {
		g.explosions = append(g.explosions, NewExplosion(h, g.cfg.Explosion.Life))
	}
	g.projectile.Clear()
	g.score++
	g.player.SetPose(g.cfg.Player.FiringPose)
}

// ageExplosions counts down explosions and drops the ones that ran out.
func (g *Game) ageExplosions() {
	alive := g.explosions[:0]
	for _, e := range g.explosions {
		if e.age() {
			alive = append(alive, e)
		}
	}
	g.explosions = alive
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Frame:    g.frame,
		GameOver: g.phase == PhaseEnded,
		Quit:     g.quit,
	}
}

// Phase returns the lifecycle phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// Config returns the configuration the game was built with.
func (g *Game) Config() config.KokatonConfig {
	return g.cfg
}

// Sprites returns the sprite catalog.
func (g *Game) Sprites() *assets.Catalog {
	return g.sprites
}

// Area returns the play area.
func (g *Game) Area() core.Rect {
	return g.area
}

// Player returns the player.
func (g *Game) Player() *Player {
	return g.player
}

// Hazards returns the active hazards in spawn order.
// The slice must not be modified.
func (g *Game) Hazards() []*Hazard {
	return g.hazards
}

// Projectile returns the projectile in flight, if any.
func (g *Game) Projectile() (Projectile, bool) {
	return g.projectile.Active()
}

// Explosions returns the visible explosions.
func (g *Game) Explosions() []Explosion {
	return g.explosions
}
