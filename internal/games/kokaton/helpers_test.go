package kokaton

import (
	"testing"

	"github.com/vovakirdan/tui-kokaton/internal/assets"
	"github.com/vovakirdan/tui-kokaton/internal/config"
	"github.com/vovakirdan/tui-kokaton/internal/core"
)

// newTestGame builds a game from the defaults, optionally adjusted by mutate.
func newTestGame(t *testing.T, seed int64, mutate func(*config.KokatonConfig)) *Game {
	t.Helper()

	cfg := config.DefaultKokatonConfig()
	if mutate != nil {
		mutate(&cfg)
	}
	sprites, _, err := assets.Load("")
	if err != nil {
		t.Fatalf("assets.Load() failed: %v", err)
	}
	g, err := New(cfg, sprites)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	rt := core.DefaultConfig()
	rt.Seed = seed
	g.Reset(rt)
	return g
}

// stationary returns a non-moving hazard occupying r.
func stationary(id int, r core.Rect) *Hazard {
	return &Hazard{id: id, rect: r, radius: r.W / 2, color: core.ColorRed}
}

// noInput is an empty frame.
func noInput() core.InputFrame {
	return core.NewInputFrame()
}
