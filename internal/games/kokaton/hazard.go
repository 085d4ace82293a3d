package kokaton

import (
	"math/rand"

	"github.com/vovakirdan/tui-kokaton/internal/config"
	"github.com/vovakirdan/tui-kokaton/internal/core"
)

// hazardDirections are the per-axis velocity choices.
var hazardDirections = [...]int{-1, 0, 1}

// Hazard is a bouncing circle that ends the game on contact.
type Hazard struct {
	id     int // Spawn index, used as collision tie-break
	rect   core.Rect
	radius int
	vx, vy int
	color  core.Color
}

// SpawnHazard creates a hazard with random radius, color, position and velocity.
// The center is drawn uniformly from the positions that keep the whole
// hazard inside area; each velocity axis is drawn from {-1, 0, 1}.
func SpawnHazard(id int, rng *rand.Rand, area core.Rect, cfg config.HazardConfig, palette []core.Color) *Hazard {
	radius := cfg.MinRadius
	if cfg.MaxRadius > cfg.MinRadius {
		radius = cfg.MinRadius + rng.Intn(cfg.MaxRadius-cfg.MinRadius+1)
	}

	color := core.ColorRed
	if len(palette) > 0 {
		color = palette[rng.Intn(len(palette))]
	}

	cx := area.X + radius + rng.Intn(core.Max(area.W-2*radius, 0)+1)
	cy := area.Y + radius + rng.Intn(core.Max(area.H-2*radius, 0)+1)

	return &Hazard{
		id:     id,
		rect:   core.RectAt(cx, cy, 2*radius, 2*radius),
		radius: radius,
		vx:     hazardDirections[rng.Intn(len(hazardDirections))],
		vy:     hazardDirections[rng.Intn(len(hazardDirections))],
		color:  color,
	}
}

// Step moves the hazard by its velocity, reflecting off the edges of area.
//
// By default the bounce test uses the current rectangle before moving, so a
// hazard touching an edge overshoots by one step and is turned around on the
// following frame. With predictive set, the test uses the rectangle the move
// would produce and the hazard never leaves area.
func (h *Hazard) Step(area core.Rect, predictive bool) {
	if predictive {
		if x, _ := core.CheckBound(area, h.rect.Translate(h.vx, 0)); !x {
			h.vx = -h.vx
		}
		if _, y := core.CheckBound(area, h.rect.Translate(0, h.vy)); !y {
			h.vy = -h.vy
		}
	} else {
		x, y := core.CheckBound(area, h.rect)
		if !x {
			h.vx = -h.vx
		}
		if !y {
			h.vy = -h.vy
		}
	}
	h.rect = h.rect.Translate(h.vx, h.vy)
}

// CollidesWith reports whether the hazard's bounding box overlaps r.
func (h *Hazard) CollidesWith(r core.Rect) bool {
	return h.rect.Intersects(r)
}

// ID returns the spawn index.
func (h *Hazard) ID() int { return h.id }

// Rect returns the bounding rectangle.
func (h *Hazard) Rect() core.Rect { return h.rect }

// Radius returns the circle radius.
func (h *Hazard) Radius() int { return h.radius }

// Velocity returns the per-axis velocity.
func (h *Hazard) Velocity() (int, int) { return h.vx, h.vy }

// Color returns the cosmetic color tag.
func (h *Hazard) Color() core.Color { return h.color }
