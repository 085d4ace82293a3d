package kokaton

import (
	"github.com/vovakirdan/tui-kokaton/internal/config"
	"github.com/vovakirdan/tui-kokaton/internal/core"
)

// Projectile travels right at a constant speed until it hits a hazard.
type Projectile struct {
	rect  core.Rect
	speed int
}

// Rect returns the projectile's bounding rectangle.
func (p Projectile) Rect() core.Rect {
	return p.rect
}

// ProjectileSlot owns the single projectile that may be in flight.
// Firing into an occupied slot does nothing.
type ProjectileSlot struct {
	active bool
	proj   Projectile
}

// Fire launches a projectile centered offset_x to the right of origin's
// center. It reports whether a projectile was created.
func (s *ProjectileSlot) Fire(origin core.Rect, cfg config.ProjectileConfig) bool {
	if s.active {
		return false
	}
	cx, cy := origin.Center()
	s.proj = Projectile{
		rect:  core.RectAt(cx+cfg.OffsetX, cy, cfg.Width, cfg.Height),
		speed: cfg.Speed,
	}
	s.active = true
	return true
}

// Active returns the projectile in flight, if any.
func (s *ProjectileSlot) Active() (Projectile, bool) {
	return s.proj, s.active
}

// Step moves the projectile in flight. No bounds are applied here.
func (s *ProjectileSlot) Step() {
	if !s.active {
		return
	}
	s.proj.rect = s.proj.rect.Translate(s.proj.speed, 0)
}

// Clear empties the slot.
func (s *ProjectileSlot) Clear() {
	s.active = false
	s.proj = Projectile{}
}

// Explosion is the visual left behind by a destroyed hazard. It has no
// collision and disappears when its life runs out.
type Explosion struct {
	X, Y   int // Center in world units
	Radius int
	Life   int // Frames left, including the current one
	Total  int
}

// NewExplosion creates an explosion at the hazard's last position.
func NewExplosion(h *Hazard, life int) Explosion {
	x, y := h.Rect().Center()
	return Explosion{X: x, Y: y, Radius: h.Radius(), Life: life, Total: life}
}

// age ticks the explosion down by one frame and reports whether it is still visible.
func (e *Explosion) age() bool {
	e.Life--
	return e.Life > 0
}
