package kokaton

import (
	"github.com/vovakirdan/tui-kokaton/internal/config"
	"github.com/vovakirdan/tui-kokaton/internal/core"
)

// Facing is the direction the player sprite points at.
// Both components are in {-1, 0, 1} and never both zero.
type Facing struct {
	DX, DY int
}

// FacingRight is the start facing.
var FacingRight = Facing{DX: 1, DY: 0}

// Player is the controllable sprite.
type Player struct {
	rect       core.Rect
	facing     Facing
	pose       int
	normalPose int
	step       int
}

// NewPlayer creates the player centered on the configured start position.
func NewPlayer(cfg config.PlayerConfig) *Player {
	return &Player{
		rect:       core.RectAt(cfg.X, cfg.Y, cfg.Width, cfg.Height),
		facing:     FacingRight,
		pose:       cfg.NormalPose,
		normalPose: cfg.NormalPose,
		step:       cfg.Step,
	}
}

// Move applies the summed displacement of the held directions.
// The move is attempted as a whole: if the new rectangle would leave area on
// either axis, the player stays put on both axes. The facing follows the
// attempted direction whenever it is non-zero, even for a blocked move, and
// clears any temporary pose.
func (p *Player) Move(in core.InputFrame, area core.Rect) {
	dx, dy := in.Displacement()
	if dx == 0 && dy == 0 {
		return
	}

	next := p.rect.Translate(dx*p.step, dy*p.step)
	if core.Inside(area, next) {
		p.rect = next
	}
	p.facing = Facing{DX: dx, DY: dy}
	p.pose = p.normalPose
}

// CollidesWith reports whether the player overlaps r.
func (p *Player) CollidesWith(r core.Rect) bool {
	return p.rect.Intersects(r)
}

// SetPose switches the drawn pose (e.g. firing or hit). It has no effect on
// movement or collisions.
func (p *Player) SetPose(num int) {
	p.pose = num
}

// Rect returns the player's bounding rectangle.
func (p *Player) Rect() core.Rect {
	return p.rect
}

// Facing returns the current facing.
func (p *Player) Facing() Facing {
	return p.facing
}

// Pose returns the current pose number.
func (p *Player) Pose() int {
	return p.pose
}
