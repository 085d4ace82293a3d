package kokaton

import (
	"fmt"

	"github.com/vovakirdan/tui-kokaton/internal/core"
)

// viewport maps world units onto screen cells.
type viewport struct {
	worldW, worldH int
	cellsW, cellsH int
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func ceilDiv(a, b int) int {
	return -floorDiv(-a, b)
}

// cellX returns the column containing world x.
func (v viewport) cellX(x int) int { return floorDiv(x*v.cellsW, v.worldW) }

// cellY returns the row containing world y.
func (v viewport) cellY(y int) int { return floorDiv(y*v.cellsH, v.worldH) }

// rect returns the cells covered by a world rectangle, at least one cell.
func (v viewport) rect(r core.Rect) core.Rect {
	x0, y0 := v.cellX(r.X), v.cellY(r.Y)
	x1 := ceilDiv(r.Right()*v.cellsW, v.worldW)
	y1 := ceilDiv(r.Bottom()*v.cellsH, v.worldH)
	return core.NewRect(x0, y0, core.Max(x1-x0, 1), core.Max(y1-y0, 1))
}

// worldPoint2 returns the world position of the center of a cell in
// doubled units, which keeps the half-cell offset integral.
func (v viewport) worldPoint2(cx, cy int) (int, int) {
	return (2*cx + 1) * v.worldW / v.cellsW, (2*cy + 1) * v.worldH / v.cellsH
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if dst.Width() == 0 || dst.Height() == 0 {
		return
	}

	vp := viewport{
		worldW: g.area.W,
		worldH: g.area.H,
		cellsW: dst.Width(),
		cellsH: dst.Height(),
	}

	g.drawBackground(dst)
	for _, h := range g.hazards {
		g.drawHazard(dst, vp, h)
	}
	for _, e := range g.explosions {
		g.drawExplosion(dst, vp, e)
	}
	if p, ok := g.projectile.Active(); ok {
		dst.DrawRect(vp.rect(p.Rect()), g.sprites.Projectile.Glyph, g.sprites.Projectile.Color)
	}
	g.drawPlayer(dst, vp)

	// HUD sits at world (100, 100).
	scoreText := fmt.Sprintf("%s%d", g.sprites.ScoreLabel, g.score)
	dst.DrawTextColored(core.Max(vp.cellX(100), 1), core.Max(vp.cellY(100), 0), scoreText, g.sprites.ScoreColor)

	if g.phase == PhaseEnded {
		g.drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d", g.score))
	}
}

// drawBackground scatters the background glyph over a regular grid.
func (g *Game) drawBackground(dst *core.Screen) {
	bg := g.sprites.Background
	spacing := g.sprites.BackgroundSpacing
	if bg.Glyph == 0 || spacing <= 0 {
		return
	}
	for y := 0; y < dst.Height(); y += core.Max(spacing/2, 1) {
		offset := 0
		if (y/core.Max(spacing/2, 1))%2 == 1 {
			offset = spacing / 2
		}
		for x := offset; x < dst.Width(); x += spacing {
			dst.SetColored(x, y, bg.Glyph, bg.Color)
		}
	}
}

// drawHazard fills the cells whose centers fall inside the hazard circle.
// Hazards smaller than a cell still get their center cell.
func (g *Game) drawHazard(dst *core.Screen, vp viewport, h *Hazard) {
	cells := vp.rect(h.Rect())
	hx, hy := h.Rect().Center()
	r2 := 2 * h.Radius()
	drawn := false

	for y := cells.Y; y < cells.Bottom(); y++ {
		for x := cells.X; x < cells.Right(); x++ {
			wx, wy := vp.worldPoint2(x, y)
			dx, dy := wx-2*hx, wy-2*hy
			if dx*dx+dy*dy <= r2*r2 {
				dst.SetColored(x, y, g.sprites.Hazard, h.Color())
				drawn = true
			}
		}
	}
	if !drawn {
		dst.SetColored(vp.cellX(hx), vp.cellY(hy), g.sprites.Hazard, h.Color())
	}
}

// drawExplosion draws the current explosion frame over the destroyed hazard's area.
func (g *Game) drawExplosion(dst *core.Screen, vp viewport, e Explosion) {
	frame := g.sprites.ExplosionFrame(e.Life, e.Total)
	cells := vp.rect(core.RectAt(e.X, e.Y, 2*e.Radius, 2*e.Radius))
	for y := cells.Y; y < cells.Bottom(); y++ {
		for x := cells.X; x < cells.Right(); x++ {
			if (x+y)%2 == 0 {
				dst.SetColored(x, y, frame.Glyph, frame.Color)
			}
		}
	}
	dst.SetColored(vp.cellX(e.X), vp.cellY(e.Y), frame.Glyph, frame.Color)
}

// drawPlayer fills the player box with the pose glyph and marks the facing
// at the center.
func (g *Game) drawPlayer(dst *core.Screen, vp viewport) {
	pose, ok := g.sprites.Pose(g.player.Pose())
	if !ok {
		return
	}
	cells := vp.rect(g.player.Rect())
	dst.DrawRect(cells, pose.Glyph, pose.Color)

	f := g.player.Facing()
	if glyph, ok := g.sprites.FacingGlyph(f.DX, f.DY); ok {
		cx, cy := g.player.Rect().Center()
		dst.SetColored(vp.cellX(cx), vp.cellY(cy), glyph, pose.Color)
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ', core.ColorDefault)
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
