package game

import (
	"math"

	"github.com/akarpov/tilerunner/internal/core"
)

// updateCamera smooths the horizontal scroll offset toward a point that
// keeps the player a fixed fraction into the viewport, then clamps to the
// scrollable range. Frozen during the death freeze window by the caller.
func (g *Game) updateCamera() {
	w := g.world
	viewW := g.viewportWidthPx()

	target := w.Player.Pos.X - g.cfg.Camera.LeadFraction*viewW
	w.CameraX += (target - w.CameraX) * g.cfg.Camera.Smoothing

	maxX := math.Max(0, w.MapWidthPx()-viewW+g.cfg.Camera.Margin)
	w.CameraX = core.ClampF(w.CameraX, 0, maxX)
}

// viewportWidthPx returns the viewport width in world pixels, with one
// terminal cell spanning one tile column.
func (g *Game) viewportWidthPx() float64 {
	return float64(g.runtime.ViewportW) * g.cfg.Physics.TileSize
}
