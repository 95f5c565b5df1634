package game

import (
	"math"

	"github.com/akarpov/tilerunner/internal/config"
	"github.com/akarpov/tilerunner/internal/core"
)

// inputState is the per-tick view of the held movement keys.
type inputState struct {
	left, right, jump bool
}

// stepPlayer advances the player by one fixed tick. Returns true if the
// player fell past the floor row into a pit.
//
// Vertical motion uses a discrete look-ahead rather than a continuous
// sweep: the candidate Y is tested at the feet, then at the head, and
// either snapped to the tile boundary or accepted.
func stepPlayer(w *World, cfg *config.Config, in inputState, dt float64) bool {
	p := &w.Player
	ph := cfg.Physics
	ts := ph.TileSize

	// Horizontal: accelerate toward the cap under input, otherwise decay
	// toward zero without overshooting, snapping to exactly zero beneath
	// the epsilon.
	switch {
	case in.left:
		p.Vel.X -= ph.Accel * dt
		if p.Vel.X < -ph.MaxSpeed {
			p.Vel.X = -ph.MaxSpeed
		}
	case in.right:
		p.Vel.X += ph.Accel * dt
		if p.Vel.X > ph.MaxSpeed {
			p.Vel.X = ph.MaxSpeed
		}
	default:
		p.Vel.X = applyFriction(p.Vel.X, ph.Friction*dt, ph.SnapEpsilon)
	}

	// Gravity applies only while airborne, before the jump check, so a
	// jump tick ends with the velocity equal to the raw impulse.
	if p.Footing == Airborne {
		p.Vel.Y += ph.Gravity * dt
		if p.Vel.Y > ph.MaxFallSpeed {
			p.Vel.Y = ph.MaxFallSpeed
		}
	}

	// Jump only from the ground.
	if in.jump && p.Footing == Grounded {
		p.Vel.Y = ph.JumpImpulse
		p.Footing = Airborne
	}

	// Horizontal integration, clamped to the map bounds.
	p.Pos.X += p.Vel.X * ts * dt
	p.Pos.X = core.ClampF(p.Pos.X, 0, w.MapWidthPx()-p.Width)

	resolveVertical(w.Grid, p, p.Vel.Y*ts*dt)

	// Pit-fall: past the floor row plus a fixed margin the player dies
	// instead of falling forever.
	pitY := (float64(w.FloorRow) + cfg.Map.PitMargin) * ts
	return p.Pos.Y > pitY
}

// applyFriction decays a horizontal velocity toward zero by amount,
// clamped to not cross zero, snapping to exactly zero under epsilon.
func applyFriction(v, amount, epsilon float64) float64 {
	switch {
	case v > 0:
		v -= amount
		if v < 0 {
			v = 0
		}
	case v < 0:
		v += amount
		if v > 0 {
			v = 0
		}
	}
	if core.AbsF(v) <= epsilon {
		return 0
	}
	return v
}

// resolveVertical applies a candidate vertical displacement to an actor
// against the grid. If the candidate feet position lands in a solid cell
// the actor is snapped so its feet rest exactly on the tile boundary and
// it becomes grounded. Otherwise, if the candidate head position is in a
// solid cell, the actor is snapped just below that tile's bottom edge
// with its fall state unchanged. Otherwise the candidate is accepted and
// the actor is airborne.
func resolveVertical(grid *Grid, a *Actor, dy float64) {
	ts := grid.TileSize()
	candidate := a.Pos.Y + dy

	// Sample near both bottom corners so the actor cannot hang a corner
	// into a solid tile.
	leftX := a.Pos.X + a.Width*0.2
	rightX := a.Pos.X + a.Width*0.8

	feetY := candidate + a.Height
	if grid.SolidAt(leftX, feetY) || grid.SolidAt(rightX, feetY) {
		row := math.Floor(feetY / ts)
		a.Pos.Y = row*ts - a.Height
		a.Vel.Y = 0
		a.Footing = Grounded
		return
	}

	if grid.SolidAt(leftX, candidate) || grid.SolidAt(rightX, candidate) {
		row := math.Floor(candidate / ts)
		a.Pos.Y = (row + 1) * ts
		a.Vel.Y = 0
		return
	}

	a.Pos.Y = candidate
	a.Footing = Airborne
}
