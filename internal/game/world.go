package game

import (
	"github.com/akarpov/tilerunner/internal/core"
)

// GroundState tracks whether an actor is standing on a tile or airborne.
type GroundState uint8

const (
	Grounded GroundState = iota
	Airborne
)

// Actor is a physically simulated body. Owned exclusively by the
// simulation; mutated only inside the physics engine and interaction
// rules, read-only to presentation.
type Actor struct {
	Pos     core.Vec2 // Top-left corner, world pixels
	Vel     core.Vec2 // Tiles per second
	Width   float64
	Height  float64
	Footing GroundState
}

// Bounds returns the actor's collision rectangle.
func (a *Actor) Bounds() core.RectF {
	return core.NewRectF(a.Pos.X, a.Pos.Y, a.Width, a.Height)
}

// Enemy is a reduced actor with a patrol velocity and an animation/AI
// phase timer.
type Enemy struct {
	Actor
	Phase float64
}

// DecorKind distinguishes decoration types.
type DecorKind uint8

const (
	DecorPlant DecorKind = iota // Purely decorative, never removed by gameplay
	DecorCrate                  // Collectible; removed on pickup
)

// DecorItem is a world decoration occupying one tile cell.
type DecorItem struct {
	Pos  core.Vec2 // Top-left corner of the occupied cell, world pixels
	Kind DecorKind
}

// Bounds returns the decoration's trigger rectangle.
func (d DecorItem) Bounds(tileSize float64) core.RectF {
	return core.NewRectF(d.Pos.X, d.Pos.Y, tileSize, tileSize)
}

// Gate is the level-exit trigger volume. One per level, regenerated each
// level. Phase drives its visual shimmer and accelerates during the win
// countdown.
type Gate struct {
	Pos    core.Vec2
	Width  float64
	Height float64
	Phase  float64
}

// Bounds returns the gate's trigger rectangle.
func (g Gate) Bounds() core.RectF {
	return core.NewRectF(g.Pos.X, g.Pos.Y, g.Width, g.Height)
}

// World aggregates everything that makes up one level. It is regenerated
// wholesale on level advance or manual reset; the player actor persists
// across levels except for position reset.
type World struct {
	Grid      *Grid
	Player    Actor
	Enemies   []Enemy
	Decor     []DecorItem
	Gate      Gate
	Particles []Particle

	CameraX  float64
	FloorRow int       // Row index of the walkable floor surface
	Spawn    core.Vec2 // Player spawn point for this level
}

// MapWidthPx returns the map width in world pixels.
func (w *World) MapWidthPx() float64 {
	return float64(w.Grid.Cols()) * w.Grid.TileSize()
}
