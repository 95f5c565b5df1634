package game

import (
	"math"

	"github.com/akarpov/tilerunner/internal/core"
)

// Particle is a short-lived visual-effect entity. Created by emission
// rules, destroyed the tick its life reaches zero.
type Particle struct {
	Pos     core.Vec2
	Vel     core.Vec2 // Tiles per second, like actors
	Life    float64   // Seconds remaining
	Color   core.Color
	Size    float64
	gravity float64 // Extra downward acceleration; dust settles, sparks do not
}

// burstKind selects the explosion flavor for a cause.
type burstKind uint8

const (
	burstCrate burstKind = iota
	burstEnemyKill
	burstEnemyFall
	burstGateWin
	burstPitDeath
)

// burstSpec is the fixed recipe for one explosion cause.
type burstSpec struct {
	count int
	speed float64 // Radial velocity magnitude, tiles/s
	life  float64
	color core.Color
	size  float64
}

var burstSpecs = map[burstKind]burstSpec{
	burstCrate:     {count: 12, speed: 5, life: 0.5, color: core.ColorBrightYellow, size: 1},
	burstEnemyKill: {count: 16, speed: 6, life: 0.7, color: core.ColorBrightRed, size: 1.5},
	burstEnemyFall: {count: 10, speed: 4, life: 0.5, color: core.ColorOrange, size: 1},
	burstGateWin:   {count: 24, speed: 7, life: 1.0, color: core.ColorBrightGreen, size: 2},
	burstPitDeath:  {count: 16, speed: 5, life: 0.8, color: core.ColorGray, size: 1.5},
}

// spawnBurst emits a fixed-count explosion with randomized radial
// velocities at the given center.
func (g *Game) spawnBurst(center core.Vec2, kind burstKind) {
	spec := burstSpecs[kind]
	for i := 0; i < spec.count; i++ {
		angle := g.rng.Float64() * 2 * math.Pi
		speed := spec.speed * (0.4 + 0.6*g.rng.Float64())
		g.world.Particles = append(g.world.Particles, Particle{
			Pos:   center,
			Vel:   core.Vec2{X: math.Cos(angle) * speed, Y: math.Sin(angle) * speed},
			Life:  spec.life * (0.7 + 0.3*g.rng.Float64()),
			Color: spec.color,
			Size:  spec.size,
		})
	}
}

// emitMovementParticles runs the state-conditioned emission rules:
// grounded-and-moving players kick up dust motes at the feet, airborne
// moving players trail directional sparks, and ambient motes drift
// anywhere at a low constant probability.
func (g *Game) emitMovementParticles() {
	w := g.world
	p := &w.Player
	ts := g.cfg.Physics.TileSize

	moving := core.AbsF(p.Vel.X) > 1

	if p.Footing == Grounded && moving && g.rng.Float64() < 0.3 {
		w.Particles = append(w.Particles, Particle{
			Pos:     core.Vec2{X: p.Pos.X + g.rng.Float64()*p.Width, Y: p.Pos.Y + p.Height},
			Vel:     core.Vec2{X: -p.Vel.X * 0.2, Y: -0.5 - g.rng.Float64()},
			Life:    0.4,
			Color:   core.ColorGray,
			Size:    0.5,
			gravity: 10,
		})
	}

	if p.Footing == Airborne && moving && g.rng.Float64() < 0.4 {
		w.Particles = append(w.Particles, Particle{
			Pos:   core.Vec2{X: p.Pos.X + p.Width/2, Y: p.Pos.Y + p.Height/2},
			Vel:   core.Vec2{X: -p.Vel.X * 0.5, Y: -p.Vel.Y * 0.3},
			Life:  0.3,
			Color: core.ColorBrightCyan,
			Size:  0.5,
		})
	}

	// Ambient motes near the visible slice of the level.
	if g.rng.Float64() < 0.08 {
		viewW := g.viewportWidthPx()
		w.Particles = append(w.Particles, Particle{
			Pos: core.Vec2{
				X: w.CameraX + g.rng.Float64()*viewW,
				Y: g.rng.Float64() * float64(w.FloorRow) * ts,
			},
			Vel:   core.Vec2{X: 0.3 - 0.6*g.rng.Float64(), Y: -0.3 * g.rng.Float64()},
			Life:  1.5,
			Color: core.ColorCyan,
			Size:  0.5,
		})
	}
}

// stepParticles integrates and retires particles in place. A particle is
// removed the tick its life reaches zero or below; the survivors are
// compacted into the front of the same slice.
func stepParticles(ps []Particle, tileSize, dt float64) []Particle {
	out := ps[:0]
	for _, p := range ps {
		p.Vel.Y += p.gravity * dt
		p.Pos.X += p.Vel.X * tileSize * dt
		p.Pos.Y += p.Vel.Y * tileSize * dt
		p.Life -= dt
		if p.Life > 0 {
			out = append(out, p)
		}
	}
	return out
}
