package game

import (
	"testing"

	"github.com/akarpov/tilerunner/internal/config"
	"github.com/akarpov/tilerunner/internal/core"
)

func TestStepParticlesRetiresExpired(t *testing.T) {
	ps := []Particle{
		{Life: 0.05},
		{Life: 1.0},
		{Life: 0.2},
	}

	ps = stepParticles(ps, 16, 0.1)

	if len(ps) != 2 {
		t.Fatalf("got %d particles, want 2 survivors", len(ps))
	}
	for _, p := range ps {
		if p.Life <= 0 {
			t.Errorf("expired particle survived with life %v", p.Life)
		}
	}
}

func TestStepParticlesIntegrates(t *testing.T) {
	ps := []Particle{{
		Pos:     core.Vec2{X: 10, Y: 10},
		Vel:     core.Vec2{X: 1, Y: 0},
		Life:    1,
		gravity: 10,
	}}

	ps = stepParticles(ps, 16, 0.1)

	p := ps[0]
	if p.Pos.X <= 10 {
		t.Error("particle did not move horizontally")
	}
	if p.Vel.Y <= 0 || p.Pos.Y <= 10 {
		t.Error("particle gravity did not pull downward")
	}
}

func TestSpawnBurstCounts(t *testing.T) {
	cfg := config.Default()
	g := testGame(cfg)

	for kind, spec := range burstSpecs {
		g.world.Particles = g.world.Particles[:0]
		g.spawnBurst(core.Vec2{X: 100, Y: 100}, kind)
		if len(g.world.Particles) != spec.count {
			t.Errorf("burst %v spawned %d particles, want %d", kind, len(g.world.Particles), spec.count)
		}
		for _, p := range g.world.Particles {
			if p.Color != spec.color {
				t.Errorf("burst %v particle color = %v, want %v", kind, p.Color, spec.color)
			}
			if p.Life <= 0 {
				t.Errorf("burst %v particle spawned dead", kind)
			}
		}
	}
}
