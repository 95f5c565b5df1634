package game

import (
	"testing"

	"github.com/akarpov/tilerunner/internal/config"
	"github.com/akarpov/tilerunner/internal/core"
)

// testWorld builds a minimal hand-made world: a flat solid floor at the
// given row across the whole grid.
func testWorld(cfg config.Config, floorRow int) *World {
	ts := cfg.Physics.TileSize
	grid := NewGrid(20, floorRow+6, ts)
	for col := 0; col < 20; col++ {
		grid.Set(col, floorRow, Tile{Type: TileGrass, Solid: true})
		grid.Set(col, floorRow+1, Tile{Type: TileGround, Solid: true})
	}
	return &World{
		Grid:     grid,
		FloorRow: floorRow,
		Player: Actor{
			Pos:     core.Vec2{X: 5 * ts, Y: float64(floorRow)*ts - cfg.Player.Height},
			Width:   cfg.Player.Width,
			Height:  cfg.Player.Height,
			Footing: Grounded,
		},
	}
}

func tickDt() float64 {
	return 1.0 / 90.0
}

func TestFloorSnapExactness(t *testing.T) {
	cfg := config.Default()
	ts := cfg.Physics.TileSize
	w := testWorld(cfg, 10)

	// Falling actor a little above the floor with enough velocity to
	// pass through in one tick.
	p := &w.Player
	p.Pos.Y = float64(10)*ts - p.Height - 1
	p.Vel.Y = 20
	p.Footing = Airborne

	stepPlayer(w, &cfg, inputState{}, tickDt())

	wantFeet := float64(10) * ts
	if got := p.Pos.Y + p.Height; got != wantFeet {
		t.Errorf("feet Y = %v, want exactly %v", got, wantFeet)
	}
	if p.Vel.Y != 0 {
		t.Errorf("velocity.Y = %v, want 0 after landing", p.Vel.Y)
	}
	if p.Footing != Grounded {
		t.Errorf("footing = %v, want Grounded", p.Footing)
	}
}

func TestFrictionConvergesToZero(t *testing.T) {
	cfg := config.Default()
	w := testWorld(cfg, 10)

	for _, v := range []float64{0.1, -0.1, 0.05, -0.02} {
		w.Player.Vel.X = v
		stepPlayer(w, &cfg, inputState{}, tickDt())
		if w.Player.Vel.X != 0 {
			t.Errorf("velocity.X after one tick from %v = %v, want exactly 0", v, w.Player.Vel.X)
		}
	}
}

func TestFrictionDoesNotOvershoot(t *testing.T) {
	cfg := config.Default()
	w := testWorld(cfg, 10)

	w.Player.Vel.X = cfg.Physics.MaxSpeed
	for i := 0; i < 500; i++ {
		stepPlayer(w, &cfg, inputState{}, tickDt())
		if w.Player.Vel.X < 0 {
			t.Fatalf("friction overshot zero: velocity.X = %v on tick %d", w.Player.Vel.X, i)
		}
	}
	if w.Player.Vel.X != 0 {
		t.Errorf("velocity.X = %v after long decay, want 0", w.Player.Vel.X)
	}
}

func TestJumpImpulse(t *testing.T) {
	cfg := config.Default()
	w := testWorld(cfg, 10)

	stepPlayer(w, &cfg, inputState{jump: true}, tickDt())

	if w.Player.Vel.Y != cfg.Physics.JumpImpulse {
		t.Errorf("velocity.Y = %v, want jump impulse %v", w.Player.Vel.Y, cfg.Physics.JumpImpulse)
	}
	if w.Player.Footing != Airborne {
		t.Error("player should be airborne after jumping")
	}
}

func TestNoDoubleJump(t *testing.T) {
	cfg := config.Default()
	w := testWorld(cfg, 10)

	stepPlayer(w, &cfg, inputState{jump: true}, tickDt())
	vyAfterJump := w.Player.Vel.Y

	// Holding jump while airborne must not re-apply the impulse.
	stepPlayer(w, &cfg, inputState{jump: true}, tickDt())
	if w.Player.Vel.Y == cfg.Physics.JumpImpulse && vyAfterJump == cfg.Physics.JumpImpulse {
		// Gravity must have changed the velocity between ticks.
		t.Error("jump impulse re-applied while airborne")
	}
}

func TestGravityOnlyWhileAirborne(t *testing.T) {
	cfg := config.Default()
	w := testWorld(cfg, 10)

	// Standing still on the floor: velocity stays zero.
	for i := 0; i < 10; i++ {
		stepPlayer(w, &cfg, inputState{}, tickDt())
	}
	if w.Player.Vel.Y != 0 {
		t.Errorf("grounded player accumulated vertical velocity %v", w.Player.Vel.Y)
	}
}

func TestWalkOffLedgeBecomesAirborne(t *testing.T) {
	cfg := config.Default()
	ts := cfg.Physics.TileSize
	w := testWorld(cfg, 10)

	// Carve a gap under the player and nudge them into it.
	for col := 4; col < 8; col++ {
		w.Grid.Set(col, 10, Tile{})
		w.Grid.Set(col, 11, Tile{})
	}
	w.Player.Pos.X = 5 * ts

	stepPlayer(w, &cfg, inputState{}, tickDt())
	if w.Player.Footing != Airborne {
		t.Error("player over a gap should be airborne")
	}
}

func TestHeadBumpStopsRise(t *testing.T) {
	cfg := config.Default()
	ts := cfg.Physics.TileSize
	w := testWorld(cfg, 10)

	// Ceiling directly above the player.
	ceilRow := 10 - 2
	for col := 0; col < 20; col++ {
		w.Grid.Set(col, ceilRow, Tile{Type: TileStone, Solid: true})
	}

	w.Player.Vel.Y = -20
	w.Player.Footing = Airborne
	stepPlayer(w, &cfg, inputState{}, tickDt())

	if w.Player.Vel.Y != 0 {
		t.Errorf("velocity.Y = %v after head bump, want 0", w.Player.Vel.Y)
	}
	wantHead := float64(ceilRow+1) * ts
	if w.Player.Pos.Y != wantHead {
		t.Errorf("head Y = %v, want exactly %v (just below the ceiling tile)", w.Player.Pos.Y, wantHead)
	}
}

func TestHorizontalClampToMapBounds(t *testing.T) {
	cfg := config.Default()
	w := testWorld(cfg, 10)

	w.Player.Pos.X = 0
	w.Player.Vel.X = -cfg.Physics.MaxSpeed
	stepPlayer(w, &cfg, inputState{left: true}, tickDt())
	if w.Player.Pos.X != 0 {
		t.Errorf("player escaped the left edge: X = %v", w.Player.Pos.X)
	}

	maxX := w.MapWidthPx() - w.Player.Width
	w.Player.Pos.X = maxX
	w.Player.Vel.X = cfg.Physics.MaxSpeed
	stepPlayer(w, &cfg, inputState{right: true}, tickDt())
	if w.Player.Pos.X != maxX {
		t.Errorf("player escaped the right edge: X = %v, want %v", w.Player.Pos.X, maxX)
	}
}

func TestPitFallTriggersDeath(t *testing.T) {
	cfg := config.Default()
	ts := cfg.Physics.TileSize
	w := testWorld(cfg, 10)

	w.Player.Pos.Y = (float64(w.FloorRow) + cfg.Map.PitMargin + 1) * ts
	w.Player.Pos.X = 5 * ts
	// Carve the floor so the fall is not interrupted.
	for col := 0; col < 20; col++ {
		w.Grid.Set(col, 10, Tile{})
		w.Grid.Set(col, 11, Tile{})
	}
	w.Player.Footing = Airborne

	if fell := stepPlayer(w, &cfg, inputState{}, tickDt()); !fell {
		t.Error("player past the pit margin should trigger death")
	}
}

func TestEnemyReversesAtPlatformEdge(t *testing.T) {
	cfg := config.Default()
	ts := cfg.Physics.TileSize
	grid := NewGrid(20, 12, ts)
	// Short platform at row 6, columns 5..8.
	for col := 5; col <= 8; col++ {
		grid.Set(col, 6, Tile{Type: TileStone, Solid: true})
	}
	w := &World{Grid: grid, FloorRow: 10}

	w.Enemies = []Enemy{{
		Actor: Actor{
			Pos:     core.Vec2{X: 8 * ts, Y: 6*ts - cfg.Enemy.Height},
			Vel:     core.Vec2{X: cfg.Enemy.PatrolSpeed},
			Width:   cfg.Enemy.Width,
			Height:  cfg.Enemy.Height,
			Footing: Grounded,
		},
	}}

	g := &Game{cfg: &cfg, world: w, rng: newTestRNG()}
	g.stepEnemies(tickDt())

	if w.Enemies[0].Vel.X >= 0 {
		t.Errorf("enemy at platform edge should reverse, velocity.X = %v", w.Enemies[0].Vel.X)
	}
}

func TestEnemyFallingPastFloorIsDestroyed(t *testing.T) {
	cfg := config.Default()
	ts := cfg.Physics.TileSize
	grid := NewGrid(20, 16, ts)
	w := &World{Grid: grid, FloorRow: 10}

	w.Enemies = []Enemy{{
		Actor: Actor{
			Pos:     core.Vec2{X: 5 * ts, Y: (float64(w.FloorRow) + cfg.Map.PitMargin + 1) * ts},
			Vel:     core.Vec2{X: cfg.Enemy.PatrolSpeed},
			Width:   cfg.Enemy.Width,
			Height:  cfg.Enemy.Height,
			Footing: Airborne,
		},
	}}

	g := &Game{cfg: &cfg, world: w, rng: newTestRNG()}
	g.stepEnemies(tickDt())

	if len(w.Enemies) != 0 {
		t.Errorf("enemy past the floor margin should be removed, %d remain", len(w.Enemies))
	}
	if len(w.Particles) == 0 {
		t.Error("destroying a fallen enemy should spawn a particle burst")
	}
}
