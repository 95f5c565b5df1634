package game

import (
	"math/rand"
	"testing"

	"github.com/akarpov/tilerunner/internal/config"
)

func newTestRNG() *rand.Rand {
	return rand.New(rand.NewSource(1))
}

func generateSeeded(t *testing.T, seed int64) (*World, config.Config) {
	t.Helper()
	cfg := config.Default()
	rng := rand.New(rand.NewSource(seed))
	return GenerateWorld(cfg, cfg.Generator, rng), cfg
}

func TestGeneratorSafeZone(t *testing.T) {
	for seed := int64(0); seed < 200; seed++ {
		w, cfg := generateSeeded(t, seed)
		for col := 0; col < cfg.Generator.SafeZoneCols; col++ {
			if !w.Grid.SolidCell(col, w.FloorRow) {
				t.Fatalf("seed %d: safe-zone column %d has no floor", seed, col)
			}
		}
	}
}

func TestGeneratorGateColumnsSolid(t *testing.T) {
	for seed := int64(0); seed < 200; seed++ {
		w, cfg := generateSeeded(t, seed)
		cols := w.Grid.Cols()
		for col := cols - cfg.Generator.EndMarginCols; col < cols; col++ {
			if !w.Grid.SolidCell(col, w.FloorRow) {
				t.Fatalf("seed %d: end-margin column %d has no floor", seed, col)
			}
		}
	}
}

func TestGeneratorPlatformReachability(t *testing.T) {
	cfg := config.Default()
	gen := cfg.Generator

	// Every platform tile in the low/mid band must have solid floor
	// beneath its column; islands live strictly above that band.
	for seed := int64(0); seed < 200; seed++ {
		w, _ := generateSeeded(t, seed)
		lowRow := w.FloorRow - gen.PlatformMaxRise
		highRow := w.FloorRow - gen.PlatformMinRise

		for row := lowRow; row <= highRow; row++ {
			for col := 0; col < w.Grid.Cols(); col++ {
				if w.Grid.At(col, row).Type != TileStone {
					continue
				}
				if !w.Grid.SolidCell(col, w.FloorRow) {
					t.Fatalf("seed %d: platform tile at (%d,%d) sits above a floor gap", seed, col, row)
				}
			}
		}
	}
}

func TestGeneratorGapLengthsJumpable(t *testing.T) {
	cfg := config.Default()
	ph := cfg.Physics

	// The generator bounds gap length by tuning alone; this probes that
	// the bound stays inside the range the physics constants can clear.
	// Airtime of a full jump times max speed gives the longest crossable
	// run of open columns.
	airTime := 2 * -ph.JumpImpulse / ph.Gravity
	maxJumpTiles := airTime * ph.MaxSpeed

	for seed := int64(0); seed < 300; seed++ {
		w, _ := generateSeeded(t, seed)

		run := 0
		for col := 0; col < w.Grid.Cols(); col++ {
			if w.Grid.SolidCell(col, w.FloorRow) {
				run = 0
				continue
			}
			run++
			if float64(run) >= maxJumpTiles {
				t.Fatalf("seed %d: floor gap of %d tiles exceeds jumpable range %.2f", seed, run, maxJumpTiles)
			}
		}
	}
}

func TestGeneratorGapSpacing(t *testing.T) {
	for seed := int64(0); seed < 100; seed++ {
		w, cfg := generateSeeded(t, seed)

		lastGapEnd := -cfg.Generator.MinGapSpacing
		col := 0
		for col < w.Grid.Cols() {
			if w.Grid.SolidCell(col, w.FloorRow) {
				col++
				continue
			}
			if col-lastGapEnd < cfg.Generator.MinGapSpacing {
				t.Fatalf("seed %d: gap at column %d only %d columns past the previous gap", seed, col, col-lastGapEnd)
			}
			for col < w.Grid.Cols() && !w.Grid.SolidCell(col, w.FloorRow) {
				col++
			}
			lastGapEnd = col
		}
	}
}

func TestGeneratorGatePlacement(t *testing.T) {
	w, cfg := generateSeeded(t, 7)
	ts := cfg.Physics.TileSize

	wantX := float64(w.Grid.Cols()-cfg.Generator.GateOffsetCols) * ts
	if w.Gate.Pos.X != wantX {
		t.Errorf("gate X = %v, want %v", w.Gate.Pos.X, wantX)
	}
	if w.Gate.Pos.Y >= float64(w.FloorRow)*ts {
		t.Error("gate should sit above the floor row")
	}
}

func TestGeneratorSpawnOverSolidFloor(t *testing.T) {
	for seed := int64(0); seed < 100; seed++ {
		w, cfg := generateSeeded(t, seed)
		spawnCol := int(w.Spawn.X / cfg.Physics.TileSize)
		if !w.Grid.SolidCell(spawnCol, w.FloorRow) {
			t.Fatalf("seed %d: spawn column %d has no floor beneath it", seed, spawnCol)
		}
		if w.Spawn.Y >= float64(w.FloorRow)*cfg.Physics.TileSize {
			t.Fatalf("seed %d: spawn is not above the floor", seed)
		}
	}
}

func TestGeneratorPlantsOnSolidFloor(t *testing.T) {
	for seed := int64(0); seed < 50; seed++ {
		w, cfg := generateSeeded(t, seed)
		ts := cfg.Physics.TileSize
		for _, d := range w.Decor {
			if d.Kind != DecorPlant {
				continue
			}
			col := int(d.Pos.X / ts)
			if !w.Grid.SolidCell(col, w.FloorRow) {
				t.Fatalf("seed %d: plant at column %d floats over a gap", seed, col)
			}
		}
	}
}

func TestGeneratorCratesHaveSupportBelow(t *testing.T) {
	// Crates sit one tile above some platform or island tile.
	for seed := int64(0); seed < 50; seed++ {
		w, cfg := generateSeeded(t, seed)
		ts := cfg.Physics.TileSize
		for _, d := range w.Decor {
			if d.Kind != DecorCrate {
				continue
			}
			col := int(d.Pos.X / ts)
			row := int(d.Pos.Y / ts)
			if !w.Grid.SolidCell(col, row+1) {
				t.Fatalf("seed %d: crate at (%d,%d) has no tile beneath it", seed, col, row)
			}
		}
	}
}

func TestGeneratorWorldsVary(t *testing.T) {
	a, _ := generateSeeded(t, 1)
	b, _ := generateSeeded(t, 2)

	same := true
	for col := 0; col < a.Grid.Cols() && same; col++ {
		for row := 0; row < a.Grid.Rows(); row++ {
			if a.Grid.At(col, row) != b.Grid.At(col, row) {
				same = false
				break
			}
		}
	}
	if same {
		t.Error("different seeds produced identical grids")
	}
}
