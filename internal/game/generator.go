package game

import (
	"math/rand"

	"github.com/akarpov/tilerunner/internal/config"
	"github.com/akarpov/tilerunner/internal/core"
)

// GenerateWorld builds one playable level: tile grid, decorations,
// enemies, gate placement and player spawn. Column-by-column from the
// left edge:
//
//  1. A safe starting zone of always-solid floor, so the player never
//     spawns over a pit. The columns around the gate are protected the
//     same way so the floor under the gate always exists.
//  2. A floor walk that occasionally opens a short gap (only past a
//     minimum distance from the previous gap), otherwise lays a
//     grass+ground tile pair and sometimes a plant.
//  3. A low/mid floating-platform pass with a reachability rule: a span
//     is skipped if any of its columns has no solid floor beneath it.
//     Platforms may carry a crate or a patrolling enemy.
//  4. A high sky-island pass with larger strides and no reachability
//     check; islands are optional bonus areas, crates only.
//  5. The gate near the right edge, elevated above the floor.
//  6. The spawn point at a fixed offset above the floor near the left.
//
// The floor row, ignoring intentional gaps, stays traversable from spawn
// to the gate column without any optional platform. Gap lengths are
// bounded by tuning, not by a physics check; the jumpable range is
// asserted statistically in tests.
func GenerateWorld(cfg config.Config, gen config.GeneratorConfig, rng *rand.Rand) *World {
	ts := cfg.Physics.TileSize
	cols, rows := cfg.Map.Cols, cfg.Map.Rows
	// Leave open rows beneath the floor so a pit fall can pass the death
	// margin before reaching the implicit boundary wall.
	floorRow := rows - 6

	w := &World{
		Grid:     NewGrid(cols, rows, ts),
		FloorRow: floorRow,
	}

	gateCol := cols - gen.GateOffsetCols
	generateFloor(w, gen, gateCol, rng)
	generatePlatforms(w, cfg, gen, rng)
	generateIslands(w, gen, rng)

	// Gate near the right edge, elevated above the floor.
	w.Gate = Gate{
		Pos:    core.Vec2{X: float64(gateCol) * ts, Y: float64(floorRow-gen.GateRise-2) * ts},
		Width:  ts,
		Height: 2 * ts,
	}

	// Spawn at a fixed offset above the floor near the left edge.
	w.Spawn = core.Vec2{
		X: float64(gen.SpawnCol) * ts,
		Y: float64(floorRow)*ts - cfg.Player.Height - ts,
	}

	return w
}

// generateFloor walks the floor row left to right laying tiles, gaps and
// plants.
func generateFloor(w *World, gen config.GeneratorConfig, gateCol int, rng *rand.Rand) {
	grid := w.Grid
	ts := grid.TileSize()
	cols := grid.Cols()
	floorRow := w.FloorRow

	lastGapEnd := -gen.MinGapSpacing

	col := 0
	for col < cols {
		canGap := col >= gen.SafeZoneCols &&
			col < cols-gen.EndMarginCols &&
			col-lastGapEnd >= gen.MinGapSpacing

		if canGap && rng.Float64() < gen.GapChance {
			length := gen.GapMin + rng.Intn(gen.GapMax-gen.GapMin+1)
			if col+length > cols-gen.EndMarginCols {
				length = cols - gen.EndMarginCols - col
			}
			col += length
			lastGapEnd = col
			continue
		}

		grid.Set(col, floorRow, Tile{Type: TileGrass, Solid: true})
		grid.Set(col, floorRow+1, Tile{Type: TileGround, Solid: true})

		// Plants sit on solid floor only; keep the gate column clear.
		if col != gateCol && rng.Float64() < gen.PlantChance {
			w.Decor = append(w.Decor, DecorItem{
				Pos:  core.Vec2{X: float64(col) * ts, Y: float64(floorRow-1) * ts},
				Kind: DecorPlant,
			})
		}
		col++
	}
}

// generatePlatforms places short floating platforms above the floor.
// A span entirely or partially above a gap is rejected: every column in
// the span must have solid floor beneath it, so no platform is ever a
// mandatory crossing.
func generatePlatforms(w *World, cfg config.Config, gen config.GeneratorConfig, rng *rand.Rand) {
	grid := w.Grid
	ts := grid.TileSize()
	cols := grid.Cols()
	floorRow := w.FloorRow

	col := gen.SafeZoneCols
	for {
		col += gen.PlatformMinStride + rng.Intn(gen.PlatformMaxStride-gen.PlatformMinStride+1)
		length := gen.PlatformMinLen + rng.Intn(gen.PlatformMaxLen-gen.PlatformMinLen+1)
		if col+length >= cols-gen.EndMarginCols {
			return
		}

		rise := gen.PlatformMinRise + rng.Intn(gen.PlatformMaxRise-gen.PlatformMinRise+1)
		row := floorRow - rise

		// Reachability rule: skip placement above any floor gap.
		supported := true
		for c := col; c < col+length; c++ {
			if !grid.SolidCell(c, floorRow) {
				supported = false
				break
			}
		}
		if !supported {
			continue
		}

		for c := col; c < col+length; c++ {
			grid.Set(c, row, Tile{Type: TileStone, Solid: true})
		}

		if rng.Float64() < gen.CrateChance {
			crateCol := col + rng.Intn(length)
			w.Decor = append(w.Decor, DecorItem{
				Pos:  core.Vec2{X: float64(crateCol) * ts, Y: float64(row-1) * ts},
				Kind: DecorCrate,
			})
		}

		if rng.Float64() < gen.EnemyChance {
			w.Enemies = append(w.Enemies, newPatrolEnemy(cfg, col, length, row, rng))
		}
	}
}

// generateIslands places high bonus platforms with no reachability check.
func generateIslands(w *World, gen config.GeneratorConfig, rng *rand.Rand) {
	grid := w.Grid
	ts := grid.TileSize()
	cols := grid.Cols()
	floorRow := w.FloorRow

	col := gen.SafeZoneCols
	for {
		col += gen.IslandMinStride + rng.Intn(gen.IslandMaxStride-gen.IslandMinStride+1)
		length := gen.IslandMinLen + rng.Intn(gen.IslandMaxLen-gen.IslandMinLen+1)
		if col+length >= cols-gen.EndMarginCols {
			return
		}

		rise := gen.IslandMinRise + rng.Intn(gen.IslandMaxRise-gen.IslandMinRise+1)
		row := floorRow - rise
		if row < 1 {
			row = 1
		}

		for c := col; c < col+length; c++ {
			grid.Set(c, row, Tile{Type: TileStone, Solid: true})
		}

		if rng.Float64() < gen.IslandCrate {
			crateCol := col + rng.Intn(length)
			w.Decor = append(w.Decor, DecorItem{
				Pos:  core.Vec2{X: float64(crateCol) * ts, Y: float64(row-1) * ts},
				Kind: DecorCrate,
			})
		}
	}
}

// newPatrolEnemy spawns an enemy resting on a platform span, patrolling
// in a random initial direction.
func newPatrolEnemy(cfg config.Config, col, length, row int, rng *rand.Rand) Enemy {
	ts := cfg.Physics.TileSize

	speed := cfg.Enemy.PatrolSpeed
	if rng.Intn(2) == 0 {
		speed = -speed
	}

	startCol := col + rng.Intn(length)
	return Enemy{
		Actor: Actor{
			Pos: core.Vec2{
				X: float64(startCol) * ts,
				Y: float64(row)*ts - cfg.Enemy.Height,
			},
			Vel:     core.Vec2{X: speed},
			Width:   cfg.Enemy.Width,
			Height:  cfg.Enemy.Height,
			Footing: Grounded,
		},
		Phase: rng.Float64() * 6.28318,
	}
}
