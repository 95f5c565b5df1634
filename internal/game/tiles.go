// Package game implements the platformer simulation core: tile world,
// procedural level generation, actor physics, particles, interaction rules
// and the fixed-rate simulation loop. It contains no rendering code; the
// platform layer consumes read-only snapshots.
package game

import "math"

// TileType identifies the material of a tile cell.
type TileType uint8

const (
	TileEmpty TileType = iota
	TileGround
	TileGrass
	TileStone
)

// Tile is one fixed-size grid cell in the level.
type Tile struct {
	Type  TileType
	Solid bool
}

// solidBoundary is returned for any out-of-bounds query. The world edge
// behaves like an infinite stone wall, so actors are never evaluated
// against undefined tiles.
var solidBoundary = Tile{Type: TileStone, Solid: true}

// Grid is a static-size 2D grid of tiles stored as a row-major dense
// array. It is built once per level by the generator and never mutated
// afterwards, which lets snapshots share it by reference.
type Grid struct {
	cols, rows int
	tileSize   float64
	tiles      []Tile
}

// NewGrid creates an empty grid of the given dimensions.
func NewGrid(cols, rows int, tileSize float64) *Grid {
	return &Grid{
		cols:     cols,
		rows:     rows,
		tileSize: tileSize,
		tiles:    make([]Tile, cols*rows),
	}
}

// Cols returns the grid width in tiles.
func (g *Grid) Cols() int {
	return g.cols
}

// Rows returns the grid height in tiles.
func (g *Grid) Rows() int {
	return g.rows
}

// TileSize returns the world-pixel size of one tile.
func (g *Grid) TileSize() float64 {
	return g.tileSize
}

// At returns the tile at the given cell. Out-of-bounds cells read as a
// solid stone boundary.
func (g *Grid) At(col, row int) Tile {
	if col < 0 || col >= g.cols || row < 0 || row >= g.rows {
		return solidBoundary
	}
	return g.tiles[row*g.cols+col]
}

// Set places a tile at the given cell. Out-of-bounds writes are ignored.
func (g *Grid) Set(col, row int, t Tile) {
	if col < 0 || col >= g.cols || row < 0 || row >= g.rows {
		return
	}
	g.tiles[row*g.cols+col] = t
}

// SolidCell returns true if the cell is solid or outside the grid.
func (g *Grid) SolidCell(col, row int) bool {
	return g.At(col, row).Solid
}

// SolidAt converts a continuous world coordinate to a tile cell and
// returns true if that cell is solid or outside the grid. This is the
// single source of truth for all collision queries, used identically by
// player and enemy physics.
func (g *Grid) SolidAt(x, y float64) bool {
	col := int(math.Floor(x / g.tileSize))
	row := int(math.Floor(y / g.tileSize))
	return g.SolidCell(col, row)
}
