package game

import (
	"testing"
)

func TestSolidAtOutOfBounds(t *testing.T) {
	g := NewGrid(10, 8, 16)

	// Everything outside [0,cols)x[0,rows) reads as solid, including
	// negative coordinates and coordinates just past the far edges.
	outside := []struct {
		name string
		x, y float64
	}{
		{"left of map", -0.5, 50},
		{"far left", -1000, 50},
		{"above map", 50, -0.5},
		{"right of map", 10*16 + 0.1, 50},
		{"below map", 50, 8*16 + 0.1},
		{"far corner", -300, -300},
	}

	for _, tc := range outside {
		if !g.SolidAt(tc.x, tc.y) {
			t.Errorf("%s: SolidAt(%v, %v) = false, want true", tc.name, tc.x, tc.y)
		}
	}
}

func TestSolidAtInBounds(t *testing.T) {
	g := NewGrid(10, 8, 16)
	g.Set(3, 5, Tile{Type: TileGrass, Solid: true})

	if !g.SolidAt(3*16+8, 5*16+8) {
		t.Error("center of a solid tile should be solid")
	}
	if g.SolidAt(4*16+8, 5*16+8) {
		t.Error("empty neighbor tile should not be solid")
	}

	// The tile boundary belongs to the tile whose row starts there.
	if !g.SolidAt(3*16, 5*16) {
		t.Error("top-left corner of a solid tile should be solid")
	}
}

func TestGridSetOutOfBoundsIgnored(t *testing.T) {
	g := NewGrid(4, 4, 16)
	g.Set(-1, 0, Tile{Type: TileStone, Solid: true})
	g.Set(0, 99, Tile{Type: TileStone, Solid: true})

	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			if g.At(col, row).Solid {
				t.Fatalf("out-of-bounds Set leaked into cell (%d,%d)", col, row)
			}
		}
	}
}

func TestOutOfBoundsTileIsStone(t *testing.T) {
	g := NewGrid(4, 4, 16)
	tile := g.At(-1, -1)
	if !tile.Solid || tile.Type != TileStone {
		t.Errorf("boundary tile = %+v, want solid stone", tile)
	}
}
