package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", s.Width())
	}
	if s.Height() != 24 {
		t.Errorf("Height() = %d, expected 24", s.Height())
	}

	// Check that it's initialized with blank default cells
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			cell := s.CellAt(x, y)
			if cell.Rune != ' ' || cell.Color != ColorDefault {
				t.Fatalf("New screen should be blank, got %+v at (%d, %d)", cell, x, y)
			}
		}
	}
}

func TestScreenSetAndCellAt(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetColored(5, 5, 'X', ColorBrightRed)
	cell := s.CellAt(5, 5)
	if cell.Rune != 'X' || cell.Color != ColorBrightRed {
		t.Errorf("CellAt(5, 5) = %+v, expected X/BrightRed", cell)
	}

	// Out of bounds writes should be silent
	s.Set(-1, 0, 'A')
	s.Set(100, 0, 'A')
	s.Set(0, -1, 'A')
	s.Set(0, 100, 'A')

	// Out of bounds reads return a blank cell
	if s.CellAt(-1, 0).Rune != ' ' {
		t.Error("Out of bounds CellAt should return a blank cell")
	}
	if s.CellAt(100, 0).Rune != ' ' {
		t.Error("Out of bounds CellAt should return a blank cell")
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(10, 10)

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			s.SetColored(x, y, 'X', ColorRed)
		}
	}

	s.Clear()

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			cell := s.CellAt(x, y)
			if cell.Rune != ' ' || cell.Color != ColorDefault {
				t.Fatalf("Clear() left %+v at (%d, %d)", cell, x, y)
			}
		}
	}
}

func TestScreenResizePreservesContent(t *testing.T) {
	s := NewScreen(10, 10)
	s.Set(3, 3, 'A')
	s.Set(9, 9, 'B')

	s.Resize(20, 5)

	if s.Width() != 20 || s.Height() != 5 {
		t.Fatalf("size after resize = %dx%d, expected 20x5", s.Width(), s.Height())
	}
	if s.CellAt(3, 3).Rune != 'A' {
		t.Error("resize should preserve content inside the new bounds")
	}
	// The (9, 9) cell is now out of bounds vertically
	if s.CellAt(9, 9).Rune != ' ' {
		t.Error("content outside the new bounds should read blank")
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)

	s.DrawText(2, 1, "hello")
	if got := strings.TrimRight(s.Row(1), " "); got != "  hello" {
		t.Errorf("Row(1) = %q, expected %q", got, "  hello")
	}

	// Text extending past the right edge is clipped
	s.DrawText(18, 2, "long")
	if s.CellAt(19, 2).Rune != 'o' {
		t.Errorf("expected clipped text, got %q at edge", s.CellAt(19, 2).Rune)
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawBox(1, 1, 5, 4)

	corners := []struct {
		x, y int
		r    rune
	}{
		{1, 1, '┌'}, {5, 1, '┐'}, {1, 4, '└'}, {5, 4, '┘'},
	}
	for _, c := range corners {
		if got := s.CellAt(c.x, c.y).Rune; got != c.r {
			t.Errorf("corner at (%d, %d) = %q, expected %q", c.x, c.y, got, c.r)
		}
	}
	if s.CellAt(3, 1).Rune != '─' {
		t.Error("expected horizontal border rune")
	}
	if s.CellAt(1, 2).Rune != '│' {
		t.Error("expected vertical border rune")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.Set(0, 0, 'a')
	s.Set(2, 1, 'b')

	want := "a  \n  b"
	if got := s.String(); got != want {
		t.Errorf("String() = %q, expected %q", got, want)
	}
}
