package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24, 4, 8)

	if s.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", s.Width())
	}
	if s.Height() != 24 {
		t.Errorf("Height() = %d, expected 24", s.Height())
	}

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.GetCell(x, y).Rune != ' ' {
				t.Fatalf("New screen should be filled with spaces, got %q at (%d, %d)", s.GetCell(x, y).Rune, x, y)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10, 1, 1)

	s.Set(5, 5, 'X', ColorDefault)
	if s.GetCell(5, 5).Rune != 'X' {
		t.Errorf("GetCell(5, 5) = %q, expected 'X'", s.GetCell(5, 5).Rune)
	}

	// Out of bounds should be silent
	s.Set(-1, 0, 'A', ColorDefault)
	s.Set(100, 0, 'A', ColorDefault)

	if s.GetCell(-1, 0).Rune != ' ' {
		t.Error("Out of bounds GetCell should return space")
	}
}

func TestScreenProjection(t *testing.T) {
	s := NewScreen(96, 27, 4, 8)

	tests := []struct {
		name   string
		p      Position
		cx, cy int
	}{
		{"origin", Pos(0, 0), 0, 0},
		{"inside first cell", Pos(3, 7), 0, 0},
		{"second cell", Pos(4, 8), 1, 1},
		{"negative floors", Pos(-1, -1), -1, -1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			x, y := s.CellAt(tc.p)
			if x != tc.cx || y != tc.cy {
				t.Errorf("CellAt(%v) = (%d, %d), expected (%d, %d)", tc.p, x, y, tc.cx, tc.cy)
			}
		})
	}
}

func TestScreenFillRectAndText(t *testing.T) {
	s := NewScreen(10, 4, 2, 2)
	s.FillRect(AABB(0, 0, 4, 2), '#', ColorDefault)
	s.DrawText(Pos(10, 6), "hi", ColorDefault)

	lines := strings.Split(s.String(), "\n")
	if lines[0] != "##        " {
		t.Errorf("row 0 = %q", lines[0])
	}
	if lines[3] != "    hi    " {
		t.Errorf("row 3 = %q", lines[3])
	}
}

func TestColorFromRGB(t *testing.T) {
	if got := ColorFromRGB(1, 0, 0, 1); got != 196 {
		t.Errorf("ColorFromRGB(red) = %d, expected 196", got)
	}
	if got := ColorFromRGB(1, 1, 1, 0); got != ColorDefault {
		t.Errorf("transparent colour = %d, expected default", got)
	}
}
