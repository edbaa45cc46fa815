package core

import (
	"strings"
)

// Cell is one character of the terminal canvas.
type Cell struct {
	Rune  rune
	Color Color
}

// Screen is a character canvas the host projects the pixel world onto.
// Each cell covers ScaleX by ScaleY pixels.
type Screen struct {
	width  int
	height int
	ScaleX int
	ScaleY int
	cells  [][]Cell
}

// NewScreen creates a new screen buffer with the given dimensions.
func NewScreen(width, height, scaleX, scaleY int) *Screen {
	s := &Screen{
		width:  width,
		height: height,
		ScaleX: Max(scaleX, 1),
		ScaleY: Max(scaleY, 1),
	}
	s.allocate()
	s.Clear()
	return s
}

func (s *Screen) allocate() {
	s.cells = make([][]Cell, s.height)
	for y := range s.cells {
		s.cells[y] = make([]Cell, s.width)
	}
}

// Width returns the screen width in characters.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in characters.
func (s *Screen) Height() int {
	return s.height
}

// Resize changes the screen dimensions. Content is discarded.
func (s *Screen) Resize(width, height int) {
	if width == s.width && height == s.height {
		return
	}
	s.width = width
	s.height = height
	s.allocate()
	s.Clear()
}

// Clear fills the entire screen with blank cells.
func (s *Screen) Clear() {
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x] = Cell{Rune: ' '}
		}
	}
}

// Set places a rune at the given cell.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) Set(x, y int, r rune, c Color) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.cells[y][x] = Cell{Rune: r, Color: c}
}

// GetCell returns the cell at the given position.
// Returns a blank cell for out-of-bounds coordinates.
func (s *Screen) GetCell(x, y int) Cell {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return Cell{Rune: ' '}
	}
	return s.cells[y][x]
}

// CellAt converts a pixel position to the cell covering it.
func (s *Screen) CellAt(p Position) (int, int) {
	return floorDiv(p.X, s.ScaleX), floorDiv(p.Y, s.ScaleY)
}

// PixelAt converts a cell to the pixel at its centre.
func (s *Screen) PixelAt(x, y int) Position {
	return Pos(x*s.ScaleX+s.ScaleX/2, y*s.ScaleY+s.ScaleY/2)
}

// FillRect fills every cell touched by a pixel rectangle.
func (s *Screen) FillRect(r Rect, fill rune, c Color) {
	x0, y0 := s.CellAt(r.Min)
	x1, y1 := s.CellAt(r.Max.Sub(Pos(1, 1)))
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			s.Set(x, y, fill, c)
		}
	}
}

// DrawText writes text centred on a pixel position.
func (s *Screen) DrawText(centre Position, text string, c Color) {
	runes := []rune(text)
	cx, cy := s.CellAt(centre)
	x := cx - len(runes)/2
	for i, r := range runes {
		s.Set(x+i, cy, r, c)
	}
}

// String converts the screen buffer to plain text, one row per line.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow(s.width*s.height + s.height)

	for y := 0; y < s.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < s.width; x++ {
			sb.WriteRune(s.cells[y][x].Rune)
		}
	}
	return sb.String()
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
