// Package coll answers pixel-exact occupancy questions against sprite sheets.
package coll

import (
	"image"

	"github.com/vovakirdan/game-maker/internal/core"
)

// Grid is a rectangle of on/off squares.
type Grid interface {
	Size() (w, h int)
	// SquareBit reads a square without bounds checking.
	SquareBit(p core.Position) bool
}

func inRange(x, y, w, h int) bool {
	return x >= 0 && y >= 0 && x < w && y < h
}

// InRange reports whether p lies inside the grid.
func InRange(g Grid, p core.Position) bool {
	w, h := g.Size()
	return inRange(p.X, p.Y, w, h)
}

// IsSquareActive reports whether p is inside the grid and set.
func IsSquareActive(g Grid, p core.Position) bool {
	return InRange(g, p) && g.SquareBit(p)
}

// Bits is a row-major grid, mostly useful for tests and masks.
type Bits [][]uint8

func (b Bits) Size() (int, int) {
	if len(b) == 0 {
		return 0, 0
	}
	return len(b[0]), len(b)
}

func (b Bits) SquareBit(p core.Position) bool {
	return b[p.Y][p.X] != 0
}

// AlphaGrid treats every pixel with non-zero alpha as set.
type AlphaGrid struct {
	Img image.Image
}

func (g AlphaGrid) Size() (int, int) {
	if g.Img == nil {
		return 0, 0
	}
	b := g.Img.Bounds()
	return b.Dx(), b.Dy()
}

func (g AlphaGrid) SquareBit(p core.Position) bool {
	min := g.Img.Bounds().Min
	_, _, _, a := g.Img.At(min.X+p.X, min.Y+p.Y).RGBA()
	return a != 0
}

// IsSubsectionSquareActive looks up p relative to the top left of section.
func IsSubsectionSquareActive(g Grid, p core.Position, section core.Rect) bool {
	if !inRange(p.X, p.Y, section.Width(), section.Height()) {
		return false
	}
	return IsSquareActive(g, p.Add(section.Min))
}

// IsAdjustedSubsectionSquareActive looks up a world position p in a section
// drawn centred on adjustment.
func IsAdjustedSubsectionSquareActive(g Grid, p, adjustment core.Position, section core.Rect) bool {
	topLeft := core.Pos(adjustment.X-section.Width()/2, adjustment.Y-section.Height()/2)
	offset := p.Sub(topLeft).Add(section.Min)
	if offset.X < section.Min.X || offset.Y < section.Min.Y {
		return false
	}
	if offset.X >= section.Max.X || offset.Y >= section.Max.Y {
		return false
	}
	return IsSquareActive(g, offset)
}

// GridSection restricts a grid to a sub-rectangle.
type GridSection struct {
	Section core.Rect
	Grid    Grid
}

func (s GridSection) Size() (int, int) {
	return s.Section.Width(), s.Section.Height()
}

func (s GridSection) SquareBit(p core.Position) bool {
	return s.Grid.SquareBit(p.Sub(s.Section.Min))
}

// CollisionObject is a sprite placed in the world.
type CollisionObject struct {
	Position core.Position
	Section  core.Rect
	Grid     Grid
}

// IsSquareActive reports whether the sprite covers world position p.
func (o CollisionObject) IsSquareActive(p core.Position) bool {
	return IsAdjustedSubsectionSquareActive(o.Grid, p, o.Position, o.Section)
}

// CollidesWithRect checks every pixel of rect against the sprite.
func (o CollisionObject) CollidesWithRect(rect core.Rect) bool {
	for x := rect.Min.X; x < rect.Max.X; x++ {
		for y := rect.Min.Y; y < rect.Max.Y; y++ {
			if o.IsSquareActive(core.Pos(x, y)) {
				return true
			}
		}
	}
	return false
}

// CollidesWithOther checks every pixel under this sprite's box against other.
// Only other's occupancy is consulted.
func (o CollisionObject) CollidesWithOther(other CollisionObject) bool {
	region := core.XYWH(float32(o.Position.X), float32(o.Position.Y), o.Section.Width(), o.Section.Height())
	for x := region.Min.X; x < region.Max.X; x++ {
		for y := region.Min.Y; y < region.Max.Y; y++ {
			if other.IsSquareActive(core.Pos(x, y)) {
				return true
			}
		}
	}
	return false
}
