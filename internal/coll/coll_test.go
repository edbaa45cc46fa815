package coll

import (
	"image"
	"image/color"
	"testing"

	"github.com/vovakirdan/game-maker/internal/core"
)

var testGrid = Bits{
	{1, 0, 0, 0},
	{0, 0, 1, 0},
	{0, 1, 0, 0},
	{0, 0, 0, 1},
}

func TestGrid(t *testing.T) {
	tests := []struct {
		name     string
		p        core.Position
		expected bool
	}{
		{"set square", core.Pos(0, 0), true},
		{"clear square", core.Pos(0, 3), false},
		{"left of grid", core.Pos(-5, 0), false},
		{"beyond grid", core.Pos(17, 14), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsSquareActive(testGrid, tc.p); got != tc.expected {
				t.Errorf("IsSquareActive(%v) = %v, expected %v", tc.p, got, tc.expected)
			}
		})
	}
}

func TestSubsection(t *testing.T) {
	section := core.AABB(1, 1, 3, 3)

	tests := []struct {
		p        core.Position
		expected bool
	}{
		{core.Pos(0, 0), false},
		{core.Pos(1, 0), true},
		{core.Pos(0, 1), true},
		{core.Pos(1, 1), false},
		{core.Pos(2, 0), false},
	}

	for _, tc := range tests {
		if got := IsSubsectionSquareActive(testGrid, tc.p, section); got != tc.expected {
			t.Errorf("IsSubsectionSquareActive(%v) = %v, expected %v", tc.p, got, tc.expected)
		}
	}
}

func TestAdjustedSubsection(t *testing.T) {
	section := core.AABB(1, 1, 3, 3)
	adjustment := core.Pos(2, 2)

	if IsAdjustedSubsectionSquareActive(testGrid, core.Pos(1, 1), adjustment, section) {
		t.Error("(1, 1) should be inactive")
	}
	if !IsAdjustedSubsectionSquareActive(testGrid, core.Pos(2, 1), adjustment, section) {
		t.Error("(2, 1) should be active")
	}
}

func TestGridSection(t *testing.T) {
	s := GridSection{Section: core.AABB(1, 1, 3, 3), Grid: testGrid}
	w, h := s.Size()
	if w != 2 || h != 2 {
		t.Errorf("Size() = %dx%d, expected 2x2", w, h)
	}
	if !s.SquareBit(core.Pos(1, 1)) {
		t.Error("SquareBit(1, 1) should map to the grid origin")
	}
}

func TestAlphaGrid(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	img.SetNRGBA(2, 3, color.NRGBA{R: 255, A: 255})
	g := AlphaGrid{Img: img}

	if !IsSquareActive(g, core.Pos(2, 3)) {
		t.Error("opaque pixel should be active")
	}
	if IsSquareActive(g, core.Pos(1, 1)) {
		t.Error("transparent pixel should be inactive")
	}
	if IsSquareActive(g, core.Pos(4, 0)) {
		t.Error("pixel outside the image should be inactive")
	}
}

func TestCollisionObjects(t *testing.T) {
	// 2x2 solid sprite at the top left of a 4x4 sheet
	sheet := Bits{
		{1, 1, 0, 0},
		{1, 1, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}
	section := core.AABB(0, 0, 2, 2)
	a := CollisionObject{Position: core.Pos(10, 10), Section: section, Grid: sheet}

	if !a.IsSquareActive(core.Pos(9, 9)) {
		t.Error("sprite should cover its top left pixel")
	}
	if a.IsSquareActive(core.Pos(11, 11)) {
		t.Error("sprite should not cover past its size")
	}
	if !a.CollidesWithRect(core.AABB(0, 0, 10, 10)) {
		t.Error("rect touching (9, 9) should collide")
	}
	if a.CollidesWithRect(core.AABB(20, 20, 30, 30)) {
		t.Error("distant rect should not collide")
	}

	b := CollisionObject{Position: core.Pos(11, 11), Section: section, Grid: sheet}
	if !a.CollidesWithOther(b) {
		t.Error("overlapping sprites should collide")
	}
	c := CollisionObject{Position: core.Pos(20, 20), Section: section, Grid: sheet}
	if a.CollidesWithOther(c) {
		t.Error("distant sprites should not collide")
	}
}
