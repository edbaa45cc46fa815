package edit

import (
	"slices"

	"github.com/vovakirdan/game-maker/internal/assets"
	"github.com/vovakirdan/game-maker/internal/core"
	"github.com/vovakirdan/game-maker/internal/game"
)

// eightify rounds up to a multiple of 8.
func eightify(v int) int {
	if v%8 != 0 {
		return v/8*8 + 8
	}
	return v
}

// GeneralAreaSize is the clickable size of a member in the editor: its sprite
// size, or its text size for empty sprites, rounded up to whole 8 pixel
// blocks.
func GeneralAreaSize(m *game.Member, font assets.Metrics) core.Size {
	var size core.Size
	if m.Sprite.IsEmpty() {
		size = core.NewSize(max(font.TextWidth(m.Text.Contents), 4), font.CharHeight())
	} else {
		size = m.Sprite.Size.Pixels()
	}
	return core.NewSize(eightify(size.W), eightify(size.H))
}

// IsPositionInGeneralArea reports whether p hits m's editor click area.
func IsPositionInGeneralArea(p core.Position, m *game.Member, font assets.Metrics) bool {
	return core.FromCentre(m.Position, GeneralAreaSize(m, font)).ContainsPoint(p)
}

// HoveredInGeneralArea lists the members under p, topmost first.
func HoveredInGeneralArea(members []game.Member, p core.Position, font assets.Metrics) []int {
	var hovered []int
	for i := range members {
		if IsPositionInGeneralArea(p, &members[i], font) {
			hovered = append(hovered, i)
		}
	}
	slices.Reverse(hovered)
	return hovered
}

// SelectHovered selects from a stack of overlapping members. Clicking the
// same stack again steps down through it, skipping the member already
// selected.
func (e *Editor) SelectHovered(hovered []int) bool {
	if len(hovered) == 0 {
		return false
	}
	e.IndexTracker = (e.IndexTracker + 1) % len(hovered)
	if !slices.Equal(hovered, e.PreviousHoveredIndices) {
		e.IndexTracker = 0
	}
	if e.SelectedIndex == hovered[e.IndexTracker] {
		e.IndexTracker = (e.IndexTracker + 1) % len(hovered)
	}
	e.SelectedIndex = hovered[e.IndexTracker]
	e.PreviousHoveredIndices = hovered
	return true
}

// ResetSelection forgets the selection after a different game is loaded.
func (e *Editor) ResetSelection() {
	e.SelectedIndex = 0
	e.IndexTracker = 0
	e.PreviousHoveredIndices = nil
}
