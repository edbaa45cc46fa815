package game

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/vovakirdan/game-maker/internal/assets"
	"github.com/vovakirdan/game-maker/internal/coll"
	"github.com/vovakirdan/game-maker/internal/core"
	"github.com/vovakirdan/game-maker/internal/rules"
)

// TextSize is the box a line of text takes up.
func TextSize(font assets.Metrics, text string) core.Size {
	return core.NewSize(font.TextWidth(text), font.CharHeight())
}

// IsPositionInText reports whether p lies in text drawn centred on centre.
func IsPositionInText(p core.Position, centre mgl32.Vec2, font assets.Metrics, text string) bool {
	return IsPositionInSizedArea(p, centre, TextSize(font, text))
}

// IsPositionInSizedArea reports whether p lies in a box of size centred on
// centre.
func IsPositionInSizedArea(p core.Position, centre mgl32.Vec2, size core.Size) bool {
	return core.FromCentre(centre, size).ContainsPoint(p)
}

// IsPositionInSpriteSheetImage reports whether p hits a drawn pixel of sprite
// placed at position. Empty sprites never hit.
func IsPositionInSpriteSheetImage(p, position core.Position, sprite rules.Sprite, grid coll.Grid) bool {
	if sprite.IsEmpty() {
		return false
	}
	return coll.IsAdjustedSubsectionSquareActive(grid, p, position, sprite.SheetSourceRect())
}

// IsPositionInMember hit tests a member: its text box when it has no sprite,
// its drawn pixels otherwise.
func IsPositionInMember(p core.Position, m *Member, a *assets.Assets) bool {
	if m.Sprite.IsEmpty() {
		return IsPositionInText(p, m.Position, a.Font, m.Text.Contents)
	}
	return IsPositionInSpriteSheetImage(p, m.PixelPosition(), m.Sprite, a.Grid())
}

func textRect(m *Member, font assets.Metrics) core.Rect {
	return core.XYWH(m.Position.X(), m.Position.Y(), font.TextWidth(m.Text.Contents), font.CharHeight())
}

func collisionObject(m *Member, grid coll.Grid) coll.CollisionObject {
	return coll.CollisionObject{
		Position: m.PixelPosition(),
		Section:  m.Sprite.SheetSourceRect(),
		Grid:     grid,
	}
}

// MembersCollide tests two members pixel by pixel. Text members use their
// text box.
func MembersCollide(a, b *Member, as *assets.Assets) bool {
	grid := as.Grid()
	switch {
	case a.Sprite.IsEmpty() && b.Sprite.IsEmpty():
		return textRect(a, as.Font).Collides(textRect(b, as.Font))
	case a.Sprite.IsEmpty():
		return collisionObject(b, grid).CollidesWithRect(textRect(a, as.Font))
	case b.Sprite.IsEmpty():
		return collisionObject(a, grid).CollidesWithRect(textRect(b, as.Font))
	default:
		return collisionObject(a, grid).CollidesWithOther(collisionObject(b, grid))
	}
}

// IsCollidingWithArea reports whether any pixel of area hits the member.
func IsCollidingWithArea(m *Member, area core.Rect, as *assets.Assets) bool {
	for x := area.Min.X; x < area.Max.X; x++ {
		for y := area.Min.Y; y < area.Max.Y; y++ {
			if IsPositionInMember(core.Pos(x, y), m, as) {
				return true
			}
		}
	}
	return false
}

// ConstrainedArea shrinks area so that the member's drawn pixels, not its
// centre, stay inside it. When the pixels are wider or taller than the area
// that axis collapses to a single centred coordinate with zero extent.
func ConstrainedArea(as *assets.Assets, m *Member, area core.Rect) core.Area {
	size := m.Sprite.Size.Pixels()
	width, height := float32(size.W), float32(size.H)
	outer := core.AreaFromRect(area)
	origin := m.Sprite.SheetSourceRect().Min

	top, bottom := height, float32(0)
	left, right := width, float32(0)
	for x := 0; x < size.W; x++ {
		for y := 0; y < size.H; y++ {
			if as.Pixel(origin.Add(core.Pos(x, y))).A == 0 {
				continue
			}
			fx, fy := float32(x), float32(y)
			top = min(top, fy)
			bottom = max(bottom, fy)
			left = min(left, fx)
			right = max(right, fx)
		}
	}

	x := outer.X + width/2 - left
	w := outer.X + outer.W + width/2 - right - x
	if w < 0 {
		x = outer.X + outer.W/2 + (width/2 - (left+right+1)/2)
		w = 0
	}

	y := outer.Y + height/2 - top
	h := outer.Y + outer.H + height/2 - bottom - y
	if h < 0 {
		y = outer.Y + outer.H/2 + (height/2 - (top+bottom+1)/2)
		h = 0
	}

	return core.Area{X: x, Y: y, W: w, H: h}
}
