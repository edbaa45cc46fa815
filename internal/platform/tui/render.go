package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/game-maker/internal/core"
	"github.com/vovakirdan/game-maker/internal/game"
	"github.com/vovakirdan/game-maker/internal/rules"
)

// Glyphs used to draw sprites.
const (
	solidGlyph = '█'
	lightGlyph = '░'
)

// colorStyles caches one lipgloss style per xterm colour code.
var colorStyles = func() [256]lipgloss.Style {
	var styles [256]lipgloss.Style
	styles[core.ColorDefault] = lipgloss.NewStyle()
	for c := 1; c < len(styles); c++ {
		styles[c] = lipgloss.NewStyle().Foreground(lipgloss.Color(strconv.Itoa(c)))
	}
	return styles
}()

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color for efficiency
		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			startColor := cell.Color

			// Collect consecutive cells with same color
			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(colorStyles[startColor].Render(run.String()))
		}
	}
	return sb.String()
}

// DrawGame draws every member of g with its top left corner at origin.
// Members are drawn in order, so later members cover earlier ones. A sprite
// cell takes the colour of the sheet pixel under its centre; text members
// are written centred on their position.
func DrawGame(s *core.Screen, g *game.Game, origin core.Position) {
	for i := range g.Members {
		m := &g.Members[i]
		if m.Sprite.IsEmpty() {
			if m.Text.Contents != "" && !game.IsScreenMemberName(m.Text.Contents) {
				s.DrawText(m.PixelPosition().Add(origin), m.Text.Contents, colour(m.Text.Colour))
			}
			continue
		}
		drawSprite(s, g, m, origin)
	}
}

func drawSprite(s *core.Screen, g *game.Game, m *game.Member, origin core.Position) {
	size := m.Sprite.Size.Pixels()
	dst := core.FromCentre(m.Position, size)
	src := m.Sprite.SheetSourceRect()

	x0, y0 := s.CellAt(dst.Min.Add(origin))
	x1, y1 := s.CellAt(dst.Max.Add(origin).Sub(core.Pos(1, 1)))
	for cy := y0; cy <= y1; cy++ {
		for cx := x0; cx <= x1; cx++ {
			p := s.PixelAt(cx, cy).Sub(origin).Sub(dst.Min)
			if p.X < 0 || p.Y < 0 || p.X >= size.W || p.Y >= size.H {
				continue
			}
			px := g.Assets.Pixel(src.Min.Add(p))
			if px.A == 0 {
				continue
			}
			glyph := solidGlyph
			if px.A < 0x80 {
				glyph = lightGlyph
			}
			c := core.ColorFromRGB(float32(px.R)/0xff, float32(px.G)/0xff, float32(px.B)/0xff, 1)
			s.Set(cx, cy, glyph, c)
		}
	}
}

func colour(c rules.Colour) core.Color {
	return core.ColorFromRGB(c.R, c.G, c.B, c.A)
}

// InnerOrigin is the top left corner of the edited game's screen inside g.
func InnerOrigin(g, sub *game.Game) core.Position {
	centre := core.PosFromVec(g.ScreenPosition())
	return centre.Sub(sub.Size.Centre())
}

// OuterSize is the pixel size of the screen g is played on.
func OuterSize(g *game.Game) core.Size {
	if g.Size == rules.Big {
		return rules.OuterSize
	}
	return rules.InnerSize
}

// StatusLines is how many terminal rows the host draws under the game.
const StatusLines = 3

// FitScale returns the finest scale, no finer than scaleX by scaleY, at
// which a game of size fits a w by h terminal with the status lines.
func FitScale(size core.Size, w, h, scaleX, scaleY int) (int, int) {
	scaleX, scaleY = max(scaleX, 1), max(scaleY, 1)
	rows := max(h-StatusLines, 1)
	for size.W/scaleX > max(w, 1) {
		scaleX++
	}
	for size.H/scaleY > rows {
		scaleY++
	}
	return scaleX, scaleY
}
