package assets

import (
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/game-maker/internal/core"
)

// Metrics measures text the way it is drawn, so text members get hit boxes
// that match their rendering.
type Metrics interface {
	TextWidth(text string) int
	CharHeight() int
}

// fontKey is the colour separating glyphs on a bitmap font sheet.
var fontKey = color.NRGBA{R: 255, G: 0, B: 255, A: 255}

// BitmapFont is a font cut from a sheet of glyphs separated by key colour.
// Glyphs start at ' ' and run in code point order.
type BitmapFont struct {
	SourceRects []core.Rect
	Image       *image.NRGBA
	charHeight  int
}

// ParseBitmapFont cuts glyphs out of img and clears the key colour.
func ParseBitmapFont(img *image.NRGBA) *BitmapFont {
	const charSpacing, lineSpacing = 1, 1
	b := img.Bounds()
	isKey := func(x, y int) bool { return img.NRGBAAt(x, y) == fontKey }

	height := 0
	for y := lineSpacing; y < b.Dy(); y++ {
		if isKey(charSpacing, y) {
			break
		}
		height++
	}

	var rects []core.Rect
	if height > 0 {
		for y := lineSpacing; y < b.Dy(); y += height + charSpacing {
			startX := charSpacing
			on := false
			for x := 0; x < b.Dx(); x++ {
				isGlyph := !isKey(x, y)
				if on == isGlyph {
					continue
				}
				if on {
					rects = append(rects, core.AABB(startX, y, x, y+height))
					on = false
				} else {
					startX = x
					on = true
				}
			}
		}
	}

	out := image.NewNRGBA(b)
	copy(out.Pix, img.Pix)
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			if isKey(x, y) {
				out.SetNRGBA(x, y, color.NRGBA{})
			}
		}
	}
	return &BitmapFont{SourceRects: rects, Image: out, charHeight: height}
}

// accented maps characters past '~' to their glyph index.
var accented = func() map[rune]int {
	m := map[rune]int{'À': 96, 'Á': 97, 'Â': 98, 'Ä': 99}
	idx := 100
	for _, r := range "ÈÉÊËÌÍÎÏÒÓÔÖŒÙÚÛÜÇÑàáâäèéêëìíîïòóôöœùúûüçñß£€" {
		m[r] = idx
		idx++
	}
	return m
}()

// GlyphIndex returns the source rect index for r. Unknown characters map to
// the last glyph or to the first when the sheet is short.
func (f *BitmapFont) GlyphIndex(r rune) int {
	if i, ok := accented[r]; ok {
		return i
	}
	i := int(r) - 32
	if i >= 0 && i < len(f.SourceRects) {
		return i
	}
	if len(f.SourceRects) <= 95 {
		return 0
	}
	return 95
}

// CharWidth returns the width of one glyph.
func (f *BitmapFont) CharWidth(r rune) int {
	i := f.GlyphIndex(r)
	if i >= len(f.SourceRects) {
		return 0
	}
	return f.SourceRects[i].Width()
}

// TextWidth is the sum of glyph widths plus one pixel each, rounded up to
// an even number.
func (f *BitmapFont) TextWidth(text string) int {
	total := 0
	for _, r := range text {
		total += f.CharWidth(r) + 1
	}
	if total%2 != 0 {
		total++
	}
	return total
}

func (f *BitmapFont) CharHeight() int { return f.charHeight }

// FaceMetrics measures text with a font.Face. It stands in when a cartridge
// carries no bitmap font.
type FaceMetrics struct {
	Face font.Face
}

// FallbackMetrics uses the 7x13 basic font.
func FallbackMetrics() FaceMetrics {
	return FaceMetrics{Face: basicfont.Face7x13}
}

func (m FaceMetrics) TextWidth(text string) int {
	w := font.MeasureString(m.Face, text).Ceil()
	if w%2 != 0 {
		w++
	}
	return w
}

func (m FaceMetrics) CharHeight() int {
	return m.Face.Metrics().Height.Ceil()
}
