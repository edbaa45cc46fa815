package edit

import (
	"image/color"
	"maps"

	"github.com/vovakirdan/game-maker/internal/assets"
	"github.com/vovakirdan/game-maker/internal/core"
	"github.com/vovakirdan/game-maker/internal/history"
	"github.com/vovakirdan/game-maker/internal/rules"
)

// Paints is the default paint palette.
var Paints = []color.NRGBA{
	{R: 14, G: 25, B: 29, A: 255},
	{R: 255, G: 182, B: 193, A: 255},
	{R: 255, G: 191, B: 0, A: 255},
	{R: 101, G: 67, B: 33, A: 255},
	{R: 220, G: 38, B: 38, A: 255},
	{R: 150, G: 90, B: 160, A: 255},
	{R: 135, G: 206, B: 235, A: 255},
	{R: 37, G: 99, B: 235, A: 255},
	{R: 34, G: 160, B: 70, A: 255},
	{R: 110, G: 140, B: 90, A: 255},
	{R: 150, G: 120, B: 90, A: 255},
	{R: 230, G: 210, B: 90, A: 255},
	{R: 64, G: 64, B: 64, A: 255},
	{R: 128, G: 128, B: 128, A: 255},
	{R: 200, G: 200, B: 200, A: 255},
	{R: 248, G: 246, B: 244, A: 255},
}

var clearColour = color.NRGBA{R: 248, G: 246, B: 244, A: 255}

// DrawTool paints into the sprite sheet of the game being edited. Strokes are
// collected until Commit turns them into one SetPixels event.
type DrawTool struct {
	Paints     []color.NRGBA
	PaintIndex int

	// Requests made by rules this tick.
	ClearRequested bool
	SaveRequested  bool

	updates map[core.Position]history.PixelChange
}

// NewDrawTool returns a tool with the default palette.
func NewDrawTool() *DrawTool {
	return &DrawTool{
		Paints:  append([]color.NRGBA(nil), Paints...),
		updates: make(map[core.Position]history.PixelChange),
	}
}

// Paint returns the selected colour.
func (d *DrawTool) Paint() color.NRGBA {
	if d.PaintIndex < 0 || d.PaintIndex >= len(d.Paints) {
		return clearColour
	}
	return d.Paints[d.PaintIndex]
}

// Plot paints p with the selected colour. The first colour seen at p in a
// stroke is kept as its before value.
func (d *DrawTool) Plot(a *assets.Assets, p core.Position) {
	d.set(a, p, d.Paint())
}

func (d *DrawTool) set(a *assets.Assets, p core.Position, c color.NRGBA) {
	if d.updates == nil {
		d.updates = make(map[core.Position]history.PixelChange)
	}
	change, ok := d.updates[p]
	if !ok {
		change.Before = a.Pixel(p)
	}
	change.After = c
	d.updates[p] = change
	a.SetPixel(p, c)
}

// Commit ends the stroke. It reports false when nothing was painted.
func (d *DrawTool) Commit() (history.Event, bool) {
	if len(d.updates) == 0 {
		return nil, false
	}
	e := history.SetPixels{Updates: maps.Clone(d.updates), LeftToRight: true}
	clear(d.updates)
	return e, true
}

// Update carries out this tick's requests. A clear fills the inner
// background with white and is recorded as a single event.
func (d *DrawTool) Update(a *assets.Assets) []history.Event {
	var events []history.Event
	if d.ClearRequested {
		if e, ok := d.Commit(); ok {
			events = append(events, e)
		}
		for x := range rules.InnerWidth {
			for y := range rules.InnerHeight {
				d.set(a, core.Pos(x, y), clearColour)
			}
		}
		if e, ok := d.Commit(); ok {
			events = append(events, e)
		}
	}
	d.ClearRequested = false
	d.SaveRequested = false
	return events
}
