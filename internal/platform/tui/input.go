package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/game-maker/internal/core"
)

const (
	leftButton = iota
	middleButton
	rightButton
)

// InputMapper collects terminal events between game frames and turns them
// into one core.Input per frame.
//
// Terminals report button presses and releases, not held state, so the
// mapper tracks which buttons are held. A click that starts and ends
// between two frames still shows as pressed for one frame.
type InputMapper struct {
	keys KeyMap

	position core.Position // Pixel position in the outer game
	held     [3]bool
	clicked  [3]bool

	outer     core.Mouse
	inner     core.Mouse
	chars     []rune
	shortcuts core.Shortcuts
}

// NewInputMapper creates a mapper using keys for the undo, redo, ok and
// cancel keys.
func NewInputMapper(keys KeyMap) *InputMapper {
	return &InputMapper{keys: keys, shortcuts: core.Shortcuts{}}
}

// Mouse records a mouse event. s converts the event cell to pixels.
func (im *InputMapper) Mouse(msg tea.MouseMsg, s *core.Screen) {
	im.position = s.PixelAt(msg.X, msg.Y)

	b := -1
	switch msg.Button {
	case tea.MouseButtonLeft:
		b = leftButton
	case tea.MouseButtonMiddle:
		b = middleButton
	case tea.MouseButtonRight:
		b = rightButton
	}

	switch msg.Action {
	case tea.MouseActionPress:
		if b >= 0 {
			im.held[b] = true
			im.clicked[b] = true
		}
	case tea.MouseActionRelease:
		// Some terminals release with no button named.
		if b >= 0 {
			im.held[b] = false
		} else {
			im.held = [3]bool{}
		}
	}
}

// Key records a key press as typed characters or shortcuts.
func (im *InputMapper) Key(msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, im.keys.Undo):
		im.chars = append(im.chars, core.CtrlZChar)
		return
	case key.Matches(msg, im.keys.Redo):
		im.chars = append(im.chars, core.CtrlYChar)
		return
	case key.Matches(msg, im.keys.Ok):
		im.shortcuts[core.ShortcutOk] = true
		return
	case key.Matches(msg, im.keys.Cancel):
		im.shortcuts[core.ShortcutCancel] = true
		return
	}

	switch msg.Type {
	case tea.KeyRunes:
		im.chars = append(im.chars, msg.Runes...)
	case tea.KeySpace:
		im.chars = append(im.chars, ' ')
	case tea.KeyBackspace:
		im.chars = append(im.chars, core.BackspaceChar)
	}
}

// Next returns the input for one game frame. innerOrigin is the top left
// corner of the edited game's screen in outer pixels. Typed characters and
// shortcuts go to the first frame after they arrive.
func (im *InputMapper) Next(innerOrigin core.Position) core.Input {
	var down [3]bool
	for i := range down {
		down[i] = im.held[i] || im.clicked[i]
	}
	im.clicked = [3]bool{}

	im.outer.Update(im.position, down[leftButton], down[middleButton], down[rightButton])
	im.inner.Update(im.position.Sub(innerOrigin), down[leftButton], down[middleButton], down[rightButton])

	in := core.Input{
		Outer:     im.outer,
		Inner:     im.inner,
		Chars:     im.chars,
		Shortcuts: im.shortcuts,
	}
	im.chars = nil
	im.shortcuts = core.Shortcuts{}
	return in
}
