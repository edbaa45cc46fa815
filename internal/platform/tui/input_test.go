package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/game-maker/internal/core"
)

func newMapper() (*InputMapper, *core.Screen) {
	return NewInputMapper(DefaultKeyMap()), core.NewScreen(64, 18, 4, 8)
}

func TestMouseClickBetweenFrames(t *testing.T) {
	im, s := newMapper()
	im.Mouse(tea.MouseMsg{X: 10, Y: 5, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}, s)
	im.Mouse(tea.MouseMsg{X: 10, Y: 5, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft}, s)

	expected := []core.Button{core.ButtonPress, core.ButtonRelease, core.ButtonUp}
	for i, want := range expected {
		in := im.Next(core.Position{})
		if in.Outer.Left != want {
			t.Errorf("frame %d: got left %v, expected %v", i, in.Outer.Left, want)
		}
	}
}

func TestMouseHeldAndDragged(t *testing.T) {
	im, s := newMapper()
	origin := core.Pos(10, 10)

	im.Mouse(tea.MouseMsg{X: 10, Y: 5, Action: tea.MouseActionPress, Button: tea.MouseButtonMiddle}, s)
	first := im.Next(origin)
	if first.Outer.Middle != core.ButtonPress {
		t.Errorf("got middle %v, expected Press", first.Outer.Middle)
	}
	if expected := s.PixelAt(10, 5); first.Outer.Position != expected {
		t.Errorf("got outer position %v, expected %v", first.Outer.Position, expected)
	}
	if expected := s.PixelAt(10, 5).Sub(origin); first.Inner.Position != expected {
		t.Errorf("got inner position %v, expected %v", first.Inner.Position, expected)
	}

	im.Mouse(tea.MouseMsg{X: 12, Y: 5, Action: tea.MouseActionMotion, Button: tea.MouseButtonMiddle}, s)
	second := im.Next(origin)
	if second.Outer.Middle != core.ButtonDown {
		t.Errorf("got middle %v, expected Down", second.Outer.Middle)
	}
	if expected := core.Pos(8, 0); second.Inner.Drag != expected {
		t.Errorf("got drag %v, expected %v", second.Inner.Drag, expected)
	}

	// A release naming no button lets go of everything.
	im.Mouse(tea.MouseMsg{X: 12, Y: 5, Action: tea.MouseActionRelease, Button: tea.MouseButtonNone}, s)
	if got := im.Next(origin).Outer.Middle; got != core.ButtonRelease {
		t.Errorf("got middle %v, expected Release", got)
	}
}

func TestKeysBecomeCharsAndShortcuts(t *testing.T) {
	im, _ := newMapper()
	im.Key(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("hi")})
	im.Key(tea.KeyMsg{Type: tea.KeySpace})
	im.Key(tea.KeyMsg{Type: tea.KeyBackspace})
	im.Key(tea.KeyMsg{Type: tea.KeyCtrlZ})
	im.Key(tea.KeyMsg{Type: tea.KeyCtrlY})
	im.Key(tea.KeyMsg{Type: tea.KeyEnter})

	in := im.Next(core.Position{})
	expected := []rune{'h', 'i', ' ', core.BackspaceChar, core.CtrlZChar, core.CtrlYChar}
	if string(in.Chars) != string(expected) {
		t.Errorf("got chars %q, expected %q", in.Chars, expected)
	}
	if !in.Shortcuts.Has(core.ShortcutOk) {
		t.Error("expected the Ok shortcut")
	}
	if in.Shortcuts.Has(core.ShortcutCancel) {
		t.Error("unexpected Cancel shortcut")
	}

	next := im.Next(core.Position{})
	if len(next.Chars) != 0 || next.Shortcuts.Has(core.ShortcutOk) {
		t.Errorf("typed input leaked into the next frame: %+v", next)
	}
}
