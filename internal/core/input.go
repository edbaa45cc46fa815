package core

import "fmt"

// Button is the per-frame state of a mouse button or key.
type Button int

const (
	ButtonUp Button = iota
	ButtonDown
	ButtonPress
	ButtonRelease
)

var buttonNames = []string{"Up", "Down", "Press", "Release"}

// String returns the variant name used in saved games.
func (b Button) String() string { return EnumName(b, buttonNames) }

// ParseButton parses a button state name.
func ParseButton(s string) (Button, error) { return ParseEnum[Button](s, buttonNames) }

func (b Button) MarshalText() ([]byte, error) { return []byte(b.String()), nil }

func (b *Button) UnmarshalText(text []byte) error {
	v, err := ParseButton(string(text))
	if err != nil {
		return err
	}
	*b = v
	return nil
}

// IsDown is true while the button is held, including the press frame.
func (b Button) IsDown() bool {
	return b == ButtonPress || b == ButtonDown
}

// IsUp is true while the button is not held, including the release frame.
func (b Button) IsUp() bool {
	return b == ButtonRelease || b == ButtonUp
}

// IsPressed is true only on the frame the button went down.
func (b Button) IsPressed() bool {
	return b == ButtonPress
}

// IsReleased is true only on the frame the button went up.
func (b Button) IsReleased() bool {
	return b == ButtonRelease
}

// UpdatedButton advances a button given whether it is physically down now.
func UpdatedButton(b Button, isDown bool) Button {
	switch b {
	case ButtonUp, ButtonRelease:
		if isDown {
			return ButtonPress
		}
		return ButtonUp
	default:
		if isDown {
			return ButtonDown
		}
		return ButtonRelease
	}
}

// RepeatableButton reports key repeats while a key is held.
type RepeatableButton struct {
	Button      Button
	IsRepeated  bool
	repeatCount int
}

// Update advances the button. A press repeats after 20 held frames, then
// every 10.
func (r *RepeatableButton) Update(isDown bool) {
	r.Button = UpdatedButton(r.Button, isDown)
	r.IsRepeated = false
	if r.Button.IsPressed() {
		r.IsRepeated = true
		r.repeatCount = 20
	}
	if r.Button.IsDown() {
		if r.repeatCount > 0 {
			r.repeatCount--
		}
	} else {
		r.repeatCount = 20
	}
	if r.repeatCount == 1 {
		r.IsRepeated = true
		r.repeatCount = 10
	}
}

// Mouse is the mouse state in one camera's pixel space.
type Mouse struct {
	Position Position
	Drag     Position
	Left     Button
	Middle   Button
	Right    Button
}

// Update replaces the mouse state, recording the drag since the last frame.
func (m *Mouse) Update(position Position, left, middle, right bool) {
	*m = Mouse{
		Position: position,
		Drag:     position.Sub(m.Position),
		Left:     UpdatedButton(m.Left, left),
		Middle:   UpdatedButton(m.Middle, middle),
		Right:    UpdatedButton(m.Right, right),
	}
}

// Shortcut is an abstract keyboard command a rule can react to.
type Shortcut int

const (
	ShortcutOk Shortcut = iota
	ShortcutCancel
)

func (s Shortcut) String() string {
	if s == ShortcutCancel {
		return "Cancel"
	}
	return "Ok"
}

func (s Shortcut) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

func (s *Shortcut) UnmarshalText(text []byte) error {
	v, ok := ParseShortcut(string(text))
	if !ok {
		return fmt.Errorf("unknown shortcut %q", text)
	}
	*s = v
	return nil
}

// ParseShortcut parses a shortcut name.
func ParseShortcut(s string) (Shortcut, bool) {
	switch s {
	case "Ok":
		return ShortcutOk, true
	case "Cancel":
		return ShortcutCancel, true
	}
	return ShortcutOk, false
}

// Shortcuts is the set of shortcuts active this frame.
type Shortcuts map[Shortcut]bool

// Has reports whether s was used this frame.
func (s Shortcuts) Has(sc Shortcut) bool {
	return s[sc]
}

// Characters with special meaning in the typed character stream.
const (
	BackspaceChar = '\b'
	CtrlZChar     = '\x1a'
	CtrlYChar     = '\x19'
	FirstLegitKey = 32
)

// Input is everything the host gathered for one frame.
// Outer is in editor space, Inner is in the subgame's space.
type Input struct {
	Outer     Mouse
	Inner     Mouse
	Chars     []rune
	Shortcuts Shortcuts
}

// Clone returns a deep copy of the input.
func (in Input) Clone() Input {
	out := in
	out.Chars = append([]rune(nil), in.Chars...)
	out.Shortcuts = make(Shortcuts, len(in.Shortcuts))
	for k, v := range in.Shortcuts {
		out.Shortcuts[k] = v
	}
	return out
}

// HasChar reports whether ch was typed this frame.
func (in Input) HasChar(ch rune) bool {
	for _, c := range in.Chars {
		if c == ch {
			return true
		}
	}
	return false
}
