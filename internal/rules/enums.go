package rules

import (
	"encoding/json"
	"fmt"

	"github.com/vovakirdan/game-maker/internal/core"
)

// unmarshalEnum parses text into one of names.
func unmarshalEnum[T ~int](dst *T, text []byte, names []string) error {
	v, err := core.ParseEnum[T](compactName(string(text)), names)
	if err != nil {
		return err
	}
	*dst = v
	return nil
}

// Switch is the on/off flag of a member. The Switched states last one tick.
type Switch int

const (
	Off Switch = iota
	On
	SwitchedOff
	SwitchedOn
)

var switchNames = []string{"Off", "On", "SwitchedOff", "SwitchedOn"}

func (s Switch) String() string                   { return core.EnumName(s, switchNames) }
func (s Switch) MarshalText() ([]byte, error)     { return []byte(s.String()), nil }
func (s *Switch) UnmarshalText(text []byte) error { return unmarshalEnum(s, text, switchNames) }

// Edge turns a requested switch into the edge state a demand applies.
func (s Switch) Edge() Switch {
	if s == On || s == SwitchedOn {
		return SwitchedOn
	}
	return SwitchedOff
}

// Apply collapses last tick's edge and merges a pending edge.
func (s *Switch) Apply(applied Switch) {
	if *s == SwitchedOff {
		*s = Off
	}
	if *s == SwitchedOn {
		*s = On
	}
	if applied == SwitchedOn && *s != On {
		*s = SwitchedOn
	}
	if applied == SwitchedOff && *s != Off {
		*s = SwitchedOff
	}
}

// Matches reports whether a member switch satisfies a question asking for s.
// Off and On also accept the edge that just led to them.
func (s Switch) Matches(actual Switch) bool {
	switch s {
	case Off:
		return actual == Off || actual == SwitchedOff
	case On:
		return actual == On || actual == SwitchedOn
	default:
		return actual == s
	}
}

// WinStatus tracks whether a game has been won or lost.
type WinStatus int

const (
	NotYetWon WinStatus = iota
	NotYetLost
	JustWon
	JustLost
	Won
	Lost
)

var winStatusNames = []string{"NotYetWon", "NotYetLost", "JustWon", "JustLost", "Won", "Lost"}

func (w WinStatus) String() string                   { return core.EnumName(w, winStatusNames) }
func (w WinStatus) MarshalText() ([]byte, error)     { return []byte(w.String()), nil }
func (w *WinStatus) UnmarshalText(text []byte) error { return unmarshalEnum(w, text, winStatusNames) }

// Matches reports whether the game status actual satisfies a question asking for w.
func (w WinStatus) Matches(actual WinStatus) bool {
	switch w {
	case Won:
		return actual == Won || actual == JustWon
	case Lost:
		return actual == Lost || actual == JustLost
	case NotYetLost:
		return actual == NotYetLost || actual == NotYetWon || actual == JustWon || actual == Won
	case NotYetWon:
		return actual == NotYetWon || actual == NotYetLost || actual == JustLost || actual == Lost
	default:
		return actual == w
	}
}

// IsUndecided reports whether a Win or Lose demand can still take effect.
func (w WinStatus) IsUndecided() bool {
	return w == NotYetWon || w == NotYetLost
}

// Settled moves the one-tick Just states to their lasting form.
func (w WinStatus) Settled() WinStatus {
	switch w {
	case JustWon:
		return Won
	case JustLost:
		return Lost
	default:
		return w
	}
}

// Length is how long a game runs.
type Length int

const (
	Short Length = iota
	Long
	Infinite
)

var lengthNames = []string{"Short", "Long", "Infinite"}

func (l Length) String() string                   { return core.EnumName(l, lengthNames) }
func (l Length) MarshalText() ([]byte, error)     { return []byte(l.String()), nil }
func (l *Length) UnmarshalText(text []byte) error { return unmarshalEnum(l, text, lengthNames) }

// ParseLength parses a length name.
func ParseLength(s string) (Length, error) { return core.ParseEnum[Length](s, lengthNames) }

// LastFrame returns the frame a game of this length ends on.
func (l Length) LastFrame() (int, bool) {
	switch l {
	case Short:
		return 240, true
	case Long:
		return 480, true
	default:
		return 0, false
	}
}

// GameSize is the screen a game is played on.
type GameSize int

const (
	Small GameSize = iota
	Big
)

var gameSizeNames = []string{"Small", "Big"}

func (g GameSize) String() string                   { return core.EnumName(g, gameSizeNames) }
func (g GameSize) MarshalText() ([]byte, error)     { return []byte(g.String()), nil }
func (g *GameSize) UnmarshalText(text []byte) error { return unmarshalEnum(g, text, gameSizeNames) }

// ParseGameSize parses a game size name.
func ParseGameSize(s string) (GameSize, error) { return core.ParseEnum[GameSize](s, gameSizeNames) }

// Centre is the middle of a screen of this size.
func (g GameSize) Centre() core.Position {
	if g == Big {
		return OuterCentre
	}
	return InnerCentre
}

// Background is the size class of a full screen sprite.
func (g GameSize) Background() SpriteSize {
	if g == Big {
		return OuterBgSize
	}
	return InnerBgSize
}

// Direction is one of eight compass directions.
type Direction int

const (
	North Direction = iota
	NorthEast
	East
	SouthEast
	South
	SouthWest
	West
	NorthWest
)

var directionNames = []string{"North", "NorthEast", "East", "SouthEast", "South", "SouthWest", "West", "NorthWest"}

// Directions lists every direction in declaration order.
var Directions = []Direction{North, NorthEast, East, SouthEast, South, SouthWest, West, NorthWest}

func (d Direction) String() string                   { return core.EnumName(d, directionNames) }
func (d Direction) MarshalText() ([]byte, error)     { return []byte(d.String()), nil }
func (d *Direction) UnmarshalText(text []byte) error { return unmarshalEnum(d, text, directionNames) }

// Label is the spaced name used for editor variables, e.g. "North East".
func (d Direction) Label() string {
	return [...]string{"North", "North East", "East", "South East", "South", "South West", "West", "North West"}[d]
}

// Unit returns the step for the direction with y pointing down.
func (d Direction) Unit() (x, y float32) {
	switch d {
	case North:
		return 0, -1
	case NorthEast:
		return 1, -1
	case East:
		return 1, 0
	case SouthEast:
		return 1, 1
	case South:
		return 0, 1
	case SouthWest:
		return -1, 1
	case West:
		return -1, 0
	default:
		return -1, -1
	}
}

// DirectionSet is a set of directions. It iterates in declaration order.
type DirectionSet uint8

// NewDirectionSet builds a set from dirs.
func NewDirectionSet(dirs ...Direction) DirectionSet {
	var s DirectionSet
	for _, d := range dirs {
		s = s.With(d)
	}
	return s
}

// With returns the set plus d.
func (s DirectionSet) With(d Direction) DirectionSet { return s | 1<<uint(d) }

// Has reports whether d is in the set.
func (s DirectionSet) Has(d Direction) bool { return s&(1<<uint(d)) != 0 }

// List returns the members in declaration order.
func (s DirectionSet) List() []Direction {
	var out []Direction
	for _, d := range Directions {
		if s.Has(d) {
			out = append(out, d)
		}
	}
	return out
}

func (s DirectionSet) MarshalJSON() ([]byte, error) {
	list := s.List()
	if list == nil {
		list = []Direction{}
	}
	return json.Marshal(list)
}

func (s *DirectionSet) UnmarshalJSON(data []byte) error {
	var list []Direction
	if err := json.Unmarshal(data, &list); err != nil {
		return fmt.Errorf("direction set: %w", err)
	}
	*s = NewDirectionSet(list...)
	return nil
}

// WhichButton selects a mouse button.
type WhichButton int

const (
	LeftButton WhichButton = iota
	MiddleButton
	RightButton
)

var whichButtonNames = []string{"Left", "Middle", "Right"}

func (w WhichButton) String() string               { return core.EnumName(w, whichButtonNames) }
func (w WhichButton) MarshalText() ([]byte, error) { return []byte(w.String()), nil }
func (w *WhichButton) UnmarshalText(text []byte) error {
	return unmarshalEnum(w, text, whichButtonNames)
}

// Of picks the button state out of m.
func (w WhichButton) Of(m core.Mouse) core.Button {
	switch w {
	case MiddleButton:
		return m.Middle
	case RightButton:
		return m.Right
	default:
		return m.Left
	}
}

// Hover restricts where the mouse has to be for a mouse question.
type Hover int

const (
	Anywhere Hover = iota
	This
	TopMember
)

var hoverNames = []string{"Anywhere", "This", "TopMember"}

func (h Hover) String() string                   { return core.EnumName(h, hoverNames) }
func (h Hover) MarshalText() ([]byte, error)     { return []byte(h.String()), nil }
func (h *Hover) UnmarshalText(text []byte) error { return unmarshalEnum(h, text, hoverNames) }

// MouseState is an optional button state. AnyState matches every state and is
// saved as null.
type MouseState int

const (
	AnyState MouseState = iota
	StateUp
	StateDown
	StatePress
	StateRelease
)

var mouseStateNames = []string{"None", "Up", "Down", "Press", "Release"}

func (s MouseState) String() string { return core.EnumName(s, mouseStateNames) }

// ParseMouseState parses a state name. Unknown names give AnyState.
func ParseMouseState(name string) MouseState {
	v, err := core.ParseEnum[MouseState](compactName(name), mouseStateNames)
	if err != nil {
		return AnyState
	}
	return v
}

// Accepts reports whether button b satisfies the state.
func (s MouseState) Accepts(b core.Button) bool {
	switch s {
	case StatePress:
		return b.IsPressed()
	case StateDown:
		return b.IsDown()
	case StateUp:
		return b.IsUp()
	case StateRelease:
		return b.IsReleased()
	default:
		return true
	}
}

func (s MouseState) MarshalJSON() ([]byte, error) {
	if s == AnyState {
		return []byte("null"), nil
	}
	return json.Marshal(s.String())
}

func (s *MouseState) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*s = AnyState
		return nil
	}
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	return unmarshalEnum(s, []byte(name), mouseStateNames)
}

// RoamType selects how a roaming member moves inside its area.
type RoamType int

const (
	Wiggle RoamType = iota
	Insect
	Reflect
	Bounce
)

var roamTypeNames = []string{"Wiggle", "Insect", "Reflect", "Bounce"}

func (r RoamType) String() string                   { return core.EnumName(r, roamTypeNames) }
func (r RoamType) MarshalText() ([]byte, error)     { return []byte(r.String()), nil }
func (r *RoamType) UnmarshalText(text []byte) error { return unmarshalEnum(r, text, roamTypeNames) }

// MovementHandling is carried by roaming motions. Only Anywhere is acted on.
type MovementHandling int

const (
	MoveAnywhere MovementHandling = iota
	TryNotToOverlap
)

var movementHandlingNames = []string{"Anywhere", "TryNotToOverlap"}

func (m MovementHandling) String() string               { return core.EnumName(m, movementHandlingNames) }
func (m MovementHandling) MarshalText() ([]byte, error) { return []byte(m.String()), nil }
func (m *MovementHandling) UnmarshalText(text []byte) error {
	return unmarshalEnum(m, text, movementHandlingNames)
}

// Axis is a screen axis.
type Axis int

const (
	AxisX Axis = iota
	AxisY
)

var axisNames = []string{"X", "Y"}

func (a Axis) String() string                   { return core.EnumName(a, axisNames) }
func (a Axis) MarshalText() ([]byte, error)     { return []byte(a.String()), nil }
func (a *Axis) UnmarshalText(text []byte) error { return unmarshalEnum(a, text, axisNames) }

// Colour is a float RGBA colour.
type Colour struct {
	R float32 `json:"r"`
	G float32 `json:"g"`
	B float32 `json:"b"`
	A float32 `json:"a"`
}

// Palette colours used by new members and text demands.
var (
	Black = Colour{R: 0.055, G: 0.098, B: 0.114, A: 1}
	White = Colour{R: 0.973, G: 0.965, B: 0.957, A: 1}
	Blank = Colour{}
)

// Text is the text a member shows.
type Text struct {
	Contents string `json:"contents"`
	Colour   Colour `json:"colour"`
}

// PlainText creates black text.
func PlainText(s string) Text {
	return Text{Contents: s, Colour: Black}
}
