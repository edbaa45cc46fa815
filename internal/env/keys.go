package env

import (
	"maps"
	"slices"
	"strconv"
)

// Names of the variables the editor and rules exchange through the context.
const (
	Text           = "Text"
	Key            = "Key"
	MemberName     = "Member Name"
	MemberIndex    = "Member Index"
	MemberPreview  = "Member Preview"
	Speed          = "Speed"
	AnimationIndex = "Animation Index"
	AnimationStyle = "Animation Style"
	X              = "X"
	Y              = "Y"
	MinX           = "MinX"
	MinY           = "MinY"
	MaxX           = "MaxX"
	MaxY           = "MaxY"
	Time           = "Time"
	EndTime        = "End Time"
	When           = "When"
	Question       = "Question"
	Demand         = "Demand"
	Motion         = "Motion"
	ChoreIndex     = "Chore Index"
	QuestionIndex  = "Question Index"
	DemandIndex    = "Demand Index"
	SpriteIndex    = "Sprite Index"
	SpriteType     = "Sprite Type"
	SpriteSize     = "Sprite Size"
	Switch         = "Switch"
	SwitchState    = "Switch State"
	WinStatus      = "Win Status"
	CollisionWith  = "Collision With"
	JumpLocation   = "Jump Location"
	RoamType       = "Roam Type"
	MovementHandle = "Movement Handling"
	Hover          = "Hover"
	Button         = "Button"
	Shortcut       = "Shortcut"
	Sound          = "Sound"
	Collection     = "Collection"
	Game           = "Game"
	GameName       = "Game Name"
	GameFileName   = "Game File Name"
	GameFileIndex  = "Game File Index"
	GameSize       = "Game Size"
	Length         = "Length"
	Difficulty     = "Difficulty"
	PlaybackRate   = "Playback Rate"
	Image          = "Image"
	Font           = "Font"
	ImageFile      = "Image File"
	ImageFileName  = "Image File Name"
	ImageFileIndex = "Image File Index"
	MusicName      = "Music Name"
	MusicFile      = "Music File"
	MusicFileName  = "Music File Name"
	MusicFileIndex = "Music File Index"
	Paint          = "Paint"
	PaintIndex     = "Paint Index"
	HalfPage       = "Half Page"
	Tempo          = "Tempo"
	NoteLength     = "Note Length"
	Signature      = "Signature"
	Keyboard       = "Keyboard"
	MusicMode      = "Music Mode"
	Playback       = "Playback"
	EditorMode     = "Editor Mode"
	DrawMode       = "Draw Mode"
	Shape          = "Shape"
	ShapeStyle     = "Shape Style"
	Bucket         = "Bucket"
	DirectionNorth = "North"
	DirectionNE    = "North East"
	DirectionEast  = "East"
	DirectionSE    = "South East"
	DirectionSouth = "South"
	DirectionSW    = "South West"
	DirectionWest  = "West"
	DirectionNW    = "North West"
)

// Kind is the type of value a variable holds.
type Kind int

const (
	KindText Kind = iota
	KindInt
	KindFloat
	KindBool
	KindChoice
)

// Entry describes one known variable.
type Entry struct {
	Kind    Kind
	Choices []string
}

func choice(options ...string) Entry { return Entry{Kind: KindChoice, Choices: options} }

var (
	textVar  = Entry{Kind: KindText}
	intVar   = Entry{Kind: KindInt}
	floatVar = Entry{Kind: KindFloat}
	boolVar  = Entry{Kind: KindBool}
)

// known is every variable the engine reads or writes. Variables set by
// SetVariable demands may use other names; they are treated as text.
var known = map[string]Entry{
	Text:           textVar,
	Key:            textVar,
	MemberName:     textVar,
	MemberIndex:    intVar,
	MemberPreview:  textVar,
	Speed:          choice("VerySlow", "Slow", "Normal", "Fast", "VeryFast"),
	AnimationIndex: intVar,
	AnimationStyle: choice("Loop", "PlayOnce"),
	X:              intVar,
	Y:              intVar,
	MinX:           intVar,
	MinY:           intVar,
	MaxX:           intVar,
	MaxY:           intVar,
	Time:           intVar,
	EndTime:        intVar,
	When:           choice("Start", "End", "Exact", "Random"),
	Question:       textVar,
	Demand:         textVar,
	Motion:         textVar,
	ChoreIndex:     intVar,
	QuestionIndex:  intVar,
	DemandIndex:    intVar,
	SpriteIndex:    intVar,
	SpriteType:     choice("Empty", "Square", "InnerBg", "OuterBg"),
	SpriteSize:     intVar,
	Switch:         choice("Off", "On"),
	SwitchState:    choice("Off", "On", "SwitchedOff", "SwitchedOn"),
	WinStatus:      choice("NotYetWon", "NotYetLost", "JustWon", "JustLost", "Won", "Lost"),
	CollisionWith:  choice("Area", "Member"),
	JumpLocation:   choice("Mouse", "Point", "Area", "Member", "Relative"),
	RoamType:       choice("Wiggle", "Insect", "Reflect", "Bounce"),
	MovementHandle: choice("Anywhere", "TryNotToOverlap"),
	Hover:          choice("Anywhere", "This", "TopMember"),
	Button:         choice("None", "Up", "Down", "Press", "Release"),
	Shortcut:       choice("Ok", "Cancel"),
	Sound:          textVar,
	Collection:     textVar,
	Game:           textVar,
	GameName:       textVar,
	GameFileName:   textVar,
	GameFileIndex:  intVar,
	GameSize:       choice("Small", "Big"),
	Length:         choice("Short", "Long", "Infinite"),
	Difficulty:     choice("Normal", "Challenge", "Tough"),
	PlaybackRate:   floatVar,
	Image:          textVar,
	Font:           textVar,
	ImageFile:      textVar,
	ImageFileName:  textVar,
	ImageFileIndex: intVar,
	MusicName:      textVar,
	MusicFile:      textVar,
	MusicFileName:  textVar,
	MusicFileIndex: intVar,
	Paint:          textVar,
	PaintIndex:     intVar,
	HalfPage:       intVar,
	Tempo:          intVar,
	NoteLength:     intVar,
	Signature:      choice("3/4", "4/4"),
	Keyboard:       choice("Standard", "Extended"),
	MusicMode:      choice("Add", "Remove"),
	Playback:       choice("Solo", "Multi"),
	EditorMode:     choice("Select", "Move"),
	DrawMode:       textVar,
	Shape:          textVar,
	ShapeStyle:     textVar,
	Bucket:         boolVar,
	DirectionNorth: boolVar,
	DirectionNE:    boolVar,
	DirectionEast:  boolVar,
	DirectionSE:    boolVar,
	DirectionSouth: boolVar,
	DirectionSW:    boolVar,
	DirectionWest:  boolVar,
	DirectionNW:    boolVar,
}

// Directions lists the direction flags in compass order.
var Directions = []string{
	DirectionNorth, DirectionNE, DirectionEast, DirectionSE,
	DirectionSouth, DirectionSW, DirectionWest, DirectionNW,
}

// Lookup returns the entry of a known variable.
func Lookup(name string) (Entry, bool) {
	s, ok := known[name]
	return s, ok
}

// Known returns the names of every known variable, sorted.
func Known() []string {
	return slices.Sorted(maps.Keys(known))
}

// Accepts reports whether value is valid for the entry. Spaces are ignored
// the same way the typed getters ignore them.
func (s Entry) Accepts(value string) bool {
	v := compact(value)
	switch s.Kind {
	case KindInt:
		_, err := strconv.Atoi(v)
		return err == nil
	case KindFloat:
		_, err := strconv.ParseFloat(v, 64)
		return err == nil
	case KindBool:
		return v == "True" || v == "False"
	case KindChoice:
		for _, c := range s.Choices {
			if compact(c) == v {
				return true
			}
		}
		return false
	default:
		return true
	}
}
