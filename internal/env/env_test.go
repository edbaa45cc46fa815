package env

import (
	"testing"

	"github.com/vovakirdan/game-maker/internal/anim"
	"github.com/vovakirdan/game-maker/internal/rng"
	"github.com/vovakirdan/game-maker/internal/rules"
)

func TestContextGettersIgnoreSpaces(t *testing.T) {
	c := Context{
		Time:           " 1 2 ",
		PlaybackRate:   "1. 5",
		DirectionNorth: "True",
		Speed:          "Very Fast",
		ChoreIndex:     "3",
	}

	if n, ok := c.Int(Time); !ok || n != 12 {
		t.Errorf("Int(Time) = %d, %v", n, ok)
	}
	if f, ok := c.Float(PlaybackRate); !ok || f != 1.5 {
		t.Errorf("Float(PlaybackRate) = %v, %v", f, ok)
	}
	if !c.Bool(DirectionNorth) || c.Bool(DirectionSouth) {
		t.Error("Bool does not follow the stored flags")
	}
	if s, ok := Parse(c, Speed, anim.ParseSpeed); !ok || s != anim.SpeedVeryFast {
		t.Errorf("Parse(Speed) = %v, %v", s, ok)
	}
	if got := c.Index(ChoreIndex); got != 2 {
		t.Errorf("Index(ChoreIndex) = %d, expected 2", got)
	}
}

func TestContextFallbacks(t *testing.T) {
	c := Context{Tempo: "fast", QuestionIndex: "0"}

	tests := []struct {
		name string
		got  int
		want int
	}{
		{"malformed int", c.IntOr(Tempo, 120), 120},
		{"missing int", c.IntOr(NoteLength, 1), 1},
		{"missing index", c.Index(DemandIndex), 0},
		{"zero index", c.Index(QuestionIndex), 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.got != tc.want {
				t.Errorf("got %d, expected %d", tc.got, tc.want)
			}
		})
	}
	if _, ok := Parse(c, Speed, anim.ParseSpeed); ok {
		t.Error("missing value should not parse")
	}
}

func TestHasChecksKnownTypes(t *testing.T) {
	c := Context{
		Tempo:          "12o",
		Signature:      "3/4",
		Keyboard:       "Huge",
		"My Var":       "anything",
		GameSize:       "Big",
		AnimationIndex: "2",
	}
	tests := []struct {
		name string
		want bool
	}{
		{Tempo, false},
		{Signature, true},
		{Keyboard, false},
		{"My Var", true},
		{GameSize, true},
		{AnimationIndex, true},
		{MemberName, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := c.Has(tc.name); got != tc.want {
				t.Errorf("Has(%q) = %v, expected %v", tc.name, got, tc.want)
			}
		})
	}
}

func TestInitVars(t *testing.T) {
	e := New(rng.New(7))
	e.Difficulty = Tough
	e.InitVars("Examples", "Start", rules.Big, rules.Infinite)

	want := map[string]string{
		GameFileName: "Start",
		Collection:   "Examples",
		GameSize:     "Big",
		Length:       "Infinite",
		Difficulty:   "Tough",
		Image:        "green.png",
		Font:         "pixolletta.png",
		Game:         "Start",
	}
	for k, v := range want {
		if got := e.Context.Text(k); got != v {
			t.Errorf("%s = %q, expected %q", k, got, v)
		}
	}
	if e.PlaybackRate != 1 {
		t.Errorf("PlaybackRate = %v", e.PlaybackRate)
	}
}

func TestParseDifficulty(t *testing.T) {
	d, err := ParseDifficulty("Challenge")
	if err != nil || d != Challenge {
		t.Errorf("ParseDifficulty = %v, %v", d, err)
	}
	if _, err := ParseDifficulty("Impossible"); err == nil {
		t.Error("expected an error for an unknown difficulty")
	}
}

func TestKnownIsSorted(t *testing.T) {
	names := Known()
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Fatalf("Known() not sorted at %d: %q >= %q", i, names[i-1], names[i])
		}
	}
	if entry, ok := Lookup(Speed); !ok || entry.Kind != KindChoice {
		t.Errorf("Lookup(Speed) = %+v, %v", entry, ok)
	}
}
