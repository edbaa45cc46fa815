package meta

import "github.com/vovakirdan/game-maker/internal/game"

// TransitionKind says which way the screen is fading.
type TransitionKind int

const (
	NoTransition TransitionKind = iota
	FadeIn
	FadeOut
)

func (k TransitionKind) String() string {
	switch k {
	case FadeIn:
		return "FadeIn"
	case FadeOut:
		return "FadeOut"
	default:
		return "None"
	}
}

// Transition keeps the previous game running while the screen fades
// between it and the next one.
type Transition struct {
	Kind     TransitionKind
	Game     *game.Game
	FadeLeft int
}

func newTransition(k TransitionKind, g *game.Game) Transition {
	return Transition{Kind: k, Game: g, FadeLeft: game.FadeLen}
}

// Active reports whether a fade is in progress.
func (t Transition) Active() bool {
	return t.Kind != NoTransition
}

// Alpha is how much of the old game still shows, from 1 down to 0.
func (t Transition) Alpha() float32 {
	if !t.Active() {
		return 0
	}
	return float32(t.FadeLeft) / game.FadeLen
}

// Advance counts down one drawn frame and ends the fade at zero.
func (t *Transition) Advance() {
	if !t.Active() {
		return
	}
	t.FadeLeft--
	if t.FadeLeft <= 0 {
		*t = Transition{}
	}
}
