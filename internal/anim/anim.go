// Package anim sequences sprites over frames with looping or play-once styles.
package anim

import "github.com/vovakirdan/game-maker/internal/core"

// Speed is shared by animations and motions.
type Speed int

const (
	SpeedVerySlow Speed = iota
	SpeedSlow
	SpeedNormal
	SpeedFast
	SpeedVeryFast
)

var speedNames = []string{"VerySlow", "Slow", "Normal", "Fast", "VeryFast"}

// Speeds lists every speed in order.
var Speeds = []Speed{SpeedVerySlow, SpeedSlow, SpeedNormal, SpeedFast, SpeedVeryFast}

// DefaultSpeed is used when a variable holds no valid speed.
const DefaultSpeed = SpeedNormal

// String returns the label shown to players.
func (s Speed) String() string {
	switch s {
	case SpeedVerySlow:
		return "Very Slow"
	case SpeedSlow:
		return "Slow"
	case SpeedNormal:
		return "Normal"
	case SpeedFast:
		return "Fast"
	case SpeedVeryFast:
		return "Very Fast"
	}
	return "Unknown"
}

// Name returns the variant name used in saved games.
func (s Speed) Name() string { return core.EnumName(s, speedNames) }

// ParseSpeed parses a variant name.
func ParseSpeed(s string) (Speed, error) { return core.ParseEnum[Speed](s, speedNames) }

func (s Speed) MarshalText() ([]byte, error) { return []byte(s.Name()), nil }

func (s *Speed) UnmarshalText(b []byte) error {
	v, err := ParseSpeed(string(b))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// FramesPerStep is how long each animation frame is shown.
func (s Speed) FramesPerStep() int {
	switch s {
	case SpeedVerySlow:
		return 60
	case SpeedSlow:
		return 30
	case SpeedFast:
		return 8
	case SpeedVeryFast:
		return 4
	default:
		return 15
	}
}

// BaseMotionSpeed is the distance in pixels a Normal motion covers per tick.
const BaseMotionSpeed float32 = 2.0

// PixelsPerTick is the motion distance for this speed.
func (s Speed) PixelsPerTick() float32 {
	var m float32
	switch s {
	case SpeedVerySlow:
		m = 0.25
	case SpeedSlow:
		m = 0.5
	case SpeedFast:
		m = 2
	case SpeedVeryFast:
		m = 4
	default:
		m = 1
	}
	return m * BaseMotionSpeed
}

// Style decides what happens when the last sprite has been shown.
type Style int

const (
	StyleLoop Style = iota
	StylePlayOnce
)

var styleNames = []string{"Loop", "PlayOnce"}

func (s Style) String() string {
	if s == StylePlayOnce {
		return "Play Once"
	}
	return "Loop"
}

// Name returns the variant name used in saved games.
func (s Style) Name() string { return core.EnumName(s, styleNames) }

// ParseStyle parses a variant name.
func ParseStyle(s string) (Style, error) { return core.ParseEnum[Style](s, styleNames) }

func (s Style) MarshalText() ([]byte, error) { return []byte(s.Name()), nil }

func (s *Style) UnmarshalText(b []byte) error {
	v, err := ParseStyle(string(b))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// Tracker steps through a sprite list.
type Tracker[T any] struct {
	style       Style
	speed       Speed
	sprites     []T
	framesUntil int
	index       int
}

func startedTracker[T any](sprites []T, speed Speed, style Style) Tracker[T] {
	return Tracker[T]{
		style:       style,
		speed:       speed,
		sprites:     sprites,
		framesUntil: speed.FramesPerStep(),
	}
}

// update counts down and advances the index when the countdown runs out.
func (t *Tracker[T]) update() (T, bool) {
	var zero T
	t.framesUntil--
	if t.framesUntil != 0 || len(t.sprites) == 0 {
		return zero, false
	}
	t.index = (t.index + 1) % len(t.sprites)
	t.framesUntil = t.speed.FramesPerStep()
	return t.sprites[t.index], true
}

func (t *Tracker[T]) isFinished() bool {
	return t.index == 0 && t.style == StylePlayOnce
}

// State is the phase of an Animation.
type State int

const (
	None State = iota
	Animating
	Finished
)

// Animation is None, Animating with a tracker, or Finished.
// The zero value is None.
type Animation[T any] struct {
	state   State
	tracker Tracker[T]
}

// Started begins animating sprites. The caller shows sprites[0] itself.
func Started[T any](sprites []T, speed Speed, style Style) Animation[T] {
	return Animation[T]{
		state:   Animating,
		tracker: startedTracker(append([]T(nil), sprites...), speed, style),
	}
}

// State returns the current phase.
func (a *Animation[T]) State() State { return a.state }

// IsFinished reports whether a play-once animation completed on the last update.
func (a *Animation[T]) IsFinished() bool { return a.state == Finished }

// Update advances one frame and returns the sprite to show when it changes.
// Finished decays to None on the following update.
func (a *Animation[T]) Update() (T, bool) {
	var zero T
	switch a.state {
	case Animating:
		sprite, changed := a.tracker.update()
		if changed && a.tracker.isFinished() {
			a.state = Finished
			return zero, false
		}
		return sprite, changed
	default:
		*a = Animation[T]{}
		return zero, false
	}
}

// Clone returns an animation that does not share the sprite slice.
func (a Animation[T]) Clone() Animation[T] {
	c := a
	c.tracker.sprites = append([]T(nil), a.tracker.sprites...)
	return c
}
