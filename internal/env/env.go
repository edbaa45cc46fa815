// Package env holds the environment shared by every game during a tick: the
// score, difficulty, playback rate, the shared rng and the context variables
// that connect editor widgets to rules.
package env

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vovakirdan/game-maker/internal/core"
	"github.com/vovakirdan/game-maker/internal/game"
	"github.com/vovakirdan/game-maker/internal/rng"
	"github.com/vovakirdan/game-maker/internal/rules"
)

// DifficultyLevel selects which intro text a game shows.
type DifficultyLevel int

const (
	Normal DifficultyLevel = iota
	Challenge
	Tough
)

var difficultyNames = []string{"Normal", "Challenge", "Tough"}

func (d DifficultyLevel) String() string { return core.EnumName(d, difficultyNames) }

// ParseDifficulty parses a difficulty name.
func ParseDifficulty(s string) (DifficultyLevel, error) {
	return core.ParseEnum[DifficultyLevel](compact(s), difficultyNames)
}

func compact(s string) string {
	return strings.ReplaceAll(s, " ", "")
}

// Context is the string keyed variable bag. Known names and their types are
// listed in keys.go; getters ignore spaces in stored values.
type Context map[string]string

// Set stores a value.
func (c Context) Set(name, value string) {
	c[name] = value
}

// SetValue stores the display form of v.
func (c Context) SetValue(name string, v fmt.Stringer) {
	c[name] = v.String()
}

// SetInt stores an integer.
func (c Context) SetInt(name string, v int) {
	c[name] = strconv.Itoa(v)
}

// Get returns the raw value.
func (c Context) Get(name string) (string, bool) {
	v, ok := c[name]
	return v, ok
}

// Text returns the raw value or "".
func (c Context) Text(name string) string {
	return c[name]
}

// Int parses an integer value.
func (c Context) Int(name string) (int, bool) {
	v, ok := c[name]
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(compact(v))
	if err != nil {
		return 0, false
	}
	return n, true
}

// IntOr parses an integer value with a fallback.
func (c Context) IntOr(name string, fallback int) int {
	if n, ok := c.Int(name); ok {
		return n
	}
	return fallback
}

// Float parses a float value.
func (c Context) Float(name string) (float64, bool) {
	v, ok := c[name]
	if !ok {
		return 0, false
	}
	f, err := strconv.ParseFloat(compact(v), 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// Bool reports whether the value is "True".
func (c Context) Bool(name string) bool {
	return compact(c[name]) == "True"
}

// Has reports whether the value exists and parses for its known type.
func (c Context) Has(name string) bool {
	v, ok := c[name]
	if !ok {
		return false
	}
	entry, ok := Lookup(name)
	return !ok || entry.Accepts(v)
}

// Index reads a one based index and returns it zero based. Missing or
// malformed values give 0.
func (c Context) Index(name string) int {
	return max(c.IntOr(name, 1)-1, 0)
}

// Parse reads a value through parse after removing spaces.
func Parse[T any](c Context, name string, parse func(string) (T, error)) (T, bool) {
	var zero T
	v, ok := c[name]
	if !ok {
		return zero, false
	}
	out, err := parse(compact(v))
	if err != nil {
		return zero, false
	}
	return out, true
}

// Environment is the state shared by the editor game and the game being
// edited.
type Environment struct {
	Score        int32
	Difficulty   DifficultyLevel
	PlaybackRate float64
	Context      Context
	Rng          *rng.SeededRng
}

// New creates an environment with an empty context.
func New(r *rng.SeededRng) *Environment {
	return &Environment{
		PlaybackRate: 1,
		Context:      make(Context),
		Rng:          r,
	}
}

// InitVars seeds the context with the game being edited.
func (e *Environment) InitVars(collection, gameName string, size rules.GameSize, length rules.Length) {
	e.Context.Set(GameFileName, gameName)
	e.Context.Set(Collection, collection)
	e.Context.SetValue(GameSize, size)
	e.Context.SetValue(Length, length)
	e.Context.SetValue(Difficulty, e.Difficulty)
	e.Context.Set(Image, game.DefaultImageFilename)
	e.Context.Set(Font, game.DefaultFontFilename)
	e.Context.Set(Game, gameName)
}
