// Package edit holds the editor's state and turns the editor's context
// variables into rule values.
package edit

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"

	"github.com/vovakirdan/game-maker/internal/core"
	"github.com/vovakirdan/game-maker/internal/env"
	"github.com/vovakirdan/game-maker/internal/game"
	"github.com/vovakirdan/game-maker/internal/history"
	"github.com/vovakirdan/game-maker/internal/music"
	"github.com/vovakirdan/game-maker/internal/rules"
)

// NoEditText marks that no member is receiving typed characters.
const NoEditText = -1

// AssetChoices are the files the editor can pick from.
type AssetChoices struct {
	Games  []string
	Images []string
	Music  []string
}

// Editor is the state of one editing session. The copies of the edited game
// live in an arena owned by the metagame and are referred to by id.
type Editor struct {
	SelectedIndex int
	Page          int
	EditTextIndex int
	Choices       AssetChoices
	Animation     []rules.Sprite

	// Hover cycling over overlapping members.
	IndexTracker           int
	PreviousHoveredIndices []int

	// Where a move drag started.
	OriginalPosition      mgl32.Vec2
	OriginalMousePosition core.Position

	History *history.Stack

	InnerCopy  uuid.UUID
	PausedCopy uuid.UUID
}

// New creates an editor with an empty history. A nil logger discards
// history messages.
func New(logger core.Logger) *Editor {
	return &Editor{
		EditTextIndex: NoEditText,
		History:       history.NewStack(logger),
	}
}

// IsEditingText reports whether typed characters go to a member.
func (e *Editor) IsEditingText() bool {
	return e.EditTextIndex != NoEditText
}

// HasInnerCopy reports whether a playing copy of the edited game exists.
func (e *Editor) HasInnerCopy() bool {
	return e.InnerCopy != uuid.Nil
}

// HasPausedCopy reports whether the playing copy is paused.
func (e *Editor) HasPausedCopy() bool {
	return e.PausedCopy != uuid.Nil
}

// Target returns the history target for the edited game. Events that change
// the selection write through to the editor.
func (e *Editor) Target(g *game.Game, ctx env.Context, m *music.Maker) *history.Target {
	return &history.Target{
		Game:     g,
		Selected: &e.SelectedIndex,
		Context:  ctx,
		Music:    m,
	}
}

// Selected returns the selected member of g, if the selection is valid.
func (e *Editor) Selected(g *game.Game) (*game.Member, bool) {
	if g == nil || e.SelectedIndex < 0 || e.SelectedIndex >= len(g.Members) {
		return nil, false
	}
	return &g.Members[e.SelectedIndex], true
}

// ClampSelection keeps the selection inside a list of n members.
func (e *Editor) ClampSelection(n int) {
	e.SelectedIndex = core.Clamp(e.SelectedIndex, 0, max(n-1, 0))
}

// AnimationSprite returns the scratch animation sprite at i.
func (e *Editor) AnimationSprite(i int) (rules.Sprite, bool) {
	if i < 0 || i >= len(e.Animation) {
		return rules.Sprite{}, false
	}
	return e.Animation[i], true
}
