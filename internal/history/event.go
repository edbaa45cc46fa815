// Package history implements the editor's reversible edits: events, their
// inverses, and the undo and redo stacks.
package history

import (
	"fmt"
	"image/color"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/vovakirdan/game-maker/internal/core"
	"github.com/vovakirdan/game-maker/internal/game"
	"github.com/vovakirdan/game-maker/internal/music"
	"github.com/vovakirdan/game-maker/internal/rules"
)

// Event is one edit to a game. Every event has an inverse computed from the
// state it is applied to.
type Event interface {
	fmt.Stringer
	event()
}

// AppendIndex makes AddMember append instead of insert.
const AppendIndex = -1

type (
	AddMember struct {
		Index  int
		Member game.Member
	}
	RemoveMember struct {
		Index int
	}
	MoveMember struct {
		Index    int
		From, To mgl32.Vec2
	}
	RenameMember struct {
		Index    int
		From, To string
	}
	UpdateChore struct {
		ID    game.ChoreID
		Chore rules.Chore
	}
	MoveChoreUp struct {
		ID game.ChoreID
	}
	MoveChoreDown struct {
		ID game.ChoreID
	}
	MoveQuestionUp struct {
		ID game.QuestionID
	}
	MoveQuestionDown struct {
		ID game.QuestionID
	}
	MoveDemandUp struct {
		ID game.DemandID
	}
	MoveDemandDown struct {
		ID game.DemandID
	}
	UpdateQuestion struct {
		ID       game.QuestionID
		Question rules.Question
	}
	UpdateDemand struct {
		ID     game.DemandID
		Demand rules.Demand
	}
	AddCharacter struct {
		Index int
		Char  rune
	}
	RemoveCharacter struct {
		Index int
	}
	SetStartSprite struct {
		Index    int
		From, To rules.Sprite
	}
)

// Music events carry the cursor position so undo returns to the edited page.
type (
	AddNote struct {
		Editing music.PointInMusic
		Note    music.Note
	}
	RemoveNote struct {
		Editing music.PointInMusic
		Note    music.Note
	}
	SwitchToExtendedKeyboard struct {
		Editing  music.PointInMusic
		OldNotes []music.Note
	}
	SwitchToStandardKeyboard struct {
		Editing  music.PointInMusic
		OldNotes []music.Note
	}
	SwitchToAlternativeSignature struct {
		Editing  music.PointInMusic
		OldNotes []music.Note
	}
	SwitchToStandardSignature struct {
		Editing  music.PointInMusic
		OldNotes []music.Note
	}
)

// PixelChange is the colour of one pixel before and after a stroke.
type PixelChange struct {
	Before color.NRGBA
	After  color.NRGBA
}

// SetPixels writes a batch of pixels. The same batch serves as its own
// inverse: LeftToRight writes the After colours, otherwise Before.
type SetPixels struct {
	Updates     map[core.Position]PixelChange
	LeftToRight bool
}

func (AddMember) event()                    {}
func (RemoveMember) event()                 {}
func (MoveMember) event()                   {}
func (RenameMember) event()                 {}
func (UpdateChore) event()                  {}
func (MoveChoreUp) event()                  {}
func (MoveChoreDown) event()                {}
func (MoveQuestionUp) event()               {}
func (MoveQuestionDown) event()             {}
func (MoveDemandUp) event()                 {}
func (MoveDemandDown) event()               {}
func (UpdateQuestion) event()               {}
func (UpdateDemand) event()                 {}
func (AddCharacter) event()                 {}
func (RemoveCharacter) event()              {}
func (SetStartSprite) event()               {}
func (AddNote) event()                      {}
func (RemoveNote) event()                   {}
func (SwitchToExtendedKeyboard) event()     {}
func (SwitchToStandardKeyboard) event()     {}
func (SwitchToAlternativeSignature) event() {}
func (SwitchToStandardSignature) event()    {}
func (SetPixels) event()                    {}

func (AddMember) String() string    { return "Add Member" }
func (RemoveMember) String() string { return "Remove Member" }
func (UpdateChore) String() string  { return "Update Chore" }
func (MoveChoreUp) String() string  { return "Move Chore Up" }

func (MoveChoreDown) String() string    { return "Move Chore Down" }
func (MoveQuestionUp) String() string   { return "Move Question Up" }
func (MoveQuestionDown) String() string { return "Move Question Down" }
func (MoveDemandUp) String() string     { return "Move Demand Up" }
func (MoveDemandDown) String() string   { return "Move Demand Down" }
func (AddCharacter) String() string     { return "Add letter" }
func (RemoveCharacter) String() string  { return "Remove letter" }
func (SetStartSprite) String() string   { return "Set start sprite" }
func (AddNote) String() string          { return "Add note" }
func (RemoveNote) String() string       { return "Remove note" }

func (SwitchToExtendedKeyboard) String() string     { return "Switch to extended keyboard" }
func (SwitchToStandardKeyboard) String() string     { return "Switch to standard keyboard" }
func (SwitchToAlternativeSignature) String() string { return "Switch to 3/4" }
func (SwitchToStandardSignature) String() string    { return "Switch to 4/4" }

func (e MoveMember) String() string {
	return fmt.Sprintf("Move Member from (%.0f, %.0f) to (%.0f, %.0f)", e.From.X(), e.From.Y(), e.To.X(), e.To.Y())
}

func (e RenameMember) String() string {
	return fmt.Sprintf("Rename Member from %s to %s", e.From, e.To)
}

func (e UpdateQuestion) String() string {
	return fmt.Sprintf("Update Question %d.%d.%d: %s", e.ID.Member, e.ID.Chore+1, e.ID.Question+1, rules.DescribeQuestion(e.Question))
}

func (e UpdateDemand) String() string {
	return fmt.Sprintf("Update Demand %d.%d.%d: %s", e.ID.Member, e.ID.Chore+1, e.ID.Demand+1, rules.DescribeDemand(e.Demand))
}

func (e SetPixels) String() string {
	return fmt.Sprintf("Set %d pixels", len(e.Updates))
}

// Kind returns the variant name of an event, as stored in the edit journal.
func Kind(e Event) string {
	switch e.(type) {
	case AddMember:
		return "AddMember"
	case RemoveMember:
		return "RemoveMember"
	case MoveMember:
		return "MoveMember"
	case RenameMember:
		return "RenameMember"
	case UpdateChore:
		return "UpdateChore"
	case MoveChoreUp:
		return "MoveChoreUp"
	case MoveChoreDown:
		return "MoveChoreDown"
	case MoveQuestionUp:
		return "MoveQuestionUp"
	case MoveQuestionDown:
		return "MoveQuestionDown"
	case MoveDemandUp:
		return "MoveDemandUp"
	case MoveDemandDown:
		return "MoveDemandDown"
	case UpdateQuestion:
		return "UpdateQuestion"
	case UpdateDemand:
		return "UpdateDemand"
	case AddCharacter:
		return "AddCharacter"
	case RemoveCharacter:
		return "RemoveCharacter"
	case SetStartSprite:
		return "SetStartSprite"
	case AddNote:
		return "AddNote"
	case RemoveNote:
		return "RemoveNote"
	case SwitchToExtendedKeyboard:
		return "SwitchToExtendedKeyboard"
	case SwitchToStandardKeyboard:
		return "SwitchToStandardKeyboard"
	case SwitchToAlternativeSignature:
		return "SwitchToAlternativeSignature"
	case SwitchToStandardSignature:
		return "SwitchToStandardSignature"
	case SetPixels:
		return "SetPixels"
	}
	return "Unknown"
}
