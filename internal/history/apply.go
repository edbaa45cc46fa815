package history

import (
	"slices"

	"github.com/vovakirdan/game-maker/internal/env"
	"github.com/vovakirdan/game-maker/internal/game"
	"github.com/vovakirdan/game-maker/internal/music"
	"github.com/vovakirdan/game-maker/internal/rules"
)

// Target is the state events are applied to. Selected and Music may be nil
// when the caller has no selection or music maker; events that need them are
// then rejected.
type Target struct {
	Game     *game.Game
	Selected *int
	Context  env.Context
	Music    *music.Maker
}

func (t *Target) setVar(name string, value int) {
	if t.Context != nil {
		t.Context.SetInt(name, value)
	}
}

func (t *Target) member(i int) (*game.Member, bool) {
	if t.Game == nil || i < 0 || i >= len(t.Game.Members) {
		return nil, false
	}
	return &t.Game.Members[i], true
}

func (t *Target) chore(id game.ChoreID) (*rules.Chore, bool) {
	m, ok := t.member(id.Member)
	if !ok || id.Chore < 0 || id.Chore >= len(m.TodoList) {
		return nil, false
	}
	return &m.TodoList[id.Chore], true
}

// musicAt moves the music cursor to p and reports whether p is valid.
func (t *Target) musicAt(p music.PointInMusic) bool {
	if t.Music == nil || p.Phrase < 0 || p.Phrase >= len(t.Music.Phrases) {
		return false
	}
	t.Music.Editing = p
	t.setVar(env.HalfPage, p.Page+1)
	return true
}

// Apply performs e on t and reports whether anything changed. Events that
// refer to missing members, chores or slots are rejected.
func Apply(e Event, t *Target) bool {
	switch e := e.(type) {
	case AddMember:
		if t.Game == nil {
			return false
		}
		members := t.Game.Members
		i := e.Index
		if i < 0 || i > len(members) {
			i = len(members)
		}
		t.Game.Members = slices.Insert(members, i, e.Member.Clone())
		if t.Selected != nil {
			*t.Selected = i
		}
		return true

	case RemoveMember:
		if t.Game == nil || len(t.Game.Members) <= 1 || e.Index < 0 || e.Index >= len(t.Game.Members) {
			return false
		}
		t.Game.Members = slices.Delete(t.Game.Members, e.Index, e.Index+1)
		if t.Selected != nil && *t.Selected >= len(t.Game.Members) {
			*t.Selected--
		}
		return true

	case MoveMember:
		m, ok := t.member(e.Index)
		if !ok {
			return false
		}
		m.Position = e.To
		return true

	case RenameMember:
		if _, ok := t.member(e.Index); !ok {
			return false
		}
		game.RenameMember(t.Game.Members, e.Index, e.From, e.To)
		return true

	case UpdateChore:
		c, ok := t.chore(e.ID)
		if !ok {
			return false
		}
		*c = e.Chore.Clone()
		return true

	case MoveChoreUp:
		m, ok := t.member(e.ID.Member)
		if !ok || e.ID.Chore <= 0 || e.ID.Chore >= len(m.TodoList) {
			return false
		}
		list := m.TodoList
		list[e.ID.Chore], list[e.ID.Chore-1] = list[e.ID.Chore-1], list[e.ID.Chore]
		t.setVar(env.ChoreIndex, e.ID.Chore)
		return true

	case MoveChoreDown:
		m, ok := t.member(e.ID.Member)
		if !ok || e.ID.Chore < 0 || e.ID.Chore+1 >= len(m.TodoList) {
			return false
		}
		list := m.TodoList
		list[e.ID.Chore], list[e.ID.Chore+1] = list[e.ID.Chore+1], list[e.ID.Chore]
		t.setVar(env.ChoreIndex, e.ID.Chore+2)
		return true

	case MoveQuestionUp:
		c, ok := t.chore(e.ID.ChoreID())
		q := e.ID.Question
		if !ok || q <= 0 || q >= rules.QuestionCount {
			return false
		}
		c.Questions[q], c.Questions[q-1] = c.Questions[q-1], c.Questions[q]
		t.setVar(env.QuestionIndex, q)
		return true

	case MoveQuestionDown:
		c, ok := t.chore(e.ID.ChoreID())
		q := e.ID.Question
		if !ok || q < 0 || q+1 >= rules.QuestionCount {
			return false
		}
		c.Questions[q], c.Questions[q+1] = c.Questions[q+1], c.Questions[q]
		t.setVar(env.QuestionIndex, q+2)
		return true

	case MoveDemandUp:
		c, ok := t.chore(e.ID.ChoreID())
		d := e.ID.Demand
		if !ok || d <= 0 || d >= rules.DemandCount {
			return false
		}
		c.Demands[d], c.Demands[d-1] = c.Demands[d-1], c.Demands[d]
		t.setVar(env.DemandIndex, d)
		return true

	case MoveDemandDown:
		c, ok := t.chore(e.ID.ChoreID())
		d := e.ID.Demand
		if !ok || d < 0 || d+1 >= rules.DemandCount {
			return false
		}
		c.Demands[d], c.Demands[d+1] = c.Demands[d+1], c.Demands[d]
		t.setVar(env.DemandIndex, d+2)
		return true

	case UpdateQuestion:
		c, ok := t.chore(e.ID.ChoreID())
		if !ok || e.ID.Question < 0 || e.ID.Question >= rules.QuestionCount {
			return false
		}
		c.Questions[e.ID.Question] = e.Question
		return true

	case UpdateDemand:
		c, ok := t.chore(e.ID.ChoreID())
		if !ok || e.ID.Demand < 0 || e.ID.Demand >= rules.DemandCount {
			return false
		}
		c.Demands[e.ID.Demand] = rules.CloneDemand(e.Demand)
		return true

	case AddCharacter:
		m, ok := t.member(e.Index)
		if !ok {
			return false
		}
		m.Text.Contents += string(e.Char)
		return true

	case RemoveCharacter:
		m, ok := t.member(e.Index)
		if !ok || m.Text.Contents == "" {
			return false
		}
		runes := []rune(m.Text.Contents)
		m.Text.Contents = string(runes[:len(runes)-1])
		return true

	case SetStartSprite:
		m, ok := t.member(e.Index)
		if !ok {
			return false
		}
		m.Sprite = e.To
		return true

	case AddNote:
		if !t.musicAt(e.Editing) {
			return false
		}
		t.Music.PlaceNote(e.Note)
		return true

	case RemoveNote:
		if !t.musicAt(e.Editing) {
			return false
		}
		t.Music.RemoveNotesAt(e.Note.Offset)
		return true

	case SwitchToExtendedKeyboard:
		if !t.musicAt(e.Editing) {
			return false
		}
		t.setKeyboard("Extended")
		t.Music.SwitchToExtendedKeyboard()
		t.Music.SetNotes(slices.Clone(e.OldNotes))
		return true

	case SwitchToStandardKeyboard:
		if !t.musicAt(e.Editing) {
			return false
		}
		t.setKeyboard("Standard")
		t.Music.SwitchToStandardKeyboard()
		t.Music.TrimToStandardKeyboard()
		return true

	case SwitchToAlternativeSignature:
		if !t.musicAt(e.Editing) {
			return false
		}
		t.setSignature(music.ThreeFour)
		t.Music.SwitchToAlternativeSignature()
		t.Music.SetNotes(slices.Clone(e.OldNotes))
		t.Music.TrimToAlternativeSignature()
		return true

	case SwitchToStandardSignature:
		if !t.musicAt(e.Editing) {
			return false
		}
		t.setSignature(music.FourFour)
		t.Music.SwitchToStandardSignature()
		return true

	case SetPixels:
		if t.Game == nil || t.Game.Assets == nil {
			return false
		}
		for p, change := range e.Updates {
			if e.LeftToRight {
				t.Game.Assets.SetPixel(p, change.After)
			} else {
				t.Game.Assets.SetPixel(p, change.Before)
			}
		}
		return true
	}
	return false
}

func (t *Target) setKeyboard(v string) {
	if t.Context != nil {
		t.Context.Set(env.Keyboard, v)
	}
}

func (t *Target) setSignature(s music.TimeSignature) {
	if t.Context != nil {
		t.Context.SetValue(env.Signature, s)
	}
}

// Inverse returns the event that undoes e when applied after it, computed
// from the state before e runs. It returns nil when e refers to something
// that does not exist.
func Inverse(e Event, t *Target) Event {
	switch e := e.(type) {
	case AddMember:
		if t.Game == nil {
			return nil
		}
		i := e.Index
		if i < 0 || i > len(t.Game.Members) {
			i = len(t.Game.Members)
		}
		return RemoveMember{Index: i}

	case RemoveMember:
		m, ok := t.member(e.Index)
		if !ok {
			return nil
		}
		return AddMember{Index: e.Index, Member: m.Clone()}

	case MoveMember:
		return MoveMember{Index: e.Index, From: e.To, To: e.From}
	case RenameMember:
		return RenameMember{Index: e.Index, From: e.To, To: e.From}
	case SetStartSprite:
		return SetStartSprite{Index: e.Index, From: e.To, To: e.From}

	case UpdateChore:
		c, ok := t.chore(e.ID)
		if !ok {
			return nil
		}
		return UpdateChore{ID: e.ID, Chore: c.Clone()}

	case MoveChoreUp:
		return MoveChoreDown{ID: game.ChoreID{Member: e.ID.Member, Chore: e.ID.Chore - 1}}
	case MoveChoreDown:
		return MoveChoreUp{ID: game.ChoreID{Member: e.ID.Member, Chore: e.ID.Chore + 1}}
	case MoveQuestionUp:
		id := e.ID
		id.Question--
		return MoveQuestionDown{ID: id}
	case MoveQuestionDown:
		id := e.ID
		id.Question++
		return MoveQuestionUp{ID: id}
	case MoveDemandUp:
		id := e.ID
		id.Demand--
		return MoveDemandDown{ID: id}
	case MoveDemandDown:
		id := e.ID
		id.Demand++
		return MoveDemandUp{ID: id}

	case UpdateQuestion:
		c, ok := t.chore(e.ID.ChoreID())
		if !ok || e.ID.Question < 0 || e.ID.Question >= rules.QuestionCount {
			return nil
		}
		return UpdateQuestion{ID: e.ID, Question: c.Questions[e.ID.Question]}

	case UpdateDemand:
		c, ok := t.chore(e.ID.ChoreID())
		if !ok || e.ID.Demand < 0 || e.ID.Demand >= rules.DemandCount {
			return nil
		}
		return UpdateDemand{ID: e.ID, Demand: rules.CloneDemand(c.Demands[e.ID.Demand])}

	case AddCharacter:
		return RemoveCharacter{Index: e.Index}

	case RemoveCharacter:
		m, ok := t.member(e.Index)
		if !ok {
			return nil
		}
		last := '\\'
		if runes := []rune(m.Text.Contents); len(runes) > 0 {
			last = runes[len(runes)-1]
		}
		return AddCharacter{Index: e.Index, Char: last}

	case AddNote:
		if old, ok := t.noteAt(e.Editing, e.Note.Offset); ok {
			return AddNote{Editing: e.Editing, Note: old}
		}
		return RemoveNote{Editing: e.Editing, Note: e.Note}
	case RemoveNote:
		return AddNote{Editing: e.Editing, Note: e.Note}

	case SwitchToExtendedKeyboard:
		return SwitchToStandardKeyboard{Editing: e.Editing, OldNotes: e.OldNotes}
	case SwitchToStandardKeyboard:
		return SwitchToExtendedKeyboard{Editing: e.Editing, OldNotes: e.OldNotes}
	case SwitchToAlternativeSignature:
		return SwitchToStandardSignature{Editing: e.Editing, OldNotes: e.OldNotes}
	case SwitchToStandardSignature:
		return SwitchToAlternativeSignature{Editing: e.Editing, OldNotes: e.OldNotes}

	case SetPixels:
		return SetPixels{Updates: e.Updates, LeftToRight: !e.LeftToRight}
	}
	return nil
}

// noteAt finds the note starting at offset on the track named by p without
// moving the cursor.
func (t *Target) noteAt(p music.PointInMusic, offset uint8) (music.Note, bool) {
	if t.Music == nil || p.Phrase < 0 || p.Phrase >= len(t.Music.Phrases) {
		return music.Note{}, false
	}
	probe := *t.Music
	probe.Editing = p
	for _, n := range probe.Notes() {
		if n.Offset == offset {
			return n, true
		}
	}
	return music.Note{}, false
}
