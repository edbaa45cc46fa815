package history

import (
	"image/color"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/game-maker/internal/cartridge"
	"github.com/vovakirdan/game-maker/internal/core"
	"github.com/vovakirdan/game-maker/internal/env"
	"github.com/vovakirdan/game-maker/internal/game"
	"github.com/vovakirdan/game-maker/internal/music"
	"github.com/vovakirdan/game-maker/internal/rng"
	"github.com/vovakirdan/game-maker/internal/rules"
)

func newTarget(t *testing.T) *Target {
	t.Helper()
	c := cartridge.New(rules.Small, "", "")
	c.Members = append(c.Members, cartridge.Member{
		Name:     "Ball",
		Position: core.Pos(40, 50),
		Sprite:   rules.Sprite{Index: 1, Size: rules.SquareSize(16)},
		Text:     rules.PlainText("hi"),
	})
	g, err := game.FromCartridge(c, rng.New(3))
	require.NoError(t, err)
	selected := 0
	return &Target{Game: g, Selected: &selected, Context: make(env.Context), Music: music.NewMaker()}
}

func encoded(t *testing.T, g *game.Game) string {
	t.Helper()
	c, err := g.ToCartridge()
	require.NoError(t, err)
	data, err := c.Encode()
	require.NoError(t, err)
	return string(data)
}

func ball(t *Target) *game.Member {
	i, _ := t.Game.MemberIndex("Ball")
	return &t.Game.Members[i]
}

func TestUndoRedoRoundTrip(t *testing.T) {
	target := newTarget(t)
	s := NewStack(nil)
	// Re-encode the untouched sheet so both sides compare encoded pixels.
	target.Game.Assets.SetPixel(core.Pos(3, 4), color.NRGBA{})
	before := encoded(t, target.Game)

	ballIndex, _ := target.Game.MemberIndex("Ball")
	events := []Event{
		AddMember{Index: AppendIndex, Member: game.NewMember("Paddle", mgl32.Vec2{10, 10}, rules.NoSprite(), rules.PlainText(""))},
		MoveMember{Index: ballIndex, From: mgl32.Vec2{40, 50}, To: mgl32.Vec2{60, 70}},
		RenameMember{Index: ballIndex, From: "Ball", To: "Bouncer"},
		UpdateQuestion{ID: game.QuestionID{Member: ballIndex, Chore: 0, Question: 0}, Question: rules.IsSwitchSetTo{Name: "Paddle", Switch: rules.On}},
		UpdateDemand{ID: game.DemandID{Member: ballIndex, Chore: 0, Demand: 0}, Demand: rules.SetText{Text: rules.PlainText("hit")}},
		MoveChoreDown{ID: game.ChoreID{Member: ballIndex, Chore: 0}},
		AddCharacter{Index: ballIndex, Char: '!'},
		RemoveCharacter{Index: ballIndex},
		RemoveCharacter{Index: ballIndex},
		SetStartSprite{Index: ballIndex, From: rules.Sprite{Index: 1, Size: rules.SquareSize(16)}, To: rules.Sprite{Index: 2, Size: rules.SquareSize(32)}},
		SetPixels{Updates: map[core.Position]PixelChange{
			core.Pos(3, 4): {After: color.NRGBA{R: 255, A: 255}},
		}, LeftToRight: true},
	}
	steps := s.Record(events, target)
	require.Len(t, steps, len(events))

	after := encoded(t, target.Game)
	require.NotEqual(t, before, after)

	for range events {
		_, ok := s.UndoStep(target)
		require.True(t, ok)
	}
	assert.Equal(t, before, encoded(t, target.Game))
	assert.False(t, s.CanUndo())

	for range events {
		_, ok := s.RedoStep(target)
		require.True(t, ok)
	}
	assert.Equal(t, after, encoded(t, target.Game))
	assert.False(t, s.CanRedo())
}

func TestRemoveLastMemberIsRejected(t *testing.T) {
	target := newTarget(t)
	// Keep only one member.
	target.Game.Members = target.Game.Members[:1]
	s := NewStack(nil)

	steps := s.Record([]Event{RemoveMember{Index: 0}}, target)
	assert.Empty(t, steps)
	assert.Empty(t, s.Undo)
	assert.Len(t, target.Game.Members, 1)
}

func TestRemoveMemberAdjustsSelection(t *testing.T) {
	target := newTarget(t)
	last := len(target.Game.Members) - 1
	*target.Selected = last
	s := NewStack(nil)

	s.Record([]Event{RemoveMember{Index: last}}, target)
	assert.Equal(t, last-1, *target.Selected)

	s.UndoStep(target)
	assert.Equal(t, "Ball", target.Game.Members[last].Name)
	assert.Equal(t, last, *target.Selected)
}

func TestNewEditKeepsUndoneSteps(t *testing.T) {
	target := newTarget(t)
	s := NewStack(nil)
	m := ball(target)
	i, _ := target.Game.MemberIndex("Ball")

	s.Record([]Event{AddCharacter{Index: i, Char: 'a'}}, target)
	s.UndoStep(target)
	require.Equal(t, "hi", m.Text.Contents)

	s.Record([]Event{AddCharacter{Index: i, Char: 'b'}}, target)
	require.Equal(t, "hib", m.Text.Contents)
	require.Len(t, s.Undo, 3)
	assert.Empty(t, s.Redo)

	want := []string{"hi", "hia", "hi"}
	for _, w := range want {
		_, ok := s.UndoStep(target)
		require.True(t, ok)
		assert.Equal(t, w, m.Text.Contents)
	}
	assert.Equal(t, "Undo Add letter", s.Redo[1].Name())
}

func TestMoveChoreBounds(t *testing.T) {
	target := newTarget(t)
	i, _ := target.Game.MemberIndex("Ball")

	tests := []struct {
		name  string
		event Event
		want  bool
	}{
		{"up from first", MoveChoreUp{ID: game.ChoreID{Member: i, Chore: 0}}, false},
		{"down from last", MoveChoreDown{ID: game.ChoreID{Member: i, Chore: rules.ChoreCount - 1}}, false},
		{"up from second", MoveChoreUp{ID: game.ChoreID{Member: i, Chore: 1}}, true},
		{"question up from first", MoveQuestionUp{ID: game.QuestionID{Member: i}}, false},
		{"demand down from last", MoveDemandDown{ID: game.DemandID{Member: i, Demand: rules.DemandCount - 1}}, false},
		{"missing member", MoveChoreDown{ID: game.ChoreID{Member: 99}}, false},
		{"empty text", RemoveCharacter{Index: 0}, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Apply(tc.event, target); got != tc.want {
				t.Errorf("got %v, expected %v", got, tc.want)
			}
		})
	}
	assert.Equal(t, "1", target.Context.Text(env.ChoreIndex))
}

func TestMusicEvents(t *testing.T) {
	target := newTarget(t)
	s := NewStack(nil)
	at := music.PointInMusic{Phrase: 0, Track: 0, Page: 1}

	s.Record([]Event{AddNote{Editing: at, Note: music.NewNote(4, 10)}}, target)
	require.Equal(t, []music.Note{music.NewNote(4, 10)}, target.Music.Notes())
	assert.Equal(t, "2", target.Context.Text(env.HalfPage))

	s.Record([]Event{AddNote{Editing: at, Note: music.NewNote(4, 12)}}, target)
	require.Equal(t, []music.Note{music.NewNote(4, 12)}, target.Music.Notes())

	s.UndoStep(target)
	assert.Equal(t, []music.Note{music.NewNote(4, 10)}, target.Music.Notes())
	assert.True(t, target.Music.Take(music.RefreshSong))

	old := []music.Note{music.NewNote(0, 2), music.NewNote(30, 10)}
	target.Music.SetNotes(old)
	s.Record([]Event{SwitchToExtendedKeyboard{Editing: at, OldNotes: old}}, target)
	require.True(t, target.Music.IsExtendedKeyboard())
	assert.Equal(t, "Extended", target.Context.Text(env.Keyboard))

	s.UndoStep(target)
	assert.False(t, target.Music.IsExtendedKeyboard())
	assert.Equal(t, []music.Note{music.NewNote(30, 10)}, target.Music.Notes())

	s.RedoStep(target)
	assert.Equal(t, old, target.Music.Notes())
}

func TestSetPixelsSharesBatch(t *testing.T) {
	target := newTarget(t)
	p := core.Pos(1, 1)
	e := SetPixels{Updates: map[core.Position]PixelChange{
		p: {Before: color.NRGBA{}, After: color.NRGBA{G: 200, A: 255}},
	}, LeftToRight: true}

	back := Inverse(e, target)
	require.IsType(t, SetPixels{}, back)
	assert.False(t, back.(SetPixels).LeftToRight)
	assert.Equal(t, "Set 1 pixels", e.String())

	require.True(t, Apply(e, target))
	assert.Equal(t, color.NRGBA{G: 200, A: 255}, target.Game.Assets.Pixel(p))
	require.True(t, Apply(back, target))
	assert.Equal(t, color.NRGBA{}, target.Game.Assets.Pixel(p))
}

func TestEventNames(t *testing.T) {
	tests := []struct {
		event Event
		want  string
	}{
		{AddMember{}, "Add Member"},
		{RenameMember{From: "A", To: "B"}, "Rename Member from A to B"},
		{MoveMember{From: mgl32.Vec2{1, 2}, To: mgl32.Vec2{3, 4}}, "Move Member from (1, 2) to (3, 4)"},
		{RemoveCharacter{}, "Remove letter"},
	}
	for _, tc := range tests {
		t.Run(tc.want, func(t *testing.T) {
			if got := tc.event.String(); got != tc.want {
				t.Errorf("got %q, expected %q", got, tc.want)
			}
		})
	}
	step := Step{Forward: AddNote{}, Direction: Back}
	assert.Equal(t, "Undo Add note", step.Name())
	assert.Equal(t, "SetStartSprite", Kind(SetStartSprite{}))
}
