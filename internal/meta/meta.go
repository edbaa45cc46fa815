// Package meta runs the metagame: the game on screen (a menu, a player game
// or the editor), the game being edited inside it, and the fades between
// games. One call to Update is one frame of all of them.
package meta

import (
	"math"

	"github.com/vovakirdan/game-maker/internal/core"
	"github.com/vovakirdan/game-maker/internal/edit"
	"github.com/vovakirdan/game-maker/internal/engine"
	"github.com/vovakirdan/game-maker/internal/env"
	"github.com/vovakirdan/game-maker/internal/game"
	"github.com/vovakirdan/game-maker/internal/history"
	"github.com/vovakirdan/game-maker/internal/library"
	"github.com/vovakirdan/game-maker/internal/music"
	"github.com/vovakirdan/game-maker/internal/nav"
	"github.com/vovakirdan/game-maker/internal/rng"
	"github.com/vovakirdan/game-maker/internal/rules"
)

// Outcome tells the host whether to keep running.
type Outcome int

const (
	Continue Outcome = iota
	Quit
)

// Editor modes stored in the Editor Mode variable.
const (
	SelectMode = "Select"
	MoveMode   = "Move"
)

// Music modes stored in the Music Mode variable.
const (
	AddMode    = "Add"
	RemoveMode = "Remove"
)

// removeHoldFrames is how long the right button must be held before the
// music maker switches to removing notes.
const removeHoldFrames = 8

// Metagame is the state the host keeps between frames.
type Metagame struct {
	// Game is on screen. Subgame is the game being edited, shown through
	// the screen members of Game.
	Game       *game.Game
	Subgame    *game.Game
	Transition Transition

	Env      *env.Environment
	Nav      *nav.Navigation
	Editor   *edit.Editor
	Dummy    *edit.Editor
	DrawTool *edit.DrawTool
	Music    *music.Maker
	Copies   *Arena

	Library library.Library
	Audio   Audio
	Journal *Journal
	Log     core.Logger

	// Sounds and Steps hold what the last Update produced.
	Sounds *game.SoundQueue
	Steps  []history.Step

	rightHeld int
}

// New sets up a metagame showing g, started from start, with sub as the
// game being edited and edited as its link. lib may be nil when no menu
// action touches files.
func New(g, sub *game.Game, start, edited nav.Link, e *env.Environment, lib library.Library) *Metagame {
	if e == nil {
		e = env.New(rng.New(0))
	}
	m := &Metagame{
		Game:     g,
		Subgame:  sub,
		Env:      e,
		Nav:      nav.New(start),
		Editor:   edit.New(nil),
		Dummy:    edit.New(nil),
		DrawTool: edit.NewDrawTool(),
		Music:    music.NewMaker(),
		Copies:   NewArena(),
		Library:  lib,
		Audio:    NopAudio{},
		Log:      core.NopLogger{},
		Sounds:   game.NewSoundQueue(),
	}
	e.InitVars(edited.Collection, edited.Game, sub.Size, sub.Length)
	defaultVar(e.Context, env.EditorMode, SelectMode)
	defaultVar(e.Context, env.MusicMode, AddMode)
	defaultVar(e.Context, env.HalfPage, "1")
	defaultVar(e.Context, env.PlaybackRate, "1")
	return m
}

func defaultVar(c env.Context, name, value string) {
	if _, ok := c.Get(name); !ok {
		c.Set(name, value)
	}
}

// SetLogger sends editor and history messages to l.
func (m *Metagame) SetLogger(l core.Logger) {
	if l == nil {
		l = core.NopLogger{}
	}
	m.Log = l
	m.Editor.History = history.NewStack(l)
}

func (m *Metagame) target() *history.Target {
	return m.Editor.Target(m.Subgame, m.Env.Context, m.Music)
}

func (m *Metagame) frame(mouse core.Mouse, in core.Input, sounds *game.SoundQueue, e *edit.Editor, sub *game.Game) engine.Frame {
	return engine.Frame{
		Mouse:     mouse,
		Shortcuts: in.Shortcuts,
		Sounds:    sounds,
		Editor:    e,
		Env:       m.Env,
		DrawTool:  m.DrawTool,
		Music:     m.Music,
		Subgame:   sub,
		Log:       m.Log,
	}
}

// Update runs one frame: the fading game, the game on screen and, while it
// is playing, the edited game. Editor input becomes history events and menu
// actions are carried out last.
func (m *Metagame) Update(in core.Input) (Outcome, error) {
	m.Editor.EditTextIndex = edit.NoEditText
	sounds := game.NewSoundQueue()
	m.Sounds = sounds
	m.Steps = nil

	outer := m.frame(in.Outer, in, sounds, m.Editor, m.Subgame)
	if m.Transition.Active() {
		engine.Tick(m.Transition.Game, outer)
	}
	res := engine.Tick(m.Game, outer)
	m.syncSubgame()
	events := res.Events

	if m.Editor.HasInnerCopy() {
		engine.Tick(m.Subgame, m.frame(in.Inner, in, sounds, m.Dummy, nil))
	}
	m.playSounds(sounds)

	events = append(events, m.editText(in)...)
	events = append(events, m.selectAndMove(in)...)
	events = append(events, m.updateMusicMaker(in)...)
	events = append(events, m.magicMembers(in)...)

	undid := m.undoRedo(in)
	if undid || len(events) > 0 {
		m.Music.RefreshSong()
	}

	m.Steps = m.Editor.History.Record(events, m.target())
	if err := m.Journal.Log(m.Env.Context.Text(env.Game), "Record", m.Steps...); err != nil {
		m.Log.Debug("journal write failed", "error", err)
	}

	return m.applyActions(res.Actions)
}

// syncSubgame copies the settings chosen in the editor onto the edited game.
func (m *Metagame) syncSubgame() {
	ctx := m.Env.Context
	if size, ok := env.Parse(ctx, env.GameSize, rules.ParseGameSize); ok {
		m.Subgame.Size = size
	}
	if length, ok := env.Parse(ctx, env.Length, rules.ParseLength); ok {
		m.Subgame.Length = length
	}
	if d, ok := env.Parse(ctx, env.Difficulty, env.ParseDifficulty); ok {
		m.Env.Difficulty = d
	}
	rate, ok := ctx.Float(env.PlaybackRate)
	if !ok {
		rate = 1
	}
	m.Env.PlaybackRate = rate
}

func (m *Metagame) playSounds(q *game.SoundQueue) {
	if q.Stopped {
		m.Audio.StopSounds()
		return
	}
	if names := q.Names(); len(names) > 0 {
		m.Audio.PlaySounds(names)
	}
}

// editText types into the member named by an EditText demand this frame.
// Without one, typing on an editable screen edits the selected member of
// the subgame through history events.
func (m *Metagame) editText(in core.Input) []history.Event {
	if m.Editor.IsEditingText() {
		i := m.Editor.EditTextIndex
		if i < len(m.Game.Members) {
			text := &m.Game.Members[i].Text.Contents
			for _, ch := range in.Chars {
				switch {
				case ch == core.BackspaceChar:
					*text = popRune(*text)
				case ch >= core.FirstLegitKey:
					*text += string(ch)
				}
			}
		}
		return nil
	}
	if !m.Game.HasEditableScreen() || m.Editor.HasInnerCopy() {
		return nil
	}
	var events []history.Event
	for _, ch := range in.Chars {
		switch {
		case ch == core.BackspaceChar:
			events = append(events, history.RemoveCharacter{Index: m.Editor.SelectedIndex})
		case ch >= core.FirstLegitKey:
			events = append(events, history.AddCharacter{Index: m.Editor.SelectedIndex, Char: ch})
		}
	}
	return events
}

func popRune(s string) string {
	r := []rune(s)
	if len(r) == 0 {
		return s
	}
	return string(r[:len(r)-1])
}

// selectAndMove handles clicks on the editable screen. A left click selects
// from the members under the mouse. Holding the middle button, or the left
// button in move mode, drags the selected member and records the move when
// the button is let go.
func (m *Metagame) selectAndMove(in core.Input) []history.Event {
	if !m.Game.HasEditableScreen() || m.Editor.HasInnerCopy() {
		return nil
	}
	ctx := m.Env.Context
	e := m.Editor
	out := in.Outer

	if ctx.Text(env.EditorMode) == SelectMode && out.Left.IsPressed() {
		hovered := edit.HoveredInGeneralArea(m.Subgame.Members, in.Inner.Position, m.Subgame.Assets.Font)
		e.SelectHovered(hovered)
	}

	if out.Middle.IsPressed() {
		ctx.Set(env.EditorMode, MoveMode)
	} else if out.Middle.IsReleased() {
		ctx.Set(env.EditorMode, SelectMode)
	}
	moving := ctx.Text(env.EditorMode) == MoveMode

	selected, ok := e.Selected(m.Subgame)
	if !ok {
		return nil
	}

	var events []history.Event
	if (moving && out.Left.IsReleased()) || out.Middle.IsReleased() {
		events = append(events, history.MoveMember{
			Index: e.SelectedIndex,
			From:  e.OriginalPosition,
			To:    selected.Position,
		})
	}
	if moving && (out.Left.IsPressed() || out.Middle.IsPressed()) {
		e.OriginalPosition = selected.Position
		e.OriginalMousePosition = in.Inner.Position
	}
	if moving && (out.Left.IsDown() || out.Middle.IsDown()) {
		selected.Position = selected.Position.Add(in.Inner.Drag.Vec())
	}
	return events
}

// updateMusicMaker keeps the music maker in step with its widgets and turns
// clicks on the note grid into note events.
func (m *Metagame) updateMusicMaker(in core.Input) []history.Event {
	if _, ok := m.Game.MusicMakerMember(); !ok {
		return nil
	}
	ctx := m.Env.Context
	mm := m.Music
	var events []history.Event

	extended := ctx.Text(env.Keyboard) == "Extended"
	if extended != mm.IsExtendedKeyboard() {
		old := append([]music.Note(nil), mm.Notes()...)
		if extended {
			events = append(events, history.SwitchToExtendedKeyboard{Editing: mm.Editing, OldNotes: old})
			mm.SwitchToExtendedKeyboard()
		} else {
			events = append(events, history.SwitchToStandardKeyboard{Editing: mm.Editing, OldNotes: old})
			mm.SwitchToStandardKeyboard()
		}
	}
	alternative := ctx.Text(env.Signature) == music.ThreeFour.String()
	if alternative != mm.IsAlternativeSignature() {
		old := append([]music.Note(nil), mm.Notes()...)
		if alternative {
			events = append(events, history.SwitchToAlternativeSignature{Editing: mm.Editing, OldNotes: old})
			mm.SwitchToAlternativeSignature()
		} else {
			events = append(events, history.SwitchToStandardSignature{Editing: mm.Editing, OldNotes: old})
			mm.SwitchToStandardSignature()
		}
	}

	mm.Editing.Page = ctx.Index(env.HalfPage)

	out := in.Outer
	if out.Right.IsDown() {
		m.rightHeld++
	} else {
		m.rightHeld = 0
	}
	if m.rightHeld > removeHoldFrames {
		ctx.Set(env.MusicMode, RemoveMode)
	}
	if out.Right.IsReleased() {
		ctx.Set(env.MusicMode, AddMode)
	}

	if note, ok := mm.NoteUnder(out.Position.X, out.Position.Y); ok {
		mode := ctx.Text(env.MusicMode)
		if mode == AddMode && out.Left.IsReleased() && mm.IsNotePossible(note.Offset) {
			mm.RemoveNotesAt(note.Offset)
			events = append(events, history.AddNote{Editing: mm.Editing, Note: note})
		}
		if (mode == RemoveMode && out.Left.IsDown()) || out.Right.IsDown() {
			if found, ok := mm.FindNoteAt(note.Offset, note.Pitch); ok {
				events = append(events, history.RemoveNote{Editing: mm.Editing, Note: found})
			}
		}
	}

	if tempo, ok := ctx.Int(env.Tempo); ok {
		stored, _ := mm.SetTempo(tempo)
		ctx.SetInt(env.Tempo, stored)
	}
	mm.SetPlayback(ctx.Text(env.Playback) != "Multi")
	return events
}

// magicMembers runs the editor widgets that are marked by member text.
func (m *Metagame) magicMembers(in core.Input) []history.Event {
	ctx := m.Env.Context
	var events []history.Event
	for i := range m.Game.Members {
		member := &m.Game.Members[i]
		switch member.Text.Contents {
		case game.SpriteSheetName:
			pickFromSpriteSheet(member.PixelPosition(), in.Outer, ctx)
		case game.EditSpriteName:
			events = append(events, m.draw(in)...)
		case game.ChooseAreaName:
			if in.Outer.Middle.IsPressed() {
				ctx.SetInt(env.MinX, in.Inner.Position.X)
				ctx.SetInt(env.MinY, in.Inner.Position.Y)
			}
			if in.Outer.Middle.IsDown() {
				ctx.SetInt(env.MaxX, in.Inner.Position.X)
				ctx.SetInt(env.MaxY, in.Inner.Position.Y)
			}
		case game.ChoosePointName:
			if in.Outer.Middle.IsDown() {
				ctx.SetInt(env.X, in.Inner.Position.X)
				ctx.SetInt(env.Y, in.Inner.Position.Y)
			}
		}
	}
	m.DrawTool.ClearRequested = false
	m.DrawTool.SaveRequested = false
	return events
}

// pickFromSpriteSheet sets Sprite Index when a sprite on the quarter scale
// sheet preview centred near position is clicked.
func pickFromSpriteSheet(position core.Position, mouse core.Mouse, ctx env.Context) {
	if !mouse.Left.IsPressed() {
		return
	}
	sprite := edit.SpriteFromContext(ctx)
	size := sprite.Size.Pixels()
	page := sprite.Size.PageWidth()
	if size.W == 0 || size.H == 0 {
		return
	}
	// Sprites are drawn at quarter scale with an eighth of a sprite between
	// neighbours.
	gap := size.W / 8
	col, row := 0, 0
	for i := range sprite.Size.PerSheet() {
		startX := size.W * i % page
		startY := size.W * i / page * size.H
		if i > 0 && startY != size.W*(i-1)/page*size.H {
			col = 0
			row++
		}
		x := startX/4 + col*gap + position.X - 96
		y := startY/4 + row*gap + position.Y - 96
		col++
		if core.TLWH(x, y, size.W/4, size.H/4).ContainsPoint(mouse.Position) {
			ctx.SetInt(env.SpriteIndex, i)
			return
		}
	}
}

// draw paints into the sprite chosen in the context while the left button
// is held over the edited screen. A stroke becomes one event when the
// button is let go.
func (m *Metagame) draw(in core.Input) []history.Event {
	a := m.Subgame.Assets
	sprite := edit.SpriteFromContext(m.Env.Context)

	screen := rules.InnerSize
	if sprite.Size.Kind == rules.SizeOuterBg {
		screen = rules.OuterSize
	}
	if in.Outer.Left.IsDown() && !sprite.IsEmpty() {
		p := in.Inner.Position
		p.X = core.Clamp(p.X, 0, screen.W-1)
		p.Y = core.Clamp(p.Y, 0, screen.H-1)
		rect := sprite.SheetSourceRect()
		sheet := core.Pos(
			rect.Min.X+p.X*rect.Width()/screen.W,
			rect.Min.Y+p.Y*rect.Height()/screen.H,
		)
		m.DrawTool.Plot(a, sheet)
	}

	var events []history.Event
	if in.Outer.Left.IsReleased() || m.DrawTool.SaveRequested {
		if e, ok := m.DrawTool.Commit(); ok {
			events = append(events, e)
		}
	}
	return append(events, m.DrawTool.Update(a)...)
}

// undoRedo handles Ctrl+Z and Ctrl+Y. Redo wins when both were typed.
func (m *Metagame) undoRedo(in core.Input) bool {
	stack := m.Editor.History
	gameName := m.Env.Context.Text(env.Game)
	switch {
	case in.HasChar(core.CtrlYChar):
		m.Music.RefreshSong()
		if step, ok := stack.RedoStep(m.target()); ok {
			m.logJournal(gameName, "Redo", step)
		}
		return true
	case in.HasChar(core.CtrlZChar):
		if step, ok := stack.UndoStep(m.target()); ok {
			m.logJournal(gameName, "Undo", step)
		}
		return true
	}
	return false
}

func (m *Metagame) logJournal(gameName, action string, step history.Step) {
	if err := m.Journal.Log(gameName, action, step); err != nil {
		m.Log.Debug("journal write failed", "error", err)
	}
}

// newRng seeds a generator for a freshly loaded game from the shared rng, so
// a session started from one seed replays the same.
func (m *Metagame) newRng() *rng.SeededRng {
	return rng.New(uint64(m.Env.Rng.Index(0, math.MaxInt32)))
}

// Load reads a game from the library.
func (m *Metagame) Load(l nav.Link) (*game.Game, error) {
	if m.Library == nil {
		return nil, library.ErrNotFound
	}
	c, err := m.Library.Load(l)
	if err != nil {
		return nil, err
	}
	return game.FromCartridge(c, m.newRng())
}
