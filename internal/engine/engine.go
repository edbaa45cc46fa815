// Package engine runs one tick of a game: it asks every member's questions,
// carries out the demands of the chores that passed, moves members and
// advances their animations.
//
// The engine keeps no state of its own. Everything a tick reads or changes is
// passed in, so the editor game and the game being edited can be ticked one
// after the other with the same entry point.
package engine

import (
	"github.com/vovakirdan/game-maker/internal/core"
	"github.com/vovakirdan/game-maker/internal/edit"
	"github.com/vovakirdan/game-maker/internal/env"
	"github.com/vovakirdan/game-maker/internal/game"
	"github.com/vovakirdan/game-maker/internal/history"
	"github.com/vovakirdan/game-maker/internal/music"
	"github.com/vovakirdan/game-maker/internal/rng"
	"github.com/vovakirdan/game-maker/internal/rules"
)

// Frame is everything a tick needs besides the game itself.
type Frame struct {
	Mouse     core.Mouse
	Shortcuts core.Shortcuts
	Sounds    *game.SoundQueue
	Editor    *edit.Editor
	Env       *env.Environment
	DrawTool  *edit.DrawTool
	Music     *music.Maker

	// Subgame is the game being edited. It is nil when g is not an editor.
	Subgame *game.Game

	Log core.Logger
}

func (f *Frame) defaults() {
	if f.Sounds == nil {
		f.Sounds = game.NewSoundQueue()
	}
	if f.Log == nil {
		f.Log = core.NopLogger{}
	}
	if f.Editor == nil {
		f.Editor = edit.New(f.Log)
	}
	if f.Env == nil {
		f.Env = env.New(rng.New(0))
	}
	if f.Env.Context == nil {
		f.Env.Context = make(env.Context)
	}
	if f.DrawTool == nil {
		f.DrawTool = edit.NewDrawTool()
	}
	if f.Music == nil {
		f.Music = music.NewMaker()
	}
	if f.Shortcuts == nil {
		f.Shortcuts = core.Shortcuts{}
	}
}

// Result is what a tick asks of the caller: editor events to record and menu
// actions to carry out.
type Result struct {
	Events  []history.Event
	Actions []Action
}

// Tick advances g by one frame.
//
// Every chore of every member is asked first, so all questions see the world
// as it was at the start of the tick. The demands of passed chores are then
// applied in member order, members move, animations advance and the frame
// number goes up by one.
func Tick(g *game.Game, f Frame) Result {
	f.defaults()
	t := &tick{g: g, f: &f}

	requested := make([][]rules.Demand, len(g.Members))
	for i := range g.Members {
		requested[i] = t.triggeredDemands(i)
	}

	g.WinStatus = g.WinStatus.Settled()

	for i, demands := range requested {
		for _, d := range demands {
			t.apply(i, d)
		}
	}

	for i := range g.Members {
		t.move(i)
	}

	for i := range g.Members {
		m := &g.Members[i]
		if s, ok := m.Animation.Update(); ok {
			m.Sprite = s
		}
		m.Switch.Apply(m.AppliedSwitch)
	}

	g.FrameNumber++
	return t.res
}

type tick struct {
	g   *game.Game
	f   *Frame
	res Result
}

func (t *tick) event(e history.Event) { t.res.Events = append(t.res.Events, e) }
func (t *tick) action(a Action)       { t.res.Actions = append(t.res.Actions, a) }

// triggeredDemands collects the demands of every chore of member i whose
// questions all pass.
func (t *tick) triggeredDemands(i int) []rules.Demand {
	var out []rules.Demand
	m := &t.g.Members[i]
	for ci, chore := range m.TodoList {
		triggered := true
		for qi, q := range chore.Questions {
			// Evaluation stops at the first false question, so a random
			// time question later in the chore is not drawn.
			triggered = triggered && t.ask(game.QuestionID{Member: i, Chore: ci, Question: qi}, q)
		}
		if !triggered {
			continue
		}
		for _, d := range chore.Demands {
			if !rules.IsNoDemand(d) {
				out = append(out, d)
			}
		}
	}
	return out
}
