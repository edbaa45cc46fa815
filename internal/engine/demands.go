package engine

import (
	"math"
	"strconv"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/vovakirdan/game-maker/internal/anim"
	"github.com/vovakirdan/game-maker/internal/env"
	"github.com/vovakirdan/game-maker/internal/game"
	"github.com/vovakirdan/game-maker/internal/music"
	"github.com/vovakirdan/game-maker/internal/rng"
	"github.com/vovakirdan/game-maker/internal/rules"
)

// apply carries out one demand of member i.
func (t *tick) apply(i int, d rules.Demand) {
	g := t.g
	m := &g.Members[i]

	switch d := d.(type) {
	case rules.Command:
		t.command(i, d)

	case rules.SetSprite:
		m.Sprite = d.Sprite
		m.Animation = anim.Animation[rules.Sprite]{}
	case rules.SetSwitch:
		m.AppliedSwitch = d.Switch.Edge()
	case rules.SetText:
		m.Text = d.Text
	case rules.Animate:
		if len(d.Sprites) == 0 {
			return
		}
		m.Sprite = d.Sprites[0]
		m.Animation = anim.Started(d.Sprites, d.Speed, d.Style)
	case rules.MotionDemand:
		t.startMotion(i, d.Motion)
	case rules.PlaySound:
		t.f.Sounds.Play(d.Name)

	case rules.SetVariable:
		t.f.Env.Context.Set(d.Name, d.Value)
	case rules.SetVariableFromText:
		t.f.Env.Context.Set(d.Name, m.Text.Contents)
	case rules.SetTextFromVariable:
		t.setTextFromVariable(m, d.Name)
	case rules.SetTextFromPosition:
		t.setTextFromPosition(m, d)
	case rules.SelectPagedVariable:
		t.selectPaged(d.Name, d.Value)
	case rules.Add1ToVariable:
		if v, ok := t.f.Env.Context.Int(d.Name); ok {
			t.f.Env.Context.SetInt(d.Name, v+1)
		}
	case rules.Sub1FromVariable:
		if v, ok := t.f.Env.Context.Int(d.Name); ok {
			t.f.Env.Context.SetInt(d.Name, v-1)
		}

	case rules.MoveToGame:
		t.action(Action{Kind: ActionMoveToGame, Name: d.Name})
	case rules.FadeToGame:
		t.action(Action{Kind: ActionFadeToGame, Name: d.Name})
	case rules.AddToQueue:
		t.action(Action{Kind: ActionAddToQueue, Name: d.Name})
	}
}

// command carries out a demand without data.
func (t *tick) command(i int, c rules.Command) {
	g := t.g
	switch c {
	case rules.NoDemand:
	case rules.Win:
		if g.WinStatus.IsUndecided() {
			g.WinStatus = rules.JustWon
		}
	case rules.Lose:
		if g.WinStatus.IsUndecided() {
			g.WinStatus = rules.JustLost
		}
	case rules.StopAnimation:
		g.Members[i].Animation = anim.Animation[rules.Sprite]{}
	case rules.StopMusic:
		t.action(act(ActionStopMusic))
	case rules.StopSounds:
		t.f.Sounds.Stop()

	case rules.New:
		t.action(act(ActionNew))
	case rules.Load:
		t.action(act(ActionLoad))
	case rules.Save:
		t.action(act(ActionSave))
	case rules.PreviewMusic:
		t.action(act(ActionPreviewMusic))
	case rules.SetImageFile:
		t.action(act(ActionSetImageFile))
	case rules.SetMusicFile:
		t.action(act(ActionSetMusicFile))
	case rules.Quit:
		t.action(act(ActionQuit))
	case rules.Play:
		t.action(act(ActionPlay))
		t.f.Music.Queue(music.PlayPhrase)
	case rules.Pause:
		t.action(act(ActionPause))
		t.f.Music.Queue(music.PausePhrase)
	case rules.Stop:
		t.action(act(ActionStop))
		t.f.Music.Queue(music.StopPhrase)
	case rules.FadeOut:
		t.action(act(ActionFadeOut))
	case rules.BackInQueue:
		t.action(act(ActionBackInQueue))
	case rules.NextInQueue:
		t.action(act(ActionNextInQueue))
	case rules.ResetQueue:
		t.action(act(ActionResetQueue))

	case rules.ClearArt:
		t.f.DrawTool.ClearRequested = true
	case rules.SaveArt:
		if t.f.Subgame != nil {
			t.f.DrawTool.SaveRequested = true
		}

	case rules.PlayPhrase:
		t.f.Music.Queue(music.PlayPhrase)
	case rules.PausePhrase:
		t.f.Music.Queue(music.PausePhrase)
	case rules.StopPhrase:
		t.f.Music.Queue(music.StopPhrase)
	case rules.PreviousInstrument:
		t.f.Music.Queue(music.PreviousInstrument)
	case rules.NextInstrument:
		t.f.Music.Queue(music.NextInstrument)
	case rules.PreviousTrack:
		t.f.Music.Queue(music.PreviousTrack)
	case rules.NextTrack:
		t.f.Music.Queue(music.NextTrack)

	default:
		t.editorCommand(i, c)
	}
}

func (t *tick) setTextFromVariable(m *game.Member, name string) {
	ctx := t.f.Env.Context
	if _, ok := ctx.Int(env.Tempo); !ok {
		ctx.Set(env.Tempo, "120")
	}
	if _, ok := ctx.Int(env.NoteLength); !ok {
		ctx.Set(env.NoteLength, "1")
	}
	m.Text.Contents = ctx.Text(name)
}

// setTextFromPosition shows one coordinate divided by the scale. A scale
// below one leaves the text alone.
func (t *tick) setTextFromPosition(m *game.Member, d rules.SetTextFromPosition) {
	if d.Scale < 1 {
		return
	}
	v := m.Position.X()
	if d.Axis == rules.AxisY {
		v = m.Position.Y()
	}
	m.Text.Contents = strconv.Itoa(int(int32(v) / d.Scale))
}

// startMotion starts motion for member i. Jumps, swaps and clamps take
// effect immediately; the others replace the member's active motion.
func (t *tick) startMotion(i int, motion rules.Motion) {
	g := t.g
	m := &g.Members[i]

	switch mo := motion.(type) {
	case rules.MotionStop:
		m.Motion = game.Stop{}
	case rules.Go:
		dir, ok := rng.Choose(g.Rng, mo.Direction.List())
		if !ok {
			return
		}
		m.Motion = game.Go{Direction: dir, Speed: mo.Speed}
	case rules.GoToPoint:
		m.Motion = game.GoToPoint{Point: mo.Point.Vec(), Speed: mo.Speed}
	case rules.Swap:
		if j, ok := g.MemberIndex(mo.Name); ok {
			m.Position, g.Members[j].Position = g.Members[j].Position, m.Position
		}
	case rules.Roam:
		m.Motion = game.RoamingMotion(mo.RoamType, mo.Area, mo.Speed, mo.MovementHandling)
	case rules.JumpTo:
		t.jump(i, mo.Location)
	case rules.ClampPosition:
		a := game.ConstrainedArea(g.Assets, m, mo.Area)
		m.Position = mgl32.Vec2{
			max(min(m.Position.X(), a.X+a.W), a.X),
			max(min(m.Position.Y(), a.Y+a.H), a.Y),
		}
	case rules.Target:
		m.Motion = game.Target{Name: mo.Name, Offset: mo.Offset.Vec(), Speed: mo.Speed}
	case rules.AttachFromPositions:
		if j, ok := g.MemberIndex(mo.Name); ok {
			m.Motion = game.Attach{Name: mo.Name, Offset: m.Position.Sub(g.Members[j].Position)}
		}
	}
}

func (t *tick) jump(i int, loc rules.JumpLocation) {
	g := t.g
	m := &g.Members[i]

	switch l := loc.(type) {
	case rules.ToPoint:
		m.Position = l.Point.Vec()
	case rules.ToMouse:
		m.Position = t.f.Mouse.Position.Vec()
	case rules.ToMember:
		if j, ok := g.MemberIndex(l.Name); ok {
			m.Position = g.Members[j].Position
		}
	case rules.Relative:
		m.Position = m.Position.Add(l.Offset.Vec())
	case rules.ToArea:
		a := game.ConstrainedArea(g.Assets, m, l.Area)
		t.f.Log.Debug("jump to area", "area", l.Area, "constrained", a)
		x, y := a.X, a.Y
		if a.W > 0 {
			x = g.Rng.Float32(a.X, a.X+a.W)
		}
		if a.H > 0 {
			y = g.Rng.Float32(a.Y, a.Y+a.H)
		}
		m.Position = mgl32.Vec2{x, y}
	}
}

func sqrt32(v float32) float32 { return float32(math.Sqrt(float64(v))) }
