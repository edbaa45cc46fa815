package edit

import (
	"github.com/vovakirdan/game-maker/internal/core"
	"github.com/vovakirdan/game-maker/internal/env"
	"github.com/vovakirdan/game-maker/internal/rules"
)

func boolText(b bool) string {
	if b {
		return "True"
	}
	return "False"
}

func scratchArea(c env.Context, r core.Rect) {
	c.SetInt(env.MinX, r.Min.X)
	c.SetInt(env.MinY, r.Min.Y)
	c.SetInt(env.MaxX, r.Max.X)
	c.SetInt(env.MaxY, r.Max.Y)
}

func scratchPoint(c env.Context, p core.Position) {
	c.SetInt(env.X, p.X)
	c.SetInt(env.Y, p.Y)
}

// ScratchFromSprite writes s into the sprite variables.
func ScratchFromSprite(c env.Context, s rules.Sprite) {
	c.SetValue(env.SpriteType, s.Size)
	if s.IsSquare() {
		c.SetInt(env.SpriteSize, int(s.Size.N))
	}
	c.SetInt(env.SpriteIndex, int(s.Index))
}

// ScratchFromQuestion writes the data of q into the variables
// QuestionFromContext reads, so the widgets show the saved question.
func ScratchFromQuestion(c env.Context, q rules.Question) {
	switch q := q.(type) {
	case rules.IsMouseInteracting:
		c.SetValue(env.Button, q.State)
		c.SetValue(env.Hover, q.Hover)
	case rules.IsTimeAt:
		switch w := q.When.(type) {
		case rules.Exact:
			c.SetInt(env.Time, w.Time)
		case rules.Random:
			c.SetInt(env.Time, w.Start)
			c.SetInt(env.EndTime, w.End)
		}
	case rules.IsCollidingWith:
		switch w := q.With.(type) {
		case rules.WithArea:
			scratchArea(c, w.Area)
		case rules.WithMember:
			c.Set(env.MemberName, w.Name)
		}
	case rules.IsSpriteSetTo:
		ScratchFromSprite(c, q.Sprite)
	case rules.IsWinStatusSetTo:
		c.SetValue(env.WinStatus, q.Status)
	case rules.IsSwitchSetTo:
		c.Set(env.MemberName, q.Name)
		c.SetValue(env.SwitchState, q.Switch)
	case rules.IsVariableSetTo:
		c.Set(env.Key, q.Name)
		c.Set(env.Text, q.Value)
	case rules.IsPagedVariableSelected:
		c.Set(env.Key, q.Name)
		c.Set(env.Text, q.Value)
	case rules.IsPagedVariableValid:
		c.Set(env.Key, q.Name)
		c.Set(env.Text, q.Value)
	case rules.IsTextSetTo:
		c.Set(env.Text, q.Value)
	}
}

// ScratchFromDemand writes the data of d into the variables
// DemandFromContext reads. Animate also replaces the animation scratch.
func (e *Editor) ScratchFromDemand(c env.Context, d rules.Demand) {
	switch d := d.(type) {
	case rules.SetSwitch:
		c.SetValue(env.Switch, d.Switch)
	case rules.SetSprite:
		ScratchFromSprite(c, d.Sprite)
	case rules.SetText:
		c.Set(env.Text, d.Text.Contents)
	case rules.Animate:
		c.SetInt(env.AnimationIndex, 1)
		c.Set(env.AnimationStyle, d.Style.Name())
		c.Set(env.Speed, d.Speed.Name())
		e.Animation = append([]rules.Sprite(nil), d.Sprites...)
	case rules.MotionDemand:
		scratchFromMotion(c, d.Motion)
	case rules.SetVariableFromText:
		c.Set(env.Key, d.Name)
	case rules.Add1ToVariable:
		c.Set(env.Key, d.Name)
	case rules.Sub1FromVariable:
		c.Set(env.Key, d.Name)
	case rules.SetVariable:
		c.Set(env.Key, d.Name)
		c.Set(env.Text, d.Value)
	case rules.SelectPagedVariable:
		c.Set(env.Key, d.Name)
		c.Set(env.Text, d.Value)
	case rules.MoveToGame:
		c.Set(env.GameFileName, d.Name)
	case rules.FadeToGame:
		c.Set(env.GameFileName, d.Name)
	case rules.AddToQueue:
		c.Set(env.GameFileName, d.Name)
	}
}

func scratchFromMotion(c env.Context, m rules.Motion) {
	switch m := m.(type) {
	case rules.GoToPoint:
		scratchPoint(c, m.Point)
		c.Set(env.Speed, m.Speed.Name())
	case rules.JumpTo:
		switch l := m.Location.(type) {
		case rules.ToPoint:
			scratchPoint(c, l.Point)
		case rules.ToArea:
			scratchArea(c, l.Area)
		case rules.ToMember:
			c.Set(env.MemberName, l.Name)
		}
	case rules.ClampPosition:
		scratchArea(c, m.Area)
	case rules.Go:
		for _, d := range rules.Directions {
			c.Set(d.Label(), boolText(m.Direction.Has(d)))
		}
		c.Set(env.Speed, m.Speed.Name())
	case rules.Roam:
		scratchArea(c, m.Area)
		c.Set(env.Speed, m.Speed.Name())
		c.SetValue(env.RoamType, m.RoamType)
		c.SetValue(env.MovementHandle, m.MovementHandling)
	case rules.Swap:
		c.Set(env.MemberName, m.Name)
	}
}
