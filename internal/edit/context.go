package edit

import (
	"encoding"

	"github.com/vovakirdan/game-maker/internal/anim"
	"github.com/vovakirdan/game-maker/internal/core"
	"github.com/vovakirdan/game-maker/internal/env"
	"github.com/vovakirdan/game-maker/internal/rules"
)

// parseText adapts an enum's UnmarshalText for env.Parse.
func parseText[T any, PT interface {
	*T
	encoding.TextUnmarshaler
}](s string) (T, error) {
	var v T
	err := PT(&v).UnmarshalText([]byte(s))
	return v, err
}

// ChoreIndex returns the zero based chore the editor is showing.
func ChoreIndex(c env.Context) int { return c.Index(env.ChoreIndex) }

// QuestionIndex returns the zero based question slot being edited.
func QuestionIndex(c env.Context) int { return c.Index(env.QuestionIndex) }

// DemandIndex returns the zero based demand slot being edited.
func DemandIndex(c env.Context) int { return c.Index(env.DemandIndex) }

// SpriteFromContext builds a sprite from "Sprite Type", "Sprite Size" and
// "Sprite Index". Missing values give the empty sprite.
func SpriteFromContext(c env.Context) rules.Sprite {
	kind, ok := c.Get(env.SpriteType)
	if !ok {
		return rules.NoSprite()
	}
	n, _ := c.Int(env.SpriteSize)
	size, err := rules.ParseSpriteSize(compact(kind), uint32(max(n, 0)))
	if err != nil {
		return rules.NoSprite()
	}
	index, _ := c.Int(env.SpriteIndex)
	return rules.Sprite{Index: uint32(max(index, 0)), Size: size}
}

// areaFromContext reads MinX, MinY, MaxX and MaxY, ordering each pair.
func areaFromContext(c env.Context) core.Rect {
	minX, minY := c.IntOr(env.MinX, 0), c.IntOr(env.MinY, 0)
	maxX, maxY := c.IntOr(env.MaxX, 0), c.IntOr(env.MaxY, 0)
	return core.AABB(min(minX, maxX), min(minY, maxY), max(minX, maxX), max(minY, maxY))
}

func pointFromContext(c env.Context) core.Position {
	return core.Pos(c.IntOr(env.X, 0), c.IntOr(env.Y, 0))
}

// QuestionFromContext builds the question named by "Question" and fills its
// data from the matching variables. It reports false when no known question
// is named.
func QuestionFromContext(c env.Context) (rules.Question, bool) {
	name, ok := c.Get(env.Question)
	if !ok {
		return nil, false
	}
	q, err := rules.NewQuestion(name)
	if err != nil {
		return nil, false
	}

	switch q := q.(type) {
	case rules.IsMouseInteracting:
		q.State = rules.ParseMouseState(c.Text(env.Button))
		if h, ok := env.Parse(c, env.Hover, parseText[rules.Hover]); ok {
			q.Hover = h
		}
		return q, true

	case rules.IsTimeAt:
		when, ok := env.Parse(c, env.When, rules.NewWhen)
		if !ok {
			return q, true
		}
		switch when.(type) {
		case rules.Exact:
			when = rules.Exact{Time: c.IntOr(env.Time, 0)}
		case rules.Random:
			s, e := c.IntOr(env.Time, 0), c.IntOr(env.EndTime, 0)
			when = rules.Random{Start: min(s, e), End: max(s, e)}
		}
		q.When = when
		return q, true

	case rules.IsCollidingWith:
		with, ok := env.Parse(c, env.CollisionWith, rules.NewCollisionWith)
		if !ok {
			return q, true
		}
		switch with.(type) {
		case rules.WithArea:
			with = rules.WithArea{Area: areaFromContext(c)}
		case rules.WithMember:
			if name, ok := c.Get(env.MemberName); ok {
				with = rules.WithMember{Name: name}
			}
		}
		q.With = with
		return q, true

	case rules.IsWinStatusSetTo:
		if w, ok := env.Parse(c, env.WinStatus, parseText[rules.WinStatus]); ok {
			q.Status = w
		}
		return q, true

	case rules.IsSwitchSetTo:
		if s, ok := env.Parse(c, env.SwitchState, parseText[rules.Switch]); ok {
			q.Switch = s
		}
		if name, ok := c.Get(env.MemberName); ok {
			q.Name = name
		}
		return q, true

	case rules.IsSpriteSetTo:
		q.Sprite = SpriteFromContext(c)
		return q, true

	case rules.IsVariableSetTo:
		q.Name, q.Value = c.Text(env.Key), c.Text(env.Text)
		return q, true
	case rules.IsPagedVariableSelected:
		q.Name, q.Value = c.Text(env.Key), c.Text(env.Text)
		return q, true
	case rules.IsPagedVariableValid:
		q.Name, q.Value = c.Text(env.Key), c.Text(env.Text)
		return q, true
	case rules.IsTextSetTo:
		q.Value = c.Text(env.Text)
		return q, true

	case rules.IsShortcutUsed:
		if s, ok := core.ParseShortcut(compact(c.Text(env.Shortcut))); ok {
			q.Shortcut = s
		}
		return q, true
	}
	return q, true
}

// DemandFromContext builds the demand named by "Demand" and fills its data
// from the matching variables. Animate takes its sprites from scratch.
func DemandFromContext(c env.Context, scratch []rules.Sprite) (rules.Demand, bool) {
	name, ok := c.Get(env.Demand)
	if !ok {
		return nil, false
	}
	d, err := rules.NewDemand(name)
	if err != nil {
		return nil, false
	}

	switch d := d.(type) {
	case rules.SetSwitch:
		if s, ok := env.Parse(c, env.Switch, parseText[rules.Switch]); ok {
			d.Switch = s
		}
		return d, true
	case rules.SetSprite:
		d.Sprite = SpriteFromContext(c)
		return d, true
	case rules.SetText:
		d.Text = rules.Text{Contents: c.Text(env.Text), Colour: rules.White}
		return d, true
	case rules.MotionDemand:
		d.Motion = motionFromContext(c)
		return d, true

	case rules.SetVariable:
		d.Name, d.Value = c.Text(env.Key), c.Text(env.Text)
		return d, true
	case rules.SelectPagedVariable:
		d.Name, d.Value = c.Text(env.Key), c.Text(env.Text)
		return d, true
	case rules.SetVariableFromText:
		d.Name = c.Text(env.Key)
		return d, true
	case rules.SetTextFromVariable:
		d.Name = c.Text(env.Key)
		return d, true
	case rules.Add1ToVariable:
		d.Name = c.Text(env.Key)
		return d, true
	case rules.Sub1FromVariable:
		d.Name = c.Text(env.Key)
		return d, true

	case rules.MoveToGame:
		d.Name = c.Text(env.GameFileName)
		return d, true
	case rules.FadeToGame:
		d.Name = c.Text(env.GameFileName)
		return d, true
	case rules.AddToQueue:
		d.Name = c.Text(env.GameFileName)
		return d, true

	case rules.Animate:
		d.Style, _ = env.Parse(c, env.AnimationStyle, anim.ParseStyle)
		d.Speed = speedOrDefault(c)
		d.Sprites = append([]rules.Sprite{}, scratch...)
		return d, true
	case rules.PlaySound:
		d.Name = c.Text(env.Sound)
		return d, true
	}
	return d, true
}

func speedOrDefault(c env.Context) anim.Speed {
	if s, ok := env.Parse(c, env.Speed, anim.ParseSpeed); ok {
		return s
	}
	return anim.DefaultSpeed
}

func motionFromContext(c env.Context) rules.Motion {
	m, ok := env.Parse(c, env.Motion, rules.NewMotion)
	if !ok {
		return rules.MotionStop{}
	}

	switch m := m.(type) {
	case rules.JumpTo:
		loc, ok := env.Parse(c, env.JumpLocation, rules.NewJumpLocation)
		if !ok {
			return m
		}
		switch loc.(type) {
		case rules.ToPoint:
			loc = rules.ToPoint{Point: pointFromContext(c)}
		case rules.ToArea:
			loc = rules.ToArea{Area: areaFromContext(c)}
		case rules.ToMember:
			if name, ok := c.Get(env.MemberName); ok {
				loc = rules.ToMember{Name: name}
			}
		}
		m.Location = loc
		return m

	case rules.Go:
		for _, d := range rules.Directions {
			if c.Bool(d.Label()) {
				m.Direction = m.Direction.With(d)
			}
		}
		m.Speed = speedOrDefault(c)
		return m

	case rules.ClampPosition:
		m.Area = areaFromContext(c)
		return m

	case rules.Roam:
		m.Area = areaFromContext(c)
		if s, ok := env.Parse(c, env.Speed, anim.ParseSpeed); ok {
			m.Speed = s
		}
		if r, ok := env.Parse(c, env.RoamType, parseText[rules.RoamType]); ok {
			m.RoamType = r
		}
		if h, ok := env.Parse(c, env.MovementHandle, parseText[rules.MovementHandling]); ok {
			m.MovementHandling = h
		}
		return m

	case rules.Swap:
		if name, ok := c.Get(env.MemberName); ok {
			m.Name = name
		}
		return m
	case rules.AttachFromPositions:
		if name, ok := c.Get(env.MemberName); ok {
			m.Name = name
		}
		return m
	case rules.Target:
		if name, ok := c.Get(env.MemberName); ok {
			m.Name = name
		}
		m.Speed = speedOrDefault(c)
		return m

	case rules.GoToPoint:
		m.Point = pointFromContext(c)
		m.Speed = speedOrDefault(c)
		return m
	}
	return m
}

func compact(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if r != ' ' {
			out = append(out, r)
		}
	}
	return string(out)
}
