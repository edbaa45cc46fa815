package engine

import (
	"fmt"

	"github.com/vovakirdan/game-maker/internal/core"
	"github.com/vovakirdan/game-maker/internal/game"
	"github.com/vovakirdan/game-maker/internal/rules"
)

func (t *tick) ask(id game.QuestionID, q rules.Question) bool {
	g := t.g
	m := &g.Members[id.Member]

	switch q := q.(type) {
	case nil:
		return true
	case rules.Query:
		switch q {
		case rules.NoQuestion:
			return true
		case rules.IsAnimationFinished:
			return m.Animation.IsFinished()
		case rules.IsSubgamePlaying:
			return t.f.Editor.HasInnerCopy()
		case rules.IsSubgameEnding:
			return g.FrameNumber == game.SubgameEndFrame
		case rules.IsOnDesktop:
			return true
		case rules.IsOnWeb:
			return false
		}
		return false

	case rules.IsTimeAt:
		return t.isTimeAt(id, q.When)

	case rules.IsMouseInteracting:
		return t.isHovering(id.Member, q.Hover) && q.State.Accepts(q.Which.Of(t.f.Mouse))

	case rules.IsSwitchSetTo:
		i, ok := g.MemberIndex(q.Name)
		if !ok {
			return false
		}
		return q.Switch.Matches(g.Members[i].Switch)

	case rules.IsWinStatusSetTo:
		return q.Status.Matches(g.WinStatus)

	case rules.IsSpriteSetTo:
		return m.Sprite == q.Sprite

	case rules.IsCollidingWith:
		switch with := q.With.(type) {
		case rules.WithArea:
			return game.IsCollidingWithArea(m, with.Area, g.Assets)
		case rules.WithMember:
			i, ok := g.MemberIndex(with.Name)
			if !ok {
				return false
			}
			return game.MembersCollide(m, &g.Members[i], g.Assets)
		}
		return false

	case rules.IsTextSetTo:
		return m.Text.Contents == q.Value

	case rules.IsVariableSetTo:
		v, ok := t.f.Env.Context.Get(q.Name)
		return ok && v == q.Value

	case rules.IsPagedVariableSelected:
		return t.isPagedSelected(q.Name, q.Value)

	case rules.IsPagedVariableValid:
		return t.isPagedValid(q.Name, q.Value)

	case rules.IsAnimationSpriteValid:
		return q.Index <= len(t.f.Editor.Animation)

	case rules.IsShortcutUsed:
		return t.f.Shortcuts.Has(q.Shortcut)
	}
	return false
}

// isTimeAt checks a time condition. A random condition draws a new frame from
// the rest of its window every tick and fires when the draw is the current
// frame, then never again this play.
func (t *tick) isTimeAt(id game.QuestionID, w rules.When) bool {
	g := t.g
	switch w := w.(type) {
	case rules.Moment:
		if w == rules.Start {
			return g.FrameNumber == 0
		}
		last, ok := g.Length.LastFrame()
		return ok && g.FrameNumber == last
	case rules.Exact:
		return g.FrameNumber == w.Time*5
	case rules.Random:
		if _, done := g.Triggered[id]; done {
			return false
		}
		frame := g.Rng.Int(max(w.Start, g.FrameNumber), w.End)
		if frame != g.FrameNumber {
			return false
		}
		if g.Triggered == nil {
			g.Triggered = make(map[game.QuestionID]struct{})
		}
		g.Triggered[id] = struct{}{}
		return true
	}
	return false
}

// isHovering checks the hover part of a mouse question for member i.
func (t *tick) isHovering(i int, h rules.Hover) bool {
	g := t.g
	p := t.f.Mouse.Position
	switch h {
	case rules.TopMember:
		for j := len(g.Members) - 1; j >= 0; j-- {
			if game.IsPositionInMember(p, &g.Members[j], g.Assets) {
				return j == i
			}
		}
		return false
	case rules.This:
		m := &g.Members[i]
		if !m.Sprite.IsEmpty() {
			return game.IsPositionInMember(p, m, g.Assets)
		}
		size := core.NewSize(t.textWidth(m), g.Assets.Font.CharHeight())
		return game.IsPositionInSizedArea(p, m.Position, size)
	default:
		return true
	}
}

// textWidth is the hover width of a text member. Chore previews are as wide
// as the first question of the chore they show.
func (t *tick) textWidth(m *game.Member) int {
	font := t.g.Assets.Font
	width := font.TextWidth(m.Text.Contents)
	selected, ok := t.f.Editor.Selected(t.f.Subgame)
	if !ok {
		return width
	}
	for ci := 0; ci < rules.ChoreCount && ci < len(selected.TodoList); ci++ {
		if m.Text.Contents == fmt.Sprintf("{Chore %d}", ci+1) {
			first := selected.TodoList[ci].Questions[0]
			width = font.TextWidth(rules.DescribeQuestion(first) + "...")
		}
	}
	return width
}
