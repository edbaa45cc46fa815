package engine

import (
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/vovakirdan/game-maker/internal/edit"
	"github.com/vovakirdan/game-maker/internal/env"
	"github.com/vovakirdan/game-maker/internal/game"
	"github.com/vovakirdan/game-maker/internal/history"
	"github.com/vovakirdan/game-maker/internal/rules"
)

// editorCommand carries out the demands that only make sense in an editor.
// Changes to the game being edited become events; the rest updates the
// editor and the context directly.
func (t *tick) editorCommand(i int, c rules.Command) {
	e := t.f.Editor
	ctx := t.f.Env.Context
	sub := t.f.Subgame
	selected, hasSelected := e.Selected(sub)

	chore := game.ChoreID{Member: e.SelectedIndex, Chore: edit.ChoreIndex(ctx)}
	question := game.QuestionID{Member: chore.Member, Chore: chore.Chore, Question: edit.QuestionIndex(ctx)}
	demand := game.DemandID{Member: chore.Member, Chore: chore.Chore, Demand: edit.DemandIndex(ctx)}

	switch c {
	case rules.EditText:
		e.EditTextIndex = i
	case rules.PreviousPage:
		e.Page--
	case rules.NextPage:
		e.Page++

	case rules.UpdateScratchFromMember:
		if hasSelected {
			edit.ScratchFromSprite(ctx, selected.Sprite)
		}
	case rules.UpdateScratchFromQuestion:
		if q, ok := questionAt(selected, hasSelected, question); ok {
			edit.ScratchFromQuestion(ctx, q)
		}
	case rules.UpdateScratchFromDemand:
		if d, ok := demandAt(selected, hasSelected, demand); ok {
			e.ScratchFromDemand(ctx, d)
		}
	case rules.SwitchMember:
		if sub == nil {
			return
		}
		if j, ok := sub.MemberIndex(ctx.Text(env.MemberName)); ok {
			e.SelectedIndex = j
		}

	case rules.AddMember:
		if sub != nil {
			t.event(history.AddMember{Index: history.AppendIndex, Member: t.newMember(sub)})
		}
	case rules.RemoveMember:
		t.event(history.RemoveMember{Index: e.SelectedIndex})
	case rules.CloneMember:
		if hasSelected {
			t.event(history.AddMember{Index: history.AppendIndex, Member: t.cloneMember(selected)})
		}
	case rules.RenameMember:
		if hasSelected {
			t.event(history.RenameMember{
				Index: e.SelectedIndex,
				From:  selected.Name,
				To:    t.g.Members[i].Text.Contents,
			})
		}
	case rules.UpdateQuestion:
		q, ok := edit.QuestionFromContext(ctx)
		if !ok {
			q = rules.NoQuestion
		}
		t.event(history.UpdateQuestion{ID: question, Question: q})
	case rules.UpdateDemand:
		d, ok := edit.DemandFromContext(ctx, e.Animation)
		if !ok {
			d = rules.NoDemand
		}
		t.event(history.UpdateDemand{ID: demand, Demand: d})
	case rules.RemoveChore:
		t.event(history.UpdateChore{ID: chore, Chore: rules.DefaultChore()})
	case rules.MoveChoreUp:
		t.event(history.MoveChoreUp{ID: chore})
	case rules.MoveChoreDown:
		t.event(history.MoveChoreDown{ID: chore})
	case rules.MoveQuestionUp:
		t.event(history.MoveQuestionUp{ID: question})
	case rules.MoveQuestionDown:
		t.event(history.MoveQuestionDown{ID: question})
	case rules.MoveDemandUp:
		t.event(history.MoveDemandUp{ID: demand})
	case rules.MoveDemandDown:
		t.event(history.MoveDemandDown{ID: demand})
	case rules.SetStartSprite:
		if hasSelected {
			t.event(history.SetStartSprite{
				Index: e.SelectedIndex,
				From:  selected.Sprite,
				To:    edit.SpriteFromContext(ctx),
			})
		}

	case rules.SetAnimationSprite, rules.AddAnimationSprite, rules.RemoveAnimationSprite,
		rules.MoveAnimationUp, rules.MoveAnimationDown:
		if sub != nil {
			t.editAnimation(c)
		}
	}
}

func questionAt(m *game.Member, ok bool, id game.QuestionID) (rules.Question, bool) {
	if !ok || id.Chore >= len(m.TodoList) || id.Question >= rules.QuestionCount {
		return nil, false
	}
	return m.TodoList[id.Chore].Questions[id.Question], true
}

func demandAt(m *game.Member, ok bool, id game.DemandID) (rules.Demand, bool) {
	if !ok || id.Chore >= len(m.TodoList) || id.Demand >= rules.DemandCount {
		return nil, false
	}
	return m.TodoList[id.Chore].Demands[id.Demand], true
}

// newMember creates a blank member at a random spot. It is named after the
// largest numeric member name in sub, or "0" when there is none.
func (t *tick) newMember(sub *game.Game) game.Member {
	g := t.g
	pos := mgl32.Vec2{
		float32(math.Floor(float64(g.Rng.Float32(0, 200)))),
		float32(math.Floor(float64(g.Rng.Float32(0, 100)))),
	}
	var numbers []int
	for _, m := range sub.Members {
		if n, err := strconv.Atoi(m.Name); err == nil {
			numbers = append(numbers, n)
		}
	}
	name := "0"
	if len(numbers) > 0 {
		name = strconv.Itoa(slices.Max(numbers))
	}
	m := game.NewMember(name, pos, rules.NoSprite(), rules.PlainText(""))
	m.Switch = rules.Off
	return m
}

// cloneMember copies m under a new name: "Ball 2" becomes "Ball 3", other
// names get a random number appended. Rules that named the original now name
// the copy.
func (t *tick) cloneMember(m *game.Member) game.Member {
	c := m.Clone()
	old := c.Name
	var name string
	if at := strings.LastIndexByte(old, ' '); at >= 0 {
		if n, err := strconv.ParseUint(old[at+1:], 10, 64); err == nil {
			name = old[:at] + " " + strconv.FormatUint(n+1, 10)
		}
	}
	if name == "" {
		name = old + strconv.Itoa(t.g.Rng.Int(0, 100))
	}
	rules.RenameInTodoList(c.TodoList, old, name)
	c.Name = name
	return c
}

// editAnimation edits the animation scratch list through "Animation Index",
// which counts from one.
func (t *tick) editAnimation(c rules.Command) {
	e := t.f.Editor
	ctx := t.f.Env.Context
	index, ok := ctx.Int(env.AnimationIndex)

	switch c {
	case rules.SetAnimationSprite:
		if !ok || index < 1 {
			return
		}
		if len(e.Animation) == 0 {
			e.Animation = append(e.Animation, rules.NoSprite())
		}
		if index-1 < len(e.Animation) {
			e.Animation[index-1] = edit.SpriteFromContext(ctx)
		}

	case rules.AddAnimationSprite:
		if len(e.Animation) < rules.AnimationSpriteCount {
			e.Animation = append(e.Animation, rules.NoSprite())
			ctx.SetInt(env.AnimationIndex, len(e.Animation))
		}

	case rules.RemoveAnimationSprite:
		if !ok || index < 1 || len(e.Animation) == 0 {
			return
		}
		at := index - 1
		if at < len(e.Animation) {
			e.Animation = slices.Delete(e.Animation, at, at+1)
		} else {
			e.Animation = e.Animation[:len(e.Animation)-1]
		}
		ctx.SetInt(env.AnimationIndex, max(at, len(e.Animation)))

	case rules.MoveAnimationUp:
		at := index - 1
		if !ok || at < 1 || at >= len(e.Animation) {
			return
		}
		e.Animation[at], e.Animation[at-1] = e.Animation[at-1], e.Animation[at]
		ctx.SetInt(env.AnimationIndex, at)

	case rules.MoveAnimationDown:
		at := index - 1
		if !ok || at < 0 || at >= len(e.Animation)-1 {
			return
		}
		e.Animation[at], e.Animation[at+1] = e.Animation[at+1], e.Animation[at]
		ctx.SetInt(env.AnimationIndex, at+2)
	}
}
