package engine

import (
	"image/color"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/game-maker/internal/anim"
	"github.com/vovakirdan/game-maker/internal/assets"
	"github.com/vovakirdan/game-maker/internal/core"
	"github.com/vovakirdan/game-maker/internal/edit"
	"github.com/vovakirdan/game-maker/internal/env"
	"github.com/vovakirdan/game-maker/internal/game"
	"github.com/vovakirdan/game-maker/internal/history"
	"github.com/vovakirdan/game-maker/internal/rng"
	"github.com/vovakirdan/game-maker/internal/rules"
)

func newGame(members ...game.Member) *game.Game {
	return &game.Game{
		Members:   members,
		Assets:    assets.Blank(),
		WinStatus: rules.NotYetWon,
		Rng:       rng.New(7),
		Triggered: make(map[game.QuestionID]struct{}),
	}
}

func member(name string, x, y float32) game.Member {
	return game.NewMember(name, mgl32.Vec2{x, y}, rules.NoSprite(), rules.PlainText(""))
}

// chore builds a chore from up to six questions and demands.
func chore(questions []rules.Question, demands ...rules.Demand) rules.Chore {
	c := rules.DefaultChore()
	copy(c.Questions[:], questions)
	copy(c.Demands[:], demands)
	return c
}

func atStart(demands ...rules.Demand) rules.Chore {
	return chore([]rules.Question{rules.IsTimeAt{When: rules.Start}}, demands...)
}

func newFrame() Frame {
	return Frame{Env: env.New(rng.New(1))}
}

func run(g *game.Game, f Frame, ticks int) Result {
	var all Result
	for range ticks {
		r := Tick(g, f)
		all.Events = append(all.Events, r.Events...)
		all.Actions = append(all.Actions, r.Actions...)
	}
	return all
}

func TestChoreNeedsEveryQuestion(t *testing.T) {
	m := member("Sign", 10, 10)
	m.Text = rules.PlainText("a")
	m.TodoList[0] = chore(
		[]rules.Question{rules.IsTextSetTo{Value: "a"}, rules.IsTextSetTo{Value: "b"}},
		rules.SetText{Text: rules.PlainText("both")},
	)
	m.TodoList[1] = chore(
		[]rules.Question{rules.IsTextSetTo{Value: "a"}, rules.NoQuestion},
		rules.SetVariable{Name: "Seen", Value: "yes"},
	)
	g := newGame(m)
	f := newFrame()

	Tick(g, f)

	assert.Equal(t, "a", g.Members[0].Text.Contents)
	assert.Equal(t, "yes", f.Env.Context.Text("Seen"))
}

func TestEmptyChoreFiresEveryTick(t *testing.T) {
	m := member("Counter", 0, 0)
	m.TodoList[0] = chore(nil, rules.Add1ToVariable{Name: "Count"})
	g := newGame(m)
	f := newFrame()
	f.Env.Context.SetInt("Count", 0)

	run(g, f, 3)

	n, ok := f.Env.Context.Int("Count")
	require.True(t, ok)
	assert.Equal(t, 3, n)
	assert.Equal(t, 3, g.FrameNumber)
}

func TestQuestionsSeeStartOfTick(t *testing.T) {
	a := member("A", 0, 0)
	a.TodoList[0] = chore(nil, rules.SetVariable{Name: "Ready", Value: "1"})
	b := member("B", 0, 0)
	b.TodoList[0] = chore(nil, rules.SetVariable{Name: "State", Value: "waiting"})
	b.TodoList[1] = chore(
		[]rules.Question{rules.IsVariableSetTo{Name: "Ready", Value: "1"}},
		rules.SetVariable{Name: "State", Value: "ready"},
	)
	g := newGame(a, b)
	f := newFrame()
	f.Env.Context.Set("Ready", "0")

	Tick(g, f)

	// B was asked before A set Ready.
	assert.Equal(t, "waiting", f.Env.Context.Text("State"))

	Tick(g, f)
	assert.Equal(t, "ready", f.Env.Context.Text("State"))
}

func TestRandomTimeFiresOnce(t *testing.T) {
	m := member("Spawner", 0, 0)
	m.TodoList[0] = chore(
		[]rules.Question{rules.IsTimeAt{When: rules.Random{Start: 10, End: 20}}},
		rules.Add1ToVariable{Name: "Fired"},
	)
	g := newGame(m)
	f := newFrame()
	f.Env.Context.SetInt("Fired", 0)

	firedAt := -1
	for frame := range 40 {
		Tick(g, f)
		if n, _ := f.Env.Context.Int("Fired"); n == 1 && firedAt < 0 {
			firedAt = frame
		}
	}

	n, _ := f.Env.Context.Int("Fired")
	assert.Equal(t, 1, n)
	assert.GreaterOrEqual(t, firedAt, 10)
	assert.Less(t, firedAt, 20)
}

func TestRandomTimeOnGameLiteral(t *testing.T) {
	m := member("Spawner", 0, 0)
	m.TodoList[0] = chore(
		[]rules.Question{rules.IsTimeAt{When: rules.Random{Start: 0, End: 1}}},
		rules.Add1ToVariable{Name: "Fired"},
	)
	g := &game.Game{Members: []game.Member{m}, Assets: assets.Blank(), Rng: rng.New(7)}
	f := newFrame()
	f.Env.Context.SetInt("Fired", 0)

	require.NotPanics(t, func() { run(g, f, 3) })
	n, _ := f.Env.Context.Int("Fired")
	assert.Equal(t, 1, n)
}

func TestTimeMoments(t *testing.T) {
	tests := []struct {
		name   string
		length rules.Length
		when   rules.When
		frames []int
	}{
		{"start", rules.Short, rules.Start, []int{0}},
		{"end short", rules.Short, rules.End, []int{240}},
		{"end long", rules.Long, rules.End, []int{480}},
		{"end infinite", rules.Infinite, rules.End, nil},
		{"exact", rules.Short, rules.Exact{Time: 3}, []int{15}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := member("Clock", 0, 0)
			m.TodoList[0] = chore([]rules.Question{rules.IsTimeAt{When: tt.when}}, rules.Add1ToVariable{Name: "Hits"})
			g := newGame(m)
			g.Length = tt.length
			f := newFrame()
			f.Env.Context.SetInt("Hits", 0)

			var frames []int
			for frame := range 500 {
				before, _ := f.Env.Context.Int("Hits")
				Tick(g, f)
				if after, _ := f.Env.Context.Int("Hits"); after > before {
					frames = append(frames, frame)
				}
			}
			assert.Equal(t, tt.frames, frames)
		})
	}
}

func TestGoMovesEveryTick(t *testing.T) {
	m := member("Ball", 50, 50)
	m.TodoList[0] = atStart(rules.MotionDemand{Motion: rules.Go{
		Direction: rules.NewDirectionSet(rules.South),
		Speed:     anim.SpeedFast,
	}})
	g := newGame(m)

	Tick(g, newFrame())
	assert.Equal(t, mgl32.Vec2{50, 54}, g.Members[0].Position)

	Tick(g, newFrame())
	assert.Equal(t, mgl32.Vec2{50, 58}, g.Members[0].Position)
}

func TestGoWithNoDirectionKeepsMotion(t *testing.T) {
	m := member("Ball", 50, 50)
	m.TodoList[0] = atStart(rules.MotionDemand{Motion: rules.Go{Speed: anim.SpeedFast}})
	g := newGame(m)

	Tick(g, newFrame())

	assert.IsType(t, game.Stop{}, g.Members[0].Motion)
	assert.Equal(t, mgl32.Vec2{50, 50}, g.Members[0].Position)
}

func TestGoToPointLands(t *testing.T) {
	m := member("Ball", 0, 0)
	m.Motion = game.GoToPoint{Point: mgl32.Vec2{3, 4}, Speed: anim.SpeedNormal}
	g := newGame(m)

	Tick(g, newFrame())
	assert.InDelta(t, 1.2, g.Members[0].Position.X(), 1e-4)
	assert.InDelta(t, 1.6, g.Members[0].Position.Y(), 1e-4)

	run(g, newFrame(), 3)
	assert.Equal(t, mgl32.Vec2{3, 4}, g.Members[0].Position)
}

func TestAttachAndTargetFollowByName(t *testing.T) {
	leader := member("Leader", 100, 100)
	leader.Motion = game.Go{Direction: rules.East, Speed: anim.SpeedNormal}
	follower := member("Follower", 90, 100)
	follower.TodoList[0] = atStart(rules.MotionDemand{Motion: rules.AttachFromPositions{Name: "Leader"}})
	lost := member("Lost", 5, 5)
	lost.Motion = game.Target{Name: "Nobody", Speed: anim.SpeedFast}
	g := newGame(leader, follower, lost)

	run(g, newFrame(), 2)

	assert.Equal(t, mgl32.Vec2{104, 100}, g.Members[0].Position)
	assert.Equal(t, mgl32.Vec2{94, 100}, g.Members[1].Position)
	assert.Equal(t, mgl32.Vec2{5, 5}, g.Members[2].Position)
}

func TestTargetIgnoresOffset(t *testing.T) {
	hunter := member("Hunter", 0, 0)
	hunter.Motion = game.Target{Name: "Prey", Offset: mgl32.Vec2{0, 50}, Speed: anim.SpeedVeryFast}
	g := newGame(hunter, member("Prey", 100, 0))

	run(g, newFrame(), 100)

	assert.Equal(t, mgl32.Vec2{100, 0}, g.Members[0].Position)
}

func TestSwapAndJump(t *testing.T) {
	a := member("A", 1, 2)
	a.TodoList[0] = atStart(rules.MotionDemand{Motion: rules.Swap{Name: "B"}})
	b := member("B", 30, 40)
	b.TodoList[0] = atStart(rules.MotionDemand{Motion: rules.JumpTo{Location: rules.Relative{Offset: core.Pos(5, 5)}}})
	c := member("C", 7, 7)
	c.TodoList[0] = atStart(rules.MotionDemand{Motion: rules.Swap{Name: "Ghost"}})
	g := newGame(a, b, c)

	Tick(g, newFrame())

	assert.Equal(t, mgl32.Vec2{30, 40}, g.Members[0].Position)
	// The swap happened before B's own demand ran.
	assert.Equal(t, mgl32.Vec2{6, 7}, g.Members[1].Position)
	assert.Equal(t, mgl32.Vec2{7, 7}, g.Members[2].Position)
}

func TestJumpToAreaStaysInside(t *testing.T) {
	m := member("Flea", 0, 0)
	m.TodoList[0] = chore(nil, rules.MotionDemand{Motion: rules.JumpTo{Location: rules.ToArea{Area: core.AABB(20, 30, 60, 50)}}})
	g := newGame(m)

	for range 20 {
		Tick(g, newFrame())
		p := g.Members[0].Position
		require.True(t, p.X() >= 20 && p.X() <= 60, "x %v", p.X())
		require.True(t, p.Y() >= 30 && p.Y() <= 50, "y %v", p.Y())
	}
}

// paintSprite makes the top left n by n square of the sheet opaque.
func paintSprite(a *assets.Assets, n int) rules.Sprite {
	for x := range n {
		for y := range n {
			a.SetPixel(core.Pos(x, y), color.NRGBA{A: 255})
		}
	}
	return rules.Sprite{Index: 0, Size: rules.SquareSize(uint32(n))}
}

func TestClampPositionCollapsesNarrowArea(t *testing.T) {
	m := member("Wide", 0, 200)
	m.TodoList[0] = atStart(rules.MotionDemand{Motion: rules.ClampPosition{Area: core.TLWH(100, 50, 16, 100)}})
	g := newGame(m)
	g.Members[0].Sprite = paintSprite(g.Assets, 32)

	Tick(g, newFrame())

	// 32 pixels do not fit in 16, so x collapses to the centre of the area.
	assert.Equal(t, mgl32.Vec2{108, 135}, g.Members[0].Position)
}

func TestReflectTurnsAtEdges(t *testing.T) {
	m := member("Ball", 10, 10)
	g := newGame(m)
	m.Sprite = paintSprite(g.Assets, 2)
	m.Motion = game.Reflect{Roaming: game.Roaming{
		Area:     core.AABB(0, 0, 40, 40),
		Speed:    anim.SpeedFast,
		Velocity: mgl32.Vec2{4, -4},
	}}
	g.Members = []game.Member{m}

	for range 100 {
		Tick(g, newFrame())
		p := g.Members[0].Position
		require.True(t, p.X() > -5 && p.X() < 45, "x %v", p.X())
		require.True(t, p.Y() > -5 && p.Y() < 45, "y %v", p.Y())
	}
	r, ok := g.Members[0].Motion.(game.Reflect)
	require.True(t, ok)
	assert.Equal(t, float32(4), core.Abs(r.Velocity.X()))
	assert.Equal(t, float32(4), core.Abs(r.Velocity.Y()))
}

func TestBounceStaysInArea(t *testing.T) {
	m := member("Ball", 20, 5)
	g := newGame(m)
	m.Sprite = paintSprite(g.Assets, 2)
	m.Motion = game.RoamingMotion(rules.Bounce, core.AABB(0, 0, 60, 60), anim.SpeedNormal, rules.MoveAnywhere)
	g.Members = []game.Member{m}

	maxY := float32(0)
	for range 300 {
		Tick(g, newFrame())
		maxY = max(maxY, g.Members[0].Position.Y())
	}
	assert.Less(t, maxY, float32(70))
	_, ok := g.Members[0].Motion.(game.Bounce)
	assert.True(t, ok)
}

func TestSwitchEdgeLastsOneTick(t *testing.T) {
	lamp := member("Lamp", 0, 0)
	lamp.TodoList[0] = atStart(rules.SetSwitch{Switch: rules.On})
	watcher := member("Watcher", 0, 0)
	watcher.TodoList[0] = chore(
		[]rules.Question{rules.IsSwitchSetTo{Name: "Lamp", Switch: rules.SwitchedOn}},
		rules.Add1ToVariable{Name: "Edges"},
	)
	watcher.TodoList[1] = chore(
		[]rules.Question{rules.IsSwitchSetTo{Name: "Ghost", Switch: rules.Off}},
		rules.Add1ToVariable{Name: "Edges"},
	)
	g := newGame(lamp, watcher)
	f := newFrame()
	f.Env.Context.SetInt("Edges", 0)

	Tick(g, f)
	assert.Equal(t, rules.SwitchedOn, g.Members[0].Switch)
	Tick(g, f)
	assert.Equal(t, rules.On, g.Members[0].Switch)
	run(g, f, 3)

	n, _ := f.Env.Context.Int("Edges")
	assert.Equal(t, 1, n)
}

func TestWinStatusSettles(t *testing.T) {
	m := member("Goal", 0, 0)
	m.TodoList[0] = atStart(rules.Win, rules.Lose)
	m.TodoList[1] = chore(
		[]rules.Question{rules.IsWinStatusSetTo{Status: rules.Won}},
		rules.Add1ToVariable{Name: "Wins"},
	)
	g := newGame(m)
	f := newFrame()
	f.Env.Context.SetInt("Wins", 0)

	Tick(g, f)
	assert.Equal(t, rules.JustWon, g.WinStatus)
	Tick(g, f)
	assert.Equal(t, rules.Won, g.WinStatus)
	Tick(g, f)

	n, _ := f.Env.Context.Int("Wins")
	assert.Equal(t, 2, n)
}

func TestAnimateStepsSprites(t *testing.T) {
	a := rules.Sprite{Index: 1, Size: rules.SquareSize(16)}
	b := rules.Sprite{Index: 2, Size: rules.SquareSize(16)}
	m := member("Flag", 0, 0)
	m.TodoList[0] = atStart(rules.Animate{Style: anim.StylePlayOnce, Speed: anim.SpeedVeryFast, Sprites: []rules.Sprite{a, b}})
	m.TodoList[1] = chore([]rules.Question{rules.IsAnimationFinished}, rules.SetVariable{Name: "Done", Value: "yes"})
	g := newGame(m)
	f := newFrame()

	run(g, f, 20)

	assert.Equal(t, b, g.Members[0].Sprite)
	assert.Equal(t, "yes", f.Env.Context.Text("Done"))
}

func TestSoundsAndVariables(t *testing.T) {
	m := member("Speaker", 0, 0)
	m.Text = rules.PlainText("hello")
	m.TodoList[0] = atStart(
		rules.PlaySound{Name: "beep"},
		rules.SetVariableFromText{Name: "Said"},
		rules.SetTextFromVariable{Name: "Tempo"},
	)
	g := newGame(m)
	f := newFrame()
	f.Sounds = game.NewSoundQueue()

	Tick(g, f)

	assert.Equal(t, []string{"beep"}, f.Sounds.Names())
	assert.Equal(t, "hello", f.Env.Context.Text("Said"))
	assert.Equal(t, "120", g.Members[0].Text.Contents)
}

func TestMouseHoverTopMember(t *testing.T) {
	g := newGame()
	sprite := paintSprite(g.Assets, 16)
	bottom := game.NewMember("Bottom", mgl32.Vec2{50, 50}, sprite, rules.PlainText(""))
	top := game.NewMember("Top", mgl32.Vec2{52, 52}, sprite, rules.PlainText(""))
	click := chore(
		[]rules.Question{rules.IsMouseInteracting{Which: rules.LeftButton, State: rules.StatePress, Hover: rules.TopMember}},
		rules.SetText{Text: rules.PlainText("clicked")},
	)
	bottom.TodoList[0] = click
	top.TodoList[0] = click
	g.Members = []game.Member{bottom, top}

	f := newFrame()
	f.Mouse = core.Mouse{Position: core.Pos(51, 51), Left: core.ButtonPress}
	Tick(g, f)

	assert.Equal(t, "", g.Members[0].Text.Contents)
	assert.Equal(t, "clicked", g.Members[1].Text.Contents)
}

func TestMenuDemandsBecomeActions(t *testing.T) {
	m := member("Menu", 0, 0)
	m.TodoList[0] = atStart(rules.Save, rules.MoveToGame{Name: "Intro"}, rules.Play, rules.NextInQueue)
	g := newGame(m)
	f := newFrame()

	res := Tick(g, f)

	assert.Equal(t, []Action{
		{Kind: ActionSave},
		{Kind: ActionMoveToGame, Name: "Intro"},
		{Kind: ActionPlay},
		{Kind: ActionNextInQueue},
	}, res.Actions)
	assert.Empty(t, res.Events)
}

func editorFrame(sub *game.Game) Frame {
	f := newFrame()
	f.Editor = edit.New(nil)
	f.Subgame = sub
	return f
}

func TestAddMemberNamesAfterLargestNumber(t *testing.T) {
	sub := newGame(member("3", 0, 0), member("Ball", 0, 0), member("7", 0, 0))
	menu := member("Add", 0, 0)
	menu.TodoList[0] = atStart(rules.AddMember)
	g := newGame(menu)

	res := Tick(g, editorFrame(sub))

	require.Len(t, res.Events, 1)
	add, ok := res.Events[0].(history.AddMember)
	require.True(t, ok)
	assert.Equal(t, history.AppendIndex, add.Index)
	assert.Equal(t, "7", add.Member.Name)
	assert.Equal(t, rules.Off, add.Member.Switch)
	p := add.Member.Position
	assert.Equal(t, float32(int(p.X())), p.X())
	assert.True(t, p.X() >= 0 && p.X() < 200 && p.Y() >= 0 && p.Y() < 100)
}

func TestCloneMemberBumpsNumber(t *testing.T) {
	ball := member("Ball 2", 10, 10)
	ball.TodoList[0] = chore(
		[]rules.Question{rules.IsSwitchSetTo{Name: "Ball 2", Switch: rules.On}},
		rules.Win,
	)
	sub := newGame(ball)
	menu := member("Clone", 0, 0)
	menu.TodoList[0] = atStart(rules.CloneMember, rules.RemoveMember)
	g := newGame(menu)

	res := Tick(g, editorFrame(sub))

	require.Len(t, res.Events, 2)
	add := res.Events[0].(history.AddMember)
	assert.Equal(t, "Ball 3", add.Member.Name)
	assert.Equal(t, rules.IsSwitchSetTo{Name: "Ball 3", Switch: rules.On}, add.Member.TodoList[0].Questions[0])
	assert.Equal(t, "Ball 2", sub.Members[0].Name)
	assert.Equal(t, history.RemoveMember{Index: 0}, res.Events[1])
}

func TestEditorDemandsNeedSubgame(t *testing.T) {
	menu := member("Add", 0, 0)
	menu.TodoList[0] = atStart(rules.AddMember, rules.SaveArt, rules.CloneMember)
	g := newGame(menu)
	f := editorFrame(nil)

	res := Tick(g, f)

	assert.Empty(t, res.Events)
	assert.False(t, f.DrawTool.SaveRequested)
}

func TestAnimationScratchEditing(t *testing.T) {
	sub := newGame(member("Ball", 0, 0))
	menu := member("Anim", 0, 0)
	menu.TodoList[0] = atStart(rules.AddAnimationSprite, rules.AddAnimationSprite, rules.AddAnimationSprite)
	g := newGame(menu)
	f := editorFrame(sub)

	Tick(g, f)
	require.Len(t, f.Editor.Animation, 3)
	n, _ := f.Env.Context.Int(env.AnimationIndex)
	assert.Equal(t, 3, n)

	f.Editor.Animation[2] = rules.Sprite{Index: 9, Size: rules.SquareSize(16)}
	g.Members[0].TodoList[0] = chore(nil, rules.MoveAnimationUp)
	Tick(g, f)
	assert.Equal(t, uint32(9), f.Editor.Animation[1].Index)
	n, _ = f.Env.Context.Int(env.AnimationIndex)
	assert.Equal(t, 2, n)

	g.Members[0].TodoList[0] = chore(nil, rules.RemoveAnimationSprite)
	Tick(g, f)
	assert.Len(t, f.Editor.Animation, 2)
}
