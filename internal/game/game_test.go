package game

import (
	"image/color"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/vovakirdan/game-maker/internal/assets"
	"github.com/vovakirdan/game-maker/internal/cartridge"
	"github.com/vovakirdan/game-maker/internal/core"
	"github.com/vovakirdan/game-maker/internal/rng"
	"github.com/vovakirdan/game-maker/internal/rules"
)

func testCartridge() cartridge.Cartridge {
	c := cartridge.New(rules.Small, "", "")
	c.Members = append(c.Members,
		cartridge.Member{
			Name:     "Ball",
			Position: core.Pos(40, 50),
			Sprite:   rules.Sprite{Index: 1, Size: rules.SquareSize(16)},
			Text:     rules.PlainText(""),
			TodoList: []rules.SavedChore{{
				Questions: []rules.Question{rules.IsSwitchSetTo{Name: "Paddle", Switch: rules.On}},
				Demands:   []rules.Demand{rules.Win},
			}},
		},
		cartridge.Member{
			Name:     "Paddle",
			Position: core.Pos(10, 20),
			Sprite:   rules.NoSprite(),
			Text:     rules.PlainText("{Play Screen}"),
			TodoList: []rules.SavedChore{},
		},
	)
	music := cartridge.SoundString("AAEC")
	c.Music = &cartridge.Music{Data: music, Looped: true}
	return c
}

func TestFromCartridgePadsTodoLists(t *testing.T) {
	g, err := FromCartridge(testCartridge(), rng.New(1))
	if err != nil {
		t.Fatalf("FromCartridge: %v", err)
	}
	for _, m := range g.Members {
		if len(m.TodoList) != rules.ChoreCount {
			t.Errorf("%s has %d chores, expected %d", m.Name, len(m.TodoList), rules.ChoreCount)
		}
		if _, ok := m.Motion.(Stop); !ok {
			t.Errorf("%s starts with motion %T", m.Name, m.Motion)
		}
	}
	if g.WinStatus != rules.NotYetWon || g.FrameNumber != 0 {
		t.Errorf("fresh game: status %v frame %d", g.WinStatus, g.FrameNumber)
	}
	if got := g.Members[1].Position; got != (mgl32.Vec2{40, 50}) {
		t.Errorf("Ball position = %v", got)
	}
}

func TestToCartridgeRoundTrip(t *testing.T) {
	c := testCartridge()
	g, err := FromCartridge(c, rng.New(1))
	if err != nil {
		t.Fatalf("FromCartridge: %v", err)
	}
	g.Members[1].Position = mgl32.Vec2{40.9, 50.2}

	back, err := g.ToCartridge()
	if err != nil {
		t.Fatalf("ToCartridge: %v", err)
	}
	c.Published = true
	want, err := c.Encode()
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	got, err := back.Encode()
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if string(got) != string(want) {
		t.Errorf("round trip changed the cartridge\ngot      %s\nexpected %s", got, want)
	}
	if back.Music == nil || !back.Music.Looped {
		t.Error("looped music lost")
	}
}

func TestCloneIsIndependent(t *testing.T) {
	g, err := FromCartridge(testCartridge(), rng.New(3))
	if err != nil {
		t.Fatalf("FromCartridge: %v", err)
	}
	c := g.Clone()
	c.Members[1].Position = mgl32.Vec2{0, 0}
	c.Members[1].TodoList[0].Demands[0] = rules.Lose
	c.Triggered[QuestionID{Member: 1}] = struct{}{}

	if g.Members[1].Position == (mgl32.Vec2{0, 0}) {
		t.Error("clone shares positions")
	}
	if g.Members[1].TodoList[0].Demands[0] != rules.Win {
		t.Error("clone shares todo lists")
	}
	if len(g.Triggered) != 0 {
		t.Error("clone shares triggered questions")
	}
	if g.Rng.Int(0, 1000) != c.Rng.Int(0, 1000) {
		t.Error("clone should continue the same random sequence")
	}
}

func TestScreenPosition(t *testing.T) {
	g, err := FromCartridge(testCartridge(), rng.New(1))
	if err != nil {
		t.Fatalf("FromCartridge: %v", err)
	}
	if got := g.ScreenPosition(); got != (mgl32.Vec2{10, 20}) {
		t.Errorf("ScreenPosition() = %v", got)
	}
	g.Members = g.Members[:2]
	if got := g.ScreenPosition(); got != rules.OuterCentre.Vec() {
		t.Errorf("ScreenPosition() without a screen = %v", got)
	}
	if _, ok := g.MusicMakerMember(); ok {
		t.Error("no member hosts the music maker")
	}
}

func TestRenameMemberCascades(t *testing.T) {
	g, err := FromCartridge(testCartridge(), rng.New(1))
	if err != nil {
		t.Fatalf("FromCartridge: %v", err)
	}
	RenameMember(g.Members, 2, "Paddle", "Bat")

	if g.Members[2].Name != "Bat" {
		t.Errorf("name = %q", g.Members[2].Name)
	}
	q, ok := g.Members[1].TodoList[0].Questions[0].(rules.IsSwitchSetTo)
	if !ok || q.Name != "Bat" {
		t.Errorf("question = %#v, expected the new name", g.Members[1].TodoList[0].Questions[0])
	}
	if _, ok := g.MemberIndex("Paddle"); ok {
		t.Error("old name still resolves")
	}
}

func TestSoundQueue(t *testing.T) {
	q := NewSoundQueue()
	q.Play("Pop")
	q.Play("Bang")
	q.Play("Pop")
	if got := q.Names(); len(got) != 2 || got[0] != "Bang" {
		t.Errorf("Names() = %v", got)
	}
	q.Stop()
	q.Play("Pop")
	if len(q.Names()) != 0 {
		t.Error("stopped queue accepted a sound")
	}
}

// paintSprite fills a block of sprite 0 (16x16) on the sheet.
func paintSprite(a *assets.Assets, minX, minY, maxX, maxY int) {
	for x := minX; x <= maxX; x++ {
		for y := minY; y <= maxY; y++ {
			a.SetPixel(core.Pos(x, y), color.NRGBA{A: 255})
		}
	}
}

func TestConstrainedArea(t *testing.T) {
	a := assets.Blank()
	paintSprite(a, 2, 4, 13, 11)
	m := NewMember("Box", mgl32.Vec2{}, rules.Sprite{Index: 0, Size: rules.SquareSize(16)}, rules.PlainText(""))

	tests := []struct {
		name string
		area core.Rect
		want core.Area
	}{
		{"roomy", core.AABB(0, 0, 100, 100), core.Area{X: 6, Y: 4, W: 89, H: 93}},
		{"narrower than sprite", core.AABB(0, 0, 10, 50), core.Area{X: 5, Y: 4, W: 0, H: 43}},
		{"shorter than sprite", core.AABB(20, 20, 120, 25), core.Area{X: 26, Y: 22.5, W: 89, H: 0}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := ConstrainedArea(a, &m, tc.area); got != tc.want {
				t.Errorf("got %+v, expected %+v", got, tc.want)
			}
		})
	}
}

func TestMembersCollide(t *testing.T) {
	a := assets.Blank()
	paintSprite(a, 0, 0, 15, 15)
	sprite := rules.Sprite{Index: 0, Size: rules.SquareSize(16)}

	left := NewMember("Left", mgl32.Vec2{50, 50}, sprite, rules.PlainText(""))
	near := NewMember("Near", mgl32.Vec2{60, 50}, sprite, rules.PlainText(""))
	far := NewMember("Far", mgl32.Vec2{90, 50}, sprite, rules.PlainText(""))

	if !MembersCollide(&left, &near, a) {
		t.Error("overlapping sprites should collide")
	}
	if MembersCollide(&left, &far, a) {
		t.Error("distant sprites should not collide")
	}
	if !IsPositionInMember(core.Pos(45, 45), &left, a) || IsPositionInMember(core.Pos(30, 30), &left, a) {
		t.Error("IsPositionInMember does not follow the sprite pixels")
	}
	if !IsCollidingWithArea(&left, core.AABB(57, 57, 70, 70), a) {
		t.Error("area touching the sprite corner should collide")
	}
}
