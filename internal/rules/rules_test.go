package rules

import (
	"encoding/json"
	"testing"

	"github.com/vovakirdan/game-maker/internal/anim"
	"github.com/vovakirdan/game-maker/internal/core"
)

func TestSavedChoreRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		json string
	}{
		{
			name: "questions and demands",
			json: `{"questions":[{"IsTimeAt":{"Random":{"start":10,"end":20}}},"None",` +
				`{"IsMouseInteracting":{"which":"Left","state":"Press","hover":"This"}}],` +
				`"demands":[{"Motion":{"Go":{"direction":["South"],"speed":"Fast"}}},"Win",` +
				`{"SetText":{"contents":"hi","colour":{"r":1,"g":1,"b":1,"a":1}}}]}`,
		},
		{
			name: "nested member references",
			json: `{"questions":[{"IsCollidingWith":{"Member":{"name":"Ball"}}},` +
				`{"IsSwitchSetTo":{"name":"Lamp","switch":"SwitchedOn"}}],` +
				`"demands":[{"Motion":{"JumpTo":{"Member":{"name":"Ball"}}}},` +
				`{"Motion":{"Target":{"name":"Ball","offset":{"y":2,"x":1},"speed":"Slow"}}}]}`,
		},
		{
			name: "any button state",
			json: `{"questions":[{"IsMouseInteracting":{"which":"Right","state":null,"hover":"Anywhere"}}],` +
				`"demands":[{"Animate":{"style":"PlayOnce","speed":"Normal","sprites":[{"index":1,"size":{"Square":16}}]}}]}`,
		},
		{
			name: "area payloads",
			json: `{"questions":[{"IsCollidingWith":{"Area":{"min":{"y":0,"x":0},"max":{"y":10,"x":20}}}}],` +
				`"demands":[{"Motion":{"Roam":{"roam_type":"Bounce","area":{"min":{"y":1,"x":2},"max":{"y":3,"x":4}},` +
				`"speed":"VeryFast","movement_handling":"Anywhere"}}},"StopSounds",{"SetSprite":{"index":0,"size":"InnerBg"}}]}`,
		},
		{
			name: "empty",
			json: `{"questions":[],"demands":[]}`,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var c SavedChore
			if err := json.Unmarshal([]byte(tc.json), &c); err != nil {
				t.Fatalf("Unmarshal: %v", err)
			}
			got, err := json.Marshal(c)
			if err != nil {
				t.Fatalf("Marshal: %v", err)
			}
			if string(got) != tc.json {
				t.Errorf("round trip\n got: %s\nwant: %s", got, tc.json)
			}
		})
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name string
		json string
	}{
		{"unknown question", `{"questions":["IsRaining"],"demands":[]}`},
		{"missing payload", `{"questions":["IsTimeAt"],"demands":[]}`},
		{"unknown demand", `{"questions":[],"demands":["Explode"]}`},
		{"two keys", `{"questions":[],"demands":[{"Win":1,"Lose":2}]}`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var c SavedChore
			if err := json.Unmarshal([]byte(tc.json), &c); err == nil {
				t.Errorf("expected an error for %s", tc.json)
			}
		})
	}
}

func TestTrimAndPadTodoList(t *testing.T) {
	list := DefaultTodoList()
	list[0].Questions[1] = IsTimeAt{When: Start}
	list[0].Demands[0] = Win
	list[2].Demands[3] = SetSwitch{Switch: On}

	saved := TrimTodoList(list)
	if len(saved) != 3 {
		t.Fatalf("len(saved) = %d, expected 3", len(saved))
	}
	if len(saved[0].Questions) != 2 || len(saved[0].Demands) != 1 {
		t.Errorf("chore 0 trimmed to %d questions and %d demands", len(saved[0].Questions), len(saved[0].Demands))
	}
	if len(saved[1].Questions) != 0 || len(saved[1].Demands) != 0 {
		t.Errorf("chore 1 should be empty, got %+v", saved[1])
	}
	if len(saved[2].Demands) != 4 {
		t.Errorf("chore 2 kept %d demands, expected 4", len(saved[2].Demands))
	}

	padded := PadTodoList(saved)
	if len(padded) != ChoreCount {
		t.Fatalf("len(padded) = %d, expected %d", len(padded), ChoreCount)
	}
	for i := range list {
		if !list[i].Equal(padded[i]) {
			t.Errorf("chore %d changed after trim and pad", i)
		}
	}

	first, _ := json.Marshal(saved)
	second, _ := json.Marshal(TrimTodoList(padded))
	if string(first) != string(second) {
		t.Errorf("trim is not stable\n%s\n%s", first, second)
	}
}

func TestTrimAllEmpty(t *testing.T) {
	saved := TrimTodoList(DefaultTodoList())
	if len(saved) != 0 {
		t.Errorf("len(saved) = %d, expected 0", len(saved))
	}
}

func TestRenameInTodoList(t *testing.T) {
	list := DefaultTodoList()
	list[0].Questions[0] = IsSwitchSetTo{Name: "Ball", Switch: On}
	list[0].Questions[1] = IsCollidingWith{With: WithMember{Name: "Ball"}}
	list[0].Questions[2] = IsVariableSetTo{Name: "Ball", Value: "1"}
	list[1].Demands[0] = MotionDemand{Motion: JumpTo{Location: ToMember{Name: "Ball"}}}
	list[1].Demands[1] = MotionDemand{Motion: Target{Name: "Ball", Offset: core.Pos(1, 2), Speed: anim.SpeedFast}}
	list[1].Demands[2] = MotionDemand{Motion: AttachFromPositions{Name: "Ball"}}
	list[1].Demands[3] = MotionDemand{Motion: Swap{Name: "Ball"}}

	RenameInTodoList(list, "Ball", "Orb")

	if q := list[0].Questions[0].(IsSwitchSetTo); q.Name != "Orb" || q.Switch != On {
		t.Errorf("switch question = %+v", q)
	}
	if q := list[0].Questions[1].(IsCollidingWith); q.With != (WithMember{Name: "Orb"}) {
		t.Errorf("collision question = %+v", q)
	}
	if q := list[0].Questions[2].(IsVariableSetTo); q.Name != "Ball" {
		t.Errorf("variable names are not member names, got %+v", q)
	}
	if d := list[1].Demands[0].(MotionDemand); d.Motion != (JumpTo{Location: ToMember{Name: "Orb"}}) {
		t.Errorf("jump demand = %+v", d)
	}
	if d := list[1].Demands[1].(MotionDemand); d.Motion != (Target{Name: "Orb", Offset: core.Pos(1, 2), Speed: anim.SpeedFast}) {
		t.Errorf("target demand = %+v", d)
	}
	if d := list[1].Demands[2].(MotionDemand); d.Motion != (AttachFromPositions{Name: "Orb"}) {
		t.Errorf("attach demand = %+v", d)
	}
	if d := list[1].Demands[3].(MotionDemand); d.Motion != (Swap{Name: "Ball"}) {
		t.Errorf("swap is not renamed, got %+v", d)
	}
}

func TestSwitchEdgeCollapse(t *testing.T) {
	s := Off
	s.Apply(SwitchedOn)
	if s != SwitchedOn {
		t.Fatalf("after applying SwitchedOn to Off: %v", s)
	}
	for i := 0; i < 3; i++ {
		s.Apply(SwitchedOn)
		if s != On {
			t.Fatalf("tick %d: %v, expected On", i, s)
		}
	}
	s.Apply(SwitchedOff)
	if s != SwitchedOff {
		t.Fatalf("after applying SwitchedOff to On: %v", s)
	}
	s.Apply(SwitchedOff)
	if s != Off {
		t.Errorf("after one more tick: %v, expected Off", s)
	}
}

func TestWinStatusMatches(t *testing.T) {
	tests := []struct {
		want   WinStatus
		actual WinStatus
		ok     bool
	}{
		{Won, JustWon, true},
		{Won, Won, true},
		{Won, NotYetWon, false},
		{JustWon, Won, false},
		{NotYetWon, JustLost, true},
		{NotYetWon, JustWon, false},
		{NotYetLost, Won, true},
		{NotYetLost, Lost, false},
	}
	for _, tc := range tests {
		if got := tc.want.Matches(tc.actual); got != tc.ok {
			t.Errorf("%v.Matches(%v) = %v, expected %v", tc.want, tc.actual, got, tc.ok)
		}
	}
}

func TestNewVariants(t *testing.T) {
	for _, name := range []string{"Is Time At", "IsAnimationFinished", "None", "Is Shortcut Used"} {
		if _, err := NewQuestion(name); err != nil {
			t.Errorf("NewQuestion(%q): %v", name, err)
		}
	}
	for _, name := range []string{"Motion", "Set Text From Position", "None", "Next Track"} {
		if _, err := NewDemand(name); err != nil {
			t.Errorf("NewDemand(%q): %v", name, err)
		}
	}
	for _, name := range []string{"Go To Point", "Stop", "Attach From Positions"} {
		if _, err := NewMotion(name); err != nil {
			t.Errorf("NewMotion(%q): %v", name, err)
		}
	}
	if _, err := NewQuestion("Is Raining"); err == nil {
		t.Error("NewQuestion accepted an unknown name")
	}
}

func TestDescribe(t *testing.T) {
	tests := []struct {
		got  string
		want string
	}{
		{DescribeQuestion(IsTimeAt{When: Start}), "Has the game just started"},
		{DescribeQuestion(IsTimeAt{When: Exact{Time: 13}}), "Is the time 2-2"},
		{DescribeQuestion(IsSwitchSetTo{Name: "A very long member name", Switch: On}), "Is A very long ...'s switch On"},
		{DescribeQuestion(IsMouseInteracting{Which: LeftButton, State: StatePress, Hover: This}), "Has this been clicked"},
		{DescribeQuestion(nil), "None"},
		{DescribeDemand(MotionDemand{Motion: Go{Direction: NewDirectionSet(South), Speed: anim.SpeedFast}}), "Go South Fast"},
		{DescribeDemand(MotionDemand{Motion: Go{Direction: NewDirectionSet(South, North), Speed: anim.SpeedSlow}}), "Go Slow in a random direction"},
		{DescribeDemand(Win), "Win this game"},
		{DescribeDemand(AddToQueue{Name: "Intro"}), "Add Intro to queue"},
	}
	for _, tc := range tests {
		if tc.got != tc.want {
			t.Errorf("got %q, expected %q", tc.got, tc.want)
		}
	}
}

func TestSpriteSheetGeometry(t *testing.T) {
	s := Sprite{Index: 33, Size: SquareSize(16)}
	if got := s.PositionInSheet(); got != core.Pos(16, 16) {
		t.Errorf("PositionInSheet() = %v", got)
	}
	bg := Sprite{Index: 1, Size: OuterBgSize}
	if got := bg.PositionInSheet(); got != core.Pos(0, OuterHeight) {
		t.Errorf("OuterBg PositionInSheet() = %v", got)
	}
	if got := SquareSize(64).PerSheet(); got != 64 {
		t.Errorf("PerSheet() = %d, expected 64", got)
	}
}
