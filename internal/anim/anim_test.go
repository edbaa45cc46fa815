package anim

import "testing"

func TestSpeedTables(t *testing.T) {
	tests := []struct {
		speed  Speed
		frames int
		pixels float32
		label  string
	}{
		{SpeedVerySlow, 60, 0.5, "Very Slow"},
		{SpeedSlow, 30, 1, "Slow"},
		{SpeedNormal, 15, 2, "Normal"},
		{SpeedFast, 8, 4, "Fast"},
		{SpeedVeryFast, 4, 8, "Very Fast"},
	}

	for _, tc := range tests {
		t.Run(tc.label, func(t *testing.T) {
			if got := tc.speed.FramesPerStep(); got != tc.frames {
				t.Errorf("FramesPerStep() = %d, expected %d", got, tc.frames)
			}
			if got := tc.speed.PixelsPerTick(); got != tc.pixels {
				t.Errorf("PixelsPerTick() = %v, expected %v", got, tc.pixels)
			}
			if got := tc.speed.String(); got != tc.label {
				t.Errorf("String() = %q, expected %q", got, tc.label)
			}
		})
	}
}

func TestPlayOnceLifecycle(t *testing.T) {
	a := Started([]string{"s0", "s1", "s2"}, SpeedFast, StylePlayOnce)

	changes := map[int]string{}
	finishedAt := -1
	for frame := 1; frame <= 40; frame++ {
		if s, ok := a.Update(); ok {
			changes[frame] = s
		}
		if a.IsFinished() && finishedAt < 0 {
			finishedAt = frame
		}
	}

	if len(changes) != 2 || changes[8] != "s1" || changes[16] != "s2" {
		t.Errorf("sprite changes = %v, expected s1 at 8 and s2 at 16", changes)
	}
	if finishedAt != 24 {
		t.Errorf("finished at frame %d, expected 24", finishedAt)
	}
	if a.State() != None {
		t.Errorf("State() = %v after finishing, expected None", a.State())
	}
}

func TestLoopWraps(t *testing.T) {
	a := Started([]int{0, 1}, SpeedVeryFast, StyleLoop)

	var seen []int
	for frame := 1; frame <= 12; frame++ {
		if s, ok := a.Update(); ok {
			seen = append(seen, s)
		}
	}

	expected := []int{1, 0, 1}
	if len(seen) != len(expected) {
		t.Fatalf("seen = %v, expected %v", seen, expected)
	}
	for i := range expected {
		if seen[i] != expected[i] {
			t.Errorf("seen = %v, expected %v", seen, expected)
		}
	}
	if a.State() != Animating {
		t.Errorf("looping animation should keep animating, got %v", a.State())
	}
}

func TestNoneProducesNothing(t *testing.T) {
	var a Animation[int]
	for i := 0; i < 5; i++ {
		if _, ok := a.Update(); ok {
			t.Fatal("None animation produced a sprite")
		}
	}
}

func TestEmptySprites(t *testing.T) {
	a := Started([]int{}, SpeedVeryFast, StyleLoop)
	for i := 0; i < 10; i++ {
		if _, ok := a.Update(); ok {
			t.Fatal("empty animation produced a sprite")
		}
	}
}

func TestSpeedText(t *testing.T) {
	b, _ := SpeedVeryFast.MarshalText()
	if string(b) != "VeryFast" {
		t.Errorf("MarshalText() = %s", b)
	}
	var s Speed
	if err := s.UnmarshalText([]byte("Slow")); err != nil || s != SpeedSlow {
		t.Errorf("UnmarshalText(Slow) = %v, %v", s, err)
	}
	if err := s.UnmarshalText([]byte("Warp")); err == nil {
		t.Error("UnmarshalText(Warp) should fail")
	}
}
