package timing

import (
	"testing"
	"time"
)

func framesPlayed(t *TimeKeeping) int {
	frame := 0
	for t.HasMoreFramesToPlay(frame) {
		frame++
	}
	return frame
}

func TestUpdate(t *testing.T) {
	start := time.Unix(0, 0)

	tests := []struct {
		name     string
		elapsed  time.Duration
		rate     float64
		expected int
	}{
		{"one frame", 10 * time.Millisecond, 1, 1},
		{"two frames", 20 * time.Millisecond, 1, 2},
		{"capped", 2 * time.Second, 1, 4},
		{"double speed", 20 * time.Millisecond, 2, 3},
		{"paused", 40 * time.Millisecond, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tk := New(start, 60)
			tk.Update(start.Add(tt.elapsed), tt.rate)
			if got := framesPlayed(&tk); got != tt.expected {
				t.Errorf("got %d frames, expected %d", got, tt.expected)
			}
		})
	}
}

func TestReset(t *testing.T) {
	start := time.Unix(0, 0)
	tk := New(start, 0)
	tk.Update(start.Add(40*time.Millisecond), 1)
	tk.Reset()

	if tk.HasMoreFramesToPlay(0) {
		t.Error("expected no frames after reset")
	}

	tk.Update(start.Add(50*time.Millisecond), 1)
	if got := framesPlayed(&tk); got != 1 {
		t.Errorf("got %d frames, expected 1", got)
	}
}
