// Package timing decides how many game frames to run for the wall time that
// has passed.
package timing

import "time"

const (
	// MaxFrameTime caps how much wall time one update can add, so a stall
	// does not trigger a burst of catch-up frames.
	MaxFrameTime = 50 * time.Millisecond
	DefaultRate  = 60
)

// TimeKeeping accumulates scaled wall time and compares it with the number
// of frames already played.
type TimeKeeping struct {
	TotalElapsed time.Duration

	last         time.Time
	frameTime    time.Duration
	maxFrameTime time.Duration
}

// New starts keeping time at now for a game running at rate frames per
// second. A rate of zero or less uses DefaultRate.
func New(now time.Time, rate int) TimeKeeping {
	if rate <= 0 {
		rate = DefaultRate
	}
	return TimeKeeping{
		last:         now,
		frameTime:    time.Second / time.Duration(rate),
		maxFrameTime: MaxFrameTime,
	}
}

// WithMaxFrameTime returns t with a different cap on a single update.
func (t TimeKeeping) WithMaxFrameTime(d time.Duration) TimeKeeping {
	if d > 0 {
		t.maxFrameTime = d
	}
	return t
}

// Update adds the time since the last update, capped and then scaled by the
// playback rate.
func (t *TimeKeeping) Update(now time.Time, playbackRate float64) {
	elapsed := min(now.Sub(t.last), t.maxFrameTime)
	t.TotalElapsed += time.Duration(float64(elapsed) * playbackRate)
	t.last = now
}

// HasMoreFramesToPlay reports whether frame is still behind the clock.
func (t TimeKeeping) HasMoreFramesToPlay(frame int) bool {
	return t.TotalElapsed > time.Duration(frame)*t.frameTime
}

// Reset rewinds the clock for a freshly loaded game. The timestamp of the
// last update is kept.
func (t *TimeKeeping) Reset() {
	t.TotalElapsed = 0
}
