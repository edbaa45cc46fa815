package meta

import (
	"time"

	"github.com/vovakirdan/game-maker/internal/core"
	"github.com/vovakirdan/game-maker/internal/timing"
)

// Host runs a metagame at a fixed frame rate from wall clock time.
type Host struct {
	Meta *Metagame
	Time timing.TimeKeeping
}

// NewHost starts the clock at now. rate is frames per second.
func NewHost(m *Metagame, now time.Time, rate int) *Host {
	return &Host{Meta: m, Time: timing.New(now, rate)}
}

// Frame plays every game frame that is due at now. input is called once per
// game frame. Playing stops early when a new game was requested; it is
// loaded once the frames are done and starts from frame zero.
func (h *Host) Frame(now time.Time, input func() core.Input) (Outcome, error) {
	m := h.Meta
	h.Time.Update(now, m.Env.PlaybackRate)

	for h.Time.HasMoreFramesToPlay(m.Game.FrameNumber) {
		outcome, err := m.Update(input())
		if err != nil || outcome == Quit {
			return outcome, err
		}
		if m.Nav.HasNext() {
			break
		}
	}

	m.Transition.Advance()

	if l, ok := m.Nav.TakeNext(); ok {
		h.Time.Reset()
		g, err := m.Load(l)
		if err != nil {
			return Continue, err
		}
		g.FrameNumber = 0
		m.Game = g
		m.Log.Debug("loaded game", "link", l.String())
	}
	return Continue, nil
}
