package tui

import (
	"strings"

	"github.com/vovakirdan/game-maker/internal/core"
)

// StatusAudio stands in for a sound device: terminals cannot play the
// game's audio, so it remembers what was asked for and shows it in the
// status bar.
type StatusAudio struct {
	Log core.Logger

	sounds string
	music  string
}

func (a *StatusAudio) logger() core.Logger {
	if a.Log == nil {
		return core.NopLogger{}
	}
	return a.Log
}

func (a *StatusAudio) PlaySounds(names []string) {
	a.sounds = strings.Join(names, " ")
	a.logger().Debug("play sounds", "names", names)
}

func (a *StatusAudio) StopSounds() { a.sounds = "" }

func (a *StatusAudio) PlayMusic(data []byte) {
	if len(data) == 0 {
		a.music = ""
		return
	}
	a.music = "playing"
}

func (a *StatusAudio) PauseMusic() {
	if a.music != "" {
		a.music = "paused"
	}
}

func (a *StatusAudio) StopMusic() { a.music = "" }

// Status is a one line summary, empty when nothing plays.
func (a *StatusAudio) Status() string {
	var parts []string
	if a.sounds != "" {
		parts = append(parts, "♪ "+a.sounds)
	}
	if a.music != "" {
		parts = append(parts, "music "+a.music)
	}
	return strings.Join(parts, "  ")
}
