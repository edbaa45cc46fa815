package meta

// Audio plays what the games ask for. Sound names refer to files in the
// library's sounds directory.
type Audio interface {
	PlaySounds(names []string)
	StopSounds()
	PlayMusic(data []byte)
	PauseMusic()
	StopMusic()
}

// NopAudio plays nothing.
type NopAudio struct{}

func (NopAudio) PlaySounds([]string) {}
func (NopAudio) StopSounds()         {}
func (NopAudio) PlayMusic([]byte)    {}
func (NopAudio) PauseMusic()         {}
func (NopAudio) StopMusic()          {}
