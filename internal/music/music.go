// Package music holds the data model of the music maker: phrases of note
// tracks, the instrument list and the cursor the editor works on. Playback is
// left to the host, which reads queued actions and the track events built here.
package music

import (
	"cmp"
	"fmt"
	"slices"
)

const (
	TicksPerBeat         = 960
	PotentialNoteOffset  = 7
	InstrumentTrackCount = 4
	DrumsChannel         = 10

	MinTempo       = 60
	MaxTempo       = 240
	DefaultTempo   = 120
	MaxNoteLength  = 16
	MeasuresPerRun = 8

	// lastPlayableOffset is the final step of a phrase that is still sent
	// to the sequencer.
	lastPlayableOffset = 32
)

// Note is one placed note. Offset counts sixteenth steps from the start of
// the phrase, Pitch counts semitones above the instrument's lowest note.
type Note struct {
	Offset uint8 `json:"offset"`
	Pitch  uint8 `json:"pitch"`
	Length uint8 `json:"length"`
}

// NewNote returns a one step note.
func NewNote(offset, pitch uint8) Note {
	return Note{Offset: offset, Pitch: pitch, Length: 1}
}

func compareNotes(a, b Note) int {
	if c := cmp.Compare(a.Offset, b.Offset); c != 0 {
		return c
	}
	if c := cmp.Compare(a.Pitch, b.Pitch); c != 0 {
		return c
	}
	return cmp.Compare(a.Length, b.Length)
}

// TrackIndex selects one of the instrument tracks or the drum track.
type TrackIndex int

// Drums is the drum track.
const Drums TrackIndex = -1

// Next moves to the following instrument track, wrapping to the first.
// The drum track is skipped until drums can be edited.
func (t TrackIndex) Next() TrackIndex {
	if t == Drums || int(t)+1 >= InstrumentTrackCount {
		return 0
	}
	return t + 1
}

// Previous moves to the preceding instrument track, wrapping to the last.
func (t TrackIndex) Previous() TrackIndex {
	if t == Drums || t == 0 {
		return InstrumentTrackCount - 1
	}
	return t - 1
}

// Channel is the sequencer channel the track plays on.
func (t TrackIndex) Channel() uint8 {
	if t == Drums {
		return DrumsChannel
	}
	return uint8(t)
}

func (t TrackIndex) String() string {
	if t == Drums {
		return "Drums"
	}
	return fmt.Sprintf("Track %d", int(t)+1)
}

// AllTracks lists every track in playback order.
func AllTracks() []TrackIndex {
	return []TrackIndex{0, 1, 2, 3, Drums}
}

// PointInMusic is where the editor cursor sits.
type PointInMusic struct {
	Phrase int        `json:"phrase"`
	Track  TrackIndex `json:"track"`
	Page   int        `json:"page"`
}

// KeyCount is the size of the on-screen keyboard.
type KeyCount int

const (
	KeysNormal   KeyCount = 25
	KeysExtended KeyCount = 37
)

type TimeSignature int

const (
	FourFour TimeSignature = iota
	ThreeFour
)

func (s TimeSignature) String() string {
	if s == ThreeFour {
		return "3/4"
	}
	return "4/4"
}

type Track struct {
	Notes      []Note `json:"notes"`
	Instrument int    `json:"instrument"`
}

type Phrase struct {
	Tracks    [InstrumentTrackCount]Track `json:"tracks"`
	Drums     Track                       `json:"drums"`
	Keys      KeyCount                    `json:"keys"`
	Signature TimeSignature               `json:"signature"`
}

// NewPhrase returns an empty 4/4 phrase on the normal keyboard.
func NewPhrase() Phrase {
	return Phrase{Keys: KeysNormal}
}

func (p *Phrase) IsExtended() bool    { return p.Keys == KeysExtended }
func (p *Phrase) IsAlternative() bool { return p.Signature == ThreeFour }

func (p *Phrase) track(t TrackIndex) *Track {
	if t == Drums {
		return &p.Drums
	}
	return &p.Tracks[t]
}

type Playback int

const (
	Solo Playback = iota
	Multi
)

// Instrument is a general MIDI preset and the note its keyboard starts on.
type Instrument struct {
	Name       string
	Preset     uint8
	LowestNote uint8
}

// DefaultInstruments returns the built-in instrument list.
func DefaultInstruments() []Instrument {
	return []Instrument{
		{"Piano", 0, 48},
		{"Organ", 18, 48},
		{"Harpsichord", 6, 48},
		{"Harmonica", 22, 48},
		{"Flute", 73, 60},
		{"Trumpet", 56, 48},
		{"Saxophone", 65, 48},
		{"Pan Flute", 75, 48},

		{"Acoustic Guitar", 24, 48},
		{"Electric Guitar", 29, 36},
		{"Banjo", 105, 36},
		{"Bass Guitar", 33, 24},
		{"Violin", 40, 60},
		{"Xylophone", 12, 60},
		{"Vibraphone", 11, 60},
		{"Timpani", 47, 36},

		{"Polysynth", 90, 48},
		{"Space Voice", 91, 60},
		{"Halo Pad", 94, 60},
		{"Synth Bass", 39, 24},
		{"Echo Drops", 102, 60},
		{"Call Me", 124, 48},

		{"Dog", 61, 48},
		{"Bagpipes", 109, 48},
		{"Squeal", 120, 48},
		{"Windchime", 104, 60},
		{"Ocarina", 79, 48},
		{"Harp", 46, 48},
		{"Brakes", 127, 48},
		{"Bell Tower", 112, 24},

		{"Choir", 52, 48},
		{"Oohs", 53, 48},
		{"Synth Voice", 54, 48},
		{"Whistlin'", 78, 72},
		{"Celesta", 8, 72},
		{"Music Box", 10, 60},
		{"Ukelele", 106, 48},
		{"Taiko Drum", 116, 36},

		{"Lead", 83, 48},
		{"Former", 84, 36},
		{"Blower", 85, 48},
		{"Elec", 86, 24},
		{"Elec Lead", 87, 36},
		{"High", 88, 72},
		{"Space", 89, 60},
		{"Light Elec", 93, 36},

		{"Era", 95, 48},
		{"Mid", 96, 48},
		{"Soft", 97, 48},
		{"Melon", 98, 36},
		{"Gen", 99, 48},
		{"Rev", 100, 48},
		{"Alt", 101, 48},
		{"Band", 103, 36},
		{"Chip Organ", 108, 48},
		{"Test Ins 1", 107, 24},
		{"Test Ins 2", 110, 36},
		{"Slap Bass", 36, 24},
		{"Accordian", 21, 48},
	}
}

// Action is a request for the audio host.
type Action int

const (
	PlayPhrase Action = iota
	PausePhrase
	StopPhrase
	PreviousInstrument
	NextInstrument
	PreviousTrack
	NextTrack
	RefreshSong
)

var actionNames = []string{
	"PlayPhrase", "PausePhrase", "StopPhrase", "PreviousInstrument",
	"NextInstrument", "PreviousTrack", "NextTrack", "RefreshSong",
}

func (a Action) String() string {
	if int(a) < 0 || int(a) >= len(actionNames) {
		return fmt.Sprintf("Action(%d)", int(a))
	}
	return actionNames[a]
}

// Maker is the music maker state owned by an editing session.
type Maker struct {
	Instruments  []Instrument
	IntendedNote Note
	Tempo        int
	Editing      PointInMusic
	Phrases      []Phrase
	Playback     Playback

	actions map[Action]struct{}
}

// NewMaker returns a maker with one empty phrase at the default tempo.
func NewMaker() *Maker {
	return &Maker{
		Instruments:  DefaultInstruments(),
		IntendedNote: NewNote(0, 0),
		Tempo:        DefaultTempo,
		Phrases:      []Phrase{NewPhrase()},
		Playback:     Solo,
		actions:      make(map[Action]struct{}),
	}
}

// Queue records an action for the host. Queuing twice is the same as once.
func (m *Maker) Queue(a Action) {
	if m.actions == nil {
		m.actions = make(map[Action]struct{})
	}
	m.actions[a] = struct{}{}
}

// Take removes a queued action and reports whether it was queued.
func (m *Maker) Take(a Action) bool {
	if _, ok := m.actions[a]; !ok {
		return false
	}
	delete(m.actions, a)
	return true
}

// Pending reports whether a is queued without consuming it.
func (m *Maker) Pending(a Action) bool {
	_, ok := m.actions[a]
	return ok
}

// RefreshSong asks the host to rebuild the sequence.
func (m *Maker) RefreshSong() { m.Queue(RefreshSong) }

// HandleNavigation applies queued track and instrument changes and returns
// the actions it consumed so the host can retune its synthesizer.
func (m *Maker) HandleNavigation() []Action {
	var handled []Action
	if m.Take(NextTrack) {
		m.Editing.Track = m.Editing.Track.Next()
		m.RefreshSong()
		handled = append(handled, NextTrack)
	}
	if m.Take(PreviousTrack) {
		m.Editing.Track = m.Editing.Track.Previous()
		m.RefreshSong()
		handled = append(handled, PreviousTrack)
	}
	if m.Take(NextInstrument) {
		m.NextInstrument()
		m.RefreshSong()
		handled = append(handled, NextInstrument)
	}
	if m.Take(PreviousInstrument) {
		m.PreviousInstrument()
		m.RefreshSong()
		handled = append(handled, PreviousInstrument)
	}
	return handled
}

func (m *Maker) Phrase() *Phrase { return &m.Phrases[m.Editing.Phrase] }
func (m *Maker) Track() *Track   { return m.Phrase().track(m.Editing.Track) }
func (m *Maker) Notes() []Note   { return m.Track().Notes }

// SetNotes replaces the notes of the track under the cursor.
func (m *Maker) SetNotes(notes []Note) {
	m.Track().Notes = notes
}

func (m *Maker) IsExtendedKeyboard() bool     { return m.Phrase().IsExtended() }
func (m *Maker) IsAlternativeSignature() bool { return m.Phrase().IsAlternative() }

func (m *Maker) SwitchToExtendedKeyboard()     { m.Phrase().Keys = KeysExtended }
func (m *Maker) SwitchToStandardKeyboard()     { m.Phrase().Keys = KeysNormal }
func (m *Maker) SwitchToAlternativeSignature() { m.Phrase().Signature = ThreeFour }
func (m *Maker) SwitchToStandardSignature()    { m.Phrase().Signature = FourFour }

// TrimToStandardKeyboard drops notes the normal keyboard cannot show.
func (m *Maker) TrimToStandardKeyboard() {
	m.SetNotes(slices.DeleteFunc(slices.Clone(m.Notes()), func(n Note) bool {
		return n.Pitch < PotentialNoteOffset || n.Pitch >= PotentialNoteOffset+uint8(KeysNormal)
	}))
}

// TrimToAlternativeSignature drops notes past the end of a 3/4 phrase.
func (m *Maker) TrimToAlternativeSignature() {
	m.SetNotes(slices.DeleteFunc(slices.Clone(m.Notes()), func(n Note) bool {
		return n.Offset >= 24
	}))
}

func (m *Maker) InstrumentIndex() int { return m.Track().Instrument }

func (m *Maker) NextInstrument() {
	t := m.Track()
	t.Instrument = (t.Instrument + 1) % len(m.Instruments)
}

func (m *Maker) PreviousInstrument() {
	t := m.Track()
	if t.Instrument == 0 {
		t.Instrument = len(m.Instruments) - 1
	} else {
		t.Instrument--
	}
}

func (m *Maker) CurrentInstrument() Instrument {
	return m.Instruments[m.InstrumentIndex()]
}

// NoteHeight is the pixel height of one key row.
func (m *Maker) NoteHeight() int {
	if m.IsExtendedKeyboard() {
		return 4
	}
	return 6
}

func (m *Maker) NoteCount() int {
	if m.IsExtendedKeyboard() {
		return int(KeysExtended)
	}
	return int(KeysNormal)
}

// NoteAdjust shifts the normal keyboard up so both keyboards share a pitch
// space.
func (m *Maker) NoteAdjust() uint8 {
	if m.IsExtendedKeyboard() {
		return 0
	}
	return PotentialNoteOffset
}

// MaxOffset is the number of steps on one page.
func (m *Maker) MaxOffset() uint8 {
	if m.IsAlternativeSignature() {
		return 12
	}
	return 16
}

// Offset is the first step shown on the current page.
func (m *Maker) Offset() uint8 {
	if m.Editing.Page == 1 {
		return m.MaxOffset()
	}
	return 0
}

func (m *Maker) IsSolo() bool { return m.Playback == Solo }

// IsNotePossible reports whether the intended note fits at step x without
// overlapping another note. A note starting at x is replaced, not overlapped.
func (m *Maker) IsNotePossible(x uint8) bool {
	length := m.IntendedNote.Length
	for _, n := range m.Notes() {
		if n.Offset > x+length-1 || n.Offset+n.Length-1 < x || n.Offset == x {
			continue
		}
		return false
	}
	return true
}

// RemoveNotesAt drops every note starting at step x.
func (m *Maker) RemoveNotesAt(x uint8) {
	m.SetNotes(slices.DeleteFunc(slices.Clone(m.Notes()), func(n Note) bool {
		return n.Offset == x
	}))
}

// PlaceNote puts n on the track, replacing any note starting at the same step.
func (m *Maker) PlaceNote(n Note) {
	m.RemoveNotesAt(n.Offset)
	m.SetNotes(append(m.Notes(), n))
}

// FindNoteAt returns the note of the given pitch sounding at step x.
func (m *Maker) FindNoteAt(x, pitch uint8) (Note, bool) {
	for _, n := range m.Notes() {
		if x >= n.Offset && x < n.Offset+n.Length && n.Pitch == pitch {
			return n, true
		}
	}
	return Note{}, false
}

// NoteUnder maps a point on the outer screen to the grid step and pitch
// under it.
func (m *Maker) NoteUnder(px, py int) (Note, bool) {
	row := ((216 - py) - 40) / m.NoteHeight()
	if row < 0 || row >= m.NoteCount() {
		return Note{}, false
	}
	dx := px - 64
	if dx < 0 {
		return Note{}, false
	}
	step := dx / 16
	if step >= int(m.MaxOffset()) {
		return Note{}, false
	}
	return Note{
		Offset: uint8(step) + m.Offset(),
		Pitch:  uint8(row) + m.NoteAdjust(),
		Length: m.IntendedNote.Length,
	}, true
}

// SetTempo clamps t into range. It reports the stored tempo and whether the
// song needs rebuilding.
func (m *Maker) SetTempo(t int) (int, bool) {
	t = min(max(t, MinTempo), MaxTempo)
	if t == m.Tempo {
		return t, false
	}
	m.Tempo = t
	m.RefreshSong()
	return t, true
}

// SetNoteLength clamps the length of the next placed note and returns it.
func (m *Maker) SetNoteLength(length int) uint8 {
	m.IntendedNote.Length = uint8(min(max(length, 1), MaxNoteLength))
	return m.IntendedNote.Length
}

// ScrollNoteLength nudges the note length by one step in the scroll direction.
func (m *Maker) ScrollNoteLength(scroll float32) uint8 {
	switch {
	case scroll > 0:
		return m.SetNoteLength(int(m.IntendedNote.Length) + 1)
	case scroll < 0:
		return m.SetNoteLength(int(m.IntendedNote.Length) - 1)
	}
	return m.IntendedNote.Length
}

// SetPlayback switches between playing the current track and every track.
func (m *Maker) SetPlayback(solo bool) {
	if solo != m.IsSolo() {
		m.RefreshSong()
	}
	if solo {
		m.Playback = Solo
	} else {
		m.Playback = Multi
	}
}

// Clone returns a maker that shares no notes with m. Queued actions are not
// copied.
func (m *Maker) Clone() *Maker {
	c := *m
	c.Instruments = slices.Clone(m.Instruments)
	c.Phrases = make([]Phrase, len(m.Phrases))
	for i, p := range m.Phrases {
		for t := range p.Tracks {
			p.Tracks[t].Notes = slices.Clone(p.Tracks[t].Notes)
		}
		p.Drums.Notes = slices.Clone(p.Drums.Notes)
		c.Phrases[i] = p
	}
	c.actions = make(map[Action]struct{})
	return &c
}
