package music

import "slices"

// EventKind is the kind of a sequencer event.
type EventKind int

const (
	SetTempo EventKind = iota
	ProgramChange
	NoteOn
	NoteOff
	EndOfTrack
)

// tempoMicros is the fixed tempo written at the head of the first channel.
// Real tempo is applied by the host as a playback speed.
const tempoMicros = 500000

const velocity = 127

// Event is one event of a sequenced track, in the shape of a standard MIDI
// file track event. Delta is in ticks since the previous event.
type Event struct {
	Delta   uint32
	Kind    EventKind
	Channel uint8
	Key     uint8
	Value   uint32
}

// Sequence returns the events for track t of the phrase under the cursor.
// Notes past the last playable step are left out.
func (m *Maker) Sequence(t TrackIndex) []Event {
	phrase := m.Phrase()
	track := phrase.track(t)
	channel := t.Channel()
	inst := m.Instruments[track.Instrument]
	step := uint32(TicksPerBeat / 4)

	var events []Event
	if channel == 0 {
		events = append(events, Event{Kind: SetTempo, Value: tempoMicros})
	}
	events = append(events, Event{Kind: ProgramChange, Channel: channel, Value: uint32(inst.Preset)})

	notes := slices.Clone(track.Notes)
	slices.SortFunc(notes, compareNotes)

	var (
		last    *Note
		lastKey uint8
		elapsed uint32
	)
	for i := range notes {
		n := notes[i]
		if n.Offset > lastPlayableOffset {
			continue
		}
		key := n.Pitch + inst.LowestNote
		if last == nil {
			delta := uint32(n.Offset) * step
			events = append(events, Event{Delta: delta, Kind: NoteOn, Channel: channel, Key: key, Value: velocity})
			elapsed += delta
		} else {
			gap := uint32(n.Offset-last.Offset) * step
			held := min(gap, step*uint32(last.Length))
			events = append(events,
				Event{Delta: held, Kind: NoteOff, Channel: channel, Key: lastKey, Value: velocity},
				Event{Delta: gap - held, Kind: NoteOn, Channel: channel, Key: key, Value: velocity},
			)
			elapsed += gap
		}
		last, lastKey = &notes[i], key
	}

	if last != nil {
		held := min(uint32(lastPlayableOffset-last.Offset)*step, step*uint32(last.Length))
		events = append(events, Event{Delta: held, Kind: NoteOff, Channel: channel, Key: lastKey, Value: velocity})
		elapsed += held
	}

	total := uint32(TicksPerBeat * MeasuresPerRun)
	var rest uint32
	if total > elapsed {
		rest = total - elapsed
	}
	return append(events, Event{Delta: rest, Kind: EndOfTrack})
}

// Song returns one sequenced track per playing track: only the edited
// track in solo playback, every track otherwise.
func (m *Maker) Song() [][]Event {
	if m.IsSolo() {
		return [][]Event{m.Sequence(m.Editing.Track)}
	}
	var tracks [][]Event
	for _, t := range AllTracks() {
		tracks = append(tracks, m.Sequence(t))
	}
	return tracks
}
