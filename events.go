package main

import (
	"math"

	"gitlab.com/gomidi/midi/v2/smf"
)

const microsPerMinute = 60_000_000

// defaultTempo is 120 BPM, the SMF default when no tempo event is present
const defaultTempo uint32 = 500000

// EventKind tags which payload fields of an Event are meaningful
type EventKind uint8

const (
	KindOther EventKind = iota
	KindNoteOn
	KindNoteOff
	KindSetTempo
)

func (k EventKind) String() string {
	switch k {
	case KindNoteOn:
		return "note_on"
	case KindNoteOff:
		return "note_off"
	case KindSetTempo:
		return "set_tempo"
	default:
		return "other"
	}
}

// Event is a single decoded track message. Delta is relative to the previous
// event in the same track.
type Event struct {
	Kind     EventKind
	Delta    uint32
	Channel  uint8
	Key      uint8
	Velocity uint8
	Tempo    uint32 // microseconds per quarter note, only set for KindSetTempo
}

func NoteOnEvent(delta uint32, channel, key, velocity uint8) Event {
	return Event{Kind: KindNoteOn, Delta: delta, Channel: channel, Key: key, Velocity: velocity}
}

func NoteOffEvent(delta uint32, channel, key, velocity uint8) Event {
	return Event{Kind: KindNoteOff, Delta: delta, Channel: channel, Key: key, Velocity: velocity}
}

func SetTempoEvent(delta uint32, tempo uint32) Event {
	return Event{Kind: KindSetTempo, Delta: delta, Tempo: tempo}
}

func OtherEvent(delta uint32) Event {
	return Event{Kind: KindOther, Delta: delta}
}

// decodeTrack converts a gomidi track into Events, preserving order and deltas
func decodeTrack(track smf.Track) []Event {
	events := make([]Event, 0, len(track))
	for _, event := range track {
		events = append(events, decodeMessage(event.Delta, event.Message))
	}
	return events
}

func decodeMessage(delta uint32, msg smf.Message) Event {
	var ch, key, vel uint8
	var bpm float64

	switch {
	case msg.GetNoteOn(&ch, &key, &vel):
		// velocity 0 stays a note on here, the extractor decides what it means
		return NoteOnEvent(delta, ch, key, vel)
	case msg.GetNoteOff(&ch, &key, &vel):
		return NoteOffEvent(delta, ch, key, vel)
	case msg.GetMetaTempo(&bpm):
		return SetTempoEvent(delta, bpmToTempo(bpm))
	}

	return OtherEvent(delta)
}

func bpmToTempo(bpm float64) uint32 {
	if bpm <= 0 {
		return defaultTempo
	}
	return uint32(math.Round(microsPerMinute / bpm))
}

func tempoToBPM(tempo uint32) float64 {
	if tempo == 0 {
		return 0
	}
	return microsPerMinute / float64(tempo)
}
