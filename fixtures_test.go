package main

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"testing"

	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

const floatTolerance = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < floatTolerance
}

func midiNoteOn(delta uint32, ch, key, vel uint8) smf.Event {
	return smf.Event{Delta: delta, Message: smf.Message(midi.NoteOn(ch, key, vel))}
}

func midiNoteOff(delta uint32, ch, key uint8) smf.Event {
	return smf.Event{Delta: delta, Message: smf.Message(midi.NoteOff(ch, key))}
}

func midiTempo(delta uint32, bpm float64) smf.Event {
	return smf.Event{Delta: delta, Message: smf.MetaTempo(bpm)}
}

func midiTrackName(name string) smf.Event {
	return smf.Event{Delta: 0, Message: smf.MetaTrackSequenceName(name)}
}

// newTrack closes the given events with an end of track message
func newTrack(events ...smf.Event) smf.Track {
	track := smf.Track{}
	track = append(track, events...)
	track = append(track, smf.Event{Delta: 0, Message: smf.EOT})
	return track
}

func newSMF(ticks uint16, tracks ...smf.Track) *smf.SMF {
	data := smf.NewSMF1()
	data.TimeFormat = smf.MetricTicks(ticks)
	for _, track := range tracks {
		data.Add(track)
	}
	return data
}

// buildSMF writes the tracks out and reads them back so tests see what the
// decoder produces
func buildSMF(t *testing.T, ticks uint16, tracks ...smf.Track) *smf.SMF {
	t.Helper()

	var buf bytes.Buffer
	if _, err := newSMF(ticks, tracks...).WriteTo(&buf); err != nil {
		t.Fatalf("failed to write MIDI data: %v", err)
	}

	data, err := smf.ReadFrom(&buf)
	if err != nil {
		t.Fatalf("failed to read MIDI data back: %v", err)
	}
	return data
}

func writeSMFFile(t *testing.T, path string, ticks uint16, tracks ...smf.Track) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("failed to create directory: %v", err)
	}

	file, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create %s: %v", path, err)
	}
	defer file.Close()

	if _, err := newSMF(ticks, tracks...).WriteTo(file); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

// simpleDrumTrack is a kick on beat one and a snare on beat two at 480 ticks
func simpleDrumTrack() smf.Track {
	return newTrack(
		midiTrackName("Drums"),
		midiNoteOn(0, gmDrumChannel, BassDrum1, 100),
		midiNoteOff(240, gmDrumChannel, BassDrum1),
		midiNoteOn(240, gmDrumChannel, AcousticSnare, 90),
		midiNoteOff(240, gmDrumChannel, AcousticSnare),
	)
}
