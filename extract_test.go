package main

import (
	"math/rand"
	"testing"
)

func TestExtractOnsetsConstantTempo(t *testing.T) {
	const ticks uint16 = 480
	const tempo uint32 = 500000

	events := []Event{
		NoteOnEvent(0, 9, BassDrum1, 100),
		NoteOffEvent(120, 9, BassDrum1, 0),
		NoteOnEvent(240, 9, AcousticSnare, 90),
		NoteOnEvent(0, 9, BassDrum1, 80),
		NoteOffEvent(480, 9, AcousticSnare, 0),
		NoteOnEvent(360, 9, BassDrum1, 70),
	}

	table := ExtractOnsets(events, ticks, tempo, true)

	// expected time of each recorded note on is the sum of all deltas up to it
	var sum uint32
	expected := map[uint8][]float64{}
	for _, e := range events {
		sum += e.Delta
		if e.Kind == KindNoteOn && e.Velocity > 0 {
			expected[e.Key] = append(expected[e.Key], float64(sum)*float64(tempo)/float64(ticks)/1_000_000)
		}
	}

	for key, times := range expected {
		onsets := table.Onsets(key)
		if len(onsets) != len(times) {
			t.Fatalf("note %d: expected %d onsets, got %d", key, len(times), len(onsets))
		}
		for i, want := range times {
			if !almostEqual(onsets[i].Time, want) {
				t.Errorf("note %d onset %d: expected time %f, got %f", key, i, want, onsets[i].Time)
			}
		}
	}

	kicks := table.Onsets(BassDrum1)
	if kicks[0].Velocity != 100 || kicks[1].Velocity != 80 || kicks[2].Velocity != 70 {
		t.Errorf("unexpected kick velocities: %+v", kicks)
	}

	if table.Len() != 4 {
		t.Errorf("expected 4 onsets in total, got %d", table.Len())
	}
}

func TestExtractOnsetsNoteOrder(t *testing.T) {
	events := []Event{
		NoteOnEvent(0, 9, ClosedHiHat, 60),
		NoteOnEvent(0, 9, BassDrum1, 100),
		NoteOnEvent(240, 9, ClosedHiHat, 60),
		NoteOnEvent(240, 9, AcousticSnare, 100),
	}

	notes := ExtractOnsets(events, 480, defaultTempo, true).Notes()
	expected := []uint8{ClosedHiHat, BassDrum1, AcousticSnare}

	if len(notes) != len(expected) {
		t.Fatalf("expected notes %v, got %v", expected, notes)
	}
	for i := range expected {
		if notes[i] != expected[i] {
			t.Errorf("expected notes %v, got %v", expected, notes)
			break
		}
	}
}

func TestExtractOnsetsVelocityZero(t *testing.T) {
	events := []Event{
		NoteOnEvent(0, 9, BassDrum1, 0),
		NoteOnEvent(0, 9, BassDrum1, 80),
	}

	onsets := ExtractOnsets(events, 480, defaultTempo, true).Onsets(BassDrum1)
	if len(onsets) != 1 {
		t.Fatalf("expected a single onset, got %d", len(onsets))
	}
	if onsets[0].Velocity != 80 {
		t.Errorf("expected velocity 80, got %d", onsets[0].Velocity)
	}
}

func TestExtractOnsetsTempoChange(t *testing.T) {
	events := []Event{
		SetTempoEvent(10, 250000),
		NoteOnEvent(5, 9, AcousticSnare, 90),
	}

	tests := []struct {
		name       string
		honorTempo bool
		expected   float64
	}{
		// the tempo event's own gap is measured at the old tempo
		{"honored", true, 10*500000.0/480/1e6 + 5*250000.0/480/1e6},
		{"ignored", false, 15 * 500000.0 / 480 / 1e6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			onsets := ExtractOnsets(events, 480, 500000, tt.honorTempo).Onsets(AcousticSnare)
			if len(onsets) != 1 {
				t.Fatalf("expected a single onset, got %d", len(onsets))
			}
			if !almostEqual(onsets[0].Time, tt.expected) {
				t.Errorf("expected time %f, got %f", tt.expected, onsets[0].Time)
			}
		})
	}
}

func TestExtractOnsetsSingleHit(t *testing.T) {
	events := []Event{
		NoteOnEvent(0, 9, 36, 100),
		NoteOffEvent(480, 9, 36, 0),
	}

	table := ExtractOnsets(events, 480, 500000, true)

	if notes := table.Notes(); len(notes) != 1 || notes[0] != 36 {
		t.Fatalf("expected only note 36, got %v", notes)
	}

	onsets := table.Onsets(36)
	if len(onsets) != 1 {
		t.Fatalf("expected a single onset, got %d", len(onsets))
	}
	if onsets[0].Time != 0 || onsets[0].Velocity != 100 {
		t.Errorf("expected onset (0.0, 100), got (%f, %d)", onsets[0].Time, onsets[0].Velocity)
	}
}

func TestExtractOnsetsMonotonic(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	keys := []uint8{BassDrum1, AcousticSnare, ClosedHiHat, RideCymbal1}

	var events []Event
	for i := 0; i < 500; i++ {
		delta := uint32(rng.Intn(200))
		switch rng.Intn(5) {
		case 0:
			events = append(events, SetTempoEvent(delta, uint32(300000+rng.Intn(700000))))
		case 1:
			events = append(events, NoteOffEvent(delta, 9, keys[rng.Intn(len(keys))], 0))
		case 2:
			events = append(events, OtherEvent(delta))
		default:
			events = append(events, NoteOnEvent(delta, 9, keys[rng.Intn(len(keys))], uint8(rng.Intn(128))))
		}
	}

	table := ExtractOnsets(events, 96, defaultTempo, true)
	for _, key := range table.Notes() {
		onsets := table.Onsets(key)
		for i := 1; i < len(onsets); i++ {
			if onsets[i].Time < onsets[i-1].Time {
				t.Fatalf("note %d: onset %d at %f is before onset %d at %f", key, i, onsets[i].Time, i-1, onsets[i-1].Time)
			}
		}
	}
}

func TestExtractOnsetsEmpty(t *testing.T) {
	table := ExtractOnsets(nil, 480, defaultTempo, true)
	if table.Len() != 0 || len(table.Notes()) != 0 {
		t.Errorf("expected an empty table, got %d onsets", table.Len())
	}
	if table.LastOnset() != 0 {
		t.Errorf("expected last onset 0, got %f", table.LastOnset())
	}
}

func TestClockAdvance(t *testing.T) {
	clock := NewClock(480, 500000)

	if got := clock.Advance(480); !almostEqual(got, 0.5) {
		t.Errorf("expected 0.5s after one beat, got %f", got)
	}

	clock.SetTempo(1000000)
	if got := clock.Advance(240); !almostEqual(got, 1.0) {
		t.Errorf("expected 1.0s after half a beat at 60 BPM, got %f", got)
	}

	if clock.Tempo() != 1000000 {
		t.Errorf("expected tempo 1000000, got %d", clock.Tempo())
	}
}
