package main

// Onset is one recorded strike of a note
type Onset struct {
	Time     float64 // seconds from the start of the track
	Velocity uint8
}

// TimingTable maps each note to its onsets. Notes are kept in the order they
// first appeared and onsets in track order, so every list is time sorted.
type TimingTable struct {
	order  []uint8
	onsets map[uint8][]Onset
}

func newTimingTable() *TimingTable {
	return &TimingTable{
		onsets: make(map[uint8][]Onset),
	}
}

func (t *TimingTable) add(key uint8, onset Onset) {
	if _, ok := t.onsets[key]; !ok {
		t.order = append(t.order, key)
	}
	t.onsets[key] = append(t.onsets[key], onset)
}

// Notes returns the recorded notes in order of first appearance
func (t *TimingTable) Notes() []uint8 {
	notes := make([]uint8, len(t.order))
	copy(notes, t.order)
	return notes
}

func (t *TimingTable) Onsets(key uint8) []Onset {
	return t.onsets[key]
}

// Len returns the total number of onsets across all notes
func (t *TimingTable) Len() int {
	total := 0
	for _, list := range t.onsets {
		total += len(list)
	}
	return total
}

// LastOnset returns the latest onset time in the table, 0 when empty
func (t *TimingTable) LastOnset() float64 {
	var last float64
	for _, list := range t.onsets {
		if n := len(list); n > 0 && list[n-1].Time > last {
			last = list[n-1].Time
		}
	}
	return last
}

// Clock converts relative tick deltas into absolute seconds under a tempo
// that may change while the track plays
type Clock struct {
	ticksPerBeat uint16
	tempo        uint32
	elapsed      float64
}

func NewClock(ticksPerBeat uint16, tempo uint32) *Clock {
	return &Clock{ticksPerBeat: ticksPerBeat, tempo: tempo}
}

// Advance moves the clock forward by delta ticks at the current tempo and
// returns the new absolute time
func (c *Clock) Advance(delta uint32) float64 {
	c.elapsed += ticksToSeconds(delta, c.tempo, c.ticksPerBeat)
	return c.elapsed
}

// SetTempo only affects deltas passed to later Advance calls
func (c *Clock) SetTempo(tempo uint32) {
	c.tempo = tempo
}

func (c *Clock) Tempo() uint32 {
	return c.tempo
}

func (c *Clock) Elapsed() float64 {
	return c.elapsed
}

func ticksToSeconds(ticks uint32, tempo uint32, ticksPerBeat uint16) float64 {
	return float64(ticks) * (float64(tempo) / float64(ticksPerBeat)) / 1_000_000
}

// ExtractOnsets walks a single track once and records every sounding note on
// with its absolute time. The delta of each event is converted before the
// event is looked at, so a tempo change only applies to the events after it.
// With honorTempo false every delta is measured at initialTempo.
func ExtractOnsets(events []Event, ticksPerBeat uint16, initialTempo uint32, honorTempo bool) *TimingTable {
	table := newTimingTable()
	clock := NewClock(ticksPerBeat, initialTempo)

	for _, event := range events {
		now := clock.Advance(event.Delta)

		switch event.Kind {
		case KindSetTempo:
			if honorTempo {
				clock.SetTempo(event.Tempo)
			}
		case KindNoteOn:
			// note on with velocity 0 is a note off
			if event.Velocity > 0 {
				table.add(event.Key, Onset{Time: now, Velocity: event.Velocity})
			}
		case KindNoteOff, KindOther:
		}
	}

	return table
}
