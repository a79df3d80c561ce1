package main

import (
	"sort"

	"gitlab.com/gomidi/midi/v2/smf"
)

// TempoChange is a tempo event with its absolute position in ticks
type TempoChange struct {
	Tick  uint64
	Tempo uint32 // µs per quarter note
	Track int
}

// extractTempoMap collects tempo changes from every track of the file,
// sorted by tick. Changes at the same tick keep track order.
func extractTempoMap(smfData *smf.SMF) []TempoChange {
	var changes []TempoChange

	for i, track := range smfData.Tracks {
		var currentTick uint64

		for _, event := range track {
			currentTick += uint64(event.Delta)

			var bpm float64
			if event.Message.GetMetaTempo(&bpm) {
				changes = append(changes, TempoChange{
					Tick:  currentTick,
					Tempo: bpmToTempo(bpm),
					Track: i,
				})
			}
		}
	}

	sort.SliceStable(changes, func(i, j int) bool {
		return changes[i].Tick < changes[j].Tick
	})

	return changes
}

// leadingTempo returns the tempo set at tick 0, typically by the conductor
// track of a format 1 file
func leadingTempo(smfData *smf.SMF) (uint32, bool) {
	changes := extractTempoMap(smfData)
	if len(changes) == 0 || changes[0].Tick != 0 {
		return 0, false
	}
	return changes[0].Tempo, true
}

// resolveInitialTempo picks the tempo the drum track starts at.
// Order: explicit override, tempo at tick 0 (when embedded tempo is
// honored), filename BPM (when enabled), then 120 BPM.
func resolveInitialTempo(smfData *smf.SMF, opts Options, meta FileMeta) uint32 {
	if opts.Tempo > 0 {
		return opts.Tempo
	}

	if opts.HonorEmbeddedTempo {
		if tempo, ok := leadingTempo(smfData); ok {
			return tempo
		}
	}

	if opts.FilenameBPM && meta.HasBPM() {
		return bpmToTempo(float64(meta.BPM))
	}

	return defaultTempo
}
