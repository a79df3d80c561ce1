package main

import (
	"fmt"
	"io"
	"sort"

	"gitlab.com/gomidi/midi/v2/smf"
)

// TrackInfo summarises the contents of one track
type TrackInfo struct {
	Name         string
	Events       int
	Notes        int
	Controls     int
	Programs     int
	Channels     []uint8
	Instruments  map[uint8]string // channel -> GM program name
	DurationSecs float64
	IsDrumTrack  bool
}

func getTrackName(track smf.Track) string {
	for _, event := range track {
		msg := event.Message

		var trackName string
		if msg.GetMetaTrackName(&trackName) {
			return trackName
		}

		var text string
		if msg.GetMetaText(&text) {
			return text
		}
	}
	return ""
}

// summariseTrack counts the messages of a track and times it with the same
// clock the extractor uses
func summariseTrack(track smf.Track, ticks uint16, tempo uint32, honorTempo bool) TrackInfo {
	info := TrackInfo{
		Name:        getTrackName(track),
		Events:      len(track),
		Instruments: make(map[uint8]string),
	}

	channels := make(map[uint8]bool)
	clock := NewClock(ticks, tempo)

	for _, event := range track {
		clock.Advance(event.Delta)

		msg := event.Message
		var ch, key, vel uint8
		var bpm float64

		if msg.GetNoteOn(&ch, &key, &vel) {
			info.Notes++
			channels[ch] = true
		} else if msg.GetNoteOff(&ch, &key, &vel) {
			channels[ch] = true
		} else if msg.GetControlChange(&ch, &key, &vel) {
			info.Controls++
			channels[ch] = true
		} else if msg.GetProgramChange(&ch, &vel) {
			info.Programs++
			channels[ch] = true
			info.Instruments[ch] = getGMInstrument(vel)
		} else if honorTempo && msg.GetMetaTempo(&bpm) {
			clock.SetTempo(bpmToTempo(bpm))
		}
	}

	for ch := range channels {
		info.Channels = append(info.Channels, ch)
	}
	sort.Slice(info.Channels, func(i, j int) bool {
		return info.Channels[i] < info.Channels[j]
	})

	info.DurationSecs = clock.Elapsed()
	return info
}

func printMidiInfo(w io.Writer, smfData *smf.SMF, filename string, opts Options) {
	fmt.Fprintf(w, "MIDI File: %s\n", filename)
	fmt.Fprintf(w, "Format: %d\n", smfData.Format())

	ticks, err := ticksPerBeat(smfData)
	if err != nil {
		fmt.Fprintf(w, "Time format: %v\n", smfData.TimeFormat)
		return
	}
	fmt.Fprintf(w, "Ticks per quarter note: %d\n", ticks)

	tempoMap := extractTempoMap(smfData)
	fmt.Fprintf(w, "Tempo changes: %d\n", len(tempoMap))
	for _, change := range tempoMap {
		fmt.Fprintf(w, "  tick %d: %.2f BPM (track %d)\n", change.Tick, tempoToBPM(change.Tempo), change.Track)
	}

	meta := parseFilenameMeta(filename)
	if meta.Genre != "" {
		fmt.Fprintf(w, "Genre: %s\n", meta.Genre)
	}
	if meta.HasBPM() {
		fmt.Fprintf(w, "Filename BPM: %d\n", meta.BPM)
	}

	drumTrack, _ := findDrumTrack(smfData.Tracks, opts.DrumChannel)
	tempo := resolveInitialTempo(smfData, opts, meta)

	fmt.Fprintf(w, "Number of tracks: %d\n", len(smfData.Tracks))
	fmt.Fprintln(w)

	for i, track := range smfData.Tracks {
		info := summariseTrack(track, ticks, tempo, opts.HonorEmbeddedTempo)
		info.IsDrumTrack = i == drumTrack

		header := fmt.Sprintf("Track %d:", i)
		if info.Name != "" {
			header = fmt.Sprintf("Track %d: %s", i, info.Name)
		}
		if info.IsDrumTrack {
			header += " [drums]"
		}
		fmt.Fprintln(w, header)
		fmt.Fprintf(w, "  Number of events: %d\n", info.Events)

		if info.Events == 0 {
			fmt.Fprintln(w, "  (empty track)")
			continue
		}

		fmt.Fprintf(w, "  Duration: %s\n", formatDuration(secondsToDuration(info.DurationSecs)))
		fmt.Fprintf(w, "  Note events: %d\n", info.Notes)
		fmt.Fprintf(w, "  Control change events: %d\n", info.Controls)
		fmt.Fprintf(w, "  Program change events: %d\n", info.Programs)

		if len(info.Channels) > 0 {
			fmt.Fprintf(w, "  Channels used:")
			for _, ch := range info.Channels {
				fmt.Fprintf(w, " %d", ch+1)
			}
			fmt.Fprintln(w)
		}

		if len(info.Instruments) > 0 {
			fmt.Fprintln(w, "  Instruments:")
			for _, ch := range info.Channels {
				if inst, ok := info.Instruments[ch]; ok {
					fmt.Fprintf(w, "    Channel %d: %s\n", ch+1, inst)
				}
			}
		}

		fmt.Fprintln(w)
	}
}
