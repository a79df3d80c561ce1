package main

import (
	"os"

	"github.com/pkg/errors"
	"gitlab.com/gomidi/midi/v2/smf"
)

const gmDrumChannel uint8 = 9 // default percussion channel in GM

var (
	ErrNoDrumTrack           = errors.New("no drum track found")
	ErrUnsupportedTimeFormat = errors.New("unsupported time format, expected MetricTicks")
)

// DrumTimings is the result of analysing the drum track of one file
type DrumTimings struct {
	Track        int // index of the drum track in the file
	TicksPerBeat uint16
	InitialTempo uint32
	Table        *TimingTable
}

// findDrumTrack returns the index of the first track holding a note on for
// the given channel. Velocity is not checked.
func findDrumTrack(tracks []smf.Track, channel uint8) (int, error) {
	for i, track := range tracks {
		for _, event := range track {
			var ch, key, vel uint8
			if event.Message.GetNoteOn(&ch, &key, &vel) && ch == channel {
				return i, nil
			}
		}
	}

	return -1, errors.Wrapf(ErrNoDrumTrack, "no note on channel %d", channel+1)
}

// ticksPerBeat reads the metric resolution of the file
func ticksPerBeat(smfData *smf.SMF) (uint16, error) {
	ticks, ok := smfData.TimeFormat.(smf.MetricTicks)
	if !ok || ticks == 0 {
		return 0, errors.Wrapf(ErrUnsupportedTimeFormat, "got %v", smfData.TimeFormat)
	}
	return uint16(ticks), nil
}

// AnalyzeDrums locates the drum track and extracts its note onsets
func AnalyzeDrums(smfData *smf.SMF, opts Options, meta FileMeta) (*DrumTimings, error) {
	if smfData == nil {
		return nil, errors.New("midi data is nil")
	}

	ticks, err := ticksPerBeat(smfData)
	if err != nil {
		return nil, err
	}

	trackIndex, err := findDrumTrack(smfData.Tracks, opts.DrumChannel)
	if err != nil {
		return nil, err
	}

	tempo := resolveInitialTempo(smfData, opts, meta)
	events := decodeTrack(smfData.Tracks[trackIndex])

	return &DrumTimings{
		Track:        trackIndex,
		TicksPerBeat: ticks,
		InitialTempo: tempo,
		Table:        ExtractOnsets(events, ticks, tempo, opts.HonorEmbeddedTempo),
	}, nil
}

// loadMidiFile opens and decodes a Standard MIDI File
func loadMidiFile(filename string) (*smf.SMF, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, errors.Wrap(err, "error opening file")
	}
	defer file.Close()

	midiFile, err := smf.ReadFrom(file)
	if err != nil {
		return nil, errors.Wrapf(err, "error reading MIDI file %s", filename)
	}

	return midiFile, nil
}
