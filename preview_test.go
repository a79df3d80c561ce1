package main

import (
	"strings"
	"testing"
	"time"
)

func TestRenderPreview(t *testing.T) {
	export := noteTable(sampleTimingTable())

	out := renderPreview(export, 2)
	for _, want := range []string{"Note", "Instrument", "Time", "Bass Drum 1", "0.5"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected preview to contain %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "Acoustic Snare") {
		t.Errorf("preview should stop after 2 rows:\n%s", out)
	}
}

func TestBatchSummary(t *testing.T) {
	stats := BatchStats{Visited: 1500, Processed: 1200, SkippedMeta: 100, SkippedNoDrums: 200, Rows: 123456}

	out := batchSummary(stats, 1500*time.Millisecond, 2048)
	for _, want := range []string{"1,500 MIDI files", "1,200 processed", "300 skipped", "123,456 rows", "2.0 kB", "1 second"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected summary to contain %q, got %q", want, out)
		}
	}
}

func TestFileSummary(t *testing.T) {
	timings := &DrumTimings{Track: 1, TicksPerBeat: 480, InitialTempo: 500000, Table: sampleTimingTable()}

	out := fileSummary(timings, 100)
	for _, want := range []string{"4 onsets across 3 notes on track 1", "120.0 BPM", "100 B"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected summary to contain %q, got %q", want, out)
		}
	}
}

func TestFormatDuration(t *testing.T) {
	if got := formatDuration(90 * time.Second); !strings.Contains(got, "1 minute") {
		t.Errorf("expected 1 minute in %q", got)
	}
	if got := formatDuration(500 * time.Microsecond); got != "500µs" {
		t.Errorf("expected sub-millisecond durations to use the short form, got %q", got)
	}
}
