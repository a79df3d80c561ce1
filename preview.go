package main

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/dustin/go-humanize"
	"github.com/hako/durafmt"
)

var (
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#fff")).Padding(0, 1)
	cellStyle    = lipgloss.NewStyle().Padding(0, 1)
	borderStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#555"))
	summaryStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#888"))
)

// renderPreview renders the first n rows of an export as a bordered table
func renderPreview(t Table, n int) string {
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		Headers(t.Columns...).
		Rows(t.StringRows(n)...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		String()
}

func formatDuration(d time.Duration) string {
	if d < time.Millisecond {
		return d.String()
	}
	return durafmt.Parse(d).LimitFirstN(2).String()
}

func secondsToDuration(seconds float64) time.Duration {
	return time.Duration(seconds * float64(time.Second))
}

// fileSummary describes the onsets extracted from a single file
func fileSummary(timings *DrumTimings, written int64) string {
	return summaryStyle.Render(fmt.Sprintf(
		"%s onsets across %d notes on track %d (%.1f BPM start), last onset at %s, %s written",
		humanize.Comma(int64(timings.Table.Len())),
		len(timings.Table.Notes()),
		timings.Track,
		tempoToBPM(timings.InitialTempo),
		formatDuration(secondsToDuration(timings.Table.LastOnset())),
		humanize.Bytes(uint64(written)),
	))
}

// batchSummary describes a finished batch run
func batchSummary(stats BatchStats, elapsed time.Duration, written int64) string {
	return summaryStyle.Render(fmt.Sprintf(
		"%s MIDI files: %s processed, %s skipped (%s without metadata, %s without drums); %s rows, %s written in %s",
		humanize.Comma(int64(stats.Visited)),
		humanize.Comma(int64(stats.Processed)),
		humanize.Comma(int64(stats.Skipped())),
		humanize.Comma(int64(stats.SkippedMeta)),
		humanize.Comma(int64(stats.SkippedNoDrums)),
		humanize.Comma(int64(stats.Rows)),
		humanize.Bytes(uint64(written)),
		formatDuration(elapsed),
	))
}
