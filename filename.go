package main

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/text/unicode/norm"
)

var ErrFilenameMetadata = errors.New("genre or bpm missing from filename")

// FileMeta is the metadata encoded in a recording's filename, eg.
// 100_neworleans-secondline_94_beat_4-4.mid
type FileMeta struct {
	Genre string
	BPM   int // 0 when the field is missing or not a number
}

func (m FileMeta) HasBPM() bool {
	return m.BPM > 0
}

// Complete reports whether both genre and BPM are known
func (m FileMeta) Complete() bool {
	return m.Genre != "" && m.HasBPM()
}

// parseFilenameMeta reads the underscore separated fields of a filename:
// the second is the genre, the third the tempo in BPM
func parseFilenameMeta(filename string) FileMeta {
	base := filepath.Base(filename)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	fields := strings.Split(base, "_")

	var meta FileMeta
	if len(fields) > 1 {
		meta.Genre = strings.TrimSpace(fields[1])
	}
	if len(fields) > 2 {
		if bpm, err := strconv.Atoi(strings.TrimSpace(fields[2])); err == nil && bpm > 0 {
			meta.BPM = bpm
		}
	}

	return meta
}

// requireFilenameMeta is parseFilenameMeta for callers that cannot proceed
// without genre and BPM
func requireFilenameMeta(filename string) (FileMeta, error) {
	meta := parseFilenameMeta(filename)
	if !meta.Complete() {
		return meta, errors.Wrapf(ErrFilenameMetadata, "%s (genre=%q bpm=%d)", filepath.Base(filename), meta.Genre, meta.BPM)
	}
	return meta, nil
}

// NameCounter disambiguates base filenames seen during one batch run. The
// first file with a name keeps it, later ones get a "(n)" suffix.
type NameCounter struct {
	seen map[string]int
}

func NewNameCounter() *NameCounter {
	return &NameCounter{seen: make(map[string]int)}
}

// Next records one more occurrence of name and returns the name to report it
// under. Names are compared in NFC so composed and decomposed spellings of
// the same name collide.
func (c *NameCounter) Next(name string) string {
	key := norm.NFC.String(name)
	c.seen[key]++

	count := c.seen[key]
	if count == 1 {
		return name
	}

	ext := filepath.Ext(name)
	return fmt.Sprintf("%s(%d)%s", strings.TrimSuffix(name, ext), count, ext)
}

// Count returns how many times name has been seen so far
func (c *NameCounter) Count(name string) int {
	return c.seen[norm.NFC.String(name)]
}
