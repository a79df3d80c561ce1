package main

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// BatchStats counts what happened to the files of a batch run
type BatchStats struct {
	Visited        int // MIDI files found
	Processed      int // files that contributed rows
	SkippedMeta    int // files without genre or BPM in their name
	SkippedNoDrums int // files without a drum track
	Rows           int
}

func (s BatchStats) Skipped() int {
	return s.SkippedMeta + s.SkippedNoDrums
}

// BatchRunner processes a tree of recordings one file at a time. A runner is
// good for a single run; the name counter lives as long as the runner.
type BatchRunner struct {
	opts    Options
	log     logrus.FieldLogger
	names   *NameCounter
	records []BatchRecord
	stats   BatchStats
}

func NewBatchRunner(opts Options, logger logrus.FieldLogger) *BatchRunner {
	return &BatchRunner{
		opts:  opts,
		log:   logger,
		names: NewNameCounter(),
	}
}

func isMidiFile(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	return ext == ".mid" || ext == ".midi"
}

// Run walks root/<drummer>/<session...>/ and collects the onsets of every
// MIDI file. Files directly inside root are ignored. Directory entries are
// visited in lexical order. Files without metadata or drums are logged and
// skipped; any other error stops the run.
func (b *BatchRunner) Run(root string) ([]BatchRecord, BatchStats, error) {
	drummers, err := os.ReadDir(root)
	if err != nil {
		return nil, b.stats, errors.Wrap(err, "error reading batch root")
	}

	for _, drummer := range drummers {
		if !drummer.IsDir() {
			continue
		}

		drummerDir := filepath.Join(root, drummer.Name())
		b.log.WithField("drummer", drummer.Name()).Debug("scanning drummer directory")

		err := filepath.WalkDir(drummerDir, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() || !isMidiFile(d.Name()) {
				return nil
			}
			return b.processFile(path, d.Name())
		})
		if err != nil {
			return nil, b.stats, err
		}
	}

	return b.records, b.stats, nil
}

func (b *BatchRunner) processFile(path, name string) error {
	b.stats.Visited++
	reportedName := b.names.Next(name)
	fileLog := b.log.WithFields(logrus.Fields{"file": reportedName, "path": path})

	meta, err := requireFilenameMeta(name)
	if err != nil {
		fileLog.Infof("skipping: %v", err)
		b.stats.SkippedMeta++
		return nil
	}
	fileLog = fileLog.WithFields(logrus.Fields{"genre": meta.Genre, "bpm": meta.BPM})

	smfData, err := loadMidiFile(path)
	if err != nil {
		return err
	}

	timings, err := AnalyzeDrums(smfData, b.opts, meta)
	if errors.Is(err, ErrNoDrumTrack) {
		fileLog.Warnf("skipping: %v", err)
		b.stats.SkippedNoDrums++
		return nil
	}
	if err != nil {
		return errors.Wrapf(err, "error analysing %s", path)
	}

	records := batchRecords(reportedName, path, meta, timings.Table)
	b.records = append(b.records, records...)
	b.stats.Processed++
	b.stats.Rows += len(records)

	fileLog.WithFields(logrus.Fields{
		"track":  timings.Track,
		"onsets": len(records),
		"tempo":  timings.InitialTempo,
	}).Debug("processed")

	return nil
}

// RunBatch is a convenience wrapper running a fresh BatchRunner over root
func RunBatch(root string, opts Options, logger logrus.FieldLogger) ([]BatchRecord, BatchStats, error) {
	return NewBatchRunner(opts, logger).Run(root)
}
