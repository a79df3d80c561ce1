package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const (
	defaultNoteOutput  = "note_times.csv"
	defaultBatchOutput = "drum_note_timings.csv"
)

func newLogger(verbose bool) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	if verbose {
		logger.SetLevel(logrus.DebugLevel)
	}
	return logger
}

func main() {
	opts := DefaultOptions()

	batchMode := flag.Bool("batch", false, "Treat the argument as a root of <drummer>/<session>/ directories")
	output := flag.String("o", "", "CSV output path (default "+defaultNoteOutput+", or "+defaultBatchOutput+" with -batch)")
	xlsxOutput := flag.String("xlsx", "", "Also write the table as an XLSX spreadsheet")
	plotOutput := flag.String("plot", "", "Write a scatter plot of the onsets as PNG (single file only)")
	printInfo := flag.Bool("info", false, "Print MIDI track information instead of exporting")
	channel := flag.Int("channel", int(gmDrumChannel)+1, "MIDI channel (1-16) the drum track plays on")
	tempo := flag.Uint("tempo", 0, "Initial tempo in microseconds per beat (0 picks it from the file)")
	ignoreTempo := flag.Bool("ignore-tempo", false, "Ignore tempo events and time everything at the initial tempo")
	filenameBPM := flag.Bool("filename-bpm", false, "Use the BPM from the filename when the file sets no tempo")
	previewRows := flag.Int("preview", 5, "Number of rows to preview on the console (0 disables)")
	verbose := flag.Bool("v", false, "Verbose logging")
	flag.Parse()

	logger := newLogger(*verbose)

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] <file.mid | root-dir>\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(1)
	}

	if *channel < 1 || *channel > 16 {
		logger.Fatalf("Invalid channel %d, expected 1-16", *channel)
	}

	opts.DrumChannel = uint8(*channel - 1)
	opts.Tempo = uint32(*tempo)
	opts.HonorEmbeddedTempo = !*ignoreTempo
	opts.FilenameBPM = *filenameBPM

	target := flag.Arg(0)

	var err error
	switch {
	case *batchMode:
		out := *output
		if out == "" {
			out = defaultBatchOutput
		}
		err = runBatchCommand(target, out, *xlsxOutput, *previewRows, opts, logger)
	case *printInfo:
		err = runInfoCommand(target, opts)
	default:
		out := *output
		if out == "" {
			out = defaultNoteOutput
		}
		err = runFileCommand(target, out, *xlsxOutput, *plotOutput, *previewRows, opts, logger)
	}

	if err != nil {
		logger.Fatalf("%v", err)
	}
}

func runInfoCommand(filename string, opts Options) error {
	midiFile, err := loadMidiFile(filename)
	if err != nil {
		return err
	}
	printMidiInfo(os.Stdout, midiFile, filename, opts)
	return nil
}

func runFileCommand(filename, output, xlsxOutput, plotOutput string, previewRows int, opts Options, logger *logrus.Logger) error {
	midiFile, err := loadMidiFile(filename)
	if err != nil {
		return err
	}

	meta := parseFilenameMeta(filename)
	timings, err := AnalyzeDrums(midiFile, opts, meta)
	if err != nil {
		return errors.Wrapf(err, "error analysing %s", filename)
	}

	logger.WithFields(logrus.Fields{
		"file":  filepath.Base(filename),
		"track": timings.Track,
		"tempo": timings.InitialTempo,
	}).Debug("found drum track")

	export := noteTable(timings.Table)
	written, err := writeCSVFile(output, export)
	if err != nil {
		return err
	}

	if xlsxOutput != "" {
		if err := writeXLSX(xlsxOutput, export); err != nil {
			return err
		}
	}

	if plotOutput != "" {
		if err := savePlot(plotOutput, timings.Table); err != nil {
			return err
		}
		logger.WithField("plot", plotOutput).Info("wrote plot")
	}

	if previewRows > 0 {
		fmt.Println(renderPreview(export, previewRows))
	}
	fmt.Println(fileSummary(timings, written))

	return nil
}

func runBatchCommand(root, output, xlsxOutput string, previewRows int, opts Options, logger *logrus.Logger) error {
	start := time.Now()

	records, stats, err := RunBatch(root, opts, logger)
	if err != nil {
		return err
	}

	export := batchTable(records)
	written, err := writeCSVFile(output, export)
	if err != nil {
		return err
	}

	if xlsxOutput != "" {
		if err := writeXLSX(xlsxOutput, export); err != nil {
			return err
		}
	}

	if previewRows > 0 {
		fmt.Println(renderPreview(export, previewRows))
	}
	fmt.Println(batchSummary(stats, time.Since(start), written))

	return nil
}
