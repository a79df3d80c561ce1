package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
)

var noteColumns = []string{"Note", "Instrument", "Time"}

var batchColumns = []string{"Filename", "Filepath", "Genre", "BPM", "Note", "Instrument", "Time", "Velocity"}

// Table is a row oriented export with typed cells. Cells are strings, ints,
// uint8 or float64 seconds.
type Table struct {
	Columns []string
	Rows    [][]any
}

// BatchRecord is one onset found during a batch run
type BatchRecord struct {
	Filename   string
	Filepath   string
	Genre      string
	BPM        int
	Note       uint8
	Instrument string
	Time       float64
	Velocity   uint8
}

// noteTable flattens a timing table note by note, in order of first appearance
func noteTable(table *TimingTable) Table {
	out := Table{Columns: noteColumns}

	for _, note := range table.Notes() {
		instrument := drumInstrument(note)
		for _, onset := range table.Onsets(note) {
			out.Rows = append(out.Rows, []any{note, instrument, onset.Time})
		}
	}

	return out
}

// batchRecords flattens the timings of one file into records tagged with the
// file's reported name, path and metadata
func batchRecords(filename, path string, meta FileMeta, table *TimingTable) []BatchRecord {
	records := make([]BatchRecord, 0, table.Len())

	for _, note := range table.Notes() {
		instrument := drumInstrument(note)
		for _, onset := range table.Onsets(note) {
			records = append(records, BatchRecord{
				Filename:   filename,
				Filepath:   path,
				Genre:      meta.Genre,
				BPM:        meta.BPM,
				Note:       note,
				Instrument: instrument,
				Time:       onset.Time,
				Velocity:   onset.Velocity,
			})
		}
	}

	return records
}

func batchTable(records []BatchRecord) Table {
	out := Table{Columns: batchColumns, Rows: make([][]any, 0, len(records))}

	for _, r := range records {
		out.Rows = append(out.Rows, []any{r.Filename, r.Filepath, r.Genre, r.BPM, r.Note, r.Instrument, r.Time, r.Velocity})
	}

	return out
}

// formatCell renders a cell the way it appears in the CSV. Seconds always
// carry a decimal point, so 0 is written as 0.0.
func formatCell(v any) string {
	switch value := v.(type) {
	case string:
		return value
	case float64:
		s := strconv.FormatFloat(value, 'f', -1, 64)
		if !strings.ContainsAny(s, ".eE") {
			s += ".0"
		}
		return s
	default:
		return fmt.Sprint(value)
	}
}

// StringRows returns the rows with every cell formatted, limited to n rows
// when n >= 0
func (t Table) StringRows(n int) [][]string {
	rows := t.Rows
	if n >= 0 && n < len(rows) {
		rows = rows[:n]
	}

	out := make([][]string, 0, len(rows))
	for _, row := range rows {
		cells := make([]string, len(row))
		for i, cell := range row {
			cells[i] = formatCell(cell)
		}
		out = append(out, cells)
	}
	return out
}

// WriteCSV writes the header row followed by every row
func (t Table) WriteCSV(writer io.Writer) error {
	w := csv.NewWriter(writer)

	if err := w.Write(t.Columns); err != nil {
		return errors.Wrap(err, "error writing CSV header")
	}
	if err := w.WriteAll(t.StringRows(-1)); err != nil {
		return errors.Wrap(err, "error writing CSV rows")
	}

	return nil
}

// writeCSVFile writes the table to filename and returns the bytes written
func writeCSVFile(filename string, t Table) (int64, error) {
	file, err := os.Create(filename)
	if err != nil {
		return 0, errors.Wrap(err, "error creating CSV file")
	}

	if err := t.WriteCSV(file); err != nil {
		file.Close()
		return 0, err
	}

	info, err := file.Stat()
	if err != nil {
		file.Close()
		return 0, errors.Wrap(err, "error reading CSV file size")
	}

	if err := file.Close(); err != nil {
		return 0, errors.Wrap(err, "error closing CSV file")
	}

	return info.Size(), nil
}

const xlsxSheet = "Sheet1"

// writeXLSX writes the table to a spreadsheet, keeping numbers numeric
func writeXLSX(filename string, t Table) error {
	f := excelize.NewFile()
	defer f.Close()

	header := make([]any, len(t.Columns))
	for i, column := range t.Columns {
		header[i] = column
	}

	if err := f.SetSheetRow(xlsxSheet, "A1", &header); err != nil {
		return errors.Wrap(err, "error writing spreadsheet header")
	}

	for i, row := range t.Rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return errors.Wrap(err, "error addressing spreadsheet row")
		}

		values := row
		if err := f.SetSheetRow(xlsxSheet, cell, &values); err != nil {
			return errors.Wrapf(err, "error writing spreadsheet row %d", i+1)
		}
	}

	if err := f.SaveAs(filename); err != nil {
		return errors.Wrap(err, "error saving spreadsheet")
	}

	return nil
}
