package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/pkg/errors"

	"github.com/calganaygun/networks-playground/motif"
)

// Row labels of the counts table.
const (
	RowReal = "Real Graph"
	RowMean = "Random Graphs (Mean)"
)

// Row is one labeled table row.
type Row struct {
	Label  string
	Values []float64
}

// Table is a labeled numeric table. Columns are named by Columns; the label
// column has no header.
type Table struct {
	Columns []string
	Rows    []Row
}

// NewCountTable builds the two-row counts table: observed counts and the
// ensemble means, with one column per slot named "0".."7".
func NewCountTable(observed motif.CountVector, mean [motif.NumSlots]float64) Table {
	cols := make([]string, motif.NumSlots)
	for i := range cols {
		cols[i] = strconv.Itoa(i)
	}
	return Table{
		Columns: cols,
		Rows: []Row{
			{Label: RowReal, Values: observed.Floats()},
			{Label: RowMean, Values: mean[:]},
		},
	}
}

// WriteCSV writes the header row (leading empty cell) and one record per
// row. Integral values print without a fractional part.
func (t Table) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(append([]string{""}, t.Columns...)); err != nil {
		return fmt.Errorf("report: header: %w", err)
	}
	for _, r := range t.Rows {
		if len(r.Values) != len(t.Columns) {
			return fmt.Errorf("report: row %q has %d values for %d columns", r.Label, len(r.Values), len(t.Columns))
		}
		rec := make([]string, 0, len(r.Values)+1)
		rec = append(rec, r.Label)
		for _, v := range r.Values {
			rec = append(rec, formatValue(v))
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("report: row %q: %w", r.Label, err)
		}
	}
	cw.Flush()

	return cw.Error()
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// writeFile hands a temp file next to path to fn and renames it into place,
// so readers never see a truncated file. The directory is created if needed.
func writeFile(path string, fn func(io.Writer) error) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrap(err, "report: mkdir")
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return errors.Wrap(err, "report: create")
	}
	defer os.Remove(tmp.Name())

	if err = fn(tmp); err != nil {
		tmp.Close()
		return err
	}
	if err = tmp.Chmod(0o644); err != nil {
		tmp.Close()
		return errors.Wrap(err, "report: chmod")
	}
	if err = tmp.Close(); err != nil {
		return errors.Wrap(err, "report: close")
	}
	return errors.Wrap(os.Rename(tmp.Name(), path), "report: rename")
}

// WriteCSVFile writes the table to path, creating parent directories.
func (t Table) WriteCSVFile(path string) error {
	return writeFile(path, t.WriteCSV)
}
