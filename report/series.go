package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/calganaygun/networks-playground/motif"
	"github.com/calganaygun/networks-playground/significance"
)

// Point is one category of a chart: one value per series column.
// Valid=false marks values that must not be drawn as numbers (an undefined
// z-score).
type Point struct {
	Slot     int
	Category string
	Values   []float64
	Valid    bool
}

// Series is a per-slot chart. Columns names the value columns, in the order
// of every Point's Values.
type Series struct {
	Columns []string
	Points  []Point
}

// Value column names.
const (
	ColumnReal   = "real"
	ColumnMean   = "mean"
	ColumnZScore = "z_score"
)

func category(slot int) string {
	if c, ok := motif.Default().Class(slot); ok {
		return c.String()
	}
	return strconv.Itoa(slot)
}

// CountSeries charts the observed counts next to the ensemble means, one
// grouped bar per slot.
func CountSeries(observed motif.CountVector, mean [motif.NumSlots]float64) Series {
	s := Series{Columns: []string{ColumnReal, ColumnMean}}
	for slot, c := range observed {
		s.Points = append(s.Points, Point{
			Slot:     slot,
			Category: category(slot),
			Values:   []float64{float64(c), mean[slot]},
			Valid:    true,
		})
	}
	return s
}

// ZScoreSeries charts the z-score per slot. Undefined scores keep their
// category with Valid=false and value 0.
func ZScoreSeries(res significance.Result) Series {
	s := Series{Columns: []string{ColumnZScore}}
	for _, sl := range res.Slots {
		z, ok := sl.ZScore()
		s.Points = append(s.Points, Point{Slot: sl.Slot, Category: category(sl.Slot), Values: []float64{z}, Valid: ok})
	}
	return s
}

// WriteCSV writes "slot,category,<columns...>" records. Invalid points have
// empty value cells.
func (s Series) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(append([]string{"slot", "category"}, s.Columns...)); err != nil {
		return fmt.Errorf("report: series header: %w", err)
	}
	for _, p := range s.Points {
		if len(p.Values) != len(s.Columns) {
			return fmt.Errorf("report: slot %d has %d values for %d columns", p.Slot, len(p.Values), len(s.Columns))
		}
		rec := make([]string, 0, len(p.Values)+2)
		rec = append(rec, strconv.Itoa(p.Slot), p.Category)
		for _, v := range p.Values {
			cell := ""
			if p.Valid {
				cell = formatValue(v)
			}
			rec = append(rec, cell)
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("report: slot %d: %w", p.Slot, err)
		}
	}
	cw.Flush()

	return cw.Error()
}

// WriteCSVFile writes the series to path, creating parent directories.
func (s Series) WriteCSVFile(path string) error {
	return writeFile(path, s.WriteCSV)
}
