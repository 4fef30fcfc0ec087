package report_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calganaygun/networks-playground/motif"
	"github.com/calganaygun/networks-playground/report"
	"github.com/calganaygun/networks-playground/significance"
)

func TestCountTable_CSV(t *testing.T) {
	t.Parallel()
	tbl := report.NewCountTable(
		motif.CountVector{2, 0, 0, 1},
		[motif.NumSlots]float64{1.5, 0.25},
	)

	var buf bytes.Buffer
	require.NoError(t, tbl.WriteCSV(&buf))
	assert.Equal(t,
		",0,1,2,3,4,5,6,7\n"+
			"Real Graph,2,0,0,1,0,0,0,0\n"+
			"Random Graphs (Mean),1.5,0.25,0,0,0,0,0,0\n",
		buf.String())
}

func TestTable_RowWidthMismatch(t *testing.T) {
	t.Parallel()
	tbl := report.Table{Columns: []string{"a", "b"}, Rows: []report.Row{{Label: "x", Values: []float64{1}}}}
	assert.Error(t, tbl.WriteCSV(&bytes.Buffer{}))
}

func TestZScoreSeries(t *testing.T) {
	t.Parallel()
	res, err := significance.Evaluate(
		motif.CountVector{5, 1},
		[]motif.CountVector{{1, 1}, {3, 1}},
	)
	require.NoError(t, err)

	s := report.ZScoreSeries(res)
	require.Len(t, s.Points, motif.NumSlots)
	assert.Equal(t, []string{report.ColumnZScore}, s.Columns)
	assert.Equal(t, "0:open-triad", s.Points[0].Category)
	assert.True(t, s.Points[0].Valid)
	assert.InDelta(t, 3.0, s.Points[0].Values[0], 1e-12)
	assert.False(t, s.Points[1].Valid)
	assert.Equal(t, "7:complete4", s.Points[7].Category)

	var buf bytes.Buffer
	require.NoError(t, s.WriteCSV(&buf))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, motif.NumSlots+1)
	assert.Equal(t, "slot,category,z_score", lines[0])
	assert.Equal(t, "0,0:open-triad,3", lines[1])
	assert.Equal(t, "1,1:triangle,", lines[2])
}

func TestCountSeries(t *testing.T) {
	t.Parallel()
	s := report.CountSeries(
		motif.CountVector{0, 4, 0, 0, 0, 0, 0, 1},
		[motif.NumSlots]float64{1.5, 2.25},
	)
	assert.Equal(t, []string{report.ColumnReal, report.ColumnMean}, s.Columns)
	require.Len(t, s.Points, motif.NumSlots)
	assert.Equal(t, []float64{4, 2.25}, s.Points[1].Values)
	for _, p := range s.Points {
		assert.True(t, p.Valid)
	}

	var buf bytes.Buffer
	require.NoError(t, s.WriteCSV(&buf))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, motif.NumSlots+1)
	assert.Equal(t, "slot,category,real,mean", lines[0])
	assert.Equal(t, "0,0:open-triad,0,1.5", lines[1])
	assert.Equal(t, "1,1:triangle,4,2.25", lines[2])
	assert.Equal(t, "7,7:complete4,1,0", lines[8])
}

func TestSeries_ValueWidthMismatch(t *testing.T) {
	t.Parallel()
	s := report.Series{
		Columns: []string{report.ColumnReal, report.ColumnMean},
		Points:  []report.Point{{Slot: 0, Category: "x", Values: []float64{1}, Valid: true}},
	}
	assert.Error(t, s.WriteCSV(&bytes.Buffer{}))
}

func TestWriteSummary(t *testing.T) {
	t.Parallel()
	res, err := significance.Evaluate(motif.CountVector{5}, []motif.CountVector{{1}, {3}})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, report.WriteSummary(&buf, res))
	out := buf.String()
	assert.Contains(t, out, "open-triad")
	assert.Contains(t, out, "3.000")
	assert.Contains(t, out, "n/a")
	assert.Equal(t, motif.NumSlots+1, strings.Count(out, "\n"))
}

func TestWriteCSVFile(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "out", "1234.csv")
	tbl := report.NewCountTable(motif.CountVector{}, [motif.NumSlots]float64{})
	require.NoError(t, tbl.WriteCSVFile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), ",0,1"))
}

func TestWriteCSVFile_ReplacesAtomically(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	path := filepath.Join(dir, "9.csv")
	require.NoError(t, os.WriteFile(path, []byte("stale contents that are longer than the new table\n"), 0o644))

	tbl := report.NewCountTable(motif.CountVector{1}, [motif.NumSlots]float64{})
	require.NoError(t, tbl.WriteCSVFile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "stale")
	assert.True(t, strings.HasPrefix(string(data), ",0,1"))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1, "no temp file left behind")
	info, err := entries[0].Info()
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o644), info.Mode().Perm())
}

func TestWriteCSVFile_FailedWriteKeepsPrevious(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	path := filepath.Join(dir, "9_counts.csv")
	require.NoError(t, os.WriteFile(path, []byte("previous\n"), 0o644))

	bad := report.Series{
		Columns: []string{report.ColumnReal},
		Points:  []report.Point{{Slot: 0, Values: []float64{1, 2}, Valid: true}},
	}
	require.Error(t, bad.WriteCSVFile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "previous\n", string(data))
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}
