package analysis

import (
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/calganaygun/networks-playground/motif"
	"github.com/calganaygun/networks-playground/nullmodel"
	"github.com/calganaygun/networks-playground/report"
	"github.com/calganaygun/networks-playground/significance"
)

// Report is the outcome of one Run.
type Report struct {
	RunID      uuid.UUID
	Name       string
	GraphID    string
	Signature  string
	Vertices   int
	Edges      int
	Components int

	Observed motif.CountVector
	// Members are the survivors, ordered by Index.
	Members  []Member
	Failures []*nullmodel.Failure
	// Requested is the configured ensemble size.
	Requested    int
	Significance significance.Result

	Started  time.Time
	Duration time.Duration
}

// Ensemble returns the member count vectors in index order.
func (r *Report) Ensemble() []motif.CountVector {
	out := make([]motif.CountVector, len(r.Members))
	for i, m := range r.Members {
		out[i] = m.Counts
	}
	return out
}

// CachedMembers returns how many members came from the cache.
func (r *Report) CachedMembers() int {
	n := 0
	for _, m := range r.Members {
		if m.Cached {
			n++
		}
	}
	return n
}

// CountTable returns the observed-versus-mean counts table.
func (r *Report) CountTable() report.Table {
	return report.NewCountTable(r.Observed, r.Significance.Means())
}

// CountSeries returns the observed-versus-mean counts per slot as a chart
// series.
func (r *Report) CountSeries() report.Series {
	return report.CountSeries(r.Observed, r.Significance.Means())
}

// WriteFiles writes, under dir, and returns the paths in this order:
//
//	<graph id>.csv           counts table
//	<graph id>_counts.csv    real and mean counts series
//	<graph id>_z_scores.csv  z-score series
func (r *Report) WriteFiles(dir string) ([]string, error) {
	tablePath := filepath.Join(dir, r.GraphID+".csv")
	if err := r.CountTable().WriteCSVFile(tablePath); err != nil {
		return nil, errors.Wrap(err, "analysis: counts table")
	}
	countsPath := filepath.Join(dir, r.GraphID+"_counts.csv")
	if err := r.CountSeries().WriteCSVFile(countsPath); err != nil {
		return nil, errors.Wrap(err, "analysis: counts series")
	}
	zPath := filepath.Join(dir, r.GraphID+"_z_scores.csv")
	if err := report.ZScoreSeries(r.Significance).WriteCSVFile(zPath); err != nil {
		return nil, errors.Wrap(err, "analysis: z-score series")
	}
	return []string{tablePath, countsPath, zPath}, nil
}
