package significance

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/calganaygun/networks-playground/motif"
)

// ErrEmptyEnsemble is returned when there is nothing to compare against.
var ErrEmptyEnsemble = errors.New("significance: empty ensemble")

// zeroStdTolerance is the relative standard deviation below which a slot is
// treated as constant. Averaging identical counts can leave a few ulps of
// spread.
const zeroStdTolerance = 1e-12

// Slot is the evaluation of one catalogue slot.
type Slot struct {
	Slot  int
	Name  string
	Real  uint64
	Mean  float64
	Std   float64
	Z     float64
	Valid bool
}

// ZScore returns Z and whether it is defined.
func (s Slot) ZScore() (float64, bool) { return s.Z, s.Valid }

// String renders "slot:name real=.. mean=.. std=.. z=..", with z=n/a for an
// undefined score.
func (s Slot) String() string {
	z := "n/a"
	if s.Valid {
		z = fmt.Sprintf("%.3f", s.Z)
	}
	return fmt.Sprintf("%d:%s real=%d mean=%.3f std=%.3f z=%s", s.Slot, s.Name, s.Real, s.Mean, s.Std, z)
}

// Result holds one Slot per catalogue slot plus the ensemble size used.
type Result struct {
	Slots    [motif.NumSlots]Slot
	Ensemble int
}

// Valid reports whether every slot has a defined z-score.
func (r Result) Valid() bool {
	for _, s := range r.Slots {
		if !s.Valid {
			return false
		}
	}
	return true
}

// Means returns the per-slot ensemble means.
func (r Result) Means() [motif.NumSlots]float64 {
	var out [motif.NumSlots]float64
	for i, s := range r.Slots {
		out[i] = s.Mean
	}
	return out
}

// Evaluate computes per-slot statistics of ensemble against observed. The result
// does not depend on the order of ensemble.
//
// Errors: ErrEmptyEnsemble when len(ensemble) == 0.
func Evaluate(observed motif.CountVector, ensemble []motif.CountVector) (Result, error) {
	if len(ensemble) == 0 {
		return Result{}, ErrEmptyEnsemble
	}

	res := Result{Ensemble: len(ensemble)}
	column := make([]float64, len(ensemble))
	cat := motif.Default()
	for slot := 0; slot < motif.NumSlots; slot++ {
		for k, counts := range ensemble {
			column[k] = float64(counts[slot])
		}
		mean, std := stat.PopMeanStdDev(column, nil)

		s := Slot{Slot: slot, Real: observed[slot], Mean: mean, Std: std}
		if c, ok := cat.Class(slot); ok {
			s.Name = c.Name
		}
		if std > zeroStdTolerance*math.Max(1, math.Abs(mean)) {
			s.Z = (float64(observed[slot]) - mean) / std
			s.Valid = true
		} else {
			s.Std = 0
		}
		res.Slots[slot] = s
	}

	return res, nil
}
