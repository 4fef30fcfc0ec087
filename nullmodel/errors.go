package nullmodel

import (
	"errors"
	"fmt"
)

var (
	// ErrDegreeSequenceUnrealizable means no simple graph was found within the
	// attempt budget, or the sequence is not graphical at all.
	ErrDegreeSequenceUnrealizable = errors.New("nullmodel: degree sequence unrealizable")

	// ErrDegreeSequenceMismatch means a produced graph does not reproduce the
	// source degree multiset.
	ErrDegreeSequenceMismatch = errors.New("nullmodel: degree sequence mismatch")

	// ErrNilGraph is returned for a nil source graph.
	ErrNilGraph = errors.New("nullmodel: nil graph")

	// ErrInvalidGraph6 reports a graph6 payload that does not decode against
	// the given vertex IDs.
	ErrInvalidGraph6 = errors.New("nullmodel: invalid graph6 payload")
)

// FailureKind classifies why a generation produced no graph.
type FailureKind int

const (
	// FailureUnrealizable maps to ErrDegreeSequenceUnrealizable.
	FailureUnrealizable FailureKind = iota + 1
	// FailureMismatch maps to ErrDegreeSequenceMismatch.
	FailureMismatch
)

// String returns a short label, used as a metrics label value.
func (k FailureKind) String() string {
	switch k {
	case FailureUnrealizable:
		return "unrealizable"
	case FailureMismatch:
		return "mismatch"
	default:
		return fmt.Sprintf("FailureKind(%d)", int(k))
	}
}

// Failure is the structured failure of one ensemble member.
type Failure struct {
	Kind     FailureKind
	Index    int
	Seed     int64
	Attempts int
	Detail   string
}

// Error implements error.
func (f *Failure) Error() string {
	return fmt.Sprintf("%v (member %d, seed %d, %d attempts): %s",
		f.Unwrap(), f.Index, f.Seed, f.Attempts, f.Detail)
}

// Unwrap returns the sentinel matching Kind.
func (f *Failure) Unwrap() error {
	if f.Kind == FailureMismatch {
		return ErrDegreeSequenceMismatch
	}
	return ErrDegreeSequenceUnrealizable
}
