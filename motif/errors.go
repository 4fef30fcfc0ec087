package motif

import "errors"

// Sentinel errors for catalogue construction, classification and census.
var (
	// ErrUnknownMotif means a connected subgraph matched no catalogue class.
	// The catalogue is exhaustive for sizes 3 and 4, so this signals a defect
	// and must abort the run.
	ErrUnknownMotif = errors.New("motif: subgraph matches no catalogue class")

	// ErrUnsupportedSize is returned for subgraph sizes other than 3 and 4.
	ErrUnsupportedSize = errors.New("motif: unsupported subgraph size")

	// ErrInvalidPattern reports a malformed edge list.
	ErrInvalidPattern = errors.New("motif: invalid pattern")

	// ErrInvalidCatalogue reports a catalogue that is not a set of distinct,
	// connected, exhaustive classes.
	ErrInvalidCatalogue = errors.New("motif: invalid catalogue")

	// ErrNilIndex is returned when Census receives a nil index.
	ErrNilIndex = errors.New("motif: nil graph index")
)
