// Package builder defines shared constants used by graph builders, ensuring
// consistent defaults and validation across all topology constructors.
package builder

// centerVertexID is the hub identifier used by Star and Wheel.
const centerVertexID = "Center"

// CenterVertexID exposes the hub identifier for tests and callers.
const CenterVertexID = centerVertexID

// Probability bounds for RandomSparse, inclusive.
const (
	MinProbability = 0.0
	MaxProbability = 1.0
)

// maxPartnerRedraws bounds the random partner draws of sequential pairing
// before it falls back to a linear scan of the remaining stubs.
const maxPartnerRedraws = 8
