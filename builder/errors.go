// SPDX-License-Identifier: MIT
// Package: builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context with `%w`:
//       fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
//   • Validation panics are confined to option constructors (WithX...).
//
// Priority when several validations fail:
//   ErrTooFewVertices → ErrInvalidProbability / ErrInvalidDegrees → ErrNeedRandSource
//   → ErrConstructFailed (only after all attempts are exhausted).

package builder

import "errors"

// ErrTooFewVertices indicates that a numeric parameter (n, rows, cols, degree)
// is smaller than the allowed minimum for the requested constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrInvalidDegrees indicates a degree list that no stub matching can consume:
// length mismatch with the IDs, a negative entry or an odd degree sum.
var ErrInvalidDegrees = errors.New("builder: invalid degree sequence")

// ErrNeedRandSource indicates that a stochastic constructor requires a non-nil
// *rand.Rand in the resolved builderConfig (WithSeed/WithRand must be set).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates that the builder exhausted its attempt budget
// (or was handed a nil graph/constructor) and could not construct a topology
// without breaking invariants (no loops, no multi-edges).
// Usage: if errors.Is(err, ErrConstructFailed) { /* retry with different seed */ }.
var ErrConstructFailed = errors.New("builder: construction failed")
