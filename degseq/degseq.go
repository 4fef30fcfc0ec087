// SPDX-License-Identifier: MIT
// Package degseq models degree sequences: order-independent multisets of
// per-vertex degrees, with equality, histograms and a graphicality test.
//
// File: degseq.go
// Role: Sequence type, constructors and Erdős–Gallai check.
//
// Determinism:
//   - A Sequence is always sorted non-increasing, so two graphs with the same
//     degree multiset produce element-wise equal Sequences.

package degseq

import (
	"errors"
	"sort"

	"github.com/calganaygun/networks-playground/core"
)

// ErrNegativeDegree indicates a degree below zero was supplied.
var ErrNegativeDegree = errors.New("degseq: negative degree")

// Sequence is a degree multiset stored sorted non-increasing.
type Sequence []int

// New returns the Sequence for degrees. The input slice is not modified.
//
// Errors:
//   - ErrNegativeDegree if any entry is < 0.
//
// Complexity: O(n log n).
func New(degrees []int) (Sequence, error) {
	out := make(Sequence, len(degrees))
	for i, d := range degrees {
		if d < 0 {
			return nil, ErrNegativeDegree
		}
		out[i] = d
	}
	sort.Sort(sort.Reverse(sort.IntSlice(out)))

	return out, nil
}

// Of returns the degree Sequence of g, isolated vertices included.
func Of(g *core.Graph) Sequence {
	_, degrees := g.Degrees()
	s, _ := New(degrees) // degrees from a graph are never negative

	return s
}

// Len returns the number of vertices described by s.
func (s Sequence) Len() int { return len(s) }

// Sum returns Σd, which is twice the edge count of any realization.
func (s Sequence) Sum() int {
	total := 0
	for _, d := range s {
		total += d
	}
	return total
}

// Max returns the largest degree, or 0 for an empty sequence.
func (s Sequence) Max() int {
	if len(s) == 0 {
		return 0
	}
	return s[0]
}

// Equal reports whether a and b describe the same multiset.
func Equal(a, b Sequence) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// IsGraphical reports whether some simple graph realizes s (Erdős–Gallai).
// For every k in 1..n:
//
//	Σ_{i≤k} d_i ≤ k(k-1) + Σ_{i>k} min(d_i, k)
//
// together with an even degree sum.
// Complexity: O(n²) worst case; O(n) typical since the min-sum is clipped.
func IsGraphical(s Sequence) bool {
	n := len(s)
	if n == 0 {
		return true
	}
	if s.Sum()%2 != 0 || s[0] >= n || s[n-1] < 0 {
		return false
	}

	lhs := 0
	for k := 1; k <= n; k++ {
		lhs += s[k-1]
		rhs := k * (k - 1)
		for i := k; i < n; i++ {
			if s[i] < k {
				rhs += s[i]
			} else {
				rhs += k
			}
		}
		if lhs > rhs {
			return false
		}
	}

	return true
}
