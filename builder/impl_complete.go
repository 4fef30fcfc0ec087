// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_complete.go - implementation of Complete(n) constructor.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices).
//   • Adds vertices via cfg.idFn in ascending index order (0..n-1).
//   • Emits each unordered pair {i,j} with i<j exactly once.
//
// Complexity: O(n) vertices + O(n²) edges.

package builder

import (
	"github.com/calganaygun/networks-playground/core"
)

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor that builds the complete simple graph K_n.
func Complete(n int) Constructor {
	// The closure captures n; BuildGraph supplies (g, cfg).
	return func(g *core.Graph, cfg builderConfig) error {
		// 1) Parameter validation (fail fast; zero side-effects on invalid input).
		if err := validateMin(methodComplete, "n", n, minCompleteNodes); err != nil {
			return err
		}
		// 2) Add vertices via cfg.idFn in ascending index order (0..n-1).
		ids, err := addIndexedVertices(g, methodComplete, n, cfg.idFn)
		if err != nil {
			return err
		}

		// 3) Every unordered pair i<j, lexicographic (i asc, j asc).
		return addCompleteEdges(g, methodComplete, ids)
	}
}
