// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_path.go - implementation of Path(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Adds vertices via cfg.idFn in ascending index order (0..n-1).
//   - Emits edges (i-1)-i for i=1..n-1 in stable increasing order.
//
// Complexity: O(n) time, O(n) space for the ID slice.

package builder

import (
	"github.com/calganaygun/networks-playground/core"
)

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that builds a simple path P_n.
func Path(n int) Constructor {
	// The closure captures n; BuildGraph supplies (g, cfg).
	return func(g *core.Graph, cfg builderConfig) error {
		// 1) Parameter validation (fail fast; zero side-effects on invalid input).
		if err := validateMin(methodPath, "n", n, minPathNodes); err != nil {
			return err
		}

		// 2) Add vertices via cfg.idFn in ascending index order (0..n-1).
		ids, err := addIndexedVertices(g, methodPath, n, cfg.idFn)
		if err != nil {
			return err
		}
		// 3) Chain consecutive vertices: (i-1)—i for i=1..n-1.
		for i := 1; i < n; i++ {
			if err = addEdge(g, methodPath, ids[i-1], ids[i]); err != nil {
				return err
			}
		}

		return nil
	}
}
