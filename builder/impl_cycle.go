// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_cycle.go - implementation of Cycle(n) constructor.
//
// Contract:
//   • n ≥ 3 (else ErrTooFewVertices).
//   • Adds vertices via cfg.idFn in ascending index order (0..n-1).
//   • Emits edges in stable order i-(i+1)%n for i=0..n-1.
//
// Complexity: O(n) vertices + O(n) edges.

package builder

import (
	"github.com/calganaygun/networks-playground/core"
)

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that builds an n-vertex simple cycle C_n.
func Cycle(n int) Constructor {
	// The closure captures n; BuildGraph supplies (g, cfg).
	return func(g *core.Graph, cfg builderConfig) error {
		// 1) Parameter validation: a simple cycle needs n ≥ 3.
		if err := validateMin(methodCycle, "n", n, minCycleNodes); err != nil {
			return err
		}

		// 2) Add vertices via cfg.idFn in ascending index order (0..n-1).
		ids, err := addIndexedVertices(g, methodCycle, n, cfg.idFn)
		if err != nil {
			return err
		}
		// 3) Ring edges i—(i+1)%n; for i==n-1, connect back to 0 to close the ring.
		for i := 0; i < n; i++ {
			if err = addEdge(g, methodCycle, ids[i], ids[(i+1)%n]); err != nil {
				return err
			}
		}

		return nil
	}
}
