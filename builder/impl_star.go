// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_star.go - implementation of Star(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Adds hub vertex with fixed ID "Center".
//   - Adds leaves via cfg.idFn for i = 1..n-1, each joined to the hub.
//
// Complexity: O(n) vertices + O(n-1) edges.

package builder

import (
	"fmt"

	"github.com/calganaygun/networks-playground/core"
)

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star returns a Constructor that builds a star topology with n vertices:
// one hub "Center" and n-1 leaves.
func Star(n int) Constructor {
	// The closure captures n; BuildGraph supplies (g, cfg).
	return func(g *core.Graph, cfg builderConfig) error {
		// 1) Parameter validation: at least the hub and one leaf.
		if err := validateMin(methodStar, "n", n, minStarNodes); err != nil {
			return err
		}

		// 2) Hub first, so it exists even before any leaf is attached.
		if err := g.AddVertex(centerVertexID); err != nil {
			return fmt.Errorf("%s: AddVertex(%s): %w", methodStar, centerVertexID, err)
		}
		// 3) Leaves i=1..n-1 via cfg.idFn, each joined to the hub.
		for i := 1; i < n; i++ {
			if err := addEdge(g, methodStar, centerVertexID, cfg.idFn(i)); err != nil {
				return err
			}
		}

		return nil
	}
}
