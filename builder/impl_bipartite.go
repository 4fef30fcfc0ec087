// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_bipartite.go - implementation of CompleteBipartite(n1, n2).
//
// Contract:
//   • n1, n2 ≥ 1 (else ErrTooFewVertices).
//   • Left IDs "<left><i>", right IDs "<right><j>" (defaults "L"/"R").
//   • Emits all cross edges, left-major.
//
// K_{2,2} is C_4 and K_{1,3} is the 4-star, so small instances double as
// single-motif fixtures.

package builder

import (
	"fmt"

	"github.com/calganaygun/networks-playground/core"
)

const (
	methodCompleteBipartite = "CompleteBipartite"
	minPartitionSize        = 1
)

// CompleteBipartite returns a Constructor for the complete bipartite graph K_{n1,n2}.
func CompleteBipartite(n1, n2 int) Constructor {
	// The closure captures (n1, n2); BuildGraph supplies (g, cfg).
	return func(g *core.Graph, cfg builderConfig) error {
		// 1) Parameter validation: both partitions non-empty.
		if n1 < minPartitionSize || n2 < minPartitionSize {
			return fmt.Errorf("%s: n1=%d, n2=%d (each must be ≥ %d): %w",
				methodCompleteBipartite, n1, n2, minPartitionSize, ErrTooFewVertices)
		}

		// 2) Partitions: left then right, each in ascending index order.
		left, err := addIndexedVertices(g, methodCompleteBipartite, n1, SymbolNumberIDFn(cfg.leftPrefix))
		if err != nil {
			return err
		}
		right, err := addIndexedVertices(g, methodCompleteBipartite, n2, SymbolNumberIDFn(cfg.rightPrefix))
		if err != nil {
			return err
		}
		// 3) All cross edges, left-major; no edges inside a partition.
		for _, u := range left {
			for _, v := range right {
				if err = addEdge(g, methodCompleteBipartite, u, v); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
