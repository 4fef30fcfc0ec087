// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_random_sparse.go - implementation of RandomSparse(n, p) constructor.
//
// Model:
//   - Erdős–Rényi G(n,p): include each unordered pair {i,j}, i<j, independently with prob p.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil when 0 < p < 1 (else ErrNeedRandSource).
//
// Determinism:
//   - Stable edge-trial order: for each i asc, j asc (j>i); one draw per trial.

package builder

import (
	"fmt"

	"github.com/calganaygun/networks-playground/core"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
)

// RandomSparse returns a Constructor that samples G(n,p).
func RandomSparse(n int, p float64) Constructor {
	// The closure captures (n, p); BuildGraph supplies (g, cfg).
	return func(g *core.Graph, cfg builderConfig) error {
		// 1) Parameter validation: n ≥ 1 and p ∈ [0,1].
		if err := validateMin(methodRandomSparse, "n", n, minRandomSparseVertices); err != nil {
			return err
		}
		if err := validateProbability(methodRandomSparse, p); err != nil {
			return err
		}
		// 2) RNG is needed only when p is strictly between the bounds.
		if cfg.rng == nil && p > MinProbability && p < MaxProbability {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}

		// 3) Add vertices via cfg.idFn in ascending index order (0..n-1).
		ids, err := addIndexedVertices(g, methodRandomSparse, n, cfg.idFn)
		if err != nil {
			return err
		}

		// 4) Bernoulli(p) trial per unordered pair i<j; the fixed pair order
		//    keeps the RNG draw sequence stable per seed.
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				// 4.1) Short-circuit the degenerate probabilities (no draw).
				var keep bool
				switch {
				case p == MaxProbability:
					keep = true
				case p == MinProbability:
					keep = false
				default:
					keep = cfg.rng.Float64() < p
				}
				// 4.2) Rejected pair → next; accepted → add the edge.
				if !keep {
					continue
				}
				if err = addEdge(g, methodRandomSparse, ids[i], ids[j]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
