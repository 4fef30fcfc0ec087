// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_random_regular.go - implementation of RandomRegular(n, d) constructor.
//
// Model:
//   • d-regular simple graph realized by Configuration over n copies of d.
//
// Contract:
//   • n ≥ 1; 0 ≤ d < n; (n*d) must be even (else ErrTooFewVertices).
//   • cfg.rng must be non-nil (else ErrNeedRandSource).
//   • Vertices via cfg.idFn in ascending index order (0..n-1).
//   • Pairing policy and attempt budget come from cfg (WithPairing, WithMaxAttempts).

package builder

import (
	"fmt"

	"github.com/calganaygun/networks-playground/core"
)

const (
	methodRandomRegular = "RandomRegular"
	minRRVertices       = 1
)

// RandomRegular returns a Constructor that builds an undirected d-regular graph.
func RandomRegular(n, d int) Constructor {
	// The closure captures (n, d); BuildGraph supplies (g, cfg).
	return func(g *core.Graph, cfg builderConfig) error {
		// 1) Parameter validation. Domain: n≥1, 0≤d<n, parity: (n*d) even.
		if err := validateMin(methodRandomRegular, "n", n, minRRVertices); err != nil {
			return err
		}
		if d < 0 || d >= n {
			return fmt.Errorf("%s: degree must be in [0,%d), got %d: %w",
				methodRandomRegular, n, d, ErrTooFewVertices)
		}
		if (n*d)%2 != 0 {
			return fmt.Errorf("%s: n*d must be even (n=%d, d=%d): %w",
				methodRandomRegular, n, d, ErrTooFewVertices)
		}

		// 2) IDs via cfg.idFn in ascending index order, every degree d.
		ids := make([]string, n)
		degrees := make([]int, n)
		for i := range ids {
			ids[i] = cfg.idFn(i)
			degrees[i] = d
		}
		// 3) Delegate stub matching (pairing policy + attempt budget from cfg).
		if err := Configuration(ids, degrees)(g, cfg); err != nil {
			return fmt.Errorf("%s: %w", methodRandomRegular, err)
		}

		return nil
	}
}
