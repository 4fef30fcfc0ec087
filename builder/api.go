// SPDX-License-Identifier: MIT
// Package: builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig (no global state).
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.
//   - Safety: never panic at runtime; constructors return sentinel errors.
//
// Hints:
//   - Compose several constructors in BuildGraph to assemble fixtures (e.g. Complete(4) + Path).
//   - Use WithSeed(...) to freeze stochastic paths (RandomSparse, RandomRegular, Configuration).
//   - Configuration(ids, degrees) is the degree-preserving null-model generator; pass
//     WithStats to observe how many pairing attempts were spent.

package builder

import (
	"fmt"

	"github.com/calganaygun/networks-playground/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Leave g untouched by edges when a stochastic strategy gives up.
//   - Preserve determinism for the same config and call order.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph, resolves the builder configuration from
// bopts, and applies all constructors in order. Any constructor error is
// wrapped with the context "BuildGraph: %w" and returned immediately.
//
// Complexity:
//   - Resolving options: O(len(bopts)).
//   - Applying K constructors: Σ cost of each constructor.
//
// Errors:
//   - Wraps constructor errors via %w; branch with errors.Is against builder
//     sentinels (ErrTooFewVertices, ErrInvalidDegrees, ErrConstructFailed, ...).
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph()
	if err := Apply(g, bopts, cons...); err != nil {
		return nil, err
	}

	return g, nil
}

// Apply runs constructors against an existing graph. It shares BuildGraph's
// option resolution and error wrapping; g keeps whatever earlier constructors
// added if a later one fails.
func Apply(g *core.Graph, bopts []BuilderOption, cons ...Constructor) error {
	if g == nil {
		return fmt.Errorf("BuildGraph: nil graph: %w", ErrConstructFailed)
	}
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return nil
}

// =============================================================================
// Topology factories (declarations) - implemented in impl_*.go
// =============================================================================

// Cycle builds an n-vertex simple cycle C_n (n ≥ 3).
//func Cycle(n int) Constructor

// Path builds a simple path P_n (n ≥ 2).
//func Path(n int) Constructor

// Star builds a star with center "Center" and n-1 leaves (n ≥ 2).
//func Star(n int) Constructor

// Wheel builds a wheel W_n = C_{n-1} + center "Center" (n ≥ 4).
//func Wheel(n int) Constructor

// Complete builds the complete simple graph K_n (n ≥ 1).
//func Complete(n int) Constructor

// CompleteBipartite builds K_{n1,n2} using cfg.leftPrefix/cfg.rightPrefix.
//func CompleteBipartite(n1, n2 int) Constructor

// Grid builds an R×C 4-neighborhood grid with IDs "r,c" (row-major).
//func Grid(rows, cols int) Constructor

// RandomSparse builds an Erdős–Rényi G(n,p) graph. Requires cfg.rng for 0<p<1.
//func RandomSparse(n int, p float64) Constructor

// Configuration realizes an explicit degree list via stub matching with a
// bounded attempt budget; requires cfg.rng.
//func Configuration(ids []string, degrees []int) Constructor

// RandomRegular builds a d-regular simple graph; a thin wrapper over Configuration.
//func RandomRegular(n, d int) Constructor
