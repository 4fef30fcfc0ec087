// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_configuration.go - configuration-model constructor over an explicit
// degree list.
//
// Model:
//   • Stub list: vertex i repeated degrees[i] times, in the given order.
//   • Each attempt reshuffles the list with cfg.rng and pairs it according to
//     cfg.pairing. A pairing that would need a self-loop or a duplicate edge
//     rejects the attempt; nothing is written to g until a pairing succeeds.
//   • At most cfg.maxAttempts attempts; exhaustion → ErrConstructFailed.
//
// Contract:
//   • len(ids) == len(degrees), every degree ≥ 0, Σdegrees even (else ErrInvalidDegrees).
//   • cfg.rng must be non-nil (else ErrNeedRandSource).
//   • All ids are added as vertices, zero-degree ones included.
//   • cfg.stats, if set, receives the attempt accounting on success and failure.
//
// Complexity:
//   • Per attempt O(Σd) time to shuffle + pair; O(Σd) temporary space for stubs.
//   • Attempts are bounded by cfg.maxAttempts.
//
// Determinism:
//   • Same (ids order, degrees, seed, policy) ⇒ identical edge set.

package builder

import (
	"fmt"

	"github.com/calganaygun/networks-playground/core"
)

const methodConfiguration = "Configuration"

// Configuration returns a Constructor that realizes degrees[i] for ids[i] as
// a simple graph by stub matching.
func Configuration(ids []string, degrees []int) Constructor {
	// The closure captures (ids, degrees); BuildGraph supplies (g, cfg).
	return func(g *core.Graph, cfg builderConfig) error {
		// 1) Parameter validation (fail fast; zero side-effects on invalid input).
		//    Domain: len(ids)==len(degrees), d≥0, parity: Σd even.
		stubCount, err := validateDegrees(methodConfiguration, ids, degrees)
		if err != nil {
			return err
		}

		// 2) RNG is mandatory for stub shuffling (determinism + stochasticity).
		if cfg.rng == nil {
			return fmt.Errorf("%s: rng is required: %w", methodConfiguration, ErrNeedRandSource)
		}

		// 3) Add all vertices in the caller's order; isolated ones survive.
		for _, id := range ids {
			if err = g.AddVertex(id); err != nil {
				return fmt.Errorf("%s: AddVertex(%s): %w", methodConfiguration, id, err)
			}
		}

		// 4) Reset the attempt accounting (caller-owned or a local sink).
		stats := cfg.stats
		if stats == nil {
			stats = &Stats{}
		}
		*stats = Stats{}
		if stubCount == 0 { // all degrees zero → isolated vertices only
			return nil
		}

		// 5) Prepare the stub list (vertex index i repeated degrees[i] times).
		stubs := make([]int, 0, stubCount) // O(Σd) temporary array
		for i, d := range degrees {
			for k := 0; k < d; k++ {
				stubs = append(stubs, i)
			}
		}

		// 6) Attempt bounded reshuffles until a pairing succeeds or the budget ends.
		rng := cfg.rng // local alias (already validated non-nil)
		for attempt := 1; attempt <= cfg.maxAttempts; attempt++ {
			stats.Attempts = attempt

			// 6.1) Shuffle stubs in-place (deterministic per seed).
			rng.Shuffle(len(stubs), func(i, j int) { stubs[i], stubs[j] = stubs[j], stubs[i] })

			// 6.2) Pair WITHOUT mutating the graph, under the selected policy.
			var (
				pairs []pairKey
				ok    bool
			)
			if cfg.pairing == PairingStrict {
				pairs, ok = pairStrict(stubs)
			} else {
				pairs, ok = pairSequential(stubs, rng)
			}

			// 6.3) Loop or duplicate edge → count the rejection and reshuffle.
			if !ok {
				stats.Rejected++
				continue
			}

			// 6.4) Pairing is simple → apply edges.
			for _, p := range pairs {
				if err = addEdge(g, methodConfiguration, ids[p[0]], ids[p[1]]); err != nil {
					return err
				}
			}

			// 6.5) Success on this attempt.
			return nil
		}

		// 7) Every attempt was rejected → construction failure.
		return fmt.Errorf("%s: %s pairing failed after %d attempts: %w",
			methodConfiguration, cfg.pairing, cfg.maxAttempts, ErrConstructFailed)
	}
}
