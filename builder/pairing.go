// SPDX-License-Identifier: MIT
// Package: builder
//
// pairing.go - stub-matching policies shared by Configuration and RandomRegular.
//
// Both policies consume a shuffled stub list (vertex index repeated deg times)
// and either return a complete simple pairing or report failure, in which case
// the caller reshuffles and tries again within its attempt budget.
//
// Determinism:
//   • All randomness comes from the *rand.Rand passed in; the scan order of
//     the fallback is fixed, so equal seeds give equal pairings.

package builder

import (
	"fmt"
	"math/rand"
	"strings"
)

// Pairing selects how shuffled stubs are matched into edges.
type Pairing int

const (
	// PairingSequential pops a stub, draws a random admissible partner from the
	// remaining stubs (bounded redraws, then a linear scan) and abandons the
	// attempt only when no admissible partner is left.
	PairingSequential Pairing = iota
	// PairingStrict pairs consecutive stubs of the shuffled list and rejects
	// the whole attempt on the first self-loop or duplicate edge.
	PairingStrict
)

// String returns the configuration name of the policy.
func (p Pairing) String() string {
	switch p {
	case PairingSequential:
		return "sequential"
	case PairingStrict:
		return "strict"
	default:
		return fmt.Sprintf("Pairing(%d)", int(p))
	}
}

// ParsePairing maps a configuration name ("sequential", "strict") to a Pairing.
func ParsePairing(s string) (Pairing, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "sequential":
		return PairingSequential, nil
	case "strict":
		return PairingStrict, nil
	default:
		return 0, fmt.Errorf("builder: unknown pairing %q", s)
	}
}

// Stats reports how a stub-matching constructor spent its attempt budget.
type Stats struct {
	// Attempts is the number of shuffles performed, the successful one included.
	Attempts int
	// Rejected counts attempts discarded because of a loop or duplicate edge.
	Rejected int
}

// pairKey is an unordered index pair with a ≤ b.
type pairKey [2]int

func makePairKey(u, v int) pairKey {
	if u > v {
		u, v = v, u
	}
	return pairKey{u, v}
}

// pairStrict validates consecutive pairs of stubs without mutating anything.
// Complexity: O(len(stubs)).
func pairStrict(stubs []int) ([]pairKey, bool) {
	seen := make(map[pairKey]struct{}, len(stubs)/2)
	out := make([]pairKey, 0, len(stubs)/2)
	// Check every consecutive pair (stubs[2k], stubs[2k+1]).
	for i := 0; i < len(stubs); i += 2 {
		u, v := stubs[i], stubs[i+1] // left, right endpoint index

		// 1) Self-loop → reject the whole attempt.
		if u == v {
			return nil, false
		}

		// 2) Duplicate unordered pair → reject the whole attempt.
		key := makePairKey(u, v)
		if _, dup := seen[key]; dup {
			return nil, false
		}
		seen[key] = struct{}{}
		out = append(out, key)
	}

	return out, true
}

// pairSequential matches stubs one at a time. The pool is consumed from the
// tail; a chosen partner is swapped to the tail and dropped, so each step is
// O(1) except for the fallback scan.
// Complexity: O(len(stubs)) expected, O(len(stubs)²) worst case.
func pairSequential(stubs []int, rng *rand.Rand) ([]pairKey, bool) {
	pool := append([]int(nil), stubs...)
	seen := make(map[pairKey]struct{}, len(stubs)/2)
	out := make([]pairKey, 0, len(stubs)/2)

	admissible := func(u, v int) bool {
		if u == v {
			return false
		}
		_, dup := seen[makePairKey(u, v)]
		return !dup
	}

	for len(pool) > 0 {
		// 1) Pop the tail stub; an odd leftover cannot be paired.
		u := pool[len(pool)-1]
		pool = pool[:len(pool)-1]
		if len(pool) == 0 {
			return nil, false
		}

		// 2) Draw random partners, bounded by maxPartnerRedraws.
		pick := -1
		for r := 0; r < maxPartnerRedraws; r++ {
			k := rng.Intn(len(pool))
			if admissible(u, pool[k]) {
				pick = k
				break
			}
		}
		// 3) Fallback: deterministic linear scan for any admissible partner.
		if pick < 0 {
			for k := range pool {
				if admissible(u, pool[k]) {
					pick = k
					break
				}
			}
		}
		// 4) No admissible partner left → the attempt is lost.
		if pick < 0 {
			return nil, false
		}

		// 5) Swap the partner to the tail, drop it, record the edge.
		v := pool[pick]
		last := len(pool) - 1
		pool[pick], pool[last] = pool[last], pool[pick]
		pool = pool[:last]

		key := makePairKey(u, v)
		seen[key] = struct{}{}
		out = append(out, key)
	}

	return out, true
}
