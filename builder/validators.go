// Package builder provides validation helpers to enforce parameter contracts
// in Constructor factories. Every helper returns a sentinel wrapped with the
// constructor's method tag, or nil.
package builder

import "fmt"

// validateMin ensures got ≥ min for the parameter called name.
// Complexity: O(1).
func validateMin(method, name string, got, min int) error {
	if got < min {
		return fmt.Errorf("%s: %s=%d < min=%d: %w", method, name, got, min, ErrTooFewVertices)
	}
	return nil
}

// validateProbability enforces p ∈ [MinProbability, MaxProbability].
// Complexity: O(1).
func validateProbability(method string, p float64) error {
	if p < MinProbability || p > MaxProbability {
		return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
			method, p, MinProbability, MaxProbability, ErrInvalidProbability)
	}
	return nil
}

// validateDegrees checks that degrees aligns with ids, holds no negative entry
// and has an even sum. It returns the stub count Σd.
// Complexity: O(n).
func validateDegrees(method string, ids []string, degrees []int) (int, error) {
	// 1) Shape: one degree per ID.
	if len(ids) != len(degrees) {
		return 0, fmt.Errorf("%s: %d ids but %d degrees: %w",
			method, len(ids), len(degrees), ErrInvalidDegrees)
	}
	// 2) Domain: every d ≥ 0; accumulate Σd.
	total := 0
	for i, d := range degrees {
		if d < 0 {
			return 0, fmt.Errorf("%s: degree(%s)=%d < 0: %w", method, ids[i], d, ErrInvalidDegrees)
		}
		total += d
	}
	// 3) Parity: each edge consumes two stubs.
	if total%2 != 0 {
		return 0, fmt.Errorf("%s: degree sum %d is odd: %w", method, total, ErrInvalidDegrees)
	}
	return total, nil
}
