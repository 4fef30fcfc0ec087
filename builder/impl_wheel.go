// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_wheel.go - implementation of Wheel(n) constructor.
//
// Contract:
//   • n ≥ 4 (outer cycle C_{n-1} needs at least 3 vertices).
//   • Builds Cycle(n-1) with the same cfg, then hub "Center" with n-1 spokes.
//
// Every rim triple (i, i+1, Center) is a triangle and every pair of
// consecutive triangles forms a diamond, which makes wheels a handy census
// fixture.

package builder

import (
	"fmt"

	"github.com/calganaygun/networks-playground/core"
)

const (
	methodWheel   = "Wheel"
	minWheelNodes = 4
)

// Wheel returns a Constructor that builds a wheel Wₙ = Cₙ₋₁ + "Center".
func Wheel(n int) Constructor {
	// The closure captures n; BuildGraph supplies (g, cfg).
	return func(g *core.Graph, cfg builderConfig) error {
		// 1) Parameter validation: rim C_{n-1} needs n-1 ≥ 3.
		if err := validateMin(methodWheel, "n", n, minWheelNodes); err != nil {
			return err
		}
		// 2) Rim: reuse Cycle so IDs and edge order match C_{n-1}.
		if err := Cycle(n-1)(g, cfg); err != nil {
			return fmt.Errorf("%s: base cycle C_%d: %w", methodWheel, n-1, err)
		}
		// 3) Spokes: hub "Center" joined to every rim vertex (hub added on first edge).
		for i := 0; i < n-1; i++ {
			if err := addEdge(g, methodWheel, centerVertexID, cfg.idFn(i)); err != nil {
				return err
			}
		}

		return nil
	}
}
