// Package builder provides internal helper functions used by Constructor
// implementations to build common topologies.
//
// Design principles:
//   - Single Responsibility: each helper does one well-defined job.
//   - Error Context: failures are wrapped with the caller's method tag.
package builder

import (
	"fmt"
	"strconv"

	"github.com/calganaygun/networks-playground/core"
)

// addIndexedVertices inserts idFn(0..n-1) into g and returns the IDs in
// index order.
// Complexity: O(n) time and space.
func addIndexedVertices(g *core.Graph, method string, n int, idFn IDFn) ([]string, error) {
	ids := make([]string, n)
	for i := 0; i < n; i++ {
		ids[i] = idFn(i)
		if err := g.AddVertex(ids[i]); err != nil {
			return nil, fmt.Errorf("%s: AddVertex(%s): %w", method, ids[i], err)
		}
	}

	return ids, nil
}

// addEdge inserts {u,v} and wraps failures with the method tag.
func addEdge(g *core.Graph, method, u, v string) error {
	if err := g.AddEdge(u, v); err != nil {
		return fmt.Errorf("%s: AddEdge(%s-%s): %w", method, u, v, err)
	}
	return nil
}

// addCompleteEdges connects every unordered pair in ids.
// Complexity: O(m²) where m = len(ids).
func addCompleteEdges(g *core.Graph, method string, ids []string) error {
	for i := 0; i < len(ids); i++ {
		for j := i + 1; j < len(ids); j++ {
			if err := addEdge(g, method, ids[i], ids[j]); err != nil {
				return err
			}
		}
	}

	return nil
}

// vertexID returns prefix + decimal index, e.g. vertexID("R",2) → "R2".
func vertexID(prefix string, i int) string {
	return prefix + strconv.Itoa(i)
}

// gridVertexID formats a 2D grid coordinate as "r,c".
func gridVertexID(r, c int) string {
	return strconv.Itoa(r) + "," + strconv.Itoa(c)
}
