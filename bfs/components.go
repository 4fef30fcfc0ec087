package bfs

import (
	"context"

	"github.com/calganaygun/networks-playground/core"
)

// Components returns the connected components of g. Each component lists its
// vertices in BFS order from its smallest ID; components are ordered by that
// smallest ID. Isolated vertices form singleton components.
// Complexity: O(V log V + E log Δ).
func Components(ctx context.Context, g *core.Graph) ([][]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	seen := make(map[string]bool, g.VertexCount())
	var out [][]string
	for _, id := range g.Vertices() {
		if seen[id] {
			continue
		}
		res, err := BFS(g, id, WithContext(ctx))
		if err != nil {
			return nil, err
		}
		for _, v := range res.Order {
			seen[v] = true
		}
		out = append(out, res.Order)
	}

	return out, nil
}

// IsConnected reports whether g has exactly one component. The empty graph
// is not connected.
func IsConnected(g *core.Graph) bool {
	ids := g.Vertices()
	if len(ids) == 0 {
		return false
	}
	res, err := BFS(g, ids[0])
	if err != nil {
		return false
	}
	return len(res.Order) == len(ids)
}
