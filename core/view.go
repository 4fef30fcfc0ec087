// File: view.go
// Role: Non-mutating graph views.
// AI-HINT (file):
//   - Views do NOT mutate the input Graph.
//   - InducedSubgraph keeps only vertices in 'keep' and edges with both endpoints kept.

package core

// InducedSubgraph returns a new Graph induced by the vertex IDs in keep: the
// result contains the kept vertices that exist in g and every edge of g whose
// endpoints are both kept. Unknown IDs are ignored.
//
// Complexity: O(|keep| + Σdeg(keep)). Concurrency: read lock only on source.
func InducedSubgraph(g *Graph, keep []string) *Graph {
	set := make(map[string]struct{}, len(keep))
	for _, id := range keep {
		set[id] = struct{}{}
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	out := NewGraph()
	for id := range set {
		if _, ok := g.adjacency[id]; ok {
			out.adjacency[id] = make(map[string]struct{})
		}
	}
	for u := range out.adjacency {
		for v := range g.adjacency[u] {
			if _, ok := set[v]; !ok {
				continue
			}
			out.adjacency[u][v] = struct{}{}
			if u < v {
				out.edgeCount++
			}
		}
	}

	return out
}
