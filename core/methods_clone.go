// File: methods_clone.go
// Role: Cloning graph instances.
// Concurrency:
//   - Read lock on the source; the result is a fresh, independently owned graph.

package core

// CloneEmpty returns a new Graph with the same vertices and no edges.
// Complexity: O(V).
func (g *Graph) CloneEmpty() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := NewGraph()
	for id := range g.adjacency {
		clone.adjacency[id] = make(map[string]struct{})
	}

	return clone
}

// Clone returns a deep copy of the Graph.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := NewGraph()
	for id, nbrs := range g.adjacency {
		cp := make(map[string]struct{}, len(nbrs))
		for v := range nbrs {
			cp[v] = struct{}{}
		}
		clone.adjacency[id] = cp
	}
	clone.edgeCount = g.edgeCount

	return clone
}
