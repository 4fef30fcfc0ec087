// SPDX-License-Identifier: MIT
// File: index.go
// Role: Compact, immutable integer snapshot of a Graph for hot loops.
//
// Layout:
//   - Vertex i is the i-th ID of Vertices() (sorted ascending), so "greater
//     index" means "greater ID" and enumeration order is reproducible.
//   - adj[i] holds the neighbor indices of i sorted ascending.
//
// Concurrency:
//   - Built under the graph's read lock; the Index itself is read-only and safe
//     to share between goroutines.

package core

import "sort"

// Index is a read-only snapshot of a Graph addressed by dense int32 indices.
type Index struct {
	ids   []string
	pos   map[string]int32
	adj   [][]int32
	edges int
}

// Index builds the compact snapshot of g.
// Complexity: O(V log V + E log Δ).
func (g *Graph) Index() *Index {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ids := g.sortedVertices()
	pos := make(map[string]int32, len(ids))
	for i, id := range ids {
		pos[id] = int32(i)
	}

	adj := make([][]int32, len(ids))
	for i, id := range ids {
		nbrs := make([]int32, 0, len(g.adjacency[id]))
		for v := range g.adjacency[id] {
			nbrs = append(nbrs, pos[v])
		}
		sort.Slice(nbrs, func(a, b int) bool { return nbrs[a] < nbrs[b] })
		adj[i] = nbrs
	}

	return &Index{ids: ids, pos: pos, adj: adj, edges: g.edgeCount}
}

// Len returns the number of vertices.
func (x *Index) Len() int { return len(x.ids) }

// EdgeCount returns the number of edges.
func (x *Index) EdgeCount() int { return x.edges }

// ID returns the vertex ID at index i.
func (x *Index) ID(i int32) string { return x.ids[i] }

// IDs returns the vertex IDs in index order. The slice must not be modified.
func (x *Index) IDs() []string { return x.ids }

// Lookup returns the index of id.
func (x *Index) Lookup(id string) (int32, bool) {
	i, ok := x.pos[id]
	return i, ok
}

// Neighbors returns the sorted neighbor indices of i. The slice must not be modified.
func (x *Index) Neighbors(i int32) []int32 { return x.adj[i] }

// Degree returns the degree of vertex i.
func (x *Index) Degree(i int32) int { return len(x.adj[i]) }

// HasEdge reports whether {i,j} is an edge, by binary search over the
// shorter adjacency list.
// Complexity: O(log min(deg(i), deg(j))).
func (x *Index) HasEdge(i, j int32) bool {
	a, b := x.adj[i], j
	if len(x.adj[j]) < len(a) {
		a, b = x.adj[j], i
	}
	k := sort.Search(len(a), func(n int) bool { return a[n] >= b })

	return k < len(a) && a[k] == b
}
