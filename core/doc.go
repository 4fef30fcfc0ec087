// Package core provides the thread-safe, in-memory undirected simple graph
// used throughout the motif pipeline.
//
// The Graph G = (V,E):
//
//   - Vertices are non-empty string IDs (as read from edge lists).
//   - Edges are unordered pairs; self-loops and parallel edges are rejected
//     with ErrLoopNotAllowed and ErrMultiEdgeNotAllowed.
//   - Isolated vertices are first-class: they keep their (zero) degree, which
//     matters for degree-preserving randomization.
//   - Deterministic iteration: Vertices(), NeighborIDs() and Edges() are sorted.
//
// Core Methods:
//
//	// Vertex lifecycle & queries
//	AddVertex(id string) error              // O(1)
//	HasVertex(id string) bool               // O(1)
//	Vertices() []string                     // O(V·log V)
//	Degree(id string) (int, error)          // O(1)
//	Degrees() ([]string, []int)             // O(V·log V), aligned snapshot
//	NeighborIDs(id string) ([]string, error)// O(d·log d)
//
//	// Edge lifecycle & queries
//	AddEdge(from, to string) error          // O(1)
//	RemoveEdge(from, to string) error       // O(1)
//	HasEdge(from, to string) bool           // O(1)
//	Edges() []Edge                          // O(E·log E)
//
//	// Cloning & views
//	CloneEmpty() *Graph                     // O(V)
//	Clone() *Graph                          // O(V+E)
//	InducedSubgraph(g, keep) *Graph         // O(|keep|+Σdeg)
//
//	// Compact snapshot
//	Index() *Index                          // dense int32 adjacency for hot loops
//
// Errors:
//
//	ErrEmptyVertexID       – zero-length vertex ID
//	ErrVertexNotFound      – missing vertex
//	ErrEdgeNotFound        – missing edge
//	ErrLoopNotAllowed      – self-loop
//	ErrMultiEdgeNotAllowed – parallel edge
package core
