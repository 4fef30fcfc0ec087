// SPDX-License-Identifier: MIT
// File: types.go
// Role: Graph and Edge types, sentinel errors and the NewGraph constructor.
//
// Model:
//   - Undirected simple graph: no self-loops, no parallel edges.
//   - Vertices are non-empty string IDs; edges are unordered pairs stored
//     normalized so that Edge.From < Edge.To.
//
// Concurrency:
//   - A single sync.RWMutex guards the vertex catalog and adjacency.
//   - Readers (HasEdge, Degree, Vertices, Index, ...) take the read lock.

package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// Edge is an unordered vertex pair. From is always the lexicographically
// smaller endpoint; use NewEdge to build one from arbitrary endpoints.
type Edge struct {
	From string
	To   string
}

// NewEdge returns the normalized Edge for endpoints u and v.
func NewEdge(u, v string) Edge {
	if v < u {
		u, v = v, u
	}
	return Edge{From: u, To: v}
}

// Graph is an undirected simple graph.
//
// adjacency[u][v] exists iff the edge {u,v} exists; every vertex owns a
// (possibly empty) bucket so isolated vertices are represented.
type Graph struct {
	mu sync.RWMutex

	adjacency map[string]map[string]struct{}
	edgeCount int
}

// NewGraph creates an empty Graph.
// Complexity: O(1).
func NewGraph() *Graph {
	return &Graph{
		adjacency: make(map[string]map[string]struct{}),
	}
}
