// Package bfs provides breadth-first search over a core.Graph, returning
// unweighted shortest-path distances, parent links and visit order, and the
// connected-component helpers used by the motif pipeline (graph summaries
// and connectivity checks on induced subgraphs).
//
// Determinism
//
//	core.Graph.NeighborIDs returns neighbors sorted by ID and BFS enqueues
//	them in that order, so the visit sequence is fully reproducible.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E) plus neighbor sorting
//   - Memory: O(V)
//
// Usage
//
//	res, err := bfs.BFS(g, "start", bfs.WithMaxDepth(3))
//	comps, err := bfs.Components(ctx, g)
//	ok := bfs.IsConnected(core.InducedSubgraph(g, subset))
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if the start vertex does not exist.
//   - ErrOptionViolation      if invalid Option (e.g. negative MaxDepth).
//   - ErrNeighbors            if neighbor lookup fails.
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
