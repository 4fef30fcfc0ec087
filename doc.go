// Package playground is a toolkit for network-motif significance analysis:
// which connected 3- and 4-node patterns of an undirected graph occur more
// or less often than in degree-preserving random graphs.
//
// 🚀 Pipeline
//
//	edgelist ─► core.Graph ─► motif.CensusFull ──────────────┐
//	                    └─► nullmodel.Generator × N ─► census ┴─► significance.Evaluate ─► report
//
// Packages:
//
//	core/          thread-safe undirected simple Graph and its compact Index
//	degseq/        degree sequences, histograms, Erdős–Gallai test
//	builder/       deterministic constructors incl. the configuration model
//	bfs/           breadth-first traversal and connected components
//	motif/         8-class catalogue, two-stage classifier, ESU census
//	nullmodel/     seeded degree-preserving generator, verification, cache keys
//	significance/  per-motif mean, population std and z-score
//	cache/         memory, edge-list directory and badger graph caches
//	edgelist/      edge-list and MatrixMarket reader, writer
//	report/        counts table, chart series, CSV output
//	metrics/       Prometheus collectors
//	config/        YAML run configuration
//	analysis/      the parallel ensemble run that ties it together
//	cmd/motifs     command-line front end
//
// Quick ASCII example:
//
//	    A───B
//	    │ ╲ │
//	    C───D
//
//	is a diamond: 4 vertices, 5 edges, catalogue slot 6. Its census holds
//	2 triangles, 2 open triads and 1 diamond.
//
//	go install github.com/calganaygun/networks-playground/cmd/motifs@latest
package playground
