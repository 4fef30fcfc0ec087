// Package edgelist reads and writes undirected graphs as plain edge lists.
//
// Accepted input:
//
//	# comment lines start with '#' or '%'
//	u v            one edge per line, whitespace separated
//	u v 1.5 {}     extra columns (weights, attribute dicts) are ignored
//	%%MatrixMarket ...   banner: the first data line is the "rows cols nnz" size line
//
// Self-loops and repeated edges are dropped and counted in Stats; vertex IDs
// are kept as written. A data line with a single field is an error carrying
// its line number.
//
// Output is "u v" per line in core.Graph.Edges order, which Read accepts
// back unchanged. Isolated vertices are not representable.
package edgelist
