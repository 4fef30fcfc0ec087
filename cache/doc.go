// Package cache provides nullmodel.Cache backends for generated random
// graphs.
//
//	Memory  in-process map, cleared with the process
//	Dir     one edge-list file per member: <root>/<signature>/random_graph_<index>_<seed>.edges
//	Badger  embedded LSM store; value = varint header + sorted IDs + graph6 topology
//
// All backends are safe for concurrent use. Open selects one by name.
package cache
