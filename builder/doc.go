// Package builder provides deterministic graph constructors in the
// functional-options style: small fixture topologies used by the motif tests
// and the configuration-model generator behind the degree-preserving null
// model.
//
// Components:
//
//   - Orchestration:
//     – BuildGraph(bopts, cons...) creates a graph and runs constructors in order.
//     – Apply(g, bopts, cons...) runs constructors against an existing graph.
//   - Fixed topologies: Path, Cycle, Star, Wheel, Complete, CompleteBipartite, Grid.
//   - Stochastic topologies: RandomSparse (G(n,p)), RandomRegular, Configuration.
//   - Options:
//     – WithSeed / WithRand:      RNG for stochastic constructors.
//     – WithIDScheme and helpers: DefaultIDFn, SymbolIDFn, ExcelColumnIDFn,
//       PaddedIDFn, SymbolNumberIDFn.
//     – WithPairing:              PairingSequential (default) or PairingStrict.
//     – WithMaxAttempts:          reshuffle budget for stub matching (default 10).
//     – WithStats:                attempt accounting for the caller.
//
// Stub matching:
//
// Configuration(ids, degrees) lays out deg(v) stubs per vertex, shuffles them
// with the configured RNG and pairs them. An attempt that cannot avoid a
// self-loop or a duplicate edge is discarded and the list reshuffled. After
// the budget is spent the constructor returns ErrConstructFailed and g holds
// the vertices but no new edges.
//
// Guarantees:
//
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Constructors never panic; they return sentinels wrapped with a method tag.
//   - Same options, seed and constructor order ⇒ identical graphs.
package builder
