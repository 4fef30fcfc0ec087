// Package nullmodel generates the degree-preserving random graphs that form
// the null-model ensemble of a motif analysis.
//
// Flow of one Generate call:
//
//	source graph ─► Erdős–Gallai pre-check ─► cache lookup (Key{Signature, Index, Seed})
//	             ─► builder.Configuration with WithSeed(seed) ─► degree-multiset check
//	             ─► cache store ─► Result
//
// Results are explicit: a Result carries either the realized Graph or a
// *Failure naming why no graph is available (FailureUnrealizable when the
// attempt budget ran out, FailureMismatch when verification caught a graph
// with a different degree multiset). The same *Failure is returned as the
// error, so errors.Is(err, ErrDegreeSequenceUnrealizable) works.
//
// Caching is a collaborator behind the Cache interface; Load/Store errors are
// logged and degrade to a miss. Keys use a structural Signature of the
// source (sha256 over its graph6 topology and sorted vertex IDs), never bare
// node and edge counts.
package nullmodel
