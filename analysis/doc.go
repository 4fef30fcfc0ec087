// Package analysis runs a complete motif significance analysis of one graph:
//
//	observed census ─► N ensemble members in parallel (generate ─► census)
//	                ─► drop failed members ─► significance.Evaluate ─► Report
//
// Member i always uses seed SeedBase+i and lands in position i of the
// ensemble, so results do not depend on scheduling or worker count.
//
// Failure policy: a member whose randomizer fails (unrealizable sequence or
// degree mismatch) is logged, counted and excluded. The run fails with
// ErrEnsembleTooSmall when fewer than MinViable members survive. A census
// error (an unclassifiable subgraph) or a cancelled context aborts the run.
package analysis
