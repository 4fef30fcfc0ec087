// Package significance compares the motif counts of an observed graph with
// the counts of a null-model ensemble.
//
// For each catalogue slot:
//
//	mean = Σ ensemble[k][slot] / N
//	std  = sqrt(Σ (ensemble[k][slot] - mean)² / N)      (population, N not N-1)
//	z    = (real[slot] - mean) / std
//
// A slot whose ensemble values are (numerically) constant has no defined
// z-score. It is reported with Valid=false and Z=0, never as NaN or ±Inf, and
// is not an error.
package significance
