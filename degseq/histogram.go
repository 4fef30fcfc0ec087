// SPDX-License-Identifier: MIT
// File: histogram.go
// Role: degree → multiplicity view backed by an ordered red-black tree.

package degseq

import (
	"github.com/emirpasic/gods/trees/redblacktree"
)

// Bucket is one histogram entry.
type Bucket struct {
	Degree int
	Count  int
}

// Histogram counts how many vertices have each degree. Iteration is by
// ascending degree.
type Histogram struct {
	tree *redblacktree.Tree
}

// NewHistogram builds the histogram of s.
// Complexity: O(n log Δ).
func NewHistogram(s Sequence) *Histogram {
	t := redblacktree.NewWithIntComparator()
	for _, d := range s {
		if c, ok := t.Get(d); ok {
			t.Put(d, c.(int)+1)
			continue
		}
		t.Put(d, 1)
	}

	return &Histogram{tree: t}
}

// Count returns the number of vertices with degree d.
func (h *Histogram) Count(d int) int {
	if c, ok := h.tree.Get(d); ok {
		return c.(int)
	}
	return 0
}

// Distinct returns the number of distinct degrees.
func (h *Histogram) Distinct() int { return h.tree.Size() }

// Buckets returns all entries by ascending degree.
func (h *Histogram) Buckets() []Bucket {
	out := make([]Bucket, 0, h.tree.Size())
	it := h.tree.Iterator()
	for it.Next() {
		out = append(out, Bucket{Degree: it.Key().(int), Count: it.Value().(int)})
	}
	return out
}

// Diff returns the buckets where h and other disagree, reporting h's count
// minus other's, by ascending degree. An empty result means the two describe
// the same multiset.
// Complexity: O(Dh + Do), a merge walk over both ordered bucket lists.
func (h *Histogram) Diff(other *Histogram) []Bucket {
	var out []Bucket
	a, b := h.Buckets(), other.Buckets()
	i, j := 0, 0
	for i < len(a) || j < len(b) {
		switch {
		case j == len(b) || (i < len(a) && a[i].Degree < b[j].Degree):
			out = append(out, a[i])
			i++
		case i == len(a) || b[j].Degree < a[i].Degree:
			out = append(out, Bucket{Degree: b[j].Degree, Count: -b[j].Count})
			j++
		default:
			if delta := a[i].Count - b[j].Count; delta != 0 {
				out = append(out, Bucket{Degree: a[i].Degree, Count: delta})
			}
			i++
			j++
		}
	}
	return out
}
