// SPDX-License-Identifier: MIT
// File: pattern.go
// Role: Pattern, the labeled adjacency of a 3- or 4-vertex subgraph packed
// into a bitmask, and the invariants computed from it.
//
// Bit layout (pair → bit):
//
//	(0,1)=0 (0,2)=1 (0,3)=2 (1,2)=3 (1,3)=4 (2,3)=5
//
// A 3-vertex pattern only uses bits 0, 1 and 3.

package motif

import (
	"fmt"
	"math/bits"
	"sort"
)

const (
	// MinSize and MaxSize bound the supported subgraph sizes.
	MinSize = 3
	MaxSize = 4
)

// pairBit[i][j] is the bit index of the unordered pair {i,j}; -1 on the diagonal.
var pairBit = [MaxSize][MaxSize]int8{
	{-1, 0, 1, 2},
	{0, -1, 3, 4},
	{1, 3, -1, 5},
	{2, 4, 5, -1},
}

// Pattern is a labeled simple graph on vertices 0..N-1 with N in {3,4}.
type Pattern struct {
	N   int
	Adj uint8
}

// NewPattern builds a Pattern on n vertices from an edge list.
//
// Errors:
//   - ErrUnsupportedSize if n is not 3 or 4.
//   - ErrInvalidPattern for out-of-range endpoints, loops or repeated edges.
func NewPattern(n int, edges [][2]int) (Pattern, error) {
	if n < MinSize || n > MaxSize {
		return Pattern{}, fmt.Errorf("motif: pattern size %d: %w", n, ErrUnsupportedSize)
	}
	p := Pattern{N: n}
	for _, e := range edges {
		u, v := e[0], e[1]
		if u < 0 || v < 0 || u >= n || v >= n || u == v {
			return Pattern{}, fmt.Errorf("motif: edge %v on %d vertices: %w", e, n, ErrInvalidPattern)
		}
		if p.HasEdge(u, v) {
			return Pattern{}, fmt.Errorf("motif: repeated edge %v: %w", e, ErrInvalidPattern)
		}
		p.Adj |= 1 << uint(pairBit[u][v])
	}

	return p, nil
}

// mustPattern is NewPattern for package-level tables known to be valid.
func mustPattern(n int, edges [][2]int) Pattern {
	p, err := NewPattern(n, edges)
	if err != nil {
		panic(err)
	}
	return p
}

// HasEdge reports whether {i,j} is an edge of p.
func (p Pattern) HasEdge(i, j int) bool {
	if i == j {
		return false
	}
	return p.Adj&(1<<uint(pairBit[i][j])) != 0
}

// EdgeCount returns the number of edges.
func (p Pattern) EdgeCount() int { return bits.OnesCount8(p.Adj) }

// Degree returns the degree of vertex i.
func (p Pattern) Degree(i int) int {
	d := 0
	for j := 0; j < p.N; j++ {
		if p.HasEdge(i, j) {
			d++
		}
	}
	return d
}

// Degrees returns the vertex degrees sorted non-increasing.
func (p Pattern) Degrees() []int {
	out := make([]int, p.N)
	for i := range out {
		out[i] = p.Degree(i)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(out)))
	return out
}

// Edges returns the edge list with i<j, ordered by bit index.
func (p Pattern) Edges() [][2]int {
	var out [][2]int
	for i := 0; i < p.N; i++ {
		for j := i + 1; j < p.N; j++ {
			if p.HasEdge(i, j) {
				out = append(out, [2]int{i, j})
			}
		}
	}
	return out
}

// Connected reports whether p is connected.
func (p Pattern) Connected() bool {
	seen := 1
	frontier := []int{0}
	visited := [MaxSize]bool{true}
	for len(frontier) > 0 {
		u := frontier[len(frontier)-1]
		frontier = frontier[:len(frontier)-1]
		for v := 0; v < p.N; v++ {
			if !visited[v] && p.HasEdge(u, v) {
				visited[v] = true
				seen++
				frontier = append(frontier, v)
			}
		}
	}
	return seen == p.N
}

// Permute relabels p so that vertex i becomes perm[i].
func (p Pattern) Permute(perm []int) Pattern {
	out := Pattern{N: p.N}
	for i := 0; i < p.N; i++ {
		for j := i + 1; j < p.N; j++ {
			if p.HasEdge(i, j) {
				out.Adj |= 1 << uint(pairBit[perm[i]][perm[j]])
			}
		}
	}
	return out
}

// Canonical returns the relabeling of p with the smallest mask. Two patterns
// of the same size are isomorphic iff their canonical forms are equal.
// Complexity: O(N!·N²), at most 24 permutations.
func (p Pattern) Canonical() Pattern {
	best := p
	for _, perm := range permutations[p.N] {
		if q := p.Permute(perm); q.Adj < best.Adj {
			best = q
		}
	}
	return best
}

// Isomorphic reports whether p and q are the same topology.
func (p Pattern) Isomorphic(q Pattern) bool {
	return p.N == q.N && p.Canonical().Adj == q.Canonical().Adj
}

// String renders the pattern as "N:edges", e.g. "3:[[0 1] [1 2]]".
func (p Pattern) String() string {
	return fmt.Sprintf("%d:%v", p.N, p.Edges())
}

// invariant is the cheap stage-1 key: size, edge count and sorted degrees.
type invariant struct {
	size    int
	edges   int
	degrees [MaxSize]int
}

func (p Pattern) invariant() invariant {
	inv := invariant{size: p.N, edges: p.EdgeCount()}
	copy(inv.degrees[:], p.Degrees())
	return inv
}

// permutations[n] lists all orderings of 0..n-1 for n in {3,4}.
var permutations = map[int][][]int{
	MinSize: permute(MinSize),
	MaxSize: permute(MaxSize),
}

func permute(n int) [][]int {
	var out [][]int
	cur := make([]int, 0, n)
	used := make([]bool, n)
	var rec func()
	rec = func() {
		if len(cur) == n {
			out = append(out, append([]int(nil), cur...))
			return
		}
		for i := 0; i < n; i++ {
			if used[i] {
				continue
			}
			used[i] = true
			cur = append(cur, i)
			rec()
			cur = cur[:len(cur)-1]
			used[i] = false
		}
	}
	rec()
	return out
}
