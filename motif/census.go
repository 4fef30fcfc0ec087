// SPDX-License-Identifier: MIT
// File: census.go
// Role: Exhaustive census of connected induced subgraphs of size 3 or 4 via
// ESU enumeration over a core.Index.
//
// ESU rule, for each root v:
//   - Vext starts as the neighbors of v with index > v.
//   - Taking w from Vext, the child extension set is the rest of Vext plus the
//     exclusive neighbors of w: not in Vsub, not adjacent to any vertex of
//     Vsub, and > v.
//
// Each connected vertex subset is emitted exactly once; disconnected subsets
// are never reached. Cost is proportional to the number of connected
// subgraphs, not C(n, k).
//
// Concurrency:
//   - WithWorkers(n) stripes roots across n goroutines. Every worker owns its
//     counts and its mask→slot memo; vectors are summed at the end, so the
//     result does not depend on n.

package motif

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/calganaygun/networks-playground/core"
)

// Option configures a census.
type Option func(*censusConfig)

type censusConfig struct {
	ctx       context.Context
	workers   int
	catalogue *Catalogue
}

// WithWorkers sets the number of goroutines enumerating roots. n ≤ 0 selects
// runtime.NumCPU().
func WithWorkers(n int) Option {
	return func(c *censusConfig) {
		if n <= 0 {
			n = runtime.NumCPU()
		}
		c.workers = n
	}
}

// WithCatalogue classifies against c instead of the default catalogue.
// Panics on nil.
func WithCatalogue(c *Catalogue) Option {
	if c == nil {
		panic("motif: WithCatalogue(nil)")
	}
	return func(cfg *censusConfig) {
		cfg.catalogue = c
	}
}

// WithContext makes the census stop early when ctx is done.
func WithContext(ctx context.Context) Option {
	return func(c *censusConfig) {
		if ctx != nil {
			c.ctx = ctx
		}
	}
}

// Census counts every connected induced subgraph with exactly size vertices
// and returns the contribution to the catalogue slots of that size. Graphs
// with fewer than size vertices contribute nothing.
//
// Errors:
//   - ErrNilIndex, ErrUnsupportedSize.
//   - ErrUnknownMotif (wrapped) if a subgraph escapes the catalogue.
//   - The context error when cancelled through WithContext.
func Census(idx *core.Index, size int, opts ...Option) (CountVector, error) {
	cfg := censusConfig{ctx: context.Background(), workers: 1, catalogue: defaultCatalogue}
	for _, opt := range opts {
		opt(&cfg)
	}

	var counts CountVector
	if idx == nil {
		return counts, ErrNilIndex
	}
	if size < MinSize || size > MaxSize {
		return counts, fmt.Errorf("motif: census size %d: %w", size, ErrUnsupportedSize)
	}
	n := idx.Len()
	if n < size {
		return counts, nil
	}

	workers := cfg.workers
	if workers > n {
		workers = n
	}
	if workers <= 1 {
		e := newEnumerator(idx, size, cfg.catalogue)
		for v := 0; v < n; v++ {
			if err := cfg.ctx.Err(); err != nil {
				return CountVector{}, err
			}
			if err := e.root(int32(v)); err != nil {
				return CountVector{}, err
			}
		}
		return e.counts, nil
	}

	partial := make([]CountVector, workers)
	grp, ctx := errgroup.WithContext(cfg.ctx)
	for w := 0; w < workers; w++ {
		w := w
		grp.Go(func() error {
			e := newEnumerator(idx, size, cfg.catalogue)
			for v := w; v < n; v += workers {
				if err := ctx.Err(); err != nil {
					return err
				}
				if err := e.root(int32(v)); err != nil {
					return err
				}
			}
			partial[w] = e.counts
			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		return CountVector{}, err
	}
	for _, p := range partial {
		counts = counts.Add(p)
	}

	return counts, nil
}

// CensusFull returns Census(idx, 3) + Census(idx, 4), the complete vector.
func CensusFull(idx *core.Index, opts ...Option) (CountVector, error) {
	three, err := Census(idx, 3, opts...)
	if err != nil {
		return CountVector{}, err
	}
	four, err := Census(idx, 4, opts...)
	if err != nil {
		return CountVector{}, err
	}
	return three.Add(four), nil
}

// enumerator holds the per-worker ESU state.
type enumerator struct {
	idx    *core.Index
	size   int
	cat    *Catalogue
	memo   map[uint8]int
	sub    []int32
	counts CountVector
}

func newEnumerator(idx *core.Index, size int, cat *Catalogue) *enumerator {
	return &enumerator{
		idx:  idx,
		size: size,
		cat:  cat,
		memo: make(map[uint8]int, 1<<6),
		sub:  make([]int32, 0, size),
	}
}

func (e *enumerator) root(v int32) error {
	var ext []int32
	for _, u := range e.idx.Neighbors(v) {
		if u > v {
			ext = append(ext, u)
		}
	}
	e.sub = append(e.sub[:0], v)
	return e.extend(ext, v)
}

// extend grows e.sub from the extension set ext. e.sub is restored on return.
func (e *enumerator) extend(ext []int32, v int32) error {
	if len(e.sub) == e.size {
		return e.emit()
	}
	for len(ext) > 0 {
		w := ext[len(ext)-1]
		ext = ext[:len(ext)-1]

		next := make([]int32, len(ext), len(ext)+e.idx.Degree(w))
		copy(next, ext)
		for _, u := range e.idx.Neighbors(w) {
			if u > v && e.exclusive(u) {
				next = append(next, u)
			}
		}

		e.sub = append(e.sub, w)
		err := e.extend(next, v)
		e.sub = e.sub[:len(e.sub)-1]
		if err != nil {
			return err
		}
	}
	return nil
}

// exclusive reports whether u lies outside the closed neighborhood of e.sub.
func (e *enumerator) exclusive(u int32) bool {
	for _, s := range e.sub {
		if s == u || e.idx.HasEdge(s, u) {
			return false
		}
	}
	return true
}

// emit classifies the induced subgraph on e.sub and bumps its slot.
func (e *enumerator) emit() error {
	p := Pattern{N: len(e.sub)}
	for i := 0; i < len(e.sub); i++ {
		for j := i + 1; j < len(e.sub); j++ {
			if e.idx.HasEdge(e.sub[i], e.sub[j]) {
				p.Adj |= 1 << uint(pairBit[i][j])
			}
		}
	}

	slot, ok := e.memo[p.Adj]
	if !ok {
		cls, err := e.cat.Classify(p)
		if err != nil {
			return fmt.Errorf("motif: subgraph %v: %w", e.ids(), err)
		}
		slot = cls.Slot
		e.memo[p.Adj] = slot
	}
	e.counts[slot]++
	return nil
}

func (e *enumerator) ids() []string {
	out := make([]string, len(e.sub))
	for i, s := range e.sub {
		out[i] = e.idx.ID(s)
	}
	return out
}
