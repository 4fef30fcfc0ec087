// Package core_test verifies thread-safety of core.Graph under concurrent operations.
package core_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/calganaygun/networks-playground/core"
)

// TestConcurrentAddEdge ensures that concurrent AddEdge calls are safe and
// all neighbors appear exactly once.
func TestConcurrentAddEdge(t *testing.T) {
	g := core.NewGraph()
	const num = 200
	var wg sync.WaitGroup
	errs := make([]error, num)
	wg.Add(num)

	for i := 0; i < num; i++ {
		go func(id int) {
			defer wg.Done()
			errs[id] = g.AddEdge("X", fmt.Sprintf("V%d", id))
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		require.NoError(t, err)
	}
	nbs, err := g.NeighborIDs("X")
	require.NoError(t, err)
	require.Len(t, nbs, num, "expected %d unique neighbors", num)
	require.Equal(t, num, g.EdgeCount())
}

// TestConcurrentAddRemoveEdge mixes AddEdge and RemoveEdge calls to verify
// no races or panics occur under concurrent modification.
func TestConcurrentAddRemoveEdge(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex("Base"))

	const rounds = 100
	var wg sync.WaitGroup
	wg.Add(2 * rounds)

	for i := 0; i < rounds; i++ {
		go func(id int) {
			defer wg.Done()
			_ = g.AddEdge("Base", fmt.Sprintf("V%d", id))
		}(i)

		go func() {
			defer wg.Done()
			for _, e := range g.Edges() {
				_ = g.RemoveEdge(e.From, e.To)
			}
		}()
	}
	wg.Wait()

	// Edge counter and adjacency must agree whatever the interleaving was.
	require.Len(t, g.Edges(), g.EdgeCount())
}

// TestConcurrentIndexAndClone validates concurrent snapshots do not race.
func TestConcurrentIndexAndClone(t *testing.T) {
	g := core.NewGraph()
	for i := 0; i < 50; i++ {
		require.NoError(t, g.AddEdge("A", fmt.Sprintf("N%02d", i)))
	}

	const readers = 50
	const cloners = 20
	var wg sync.WaitGroup
	degrees := make([]int, readers)
	wg.Add(readers + cloners)

	for i := 0; i < readers; i++ {
		go func(r int) {
			defer wg.Done()
			idx := g.Index()
			a, _ := idx.Lookup("A")
			degrees[r] = idx.Degree(a)
		}(i)
	}
	for i := 0; i < cloners; i++ {
		go func() {
			defer wg.Done()
			_ = g.Clone()
		}()
	}
	wg.Wait()

	for _, d := range degrees {
		require.Equal(t, 50, d)
	}
}
