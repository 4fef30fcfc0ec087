package motif_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calganaygun/networks-playground/bfs"
	"github.com/calganaygun/networks-playground/builder"
	"github.com/calganaygun/networks-playground/core"
	"github.com/calganaygun/networks-playground/motif"
)

func graphOf(t *testing.T, edges ...[2]string) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e[0], e[1]))
	}
	return g
}

func build(t *testing.T, opts []builder.BuilderOption, cons ...builder.Constructor) *core.Graph {
	t.Helper()
	g, err := builder.BuildGraph(opts, cons...)
	require.NoError(t, err)
	return g
}

// bruteForce enumerates all k-subsets, keeps the connected induced ones and
// classifies them by canonical form only.
func bruteForce(t *testing.T, g *core.Graph) motif.CountVector {
	t.Helper()
	var counts motif.CountVector
	ids := g.Vertices()
	for _, k := range []int{3, 4} {
		combos(len(ids), k, func(sel []int) {
			keep := make([]string, k)
			for i, s := range sel {
				keep[i] = ids[s]
			}
			if !bfs.IsConnected(core.InducedSubgraph(g, keep)) {
				return
			}
			var edges [][2]int
			for i := 0; i < k; i++ {
				for j := i + 1; j < k; j++ {
					if g.HasEdge(keep[i], keep[j]) {
						edges = append(edges, [2]int{i, j})
					}
				}
			}
			p, err := motif.NewPattern(k, edges)
			require.NoError(t, err)
			cls, err := motif.ClassifyStrict(p)
			require.NoError(t, err)
			counts[cls.Slot]++
		})
	}
	return counts
}

func combos(n, k int, fn func([]int)) {
	sel := make([]int, 0, k)
	var rec func(start int)
	rec = func(start int) {
		if len(sel) == k {
			fn(sel)
			return
		}
		for i := start; i < n; i++ {
			sel = append(sel, i)
			rec(i + 1)
			sel = sel[:len(sel)-1]
		}
	}
	rec(0)
}

func TestCensusFull_Examples(t *testing.T) {
	tests := []struct {
		name string
		g    *core.Graph
		want motif.CountVector
	}{
		{
			name: "Triangle",
			g:    graphOf(t, [2]string{"1", "2"}, [2]string{"2", "3"}, [2]string{"1", "3"}),
			want: motif.CountVector{0, 1, 0, 0, 0, 0, 0, 0},
		},
		{
			// The two open triads {1,2,3} and {2,3,4} are connected induced
			// 3-subgraphs of the path.
			name: "Path1234",
			g:    graphOf(t, [2]string{"1", "2"}, [2]string{"2", "3"}, [2]string{"3", "4"}),
			want: motif.CountVector{2, 0, 0, 1, 0, 0, 0, 0},
		},
		{
			name: "K4",
			g:    build(t, nil, builder.Complete(4)),
			want: motif.CountVector{0, 4, 0, 0, 0, 0, 0, 1},
		},
		{
			name: "Star4",
			g:    build(t, nil, builder.Star(4)),
			want: motif.CountVector{3, 0, 1, 0, 0, 0, 0, 0},
		},
		{
			name: "Cycle4",
			g:    build(t, nil, builder.Cycle(4)),
			want: motif.CountVector{4, 0, 0, 0, 1, 0, 0, 0},
		},
		{
			// K_{2,2} is the 4-cycle.
			name: "Bipartite2x2",
			g:    build(t, nil, builder.CompleteBipartite(2, 2)),
			want: motif.CountVector{4, 0, 0, 0, 1, 0, 0, 0},
		},
		{
			// K_{1,3} is the 4-star.
			name: "Bipartite1x3",
			g:    build(t, nil, builder.CompleteBipartite(1, 3)),
			want: motif.CountVector{3, 0, 1, 0, 0, 0, 0, 0},
		},
		{
			name: "Paw",
			g:    graphOf(t, [2]string{"a", "b"}, [2]string{"b", "c"}, [2]string{"a", "c"}, [2]string{"a", "d"}),
			want: motif.CountVector{2, 1, 0, 0, 0, 1, 0, 0},
		},
		{
			name: "Wheel5",
			g:    build(t, nil, builder.Wheel(5)),
			want: motif.CountVector{6, 4, 0, 0, 1, 0, 4, 0},
		},
		{
			name: "Empty",
			g:    core.NewGraph(),
			want: motif.CountVector{},
		},
		{
			name: "SingleEdge",
			g:    graphOf(t, [2]string{"x", "y"}),
			want: motif.CountVector{},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			got, err := motif.CensusFull(tc.g.Index())
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, bruteForce(t, tc.g), got)
		})
	}
}

func TestCensus_SizesTouchDisjointSlots(t *testing.T) {
	g := build(t, []builder.BuilderOption{builder.WithSeed(4)}, builder.RandomSparse(9, 0.5))
	idx := g.Index()

	three, err := motif.Census(idx, 3)
	require.NoError(t, err)
	four, err := motif.Census(idx, 4)
	require.NoError(t, err)

	for _, s := range motif.Default().SlotsOfSize(4) {
		assert.Zero(t, three[s])
	}
	for _, s := range motif.Default().SlotsOfSize(3) {
		assert.Zero(t, four[s])
	}
	full, err := motif.CensusFull(idx)
	require.NoError(t, err)
	assert.Equal(t, three.Add(four), full)
}

func TestCensus_MatchesBruteForceOnRandomGraphs(t *testing.T) {
	for seed := int64(0); seed < 30; seed++ {
		n := 5 + int(seed%6)
		p := 0.25 + 0.05*float64(seed%8)
		g := build(t, []builder.BuilderOption{builder.WithSeed(seed)}, builder.RandomSparse(n, p))

		got, err := motif.CensusFull(g.Index())
		require.NoError(t, err)
		assert.Equal(t, bruteForce(t, g), got, "seed=%d n=%d p=%.2f", seed, n, p)
	}
}

func TestCensus_WorkersDoNotChangeResult(t *testing.T) {
	g := build(t, []builder.BuilderOption{builder.WithSeed(21), builder.WithPaddedIDs(2)}, builder.RandomSparse(40, 0.15))
	idx := g.Index()

	serial, err := motif.CensusFull(idx)
	require.NoError(t, err)
	for _, w := range []int{2, 3, 8, 0} {
		parallel, err := motif.CensusFull(idx, motif.WithWorkers(w))
		require.NoError(t, err)
		assert.Equal(t, serial, parallel, "workers=%d", w)
	}
}

func TestCensus_DisconnectedGraph(t *testing.T) {
	// Two disjoint triangles plus an isolated vertex: only the triangles count.
	g := graphOf(t,
		[2]string{"a", "b"}, [2]string{"b", "c"}, [2]string{"a", "c"},
		[2]string{"x", "y"}, [2]string{"y", "z"}, [2]string{"x", "z"},
	)
	require.NoError(t, g.AddVertex("lonely"))
	got, err := motif.CensusFull(g.Index())
	require.NoError(t, err)
	assert.Equal(t, motif.CountVector{0, 2, 0, 0, 0, 0, 0, 0}, got)
}

func TestCensus_Errors(t *testing.T) {
	g := build(t, nil, builder.Complete(5))
	_, err := motif.Census(g.Index(), 5)
	assert.ErrorIs(t, err, motif.ErrUnsupportedSize)
	_, err = motif.Census(nil, 3)
	assert.ErrorIs(t, err, motif.ErrNilIndex)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = motif.Census(g.Index(), 3, motif.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
	_, err = motif.Census(g.Index(), 4, motif.WithContext(ctx), motif.WithWorkers(2))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCountVector(t *testing.T) {
	a := motif.CountVector{1, 2, 0, 0, 0, 0, 0, 3}
	b := motif.CountVector{1, 0, 0, 0, 0, 0, 0, 1}
	assert.Equal(t, motif.CountVector{2, 2, 0, 0, 0, 0, 0, 4}, a.Add(b))
	assert.Equal(t, uint64(6), a.Total())
	assert.Equal(t, []float64{1, 2, 0, 0, 0, 0, 0, 3}, a.Floats())
	assert.Equal(t, "[1 2 0 0 0 0 0 3]", a.String())
}
