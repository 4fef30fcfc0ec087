package cache_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calganaygun/networks-playground/builder"
	"github.com/calganaygun/networks-playground/cache"
	"github.com/calganaygun/networks-playground/core"
	"github.com/calganaygun/networks-playground/degseq"
	"github.com/calganaygun/networks-playground/nullmodel"
)

type backend struct {
	name string
	open func(t *testing.T) cache.Store
	// keepsIsolated reports whether vertices without edges survive a round trip.
	keepsIsolated bool
}

func backends() []backend {
	return []backend{
		{"memory", func(t *testing.T) cache.Store { return cache.NewMemory() }, true},
		{"dir", func(t *testing.T) cache.Store {
			d, err := cache.NewDir(t.TempDir())
			require.NoError(t, err)
			return d
		}, false},
		{"badger", func(t *testing.T) cache.Store {
			b, err := cache.OpenBadger("")
			require.NoError(t, err)
			return b
		}, true},
	}
}

func sample(t *testing.T) *core.Graph {
	t.Helper()
	g, err := builder.BuildGraph(
		[]builder.BuilderOption{builder.WithSeed(2), builder.WithPaddedIDs(2)},
		builder.RandomSparse(20, 0.2),
	)
	require.NoError(t, err)
	require.NoError(t, g.AddVertex("iso"))
	return g
}

func TestBackends_RoundTrip(t *testing.T) {
	t.Parallel()
	for _, b := range backends() {
		b := b
		t.Run(b.name, func(t *testing.T) {
			t.Parallel()
			s := b.open(t)
			defer s.Close()

			g := sample(t)
			key := nullmodel.Key{Signature: nullmodel.Signature(g), Index: 3, Seed: 103}

			_, ok, err := s.Load(key)
			require.NoError(t, err)
			assert.False(t, ok)

			require.NoError(t, s.Store(key, g))
			back, ok, err := s.Load(key)
			require.NoError(t, err)
			require.True(t, ok)
			assert.Equal(t, g.Edges(), back.Edges())
			assert.Equal(t, b.keepsIsolated, back.HasVertex("iso"))

			// Other seeds and indices are separate entries.
			_, ok, err = s.Load(nullmodel.Key{Signature: key.Signature, Index: 3, Seed: 104})
			require.NoError(t, err)
			assert.False(t, ok)
			_, ok, err = s.Load(nullmodel.Key{Signature: key.Signature, Index: 4, Seed: 103})
			require.NoError(t, err)
			assert.False(t, ok)
		})
	}
}

func TestBackends_WithGenerator(t *testing.T) {
	t.Parallel()
	for _, b := range backends() {
		b := b
		t.Run(b.name, func(t *testing.T) {
			t.Parallel()
			s := b.open(t)
			defer s.Close()

			src := sample(t)
			gen := nullmodel.NewGenerator(nullmodel.WithCache(s), nullmodel.WithMaxAttempts(50))

			first, err := gen.Generate(src, 0, 10)
			require.NoError(t, err)
			require.NoError(t, first.CacheErr)
			second, err := gen.Generate(src, 0, 10)
			require.NoError(t, err)

			assert.True(t, second.Cached)
			assert.Equal(t, first.Graph.Edges(), second.Graph.Edges())
			assert.Equal(t, src.Vertices(), second.Graph.Vertices())
			assert.True(t, degseq.Equal(degseq.Of(src), degseq.Of(second.Graph)))
		})
	}
}

func TestMemory_StoresPrivateCopies(t *testing.T) {
	t.Parallel()
	m := cache.NewMemory()
	g := sample(t)
	key := nullmodel.Key{Signature: "s"}
	require.NoError(t, m.Store(key, g))
	require.NoError(t, g.AddEdge("iso", "zz"))

	back, ok, err := m.Load(key)
	require.NoError(t, err)
	require.True(t, ok)
	assert.False(t, back.HasVertex("zz"))
	require.NoError(t, back.AddEdge("iso", "yy"))

	again, _, _ := m.Load(key)
	assert.False(t, again.HasVertex("yy"))
	assert.Equal(t, 1, m.Len())
	require.NoError(t, m.Close())
	assert.Zero(t, m.Len())
}

func TestDir_Layout(t *testing.T) {
	t.Parallel()
	root := t.TempDir()
	d, err := cache.NewDir(root)
	require.NoError(t, err)

	key := nullmodel.Key{Signature: "abc", Index: 7, Seed: 107}
	assert.Equal(t, filepath.Join(root, "abc", "random_graph_7_107.edges"), d.Path(key))

	g, err := builder.BuildGraph(nil, builder.Path(3))
	require.NoError(t, err)
	require.NoError(t, d.Store(key, g))
	data, err := os.ReadFile(d.Path(key))
	require.NoError(t, err)
	assert.Equal(t, "0 1\n1 2\n", string(data))

	_, err = cache.NewDir("")
	assert.Error(t, err)
}

func TestBadger_Count(t *testing.T) {
	t.Parallel()
	b, err := cache.OpenBadger("")
	require.NoError(t, err)
	defer b.Close()

	g := sample(t)
	for i := 0; i < 5; i++ {
		require.NoError(t, b.Store(nullmodel.Key{Signature: "one", Index: i, Seed: int64(i)}, g))
	}
	require.NoError(t, b.Store(nullmodel.Key{Signature: "two", Index: 0}, g))

	n, err := b.Count("one")
	require.NoError(t, err)
	assert.Equal(t, 5, n)
	n, err = b.Count("two")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestBadger_Persists(t *testing.T) {
	t.Parallel()
	path := t.TempDir()
	g := sample(t)
	key := nullmodel.Key{Signature: nullmodel.Signature(g), Index: 1, Seed: 1}

	b, err := cache.OpenBadger(path)
	require.NoError(t, err)
	require.NoError(t, b.Store(key, g))
	require.NoError(t, b.Close())

	b, err = cache.OpenBadger(path)
	require.NoError(t, err)
	defer b.Close()
	back, ok, err := b.Load(key)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, g.Vertices(), back.Vertices())
	assert.Equal(t, g.Edges(), back.Edges())
}

func TestOpen(t *testing.T) {
	t.Parallel()
	s, err := cache.Open("none", "")
	require.NoError(t, err)
	assert.Nil(t, s)

	s, err = cache.Open("Memory", "")
	require.NoError(t, err)
	assert.IsType(t, &cache.Memory{}, s)

	s, err = cache.Open("dir", t.TempDir())
	require.NoError(t, err)
	assert.IsType(t, &cache.Dir{}, s)

	_, err = cache.Open("redis", "")
	assert.ErrorIs(t, err, cache.ErrUnknownBackend)
}
