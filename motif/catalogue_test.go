package motif_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calganaygun/networks-playground/motif"
)

func TestDefaultCatalogueLayout(t *testing.T) {
	cat := motif.Default()
	require.Equal(t, motif.NumSlots, cat.Len())
	assert.Equal(t, []string{
		"open-triad", "triangle", "star4", "path4", "cycle4", "paw", "diamond", "complete4",
	}, cat.Names())

	want := []struct {
		size, edges int
		degrees     []int
	}{
		{3, 2, []int{2, 1, 1}},
		{3, 3, []int{2, 2, 2}},
		{4, 3, []int{3, 1, 1, 1}},
		{4, 3, []int{2, 2, 1, 1}},
		{4, 4, []int{2, 2, 2, 2}},
		{4, 4, []int{3, 2, 2, 1}},
		{4, 5, []int{3, 3, 2, 2}},
		{4, 6, []int{3, 3, 3, 3}},
	}
	for slot, w := range want {
		cls, ok := cat.Class(slot)
		require.True(t, ok)
		assert.Equal(t, slot, cls.Slot)
		assert.Equal(t, w.size, cls.Size, cls.Name)
		assert.Equal(t, w.edges, cls.EdgeCount, cls.Name)
		assert.Equal(t, w.degrees, cls.Degrees, cls.Name)
		assert.Len(t, cls.EdgeList(), w.edges)
	}
	_, ok := cat.Class(motif.NumSlots)
	assert.False(t, ok)

	assert.Equal(t, []int{0, 1}, cat.SlotsOfSize(3))
	assert.Equal(t, []int{2, 3, 4, 5, 6, 7}, cat.SlotsOfSize(4))
}

func TestNewCatalogueIsDeterministic(t *testing.T) {
	a, err := motif.NewCatalogue()
	require.NoError(t, err)
	b, err := motif.NewCatalogue()
	require.NoError(t, err)
	assert.Equal(t, a.Classes(), b.Classes())
}

// allConnected enumerates every connected labeled pattern on n vertices.
func allConnected(t *testing.T, n int) []motif.Pattern {
	t.Helper()
	var pairs [][2]int
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			pairs = append(pairs, [2]int{i, j})
		}
	}
	var out []motif.Pattern
	for m := 0; m < 1<<len(pairs); m++ {
		var edges [][2]int
		for k, p := range pairs {
			if m&(1<<k) != 0 {
				edges = append(edges, p)
			}
		}
		p, err := motif.NewPattern(n, edges)
		require.NoError(t, err)
		if p.Connected() {
			out = append(out, p)
		}
	}
	return out
}

func TestClassifyAgreesWithStrict(t *testing.T) {
	perSlot := map[int]int{}
	for _, n := range []int{3, 4} {
		for _, p := range allConnected(t, n) {
			fast, err := motif.Classify(p)
			require.NoError(t, err, p.String())
			strict, err := motif.ClassifyStrict(p)
			require.NoError(t, err, p.String())
			assert.Equal(t, strict.Slot, fast.Slot, p.String())
			perSlot[fast.Slot]++
		}
	}
	// Labeled counts: 3 open triads, 1 triangle; on 4 vertices 4 stars,
	// 12 paths, 3 cycles, 12 paws, 6 diamonds, 1 K4 (38 connected graphs).
	assert.Equal(t, map[int]int{0: 3, 1: 1, 2: 4, 3: 12, 4: 3, 5: 12, 6: 6, 7: 1}, perSlot)
}

func TestClassifyIsPureAndPermutationInvariant(t *testing.T) {
	paw, err := motif.NewPattern(4, [][2]int{{0, 1}, {1, 2}, {0, 2}, {0, 3}})
	require.NoError(t, err)

	first, err := motif.Classify(paw)
	require.NoError(t, err)
	second, err := motif.Classify(paw)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, motif.SlotPaw, first.Slot)

	relabeled := paw.Permute([]int{3, 1, 0, 2})
	assert.True(t, paw.Isomorphic(relabeled))
	got, err := motif.Classify(relabeled)
	require.NoError(t, err)
	assert.Equal(t, motif.SlotPaw, got.Slot)
}

func TestClassifyRejects(t *testing.T) {
	twoEdges, err := motif.NewPattern(4, [][2]int{{0, 1}, {2, 3}})
	require.NoError(t, err)
	_, err = motif.Classify(twoEdges)
	assert.ErrorIs(t, err, motif.ErrUnknownMotif)
	_, err = motif.ClassifyStrict(twoEdges)
	assert.ErrorIs(t, err, motif.ErrUnknownMotif)

	_, err = motif.Classify(motif.Pattern{N: 5})
	assert.ErrorIs(t, err, motif.ErrUnsupportedSize)
}

func TestNewPatternValidation(t *testing.T) {
	_, err := motif.NewPattern(2, nil)
	assert.ErrorIs(t, err, motif.ErrUnsupportedSize)
	_, err = motif.NewPattern(3, [][2]int{{0, 0}})
	assert.ErrorIs(t, err, motif.ErrInvalidPattern)
	_, err = motif.NewPattern(3, [][2]int{{0, 3}})
	assert.ErrorIs(t, err, motif.ErrInvalidPattern)
	_, err = motif.NewPattern(3, [][2]int{{0, 1}, {1, 0}})
	assert.ErrorIs(t, err, motif.ErrInvalidPattern)

	p, err := motif.NewPattern(4, [][2]int{{3, 0}, {1, 2}})
	require.NoError(t, err)
	assert.Equal(t, [][2]int{{0, 3}, {1, 2}}, p.Edges())
	assert.Equal(t, []int{1, 1, 1, 1}, p.Degrees())
	assert.False(t, p.Connected())
}
