package significance_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calganaygun/networks-playground/motif"
	"github.com/calganaygun/networks-playground/significance"
)

func TestEvaluate_EmptyEnsemble(t *testing.T) {
	t.Parallel()
	_, err := significance.Evaluate(motif.CountVector{}, nil)
	assert.ErrorIs(t, err, significance.ErrEmptyEnsemble)
}

func TestEvaluate_KnownValues(t *testing.T) {
	t.Parallel()
	observed := motif.CountVector{10, 3}
	ensemble := []motif.CountVector{{2, 3}, {4, 3}, {6, 3}}

	res, err := significance.Evaluate(observed, ensemble)
	require.NoError(t, err)
	assert.Equal(t, 3, res.Ensemble)

	s0 := res.Slots[0]
	assert.Equal(t, "open-triad", s0.Name)
	assert.InDelta(t, 4.0, s0.Mean, 1e-12)
	// Population std of {2,4,6} is sqrt(8/3).
	assert.InDelta(t, math.Sqrt(8.0/3.0), s0.Std, 1e-12)
	z, ok := s0.ZScore()
	assert.True(t, ok)
	assert.InDelta(t, 6/math.Sqrt(8.0/3.0), z, 1e-9)

	// Slot 1 is constant: flagged, never NaN.
	s1 := res.Slots[1]
	assert.False(t, s1.Valid)
	assert.Zero(t, s1.Z)
	assert.Zero(t, s1.Std)
	assert.InDelta(t, 3.0, s1.Mean, 1e-12)
	assert.Contains(t, s1.String(), "z=n/a")

	// All-zero slots are invalid too.
	assert.False(t, res.Slots[7].Valid)
	assert.False(t, res.Valid())
	for _, s := range res.Slots {
		assert.False(t, math.IsNaN(s.Z) || math.IsInf(s.Z, 0))
	}
}

func TestEvaluate_SingleMemberIsAllInvalid(t *testing.T) {
	t.Parallel()
	res, err := significance.Evaluate(motif.CountVector{1, 2, 3}, []motif.CountVector{{5, 6, 7}})
	require.NoError(t, err)
	for _, s := range res.Slots {
		assert.False(t, s.Valid, "slot %d", s.Slot)
	}
	assert.InDelta(t, 6.0, res.Means()[1], 1e-12)
}

func TestEvaluate_NegativeScore(t *testing.T) {
	t.Parallel()
	res, err := significance.Evaluate(motif.CountVector{0}, []motif.CountVector{{1}, {3}})
	require.NoError(t, err)
	z, ok := res.Slots[0].ZScore()
	require.True(t, ok)
	assert.InDelta(t, -2.0, z, 1e-12)
}

func TestEvaluate_OrderIndependent(t *testing.T) {
	t.Parallel()
	rng := rand.New(rand.NewSource(1))
	ensemble := make([]motif.CountVector, 40)
	for i := range ensemble {
		for s := range ensemble[i] {
			ensemble[i][s] = uint64(rng.Intn(500))
		}
	}
	observed := motif.CountVector{100, 200, 300, 400, 10, 20, 30, 40}

	a, err := significance.Evaluate(observed, ensemble)
	require.NoError(t, err)

	shuffled := append([]motif.CountVector(nil), ensemble...)
	rng.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })
	b, err := significance.Evaluate(observed, shuffled)
	require.NoError(t, err)

	for s := range a.Slots {
		assert.Equal(t, a.Slots[s].Valid, b.Slots[s].Valid)
		assert.InDelta(t, a.Slots[s].Mean, b.Slots[s].Mean, 1e-9)
		assert.InDelta(t, a.Slots[s].Std, b.Slots[s].Std, 1e-9)
		assert.InDelta(t, a.Slots[s].Z, b.Slots[s].Z, 1e-9)
	}
	assert.True(t, a.Valid())
}
