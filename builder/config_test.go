// Package builder contains unit tests for the configuration primitives
// (builderConfig and BuilderOption) to ensure correct application and override behavior.
package builder

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	t.Parallel()
	cfg := newBuilderConfig()
	assert.Equal(t, "7", cfg.idFn(7))
	assert.Nil(t, cfg.rng)
	assert.Equal(t, PairingSequential, cfg.pairing)
	assert.Equal(t, defaultMaxAttempts, cfg.maxAttempts)
	assert.Nil(t, cfg.stats)
	assert.Equal(t, "L", cfg.leftPrefix)
	assert.Equal(t, "R", cfg.rightPrefix)
}

func TestIDSchemeOptions(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "A", newBuilderConfig(WithSymbolIDs()).idFn(0))
	assert.Equal(t, "v3", newBuilderConfig(WithSymbNumb("v")).idFn(3))
	assert.Equal(t, "007", newBuilderConfig(WithPaddedIDs(3)).idFn(7))
	// last option wins
	assert.Equal(t, "AB", newBuilderConfig(WithSymbolIDs(), WithIDScheme(ExcelColumnIDFn)).idFn(27))

	assert.Panics(t, func() { WithIDScheme(nil) })
}

func TestRNGOptions(t *testing.T) {
	t.Parallel()
	exp := rand.New(rand.NewSource(123))
	assert.Same(t, exp, newBuilderConfig(WithRand(exp)).rng)
	assert.Panics(t, func() { WithRand(nil) })

	a := newBuilderConfig(WithSeed(42)).rng
	b := newBuilderConfig(WithSeed(42)).rng
	require.NotNil(t, a)
	assert.Equal(t, a.Int63(), b.Int63())
}

func TestStubMatchingOptions(t *testing.T) {
	t.Parallel()
	var s Stats
	cfg := newBuilderConfig(WithPairing(PairingStrict), WithMaxAttempts(3), WithStats(&s))
	assert.Equal(t, PairingStrict, cfg.pairing)
	assert.Equal(t, 3, cfg.maxAttempts)
	assert.Same(t, &s, cfg.stats)

	assert.Panics(t, func() { WithMaxAttempts(0) })
	assert.Panics(t, func() { WithStats(nil) })
	assert.Panics(t, func() { WithPairing(Pairing(9)) })
}

func TestPartitionPrefixDefaults(t *testing.T) {
	t.Parallel()
	cfg := newBuilderConfig(WithPartitionPrefix("", "B"))
	assert.Equal(t, "L", cfg.leftPrefix)
	assert.Equal(t, "B", cfg.rightPrefix)
}

func TestPairStrict(t *testing.T) {
	t.Parallel()
	pairs, ok := pairStrict([]int{0, 1, 2, 3})
	require.True(t, ok)
	assert.Equal(t, []pairKey{{0, 1}, {2, 3}}, pairs)

	_, ok = pairStrict([]int{0, 0, 1, 2})
	assert.False(t, ok, "self-loop")
	_, ok = pairStrict([]int{0, 1, 1, 0})
	assert.False(t, ok, "duplicate")
}

func TestPairSequential_NeverEmitsLoopsOrDuplicates(t *testing.T) {
	t.Parallel()
	rng := rand.New(rand.NewSource(8))
	stubs := []int{0, 0, 0, 1, 1, 1, 2, 2, 3, 3, 4, 4}
	for i := 0; i < 50; i++ {
		rng.Shuffle(len(stubs), func(a, b int) { stubs[a], stubs[b] = stubs[b], stubs[a] })
		pairs, ok := pairSequential(stubs, rng)
		if !ok {
			continue
		}
		seen := map[pairKey]bool{}
		for _, p := range pairs {
			assert.NotEqual(t, p[0], p[1])
			assert.False(t, seen[p])
			seen[p] = true
		}
		assert.Len(t, pairs, len(stubs)/2)
	}
}
