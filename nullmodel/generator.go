package nullmodel

import (
	"errors"
	"fmt"

	"github.com/calganaygun/networks-playground/builder"
	"github.com/calganaygun/networks-playground/core"
)

// DefaultMaxAttempts is the reshuffle budget per ensemble member.
const DefaultMaxAttempts = 10

// Result is the outcome of one generation. Exactly one of Graph and Failure
// is set.
type Result struct {
	Graph    *core.Graph
	Index    int
	Seed     int64
	Attempts int
	Cached   bool
	Failure  *Failure
	// CacheErr holds a Load or Store error that was degraded to a miss.
	CacheErr error
}

// OK reports whether a graph was produced.
func (r Result) OK() bool { return r.Failure == nil && r.Graph != nil }

// Option configures a Generator.
type Option func(*Generator)

// WithCache attaches a graph cache. nil disables caching.
func WithCache(c Cache) Option {
	return func(g *Generator) { g.cache = c }
}

// WithMaxAttempts sets the reshuffle budget. Panics if n < 1.
func WithMaxAttempts(n int) Option {
	if n < 1 {
		panic("nullmodel: WithMaxAttempts(n<1)")
	}
	return func(g *Generator) { g.maxAttempts = n }
}

// WithPairing selects the stub-matching policy.
func WithPairing(p builder.Pairing) Option {
	return func(g *Generator) { g.pairing = p }
}

// Generator produces degree-preserving random graphs. It holds no mutable
// state of its own and is safe for concurrent use when its Cache is.
type Generator struct {
	cache       Cache
	maxAttempts int
	pairing     builder.Pairing
}

// NewGenerator returns a Generator with sequential pairing, DefaultMaxAttempts
// and no cache, then applies opts.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{maxAttempts: DefaultMaxAttempts, pairing: builder.PairingSequential}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate snapshots src and produces ensemble member index with seed.
// Callers generating many members should build one Source and use
// GenerateFrom.
func (gen *Generator) Generate(src *core.Graph, index int, seed int64) (Result, error) {
	s, err := NewSource(src)
	if err != nil {
		return Result{Index: index, Seed: seed}, err
	}
	return gen.GenerateFrom(s, index, seed)
}

// GenerateFrom produces ensemble member index with seed from a prepared
// Source.
//
// On a randomizer failure the returned error is the same *Failure stored in
// Result.Failure. Other errors (nil source) leave Failure unset.
// Same (source, seed, pairing, budget) ⇒ identical edge set.
func (gen *Generator) GenerateFrom(src *Source, index int, seed int64) (Result, error) {
	res := Result{Index: index, Seed: seed}
	if src == nil {
		return res, ErrNilGraph
	}

	if !src.graphical {
		return res.fail(&Failure{
			Kind:   FailureUnrealizable,
			Detail: "degree sequence fails the Erdős–Gallai test",
		})
	}

	key := Key{Signature: src.signature, Index: index, Seed: seed}
	if g, ok := gen.load(key, src, &res); ok {
		res.Graph, res.Cached = g, true
		return res, nil
	}

	var stats builder.Stats
	g, err := builder.BuildGraph([]builder.BuilderOption{
		builder.WithSeed(seed),
		builder.WithPairing(gen.pairing),
		builder.WithMaxAttempts(gen.maxAttempts),
		builder.WithStats(&stats),
	}, builder.Configuration(src.ids, src.degrees))
	res.Attempts = stats.Attempts
	if err != nil {
		if errors.Is(err, builder.ErrConstructFailed) {
			return res.fail(&Failure{
				Kind:   FailureUnrealizable,
				Detail: fmt.Sprintf("%d of %d attempts rejected", stats.Rejected, stats.Attempts),
			})
		}
		return res, fmt.Errorf("nullmodel: member %d: %w", index, err)
	}

	if err = Verify(src, g); err != nil {
		return res.fail(&Failure{Kind: FailureMismatch, Detail: err.Error()})
	}

	if gen.cache != nil {
		if err = gen.cache.Store(key, g); err != nil {
			res.CacheErr = fmt.Errorf("nullmodel: store %s: %w", key, err)
		}
	}
	res.Graph = g

	return res, nil
}

// load consults the cache. Errors and stale entries become misses; the
// error, if any, is kept on res.
func (gen *Generator) load(key Key, src *Source, res *Result) (*core.Graph, bool) {
	if gen.cache == nil {
		return nil, false
	}
	g, ok, err := gen.cache.Load(key)
	if err != nil {
		res.CacheErr = fmt.Errorf("nullmodel: load %s: %w", key, err)
		return nil, false
	}
	if !ok || g == nil {
		return nil, false
	}
	if err = src.restoreVertices(g); err != nil {
		res.CacheErr = fmt.Errorf("nullmodel: load %s: %w", key, err)
		return nil, false
	}
	if err = Verify(src, g); err != nil {
		res.CacheErr = fmt.Errorf("nullmodel: stale entry %s: %w", key, err)
		return nil, false
	}
	return g, true
}

func (r Result) fail(f *Failure) (Result, error) {
	f.Index, f.Seed, f.Attempts = r.Index, r.Seed, r.Attempts
	r.Failure = f
	return r, f
}
