// SPDX-License-Identifier: MIT
// Package: builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • idFn        = DefaultIDFn         ("0","1","2",...)
//   • rng         = nil                 (pure/deterministic unless seeded)
//   • left/right  = "L" / "R"
//   • pairing     = PairingSequential
//   • maxAttempts = 10 full reshuffles
//   • stats       = nil                 (no attempt reporting)

package builder

import (
	"math/rand"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// Vertex ID strategy: index -> ID (deterministic).
	idFn IDFn
	// RNG for stochastic choices; nil means “no randomness”.
	rng *rand.Rand

	// Bipartite ID prefixes (left/right). Empty → defaults resolved below.
	leftPrefix  string
	rightPrefix string

	// Stub-matching controls (Configuration, RandomRegular).
	pairing     Pairing
	maxAttempts int
	stats       *Stats
}

// Deterministic defaults (named, no magic numbers).
const (
	defaultLeftPrefix  = "L"
	defaultRightPrefix = "R"
	defaultMaxAttempts = 10
)

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order (last wins).
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:        DefaultIDFn,
		leftPrefix:  defaultLeftPrefix,
		rightPrefix: defaultRightPrefix,
		pairing:     PairingSequential,
		maxAttempts: defaultMaxAttempts,
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.leftPrefix == "" {
		cfg.leftPrefix = defaultLeftPrefix
	}
	if cfg.rightPrefix == "" {
		cfg.rightPrefix = defaultRightPrefix
	}

	return cfg
}
