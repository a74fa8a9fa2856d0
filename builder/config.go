// SPDX-License-Identifier: MIT
// Package: fvs/builder
//
// config.go: internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • idFn         = identity (index i → vertex i)
//   • rng          = nil (pure/deterministic unless seeded)
//   • multiplicity = 1
package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// Vertex ID strategy: index -> ID (deterministic).
	idFn func(int) int
	// RNG for stochastic choices; nil means "no randomness".
	rng *rand.Rand
	// Parallel copies emitted per topology edge.
	multiplicity int
}

const defaultMultiplicity = 1

// newBuilderConfig constructs a config with deterministic defaults and
// applies all options in order (later overrides earlier).
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:         identityID,
		multiplicity: defaultMultiplicity,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// shifted returns a copy of cfg whose IDs start at base on top of the
// configured scheme.
func (c builderConfig) shifted(base int) builderConfig {
	inner := c.idFn
	c.idFn = func(i int) int { return inner(i) + base }

	return c
}

func identityID(i int) int { return i }
