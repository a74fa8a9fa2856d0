// SPDX-License-Identifier: MIT
// Package: fvs/builder
//
// options.go: functional options for the builder package.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves never panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.
package builder

import (
	"fmt"
	"math/rand"
)

// BuilderOption customizes the behavior of a constructor by mutating a
// builderConfig instance before graph construction begins.
// Complexity: applying N options costs O(N) time, O(1) space.
type BuilderOption func(*builderConfig)

// WithOffset maps constructor index i to vertex offset+i.
// Panics on a negative offset, since vertex IDs are non-negative.
func WithOffset(offset int) BuilderOption {
	if offset < 0 {
		panic(fmt.Sprintf("builder: WithOffset(%d)", offset))
	}

	return func(c *builderConfig) {
		c.idFn = func(i int) int { return i + offset }
	}
}

// WithMultiplicity emits every topology edge m times, turning simple
// fixtures into multigraphs. Panics if m < 1.
func WithMultiplicity(m int) BuilderOption {
	if m < 1 {
		panic(fmt.Sprintf("builder: WithMultiplicity(%d)", m))
	}

	return func(c *builderConfig) {
		c.multiplicity = m
	}
}

// WithRand provides an explicit RNG for stochastic builders.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}

	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
// Use this in tests and examples to lock outcomes.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}
