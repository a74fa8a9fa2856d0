// SPDX-License-Identifier: MIT
// Package: fvs/builder
//
// api.go - public entry-points for the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(gopts, bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig (no global state).
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.
//   - Safety: never panic; return sentinel errors from constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/fvs/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors validate parameters early, return sentinel
// errors, and emit vertices and edges in a documented order.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph with graph options gopts, resolves the
// builder configuration from bopts, and applies all constructors in order.
// Any constructor error is wrapped with the context "BuildGraph: %w" and
// returned immediately.
//
// Errors:
//   - Wraps constructor errors via %w; callers branch with errors.Is
//     against builder sentinels (ErrTooFewVertices, ErrInvalidProbability, ...).
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// Disjoint returns a Constructor that applies each of cons on fresh vertex
// IDs: every constructor's index 0 lands right after the largest vertex ID
// present at that moment (or at the configured offset for an empty graph).
func Disjoint(cons ...Constructor) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		for i, fn := range cons {
			if fn == nil {
				return fmt.Errorf("%s: nil constructor at index %d: %w", methodDisjoint, i, ErrConstructFailed)
			}
			local := cfg
			if verts := g.Vertices(); len(verts) > 0 {
				local = cfg.shifted(verts[len(verts)-1] + 1 - cfg.idFn(0))
			}
			if err := fn(g, local); err != nil {
				return fmt.Errorf("%s: %w", methodDisjoint, err)
			}
		}

		return nil
	}
}

// Edges returns a Constructor adding the explicit pairs as given, without
// ID mapping. A pair (v, v) adds a self-loop. Multiplicity is honored.
func Edges(pairs ...[2]int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		for _, p := range pairs {
			if p[0] < 0 || p[1] < 0 {
				return fmt.Errorf("%s: pair (%d,%d): %w", methodEdges, p[0], p[1], ErrConstructFailed)
			}
			if err := g.AddEdges(p[0], p[1], cfg.multiplicity); err != nil {
				return fmt.Errorf("%s: AddEdges(%d,%d): %w", methodEdges, p[0], p[1], err)
			}
		}

		return nil
	}
}
