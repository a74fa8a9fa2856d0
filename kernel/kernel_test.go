// SPDX-License-Identifier: MIT
package kernel_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fvs/action"
	"github.com/katalvlaran/fvs/builder"
	"github.com/katalvlaran/fvs/core"
	"github.com/katalvlaran/fvs/internal/fvstest"
	"github.com/katalvlaran/fvs/kernel"
)

func build(t *testing.T, bopts []builder.BuilderOption, cons ...builder.Constructor) *core.Graph {
	t.Helper()
	g, err := builder.BuildGraph(nil, bopts, cons...)
	require.NoError(t, err)

	return g
}

func kernelize(t *testing.T, s *kernel.State, opts ...kernel.Option) kernel.Result {
	t.Helper()
	res, err := kernel.Kernelize(s, opts...)
	require.NoError(t, err)

	return res
}

// doubleFlower is a hub 0 with two petals {1,2} and {3,4}: each petal vertex
// has a double edge to the hub and the petal pair is joined by one edge.
// The hub is the unique minimum FVS.
func doubleFlower(t *testing.T) *core.Graph {
	t.Helper()
	g := build(t, []builder.BuilderOption{builder.WithMultiplicity(2)},
		builder.Edges([2]int{0, 1}, [2]int{0, 2}, [2]int{0, 3}, [2]int{0, 4}))
	require.NoError(t, g.AddEdge(1, 2))
	require.NoError(t, g.AddEdge(3, 4))

	return g
}

func TestKernelize_TreeVanishes(t *testing.T) {
	s := kernel.NewState(build(t, nil, builder.Star(6)), 0)
	res := kernelize(t, s, kernel.WithBudget())

	assert.True(t, res.Changed)
	assert.True(t, s.Feasible)
	assert.Zero(t, s.Graph.VertexCount())
	assert.Empty(t, s.Solution)
	assert.Zero(t, s.K)
	assert.Equal(t, 6, res.Applied[kernel.RuleLowDegree])
}

func TestKernelize_TriangleCommitsOneVertex(t *testing.T) {
	s := kernel.NewState(build(t, nil, builder.Cycle(3)), 1)
	res := kernelize(t, s, kernel.WithBudget())

	assert.True(t, s.Feasible)
	assert.Equal(t, []int{2}, s.Solution)
	assert.Zero(t, s.K)
	assert.Zero(t, s.Graph.VertexCount())
	assert.Equal(t, 2, res.Applied[kernel.RuleDegreeTwo])
	assert.Equal(t, 1, res.Applied[kernel.RuleLoop])
}

func TestKernelize_MultiplicityCapDoesNotForce(t *testing.T) {
	g := build(t, nil, builder.Complete(4))
	require.NoError(t, g.AddEdges(0, 1, 2)) // 0–1 now triple

	s := kernel.NewState(g, 2)
	res := kernelize(t, s)

	assert.Equal(t, 1, res.Applied[kernel.RuleMultiplicity])
	assert.Equal(t, 2, s.Graph.Multiplicity(0, 1))
	assert.Empty(t, s.Solution, "a double edge alone commits nothing")
	assert.Equal(t, 4, s.Graph.VertexCount())
	assert.Equal(t, 2, s.K)
}

func TestKernelize_BudgetChecks(t *testing.T) {
	cases := []struct {
		name     string
		g        *core.Graph
		k        int
		feasible bool
	}{
		{"k=0 with cycle", build(t, nil, builder.Complete(4)), 0, false},
		{"negative k", build(t, nil, builder.Complete(4)), -1, false},
		{"K5 size bound", build(t, nil, builder.Complete(5)), 1, false},
		{"K5 within bound", build(t, nil, builder.Complete(5)), 3, true},
		{"tree k=0", build(t, nil, builder.Path(5)), 0, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := kernel.NewState(tc.g, tc.k)
			kernelize(t, s, kernel.WithBudget())
			assert.Equal(t, tc.feasible, s.Feasible)
		})
	}
}

func TestKernelize_NoBudgetNeverInfeasible(t *testing.T) {
	s := kernel.NewState(build(t, nil, builder.Complete(5)), 0)
	kernelize(t, s)
	assert.True(t, s.Feasible)
}

func TestKernelize_ForcedVertex(t *testing.T) {
	s := kernel.NewState(doubleFlower(t), 1)
	res := kernelize(t, s, kernel.WithBudget())
	assert.False(t, res.Changed, "no local rule applies")

	res = kernelize(t, s, kernel.WithBudget(), kernel.WithForcedVertices())
	assert.True(t, s.Feasible)
	assert.Equal(t, 1, res.Applied[kernel.RuleForced])
	assert.Equal(t, []int{0}, s.Solution)
	assert.Zero(t, s.K)
	assert.Zero(t, s.Graph.VertexCount())
}

func TestKernelize_Idempotent(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		g := build(t, []builder.BuilderOption{builder.WithSeed(seed)}, builder.RandomSparse(14, 0.35))
		s := kernel.NewState(g, 14)
		kernelize(t, s, kernel.WithBudget(), kernel.WithForcedVertices())

		before := s.Clone()
		res := kernelize(t, s, kernel.WithBudget(), kernel.WithForcedVertices())
		assert.False(t, res.Changed, "seed %d", seed)
		assert.True(t, before.Graph.Equal(s.Graph), "seed %d", seed)
		assert.Equal(t, before.Solution, s.Solution, "seed %d", seed)
		assert.Equal(t, before.K, s.K, "seed %d", seed)
	}
}

// The reduction must preserve the optimum: with k = OPT the state stays
// feasible and committed + OPT(reduced) = OPT; with k = OPT-1 it never
// claims a solution that fits.
func TestKernelize_AgreesWithBruteForce(t *testing.T) {
	for seed := int64(1); seed <= 30; seed++ {
		g := build(t, []builder.BuilderOption{builder.WithSeed(seed)}, builder.RandomSparse(12, 0.3))
		opt := fvstest.MinimumSize(g)

		s := kernel.NewState(g.Clone(), opt)
		kernelize(t, s, kernel.WithBudget(), kernel.WithForcedVertices(), kernel.WithMaxForcedProbes(0))
		require.True(t, s.Feasible, "seed %d", seed)
		rest := fvstest.MinimumSize(s.Graph)
		assert.Equal(t, opt, len(s.Solution)+rest, "seed %d", seed)
		assert.LessOrEqual(t, rest, s.K, "seed %d", seed)

		if opt == 0 {
			continue
		}
		tight := kernel.NewState(g.Clone(), opt-1)
		kernelize(t, tight, kernel.WithBudget(), kernel.WithForcedVertices())
		if tight.Feasible {
			assert.Greater(t, fvstest.MinimumSize(tight.Graph), tight.K, "seed %d", seed)
		}
	}
}

func TestKernelize_WithStackIsReversible(t *testing.T) {
	g := doubleFlower(t)
	require.NoError(t, g.AddEdges(0, 1, 2)) // 0–1 now quadruple
	require.NoError(t, g.AddEdge(5, 0))     // pendant
	orig := g.Clone()

	log := action.NewStack()
	s := kernel.NewState(g, 1)
	res := kernelize(t, s, kernel.WithBudget(), kernel.WithForcedVertices(), kernel.WithStack(log))
	require.True(t, res.Changed)
	assert.Equal(t, 1, res.Applied[kernel.RuleMultiplicity])
	assert.Equal(t, 5, res.Applied[kernel.RuleLowDegree], "the pendant, then the four petals")
	assert.Equal(t, []int{0}, s.Solution)
	assert.Zero(t, g.VertexCount())
	assert.False(t, log.IsEmpty())

	_, err := log.Unwind()
	require.NoError(t, err)
	assert.True(t, orig.Equal(g))
}

func TestState_Clone(t *testing.T) {
	s := kernel.NewState(build(t, nil, builder.Cycle(4)), 2)
	s.Solution = []int{9}
	c := s.Clone()

	c.Solution[0] = 7
	require.NoError(t, c.Graph.RemoveVertex(0))
	c.K = 0

	assert.Equal(t, []int{9}, s.Solution)
	assert.Equal(t, 4, s.Graph.VertexCount())
	assert.Equal(t, 2, s.K)
}

func TestRule_String(t *testing.T) {
	assert.Equal(t, "forced_vertex", kernel.RuleForced.String())
	assert.Equal(t, "unknown", kernel.Rule(42).String())
	assert.Len(t, kernel.Rules(), 5)
}
