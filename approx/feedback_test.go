// SPDX-License-Identifier: MIT
package approx_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fvs/approx"
	"github.com/katalvlaran/fvs/builder"
	"github.com/katalvlaran/fvs/core"
	"github.com/katalvlaran/fvs/internal/fvstest"
)

func build(t *testing.T, cons ...builder.Constructor) *core.Graph {
	t.Helper()
	g, err := builder.BuildGraph(nil, nil, cons...)
	require.NoError(t, err)

	return g
}

func TestFeedback_SmallShapes(t *testing.T) {
	cases := []struct {
		name string
		g    *core.Graph
		size int
	}{
		{"tree", build(t, builder.Star(5)), 0},
		{"triangle", build(t, builder.Cycle(3)), 1},
		{"loop", build(t, builder.Edges([2]int{0, 0}, [2]int{0, 1})), 1},
		{"double edge", build(t, builder.Edges([2]int{0, 1}, [2]int{0, 1})), 1},
		// hub 0 shared by triangles 0-1-2 and 0-3-4
		{"hub", build(t, builder.Edges([2]int{0, 1}, [2]int{1, 2}, [2]int{2, 0},
			[2]int{0, 3}, [2]int{3, 4}, [2]int{4, 0})), 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			before := tc.g.Clone()
			res := approx.Feedback(tc.g)
			assert.Len(t, res.Vertices, tc.size)
			assert.InDelta(t, float64(tc.size), res.Weight, 1e-9)
			assert.True(t, fvstest.IsFVS(tc.g, res.Vertices))
			assert.True(t, before.Equal(tc.g), "input must not be mutated")
		})
	}
}

func TestFeedback_HubIsChosen(t *testing.T) {
	g := build(t, builder.Edges([2]int{0, 1}, [2]int{1, 2}, [2]int{2, 0},
		[2]int{0, 3}, [2]int{3, 4}, [2]int{4, 0}))
	assert.Equal(t, []int{0}, approx.Feedback(g).Vertices)
}

func TestFeedback_TwoApproximation(t *testing.T) {
	for seed := int64(1); seed <= 25; seed++ {
		g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSeed(seed)},
			builder.RandomSparse(11, 0.3))
		require.NoError(t, err)

		res := approx.Feedback(g)
		opt := fvstest.MinimumSize(g)
		require.True(t, fvstest.IsFVS(g, res.Vertices), "seed %d", seed)
		assert.LessOrEqual(t, len(res.Vertices), 2*opt, "seed %d", seed)
	}
}

func TestFeedback_Minimality(t *testing.T) {
	g := build(t, builder.Wheel(7), builder.Edges([2]int{0, 3}))
	res := approx.Feedback(g)
	require.True(t, fvstest.IsFVS(g, res.Vertices))
	for i := range res.Vertices {
		smaller := append(append([]int(nil), res.Vertices[:i]...), res.Vertices[i+1:]...)
		assert.False(t, fvstest.IsFVS(g, smaller), "vertex %d is redundant", res.Vertices[i])
	}
}

func TestFeedback_WithWeight(t *testing.T) {
	// the hub is the only single-vertex solution; pricing it out forces
	// one vertex per triangle
	g := build(t, builder.Edges([2]int{0, 1}, [2]int{1, 2}, [2]int{2, 0},
		[2]int{0, 3}, [2]int{3, 4}, [2]int{4, 0}))

	res := approx.Feedback(g, approx.WithWeight(0, 9))
	assert.NotContains(t, res.Vertices, 0)
	assert.Len(t, res.Vertices, 2)
	assert.InDelta(t, 2.0, res.Weight, 1e-9)

	res = approx.Feedback(g, approx.WithWeight(0, -3))
	assert.Equal(t, []int{0}, res.Vertices, "non-positive weights are ignored")
}

func TestFeedback_NilGraph(t *testing.T) {
	assert.Empty(t, approx.Feedback(nil).Vertices)
}
