// SPDX-License-Identifier: MIT
package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fvs/builder"
	"github.com/katalvlaran/fvs/core"
)

func TestConstructors_Shapes(t *testing.T) {
	cases := []struct {
		name     string
		con      builder.Constructor
		vertices int
		edges    int
	}{
		{"cycle", builder.Cycle(5), 5, 5},
		{"path", builder.Path(4), 4, 3},
		{"single vertex path", builder.Path(1), 1, 0},
		{"star", builder.Star(6), 6, 5},
		{"wheel", builder.Wheel(6), 6, 10},
		{"complete", builder.Complete(5), 5, 10},
		{"bipartite", builder.CompleteBipartite(2, 3), 5, 6},
		{"grid", builder.Grid(3, 4), 12, 17},
		{"random p=1", builder.RandomSparse(4, 1), 4, 6},
		{"random p=0", builder.RandomSparse(4, 0), 4, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := builder.BuildGraph(nil, nil, tc.con)
			require.NoError(t, err)
			assert.Equal(t, tc.vertices, g.VertexCount())
			assert.Equal(t, tc.edges, g.EdgeCount())
		})
	}
}

func TestConstructors_Errors(t *testing.T) {
	cases := []struct {
		name string
		con  builder.Constructor
		want error
	}{
		{"cycle", builder.Cycle(2), builder.ErrTooFewVertices},
		{"path", builder.Path(0), builder.ErrTooFewVertices},
		{"star", builder.Star(1), builder.ErrTooFewVertices},
		{"wheel", builder.Wheel(3), builder.ErrTooFewVertices},
		{"complete", builder.Complete(0), builder.ErrTooFewVertices},
		{"bipartite", builder.CompleteBipartite(1, 0), builder.ErrTooFewVertices},
		{"grid", builder.Grid(0, 3), builder.ErrTooFewVertices},
		{"probability", builder.RandomSparse(3, 1.5), builder.ErrInvalidProbability},
		{"rng", builder.RandomSparse(3, 0.5), builder.ErrNeedRandSource},
		{"negative pair", builder.Edges([2]int{-1, 2}), builder.ErrConstructFailed},
		{"nil", nil, builder.ErrConstructFailed},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := builder.BuildGraph(nil, nil, tc.con)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestWheel_HubLayout(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Wheel(5))
	require.NoError(t, err)
	assert.Equal(t, 4, g.Degree(4), "hub is the last index")
	assert.Equal(t, 3, g.Degree(0))
}

func TestOffsetAndMultiplicity(t *testing.T) {
	g, err := builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithOffset(10), builder.WithMultiplicity(2)},
		builder.Cycle(3))
	require.NoError(t, err)
	assert.Equal(t, []int{10, 11, 12}, g.Vertices())
	assert.Equal(t, 2, g.Multiplicity(10, 11))
	assert.Equal(t, 6, g.EdgeCount())

	assert.Panics(t, func() { builder.WithOffset(-1) })
	assert.Panics(t, func() { builder.WithMultiplicity(0) })
	assert.Panics(t, func() { builder.WithRand(nil) })
}

func TestDisjoint_TwoTrianglesWithBridge(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil,
		builder.Disjoint(builder.Cycle(3), builder.Cycle(3)),
		builder.Edges([2]int{2, 3}))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5}, g.Vertices())
	assert.Equal(t, 7, g.EdgeCount())
	assert.True(t, g.HasEdge(3, 5))
	assert.True(t, g.HasEdge(2, 3))
}

func TestRandomSparse_Deterministic(t *testing.T) {
	build := func(seed int64) *core.Graph {
		g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSeed(seed)},
			builder.RandomSparse(12, 0.3))
		require.NoError(t, err)

		return g
	}
	assert.True(t, build(7).Equal(build(7)))
}
