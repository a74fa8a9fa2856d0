// SPDX-License-Identifier: MIT
package action_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fvs/action"
	"github.com/katalvlaran/fvs/core"
)

func TestStack_PushPopRestoresGraph(t *testing.T) {
	g := sample(t)
	before := g.Clone()
	s := action.NewStack()

	for _, v := range g.Vertices() {
		require.NoError(t, s.Push(action.NewDeleteVertex(g, v)))
	}
	assert.Zero(t, g.VertexCount())
	assert.Equal(t, 5, s.Len())
	assert.Equal(t, uint64(5), s.Generation())

	// LIFO: the last deleted vertex comes back first
	a, err := s.Pop()
	require.NoError(t, err)
	assert.Equal(t, 7, a.(*action.DeleteVertex).Vertex())
	assert.Equal(t, []int{7}, g.Vertices())

	for !s.IsEmpty() {
		_, err = s.Pop()
		require.NoError(t, err)
	}
	assert.True(t, before.Equal(g))
	assert.Nil(t, s.Peek())
}

func TestStack_FailedPushIsNotRecorded(t *testing.T) {
	g := sample(t)
	s := action.NewStack()

	require.ErrorIs(t, s.Push(action.NewDeleteVertex(g, 99)), action.ErrStructuralViolation)
	assert.True(t, s.IsEmpty())
	assert.Zero(t, s.Generation())
}

func TestStack_Subroutines(t *testing.T) {
	g := sample(t)
	before := g.Clone()
	s := action.NewStack()

	require.NoError(t, s.Push(action.NewDeleteVertex(g, 7)))
	s.StartSubroutine()
	assert.Equal(t, 1, s.Depth())

	_, err := s.Pop()
	require.ErrorIs(t, err, action.ErrStructuralViolation, "entry belongs to the caller")

	require.NoError(t, s.Push(action.NewDeleteVertex(g, 3)))
	require.NoError(t, s.Push(action.NewAddEdge(g, 0, 0)))
	require.ErrorIs(t, s.StopSubroutine(), action.ErrStructuralViolation, "entries left")

	n, err := s.Unwind()
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	require.NoError(t, s.StopSubroutine())
	assert.Equal(t, 1, s.Len())

	require.ErrorIs(t, s.StopSubroutine(), action.ErrStructuralViolation, "no open subroutine")

	n, err = s.Unwind()
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.True(t, before.Equal(g))
}

func TestStack_NestedSubroutinesWithContraction(t *testing.T) {
	// path 0-1-2: contract 1 into an edge 0-2, then cap it, all reversibly
	g := core.NewGraph()
	require.NoError(t, g.AddEdge(0, 1))
	require.NoError(t, g.AddEdge(1, 2))
	require.NoError(t, g.AddEdges(0, 2, 2))
	before := g.Clone()

	s := action.NewStack()
	s.StartSubroutine()
	require.NoError(t, s.Push(action.NewDeleteVertex(g, 1)))
	require.NoError(t, s.Push(action.NewAddEdge(g, 0, 2)))
	s.StartSubroutine()
	require.NoError(t, s.Push(action.NewCapMultiplicity(g, 0, 2, 2)))
	assert.Equal(t, 2, g.Multiplicity(0, 2))

	_, err := s.Unwind()
	require.NoError(t, err)
	require.NoError(t, s.StopSubroutine())
	assert.Equal(t, 3, g.Multiplicity(0, 2))

	_, err = s.Unwind()
	require.NoError(t, err)
	require.NoError(t, s.StopSubroutine())
	assert.True(t, before.Equal(g))
	assert.Zero(t, s.Depth())
}

func TestStack_PopRejectsActionRevertedOutsideTheLog(t *testing.T) {
	g := sample(t)
	s := action.NewStack()

	a := action.NewDeleteVertex(g, 7)
	require.NoError(t, s.Push(a))
	require.NoError(t, s.Push(action.NewDeleteVertex(g, 3)))
	assert.Equal(t, uint64(2), s.Generation())

	// same graph state, but the log no longer owns this Perform
	require.NoError(t, a.Revert())
	require.NoError(t, a.Perform())

	_, err := s.Pop()
	require.NoError(t, err)
	assert.Equal(t, uint64(1), s.Generation())

	_, err = s.Pop()
	require.ErrorIs(t, err, action.ErrStructuralViolation)
	assert.Contains(t, err.Error(), "generation")
	assert.Equal(t, 1, s.Len())
}

func TestStack_GenerationsAreNotReused(t *testing.T) {
	g := sample(t)
	s := action.NewStack()

	require.NoError(t, s.Push(action.NewDeleteVertex(g, 7)))
	_, err := s.Pop()
	require.NoError(t, err)
	assert.Zero(t, s.Generation())

	require.NoError(t, s.Push(action.NewDeleteVertex(g, 7)))
	assert.Equal(t, uint64(2), s.Generation())
}
