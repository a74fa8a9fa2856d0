// SPDX-License-Identifier: MIT
package randomized_test

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fvs/builder"
	"github.com/katalvlaran/fvs/core"
	"github.com/katalvlaran/fvs/internal/fvstest"
	"github.com/katalvlaran/fvs/metrics"
	"github.com/katalvlaran/fvs/randomized"
)

func build(t *testing.T, bopts []builder.BuilderOption, cons ...builder.Constructor) *core.Graph {
	t.Helper()
	g, err := builder.BuildGraph(nil, bopts, cons...)
	require.NoError(t, err)

	return g
}

func TestSolve_Shapes(t *testing.T) {
	ctx := context.Background()
	s := randomized.New(randomized.WithSeed(7))

	res, err := s.Solve(ctx, build(t, nil, builder.Star(5)))
	require.NoError(t, err)
	assert.Empty(t, res.Solution)
	assert.Zero(t, res.Trials)

	hub := build(t, nil, builder.Edges([2]int{0, 1}, [2]int{1, 2}, [2]int{2, 0},
		[2]int{0, 3}, [2]int{3, 4}, [2]int{4, 0}))
	res, err = s.Solve(ctx, hub)
	require.NoError(t, err)
	assert.Len(t, res.Solution, 1)
	assert.True(t, fvstest.IsFVS(hub, res.Solution))

	k5 := build(t, nil, builder.Complete(5))
	orig := k5.Clone()
	res, err = s.Solve(ctx, k5)
	require.NoError(t, err)
	assert.Len(t, res.Solution, 3)
	assert.True(t, orig.Equal(k5), "input untouched")
}

func TestSolve_AgreesWithBruteForce(t *testing.T) {
	ctx := context.Background()
	s := randomized.New(randomized.WithSeed(42))
	for seed := int64(1); seed <= 10; seed++ {
		g := build(t, []builder.BuilderOption{builder.WithSeed(seed)}, builder.RandomSparse(10, 0.35))
		res, err := s.Solve(ctx, g)
		require.NoError(t, err, "seed %d", seed)
		assert.True(t, fvstest.IsFVS(g, res.Solution), "seed %d", seed)
		assert.Len(t, res.Solution, fvstest.MinimumSize(g), "seed %d", seed)
	}
}

func TestSolve_Deterministic(t *testing.T) {
	g := build(t, []builder.BuilderOption{builder.WithSeed(3)}, builder.RandomSparse(12, 0.4))
	a, err := randomized.New(randomized.WithSeed(11)).Solve(context.Background(), g)
	require.NoError(t, err)
	b, err := randomized.New(randomized.WithSeed(11)).Solve(context.Background(), g)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestSolve_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := randomized.New().Solve(ctx, build(t, nil, builder.Complete(5)))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSolve_RecordsKernelRules(t *testing.T) {
	rec := metrics.NewRecorder(prometheus.NewRegistry())
	_, err := randomized.New(randomized.WithRecorder(rec)).Solve(context.Background(), build(t, nil, builder.Cycle(4)))
	require.NoError(t, err)
	assert.Equal(t, 1.0, testutil.ToFloat64(rec.RuleApplications.WithLabelValues("loop")))
}
