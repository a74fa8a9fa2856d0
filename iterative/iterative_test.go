// SPDX-License-Identifier: MIT
package iterative_test

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"sort"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fvs/action"
	"github.com/katalvlaran/fvs/builder"
	"github.com/katalvlaran/fvs/core"
	"github.com/katalvlaran/fvs/disjoint"
	"github.com/katalvlaran/fvs/internal/fvstest"
	"github.com/katalvlaran/fvs/iterative"
	"github.com/katalvlaran/fvs/metrics"
)

func build(t *testing.T, bopts []builder.BuilderOption, cons ...builder.Constructor) *core.Graph {
	t.Helper()
	g, err := builder.BuildGraph(nil, bopts, cons...)
	require.NoError(t, err)

	return g
}

func run(t *testing.T, g *core.Graph, opts ...iterative.Option) iterative.Result {
	t.Helper()
	orig := g.Clone()
	res, err := iterative.NewDriver(opts...).Run(context.Background(), g)
	require.NoError(t, err)
	require.True(t, orig.Equal(g), "graph restored")
	assert.True(t, fvstest.IsFVS(g, res.Solution))
	assert.Equal(t, len(res.Solution), res.K)
	assert.Equal(t, g.VertexCount(), res.Reinsertions)

	return res
}

func TestDriver_Shapes(t *testing.T) {
	t.Run("triangle", func(t *testing.T) {
		res := run(t, build(t, nil, builder.Cycle(3)))
		assert.Len(t, res.Solution, 1)
	})

	t.Run("tree", func(t *testing.T) {
		res := run(t, build(t, nil, builder.Star(7)))
		assert.Empty(t, res.Solution)
		assert.Zero(t, res.K)
		assert.Zero(t, res.Compressions)
	})

	t.Run("hub with two triangles", func(t *testing.T) {
		g := build(t, nil, builder.Edges([2]int{0, 1}, [2]int{1, 2}, [2]int{2, 0},
			[2]int{0, 3}, [2]int{3, 4}, [2]int{4, 0}))
		res := run(t, g)
		assert.Equal(t, []int{0}, res.Solution)
		assert.Equal(t, 1, res.Compressions)
	})

	t.Run("two triangles and a bridge", func(t *testing.T) {
		g := build(t, nil, builder.Disjoint(builder.Cycle(3), builder.Cycle(3)), builder.Edges([2]int{2, 3}))
		res := run(t, g)
		require.Len(t, res.Solution, 2)
		assert.Less(t, res.Solution[0], 3)
		assert.GreaterOrEqual(t, res.Solution[1], 3)
	})

	t.Run("loops and parallel edges", func(t *testing.T) {
		g := build(t, nil, builder.Edges([2]int{0, 0}, [2]int{1, 2}, [2]int{1, 2}, [2]int{2, 3}))
		res := run(t, g)
		assert.Len(t, res.Solution, 2)
		assert.Contains(t, res.Solution, 0)
	})
}

func TestDriver_AgreesWithBruteForce(t *testing.T) {
	orders := []iterative.Order{
		iterative.OrderNatural, iterative.OrderDegreeAsc, iterative.OrderDegreeDesc, iterative.OrderApprox,
	}
	for seed := int64(1); seed <= 15; seed++ {
		g := build(t, []builder.BuilderOption{builder.WithSeed(seed)}, builder.RandomSparse(12, 0.3))
		opt := fvstest.MinimumSize(g)
		for _, o := range orders {
			res := run(t, g, iterative.WithOrder(o))
			assert.Len(t, res.Solution, opt, "seed %d order %s", seed, o)
		}
	}
}

func TestDriver_MaxK(t *testing.T) {
	g := build(t, nil, builder.Complete(5))
	orig := g.Clone()

	_, err := iterative.NewDriver(iterative.WithMaxK(2)).Run(context.Background(), g)
	assert.ErrorIs(t, err, iterative.ErrBudgetExceeded)
	assert.True(t, orig.Equal(g))

	res := run(t, g, iterative.WithMaxK(3))
	assert.Equal(t, 3, res.K)
}

func TestDriver_Cancelled(t *testing.T) {
	g := build(t, nil, builder.Complete(5))
	orig := g.Clone()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := iterative.NewDriver().Run(ctx, g)
	assert.ErrorIs(t, err, disjoint.ErrCancelled)
	assert.ErrorIs(t, err, context.Canceled)
	assert.True(t, orig.Equal(g))
}

func TestDriver_RecordsCompressions(t *testing.T) {
	rec := metrics.NewRecorder(prometheus.NewRegistry())
	res := run(t, build(t, nil, builder.Complete(5)), iterative.WithRecorder(rec))

	assert.Len(t, res.Solution, 3)
	assert.GreaterOrEqual(t, testutil.ToFloat64(rec.Compressions), float64(res.Compressions))
	assert.Positive(t, testutil.ToFloat64(rec.Compressions))
}

func TestCompress(t *testing.T) {
	ctx := context.Background()

	t.Run("shrinks a non-minimum solution", func(t *testing.T) {
		g := build(t, nil, builder.Complete(4))
		orig := g.Clone()
		log := action.NewStack()

		sol, ok, err := iterative.Compress(ctx, g, log, []int{0, 1, 2}, disjoint.New())
		require.NoError(t, err)
		require.True(t, ok)
		assert.Len(t, sol, 2)
		assert.True(t, fvstest.IsFVS(g, sol))
		assert.True(t, log.IsEmpty())
		assert.True(t, orig.Equal(g))
	})

	t.Run("minimum solution stays", func(t *testing.T) {
		sol, ok, err := iterative.Compress(ctx, build(t, nil, builder.Cycle(3)), action.NewStack(), []int{0}, disjoint.New())
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Nil(t, sol)
	})

	t.Run("walks candidates one vertex at a time", func(t *testing.T) {
		g := build(t, nil, builder.Complete(5))
		orig := g.Clone()
		rec := &recordingSolver{}

		sol, ok, err := iterative.Compress(ctx, g, action.NewStack(), []int{0, 1, 2, 3}, rec)
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Nil(t, sol)
		assert.True(t, orig.Equal(g))

		// every subset Z except the full one, each once
		require.Len(t, rec.calls, 15)
		assert.Equal(t, []int{0, 1, 2, 3}, rec.calls[0].p)
		seen := make(map[string]bool)
		for i, c := range rec.calls {
			assert.Equal(t, 5-(4-len(c.p)), c.vertices, "Z is deleted for call %d", i)
			key := fmt.Sprint(c.p)
			assert.False(t, seen[key], "P %v repeated", c.p)
			seen[key] = true
			if i == 0 {
				continue
			}
			diff := symmetricDifference(rec.calls[i-1].p, c.p)
			if diff == 2 {
				// the full Z between two singletons P is skipped
				assert.Len(t, rec.calls[i-1].p, 1)
				assert.Len(t, c.p, 1)
				continue
			}
			assert.Equal(t, 1, diff, "calls %d and %d", i-1, i)
		}
	})

	t.Run("too large", func(t *testing.T) {
		s := make([]int, iterative.MaxCompressionSize+1)
		for i := range s {
			s[i] = i
		}
		_, _, err := iterative.Compress(ctx, core.NewGraph(), action.NewStack(), s, disjoint.New())
		assert.ErrorIs(t, err, iterative.ErrResourceExceeded)
	})

	t.Run("warns above the warn size", func(t *testing.T) {
		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))

		_, ok, err := iterative.Compress(ctx, build(t, nil, builder.Complete(4)), action.NewStack(),
			[]int{0, 1, 2}, disjoint.New(), iterative.WithLogger(logger), iterative.WithWarnSize(2))
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Contains(t, buf.String(), "compressing a large solution")
	})
}

// recordingSolver answers every call with infeasible and remembers what it
// was asked.
type recordingSolver struct {
	calls []solveCall
}

type solveCall struct {
	p        []int
	vertices int
}

func (r *recordingSolver) Solve(_ context.Context, g *core.Graph, prohibited []int) ([]int, error) {
	p := append([]int(nil), prohibited...)
	sort.Ints(p)
	r.calls = append(r.calls, solveCall{p: p, vertices: g.VertexCount()})

	return nil, disjoint.ErrInfeasible
}

func symmetricDifference(a, b []int) int {
	in := make(map[int]int)
	for _, v := range a {
		in[v]++
	}
	for _, v := range b {
		in[v]--
	}
	n := 0
	for _, c := range in {
		if c != 0 {
			n++
		}
	}

	return n
}

func TestOrder_ParseAndString(t *testing.T) {
	for _, o := range []iterative.Order{iterative.OrderNatural, iterative.OrderApprox} {
		got, err := iterative.ParseOrder(o.String())
		require.NoError(t, err)
		assert.Equal(t, o, got)
	}
	_, err := iterative.ParseOrder("random")
	assert.Error(t, err)
	assert.Equal(t, "Order(9)", iterative.Order(9).String())
}
