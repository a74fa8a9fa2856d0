// SPDX-License-Identifier: MIT
// File: compress.go
// Role: one compression step over a Gray-code walk of the solution's subsets.
package iterative

import (
	"context"
	"errors"
	"fmt"
	"math/bits"
	"sort"

	"github.com/katalvlaran/fvs/action"
	"github.com/katalvlaran/fvs/core"
	"github.com/katalvlaran/fvs/disjoint"
)

// DisjointSolver finds an FVS of g of size |prohibited|−1 avoiding
// prohibited. prohibited is only valid during the call. *disjoint.Solver
// implements it.
type DisjointSolver interface {
	Solve(ctx context.Context, g *core.Graph, prohibited []int) ([]int, error)
}

// Compress looks for an FVS of g with |s|−1 vertices, given the FVS s.
//
// Each subset Z of s except s itself is tried: Z is deleted through log as
// one DeleteVertices action, solver is asked for an FVS of G − Z avoiding
// P = s \ Z, and the deletion is reverted. Consecutive subsets differ in one
// element, and only that element moves between Z and P. The first hit
// returns Z ∪ D, sorted, and true. When no subset works Compress returns
// nil, false, nil.
//
// Errors:
//   - ErrResourceExceeded: len(s) > MaxCompressionSize.
//   - disjoint.ErrCancelled: ctx ended.
//   - any other solver or log error, wrapped.
func Compress(ctx context.Context, g *core.Graph, log *action.Stack, s []int, solver DisjointSolver, opts ...Option) ([]int, bool, error) {
	cfg := newConfig(opts)
	n := len(s)
	switch {
	case n > MaxCompressionSize:
		return nil, false, fmt.Errorf("iterative: Compress: %d vertices, limit %d: %w", n, MaxCompressionSize, ErrResourceExceeded)
	case n == 0:
		return nil, false, nil
	case n > cfg.warnSize:
		cfg.logger.Warn("compressing a large solution", "size", n, "subsets", fmt.Sprintf("2^%d", n))
	}
	cfg.rec.Compression()

	pt := newPartition(s)
	last := ^uint64(0) >> (64 - n) // 2^n − 1
	for i := uint64(0); ; i++ {
		if i > 0 {
			// Gray code: step i flips the bit at the position of its lowest set bit.
			pt.flip(bits.TrailingZeros64(i))
		}
		if len(pt.p) > 0 {
			sol, ok, err := tryPartition(ctx, g, log, pt.z, pt.p, solver)
			if err != nil || ok {
				return sol, ok, err
			}
		}
		if i == last {
			break
		}
	}

	return nil, false, nil
}

// partition splits s into Z and P. Both slices are kept up to date one
// element at a time; at[i] is the index of s[i] inside the side it is on.
type partition struct {
	s    []int
	z, p []int
	inZ  []bool
	at   []int
	idx  map[int]int // vertex -> index in s
}

// newPartition starts with Z empty and P = s.
func newPartition(s []int) *partition {
	pt := &partition{
		s:   s,
		z:   make([]int, 0, len(s)),
		p:   append(make([]int, 0, len(s)), s...),
		inZ: make([]bool, len(s)),
		at:  make([]int, len(s)),
		idx: make(map[int]int, len(s)),
	}
	for i, v := range s {
		pt.at[i] = i
		pt.idx[v] = i
	}

	return pt
}

// flip moves s[i] to the other side: swap-remove from one slice, append to
// the other.
func (pt *partition) flip(i int) {
	from, to := &pt.p, &pt.z
	if pt.inZ[i] {
		from, to = to, from
	}
	j, end := pt.at[i], len(*from)-1
	moved := (*from)[end]
	(*from)[j] = moved
	pt.at[pt.idx[moved]] = j
	*from = (*from)[:end]

	pt.at[i] = len(*to)
	*to = append(*to, pt.s[i])
	pt.inZ[i] = !pt.inZ[i]
}

// tryPartition solves one (Z, P) split. z and p are owned by the caller and
// change after the call returns.
func tryPartition(ctx context.Context, g *core.Graph, log *action.Stack, z, p []int, solver DisjointSolver) ([]int, bool, error) {
	if len(z) > 0 {
		if err := log.Push(action.NewDeleteVertices(g, z)); err != nil {
			return nil, false, fmt.Errorf("iterative: Compress: %w", err)
		}
	}
	d, err := solver.Solve(ctx, g, p)
	if len(z) > 0 {
		if _, perr := log.Pop(); perr != nil {
			return nil, false, fmt.Errorf("iterative: Compress: %w", errors.Join(err, perr))
		}
	}
	switch {
	case errors.Is(err, disjoint.ErrInfeasible):
		return nil, false, nil
	case err != nil:
		return nil, false, fmt.Errorf("iterative: Compress: %w", err)
	}

	sol := make([]int, 0, len(z)+len(d))
	sol = append(append(sol, z...), d...)
	sort.Ints(sol)

	return sol, true, nil
}
