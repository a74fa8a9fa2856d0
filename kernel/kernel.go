// SPDX-License-Identifier: MIT
// File: kernel.go
// Role: closure loop, local rules and budget checks.
package kernel

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/fvs/action"
	"github.com/katalvlaran/fvs/approx"
	"github.com/katalvlaran/fvs/core"
)

// Kernelize applies the enabled rules to s until none fires or s becomes
// infeasible. s is mutated in place; an already infeasible state is left
// untouched.
//
// A mutation the graph or the log rejects stops the closure and is
// returned wrapped; s then holds the rules applied up to that point, and
// with WithStack the log can still undo them.
func Kernelize(s *State, opts ...Option) (Result, error) {
	cfg := config{maxProbes: defaultMaxProbes}
	for _, opt := range opts {
		opt(&cfg)
	}
	res := Result{Applied: make(map[Rule]int)}
	if !s.Feasible {
		return res, nil
	}

	m := &mutator{g: s.Graph, log: cfg.log}
	closure(s, cfg, m, &res)
	if m.err != nil {
		return res, fmt.Errorf("kernel: Kernelize: %w", m.err)
	}

	return res, nil
}

// closure alternates local reduction, the budget check and forcing until
// nothing changes or m fails.
func closure(s *State, cfg config, m *mutator, res *Result) {
	for m.err == nil {
		reduce(s, m, res)
		if m.err != nil {
			return
		}
		if cfg.budget && !withinBudget(s) {
			s.Feasible = false

			return
		}
		if !cfg.budget || !cfg.forced || !force(s, m, cfg, res) {
			return
		}
	}
}

// hit records one application of r.
func (r *Result) hit(rule Rule) {
	r.Applied[rule]++
	r.Changed = true
}

// reduce runs the local rules to closure with a worklist. Vertices whose
// neighborhood changed are revisited.
func reduce(s *State, m *mutator, res *Result) {
	g := s.Graph
	verts := g.Vertices()
	work := make([]int, 0, len(verts))
	queued := make(map[int]bool, len(verts))
	push := func(v int) {
		if !queued[v] {
			queued[v] = true
			work = append(work, v)
		}
	}
	for i := len(verts) - 1; i >= 0; i-- {
		push(verts[i])
	}

	for len(work) > 0 && m.err == nil {
		v := work[len(work)-1]
		work = work[:len(work)-1]
		queued[v] = false
		if !g.HasVertex(v) {
			continue
		}

		switch d := g.Degree(v); {
		case g.HasLoop(v):
			nbrs := g.Neighbors(v)
			commit(s, m, v)
			res.hit(RuleLoop)
			pushAll(push, nbrs, v)
		case d <= 1:
			nbrs := g.Neighbors(v)
			m.deleteVertex(v)
			res.hit(RuleLowDegree)
			pushAll(push, nbrs, v)
		case d == 2:
			pair := g.NeighborList(v)
			m.deleteVertex(v)
			m.addEdge(pair[0], pair[1])
			res.hit(RuleDegreeTwo)
			push(pair[0])
			push(pair[1])
		default:
			capped := false
			for _, e := range g.IncidentEdges(v) {
				if e.Multiplicity > 2 {
					m.capMultiplicity(v, e.To, 2)
					res.hit(RuleMultiplicity)
					push(e.To)
					capped = true
				}
			}
			if capped {
				push(v)
			}
		}
	}
}

func pushAll(push func(int), vs []int, skip int) {
	for _, u := range vs {
		if u != skip {
			push(u)
		}
	}
}

// commit moves v from the graph into the solution and spends one unit of k.
func commit(s *State, m *mutator, v int) {
	m.deleteVertex(v)
	if m.err != nil {
		return
	}
	s.Solution = append(s.Solution, v)
	s.K--
}

// mutator applies rule mutations directly or through an action log. The
// first failure is kept in err and every later call is a no-op.
type mutator struct {
	g   *core.Graph
	log *action.Stack
	err error
}

func (m *mutator) deleteVertex(v int) {
	switch {
	case m.err != nil:
	case m.log == nil:
		if err := m.g.RemoveVertex(v); err != nil {
			m.err = fmt.Errorf("delete %d: %w", v, err)
		}
	default:
		m.err = m.log.Push(action.NewDeleteVertex(m.g, v))
	}
}

func (m *mutator) addEdge(u, v int) {
	switch {
	case m.err != nil:
	case m.log == nil:
		if err := m.g.AddEdge(u, v); err != nil {
			m.err = fmt.Errorf("add %d–%d: %w", u, v, err)
		}
	default:
		m.err = m.log.Push(action.NewAddEdge(m.g, u, v))
	}
}

func (m *mutator) capMultiplicity(u, v, limit int) {
	switch {
	case m.err != nil:
	case m.log == nil:
		if err := m.g.SetMultiplicity(u, v, limit); err != nil {
			m.err = fmt.Errorf("cap %d–%d at %d: %w", u, v, limit, err)
		}
	default:
		m.err = m.log.Push(action.NewCapMultiplicity(m.g, u, v, limit))
	}
}

// withinBudget reports whether the reduced graph can still have an FVS of
// size ≤ s.K. A false answer is a proof of infeasibility.
//
// With minimum degree ≥ 3, any FVS F of size ≤ k leaves a forest T with
// 3|T| ≤ 2(|T|−1) + e(F,T) and e(F,T) ≤ Δk, hence |V| < (Δ+1)k and
// |E| < 2Δk.
func withinBudget(s *State) bool {
	g := s.Graph
	switch {
	case s.K < 0:
		return false
	case s.K == 0:
		return g.EdgeCount() == 0
	case g.VertexCount() == 0 || g.MinDegree() < 3:
		return true
	}
	delta := g.MaxDegree()

	return g.VertexCount() < (delta+1)*s.K && g.EdgeCount() < 2*delta*s.K
}

// force probes candidates with the approximation and commits the first
// forced vertex. It reports whether a vertex was committed; it also clears
// s.Feasible when the approximation alone exceeds 2k.
func force(s *State, m *mutator, cfg config, res *Result) bool {
	g := s.Graph
	if s.K <= 0 || g.VertexCount() == 0 {
		return false
	}
	limit := float64(2*s.K + 1)
	if base := approx.Feedback(g); base.Weight >= limit {
		s.Feasible = false

		return false
	}

	for _, v := range probeOrder(g, cfg.maxProbes) {
		probe := approx.Feedback(g, approx.WithWeight(v, limit))
		if probe.Weight >= limit {
			commit(s, m, v)
			res.hit(RuleForced)

			return true
		}
	}

	return false
}

// probeOrder returns up to n vertices by degree descending, then ID.
func probeOrder(g *core.Graph, n int) []int {
	verts := g.Vertices()
	sort.SliceStable(verts, func(i, j int) bool {
		return g.Degree(verts[i]) > g.Degree(verts[j])
	})
	if n > 0 && len(verts) > n {
		verts = verts[:n]
	}

	return verts
}
