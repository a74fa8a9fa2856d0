// SPDX-License-Identifier: MIT
package kernel

import (
	"github.com/katalvlaran/fvs/action"
	"github.com/katalvlaran/fvs/core"
)

// Rule identifies a reduction rule.
type Rule int

// Reduction rules in the order they are tried on a vertex.
const (
	RuleLoop Rule = iota
	RuleLowDegree
	RuleDegreeTwo
	RuleMultiplicity
	RuleForced
)

var ruleNames = [...]string{
	RuleLoop:         "loop",
	RuleLowDegree:    "low_degree",
	RuleDegreeTwo:    "degree_two",
	RuleMultiplicity: "multiplicity",
	RuleForced:       "forced_vertex",
}

// String returns the metric-label form of r.
func (r Rule) String() string {
	if r < 0 || int(r) >= len(ruleNames) {
		return "unknown"
	}

	return ruleNames[r]
}

// Rules lists every rule, for callers that pre-register per-rule series.
func Rules() []Rule {
	return []Rule{RuleLoop, RuleLowDegree, RuleDegreeTwo, RuleMultiplicity, RuleForced}
}

// State is a reduction instance: the graph being reduced, the vertices
// committed to the solution so far, and the remaining budget.
type State struct {
	Graph    *core.Graph
	Solution []int
	K        int
	Feasible bool
}

// NewState wraps g with budget k. The state takes ownership of g.
func NewState(g *core.Graph, k int) *State {
	return &State{Graph: g, K: k, Feasible: true}
}

// Clone returns an independent deep copy of s.
func (s *State) Clone() *State {
	return &State{
		Graph:    s.Graph.Clone(),
		Solution: append([]int(nil), s.Solution...),
		K:        s.K,
		Feasible: s.Feasible,
	}
}

// Result summarizes one Kernelize call.
type Result struct {
	// Changed reports whether any rule fired.
	Changed bool
	// Applied counts rule applications.
	Applied map[Rule]int
}

// Option selects rule families.
type Option func(*config)

type config struct {
	budget    bool
	forced    bool
	maxProbes int
	log       *action.Stack
}

// defaultMaxProbes bounds forced-vertex probes per closure round.
const defaultMaxProbes = 32

// WithBudget enables the budget checks against State.K.
func WithBudget() Option {
	return func(c *config) { c.budget = true }
}

// WithForcedVertices enables the forced-vertex rule. It has no effect
// without WithBudget.
func WithForcedVertices() Option {
	return func(c *config) { c.forced = true }
}

// WithMaxForcedProbes limits how many vertices are probed per closure
// round. n ≤ 0 probes every vertex.
func WithMaxForcedProbes(n int) Option {
	return func(c *config) { c.maxProbes = n }
}

// WithStack routes every graph mutation through log, so the caller can
// revert a reduction with log.Unwind. Solution and K are not logged.
func WithStack(log *action.Stack) Option {
	return func(c *config) { c.log = log }
}
