// SPDX-License-Identifier: MIT
// Package metrics instruments the solver internals with Prometheus.
//
// A *Recorder is registered on a caller-supplied prometheus.Registerer, so
// tests and the CLI each own an isolated registry. Every method is safe on a
// nil *Recorder, which records nothing; algorithm packages take an optional
// recorder without branching on it.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "fvs"

// Recorder holds the solver metrics. Safe for concurrent use.
type Recorder struct {
	// Compressions counts compression steps run by the driver.
	Compressions prometheus.Counter

	// DisjointBranches counts branching nodes of the disjoint solver.
	DisjointBranches prometheus.Counter

	// RuleApplications counts kernel rule applications by rule.
	RuleApplications *prometheus.CounterVec

	// Components counts components handed to a per-component solver.
	Components prometheus.Counter

	// ComponentSolveSeconds measures the wall time of one component solve.
	ComponentSolveSeconds prometheus.Histogram
}

// NewRecorder creates the solver metrics and registers them on reg.
// It panics if a metric with the same name is already registered on reg,
// like promauto does.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	f := promauto.With(reg)

	return &Recorder{
		Compressions: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "compressions_total",
			Help:      "Total compression steps run by the iterative compression driver",
		}),
		DisjointBranches: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "disjoint_branches_total",
			Help:      "Total branching nodes explored by the disjoint FVS solver",
		}),
		RuleApplications: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "kernel_rule_applications_total",
			Help:      "Total kernel reduction rule applications by rule",
		}, []string{"rule"}),
		Components: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "components_total",
			Help:      "Total graph components solved independently",
		}),
		ComponentSolveSeconds: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "component_solve_seconds",
			Help:      "Wall time spent solving one component",
			Buckets:   []float64{0.001, 0.01, 0.05, 0.1, 0.5, 1, 5, 30, 120},
		}),
	}
}

// Compression records one compression step.
func (r *Recorder) Compression() {
	if r == nil {
		return
	}
	r.Compressions.Inc()
}

// DisjointBranch records one branching node.
func (r *Recorder) DisjointBranch() {
	if r == nil {
		return
	}
	r.DisjointBranches.Inc()
}

// RuleApplied adds n applications of rule.
func (r *Recorder) RuleApplied(rule string, n int) {
	if r == nil || n <= 0 {
		return
	}
	r.RuleApplications.WithLabelValues(rule).Add(float64(n))
}

// ComponentSolved records one solved component and its duration.
func (r *Recorder) ComponentSolved(d time.Duration) {
	if r == nil {
		return
	}
	r.Components.Inc()
	r.ComponentSolveSeconds.Observe(d.Seconds())
}
