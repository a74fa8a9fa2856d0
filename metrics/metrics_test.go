// SPDX-License-Identifier: MIT
package metrics_test

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fvs/metrics"
)

func TestRecorder_Counts(t *testing.T) {
	reg := prometheus.NewRegistry()
	r := metrics.NewRecorder(reg)

	r.Compression()
	r.Compression()
	r.DisjointBranch()
	r.RuleApplied("loop", 3)
	r.RuleApplied("loop", 0)
	r.RuleApplied("degree_two", 1)
	r.ComponentSolved(20 * time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(r.Compressions))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.DisjointBranches))
	assert.Equal(t, 3.0, testutil.ToFloat64(r.RuleApplications.WithLabelValues("loop")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.RuleApplications.WithLabelValues("degree_two")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.Components))

	n, err := testutil.GatherAndCount(reg, "fvs_component_solve_seconds")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestRecorder_NilIsNoop(t *testing.T) {
	var r *metrics.Recorder
	assert.NotPanics(t, func() {
		r.Compression()
		r.DisjointBranch()
		r.RuleApplied("loop", 1)
		r.ComponentSolved(time.Second)
	})
}

func TestRecorder_DuplicateRegistrationPanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics.NewRecorder(reg)
	assert.Panics(t, func() { metrics.NewRecorder(reg) })
}
