// SPDX-License-Identifier: MIT
package iterative

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/katalvlaran/fvs/metrics"
)

var (
	// ErrResourceExceeded: a solution too large to compress (more than
	// MaxCompressionSize vertices).
	ErrResourceExceeded = errors.New("iterative: resource exceeded")

	// ErrBudgetExceeded: the parameter outgrew the limit set by WithMaxK.
	ErrBudgetExceeded = errors.New("iterative: budget exceeded")

	// ErrInconsistent: the final solution does not leave a forest. This is
	// an internal error, never an expected outcome.
	ErrInconsistent = errors.New("iterative: inconsistent solution")
)

const (
	// MaxCompressionSize is the largest solution Compress enumerates.
	MaxCompressionSize = 64

	// DefaultWarnSize is the solution size above which Compress logs a warning.
	DefaultWarnSize = 32
)

// Order decides the sequence in which the driver reinserts vertices.
type Order int

const (
	// OrderNatural reinserts vertices by ascending ID.
	OrderNatural Order = iota
	// OrderDegreeAsc reinserts low-degree vertices first.
	OrderDegreeAsc
	// OrderDegreeDesc reinserts high-degree vertices first.
	OrderDegreeDesc
	// OrderApprox reinserts the members of an approximate FVS last.
	OrderApprox
)

var orderNames = [...]string{
	OrderNatural:    "natural",
	OrderDegreeAsc:  "degree-asc",
	OrderDegreeDesc: "degree-desc",
	OrderApprox:     "approx",
}

func (o Order) String() string {
	if o < 0 || int(o) >= len(orderNames) {
		return fmt.Sprintf("Order(%d)", int(o))
	}

	return orderNames[o]
}

// ParseOrder maps a name produced by Order.String back to its Order.
func ParseOrder(name string) (Order, error) {
	for i, n := range orderNames {
		if strings.EqualFold(n, name) {
			return Order(i), nil
		}
	}

	return OrderNatural, fmt.Errorf("iterative: unknown order %q", name)
}

// Result is the outcome of one driver run.
type Result struct {
	// Solution is a minimum FVS, sorted.
	Solution []int
	// K is the final parameter, equal to len(Solution).
	K int
	// Compressions counts successful compression steps.
	Compressions int
	// Reinsertions counts vertices popped back into the graph.
	Reinsertions int
}

// Option configures Compress and the Driver.
type Option func(*config)

type config struct {
	logger   *slog.Logger
	rec      *metrics.Recorder
	order    Order
	warnSize int
	maxK     int
}

func newConfig(opts []Option) config {
	c := config{logger: slog.Default(), warnSize: DefaultWarnSize, maxK: -1}
	for _, opt := range opts {
		opt(&c)
	}

	return c
}

// WithLogger sets the logger. The default is slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithRecorder reports compressions and branching to rec.
func WithRecorder(rec *metrics.Recorder) Option {
	return func(c *config) { c.rec = rec }
}

// WithOrder sets the reinsertion order. Compress ignores it.
func WithOrder(o Order) Option {
	return func(c *config) { c.order = o }
}

// WithWarnSize sets the solution size above which Compress warns.
// Values < 1 keep the default.
func WithWarnSize(n int) Option {
	return func(c *config) {
		if n >= 1 {
			c.warnSize = n
		}
	}
}

// WithMaxK stops the driver with ErrBudgetExceeded as soon as the minimum
// FVS of the reinserted part is known to exceed n. n < 0 means no limit.
func WithMaxK(n int) Option {
	return func(c *config) { c.maxK = n }
}
