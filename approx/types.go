// SPDX-License-Identifier: MIT
package approx

// epsilon absorbs floating-point residue when weights are discharged.
const epsilon = 1e-9

// defaultWeight is the weight of every vertex not named by WithWeight.
const defaultWeight = 1.0

// WeightedVertex pairs a vertex with its residual weight for the duration of
// one Feedback call.
type WeightedVertex struct {
	ID     int
	Weight float64
}

// Option customizes a Feedback call.
type Option func(*config)

type config struct {
	weights map[int]float64
}

// WithWeight sets the weight of v. Non-positive weights are ignored, so the
// vertex keeps the default weight.
func WithWeight(v int, w float64) Option {
	return func(c *config) {
		if w <= 0 {
			return
		}
		if c.weights == nil {
			c.weights = make(map[int]float64)
		}
		c.weights[v] = w
	}
}

// weightOf returns the configured weight of v.
func (c *config) weightOf(v int) float64 {
	if w, ok := c.weights[v]; ok {
		return w
	}

	return defaultWeight
}

// Result is the outcome of Feedback.
type Result struct {
	// Vertices is the feedback vertex set, sorted ascending.
	Vertices []int
	// Weight is the sum of the original weights of Vertices.
	Weight float64
}
