// SPDX-License-Identifier: MIT
package dfs

import "errors"

// VertexState represents the DFS visitation state of a vertex.
const (
	White = iota // White: the vertex has not been visited yet.
	Gray         // Gray: the vertex is on the current DFS path.
	Black        // Black: the vertex and all its descendants are explored.
)

// ErrGraphNil is returned when a nil *core.Graph is passed to a checked query.
var ErrGraphNil = errors.New("dfs: graph is nil")

// Allowed filters the vertices a query may use. A nil Allowed admits every
// vertex of the graph.
type Allowed func(v int) bool

// admits reports whether v passes the filter.
func (a Allowed) admits(v int) bool {
	return a == nil || a(v)
}

// frame is one level of the explicit DFS stack.
type frame struct {
	v      int
	parent int // -1 for a root
	nbrs   []int
	next   int
}
