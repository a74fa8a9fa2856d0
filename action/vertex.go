// SPDX-License-Identifier: MIT
// File: vertex.go
// Role: vertex deletions (single and batch) with captured incident edges.
package action

import (
	"fmt"

	"github.com/katalvlaran/fvs/core"
)

// DeleteVertex removes one vertex and restores it with all its edges on
// Revert.
type DeleteVertex struct {
	g         *core.Graph
	v         int
	edges     []core.Edge
	performed bool
	stamp
}

// NewDeleteVertex returns an action deleting v from g.
func NewDeleteVertex(g *core.Graph, v int) *DeleteVertex {
	return &DeleteVertex{g: g, v: v}
}

// Vertex returns the vertex this action deletes.
func (a *DeleteVertex) Vertex() int { return a.v }

// Perform captures v's incident edges and removes v.
func (a *DeleteVertex) Perform() error {
	if a.performed {
		return fmt.Errorf("action: DeleteVertex(%d): performed twice: %w", a.v, ErrStructuralViolation)
	}
	if !a.g.HasVertex(a.v) {
		return fmt.Errorf("action: DeleteVertex(%d): vertex absent: %w", a.v, ErrStructuralViolation)
	}
	a.edges = a.g.IncidentEdges(a.v)
	if err := a.g.RemoveVertex(a.v); err != nil {
		return fmt.Errorf("action: DeleteVertex(%d): %w", a.v, err)
	}
	a.performed = true

	return nil
}

// Revert reinserts v and every captured edge.
func (a *DeleteVertex) Revert() error {
	if !a.performed || a.g.HasVertex(a.v) {
		return fmt.Errorf("action: DeleteVertex(%d): revert without perform: %w", a.v, ErrStructuralViolation)
	}
	if err := neighborsPresent(a.g, a.edges, func(u int) bool { return u == a.v }); err != nil {
		return fmt.Errorf("action: DeleteVertex(%d): %w", a.v, err)
	}
	if err := a.g.AddVertex(a.v); err != nil {
		return fmt.Errorf("action: DeleteVertex(%d): %w", a.v, err)
	}
	if err := restore(a.g, a.edges); err != nil {
		return fmt.Errorf("action: DeleteVertex(%d): %w", a.v, err)
	}
	a.performed = false
	a.gen = 0

	return nil
}

// DeleteVertices removes a set of vertices in one step. Edges between two
// deleted vertices are captured once.
type DeleteVertices struct {
	g         *core.Graph
	vs        []int
	edges     []core.Edge
	performed bool
	stamp
}

// NewDeleteVertices returns an action deleting every vertex of vs from g.
// vs is copied.
func NewDeleteVertices(g *core.Graph, vs []int) *DeleteVertices {
	return &DeleteVertices{g: g, vs: append([]int(nil), vs...)}
}

// Vertices returns the vertices this action deletes.
func (a *DeleteVertices) Vertices() []int { return a.vs }

// Perform captures the combined incident-edge set and removes every vertex.
func (a *DeleteVertices) Perform() error {
	if a.performed {
		return fmt.Errorf("action: DeleteVertices: performed twice: %w", ErrStructuralViolation)
	}
	set := make(map[int]struct{}, len(a.vs))
	for _, v := range a.vs {
		if !a.g.HasVertex(v) {
			return fmt.Errorf("action: DeleteVertices: vertex %d absent: %w", v, ErrStructuralViolation)
		}
		if _, dup := set[v]; dup {
			return fmt.Errorf("action: DeleteVertices: vertex %d listed twice: %w", v, ErrStructuralViolation)
		}
		set[v] = struct{}{}
	}

	a.edges = a.edges[:0]
	for _, v := range a.vs {
		for _, e := range a.g.IncidentEdges(v) {
			if _, inner := set[e.To]; inner && e.To < v {
				continue // recorded from the smaller endpoint
			}
			a.edges = append(a.edges, e)
		}
	}
	for _, v := range a.vs {
		if err := a.g.RemoveVertex(v); err != nil {
			return fmt.Errorf("action: DeleteVertices: %w", err)
		}
	}
	a.performed = true

	return nil
}

// Revert reinserts every vertex and the captured edges.
func (a *DeleteVertices) Revert() error {
	if !a.performed {
		return fmt.Errorf("action: DeleteVertices: revert without perform: %w", ErrStructuralViolation)
	}
	set := make(map[int]struct{}, len(a.vs))
	for _, v := range a.vs {
		if a.g.HasVertex(v) {
			return fmt.Errorf("action: DeleteVertices: vertex %d reappeared: %w", v, ErrStructuralViolation)
		}
		set[v] = struct{}{}
	}
	inSet := func(u int) bool {
		_, ok := set[u]

		return ok
	}
	if err := neighborsPresent(a.g, a.edges, inSet); err != nil {
		return fmt.Errorf("action: DeleteVertices: %w", err)
	}
	for _, v := range a.vs {
		if err := a.g.AddVertex(v); err != nil {
			return fmt.Errorf("action: DeleteVertices: %w", err)
		}
	}
	if err := restore(a.g, a.edges); err != nil {
		return fmt.Errorf("action: DeleteVertices: %w", err)
	}
	a.performed = false
	a.gen = 0

	return nil
}

// neighborsPresent checks, before anything is re-added, that every far
// endpoint of edges is in g or is about to be restored itself.
func neighborsPresent(g *core.Graph, edges []core.Edge, restoring func(int) bool) error {
	for _, e := range edges {
		if !restoring(e.To) && !g.HasVertex(e.To) {
			return fmt.Errorf("neighbor %d missing: %w", e.To, ErrStructuralViolation)
		}
	}

	return nil
}

// restore re-adds captured edge bundles. Callers check the far endpoints
// first with neighborsPresent.
func restore(g *core.Graph, edges []core.Edge) error {
	for _, e := range edges {
		if err := g.AddEdges(e.From, e.To, e.Multiplicity); err != nil {
			return err
		}
	}

	return nil
}
