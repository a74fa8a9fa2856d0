// SPDX-License-Identifier: MIT
// File: edge.go
// Role: edge-level actions used by contraction and multiplicity capping.
package action

import (
	"fmt"

	"github.com/katalvlaran/fvs/core"
)

// AddEdge adds one u–v edge; Revert removes exactly that edge.
type AddEdge struct {
	g         *core.Graph
	u, v      int
	performed bool
	stamp
}

// NewAddEdge returns an action adding one u–v edge to g. u == v adds a loop.
func NewAddEdge(g *core.Graph, u, v int) *AddEdge {
	return &AddEdge{g: g, u: u, v: v}
}

// Perform adds the edge. Both endpoints must already exist.
func (a *AddEdge) Perform() error {
	if a.performed {
		return fmt.Errorf("action: AddEdge(%d,%d): performed twice: %w", a.u, a.v, ErrStructuralViolation)
	}
	if !a.g.HasVertex(a.u) || !a.g.HasVertex(a.v) {
		return fmt.Errorf("action: AddEdge(%d,%d): endpoint absent: %w", a.u, a.v, ErrStructuralViolation)
	}
	if err := a.g.AddEdge(a.u, a.v); err != nil {
		return fmt.Errorf("action: AddEdge(%d,%d): %w", a.u, a.v, err)
	}
	a.performed = true

	return nil
}

// Revert removes the added edge.
func (a *AddEdge) Revert() error {
	if !a.performed {
		return fmt.Errorf("action: AddEdge(%d,%d): revert without perform: %w", a.u, a.v, ErrStructuralViolation)
	}
	if err := a.g.RemoveEdge(a.u, a.v); err != nil {
		return fmt.Errorf("action: AddEdge(%d,%d): %w: %w", a.u, a.v, ErrStructuralViolation, err)
	}
	a.performed = false
	a.gen = 0

	return nil
}

// CapMultiplicity lowers the u–v multiplicity to at most limit; Revert puts
// the removed parallel edges back.
type CapMultiplicity struct {
	g         *core.Graph
	u, v      int
	limit     int
	removed   int
	performed bool
	stamp
}

// NewCapMultiplicity returns an action capping the u–v bundle at limit.
func NewCapMultiplicity(g *core.Graph, u, v, limit int) *CapMultiplicity {
	return &CapMultiplicity{g: g, u: u, v: v, limit: limit}
}

// Removed reports how many parallel edges the last Perform dropped.
func (a *CapMultiplicity) Removed() int { return a.removed }

// Perform drops parallel edges above the limit. A bundle already within the
// limit is left untouched and Perform still succeeds.
func (a *CapMultiplicity) Perform() error {
	if a.performed {
		return fmt.Errorf("action: CapMultiplicity(%d,%d): performed twice: %w", a.u, a.v, ErrStructuralViolation)
	}
	if a.limit < 0 {
		return fmt.Errorf("action: CapMultiplicity(%d,%d): limit %d: %w", a.u, a.v, a.limit, core.ErrInvalidMultiplicity)
	}
	m := a.g.Multiplicity(a.u, a.v)
	a.removed = 0
	if m > a.limit {
		if err := a.g.SetMultiplicity(a.u, a.v, a.limit); err != nil {
			return fmt.Errorf("action: CapMultiplicity(%d,%d): %w", a.u, a.v, err)
		}
		a.removed = m - a.limit
	}
	a.performed = true

	return nil
}

// Revert restores the dropped parallel edges.
func (a *CapMultiplicity) Revert() error {
	if !a.performed {
		return fmt.Errorf("action: CapMultiplicity(%d,%d): revert without perform: %w", a.u, a.v, ErrStructuralViolation)
	}
	if a.removed > 0 {
		if err := a.g.AddEdges(a.u, a.v, a.removed); err != nil {
			return fmt.Errorf("action: CapMultiplicity(%d,%d): %w", a.u, a.v, err)
		}
	}
	a.performed = false
	a.gen = 0

	return nil
}
