// SPDX-License-Identifier: MIT
package action

import "errors"

// ErrStructuralViolation reports a mutation or revert that does not match
// the state of the graph or the log.
var ErrStructuralViolation = errors.New("action: structural violation")

// GraphAction is a reversible graph mutation.
//
// Perform may be called once; Revert undoes the most recent Perform and may
// only be called after it. Implementations snapshot whatever they need to
// undo at Perform time.
type GraphAction interface {
	Perform() error
	Revert() error
}

// stamp holds the log generation an action was pushed at. Zero means the
// action is not on any log. Revert clears it, so an action reverted and
// performed again behind the log's back no longer matches its entry.
type stamp struct{ gen uint64 }

func (s *stamp) stampPtr() *stamp { return s }

type stamped interface{ stampPtr() *stamp }
