// SPDX-License-Identifier: MIT
// File: stack.go
// Role: LIFO action log with subroutine marks and per-entry generations.
package action

import "fmt"

// entry is one recorded action with the generation it was pushed at.
type entry struct {
	act GraphAction
	gen uint64
}

// Stack records performed actions so they can be reverted in reverse order.
// Generations only grow; every push gets a fresh one. The zero value is
// ready to use.
type Stack struct {
	entries []entry
	marks   []int
	gen     uint64
}

// NewStack returns an empty Stack.
func NewStack() *Stack { return &Stack{} }

// Push performs a and records it. A failed Perform leaves the log unchanged.
func (s *Stack) Push(a GraphAction) error {
	if err := a.Perform(); err != nil {
		return err
	}
	s.gen++
	if st, ok := a.(stamped); ok {
		st.stampPtr().gen = s.gen
	}
	s.entries = append(s.entries, entry{act: a, gen: s.gen})

	return nil
}

// Pop reverts the most recent action and returns it. Popping past the
// innermost subroutine mark is a structural violation, and so is an action
// whose generation no longer matches its entry: it was reverted outside the
// log since it was pushed.
func (s *Stack) Pop() (GraphAction, error) {
	if len(s.entries) <= s.floor() {
		return nil, fmt.Errorf("action: Pop: nothing above subroutine mark %d: %w", s.floor(), ErrStructuralViolation)
	}
	top := s.entries[len(s.entries)-1]
	if st, ok := top.act.(stamped); ok && st.stampPtr().gen != top.gen {
		return nil, fmt.Errorf("action: Pop: action generation %d, entry generation %d: %w",
			st.stampPtr().gen, top.gen, ErrStructuralViolation)
	}
	if err := top.act.Revert(); err != nil {
		return nil, fmt.Errorf("action: Pop: %w", err)
	}
	s.entries[len(s.entries)-1] = entry{}
	s.entries = s.entries[:len(s.entries)-1]

	return top.act, nil
}

// Peek returns the most recent action without reverting it, or nil.
func (s *Stack) Peek() GraphAction {
	if len(s.entries) == 0 {
		return nil
	}

	return s.entries[len(s.entries)-1].act
}

// StartSubroutine places a mark; entries pushed below it cannot be popped
// until StopSubroutine removes it.
func (s *Stack) StartSubroutine() {
	s.marks = append(s.marks, len(s.entries))
}

// StopSubroutine removes the innermost mark. Every entry pushed since the
// matching StartSubroutine must already be reverted.
func (s *Stack) StopSubroutine() error {
	if len(s.marks) == 0 {
		return fmt.Errorf("action: StopSubroutine: no open subroutine: %w", ErrStructuralViolation)
	}
	if n := len(s.entries) - s.floor(); n != 0 {
		return fmt.Errorf("action: StopSubroutine: %d actions not reverted: %w", n, ErrStructuralViolation)
	}
	s.marks = s.marks[:len(s.marks)-1]

	return nil
}

// Unwind reverts every action above the innermost mark (or the whole log
// when no subroutine is open) and reports how many it reverted.
func (s *Stack) Unwind() (int, error) {
	n := 0
	for len(s.entries) > s.floor() {
		if _, err := s.Pop(); err != nil {
			return n, err
		}
		n++
	}

	return n, nil
}

// Len returns the number of recorded actions.
func (s *Stack) Len() int { return len(s.entries) }

// IsEmpty reports whether the log holds no actions.
func (s *Stack) IsEmpty() bool { return len(s.entries) == 0 }

// Depth returns the number of open subroutines.
func (s *Stack) Depth() int { return len(s.marks) }

// Generation returns the generation of the most recent entry, or 0 for an
// empty log.
func (s *Stack) Generation() uint64 {
	if len(s.entries) == 0 {
		return 0
	}

	return s.entries[len(s.entries)-1].gen
}

// floor is the entry count at the innermost mark.
func (s *Stack) floor() int {
	if len(s.marks) == 0 {
		return 0
	}

	return s.marks[len(s.marks)-1]
}
