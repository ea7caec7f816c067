// Package history implements a linear undo/redo stack over reversible
// commands. Executing a command while undone entries exist discards them,
// so the stack is always a single timeline with a cursor.
package history

// Command is a reversible edit. Do applies the command and Undo reverts it;
// both must be safe to call repeatedly in alternation. Merge lets a command
// absorb an incoming one of the same shape (consecutive moves of one node),
// keeping the undo timeline coarse enough to be usable.
type Command interface {
	// Do applies the command's effect.
	Do()
	// Undo reverts the effect of the most recent Do.
	Undo()
	// Merge absorbs next into the receiver and reports whether it did.
	// A merged receiver re-runs Do; next is discarded.
	Merge(next Command) bool
	// Name identifies the command type for merge checks and logging.
	Name() string
}

// Stack is a linear command history. Create one with [New].
type Stack struct {
	entries []Command
	// cursor indexes the last applied entry, -1 when everything is undone.
	cursor int
}

// New returns an empty stack.
func New() *Stack {
	return &Stack{cursor: -1}
}

// Execute runs cmd and records it. Any undone tail is discarded first. If
// the entry at the cursor accepts a merge, cmd is absorbed into it and the
// merged entry re-applies; otherwise cmd is appended and applied.
func (s *Stack) Execute(cmd Command) {
	s.entries = s.entries[:s.cursor+1]

	if s.cursor >= 0 {
		prev := s.entries[s.cursor]
		if prev.Name() == cmd.Name() && prev.Merge(cmd) {
			prev.Do()
			return
		}
	}

	s.entries = append(s.entries, cmd)
	s.cursor++
	cmd.Do()
}

// Undo reverts the entry at the cursor and moves the cursor back.
// It reports whether anything was undone.
func (s *Stack) Undo() bool {
	if s.cursor < 0 {
		return false
	}
	s.entries[s.cursor].Undo()
	s.cursor--
	return true
}

// Redo re-applies the entry past the cursor and advances the cursor.
// It reports whether anything was redone.
func (s *Stack) Redo() bool {
	if s.cursor >= len(s.entries)-1 {
		return false
	}
	s.cursor++
	s.entries[s.cursor].Do()
	return true
}

// CanUndo reports whether an applied entry exists.
func (s *Stack) CanUndo() bool { return s.cursor >= 0 }

// CanRedo reports whether an undone entry exists.
func (s *Stack) CanRedo() bool { return s.cursor < len(s.entries)-1 }

// Len returns the number of recorded entries, applied or not.
func (s *Stack) Len() int { return len(s.entries) }

// Clear drops the whole history.
func (s *Stack) Clear() {
	s.entries = nil
	s.cursor = -1
}
