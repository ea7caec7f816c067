package history

import "testing"

// addCmd adds delta to a shared counter. Commands with the same tag merge by
// summing deltas, mirroring how node moves coalesce in the editor.
type addCmd struct {
	target *int
	delta  int
	tag    string
	offset int
}

func (c *addCmd) Do()   { *c.target += c.delta; c.offset = c.delta }
func (c *addCmd) Undo() { *c.target -= c.offset }
func (c *addCmd) Merge(next Command) bool {
	n, ok := next.(*addCmd)
	if !ok || n.tag != c.tag {
		return false
	}
	// Absorb: undo our prior effect, then carry the combined delta.
	*c.target -= c.offset
	c.delta += n.delta
	return true
}
func (c *addCmd) Name() string { return c.tag }

func TestExecuteUndoRedo(t *testing.T) {
	var v int
	s := New()

	s.Execute(&addCmd{target: &v, delta: 1, tag: "a"})
	s.Execute(&addCmd{target: &v, delta: 10, tag: "b"})
	if v != 11 {
		t.Fatalf("v = %d, want 11", v)
	}

	if !s.Undo() {
		t.Fatal("Undo returned false")
	}
	if v != 1 {
		t.Fatalf("after undo v = %d, want 1", v)
	}

	if !s.Redo() {
		t.Fatal("Redo returned false")
	}
	if v != 11 {
		t.Fatalf("after redo v = %d, want 11", v)
	}
}

func TestUndoRedoBounds(t *testing.T) {
	var v int
	s := New()

	if s.Undo() {
		t.Error("Undo on empty stack returned true")
	}
	if s.Redo() {
		t.Error("Redo on empty stack returned true")
	}
	if s.CanUndo() || s.CanRedo() {
		t.Error("empty stack reports work to do")
	}

	s.Execute(&addCmd{target: &v, delta: 1, tag: "a"})
	if !s.CanUndo() || s.CanRedo() {
		t.Error("applied entry not reflected in CanUndo/CanRedo")
	}
	s.Undo()
	if s.CanUndo() || !s.CanRedo() {
		t.Error("undone entry not reflected in CanUndo/CanRedo")
	}
}

func TestExecuteTruncatesRedoTail(t *testing.T) {
	var v int
	s := New()

	s.Execute(&addCmd{target: &v, delta: 1, tag: "a"})
	s.Execute(&addCmd{target: &v, delta: 10, tag: "b"})
	s.Undo()
	s.Execute(&addCmd{target: &v, delta: 100, tag: "c"})

	if s.CanRedo() {
		t.Error("redo tail survived Execute")
	}
	if v != 101 {
		t.Fatalf("v = %d, want 101", v)
	}
	if s.Len() != 2 {
		t.Fatalf("Len = %d, want 2", s.Len())
	}
}

func TestExecuteMerges(t *testing.T) {
	var v int
	s := New()

	s.Execute(&addCmd{target: &v, delta: 1, tag: "move"})
	s.Execute(&addCmd{target: &v, delta: 2, tag: "move"})
	s.Execute(&addCmd{target: &v, delta: 4, tag: "move"})

	if s.Len() != 1 {
		t.Fatalf("Len = %d, want 1 after merging", s.Len())
	}
	if v != 7 {
		t.Fatalf("v = %d, want 7", v)
	}

	// One undo reverts the whole coalesced run.
	s.Undo()
	if v != 0 {
		t.Fatalf("after undo v = %d, want 0", v)
	}
}

func TestMergeOnlyAtCursor(t *testing.T) {
	var v int
	s := New()

	s.Execute(&addCmd{target: &v, delta: 1, tag: "move"})
	s.Undo()
	s.Execute(&addCmd{target: &v, delta: 2, tag: "move"})

	// The undone entry was truncated, not merged into.
	if s.Len() != 1 {
		t.Fatalf("Len = %d, want 1", s.Len())
	}
	if v != 2 {
		t.Fatalf("v = %d, want 2", v)
	}
}

func TestClear(t *testing.T) {
	var v int
	s := New()
	s.Execute(&addCmd{target: &v, delta: 1, tag: "a"})
	s.Clear()
	if s.CanUndo() || s.CanRedo() || s.Len() != 0 {
		t.Error("Clear left state behind")
	}
}
