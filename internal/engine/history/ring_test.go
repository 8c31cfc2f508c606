package history

import "testing"

func ins(start, end int, text string) Change {
	return Change{Type: ChangeInsert, Range: Range{start, start}, NewRange: Range{start, end}, NewText: []byte(text)}
}

func del(start, end int, text string) Change {
	return Change{Type: ChangeDelete, Range: Range{start, end}, NewRange: Range{start, start}, OldText: []byte(text)}
}

func TestCoalescesAdjacentInserts(t *testing.T) {
	r := NewRing(10)
	r.Push(ins(0, 1, "h"))
	r.Push(ins(1, 2, "e"))
	r.Push(ins(2, 3, "l"))
	if r.UndoCount() != 1 {
		t.Fatalf("UndoCount = %d, want 1 (coalesced)", r.UndoCount())
	}
	entry, err := r.Undo()
	if err != nil {
		t.Fatalf("Undo: %v", err)
	}
	if len(entry.Changes) != 1 || entry.Changes[0].Type != ChangeDelete {
		t.Fatalf("inverted entry = %+v, want a single delete", entry)
	}
	if string(entry.Changes[0].OldText) != "hel" {
		t.Fatalf("OldText = %q, want %q", entry.Changes[0].OldText, "hel")
	}
}

func TestNonAdjacentInsertsDoNotCoalesce(t *testing.T) {
	r := NewRing(10)
	r.Push(ins(0, 1, "a"))
	r.Push(ins(5, 6, "b"))
	if r.UndoCount() != 2 {
		t.Fatalf("UndoCount = %d, want 2", r.UndoCount())
	}
}

func TestForceNextEntryBreaksCoalescing(t *testing.T) {
	r := NewRing(10)
	r.Push(ins(0, 1, "a"))
	r.ForceNextEntry()
	r.Push(ins(1, 2, "b"))
	if r.UndoCount() != 2 {
		t.Fatalf("UndoCount = %d, want 2", r.UndoCount())
	}
}

func TestUndoRedoRoundTrip(t *testing.T) {
	r := NewRing(10)
	r.Push(ins(0, 5, "hello"))
	r.ForceNextEntry()
	r.Push(del(2, 4, "ll"))

	undo1, err := r.Undo()
	if err != nil {
		t.Fatalf("Undo: %v", err)
	}
	if undo1.Changes[0].Type != ChangeInsert {
		t.Fatalf("first undo should re-insert the deleted text")
	}

	redo1, err := r.Redo()
	if err != nil {
		t.Fatalf("Redo: %v", err)
	}
	if redo1.Changes[0].Type != ChangeDelete {
		t.Fatalf("redo should reapply the delete")
	}

	if _, err := r.Redo(); err != ErrNothingToRedo {
		t.Fatalf("expected ErrNothingToRedo, got %v", err)
	}
}

func TestPushAfterUndoDiscardsRedo(t *testing.T) {
	r := NewRing(10)
	r.Push(ins(0, 1, "a"))
	r.ForceNextEntry()
	r.Push(ins(10, 11, "b"))
	if _, err := r.Undo(); err != nil {
		t.Fatalf("Undo: %v", err)
	}
	if !r.CanRedo() {
		t.Fatalf("expected redo available before new push")
	}
	r.ForceNextEntry()
	r.Push(ins(20, 21, "c"))
	if r.CanRedo() {
		t.Fatalf("redo branch should be discarded after a new push")
	}
}

func TestCapacityEvictsOldest(t *testing.T) {
	r := NewRing(3)
	for i := 0; i < 5; i++ {
		r.ForceNextEntry()
		r.Push(ins(i, i+1, "x"))
	}
	if r.UndoCount() != 3 {
		t.Fatalf("UndoCount = %d, want 3 (capacity-bounded)", r.UndoCount())
	}
	// Undo all the way; the two oldest pushes should be gone.
	for i := 0; i < 3; i++ {
		if _, err := r.Undo(); err != nil {
			t.Fatalf("Undo %d: %v", i, err)
		}
	}
	if _, err := r.Undo(); err != ErrNothingToUndo {
		t.Fatalf("expected ErrNothingToUndo after exhausting ring, got %v", err)
	}
}

func TestBatchGroupsChangesAsOneEntry(t *testing.T) {
	r := NewRing(10)
	r.BeginBatch()
	r.BeginBatch() // nested
	r.Push(ins(0, 1, "a"))
	r.Push(del(5, 7, "xy"))
	if err := r.EndBatch(); err != nil {
		t.Fatalf("inner EndBatch: %v", err)
	}
	if r.UndoCount() != 0 {
		t.Fatalf("batch should not commit until outermost EndBatch")
	}
	if err := r.EndBatch(); err != nil {
		t.Fatalf("outer EndBatch: %v", err)
	}
	if r.UndoCount() != 1 {
		t.Fatalf("UndoCount = %d, want 1 (one grouped entry)", r.UndoCount())
	}
	entry, _ := r.Undo()
	if len(entry.Changes) != 2 {
		t.Fatalf("grouped entry has %d changes, want 2", len(entry.Changes))
	}
	// Inverted order: the delete's inverse undoes first.
	if entry.Changes[0].Type != ChangeInsert || entry.Changes[1].Type != ChangeDelete {
		t.Fatalf("unexpected inverted order: %+v", entry.Changes)
	}
}

func TestEndBatchWithoutBeginReturnsError(t *testing.T) {
	r := NewRing(10)
	if err := r.EndBatch(); err != ErrNoBatchOpen {
		t.Fatalf("got %v, want ErrNoBatchOpen", err)
	}
}
