package engine

import (
	"strings"
	"testing"
)

func TestNewWithContent(t *testing.T) {
	e := New(WithContent("hello"))
	if e.Text() != "hello" {
		t.Fatalf("Text = %q, want hello", e.Text())
	}
}

func TestLoadUTF8RejectsInvalidBytes(t *testing.T) {
	if _, err := LoadUTF8(string([]byte{0xff, 0xfe})); err != ErrInvalidUTF8 {
		t.Fatalf("LoadUTF8 with invalid UTF-8: got %v, want ErrInvalidUTF8", err)
	}
}

func TestNewFromReaderAndSaveUTF8RoundTrip(t *testing.T) {
	e, err := NewFromReader(strings.NewReader("round trip"))
	if err != nil {
		t.Fatalf("NewFromReader: %v", err)
	}
	var sb strings.Builder
	if err := e.SaveUTF8(&sb); err != nil {
		t.Fatalf("SaveUTF8: %v", err)
	}
	if sb.String() != "round trip" {
		t.Fatalf("SaveUTF8 wrote %q, want %q", sb.String(), "round trip")
	}
}

// TestScenarioTypeAndUndo exercises inserting text incrementally (as a
// user typing would), then walking it back with Undo, matching the
// facade's documented Undo/Redo example.
func TestScenarioTypeAndUndo(t *testing.T) {
	e := New()
	if _, err := e.Insert(0, "Hello"); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	e.ForceUndoBoundary()
	if _, err := e.Insert(5, " World"); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if e.Text() != "Hello World" {
		t.Fatalf("Text = %q, want %q", e.Text(), "Hello World")
	}

	if _, err := e.Undo(); err != nil {
		t.Fatalf("Undo: %v", err)
	}
	if e.Text() != "Hello" {
		t.Fatalf("after Undo Text = %q, want %q", e.Text(), "Hello")
	}

	if _, err := e.Undo(); err != nil {
		t.Fatalf("Undo: %v", err)
	}
	if e.Text() != "" {
		t.Fatalf("after second Undo Text = %q, want empty", e.Text())
	}
	if e.CanUndo() {
		t.Fatalf("CanUndo after exhausting history should be false")
	}
	if _, err := e.Undo(); err != ErrNothingToUndo {
		t.Fatalf("Undo past the oldest entry: got %v, want ErrNothingToUndo", err)
	}

	if _, err := e.Redo(); err != nil {
		t.Fatalf("Redo: %v", err)
	}
	if _, err := e.Redo(); err != nil {
		t.Fatalf("Redo: %v", err)
	}
	if e.Text() != "Hello World" {
		t.Fatalf("after redoing both Text = %q, want %q", e.Text(), "Hello World")
	}
}

// TestScenarioBatchEditUndoesTogether mirrors an IDE-style multi-step
// refactor (e.g. a rename touching several spots) being undone as a
// single unit.
func TestScenarioBatchEditUndoesTogether(t *testing.T) {
	e := New(WithContent("let x = 1;"))
	e.BeginBatch()
	if _, err := e.Replace(4, 5, "count"); err != nil {
		t.Fatalf("Replace: %v", err)
	}
	if _, err := e.Insert(0, "// rename\n"); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if err := e.EndBatch(); err != nil {
		t.Fatalf("EndBatch: %v", err)
	}

	want := "// rename\nlet count = 1;"
	if e.Text() != want {
		t.Fatalf("Text = %q, want %q", e.Text(), want)
	}

	if _, err := e.Undo(); err != nil {
		t.Fatalf("Undo: %v", err)
	}
	if e.Text() != "let x = 1;" {
		t.Fatalf("after batch Undo Text = %q, want original", e.Text())
	}
}

// TestScenarioMarksSurviveEditsElsewhere exercises a mark (standing in
// for a cursor or bookmark) shifting correctly as an edit lands before
// it and a deletion starts exactly at it.
func TestScenarioMarksSurviveEditsElsewhere(t *testing.T) {
	e := New(WithContent("0123456789"))
	h := e.InsertMark(5, MarkBookmark)

	if _, err := e.Insert(0, "abc"); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	pos, ok := e.MarkPosition(h)
	if !ok || pos != 8 {
		t.Fatalf("mark position after prefix insert = %d, %v; want 8, true", pos, ok)
	}

	if _, err := e.Remove(Range{Start: 8, End: 10}); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	pos, ok = e.MarkPosition(h)
	if !ok || pos != 8 {
		t.Fatalf("mark position after deletion starting at mark = %d, %v; want 8, true", pos, ok)
	}

	if err := e.DeleteMark(h); err != nil {
		t.Fatalf("DeleteMark: %v", err)
	}
	if _, ok := e.MarkPosition(h); ok {
		t.Fatalf("mark should be invalid after DeleteMark")
	}
}

// TestScenarioParserBridgeDrainsQueuedEdits exercises the
// edit-record queue a parser collaborator drains, confirming each
// mutation is recorded exactly once and the queue empties after
// draining.
func TestScenarioParserBridgeDrainsQueuedEdits(t *testing.T) {
	e := New(WithContent("line one\nline two\n"))
	if _, err := e.Insert(0, "// comment\n"); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if _, err := e.Replace(0, 2, "/*"); err != nil {
		t.Fatalf("Replace: %v", err)
	}

	edits := e.TakePendingEdits()
	if len(edits) != 2 {
		t.Fatalf("TakePendingEdits returned %d edits, want 2", len(edits))
	}
	if more := e.TakePendingEdits(); len(more) != 0 {
		t.Fatalf("TakePendingEdits after drain returned %d edits, want 0", len(more))
	}
}

func TestScenarioMultilineCoordinateConversion(t *testing.T) {
	e := New(WithContent("line 1\nline 2\nline 3"))
	p, err := e.OffsetToPoint(7)
	if err != nil {
		t.Fatalf("OffsetToPoint: %v", err)
	}
	if p != (Point{Line: 1, Column: 0}) {
		t.Fatalf("OffsetToPoint(7) = %v, want {1 0}", p)
	}
	off, err := e.PointToOffset(p)
	if err != nil {
		t.Fatalf("PointToOffset: %v", err)
	}
	if off != 7 {
		t.Fatalf("PointToOffset round trip = %d, want 7", off)
	}
	if e.LineCount() != 3 {
		t.Fatalf("LineCount = %d, want 3", e.LineCount())
	}
	end, err := e.EndPosition()
	if err != nil {
		t.Fatalf("EndPosition: %v", err)
	}
	if end != (Point{Line: 2, Column: 6}) {
		t.Fatalf("EndPosition = %v, want {2 6}", end)
	}
}

func TestScenarioReadOnlyRejectsEdit(t *testing.T) {
	e := New(WithContent("frozen"), WithReadOnly())
	if _, err := e.Insert(0, "x"); err != ErrReadOnly {
		t.Fatalf("Insert on read-only engine: got %v, want ErrReadOnly", err)
	}
}

func TestScenarioIteratorWalksCodepoints(t *testing.T) {
	e := New(WithContent("ab"))
	it, err := e.Iterator(0)
	if err != nil {
		t.Fatalf("Iterator: %v", err)
	}
	var out []rune
	for !it.EOF() {
		c, ok := it.Next()
		if !ok {
			break
		}
		out = append(out, rune(c))
	}
	if string(out) != "ab" {
		t.Fatalf("iterator produced %q, want %q", string(out), "ab")
	}
}

func TestScenarioMarkValidAndClear(t *testing.T) {
	e := New(WithContent("abc"))
	h := e.InsertMark(1, MarkTest)
	if !e.MarkValid(h) {
		t.Fatalf("MarkValid should be true right after InsertMark")
	}
	if _, err := e.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if e.Text() != "" {
		t.Fatalf("Text after Clear = %q, want empty", e.Text())
	}
	if err := e.DeleteMark(h); err != nil {
		t.Fatalf("DeleteMark: %v", err)
	}
	if e.MarkValid(h) {
		t.Fatalf("MarkValid should be false after DeleteMark")
	}
}

func TestScenarioFixPositionAndAliases(t *testing.T) {
	e := New(WithContent("line one\nline two"))
	if e.LenLines() != 2 {
		t.Fatalf("LenLines = %d, want 2", e.LenLines())
	}
	line, err := e.Line(0)
	if err != nil || line != "line one" {
		t.Fatalf("Line(0) = %q, %v; want %q, nil", line, err, "line one")
	}
	it, err := e.Iter(0)
	if err != nil {
		t.Fatalf("Iter: %v", err)
	}
	if it.BOF() != true {
		t.Fatalf("new iterator should be at BOF")
	}
	got := e.FixPosition(Point{Line: 99, Column: 0})
	if got.Line != 1 {
		t.Fatalf("FixPosition clamped line = %d, want 1", got.Line)
	}
	if err := e.CheckPosition(Point{Line: 5, Column: 0}); err != ErrLineOutOfRange {
		t.Fatalf("CheckPosition: got %v, want ErrLineOutOfRange", err)
	}
}

func TestScenarioHistoryCapacityEvictsOldest(t *testing.T) {
	e := New(WithHistoryCapacity(2))
	e.Insert(0, "a")
	e.ForceUndoBoundary()
	e.Insert(1, "b")
	e.ForceUndoBoundary()
	e.Insert(2, "c")

	if _, err := e.Undo(); err != nil {
		t.Fatalf("Undo: %v", err)
	}
	if _, err := e.Undo(); err != nil {
		t.Fatalf("Undo: %v", err)
	}
	// Capacity 2 means the oldest entry (inserting "a") was evicted; a
	// third Undo should have nothing left to revert.
	if _, err := e.Undo(); err != ErrNothingToUndo {
		t.Fatalf("Undo past evicted history: got %v, want ErrNothingToUndo", err)
	}
}
