package marktree

import (
	"math"
	"testing"
)

func TestInsertAndPosition(t *testing.T) {
	tree := New()
	h := tree.Insert(42, KindBookmark)
	pos, ok := tree.Position(h)
	if !ok || pos != 42 {
		t.Fatalf("Position = %d, %v; want 42, true", pos, ok)
	}
	if k, ok := tree.Kind(h); !ok || k != KindBookmark {
		t.Fatalf("Kind = %v, %v; want KindBookmark, true", k, ok)
	}
}

func TestDeleteInvalidatesHandle(t *testing.T) {
	tree := New()
	h := tree.Insert(10, KindTest)
	if err := tree.Delete(h); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, ok := tree.Position(h); ok {
		t.Fatalf("Position should fail after Delete")
	}
	if err := tree.Delete(h); err != ErrMarkNotFound {
		t.Fatalf("second Delete: got %v, want ErrMarkNotFound", err)
	}
}

func TestCoincidentMarksShareNode(t *testing.T) {
	tree := New()
	a := tree.Insert(5, KindBookmark)
	b := tree.Insert(5, KindSearchResult)
	if tree.Count() != 1 {
		t.Fatalf("Count = %d, want 1 (shared node)", tree.Count())
	}
	kinds := tree.MarksAt(5)
	if len(kinds) != 2 {
		t.Fatalf("MarksAt(5) = %v, want 2 entries", kinds)
	}
	if err := tree.Delete(a); err != nil {
		t.Fatalf("Delete a: %v", err)
	}
	if _, ok := tree.Position(b); !ok {
		t.Fatalf("b should still resolve after a is deleted")
	}
	if tree.Count() != 1 {
		t.Fatalf("node should survive while b remains")
	}
	if err := tree.Delete(b); err != nil {
		t.Fatalf("Delete b: %v", err)
	}
	if tree.Count() != 0 {
		t.Fatalf("node should be gone once both marks are deleted")
	}
}

func TestApplyEditBeforeMark(t *testing.T) {
	tree := New()
	h := tree.Insert(100, KindBookmark)
	tree.ApplyEdit(10, 10, 15) // 5-byte insertion before the mark
	pos, _ := tree.Position(h)
	if pos != 105 {
		t.Fatalf("pos = %d, want 105", pos)
	}
}

func TestApplyEditAtMarkStaysPut(t *testing.T) {
	tree := New()
	h := tree.Insert(10, KindBookmark)
	tree.ApplyEdit(10, 10, 15) // insertion exactly at the mark
	pos, _ := tree.Position(h)
	if pos != 10 {
		t.Fatalf("pos = %d, want 10 (mark sticks before insertion)", pos)
	}
}

func TestApplyEditInsideDeletedRangeCollapses(t *testing.T) {
	tree := New()
	h := tree.Insert(15, KindBookmark) // inside [10, 20)
	tree.ApplyEdit(10, 20, 10)         // delete [10,20)
	pos, ok := tree.Position(h)
	if !ok || pos != 10 {
		t.Fatalf("pos, ok = %d, %v; want 10, true", pos, ok)
	}
}

func TestApplyEditAtOldEndMovesToNewEnd(t *testing.T) {
	tree := New()
	h := tree.Insert(20, KindBookmark) // exactly at old end
	tree.ApplyEdit(10, 20, 13)         // replace [10,20) with 3 bytes
	pos, _ := tree.Position(h)
	if pos != 13 {
		t.Fatalf("pos = %d, want 13", pos)
	}
}

// TestHeightBoundAfterManyInserts mirrors spec scenario S6: 1000 marks
// at strictly increasing positions must keep the tree within the AVL
// height bound of 1.44*log2(N+2), both right after insertion and again
// after deleting every other mark.
func TestHeightBoundAfterManyInserts(t *testing.T) {
	tree := New()
	var handles []Handle
	for i := 0; i < 1000; i++ {
		handles = append(handles, tree.Insert(i*2, KindTest))
	}
	if got, limit := height(tree.root), avlHeightBound(1000); got > limit {
		t.Fatalf("height = %d, want <= %d", got, limit)
	}

	for i := 0; i < len(handles); i += 2 {
		if err := tree.Delete(handles[i]); err != nil {
			t.Fatalf("Delete(%d): %v", i, err)
		}
	}
	remaining := tree.Count()
	if got, limit := height(tree.root), avlHeightBound(remaining); got > limit {
		t.Fatalf("after deletion height = %d, want <= %d", got, limit)
	}
	for i := 1; i < len(handles); i += 2 {
		if _, ok := tree.Position(handles[i]); !ok {
			t.Fatalf("handle %d should still be live", i)
		}
	}
}

func avlHeightBound(n int) int {
	return int(math.Ceil(1.44 * math.Log2(float64(n+2))))
}

func TestApplyEditPreservesRelativeOrderAndHandles(t *testing.T) {
	tree := New()
	var handles []Handle
	for _, p := range []int{0, 5, 10, 15, 20, 25, 30} {
		handles = append(handles, tree.Insert(p, KindTest))
	}
	tree.ApplyEdit(12, 18, 14) // replace 6 bytes with 4, inside the middle

	want := []int{0, 5, 10, 12, 16, 21, 26}
	for i, h := range handles {
		pos, ok := tree.Position(h)
		if !ok {
			t.Fatalf("handle %d lost", i)
		}
		if pos != want[i] {
			t.Errorf("handle %d pos = %d, want %d", i, pos, want[i])
		}
	}
}
