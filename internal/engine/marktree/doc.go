// Package marktree implements the mark tree: a self-balancing AVL tree,
// keyed by byte offset, that holds stable logical positions ("marks") which
// survive edits elsewhere in the buffer.
//
// A mark is not a raw offset. It is a handle into the tree that the buffer
// core updates in place whenever an edit lands on or around it, following
// the same region rules a text editor applies to cursors, search-result
// highlights, and bookmarks: a mark strictly before an edit is untouched, a
// mark strictly after is shifted by the edit's length delta, and a mark
// inside a deleted or replaced range collapses to the edit's boundary.
//
// Several marks can legitimately sit at the same byte offset (a cursor and
// a bookmark can coincide); each tree node therefore holds a small linked
// chain of marks rather than a single one.
//
// Basic usage:
//
//	tree := marktree.New()
//	m := tree.Insert(42, marktree.KindBookmark)
//	tree.ApplyEdit(10, 10, 15) // a 5-byte insertion at offset 10
//	pos, ok := tree.Position(m) // pos == 47
//	tree.Delete(m)
package marktree
