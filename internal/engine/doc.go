// Package engine provides the editor's text buffer core as a single
// thread-safe facade over the buffer, history, and mark-tree
// sub-packages.
//
// # Architecture
//
// The engine is built on several sub-packages:
//
//   - codec: UTF-8/codepoint conversion and grapheme segmentation
//   - linetree: the byte-count tree mapping byte offsets to lines
//   - marktree: the AVL mark tree for stable logical positions
//   - buffer: the buffer core tying line table, byte-count tree, mark
//     tree, undo history, and the pending parser edit log together
//   - history: the fixed-capacity undo/redo ring
//   - parseredit: the queue of edit records an incremental parser drains
//
// # Thread Safety
//
// All Engine operations are thread-safe: reads take the buffer's read
// lock and never interleave with a partial edit, writes take the write
// lock and apply atomically across the line table, byte-count tree, mark
// tree, undo history, and parser edit log.
//
// # Basic Usage
//
//	e := engine.New()
//	e.Insert(0, "Hello, World!")
//	text := e.Text() // "Hello, World!"
//	e.Replace(7, 12, "Go") // "Hello, Go!"
//	e.Undo() // "Hello, World!"
//
// # Loading content
//
//	e := engine.New(engine.WithContent("initial content"))
//
//	f, _ := os.Open("file.txt")
//	defer f.Close()
//	e, _ := engine.NewFromReader(f)
//
// # Undo/Redo
//
//	e := engine.New()
//	e.Insert(0, "Hello")
//	e.ForceUndoBoundary() // otherwise the adjacent inserts coalesce
//	e.Insert(5, " World")
//	e.Undo() // removes " World"
//	e.Undo() // removes "Hello"
//	e.Redo() // restores "Hello"
//
// Group multiple edits into a single undo unit:
//
//	e.BeginBatch()
//	e.Replace(0, 5, "fn")
//	e.Insert(2, " main()")
//	e.EndBatch()
//	e.Undo() // undoes both edits at once
//
// # Marks
//
// Marks are stable logical positions that survive edits elsewhere in the
// buffer — cursors, bookmarks, search-result highlights, and the
// positions the undo history itself anchors to:
//
//	h := e.InsertMark(10, engine.MarkBookmark)
//	e.Insert(0, "prefix ")
//	pos, _ := e.MarkPosition(h) // shifted to 17
//
// # Parser bridge
//
// The engine never calls an incremental parser directly; it only queues
// edit records for one to drain on its own schedule:
//
//	edits := e.TakePendingEdits()
//
// # Position conversion
//
//	e := engine.New(engine.WithContent("line 1\nline 2"))
//	point, _ := e.OffsetToPoint(7) // Point{Line: 1, Column: 0}
//	offset, _ := e.PointToOffset(engine.Point{Line: 1, Column: 0}) // 7
//
// # Error Handling
//
// The package re-exports buffer's sentinel errors:
//
//   - ErrOffsetOutOfRange: invalid byte offset
//   - ErrRangeInvalid: invalid range (e.g., end < start)
//   - ErrLineOutOfRange: invalid line index
//   - ErrInvalidUTF8: malformed UTF-8 in loaded or inserted content
//   - ErrNothingToUndo / ErrNothingToRedo: history exhausted
//   - ErrReadOnly: write operation on a read-only engine
package engine
