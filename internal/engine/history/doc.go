// Package history implements the buffer's undo/redo ring: a fixed-
// capacity circular buffer of inverse change records, addressed by an
// oldest/newest/cursor triple rather than growing without bound. Once
// full, pushing a new entry silently evicts the oldest undoable entry —
// undo depth is bounded by design, not by the editor running out of
// memory mid-session.
//
// Adjacent pure-insert or pure-delete changes coalesce into a single
// entry (so that typing "hello" produces one undo step, not five), and a
// batch scope (BeginBatch/EndBatch) groups an arbitrary run of changes —
// possibly of mixed insert/delete/replace shape — into one atomic entry
// regardless of coalescing rules. Batches nest via a reference count:
// only the outermost EndBatch commits the group.
package history
