// Package parseredit queues the edit records a buffer emits for its
// incremental parser collaborator to consume. The buffer never calls the
// parser directly — it only appends a compact (byte range, point range)
// tuple per edit to a bounded log, which the parser drains and applies to
// its own tree on its own schedule.
//
// A batch of edits (see buffer.BeginBatch) is flushed as a single
// contiguous run so the parser can choose to re-parse once for the whole
// batch instead of once per edit.
package parseredit
