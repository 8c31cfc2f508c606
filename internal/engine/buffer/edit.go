package buffer

import (
	"github.com/rtandon/corebuf/internal/engine/codec"
	"github.com/rtandon/corebuf/internal/engine/history"
	"github.com/rtandon/corebuf/internal/engine/parseredit"
)

// Insert adds data at offset.
func (b *Buffer) Insert(offset int, data []byte) (EditResult, error) {
	return b.Replace(Range{Start: offset, End: offset}, data)
}

// Delete removes the bytes in r.
func (b *Buffer) Delete(r Range) (EditResult, error) {
	return b.Replace(r, nil)
}

// spliceResult carries everything both Replace and the undo/redo replay
// path need after mutating the line table and byte-count tree.
type spliceResult struct {
	oldText     []byte
	newRange    Range
	startPoint  Point
	oldEndPoint Point
	newEndPoint Point
}

// spliceLocked replaces the bytes in r with newText across the line
// table and byte-count tree, and propagates the edit to the mark tree.
// Caller holds b.mu for writing.
func (b *Buffer) spliceLocked(r Range, newText []byte) (spliceResult, error) {
	total := b.lineBytes.TotalBytes()
	if r.Start < 0 || r.End > total || r.Start > r.End {
		return spliceResult{}, ErrRangeInvalid
	}
	newCPs, err := codec.Decode(newText)
	if err != nil {
		return spliceResult{}, ErrInvalidUTF8
	}

	startLine, startRem := b.lineBytes.ByteToLine(r.Start)
	endLine, endRem := b.lineBytes.ByteToLine(r.End)
	startCol := columnFromByteOffset(b.lines[startLine], startRem)
	endCol := columnFromByteOffset(b.lines[endLine], endRem)

	startPoint := Point{Line: startLine, Column: startCol}
	oldEndPoint := Point{Line: endLine, Column: endCol}

	oldText, err := b.textRangeLocked(r)
	if err != nil {
		return spliceResult{}, err
	}

	prefix := b.lines[startLine][:startCol]
	suffix := b.lines[endLine][endCol:]
	combined := make([]codec.Codepoint, 0, len(prefix)+len(newCPs)+len(suffix))
	combined = append(combined, prefix...)
	combined = append(combined, newCPs...)
	combined = append(combined, suffix...)
	newSegment := splitLinesKeepingTerminators(combined)

	newLines := make([][]codec.Codepoint, 0, len(b.lines)-(endLine-startLine+1)+len(newSegment))
	newLines = append(newLines, b.lines[:startLine]...)
	newLines = append(newLines, newSegment...)
	newLines = append(newLines, b.lines[endLine+1:]...)

	removeCount := endLine - startLine + 1
	for i := 0; i < removeCount; i++ {
		b.lineBytes.Remove(startLine)
	}
	for i, l := range newSegment {
		b.lineBytes.Insert(startLine+i, lineByteLen(l))
	}
	b.lines = newLines

	newRange := Range{Start: r.Start, End: r.Start + len(newText)}
	b.marks.ApplyEdit(r.Start, r.End, newRange.End)
	b.revision = nextRevisionID()

	newEndPoint, err := b.offsetToPointLocked(newRange.End)
	if err != nil {
		newEndPoint = startPoint
	}

	return spliceResult{
		oldText:     oldText,
		newRange:    newRange,
		startPoint:  startPoint,
		oldEndPoint: oldEndPoint,
		newEndPoint: newEndPoint,
	}, nil
}

// Replace atomically replaces the bytes in r with newText. The line
// table, byte-count tree, mark tree, undo history, and pending parser
// edit log all move together under one lock acquisition, or not at all.
func (b *Buffer) Replace(r Range, newText []byte) (EditResult, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.readOnly {
		return EditResult{}, ErrReadOnly
	}

	res, err := b.spliceLocked(r, newText)
	if err != nil {
		return EditResult{}, err
	}

	changeType := history.ChangeReplace
	switch {
	case r.IsEmpty():
		changeType = history.ChangeInsert
	case len(newText) == 0:
		changeType = history.ChangeDelete
	}
	b.history.Push(history.Change{
		Type:     changeType,
		Range:    history.Range{Start: r.Start, End: r.End},
		NewRange: history.Range{Start: res.newRange.Start, End: res.newRange.End},
		OldText:  res.oldText,
		NewText:  append([]byte{}, newText...),
	})

	b.parserLog.Push(parseredit.Edit{
		StartByte:   r.Start,
		OldEndByte:  r.End,
		NewEndByte:  res.newRange.End,
		StartPoint:  parseredit.Point{Line: res.startPoint.Line, Column: res.startPoint.Column},
		OldEndPoint: parseredit.Point{Line: res.oldEndPoint.Line, Column: res.oldEndPoint.Column},
		NewEndPoint: parseredit.Point{Line: res.newEndPoint.Line, Column: res.newEndPoint.Column},
	})

	return EditResult{
		OldRange: r,
		NewRange: res.newRange,
		OldText:  res.oldText,
		Revision: b.revision,
	}, nil
}

// replaceNoHistoryLocked performs the same splice Replace does but skips
// pushing to the undo ring, since the caller (Undo/Redo) drives the ring
// directly. It still appends to the parser edit log — the parser must
// see undo/redo edits too.
func (b *Buffer) replaceNoHistoryLocked(r Range, newText []byte) (EditResult, error) {
	res, err := b.spliceLocked(r, newText)
	if err != nil {
		return EditResult{}, err
	}
	b.parserLog.Push(parseredit.Edit{
		StartByte:   r.Start,
		OldEndByte:  r.End,
		NewEndByte:  res.newRange.End,
		StartPoint:  parseredit.Point{Line: res.startPoint.Line, Column: res.startPoint.Column},
		OldEndPoint: parseredit.Point{Line: res.oldEndPoint.Line, Column: res.oldEndPoint.Column},
		NewEndPoint: parseredit.Point{Line: res.newEndPoint.Line, Column: res.newEndPoint.Column},
	})
	return EditResult{OldRange: r, NewRange: res.newRange, OldText: res.oldText, Revision: b.revision}, nil
}

// BeginBatch opens a batch scope: every edit until the matching
// EndBatch is coalesced into a single undo entry, regardless of the
// usual adjacency-based coalescing rules. Nested calls are
// reference-counted.
func (b *Buffer) BeginBatch() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.history.BeginBatch()
}

// EndBatch closes one level of batch scope.
func (b *Buffer) EndBatch() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.history.EndBatch()
}

// CancelBatch discards the batch scope's accumulated undo entries
// without committing them. The edits already applied to the buffer's
// content are NOT reverted, and they can no longer be undone: a following
// Undo reverts the entry recorded before the batch opened.
func (b *Buffer) CancelBatch() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.history.CancelBatch()
}

// Undo reverts the most recent undo entry, returning the EditResult of
// every change it took to do so (more than one if it was a batch).
func (b *Buffer) Undo() ([]EditResult, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	entry, err := b.history.Undo()
	if err != nil {
		return nil, err
	}
	return b.applyEntryChangesLocked(entry)
}

// Redo reapplies the most recently undone entry.
func (b *Buffer) Redo() ([]EditResult, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	entry, err := b.history.Redo()
	if err != nil {
		return nil, err
	}
	return b.applyEntryChangesLocked(entry)
}

func (b *Buffer) applyEntryChangesLocked(entry history.Entry) ([]EditResult, error) {
	results := make([]EditResult, 0, len(entry.Changes))
	for _, c := range entry.Changes {
		res, err := b.replaceNoHistoryLocked(Range{Start: c.Range.Start, End: c.Range.End}, c.NewText)
		if err != nil {
			return results, err
		}
		results = append(results, res)
	}
	return results, nil
}

// ForceNextUndoBoundary prevents the next edit from coalescing into the
// current undo entry, even if it would otherwise qualify (for example,
// two adjacent inserts). Callers use this at a natural boundary such as
// a cursor move between two typing bursts.
func (b *Buffer) ForceNextUndoBoundary() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.history.ForceNextEntry()
}

// CanUndo reports whether Undo would succeed.
func (b *Buffer) CanUndo() bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.history.CanUndo()
}

// CanRedo reports whether Redo would succeed.
func (b *Buffer) CanRedo() bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.history.CanRedo()
}

// ClearHistory discards all undo/redo entries.
func (b *Buffer) ClearHistory() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.history.Clear()
}

// InsertMark creates a stable mark at offset.
func (b *Buffer) InsertMark(offset int, kind MarkKind) MarkHandle {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.marks.Insert(offset, kind)
}

// DeleteMark removes a mark.
func (b *Buffer) DeleteMark(h MarkHandle) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.marks.Delete(h)
}

// MarkPosition returns the current byte offset of a mark.
func (b *Buffer) MarkPosition(h MarkHandle) (int, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.marks.Position(h)
}

// TakePendingEdits drains the edit records queued for the parser
// collaborator since the last call. While a batch is open it returns nil
// and keeps the records queued; they are drained by the first call after
// the outermost EndBatch.
func (b *Buffer) TakePendingEdits() []parseredit.Edit {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.history.InBatch() {
		return nil
	}
	return b.parserLog.TakePending()
}
