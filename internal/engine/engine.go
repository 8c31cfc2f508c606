package engine

import (
	"io"

	"github.com/rtandon/corebuf/internal/engine/buffer"
	"github.com/rtandon/corebuf/internal/engine/parseredit"
)

// Re-exported types so callers rarely need to import the sub-packages
// directly.
type (
	BufferID   = buffer.BufferID
	RevisionID = buffer.RevisionID
	LineEnding = buffer.LineEnding
	Point      = buffer.Point
	Range      = buffer.Range
	EditResult = buffer.EditResult
	MarkKind   = buffer.MarkKind
	MarkHandle = buffer.MarkHandle
	Snapshot   = buffer.Snapshot
	Iterator   = buffer.Iterator
	ParserEdit = parseredit.Edit
)

const (
	LF   = buffer.LF
	CRLF = buffer.CRLF
	CR   = buffer.CR
)

const (
	MarkBuildError    = buffer.MarkBuildError
	MarkSearchResult  = buffer.MarkSearchResult
	MarkHistoryAnchor = buffer.MarkHistoryAnchor
	MarkTest          = buffer.MarkTest
	MarkBookmark      = buffer.MarkBookmark
)

// Engine is the editor's text buffer core: a single thread-safe handle
// onto a Buffer and everything it owns (line table, byte-count tree,
// mark tree, undo history, pending parser edit log).
type Engine struct {
	buf *buffer.Buffer
}

// New creates an Engine, empty unless WithContent is given.
func New(opts ...Option) *Engine {
	cfg := config{}
	for _, opt := range opts {
		opt(&cfg)
	}
	b, err := buffer.NewFromString(cfg.content, cfg.bufferOpts...)
	if err != nil {
		// New has no error return; callers who might pass content with
		// invalid UTF-8 should use LoadUTF8 instead, which does.
		panic("engine: invalid UTF-8 in WithContent, use LoadUTF8 instead")
	}
	return &Engine{buf: b}
}

// LoadUTF8 creates an Engine from decoded UTF-8 text.
func LoadUTF8(text string, opts ...Option) (*Engine, error) {
	cfg := config{}
	for _, opt := range opts {
		opt(&cfg)
	}
	b, err := buffer.NewFromString(text, cfg.bufferOpts...)
	if err != nil {
		return nil, err
	}
	return &Engine{buf: b}, nil
}

// NewFromReader creates an Engine from the UTF-8 content of r.
func NewFromReader(r io.Reader, opts ...Option) (*Engine, error) {
	cfg := config{}
	for _, opt := range opts {
		opt(&cfg)
	}
	b, err := buffer.NewFromReader(r, cfg.bufferOpts...)
	if err != nil {
		return nil, err
	}
	return &Engine{buf: b}, nil
}

// SaveUTF8 writes the engine's current content to w as UTF-8.
func (e *Engine) SaveUTF8(w io.Writer) error {
	_, err := io.WriteString(w, e.buf.Text())
	return err
}

// Close releases the engine's resources. The current implementation
// holds nothing that outlives garbage collection; Close exists so
// callers have a stable lifecycle hook if that changes.
func (e *Engine) Close() error {
	return nil
}

// ID returns the engine's stable buffer identity.
func (e *Engine) ID() BufferID {
	return e.buf.ID()
}

// Revision returns the current RevisionID, incremented on every
// mutation.
func (e *Engine) Revision() RevisionID {
	return e.buf.Revision()
}

// Len returns the buffer's total length in bytes.
func (e *Engine) Len() int {
	return e.buf.Len()
}

// LineCount returns the number of lines in the buffer.
func (e *Engine) LineCount() int {
	return e.buf.LineCount()
}

// IsEmpty reports whether the buffer holds zero bytes.
func (e *Engine) IsEmpty() bool {
	return e.buf.IsEmpty()
}

// Text returns the buffer's full content as a string.
func (e *Engine) Text() string {
	return e.buf.Text()
}

// LineText returns the content of line i with its terminator stripped.
func (e *Engine) LineText(i int) (string, error) {
	return e.buf.LineText(i)
}

// Line is an alias for LineText, matching the shorter name a caller
// walking lines one at a time expects.
func (e *Engine) Line(i int) (string, error) {
	return e.buf.LineText(i)
}

// LenLines is an alias for LineCount.
func (e *Engine) LenLines() int {
	return e.buf.LineCount()
}

// TextRange returns the bytes in [r.Start, r.End).
func (e *Engine) TextRange(r Range) ([]byte, error) {
	return e.buf.TextRange(r)
}

// Read is an alias for TextRange.
func (e *Engine) Read(r Range) ([]byte, error) {
	return e.buf.TextRange(r)
}

// Clear replaces the entire buffer content with the empty string, as a
// single undoable edit.
func (e *Engine) Clear() (EditResult, error) {
	return e.buf.Clear()
}

// CheckPosition reports whether p names a real location in the buffer,
// failing with an error rather than clamping.
func (e *Engine) CheckPosition(p Point) error {
	return e.buf.CheckPosition(p)
}

// FixPosition clamps p to the nearest valid position in the buffer.
func (e *Engine) FixPosition(p Point) Point {
	return e.buf.FixPosition(p)
}

// Distance returns the approximate codepoint span between two points
// without materializing the buffer's text.
func (e *Engine) Distance(a, c Point) int {
	return e.buf.Distance(a, c)
}

// EndPosition returns the Point just past the buffer's last byte.
func (e *Engine) EndPosition() (Point, error) {
	return e.buf.OffsetToPoint(e.buf.Len())
}

// OffsetToPoint converts a byte offset to a codepoint Point.
func (e *Engine) OffsetToPoint(offset int) (Point, error) {
	return e.buf.OffsetToPoint(offset)
}

// PointToOffset converts a codepoint Point to a byte offset.
func (e *Engine) PointToOffset(p Point) (int, error) {
	return e.buf.PointToOffset(p)
}

// OffsetToGraphemePosition converts a byte offset to a (line, grapheme
// index) position.
func (e *Engine) OffsetToGraphemePosition(offset int) (int, int, error) {
	return e.buf.OffsetToGraphemePosition(offset)
}

// GraphemePositionToOffset converts a (line, grapheme index) position to
// a byte offset.
func (e *Engine) GraphemePositionToOffset(line, graphemeIdx int) (int, error) {
	return e.buf.GraphemePositionToOffset(line, graphemeIdx)
}

// VisualColumn returns the visual (tab-expanded) column of a Point.
func (e *Engine) VisualColumn(p Point) (int, error) {
	return e.buf.VisualColumn(p)
}

// PointFromVisualColumn returns the Point on line whose visual column is
// closest to (not exceeding) v.
func (e *Engine) PointFromVisualColumn(line, v int) (Point, error) {
	return e.buf.PointFromVisualColumn(line, v)
}

// Insert adds text at offset.
func (e *Engine) Insert(offset int, text string) (EditResult, error) {
	return e.buf.Insert(offset, []byte(text))
}

// Remove deletes the bytes in r.
func (e *Engine) Remove(r Range) (EditResult, error) {
	return e.buf.Delete(r)
}

// Replace atomically replaces the bytes in [start, end) with text.
func (e *Engine) Replace(start, end int, text string) (EditResult, error) {
	return e.buf.Replace(Range{Start: start, End: end}, []byte(text))
}

// BeginBatch opens a batch scope: every edit until the matching EndBatch
// coalesces into a single undo entry. Nested calls are reference-counted.
func (e *Engine) BeginBatch() {
	e.buf.BeginBatch()
}

// EndBatch closes one level of batch scope.
func (e *Engine) EndBatch() error {
	return e.buf.EndBatch()
}

// CancelBatch discards the batch scope's accumulated undo entries
// without committing them.
func (e *Engine) CancelBatch() {
	e.buf.CancelBatch()
}

// ForceUndoBoundary prevents the next edit from coalescing into the
// current undo entry.
func (e *Engine) ForceUndoBoundary() {
	e.buf.ForceNextUndoBoundary()
}

// Undo reverts the most recent undo entry.
func (e *Engine) Undo() ([]EditResult, error) {
	return e.buf.Undo()
}

// Redo reapplies the most recently undone entry.
func (e *Engine) Redo() ([]EditResult, error) {
	return e.buf.Redo()
}

// CanUndo reports whether Undo would succeed.
func (e *Engine) CanUndo() bool {
	return e.buf.CanUndo()
}

// CanRedo reports whether Redo would succeed.
func (e *Engine) CanRedo() bool {
	return e.buf.CanRedo()
}

// ClearHistory discards all undo/redo entries.
func (e *Engine) ClearHistory() {
	e.buf.ClearHistory()
}

// InsertMark creates a stable mark at offset.
func (e *Engine) InsertMark(offset int, kind MarkKind) MarkHandle {
	return e.buf.InsertMark(offset, kind)
}

// DeleteMark removes a mark.
func (e *Engine) DeleteMark(h MarkHandle) error {
	return e.buf.DeleteMark(h)
}

// MarkPosition returns the current byte offset of a mark, and whether it
// is still live.
func (e *Engine) MarkPosition(h MarkHandle) (int, bool) {
	return e.buf.MarkPosition(h)
}

// MarkValid reports whether h still refers to a live mark.
func (e *Engine) MarkValid(h MarkHandle) bool {
	_, ok := e.buf.MarkPosition(h)
	return ok
}

// Iterator returns a codepoint/grapheme iterator positioned at offset.
func (e *Engine) Iterator(offset int) (*Iterator, error) {
	return e.buf.Iterator(offset)
}

// Iter is an alias for Iterator.
func (e *Engine) Iter(offset int) (*Iterator, error) {
	return e.buf.Iterator(offset)
}

// IteratorWithFakeEnd returns an iterator that treats fakeEnd as the
// buffer's end, for a parser collaborator taking a consistent snapshot
// mid-edit.
func (e *Engine) IteratorWithFakeEnd(offset, fakeEnd int) (*Iterator, error) {
	return e.buf.IteratorWithFakeEnd(offset, fakeEnd)
}

// TakePendingEdits drains the edit records queued for the parser
// collaborator since the last call. The engine never invokes a parser
// itself; it only records what changed for one to drain on its own
// schedule.
func (e *Engine) TakePendingEdits() []ParserEdit {
	return e.buf.TakePendingEdits()
}

// Snapshot returns a self-consistent point-in-time view of the buffer's
// revision and text.
func (e *Engine) Snapshot() Snapshot {
	return e.buf.Snapshot()
}
