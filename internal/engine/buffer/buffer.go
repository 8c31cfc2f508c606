package buffer

import (
	"io"
	"sync/atomic"

	"github.com/segmentio/ksuid"

	"github.com/rtandon/corebuf/internal/engine/codec"
	"github.com/rtandon/corebuf/internal/engine/history"
	"github.com/rtandon/corebuf/internal/engine/linetree"
	"github.com/rtandon/corebuf/internal/engine/marktree"
	"github.com/rtandon/corebuf/internal/engine/parseredit"
)

// BufferID uniquely identifies a Buffer for its lifetime. Unlike
// RevisionID, which counts mutations, a BufferID is assigned once at
// construction and never changes.
type BufferID string

func newBufferID() BufferID {
	return BufferID(ksuid.New().String())
}

var revisionCounter uint64

func nextRevisionID() RevisionID {
	return RevisionID(atomic.AddUint64(&revisionCounter, 1))
}

// Buffer is the editable text buffer core. It owns the line table, the
// byte-count tree, the mark tree, the undo history, and the pending
// parser edit log, and keeps them in lockstep under a single lock.
type Buffer struct {
	mu rwMutex

	id       BufferID
	revision RevisionID

	lines     [][]codec.Codepoint
	lineBytes *linetree.Tree
	marks     *marktree.Tree
	history   *history.Ring
	parserLog *parseredit.Log

	lineEnding LineEnding
	tabWidth   int
	readOnly   bool
}

// New creates an empty buffer: a single empty line.
func New(opts ...Option) *Buffer {
	b, _ := NewFromString("", opts...)
	return b
}

// NewFromString creates a buffer from decoded text.
func NewFromString(s string, opts ...Option) (*Buffer, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	cs, err := codec.DecodeString(s)
	if err != nil {
		return nil, ErrInvalidUTF8
	}
	rawLines := splitLinesKeepingTerminators(cs)

	var ending LineEnding
	if cfg.detectEnding {
		ending = detectEndingFromLines(rawLines)
	} else {
		ending = cfg.lineEnding
		rawLines = normalizeTerminators(rawLines, ending)
	}

	lineBytes := linetree.New()
	for _, l := range rawLines {
		lineBytes.Append(lineByteLen(l))
	}

	return &Buffer{
		id:         newBufferID(),
		revision:   nextRevisionID(),
		lines:      rawLines,
		lineBytes:  lineBytes,
		marks:      marktree.New(),
		history:    history.NewRing(cfg.historyCap),
		parserLog:  parseredit.NewLog(DefaultParserLogLimit),
		lineEnding: ending,
		tabWidth:   cfg.tabWidth,
		readOnly:   cfg.readOnly,
	}, nil
}

// NewFromReader creates a buffer from the UTF-8 content of r.
func NewFromReader(r io.Reader, opts ...Option) (*Buffer, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return NewFromString(string(data), opts...)
}

// ID returns the buffer's stable identity.
func (b *Buffer) ID() BufferID {
	return b.id
}

// Revision returns the current RevisionID.
func (b *Buffer) Revision() RevisionID {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.revision
}

// LineEnding returns the buffer's configured or detected line ending.
func (b *Buffer) LineEnding() LineEnding {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.lineEnding
}

// SetLineEnding changes the ending LineEnding reports. It does not
// rewrite existing content, and edits and Text keep whatever terminators
// are literally present.
func (b *Buffer) SetLineEnding(e LineEnding) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.lineEnding = e
}

// TabWidth returns the configured tab width used by visual-column
// conversions.
func (b *Buffer) TabWidth() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.tabWidth
}

// Len returns the buffer's total length in bytes.
func (b *Buffer) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.lineBytes.TotalBytes()
}

// LineCount returns the number of lines in the buffer. A buffer always
// has at least one line, even when empty.
func (b *Buffer) LineCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.lines)
}

// IsEmpty reports whether the buffer holds zero bytes.
func (b *Buffer) IsEmpty() bool {
	return b.Len() == 0
}

// Text returns the buffer's full content as a string.
func (b *Buffer) Text() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.textLocked()
}

func (b *Buffer) textLocked() string {
	var total int
	for _, l := range b.lines {
		total += lineByteLen(l)
	}
	out := make([]byte, 0, total)
	for _, l := range b.lines {
		out = append(out, []byte(codec.EncodeString(l))...)
	}
	return string(out)
}

// LineText returns the content of line i with its terminator, if any,
// stripped.
func (b *Buffer) LineText(i int) (string, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if i < 0 || i >= len(b.lines) {
		return "", ErrLineOutOfRange
	}
	content, _ := stripTerminator(b.lines[i])
	return codec.EncodeString(content), nil
}

// LineByteLen returns line i's UTF-8 byte length, including its
// terminator.
func (b *Buffer) LineByteLen(i int) (int, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.lineBytes.Get(i)
}

// TextRange returns the bytes in [r.Start, r.End).
func (b *Buffer) TextRange(r Range) ([]byte, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.textRangeLocked(r)
}

func (b *Buffer) textRangeLocked(r Range) ([]byte, error) {
	total := b.lineBytes.TotalBytes()
	if r.Start < 0 || r.End > total || r.Start > r.End {
		return nil, ErrRangeInvalid
	}
	full := b.textLocked()
	return []byte(full[r.Start:r.End]), nil
}

// OffsetToPoint converts a byte offset to a codepoint Point.
func (b *Buffer) OffsetToPoint(offset int) (Point, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.offsetToPointLocked(offset)
}

func (b *Buffer) offsetToPointLocked(offset int) (Point, error) {
	total := b.lineBytes.TotalBytes()
	if offset < 0 || offset > total {
		return Point{}, ErrOffsetOutOfRange
	}
	line, rem := b.lineBytes.ByteToLine(offset)
	col := columnFromByteOffset(b.lines[line], rem)
	return Point{Line: line, Column: col}, nil
}

// PointToOffset converts a codepoint Point to a byte offset.
func (b *Buffer) PointToOffset(p Point) (int, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.pointToOffsetLocked(p)
}

func (b *Buffer) pointToOffsetLocked(p Point) (int, error) {
	if p.Line < 0 || p.Line >= len(b.lines) {
		return 0, ErrLineOutOfRange
	}
	lineStart := b.lineBytes.SumThrough(p.Line)
	return lineStart + byteOffsetFromColumn(b.lines[p.Line], p.Column), nil
}

// OffsetToGraphemePosition converts a byte offset to a (line, grapheme
// index) position.
func (b *Buffer) OffsetToGraphemePosition(offset int) (int, int, error) {
	p, err := b.OffsetToPoint(offset)
	if err != nil {
		return 0, 0, err
	}
	b.mu.RLock()
	defer b.mu.RUnlock()
	g := codec.CodepointIndexToGraphemeIndex(b.lines[p.Line], p.Column)
	return p.Line, g, nil
}

// GraphemePositionToOffset converts a (line, grapheme index) position to
// a byte offset.
func (b *Buffer) GraphemePositionToOffset(line, graphemeIdx int) (int, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if line < 0 || line >= len(b.lines) {
		return 0, ErrLineOutOfRange
	}
	col := codec.GraphemeIndexToCodepointIndex(b.lines[line], graphemeIdx)
	return b.pointToOffsetLocked(Point{Line: line, Column: col})
}

// VisualColumn returns the visual (tab-expanded) column of a codepoint
// Point.
func (b *Buffer) VisualColumn(p Point) (int, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if p.Line < 0 || p.Line >= len(b.lines) {
		return 0, ErrLineOutOfRange
	}
	return visualColumn(b.lines[p.Line], p.Column, b.tabWidth), nil
}

// PointFromVisualColumn returns the codepoint Point on line whose visual
// column is closest to (not exceeding) v.
func (b *Buffer) PointFromVisualColumn(line, v int) (Point, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if line < 0 || line >= len(b.lines) {
		return Point{}, ErrLineOutOfRange
	}
	col := codepointColumnFromVisual(b.lines[line], v, b.tabWidth)
	return Point{Line: line, Column: col}, nil
}

// EndOffset returns the buffer's total byte length (the offset just past
// the last byte).
func (b *Buffer) EndOffset() int {
	return b.Len()
}

// Snapshot captures the buffer's current text and revision under the
// read lock, giving the caller a self-consistent point-in-time view
// without sharing any internal structure.
type Snapshot struct {
	Revision RevisionID
	Text     string
}

// Snapshot returns a Snapshot of the buffer's current state.
func (b *Buffer) Snapshot() Snapshot {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return Snapshot{Revision: b.revision, Text: b.textLocked()}
}
