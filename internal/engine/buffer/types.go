package buffer

import (
	"fmt"

	"github.com/rtandon/corebuf/internal/engine/marktree"
)

// RevisionID identifies a buffer state. It increments on every successful
// mutation and never repeats within a process, so two RevisionIDs can be
// compared for recency even if the buffer's content briefly matches an
// earlier revision.
type RevisionID uint64

// LineEnding is the sequence a buffer writes between lines and expects
// when one is detected from loaded content.
type LineEnding int

const (
	LF LineEnding = iota
	CRLF
	CR
)

// Bytes returns the literal byte sequence this line ending writes.
func (e LineEnding) Bytes() []byte {
	switch e {
	case CRLF:
		return []byte{'\r', '\n'}
	case CR:
		return []byte{'\r'}
	default:
		return []byte{'\n'}
	}
}

func (e LineEnding) String() string {
	switch e {
	case CRLF:
		return "CRLF"
	case CR:
		return "CR"
	default:
		return "LF"
	}
}

// Point is a codepoint-granularity position: Line and Column are both
// zero-based, Column counting decoded codepoints from the start of Line.
type Point struct {
	Line   int
	Column int
}

func (p Point) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Compare orders two points by line, then column.
func (p Point) Compare(o Point) int {
	if p.Line != o.Line {
		if p.Line < o.Line {
			return -1
		}
		return 1
	}
	switch {
	case p.Column < o.Column:
		return -1
	case p.Column > o.Column:
		return 1
	default:
		return 0
	}
}

// Range is a half-open byte range [Start, End) into the buffer.
type Range struct {
	Start int
	End   int
}

// Len returns the number of bytes the range spans.
func (r Range) Len() int {
	return r.End - r.Start
}

// IsEmpty reports whether the range spans zero bytes.
func (r Range) IsEmpty() bool {
	return r.Start == r.End
}

// ChangeType classifies an edit for history coalescing purposes.
type ChangeType int

const (
	ChangeInsert ChangeType = iota
	ChangeDelete
	ChangeReplace
)

func (c ChangeType) String() string {
	switch c {
	case ChangeInsert:
		return "insert"
	case ChangeDelete:
		return "delete"
	case ChangeReplace:
		return "replace"
	default:
		return "unknown"
	}
}

// Edit describes a single atomic mutation: replace the bytes in Range
// with NewText.
type Edit struct {
	Range   Range
	NewText []byte
}

// Type classifies the edit by whether it adds, removes, or replaces
// bytes.
func (e Edit) Type() ChangeType {
	switch {
	case e.Range.IsEmpty():
		return ChangeInsert
	case len(e.NewText) == 0:
		return ChangeDelete
	default:
		return ChangeReplace
	}
}

// Delta returns the net byte-length change the edit applies.
func (e Edit) Delta() int {
	return len(e.NewText) - e.Range.Len()
}

// EditResult reports what an applied edit actually did, including the
// inverse information needed to undo it.
type EditResult struct {
	OldRange Range
	NewRange Range
	OldText  []byte
	Revision RevisionID
}

// Invert returns the Edit that undoes this result.
func (r EditResult) Invert() Edit {
	return Edit{Range: r.NewRange, NewText: r.OldText}
}

// MarkKind re-exports marktree's classification so callers of this
// package never need to import marktree directly for common use.
type MarkKind = marktree.Kind

const (
	MarkBuildError    = marktree.KindBuildError
	MarkSearchResult  = marktree.KindSearchResult
	MarkHistoryAnchor = marktree.KindHistoryAnchor
	MarkTest          = marktree.KindTest
	MarkBookmark      = marktree.KindBookmark
)

// MarkHandle is a stable reference to a mark created with InsertMark.
type MarkHandle = marktree.Handle
