package buffer

import "errors"

var (
	// ErrOffsetOutOfRange is returned when a byte offset falls outside
	// [0, Len()].
	ErrOffsetOutOfRange = errors.New("buffer: offset out of range")
	// ErrRangeInvalid is returned when a Range's End precedes its Start,
	// or either bound falls outside the buffer.
	ErrRangeInvalid = errors.New("buffer: range invalid")
	// ErrLineOutOfRange is returned when a line index falls outside
	// [0, LineCount()).
	ErrLineOutOfRange = errors.New("buffer: line out of range")
	// ErrInvalidUTF8 is returned when NewText or loaded content is not
	// well-formed UTF-8.
	ErrInvalidUTF8 = errors.New("buffer: invalid UTF-8")
	// ErrNoBatchOpen names an EndBatch without a matching BeginBatch.
	// Buffer.EndBatch itself reports that case with
	// history.ErrNoBatchOpen, the sentinel the engine re-exports.
	ErrNoBatchOpen = errors.New("buffer: no batch open")
	// ErrReadOnly is returned by any mutating operation on a buffer
	// opened with WithReadOnly.
	ErrReadOnly = errors.New("buffer: buffer is read-only")
)
