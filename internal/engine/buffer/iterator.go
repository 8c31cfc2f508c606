package buffer

import "github.com/rtandon/corebuf/internal/engine/codec"

// Iterator walks a buffer one codepoint, or one grapheme cluster, at a
// time, forward or backward, from an arbitrary starting byte offset.
//
// An iterator may carry a "fake end": a byte offset the iterator reports
// as EOF even though real content follows it. The parser collaborator
// relies on this to take a consistent snapshot mid-edit — it can iterate
// "as if" the buffer ended where the edit log says it did at the moment
// the parser started reading, even if further edits have since extended
// the real buffer past that point.
type Iterator struct {
	buf           *Buffer
	offset        int
	hasFakeEnd    bool
	fakeEndOffset int
}

// Iterator returns an iterator positioned at offset.
func (b *Buffer) Iterator(offset int) (*Iterator, error) {
	if offset < 0 || offset > b.Len() {
		return nil, ErrOffsetOutOfRange
	}
	return &Iterator{buf: b, offset: offset}, nil
}

// IteratorWithFakeEnd returns an iterator positioned at offset that
// treats fakeEnd as the end of the buffer for Peek/Next/EOF purposes.
func (b *Buffer) IteratorWithFakeEnd(offset, fakeEnd int) (*Iterator, error) {
	if offset < 0 || offset > b.Len() {
		return nil, ErrOffsetOutOfRange
	}
	return &Iterator{buf: b, offset: offset, hasFakeEnd: true, fakeEndOffset: fakeEnd}, nil
}

// Offset returns the iterator's current byte offset.
func (it *Iterator) Offset() int {
	return it.offset
}

func (it *Iterator) limit() int {
	if it.hasFakeEnd {
		return it.fakeEndOffset
	}
	return it.buf.Len()
}

func (it *Iterator) codepointAt(offset int) (codec.Codepoint, int, bool) {
	p, err := it.buf.OffsetToPoint(offset)
	if err != nil {
		return 0, 0, false
	}
	it.buf.mu.RLock()
	line := it.buf.lines[p.Line]
	it.buf.mu.RUnlock()
	if p.Column >= len(line) {
		return 0, 0, false
	}
	return line[p.Column], p.Column, true
}

// BOF reports whether the iterator sits at the start of the buffer.
func (it *Iterator) BOF() bool {
	return it.offset == 0
}

// EOF reports whether the iterator sits at or past its end (the real
// end, or the fake end if one is set).
func (it *Iterator) EOF() bool {
	return it.offset >= it.limit()
}

// Peek returns the codepoint at the current offset without advancing.
func (it *Iterator) Peek() (codec.Codepoint, bool) {
	if it.EOF() {
		return 0, false
	}
	c, _, ok := it.codepointAt(it.offset)
	return c, ok
}

// Next returns the codepoint at the current offset and advances past
// it.
func (it *Iterator) Next() (codec.Codepoint, bool) {
	c, ok := it.Peek()
	if !ok {
		return 0, false
	}
	n, err := codec.ByteLen(c)
	if err != nil {
		n = len(string(c))
	}
	it.offset += n
	return c, true
}

// Prev steps back one codepoint and returns it.
func (it *Iterator) Prev() (codec.Codepoint, bool) {
	if it.BOF() {
		return 0, false
	}
	p, err := it.buf.OffsetToPoint(it.offset)
	if err != nil {
		return 0, false
	}
	if p.Column == 0 {
		// Step onto the end of the previous line.
		if p.Line == 0 {
			return 0, false
		}
		it.buf.mu.RLock()
		prevLine := it.buf.lines[p.Line-1]
		it.buf.mu.RUnlock()
		c := prevLine[len(prevLine)-1]
		n, err := codec.ByteLen(c)
		if err != nil {
			n = len(string(c))
		}
		it.offset -= n
		return c, true
	}
	it.buf.mu.RLock()
	line := it.buf.lines[p.Line]
	it.buf.mu.RUnlock()
	c := line[p.Column-1]
	n, err := codec.ByteLen(c)
	if err != nil {
		n = len(string(c))
	}
	it.offset -= n
	return c, true
}

// BOL reports whether the iterator sits at the start of its line.
func (it *Iterator) BOL() bool {
	p, err := it.buf.OffsetToPoint(it.offset)
	return err == nil && p.Column == 0
}

// EOL reports whether the iterator sits at the end of its line (just
// before the terminator, or at the buffer's real end on the last line).
func (it *Iterator) EOL() bool {
	p, err := it.buf.OffsetToPoint(it.offset)
	if err != nil {
		return true
	}
	it.buf.mu.RLock()
	line := it.buf.lines[p.Line]
	it.buf.mu.RUnlock()
	content, hadTerm := stripTerminator(line)
	if hadTerm {
		return p.Column == len(content)
	}
	return p.Column == len(line)
}

// GraphemeNext consumes one extended grapheme cluster and returns it.
func (it *Iterator) GraphemeNext() ([]codec.Codepoint, bool) {
	if it.EOF() {
		return nil, false
	}
	p, err := it.buf.OffsetToPoint(it.offset)
	if err != nil {
		return nil, false
	}
	it.buf.mu.RLock()
	line := it.buf.lines[p.Line]
	it.buf.mu.RUnlock()
	cluster, next := codec.GraphemeNext(line, p.Column)
	if next == p.Column {
		return nil, false
	}
	for _, c := range cluster {
		n, err := codec.ByteLen(c)
		if err != nil {
			n = len(string(c))
		}
		it.offset += n
	}
	return cluster, true
}

// GraphemePrev consumes one extended grapheme cluster ending at the
// current offset and returns it, moving the iterator before it.
func (it *Iterator) GraphemePrev() ([]codec.Codepoint, bool) {
	if it.BOF() {
		return nil, false
	}
	p, err := it.buf.OffsetToPoint(it.offset)
	if err != nil {
		return nil, false
	}
	it.buf.mu.RLock()
	line := it.buf.lines[p.Line]
	it.buf.mu.RUnlock()
	cluster, prev := codec.GraphemePrev(line, p.Column)
	if prev == p.Column {
		return nil, false
	}
	for _, c := range cluster {
		n, err := codec.ByteLen(c)
		if err != nil {
			n = len(string(c))
		}
		it.offset -= n
	}
	return cluster, true
}
