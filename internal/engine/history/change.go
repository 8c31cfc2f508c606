package history

// Range is a half-open byte range, mirroring buffer.Range without
// importing the buffer package (history is a collaborator buffer depends
// on, not the other way around).
type Range struct {
	Start int
	End   int
}

// Len returns the number of bytes the range spans.
func (r Range) Len() int {
	return r.End - r.Start
}

// ChangeType classifies a Change for coalescing purposes.
type ChangeType int

const (
	ChangeInsert ChangeType = iota
	ChangeDelete
	ChangeReplace
)

// Change is one recorded edit, carrying enough information to invert it:
// the byte range it replaced, the range it produced, and both the old
// and new text.
type Change struct {
	Type     ChangeType
	Range    Range
	NewRange Range
	OldText  []byte
	NewText  []byte
}

// Invert returns the Change that undoes c.
func (c Change) Invert() Change {
	t := ChangeReplace
	switch c.Type {
	case ChangeInsert:
		t = ChangeDelete
	case ChangeDelete:
		t = ChangeInsert
	}
	return Change{
		Type:     t,
		Range:    c.NewRange,
		NewRange: c.Range,
		OldText:  c.NewText,
		NewText:  c.OldText,
	}
}

// Entry is one undo-able unit: a single coalesced change, or an ordered
// group of changes applied together as one batch.
type Entry struct {
	Changes []Change
}

// Invert returns the Entry that undoes e: every Change inverted, in
// reverse application order.
func (e Entry) Invert() Entry {
	inv := make([]Change, len(e.Changes))
	for i, c := range e.Changes {
		inv[len(e.Changes)-1-i] = c.Invert()
	}
	return Entry{Changes: inv}
}
