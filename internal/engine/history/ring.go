package history

import "errors"

var (
	// ErrNothingToUndo is returned by Undo when the cursor is already at
	// the oldest recorded entry.
	ErrNothingToUndo = errors.New("history: nothing to undo")
	// ErrNothingToRedo is returned by Redo when the cursor is already at
	// the newest recorded entry.
	ErrNothingToRedo = errors.New("history: nothing to redo")
	// ErrNoBatchOpen is returned by EndBatch without a matching
	// BeginBatch.
	ErrNoBatchOpen = errors.New("history: no batch open")
)

// DefaultCapacity is the entry capacity a Ring uses when none is given.
const DefaultCapacity = 256

// Ring is the fixed-capacity undo/redo ring. buf is a circular array of
// Entry; start is the index of the oldest live entry, count is how many
// entries (undoable and redoable together) are currently live, and
// cursor is how many of those, counted from start, are undoable — the
// remainder, up to count, are redoable.
type Ring struct {
	buf      []Entry
	capacity int
	start    int
	count    int
	cursor   int

	batchDepth   int
	batchChanges []Change

	forceNext bool
}

// NewRing creates a Ring with the given fixed entry capacity.
func NewRing(capacity int) *Ring {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Ring{buf: make([]Entry, capacity), capacity: capacity}
}

func (r *Ring) index(i int) int {
	return (r.start + i) % r.capacity
}

// Push records a single change. Adjacent pure-insert or pure-delete
// changes merge into the most recent entry instead of creating a new
// one, unless a batch is open (in which case the change is simply added
// to the batch's group) or ForceNextEntry was called since the last
// Push.
func (r *Ring) Push(c Change) {
	if r.batchDepth > 0 {
		r.batchChanges = append(r.batchChanges, c)
		return
	}
	if !r.forceNext && r.tryCoalesce(c) {
		return
	}
	r.forceNext = false
	r.commit(Entry{Changes: []Change{c}})
}

// ForceNextEntry disables coalescing for the very next Push, starting a
// fresh undo entry even if it would otherwise merge with the current
// one. Callers use this at a natural edit boundary — for example when a
// cursor moves between two insertions that would otherwise coalesce.
func (r *Ring) ForceNextEntry() {
	r.forceNext = true
}

// BeginBatch opens (or re-enters, if already open) a batch scope. Every
// Push until the matching outermost EndBatch is grouped into one Entry.
func (r *Ring) BeginBatch() {
	r.batchDepth++
}

// EndBatch closes one level of batch scope. Only when the outermost
// scope closes is the accumulated group committed as a single entry.
func (r *Ring) EndBatch() error {
	if r.batchDepth == 0 {
		return ErrNoBatchOpen
	}
	r.batchDepth--
	if r.batchDepth == 0 && len(r.batchChanges) > 0 {
		r.commit(Entry{Changes: r.batchChanges})
		r.batchChanges = nil
	}
	return nil
}

// CancelBatch discards the changes accumulated in the current batch
// scope without committing an entry, closing every nesting level.
func (r *Ring) CancelBatch() {
	r.batchDepth = 0
	r.batchChanges = nil
}

// InBatch reports whether a batch scope is currently open.
func (r *Ring) InBatch() bool {
	return r.batchDepth > 0
}

func (r *Ring) tryCoalesce(c Change) bool {
	if r.cursor == 0 {
		return false
	}
	idx := r.index(r.cursor - 1)
	last := &r.buf[idx]
	if len(last.Changes) != 1 {
		return false
	}
	lc := last.Changes[0]
	switch {
	case lc.Type == ChangeInsert && c.Type == ChangeInsert && lc.NewRange.End == c.Range.Start:
		lc.NewText = append(append([]byte{}, lc.NewText...), c.NewText...)
		lc.NewRange.End = c.NewRange.End
		last.Changes[0] = lc
		return true
	case lc.Type == ChangeDelete && c.Type == ChangeDelete && lc.Range.Start == c.Range.Start:
		// Repeated forward delete (Delete key held down) at the same point.
		lc.OldText = append(append([]byte{}, lc.OldText...), c.OldText...)
		lc.Range.End += c.Range.Len()
		last.Changes[0] = lc
		return true
	case lc.Type == ChangeDelete && c.Type == ChangeDelete && c.Range.End == lc.Range.Start:
		// Repeated backspace, extending leftward.
		merged := append(append([]byte{}, c.OldText...), lc.OldText...)
		lc.OldText = merged
		lc.Range.Start = c.Range.Start
		lc.NewRange = Range{Start: c.Range.Start, End: c.Range.Start}
		last.Changes[0] = lc
		return true
	default:
		return false
	}
}

func (r *Ring) commit(e Entry) {
	r.count = r.cursor // discard any redo tail
	if r.count == r.capacity {
		r.start = (r.start + 1) % r.capacity
		r.count--
		r.cursor--
	}
	idx := r.index(r.count)
	r.buf[idx] = e
	r.count++
	r.cursor++
}

// Undo moves the cursor back one entry and returns it, inverted, ready
// to be applied. It does not mutate buffer state itself — the caller
// applies the returned Entry's changes.
func (r *Ring) Undo() (Entry, error) {
	if r.cursor == 0 {
		return Entry{}, ErrNothingToUndo
	}
	r.cursor--
	e := r.buf[r.index(r.cursor)]
	return e.Invert(), nil
}

// Redo moves the cursor forward one entry and returns it as originally
// applied.
func (r *Ring) Redo() (Entry, error) {
	if r.cursor >= r.count {
		return Entry{}, ErrNothingToRedo
	}
	e := r.buf[r.index(r.cursor)]
	r.cursor++
	return e, nil
}

// CanUndo reports whether Undo would succeed.
func (r *Ring) CanUndo() bool {
	return r.cursor > 0
}

// CanRedo reports whether Redo would succeed.
func (r *Ring) CanRedo() bool {
	return r.cursor < r.count
}

// UndoCount returns how many entries are available to Undo.
func (r *Ring) UndoCount() int {
	return r.cursor
}

// RedoCount returns how many entries are available to Redo.
func (r *Ring) RedoCount() int {
	return r.count - r.cursor
}

// Clear discards every entry and any open batch.
func (r *Ring) Clear() {
	r.start, r.count, r.cursor = 0, 0, 0
	r.batchDepth = 0
	r.batchChanges = nil
	r.forceNext = false
}

// Capacity returns the ring's fixed entry capacity.
func (r *Ring) Capacity() int {
	return r.capacity
}
