package parseredit

// Point mirrors buffer.Point without importing the buffer package, so the
// parser collaborator can depend on parseredit alone.
type Point struct {
	Line   int
	Column int
}

// Edit is one queued edit record, following the same (byte range, point
// range) shape an incremental parser's edit-tree API expects.
type Edit struct {
	StartByte  int
	OldEndByte int
	NewEndByte int

	StartPoint  Point
	OldEndPoint Point
	NewEndPoint Point
}

// Log is a bounded FIFO of pending edits awaiting a parser's TakePending
// call. It never blocks: once full, every queued edit is collapsed into
// a single edit running from the first one's start to the last one's
// end, and the new edit is queued after it, so the parser is still told
// enough to force a full re-parse rather than silently missing a region.
type Log struct {
	pending    []Edit
	limit      int
	overflowed bool
}

// NewLog creates a log that holds at most limit edits before collapsing.
func NewLog(limit int) *Log {
	if limit <= 0 {
		limit = 1
	}
	return &Log{limit: limit}
}

// Push appends an edit, coalescing into an overflow marker if the log is
// already at capacity.
func (l *Log) Push(e Edit) {
	if len(l.pending) >= l.limit {
		l.collapse()
	}
	l.pending = append(l.pending, e)
}

func (l *Log) collapse() {
	if len(l.pending) == 0 {
		return
	}
	first := l.pending[0]
	last := l.pending[len(l.pending)-1]
	l.pending = []Edit{{
		StartByte:   first.StartByte,
		OldEndByte:  last.OldEndByte,
		NewEndByte:  last.NewEndByte,
		StartPoint:  first.StartPoint,
		OldEndPoint: last.OldEndPoint,
		NewEndPoint: last.NewEndPoint,
	}}
	l.overflowed = true
}

// TakePending drains and returns every queued edit, resetting the log.
func (l *Log) TakePending() []Edit {
	out := l.pending
	l.pending = nil
	l.overflowed = false
	return out
}

// Overflowed reports whether the currently queued edits lost individual
// edit boundaries to the capacity collapse. TakePending resets it, so it
// is read before draining.
func (l *Log) Overflowed() bool {
	return l.overflowed
}

// Len reports how many edit records are currently queued.
func (l *Log) Len() int {
	return len(l.pending)
}
