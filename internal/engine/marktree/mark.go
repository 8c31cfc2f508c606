package marktree

import "errors"

// ErrMarkNotFound is returned when a Handle no longer refers to a live
// mark, either because it was deleted or because it came from a different
// tree.
var ErrMarkNotFound = errors.New("marktree: mark not found")

// Kind classifies what a mark is being used to track. It mirrors the set
// of collaborators that attach stable positions to buffer content: build
// diagnostics, search results, the undo history, tests, and user-visible
// bookmarks.
type Kind int

const (
	KindBuildError Kind = iota
	KindSearchResult
	KindHistoryAnchor
	KindTest
	KindBookmark
)

func (k Kind) String() string {
	switch k {
	case KindBuildError:
		return "build-error"
	case KindSearchResult:
		return "search-result"
	case KindHistoryAnchor:
		return "history-anchor"
	case KindTest:
		return "test"
	case KindBookmark:
		return "bookmark"
	default:
		return "unknown"
	}
}

// Handle is an opaque, generational reference to a live mark. It stays
// valid across edits (the tree updates the position it resolves to) but
// becomes invalid once the mark is deleted; reusing a stale Handle after
// deletion is detected rather than silently resolving to an unrelated
// mark that later reused the same slot.
type Handle struct {
	idx int32
	gen uint32
}

// Valid reports whether h was ever populated by Insert. It does not by
// itself guarantee the mark is still live; use Tree.Position to check.
func (h Handle) Valid() bool {
	return h.gen != 0
}

// record is one arena slot. Slots are recycled via a freelist rather
// than reallocated; they are indexed so a Handle can outlive any single
// tree node.
type record struct {
	kind        Kind
	node        *treeNode
	nextInChain int32 // next record index in this node's mark chain, or -1
	gen         uint32
	inUse       bool
	nextFree    int32
}
