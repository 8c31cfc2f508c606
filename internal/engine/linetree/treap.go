package linetree

import (
	"errors"
	"math/rand/v2"
)

// ErrIndexOutOfRange indicates a line index passed to Get, Set, Insert, or
// Remove is outside the valid range for the tree's current size.
var ErrIndexOutOfRange = errors.New("linetree: index out of range")

// node is one treap node. val is the UTF-8 byte count of the line this node
// represents (including its trailing newline, except for the final line).
// size and sum are subtree aggregates recomputed bottom-up on every mutation.
// priority is a random heap key: split/merge keep the tree balanced in
// expectation without any explicit rotation logic.
type node struct {
	val      int
	size     int
	sum      int
	priority uint64
	left     *node
	right    *node
}

func newNode(val int) *node {
	n := &node{val: val, priority: rand.Uint64()}
	n.recompute()
	return n
}

func (n *node) recompute() {
	n.size = 1
	n.sum = n.val
	if n.left != nil {
		n.size += n.left.size
		n.sum += n.left.sum
	}
	if n.right != nil {
		n.size += n.right.size
		n.sum += n.right.sum
	}
}

func nodeSize(n *node) int {
	if n == nil {
		return 0
	}
	return n.size
}

func nodeSum(n *node) int {
	if n == nil {
		return 0
	}
	return n.sum
}

// split divides t into a left part holding the first idx nodes (in-order)
// and a right part holding the rest.
func split(t *node, idx int) (*node, *node) {
	if t == nil {
		return nil, nil
	}
	leftSize := nodeSize(t.left)
	if idx <= leftSize {
		l, r := split(t.left, idx)
		t.left = r
		t.recompute()
		return l, t
	}
	l, r := split(t.right, idx-leftSize-1)
	t.right = l
	t.recompute()
	return t, r
}

// merge concatenates l (entirely before r in-order) into one treap,
// restoring heap order on priority via rotation-free recursive descent.
func merge(l, r *node) *node {
	if l == nil {
		return r
	}
	if r == nil {
		return l
	}
	if l.priority > r.priority {
		l.right = merge(l.right, r)
		l.recompute()
		return l
	}
	r.left = merge(l, r.left)
	r.recompute()
	return r
}

func getAt(t *node, idx int) int {
	leftSize := nodeSize(t.left)
	switch {
	case idx < leftSize:
		return getAt(t.left, idx)
	case idx == leftSize:
		return t.val
	default:
		return getAt(t.right, idx-leftSize-1)
	}
}

func setAt(t *node, idx, val int) {
	leftSize := nodeSize(t.left)
	switch {
	case idx < leftSize:
		setAt(t.left, idx, val)
	case idx == leftSize:
		t.val = val
	default:
		setAt(t.right, idx-leftSize-1, val)
	}
	t.recompute()
}

// sumPrefix returns the sum of the first n values in t (in-order).
func sumPrefix(t *node, n int) int {
	if t == nil || n <= 0 {
		return 0
	}
	leftSize := nodeSize(t.left)
	if n <= leftSize {
		return sumPrefix(t.left, n)
	}
	return nodeSum(t.left) + t.val + sumPrefix(t.right, n-leftSize-1)
}

// byteToLine locates the line containing byte b within t, returning a line
// index relative to t's own in-order position and the in-line remainder.
func byteToLine(t *node, b int) (line, rem int) {
	if t == nil {
		return 0, b
	}
	leftSize := nodeSize(t.left)
	leftSum := nodeSum(t.left)
	if b < leftSum {
		return byteToLine(t.left, b)
	}
	b -= leftSum
	if b < t.val {
		return leftSize, b
	}
	b -= t.val
	rLine, rRem := byteToLine(t.right, b)
	return leftSize + 1 + rLine, rRem
}

// Tree is the byte-count tree: an implicit-key treap whose in-order
// traversal corresponds to the buffer's sequence of lines.
type Tree struct {
	root *node
}

// New creates an empty byte-count tree.
func New() *Tree {
	return &Tree{}
}

// BuildFromCounts creates a tree with one line per entry in counts, in
// order, by calling Append once per entry.
func BuildFromCounts(counts []int) *Tree {
	t := &Tree{}
	for _, c := range counts {
		t.Append(c)
	}
	return t
}

// Size returns the number of lines (node count).
func (t *Tree) Size() int {
	return nodeSize(t.root)
}

// TotalBytes returns the sum of every line's byte count.
func (t *Tree) TotalBytes() int {
	return nodeSum(t.root)
}

// Get returns the byte count of line i.
func (t *Tree) Get(i int) (int, error) {
	if i < 0 || i >= t.Size() {
		return 0, ErrIndexOutOfRange
	}
	return getAt(t.root, i), nil
}

// Set replaces line i's byte count.
func (t *Tree) Set(i, v int) error {
	if i < 0 || i >= t.Size() {
		return ErrIndexOutOfRange
	}
	setAt(t.root, i, v)
	return nil
}

// Insert adds a new line at index i with byte count v, shifting lines at
// and after i to the right.
func (t *Tree) Insert(i, v int) error {
	if i < 0 || i > t.Size() {
		return ErrIndexOutOfRange
	}
	l, r := split(t.root, i)
	t.root = merge(merge(l, newNode(v)), r)
	return nil
}

// Append adds a new line at the end with byte count v.
func (t *Tree) Append(v int) {
	t.root = merge(t.root, newNode(v))
}

// Remove deletes line i.
func (t *Tree) Remove(i int) error {
	if i < 0 || i >= t.Size() {
		return ErrIndexOutOfRange
	}
	l, mid := split(t.root, i)
	_, r := split(mid, 1)
	t.root = merge(l, r)
	return nil
}

// SumThrough returns the sum of byte counts for lines [0, i).
func (t *Tree) SumThrough(i int) int {
	if i <= 0 {
		return 0
	}
	if i > t.Size() {
		i = t.Size()
	}
	return sumPrefix(t.root, i)
}

// ByteToLine returns the largest line index i such that SumThrough(i) <= b,
// plus the in-line byte remainder. If b lies exactly on a line boundary
// (i.e. at the start of a following line), it returns that following line
// with remainder 0 — except at the true end of the buffer, where there is
// no following line and the last line's end position is returned instead.
func (t *Tree) ByteToLine(b int) (line, rem int) {
	if t.root == nil {
		if b < 0 {
			b = 0
		}
		return 0, b
	}
	if b < 0 {
		b = 0
	}

	line, rem = byteToLine(t.root, b)
	if line >= t.Size() {
		lastIdx := t.Size() - 1
		lastBytes, _ := t.Get(lastIdx)
		return lastIdx, lastBytes
	}
	return line, rem
}
