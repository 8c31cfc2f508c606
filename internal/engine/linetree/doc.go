// Package linetree implements the byte-count tree: a balanced,
// order-statistic treap keyed by line index. Each node holds the UTF-8
// byte length of one line (including its trailing newline, except for the
// buffer's final line) plus subtree aggregates, so the tree answers
// "which line contains byte offset K" and "byte offset of line L" in
// O(log N).
//
// The treap combines positional (in-order rank) keys with randomized
// heap-ordered priorities: split and merge on priority keep the tree
// balanced in expectation without any rebalancing logic.
//
// Basic usage:
//
//	t := linetree.New()
//	t.Append(4)  // line 0 is 4 bytes incl. newline
//	t.Append(6)  // line 1 is 6 bytes incl. newline
//	t.Insert(1, 3) // insert a new line 1, pushing the old line 1 to index 2
//
//	line, rem := t.ByteToLine(5) // which line does byte offset 5 fall in
package linetree
