// Package buffer implements the editable text buffer core: an ordered
// line table of decoded codepoints, a byte-count tree that maps between
// byte offsets and lines in O(log N), and a mark tree that keeps stable
// positions (cursors, diagnostics, search results) correct across edits.
//
// Every mutation goes through Insert, Delete, or Replace, which apply
// atomically under the buffer's lock: the line table, the byte-count
// tree, the mark tree, the undo history, and the pending parser edit log
// all move together or not at all. Readers taking the read lock always
// see a self-consistent view; they are never interleaved with a partial
// edit.
//
// Four coordinate systems address the same content: byte offset (for
// file I/O, the byte-count tree, and the mark tree's keys), codepoint
// position (line + decoded rune index, what most editing commands take),
// grapheme position (line + extended grapheme cluster index, what a
// cursor should move by), and visual column (codepoints expanded by tab
// width, what a renderer lays out on screen). Buffer exposes conversions
// between all four; see the codec package for the grapheme/codepoint
// primitives they build on.
//
// Basic usage:
//
//	b, err := buffer.NewFromString("line one\nline two\n")
//	res, err := b.Insert(9, []byte("inserted "))
//	text := b.Text()
//	point, err := b.OffsetToPoint(res.NewRange.End)
package buffer
