package codec

import "github.com/rivo/uniseg"

// GraphemeCursor holds a codepoint slice. It has no methods of its own:
// the package-level GraphemeNext and GraphemePrev walk a slice one
// extended grapheme cluster at a time, with the caller supplying the slice
// and an offset on every call, matching the buffer's line-local addressing.
type GraphemeCursor struct {
	Codepoints []Codepoint
}

// GraphemeNext consumes one extended grapheme cluster starting at offset and
// returns the codepoints that make it up along with the offset immediately
// after the cluster. If offset is at or past the end, it returns an empty
// slice and offset unchanged.
//
// Clustering follows Unicode UAX #29 (regional indicators, ZWJ sequences,
// combining marks) via uniseg.
func GraphemeNext(cs []Codepoint, offset int) ([]Codepoint, int) {
	if offset < 0 || offset >= len(cs) {
		return nil, offset
	}

	s := string(cs[offset:])
	cluster, _, _, _ := uniseg.FirstGraphemeClusterInString(s, -1)
	n := len([]rune(cluster))
	if n == 0 {
		n = 1
	}
	end := offset + n
	if end > len(cs) {
		end = len(cs)
	}
	return cs[offset:end], end
}

// GraphemePrev consumes one extended grapheme cluster ending at offset and
// returns the codepoints that make it up along with the offset immediately
// before the cluster. It is the mirror of GraphemeNext: stepping forward
// with GraphemeNext then backward with GraphemePrev over the returned range
// reproduces the same cluster.
func GraphemePrev(cs []Codepoint, offset int) ([]Codepoint, int) {
	if offset <= 0 || offset > len(cs) {
		return nil, offset
	}

	// Walk forward from the start of the line, tracking cluster
	// boundaries, until we find the boundary immediately before offset.
	// This guarantees consistency with GraphemeNext by construction,
	// rather than re-deriving boundaries from the reversed string.
	prevBoundary := 0
	boundary := 0
	for boundary < offset {
		_, next := GraphemeNext(cs, boundary)
		if next <= boundary {
			break
		}
		prevBoundary = boundary
		boundary = next
	}
	return cs[prevBoundary:offset], prevBoundary
}

// CountGraphemes returns the number of extended grapheme clusters in cs.
func CountGraphemes(cs []Codepoint) int {
	count := 0
	for offset := 0; offset < len(cs); {
		_, next := GraphemeNext(cs, offset)
		if next <= offset {
			break
		}
		offset = next
		count++
	}
	return count
}

// GraphemeIndexToCodepointIndex converts a grapheme cluster index within cs
// to the codepoint offset at which that cluster begins. If idx is beyond
// the last cluster, it returns len(cs).
func GraphemeIndexToCodepointIndex(cs []Codepoint, idx int) int {
	offset := 0
	for i := 0; i < idx && offset < len(cs); i++ {
		_, next := GraphemeNext(cs, offset)
		if next <= offset {
			break
		}
		offset = next
	}
	return offset
}

// CodepointIndexToGraphemeIndex converts a codepoint offset within cs to the
// index of the grapheme cluster that starts at it (or the cluster count if
// the offset is exactly at the end). An offset inside a cluster counts that
// cluster too, giving the index of the cluster after it.
func CodepointIndexToGraphemeIndex(cs []Codepoint, offset int) int {
	idx := 0
	pos := 0
	for pos < offset && pos < len(cs) {
		_, next := GraphemeNext(cs, pos)
		if next <= pos {
			break
		}
		pos = next
		idx++
	}
	return idx
}
