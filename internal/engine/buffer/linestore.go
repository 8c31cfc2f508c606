package buffer

import "github.com/rtandon/corebuf/internal/engine/codec"

// splitLinesKeepingTerminators splits cs into lines, each line keeping
// whatever terminator (\n, \r\n, or \r) immediately ended it. The final
// line never has one unless cs itself ends in one, in which case an
// additional empty final line follows — the same convention a trailing
// newline produces in any line-oriented view of a text file.
func splitLinesKeepingTerminators(cs []codec.Codepoint) [][]codec.Codepoint {
	var lines [][]codec.Codepoint
	start := 0
	i := 0
	for i < len(cs) {
		switch cs[i] {
		case '\n':
			lines = append(lines, cs[start:i+1])
			i++
			start = i
		case '\r':
			if i+1 < len(cs) && cs[i+1] == '\n' {
				lines = append(lines, cs[start:i+2])
				i += 2
			} else {
				lines = append(lines, cs[start:i+1])
				i++
			}
			start = i
		default:
			i++
		}
	}
	lines = append(lines, cs[start:])
	return lines
}

// stripTerminator returns l without its trailing line terminator, and
// whether one was present.
func stripTerminator(l []codec.Codepoint) ([]codec.Codepoint, bool) {
	n := len(l)
	if n >= 2 && l[n-2] == '\r' && l[n-1] == '\n' {
		return l[:n-2], true
	}
	if n >= 1 && (l[n-1] == '\n' || l[n-1] == '\r') {
		return l[:n-1], true
	}
	return l, false
}

// detectEndingFromLines returns the first line terminator found in lines, or LF if
// none is found.
func detectEndingFromLines(lines [][]codec.Codepoint) LineEnding {
	for _, l := range lines {
		n := len(l)
		if n >= 2 && l[n-2] == '\r' && l[n-1] == '\n' {
			return CRLF
		}
		if n >= 1 && l[n-1] == '\n' {
			return LF
		}
		if n >= 1 && l[n-1] == '\r' {
			return CR
		}
	}
	return LF
}

// normalizeTerminators rewrites every non-final line's terminator to
// match ending. It is applied once, at load time, to content loaded with
// an explicitly requested line ending; edits afterward preserve whatever
// terminators are literally inserted rather than silently rewriting them.
func normalizeTerminators(lines [][]codec.Codepoint, ending LineEnding) [][]codec.Codepoint {
	term := rawCodepoints(ending.Bytes())
	out := make([][]codec.Codepoint, len(lines))
	for i, l := range lines {
		content, had := stripTerminator(l)
		if !had {
			out[i] = l
			continue
		}
		combined := make([]codec.Codepoint, 0, len(content)+len(term))
		combined = append(combined, content...)
		combined = append(combined, term...)
		out[i] = combined
	}
	return out
}

func rawCodepoints(b []byte) []codec.Codepoint {
	out := make([]codec.Codepoint, len(b))
	for i, c := range b {
		out[i] = codec.Codepoint(c)
	}
	return out
}

// lineByteLen returns the UTF-8 byte length of a line's decoded content.
func lineByteLen(l []codec.Codepoint) int {
	total := 0
	for _, c := range l {
		n, err := codec.ByteLen(c)
		if err != nil {
			n = len(string(c))
		}
		total += n
	}
	return total
}

// columnFromByteOffset returns the codepoint index within line whose
// encoded byte offset equals byteOff exactly. byteOff is assumed to land
// on a codepoint boundary, which buffer's own conversions guarantee.
func columnFromByteOffset(line []codec.Codepoint, byteOff int) int {
	acc := 0
	for i, c := range line {
		if acc == byteOff {
			return i
		}
		n, err := codec.ByteLen(c)
		if err != nil {
			n = len(string(c))
		}
		acc += n
	}
	return len(line)
}

// byteOffsetFromColumn returns the byte offset within line of codepoint
// index col.
func byteOffsetFromColumn(line []codec.Codepoint, col int) int {
	if col > len(line) {
		col = len(line)
	}
	return lineByteLen(line[:col])
}

// visualColumn expands codepoints[0:col] into a visual column count: a
// tab advances to the next multiple of tabWidth, every other codepoint
// (including double-width CJK and emoji) counts exactly one column.
func visualColumn(line []codec.Codepoint, col, tabWidth int) int {
	if col > len(line) {
		col = len(line)
	}
	v := 0
	for _, c := range line[:col] {
		if c == '\t' {
			v += tabWidth - (v % tabWidth)
		} else {
			v++
		}
	}
	return v
}

// codepointColumnFromVisual returns the codepoint column whose visual
// column is the closest one not exceeding v.
func codepointColumnFromVisual(line []codec.Codepoint, v, tabWidth int) int {
	cur := 0
	for i, c := range line {
		var next int
		if c == '\t' {
			next = cur + (tabWidth - (cur % tabWidth))
		} else {
			next = cur + 1
		}
		if next > v {
			return i
		}
		cur = next
	}
	return len(line)
}
