// Package codec converts between UTF-8 bytes and the buffer's internal
// codepoint representation, and segments codepoint sequences into extended
// grapheme clusters.
//
// Buffer content is stored decoded as a sequence of Codepoints, never as
// raw UTF-8. UTF-8 is used only at the file I/O boundary (load/save) and
// when a caller asks for a byte-oriented view of a line.
//
// Grapheme segmentation follows Unicode UAX #29 via
// github.com/rivo/uniseg, so regional indicators, zero-width joiner
// sequences, and combining marks all cluster the way a terminal or GUI
// text layout engine would render them.
package codec
