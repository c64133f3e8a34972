package text

import "sort"

// LineIndex records the newline positions of one source text so byte
// offsets and (line, column) positions can be translated both ways.
// Build it once per text; it is immutable and safe for concurrent use.
type LineIndex struct {
	// newlines[i] is the byte offset of the i-th '\n'.
	newlines []int
	len      int
}

func NewLineIndex(src string) *LineIndex {
	ix := &LineIndex{len: len(src)}
	for i := 0; i < len(src); i++ {
		if src[i] == '\n' {
			ix.newlines = append(ix.newlines, i)
		}
	}
	return ix
}

// Len is the length of the indexed text in bytes.
func (ix *LineIndex) Len() int { return ix.len }

// Position translates a byte offset to a (line, column) position.
// Offsets at or beyond MaxOffset map to MaxPosition so sentinel spans
// translate to sentinel ranges.
func (ix *LineIndex) Position(offset int) Position {
	if offset >= MaxOffset {
		return MaxPosition
	}
	n := len(ix.newlines)
	line := sort.Search(n, func(i int) bool {
		return ix.newlines[i] >= offset
	})
	if line == 0 {
		return Position{Line: 0, Column: offset}
	}
	return Position{Line: line, Column: offset - ix.newlines[line-1] - 1}
}

// Offset translates a (line, column) position back to a byte offset.
func (ix *LineIndex) Offset(p Position) int {
	if p == MaxPosition {
		return MaxOffset
	}
	if p.Line == 0 {
		return p.Column
	}
	if p.Line-1 >= len(ix.newlines) {
		return ix.len
	}
	return ix.newlines[p.Line-1] + 1 + p.Column
}

// Range translates a byte span to a position range.
func (ix *LineIndex) Range(s Span) Range {
	return NewRange(ix.Position(s.Start), ix.Position(s.End))
}

// Span translates a position range back to a byte span.
func (ix *LineIndex) Span(r Range) Span {
	return NewSpan(ix.Offset(r.Start), ix.Offset(r.End))
}
