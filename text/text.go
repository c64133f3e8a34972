// Package text provides byte-offset and line/column coordinates for
// source text, plus the line index that translates between them.
//
// Everything structural in the toolchain stores and compares byte
// offsets only; (line, column) ranges are derived on demand through a
// [LineIndex].
package text

import "fmt"

// MaxOffset is a sentinel byte offset greater than any offset into real
// source text. The EOF token uses it so lookahead never needs a
// presence check.
const MaxOffset = int(^uint32(0) >> 1)

// Span is a half-open [Start, End) byte interval into source text.
type Span struct {
	Start, End int
}

// MaxSpan compares greater than the span of any real token.
var MaxSpan = Span{Start: MaxOffset, End: MaxOffset}

func NewSpan(start, end int) Span {
	if start > end {
		warnf("invalid text.Span: start %d > end %d", start, end)
		end = start
	}
	return Span{Start: start, End: end}
}

func (s Span) Len() int { return s.End - s.Start }

func (s Span) IsEmpty() bool { return s.Start == s.End }

// Contains reports whether the byte offset falls inside the span.
func (s Span) Contains(offset int) bool {
	return s.Start <= offset && offset < s.End
}

// Cmp orders spans by start, then end.
func (s Span) Cmp(o Span) int {
	switch {
	case s.Start != o.Start:
		return cmpInt(s.Start, o.Start)
	default:
		return cmpInt(s.End, o.End)
	}
}

func (s Span) String() string {
	return fmt.Sprintf("%d..%d", s.Start, s.End)
}

// Position is a zero-based (line, column) location. Columns count
// bytes from the start of the line.
type Position struct {
	Line, Column int
}

// MaxPosition compares greater than any position in real source text.
var MaxPosition = Position{Line: MaxOffset, Column: MaxOffset}

func (p Position) Cmp(o Position) int {
	switch {
	case p.Line != o.Line:
		return cmpInt(p.Line, o.Line)
	default:
		return cmpInt(p.Column, o.Column)
	}
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Range is the (line, column) counterpart of a Span.
//
// Invariant: Start <= End. NewRange repairs a violation by collapsing
// to a zero-width range at Start rather than failing; a parse must
// never abort because of a coordinate bug.
type Range struct {
	Start, End Position
}

// MaxRange compares greater than the range of any real token.
var MaxRange = Range{Start: MaxPosition, End: MaxPosition}

func NewRange(start, end Position) Range {
	if start.Cmp(end) > 0 {
		warnf("invalid text.Range: start %s > end %s", start, end)
		end = start
	}
	return Range{Start: start, End: end}
}

// RangeAt is the zero-width range at a single position.
func RangeAt(p Position) Range {
	return Range{Start: p, End: p}
}

func (r Range) IsEmpty() bool { return r.Start == r.End }

func (r Range) Contains(p Position) bool {
	return r.Start.Cmp(p) <= 0 && p.Cmp(r.End) <= 0
}

// Cmp orders ranges by start, then end.
func (r Range) Cmp(o Range) int {
	switch {
	case r.Start != o.Start:
		return r.Start.Cmp(o.Start)
	default:
		return r.End.Cmp(o.End)
	}
}

func (r Range) String() string {
	return fmt.Sprintf("%s..%s", r.Start, r.End)
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
