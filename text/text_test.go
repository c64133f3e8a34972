package text

import "testing"

func TestSpanRepair(t *testing.T) {
	s := NewSpan(5, 3)
	if s.Start != 5 || s.End != 5 {
		t.Errorf("expected collapse to {5,5}, got %s", s)
	}
	if !s.IsEmpty() {
		t.Errorf("collapsed span should be empty")
	}
}

func TestRangeRepair(t *testing.T) {
	r := NewRange(Position{Line: 2, Column: 1}, Position{Line: 1, Column: 9})
	if r.End != r.Start {
		t.Errorf("expected collapse to start, got %s", r)
	}
}

func TestSpanContains(t *testing.T) {
	s := NewSpan(2, 5)
	for _, tc := range []struct {
		offset int
		want   bool
	}{
		{1, false},
		{2, true},
		{4, true},
		{5, false},
	} {
		if got := s.Contains(tc.offset); got != tc.want {
			t.Errorf("Contains(%d) = %v, want %v", tc.offset, got, tc.want)
		}
	}
}

func TestLineIndexPositions(t *testing.T) {
	src := "ab\ncde\n\nf"
	ix := NewLineIndex(src)
	cases := []struct {
		offset int
		want   Position
	}{
		{0, Position{0, 0}},
		{1, Position{0, 1}},
		{2, Position{0, 2}},  // the newline itself
		{3, Position{1, 0}},
		{6, Position{1, 3}},
		{7, Position{2, 0}},
		{8, Position{3, 0}},
		{9, Position{3, 1}}, // end of input
	}
	for _, tc := range cases {
		got := ix.Position(tc.offset)
		if got != tc.want {
			t.Errorf("Position(%d) = %s, want %s", tc.offset, got, tc.want)
		}
		if back := ix.Offset(got); back != tc.offset {
			t.Errorf("Offset(%s) = %d, want %d", got, back, tc.offset)
		}
	}
}

func TestLineIndexMaxOffset(t *testing.T) {
	ix := NewLineIndex("x")
	if got := ix.Position(MaxOffset); got != MaxPosition {
		t.Errorf("Position(MaxOffset) = %s, want MaxPosition", got)
	}
}

func TestLineIndexRange(t *testing.T) {
	ix := NewLineIndex("key = 1\nother = 2\n")
	r := ix.Range(NewSpan(8, 13))
	want := Range{Start: Position{1, 0}, End: Position{1, 5}}
	if r != want {
		t.Errorf("Range = %s, want %s", r, want)
	}
}

func TestMaxSentinelsCompareGreater(t *testing.T) {
	if MaxSpan.Cmp(NewSpan(0, 1<<20)) <= 0 {
		t.Errorf("MaxSpan should compare greater than real spans")
	}
	if MaxRange.Cmp(Range{Start: Position{9999, 0}, End: Position{9999, 80}}) <= 0 {
		t.Errorf("MaxRange should compare greater than real ranges")
	}
}
