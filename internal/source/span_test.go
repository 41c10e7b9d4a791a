package source

import (
	"testing"
)

func TestSpan_ShiftLeft(t *testing.T) {
	tests := []struct {
		name     string
		span     Span
		shift    uint32
		expected Span
	}{
		{
			name:     "shift normal span left by 5",
			span:     Span{File: 1, Start: 10, End: 20},
			shift:    5,
			expected: Span{File: 1, Start: 5, End: 15},
		},
		{
			name:     "shift equals start - boundary case",
			span:     Span{File: 1, Start: 10, End: 20},
			shift:    10,
			expected: Span{File: 1, Start: 0, End: 10},
		},
		{
			name:     "shift larger than start - returns original",
			span:     Span{File: 1, Start: 10, End: 20},
			shift:    15,
			expected: Span{File: 1, Start: 10, End: 20},
		},
		{
			name:     "shift zero-length span",
			span:     Span{File: 1, Start: 10, End: 10},
			shift:    3,
			expected: Span{File: 1, Start: 7, End: 7},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.span.ShiftLeft(tt.shift); got != tt.expected {
				t.Errorf("ShiftLeft(%d) = %v, want %v", tt.shift, got, tt.expected)
			}
		})
	}
}

func TestSpan_Cover(t *testing.T) {
	a := Span{Start: 4, End: 8}
	b := Span{Start: 2, End: 6}
	if got := a.Cover(b); got != (Span{Start: 2, End: 8}) {
		t.Fatalf("Cover = %v", got)
	}
	other := Span{File: 1, Start: 0, End: 100}
	if got := a.Cover(other); got != a {
		t.Fatalf("Cover across files must keep receiver, got %v", got)
	}
}

func TestSpan_Within(t *testing.T) {
	cases := []struct {
		span Span
		n    uint32
		want bool
	}{
		{Span{Start: 0, End: 0}, 0, true},
		{Span{Start: 0, End: 5}, 5, true},
		{Span{Start: 3, End: 6}, 5, false},
		{Span{Start: 4, End: 2}, 5, false},
	}
	for _, c := range cases {
		if got := c.span.Within(c.n); got != c.want {
			t.Errorf("%v.Within(%d) = %v, want %v", c.span, c.n, got, c.want)
		}
	}
}

func TestSpan_Zeroide(t *testing.T) {
	s := Span{File: 2, Start: 3, End: 9}
	if got := s.ZeroideToStart(); got != (Span{File: 2, Start: 3, End: 3}) {
		t.Errorf("ZeroideToStart = %v", got)
	}
	if got := s.ZeroideToEnd(); got != (Span{File: 2, Start: 9, End: 9}) {
		t.Errorf("ZeroideToEnd = %v", got)
	}
}
