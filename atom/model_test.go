package atom

import "testing"

func TestDominant(t *testing.T) {
	tests := []struct {
		name     string
		next     Atom
		prev     Atom
		expected bool
	}{
		{"hardline dominates space", Hardline(), Space(), true},
		{"blankline dominates hardline", Blankline(), Hardline(), true},
		{"blankline dominates space", Blankline(), Space(), true},
		{"space does not dominate hardline", Space(), Hardline(), false},
		{"hardline does not dominate blankline", Hardline(), Blankline(), false},
		{"space does not dominate space", Space(), Space(), false},
		{"hardline does not dominate hardline", Hardline(), Hardline(), false},
		{"blankline does not dominate blankline", Blankline(), Blankline(), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := dominant(tt.next, tt.prev); got != tt.expected {
				t.Errorf("dominant(%v, %v) = %v, want %v", tt.next.Kind, tt.prev.Kind, got, tt.expected)
			}
		})
	}
}

func TestIsWhitespace(t *testing.T) {
	whitespace := []Atom{Space(), Hardline(), Blankline()}
	for _, a := range whitespace {
		if !isWhitespace(a) {
			t.Errorf("expected %v to be whitespace", a.Kind)
		}
	}

	notWhitespace := []Atom{Leaf("x", 1), Literal("("), IndentStart(), IndentEnd(), DeleteBegin(), DeleteEnd()}
	for _, a := range notWhitespace {
		if isWhitespace(a) {
			t.Errorf("expected %v to not be whitespace", a.Kind)
		}
	}
}

func TestIsIndentMarker(t *testing.T) {
	if !isIndentMarker(IndentStart()) || !isIndentMarker(IndentEnd()) {
		t.Error("expected IndentStart/IndentEnd to be indent markers")
	}
	if isIndentMarker(Space()) {
		t.Error("expected Space to not be an indent marker")
	}
}
