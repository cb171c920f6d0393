package mapping

import (
	"slices"
	"testing"
)

func TestClassResolvesInnerClasses(t *testing.T) {
	s := NewSet()
	s.Add("net/obf/TestObf", "deobf/TestDeobf")
	s.Add("net/obf/TestObf$b", "deobf/TestDeobf$Named")

	tests := []struct {
		obf  string
		want string
		ok   bool
	}{
		{"net/obf/TestObf", "deobf/TestDeobf", true},
		{"net/obf/TestObf$a", "deobf/TestDeobf$a", true},
		{"net/obf/TestObf$b", "deobf/TestDeobf$Named", true},
		{"net/obf/TestObf$b$c", "deobf/TestDeobf$Named$c", true},
		{"net/obf/Other", "", false},
		{"$x", "", false},
	}
	for _, tt := range tests {
		got, ok := s.Class(tt.obf)
		if got != tt.want || ok != tt.ok {
			t.Fatalf("Class(%q): want %q %v, got %q %v", tt.obf, tt.want, tt.ok, got, ok)
		}
	}
}

func TestAddNormalizesNames(t *testing.T) {
	s := NewSet()
	// "e" + combining acute accent, stored as the precomposed form
	s.Add("a/Cafe\u0301", "b/Cafe\u0301")
	if got, ok := s.Lookup("a/Caf\u00e9"); !ok || got != "b/Caf\u00e9" {
		t.Fatalf("lookup by composed name failed: %q %v", got, ok)
	}
}

func TestEntriesSortedAndReverse(t *testing.T) {
	s := NewSet()
	s.Add("b/B", "y/Y")
	s.Add("a/A", "x/X")
	got := s.Entries()
	want := []Entry{{"a/A", "x/X"}, {"b/B", "y/Y"}}
	if !slices.Equal(got, want) {
		t.Fatalf("want %v, got %v", want, got)
	}
	if d, ok := s.Reverse().Lookup("x/X"); !ok || d != "a/A" {
		t.Fatalf("reverse lookup failed: %q %v", d, ok)
	}
}

func TestNilSet(t *testing.T) {
	var s *Set
	if s.Len() != 0 || s.Entries() != nil {
		t.Fatalf("nil set must be empty")
	}
	if _, ok := s.Class("a/B"); ok {
		t.Fatalf("nil set must not resolve")
	}
}

func TestSplitClass(t *testing.T) {
	got := SplitClass("deobf/Outer$Inner")
	if !slices.Equal(got, []string{"deobf", "Outer", "Inner"}) {
		t.Fatalf("unexpected split %v", got)
	}
}
