package token

import "testing"

func TestLookupKeyword(t *testing.T) {
	tests := []struct {
		in   string
		want Kind
		ok   bool
	}{
		{"fun", KwFun, true},
		{"typealias", KwTypeAlias, true},
		{"when", KwWhen, true},
		{"Fun", Invalid, false},
		{"private", Invalid, false}, // модификаторы - мягкие ключевые слова
		{"data", Invalid, false},
	}
	for _, tt := range tests {
		got, ok := LookupKeyword(tt.in)
		if ok != tt.ok || (ok && got != tt.want) {
			t.Errorf("LookupKeyword(%q) = %v, %v; want %v, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestKindString(t *testing.T) {
	if KwFun.String() != "fun" || SafeDot.String() != "?." || EOF.String() != "EOF" {
		t.Fatalf("unexpected kind names: %s %s %s", KwFun, SafeDot, EOF)
	}
}

func TestTokenName(t *testing.T) {
	tok := Token{Kind: Ident, Text: "`object`"}
	if tok.Name() != "object" {
		t.Errorf("Name() = %q", tok.Name())
	}
	plain := Token{Kind: Ident, Text: "foo"}
	if plain.Name() != "foo" {
		t.Errorf("Name() = %q", plain.Name())
	}
}

func TestTriviaNewlines(t *testing.T) {
	tr := Trivia{Kind: TriviaNewline, Text: "\n\n\n"}
	if tr.Newlines() != 3 {
		t.Errorf("Newlines() = %d", tr.Newlines())
	}
	if (Trivia{Kind: TriviaLineComment, Text: "// x"}).Newlines() != 0 {
		t.Errorf("comment must not count newlines")
	}
	if !(Trivia{Kind: TriviaDocBlock}).IsComment() {
		t.Errorf("doc block is a comment")
	}
}
