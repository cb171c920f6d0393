package lexer_test

import (
	"fmt"
	"strings"
	"testing"

	"kremap/internal/diag"
	"kremap/internal/lexer"
	"kremap/internal/source"
	"kremap/internal/token"
)

// testReporter собирает все диагностики, полученные от лексера
type testReporter struct {
	diagnostics []diag.Diagnostic
}

func (r *testReporter) Report(code diag.Code, sev diag.Severity, primary source.Span, msg string, notes []diag.Note) {
	r.diagnostics = append(r.diagnostics, diag.Diagnostic{
		Severity: sev,
		Code:     code,
		Message:  msg,
		Primary:  primary,
		Notes:    notes,
	})
}

func (r *testReporter) codes() []diag.Code {
	out := make([]diag.Code, 0, len(r.diagnostics))
	for _, d := range r.diagnostics {
		out = append(out, d.Code)
	}
	return out
}

func makeTestLexer(input string) (*lexer.Lexer, *testReporter) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.kt", []byte(input))
	reporter := &testReporter{}
	return lexer.New(fs.Get(fileID), lexer.Options{Reporter: reporter}), reporter
}

func tokensToString(tokens []token.Token) string {
	parts := make([]string, len(tokens))
	for i, tok := range tokens {
		parts[i] = fmt.Sprintf("%v(%q)", tok.Kind, tok.Text)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func expectTokens(t *testing.T, input string, expected []token.Kind) {
	t.Helper()
	lx, reporter := makeTestLexer(input)
	tokens := lx.All()
	tokens = tokens[:len(tokens)-1] // EOF

	if len(tokens) != len(expected) {
		t.Fatalf("expected %d tokens, got %d\ninput: %q\ntokens: %s\ncodes: %v",
			len(expected), len(tokens), input, tokensToString(tokens), reporter.codes())
	}
	for i, tok := range tokens {
		if tok.Kind != expected[i] {
			t.Errorf("token %d: expected %v, got %v (text: %q)", i, expected[i], tok.Kind, tok.Text)
		}
	}
}

func expectSingleToken(t *testing.T, input string, kind token.Kind, text string) {
	t.Helper()
	lx, reporter := makeTestLexer(input)
	tok := lx.Next()
	if tok.Kind != kind {
		t.Errorf("expected kind %v, got %v (codes %v)", kind, tok.Kind, reporter.codes())
	}
	if tok.Text != text {
		t.Errorf("expected text %q, got %q", text, tok.Text)
	}
	if next := lx.Next(); next.Kind != token.EOF {
		t.Errorf("expected EOF after %q, got %v(%q)", input, next.Kind, next.Text)
	}
}

func TestIdentifiersAndKeywords(t *testing.T) {
	tests := []struct {
		input string
		kind  token.Kind
		text  string
	}{
		{"foo", token.Ident, "foo"},
		{"_bar", token.Ident, "_bar"},
		{"x123", token.Ident, "x123"},
		{"имя", token.Ident, "имя"},
		{"`fun`", token.Ident, "`fun`"},
		{"`with space`", token.Ident, "`with space`"},
		{"_", token.Underscore, "_"},
		{"package", token.KwPackage, "package"},
		{"typealias", token.KwTypeAlias, "typealias"},
		{"when", token.KwWhen, "when"},
		{"Fun", token.Ident, "Fun"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			expectSingleToken(t, tt.input, tt.kind, tt.text)
		})
	}
}

func TestQuotedIdentName(t *testing.T) {
	lx, _ := makeTestLexer("`in`")
	tok := lx.Next()
	if got := tok.Name(); got != "in" {
		t.Fatalf("Name() = %q, want %q", got, "in")
	}
}

func TestNumbers(t *testing.T) {
	tests := []struct {
		input string
		kind  token.Kind
	}{
		{"0", token.IntLit},
		{"1_000", token.IntLit},
		{"0xFF", token.IntLit},
		{"0b1010", token.IntLit},
		{"10L", token.IntLit},
		{"7uL", token.IntLit},
		{"1.5", token.FloatLit},
		{".5", token.FloatLit},
		{"1e10", token.FloatLit},
		{"2.5e-3", token.FloatLit},
		{"3f", token.FloatLit},
		{"1.0F", token.FloatLit},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			expectSingleToken(t, tt.input, tt.kind, tt.input)
		})
	}
}

func TestRangeIsNotFloat(t *testing.T) {
	expectTokens(t, "1..2", []token.Kind{token.IntLit, token.DotDot, token.IntLit})
	expectTokens(t, "1.inc()", []token.Kind{token.IntLit, token.Dot, token.Ident, token.LParen, token.RParen})
}

func TestStrings(t *testing.T) {
	tests := []string{
		`"hello"`,
		`"a\"b"`,
		`"x = $x"`,
		`"sum ${a + b}"`,
		`"nested ${ "inner ${x}" }"`,
		`"""raw
multi "line"
"""`,
		`"""quoted""""`,
		`'c'`,
		`'\n'`,
	}
	for _, in := range tests {
		t.Run(in, func(t *testing.T) {
			lx, reporter := makeTestLexer(in)
			tok := lx.Next()
			if tok.Kind != token.StringLit && tok.Kind != token.CharLit {
				t.Fatalf("expected literal, got %v (codes %v)", tok.Kind, reporter.codes())
			}
			if tok.Text != in {
				t.Fatalf("text = %q, want %q", tok.Text, in)
			}
		})
	}
}

func TestOperators(t *testing.T) {
	expectTokens(t, "a?.b ?: c!! === d !== e", []token.Kind{
		token.Ident, token.SafeDot, token.Ident, token.Elvis, token.Ident, token.BangBang,
		token.EqEqEq, token.Ident, token.BangEqEq, token.Ident,
	})
	expectTokens(t, "x += 1; y++ -> z::class", []token.Kind{
		token.Ident, token.PlusAssign, token.IntLit, token.Semicolon, token.Ident, token.PlusPlus,
		token.Arrow, token.Ident, token.ColonColon, token.KwClass,
	})
	expectTokens(t, "@Ann(x) List<Int?>[0]", []token.Kind{
		token.At, token.Ident, token.LParen, token.Ident, token.RParen,
		token.Ident, token.Lt, token.Ident, token.Question, token.Gt,
		token.LBracket, token.IntLit, token.RBracket,
	})
}

func TestLeadingTrivia(t *testing.T) {
	lx, _ := makeTestLexer("// a\n// b\n\n\n  /* c */ val")
	tok := lx.Next()
	if tok.Kind != token.KwVal {
		t.Fatalf("expected val, got %v", tok.Kind)
	}
	kinds := make([]token.TriviaKind, 0, len(tok.Leading))
	for _, tr := range tok.Leading {
		kinds = append(kinds, tr.Kind)
	}
	want := []token.TriviaKind{
		token.TriviaLineComment,
		token.TriviaNewline,
		token.TriviaLineComment,
		token.TriviaNewline,
		token.TriviaSpace,
		token.TriviaBlockComment,
		token.TriviaSpace,
	}
	if fmt.Sprint(kinds) != fmt.Sprint(want) {
		t.Fatalf("trivia kinds = %v, want %v", kinds, want)
	}
	if n := tok.Leading[3].Newlines(); n != 3 {
		t.Fatalf("newline run = %d, want 3", n)
	}
	if !tok.NewlineBefore() {
		t.Fatalf("NewlineBefore() = false")
	}
}

func TestDocAndNestedBlockComments(t *testing.T) {
	lx, reporter := makeTestLexer("/** doc */ /* a /* b */ c */ x")
	tok := lx.Next()
	if len(reporter.diagnostics) != 0 {
		t.Fatalf("unexpected diagnostics: %v", reporter.codes())
	}
	if tok.Kind != token.Ident || tok.Text != "x" {
		t.Fatalf("got %v(%q)", tok.Kind, tok.Text)
	}
	if tok.Leading[0].Kind != token.TriviaDocBlock {
		t.Fatalf("first trivia = %v, want doc block", tok.Leading[0].Kind)
	}
	if tok.Leading[2].Text != "/* a /* b */ c */" {
		t.Fatalf("nested comment text = %q", tok.Leading[2].Text)
	}
}

func TestEOFCarriesTrailingTrivia(t *testing.T) {
	lx, _ := makeTestLexer("x\n// tail\n")
	_ = lx.Next()
	eof := lx.Next()
	if eof.Kind != token.EOF {
		t.Fatalf("expected EOF, got %v", eof.Kind)
	}
	found := false
	for _, tr := range eof.Leading {
		if tr.Kind == token.TriviaLineComment && tr.Text == "// tail" {
			found = true
		}
	}
	if !found {
		t.Fatalf("EOF trivia lost the trailing comment: %+v", eof.Leading)
	}
}

func TestPeekDoesNotConsume(t *testing.T) {
	lx, _ := makeTestLexer("a b")
	if p := lx.Peek(); p.Text != "a" {
		t.Fatalf("Peek = %q", p.Text)
	}
	if n := lx.Next(); n.Text != "a" {
		t.Fatalf("Next after Peek = %q", n.Text)
	}
	if n := lx.Next(); n.Text != "b" {
		t.Fatalf("second Next = %q", n.Text)
	}
}

func TestLexErrors(t *testing.T) {
	tests := []struct {
		input string
		code  diag.Code
	}{
		{`"open`, diag.LexUnterminatedString},
		{`"""open`, diag.LexUnterminatedString},
		{"'c", diag.LexUnterminatedChar},
		{"`open", diag.LexUnterminatedIdent},
		{"/* open", diag.LexUnterminatedBlockComment},
		{"0x", diag.LexBadNumber},
		{"1e+", diag.LexBadNumber},
		{"#", diag.LexUnknownChar},
		{"§", diag.LexUnknownChar},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			lx, reporter := makeTestLexer(tt.input)
			_ = lx.All()
			if len(reporter.diagnostics) == 0 {
				t.Fatalf("expected %v, got no diagnostics", tt.code)
			}
			if reporter.diagnostics[0].Code != tt.code {
				t.Fatalf("code = %v, want %v", reporter.diagnostics[0].Code, tt.code)
			}
		})
	}
}
