package token

import (
	"kremap/internal/source"
)

// Token represents a single source token with its location and trivia.
type Token struct {
	Kind    Kind
	Span    source.Span
	Text    string
	Leading []Trivia
}

// IsLiteral reports whether the token is a literal constant.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case IntLit, FloatLit, StringLit, CharLit, KwTrue, KwFalse, KwNull:
		return true
	default:
		return false
	}
}

// IsIdent reports whether the token is an identifier.
func (t Token) IsIdent() bool { return t.Kind == Ident }

// Name returns the identifier text without surrounding back-quotes.
func (t Token) Name() string {
	if t.Kind == Ident && len(t.Text) >= 2 && t.Text[0] == '`' && t.Text[len(t.Text)-1] == '`' {
		return t.Text[1 : len(t.Text)-1]
	}
	return t.Text
}

// NewlineBefore reports whether the leading trivia contains a line break.
// Kotlin treats such a break as a statement separator.
func (t Token) NewlineBefore() bool {
	for _, tr := range t.Leading {
		if tr.Kind == TriviaNewline {
			return true
		}
	}
	return false
}
