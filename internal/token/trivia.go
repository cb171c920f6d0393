package token

import (
	"strings"

	"kremap/internal/source"
)

type TriviaKind uint8

const (
	TriviaSpace TriviaKind = iota
	TriviaNewline
	TriviaLineComment
	TriviaBlockComment
	TriviaDocBlock
)

func (k TriviaKind) String() string {
	switch k {
	case TriviaSpace:
		return "Space"
	case TriviaNewline:
		return "Newline"
	case TriviaLineComment:
		return "LineComment"
	case TriviaBlockComment:
		return "BlockComment"
	case TriviaDocBlock:
		return "DocBlock"
	default:
		return "Unknown"
	}
}

type Trivia struct {
	Kind TriviaKind
	Span source.Span
	Text string
}

// IsComment reports whether the trivia is any kind of comment.
func (t Trivia) IsComment() bool {
	return t.Kind == TriviaLineComment || t.Kind == TriviaBlockComment || t.Kind == TriviaDocBlock
}

// Newlines returns the number of line breaks in a newline trivia run.
func (t Trivia) Newlines() int {
	if t.Kind != TriviaNewline {
		return 0
	}
	return strings.Count(t.Text, "\n")
}
