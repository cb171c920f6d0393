package lexer

import (
	"kremap/internal/diag"
	"kremap/internal/token"
)

// scanString сканирует "..." и """...""". Шаблоны $name и ${...} остаются в тексте
// как есть; внутри ${...} учитываем вложенные скобки и строки.
func (lx *Lexer) scanString() token.Token {
	start := lx.cursor.Mark()
	if lx.cursor.HasPrefix(`"""`) {
		return lx.scanRawString(start)
	}
	lx.cursor.Bump() // opening '"'
	if lx.scanStringBody() {
		sp := lx.cursor.SpanFrom(start)
		return token.Token{Kind: token.StringLit, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
	}
	sp := lx.cursor.SpanFrom(start)
	lx.errLex(diag.LexUnterminatedString, sp, "unterminated string literal")
	return token.Token{Kind: token.Invalid, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
}

// scanStringBody съедает тело строки до закрывающей '"' включительно.
func (lx *Lexer) scanStringBody() bool {
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		switch {
		case b == '"':
			lx.cursor.Bump()
			return true
		case b == '\\':
			lx.cursor.Bump()
			if lx.cursor.EOF() {
				return false
			}
			lx.cursor.Bump()
		case b == '\n':
			return false
		case b == '$':
			lx.cursor.Bump()
			if lx.cursor.Peek() == '{' {
				lx.cursor.Bump()
				if !lx.skipTemplateExpr() {
					return false
				}
			}
		default:
			lx.cursor.Bump()
		}
	}
	return false
}

// skipTemplateExpr пропускает выражение шаблона до парной '}'.
func (lx *Lexer) skipTemplateExpr() bool {
	depth := 1
	for !lx.cursor.EOF() {
		switch lx.cursor.Peek() {
		case '{':
			depth++
			lx.cursor.Bump()
		case '}':
			lx.cursor.Bump()
			depth--
			if depth == 0 {
				return true
			}
		case '"':
			lx.cursor.Bump()
			if !lx.scanStringBody() {
				return false
			}
		case '\n':
			return false
		default:
			lx.cursor.Bump()
		}
	}
	return false
}

func (lx *Lexer) scanRawString(start Mark) token.Token {
	lx.cursor.EatString(`"""`)
	for !lx.cursor.EOF() {
		if lx.cursor.EatString(`"""`) {
			// """a"""" - лишние кавычки принадлежат строке
			for lx.cursor.Peek() == '"' {
				lx.cursor.Bump()
			}
			sp := lx.cursor.SpanFrom(start)
			return token.Token{Kind: token.StringLit, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
		}
		lx.cursor.Bump()
	}
	sp := lx.cursor.SpanFrom(start)
	lx.errLex(diag.LexUnterminatedString, sp, "unterminated raw string literal")
	return token.Token{Kind: token.Invalid, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
}

// 'c', '\n', 'A'
func (lx *Lexer) scanChar() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // opening '\''
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if b == '\n' {
			break
		}
		lx.cursor.Bump()
		if b == '\\' {
			lx.cursor.Bump()
			continue
		}
		if b == '\'' {
			sp := lx.cursor.SpanFrom(start)
			return token.Token{Kind: token.CharLit, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
		}
	}
	sp := lx.cursor.SpanFrom(start)
	lx.errLex(diag.LexUnterminatedChar, sp, "unterminated character literal")
	return token.Token{Kind: token.Invalid, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
}
