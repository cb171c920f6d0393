package lexer

import (
	"kremap/internal/diag"
	"kremap/internal/token"
)

// collectLeadingTrivia собирает подряд идущие trivia перед значимым токеном.
// - ' ', '\t' и '\r' коалесцируются в один TriviaSpace
// - последовательные '\n' коалесцируются в один TriviaNewline (пробелы между ними поглощаются)
// - //... до \n -> TriviaLineComment
// - /* ... */ -> TriviaBlockComment (вложенность поддерживается)
// - /** ... */ -> TriviaDocBlock
func (lx *Lexer) collectLeadingTrivia() {
	lx.hold = nil
	for !lx.cursor.EOF() {
		start := lx.cursor.Mark()
		b := lx.cursor.Peek()

		if b == ' ' || b == '\t' || b == '\r' {
			for isSpace(lx.cursor.Peek()) {
				lx.cursor.Bump()
			}
			if lx.cursor.Peek() == '\n' {
				// пробелы в конце строки не интересны - сливаем с переводом строки
				lx.scanNewlines(start)
				continue
			}
			lx.pushTrivia(token.TriviaSpace, start)
			continue
		}

		if b == '\n' {
			lx.scanNewlines(start)
			continue
		}

		if b == '/' && lx.scanCommentIntoHold() {
			continue
		}

		break
	}
}

// scanNewlines съедает '\n' и все следующие строки, состоящие только из пробелов.
// Отступ последней строки остаётся для отдельного TriviaSpace.
func (lx *Lexer) scanNewlines(start Mark) {
	for {
		lx.cursor.Bump() // '\n'
		save := lx.cursor.Mark()
		for isSpace(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
		if lx.cursor.Peek() != '\n' {
			lx.cursor.Reset(save)
			break
		}
	}
	lx.pushTrivia(token.TriviaNewline, start)
}

func (lx *Lexer) pushTrivia(kind token.TriviaKind, start Mark) {
	sp := lx.cursor.SpanFrom(start)
	lx.hold = append(lx.hold, token.Trivia{
		Kind: kind,
		Span: sp,
		Text: string(lx.file.Content[sp.Start:sp.End]),
	})
}

// //... , /*...*/ , /**...*/
func (lx *Lexer) scanCommentIntoHold() bool {
	start := lx.cursor.Mark()
	if !lx.cursor.Eat('/') {
		return false
	}
	switch lx.cursor.Peek() {
	case '/':
		for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
			lx.cursor.Bump()
		}
		lx.pushTrivia(token.TriviaLineComment, start)
		return true

	case '*':
		lx.cursor.Bump()
		kind := token.TriviaBlockComment
		if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '*' && b1 != '/' {
			kind = token.TriviaDocBlock
		}
		depth := 1
		for !lx.cursor.EOF() && depth > 0 {
			if b0, b1, ok := lx.cursor.Peek2(); ok {
				if b0 == '/' && b1 == '*' {
					lx.cursor.Bump()
					lx.cursor.Bump()
					depth++
					continue
				}
				if b0 == '*' && b1 == '/' {
					lx.cursor.Bump()
					lx.cursor.Bump()
					depth--
					continue
				}
			}
			lx.cursor.Bump()
		}
		if depth > 0 {
			lx.errLex(diag.LexUnterminatedBlockComment, lx.cursor.SpanFrom(start), "unterminated block comment")
		}
		lx.pushTrivia(kind, start)
		return true

	default:
		// это не комментарий - вернёмся, пусть сканируется как оператор '/'
		lx.cursor.Reset(start)
		return false
	}
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\r'
}
