package lexer

import (
	"kremap/internal/diag"
	"kremap/internal/token"
)

// Поддержка: 0, 123, 1_000, 0b..., 0x..., 1.0, .5, 1e-3, суффиксы L, u, U, f, F.
// Неверные формы - репорт в opts.Reporter, токен по возможности завершаем.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()
	kind := token.IntLit

	emit := func() token.Token {
		sp := lx.cursor.SpanFrom(start)
		return token.Token{Kind: kind, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
	}
	bad := func(msg string) token.Token {
		sp := lx.cursor.SpanFrom(start)
		lx.errLex(diag.LexBadNumber, sp, msg)
		return token.Token{Kind: token.Invalid, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
	}

	if lx.cursor.Peek() == '0' {
		if _, b1, ok := lx.cursor.Peek2(); ok {
			switch b1 {
			case 'x', 'X':
				lx.cursor.Bump()
				lx.cursor.Bump()
				if !isHex(lx.cursor.Peek()) {
					return bad("expected hex digit after '0x'")
				}
				for isHex(lx.cursor.Peek()) || lx.cursor.Peek() == '_' {
					lx.cursor.Bump()
				}
				lx.scanIntSuffix()
				return emit()
			case 'b', 'B':
				lx.cursor.Bump()
				lx.cursor.Bump()
				if b := lx.cursor.Peek(); b != '0' && b != '1' {
					return bad("expected binary digit after '0b'")
				}
				for b := lx.cursor.Peek(); b == '0' || b == '1' || b == '_'; b = lx.cursor.Peek() {
					lx.cursor.Bump()
				}
				lx.scanIntSuffix()
				return emit()
			}
		}
	}

	// целая часть (может отсутствовать для ".5")
	for isDec(lx.cursor.Peek()) || lx.cursor.Peek() == '_' {
		lx.cursor.Bump()
	}

	// дробная часть: только если после точки цифра ("1..2" и "1.foo" - не дробь)
	if lx.isNumberAfterDot() {
		kind = token.FloatLit
		lx.cursor.Bump() // '.'
		for isDec(lx.cursor.Peek()) || lx.cursor.Peek() == '_' {
			lx.cursor.Bump()
		}
	}

	if b := lx.cursor.Peek(); b == 'e' || b == 'E' {
		kind = token.FloatLit
		lx.cursor.Bump()
		if b := lx.cursor.Peek(); b == '+' || b == '-' {
			lx.cursor.Bump()
		}
		if !isDec(lx.cursor.Peek()) {
			return bad("expected digit after exponent")
		}
		for isDec(lx.cursor.Peek()) || lx.cursor.Peek() == '_' {
			lx.cursor.Bump()
		}
	}

	switch lx.cursor.Peek() {
	case 'f', 'F':
		kind = token.FloatLit
		lx.cursor.Bump()
	default:
		if kind == token.IntLit {
			lx.scanIntSuffix()
		}
	}
	return emit()
}

// u, U, L, uL, UL
func (lx *Lexer) scanIntSuffix() {
	if b := lx.cursor.Peek(); b == 'u' || b == 'U' {
		lx.cursor.Bump()
	}
	if lx.cursor.Peek() == 'L' {
		lx.cursor.Bump()
	}
}
