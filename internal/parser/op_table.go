package parser

import "kremap/internal/token"

// Таблица приоритетов для бинарных операторов.
// Чем больше число, тем выше приоритет.
const (
	precDisjunction    = 1  // ||
	precConjunction    = 2  // &&
	precEquality       = 3  // == != === !==
	precComparison     = 4  // < > <= >=
	precNamedCheck     = 5  // in !in is !is
	precElvis          = 6  // ?:
	precInfix          = 7  // a to b
	precRange          = 8  // ..
	precAdditive       = 9  // + -
	precMultiplicative = 10 // * / %
)

// binaryOp возвращает приоритет и текст оператора под курсором.
// width - сколько токенов занимает оператор ("!in" - два).
func (p *Parser) binaryOp() (prec int, op string, width int) {
	tok := p.peek()
	switch tok.Kind {
	case token.OrOr:
		return precDisjunction, tok.Text, 1
	case token.AndAnd:
		return precConjunction, tok.Text, 1
	case token.EqEq, token.BangEq, token.EqEqEq, token.BangEqEq:
		return precEquality, tok.Text, 1
	case token.Lt, token.Gt, token.LtEq, token.GtEq:
		return precComparison, tok.Text, 1
	case token.KwIn, token.KwIs:
		return precNamedCheck, tok.Text, 1
	case token.Bang:
		next := p.peekN(1)
		if (next.Kind == token.KwIn || next.Kind == token.KwIs) && len(next.Leading) == 0 {
			return precNamedCheck, "!" + next.Text, 2
		}
	case token.Elvis:
		return precElvis, tok.Text, 1
	case token.Ident:
		return precInfix, tok.Text, 1
	case token.DotDot:
		return precRange, tok.Text, 1
	case token.Plus, token.Minus:
		return precAdditive, tok.Text, 1
	case token.Star, token.Slash, token.Percent:
		return precMultiplicative, tok.Text, 1
	}
	return -1, "", 0
}

// continuesAcrossNewline - операторы, перед которыми допустим перевод строки.
func continuesAcrossNewline(op string) bool {
	switch op {
	case "&&", "||", "?:":
		return true
	}
	return false
}
