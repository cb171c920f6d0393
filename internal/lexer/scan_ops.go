package lexer

import (
	"kremap/internal/diag"
	"kremap/internal/token"
)

// multiCharOps проверяются по порядку, поэтому длинные идут раньше своих
// префиксов ("===" до "==").
var multiCharOps = []struct {
	text string
	kind token.Kind
}{
	{"===", token.EqEqEq},
	{"!==", token.BangEqEq},
	{"..", token.DotDot},
	{"::", token.ColonColon},
	{"->", token.Arrow},
	{"&&", token.AndAnd},
	{"||", token.OrOr},
	{"==", token.EqEq},
	{"!=", token.BangEq},
	{"!!", token.BangBang},
	{"<=", token.LtEq},
	{">=", token.GtEq},
	{"?.", token.SafeDot},
	{"?:", token.Elvis},
	{"++", token.PlusPlus},
	{"--", token.MinusMinus},
	{"+=", token.PlusAssign},
	{"-=", token.MinusAssign},
	{"*=", token.StarAssign},
	{"/=", token.SlashAssign},
	{"%=", token.PercentAssign},
}

var singleCharOps = [utf8RuneSelf]token.Kind{
	'+': token.Plus, '-': token.Minus, '*': token.Star, '/': token.Slash,
	'%': token.Percent, '=': token.Assign, '!': token.Bang, '<': token.Lt,
	'>': token.Gt, '?': token.Question, ':': token.Colon, ';': token.Semicolon,
	',': token.Comma, '.': token.Dot, '(': token.LParen, ')': token.RParen,
	'{': token.LBrace, '}': token.RBrace, '[': token.LBracket, ']': token.RBracket,
	'@': token.At, '_': token.Underscore,
}

// scanOperatorOrPunct берёт самый длинный оператор под курсором.
func (lx *Lexer) scanOperatorOrPunct() token.Token {
	start := lx.cursor.Mark()
	kind := token.Invalid
	for _, op := range multiCharOps {
		if lx.cursor.EatString(op.text) {
			kind = op.kind
			break
		}
	}
	if kind == token.Invalid {
		if ch := lx.cursor.Peek(); ch < utf8RuneSelf {
			kind = singleCharOps[ch]
		}
		lx.bumpRune()
	}

	sp := lx.cursor.SpanFrom(start)
	text := string(lx.file.Content[sp.Start:sp.End])
	if kind == token.Invalid {
		lx.errLex(diag.LexUnknownChar, sp, "unknown character")
	}
	return token.Token{Kind: kind, Span: sp, Text: text}
}
