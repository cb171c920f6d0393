package parser

import (
	"kremap/internal/diag"
	"kremap/internal/source"
	"kremap/internal/token"
)

func (p *Parser) peek() token.Token {
	return p.toks[p.pos]
}

// peekN смотрит на n токенов вперёд; за концом всегда EOF.
func (p *Parser) peekN(n int) token.Token {
	if p.pos+n >= len(p.toks) {
		return p.toks[len(p.toks)-1]
	}
	return p.toks[p.pos+n]
}

func (p *Parser) at(k token.Kind) bool {
	return p.peek().Kind == k
}

func (p *Parser) atIdent(text string) bool {
	tok := p.peek()
	return tok.Kind == token.Ident && tok.Text == text
}

// advance - съедает текущий токен и обновляет lastSpan
func (p *Parser) advance() token.Token {
	tok := p.toks[p.pos]
	if tok.Kind != token.EOF {
		p.pos++
		p.lastSpan = tok.Span
	}
	return tok
}

func (p *Parser) eat(k token.Kind) bool {
	if p.at(k) {
		p.advance()
		return true
	}
	return false
}

// newlineBefore - был ли перевод строки перед текущим токеном.
func (p *Parser) newlineBefore() bool {
	return p.pos > 0 && p.peek().NewlineBefore()
}

// adjacent - текущий токен идёт вплотную к предыдущему.
func (p *Parser) adjacent() bool {
	return len(p.peek().Leading) == 0
}

// expect - ожидаем конкретный токен. Если нет - репортим и возвращаем false.
func (p *Parser) expect(k token.Kind, code diag.Code, msg string) (token.Token, bool) {
	if p.at(k) {
		return p.advance(), true
	}
	p.err(code, msg)
	return p.peek(), false
}

// getDiagnosticSpan - для EOF указываем на конец последнего токена.
func (p *Parser) getDiagnosticSpan() source.Span {
	tok := p.peek()
	if tok.Kind == token.EOF && p.lastSpan.End > 0 {
		return source.Span{File: p.lastSpan.File, Start: p.lastSpan.End, End: p.lastSpan.End}
	}
	return tok.Span
}

func (p *Parser) err(code diag.Code, msg string) {
	tok := p.peek()
	got := tok.Text
	if tok.Kind == token.EOF {
		got = "end of file"
	}
	p.report(code, p.getDiagnosticSpan(), msg+", got "+quoteTok(got))
}

func quoteTok(s string) string {
	if s == "end of file" {
		return s
	}
	return "\"" + s + "\""
}

func (p *Parser) report(code diag.Code, sp source.Span, msg string) {
	if p.muted > 0 {
		p.errors++
		return
	}
	p.errors++
	if p.opts.Reporter == nil {
		return
	}
	if p.opts.MaxErrors != 0 && p.errors > p.opts.MaxErrors {
		return
	}
	p.opts.Reporter.Report(code, diag.SevError, sp, msg, nil)
}

// speculate пробует разобрать конструкцию; при неудаче откатывает позицию.
// Ошибки внутри пробы не репортятся.
func (p *Parser) speculate(fn func() bool) bool {
	pos, last, errs := p.pos, p.lastSpan, p.errors
	p.muted++
	ok := fn() && p.errors == errs
	p.muted--
	if !ok {
		p.pos, p.lastSpan = pos, last
	}
	p.errors = errs
	return ok
}

// spanFrom покрывает всё от start до последнего съеденного токена.
func (p *Parser) spanFrom(start source.Span) source.Span {
	return source.Span{File: start.File, Start: start.Start, End: max(start.End, p.lastSpan.End)}
}

func (p *Parser) skipSemicolons() {
	for p.eat(token.Semicolon) {
	}
}

// expectSeparator - после инструкции/декларации нужен ';', перевод строки,
// закрывающая скобка или конец файла.
func (p *Parser) expectSeparator() {
	if p.eat(token.Semicolon) {
		return
	}
	if p.at(token.EOF) || p.at(token.RBrace) || p.newlineBefore() {
		return
	}
	p.err(diag.SynExpectSeparator, "expected newline or ';'")
}

// resyncStmt пропускает токены до конца строки, ';' или '}' текущего уровня.
func (p *Parser) resyncStmt(startPos int) {
	if p.pos == startPos && !p.at(token.EOF) && !p.at(token.RBrace) {
		p.advance()
	}
	depth := 0
	for !p.at(token.EOF) {
		tok := p.peek()
		if depth == 0 && (tok.Kind == token.RBrace || tok.Kind == token.Semicolon || tok.NewlineBefore()) {
			return
		}
		switch tok.Kind {
		case token.LBrace, token.LParen, token.LBracket:
			depth++
		case token.RBrace, token.RParen, token.RBracket:
			if depth > 0 {
				depth--
			}
		}
		p.advance()
	}
}

// name - идентификатор без обратных кавычек. Мягкие ключевые слова
// (out, data, get...) лексер отдаёт как Ident, поэтому проверка простая.
func (p *Parser) name() (string, bool) {
	if p.at(token.Ident) {
		return p.advance().Name(), true
	}
	p.err(diag.SynExpectIdentifier, "expected identifier")
	return "", false
}
