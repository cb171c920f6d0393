package parser

import (
	"kremap/internal/ast"
	"kremap/internal/diag"
	"kremap/internal/token"
)

func (p *Parser) parsePrimary() (ast.Expr, bool) {
	tok := p.peek()
	switch tok.Kind {
	case token.IntLit, token.FloatLit, token.StringLit, token.CharLit, token.KwTrue, token.KwFalse, token.KwNull:
		p.advance()
		return &ast.Const{Pos: ast.Pos{Sp: tok.Span}, Value: tok.Text, Form: constForm(tok.Kind)}, true
	case token.Ident:
		p.advance()
		return &ast.Name{Pos: ast.Pos{Sp: tok.Span}, Name: tok.Name()}, true
	case token.KwThis:
		p.advance()
		return &ast.This{Label: p.parseLabel(), Pos: ast.Pos{Sp: p.spanFrom(tok.Span)}}, true
	case token.KwSuper:
		return p.parseSuper()
	case token.LParen:
		p.advance()
		x, ok := p.parseExpr()
		if !ok {
			return nil, false
		}
		if _, ok := p.expect(token.RParen, diag.SynUnclosedParen, "expected ')'"); !ok {
			return nil, false
		}
		return &ast.Paren{Pos: ast.Pos{Sp: p.spanFrom(tok.Span)}, X: x}, true
	case token.LBrace:
		l, ok := p.parseLambda()
		if !ok {
			return nil, false
		}
		return l, true
	case token.ColonColon:
		p.advance()
		n, ok := p.name()
		if !ok {
			return nil, false
		}
		return &ast.DoubleColon{Pos: ast.Pos{Sp: p.spanFrom(tok.Span)}, Name: n}, true
	case token.KwIf:
		return p.parseIf()
	case token.KwWhen:
		return p.parseWhen()
	case token.KwWhile:
		return p.parseWhile()
	case token.KwDo:
		return p.parseDoWhile()
	case token.KwFor:
		return p.parseFor()
	case token.KwTry:
		return p.parseTry()
	case token.KwReturn:
		p.advance()
		r := &ast.Return{Label: p.parseLabel()}
		if !p.atExprEnd() {
			x, ok := p.parseExpr()
			if !ok {
				return nil, false
			}
			r.X = x
		}
		r.Sp = p.spanFrom(tok.Span)
		return r, true
	case token.KwThrow:
		p.advance()
		x, ok := p.parseExpr()
		if !ok {
			return nil, false
		}
		return &ast.Throw{Pos: ast.Pos{Sp: p.spanFrom(tok.Span)}, X: x}, true
	case token.KwBreak:
		p.advance()
		return &ast.Break{Label: p.parseLabel(), Pos: ast.Pos{Sp: p.spanFrom(tok.Span)}}, true
	case token.KwContinue:
		p.advance()
		return &ast.Continue{Label: p.parseLabel(), Pos: ast.Pos{Sp: p.spanFrom(tok.Span)}}, true
	}
	p.err(diag.SynExpectExpression, "expected expression")
	return nil, false
}

func constForm(k token.Kind) ast.ConstForm {
	switch k {
	case token.FloatLit:
		return ast.ConstFloat
	case token.StringLit:
		return ast.ConstString
	case token.CharLit:
		return ast.ConstChar
	case token.KwTrue, token.KwFalse:
		return ast.ConstBool
	case token.KwNull:
		return ast.ConstNull
	default:
		return ast.ConstInt
	}
}

// @label сразу после this/return/break/continue.
func (p *Parser) parseLabel() string {
	if p.at(token.At) && p.adjacent() && p.peekN(1).Kind == token.Ident && len(p.peekN(1).Leading) == 0 {
		p.advance()
		return p.advance().Name()
	}
	return ""
}

// atExprEnd - после return нет операнда.
func (p *Parser) atExprEnd() bool {
	if p.newlineBefore() {
		return true
	}
	switch p.peek().Kind {
	case token.EOF, token.RBrace, token.RParen, token.RBracket, token.Semicolon, token.Comma,
		token.Arrow, token.KwElse:
		return true
	}
	return false
}

// super<T>@label
func (p *Parser) parseSuper() (ast.Expr, bool) {
	start := p.advance().Span
	s := &ast.Super{}
	if p.at(token.Lt) && p.adjacent() {
		p.advance()
		t, ok := p.parseType()
		if !ok {
			return nil, false
		}
		s.TypeArg = t
		if _, ok := p.expect(token.Gt, diag.SynUnclosedAngle, "expected '>'"); !ok {
			return nil, false
		}
	}
	s.Label = p.parseLabel()
	s.Sp = p.spanFrom(start)
	return s, true
}

// { a, b: T -> stmts }
func (p *Parser) parseLambda() (*ast.Lambda, bool) {
	start := p.advance().Span // {
	l := &ast.Lambda{}
	if !p.eat(token.Arrow) {
		var params []*ast.LambdaParam
		if p.speculate(func() bool {
			var ok bool
			params, ok = p.parseLambdaParams()
			return ok
		}) {
			l.Params = params
		}
	}
	l.Stmts = p.parseStatements()
	closer := p.peek().Span.Start
	if _, ok := p.expect(token.RBrace, diag.SynUnclosedBrace, "expected '}'"); !ok {
		return nil, false
	}
	l.Sp = p.spanFrom(start)
	p.closers[l] = closer
	return l, true
}

func (p *Parser) parseLambdaParams() ([]*ast.LambdaParam, bool) {
	var out []*ast.LambdaParam
	for {
		start := p.peek().Span
		lp := &ast.LambdaParam{}
		switch {
		case p.at(token.Underscore):
			p.advance()
			lp.Name = "_"
		case p.at(token.Ident):
			lp.Name = p.advance().Name()
		default:
			return nil, false
		}
		if p.eat(token.Colon) {
			t, ok := p.parseType()
			if !ok {
				return nil, false
			}
			lp.Type = t
		}
		lp.Sp = p.spanFrom(start)
		out = append(out, lp)
		if !p.eat(token.Comma) {
			break
		}
	}
	return out, p.eat(token.Arrow)
}

// if (cond) then [else other]
func (p *Parser) parseIf() (ast.Expr, bool) {
	start := p.advance().Span
	n := &ast.If{}
	cond, ok := p.parseParenCond()
	if !ok {
		return nil, false
	}
	n.Cond = cond
	if p.at(token.KwElse) {
		// if (x) else y - пустая ветка then
		p.err(diag.SynExpectExpression, "expected if body")
		return nil, false
	}
	then, ok := p.parseControlBody()
	if !ok {
		return nil, false
	}
	n.Then = then
	if p.at(token.Semicolon) && p.peekN(1).Kind == token.KwElse {
		p.advance()
	}
	if p.at(token.KwElse) && p.peekN(1).Kind != token.Arrow {
		p.advance()
		els, ok := p.parseControlBody()
		if !ok {
			return nil, false
		}
		n.Else = els
	}
	n.Sp = p.spanFrom(start)
	return n, true
}

func (p *Parser) parseParenCond() (ast.Expr, bool) {
	if _, ok := p.expect(token.LParen, diag.SynUnexpectedToken, "expected '('"); !ok {
		return nil, false
	}
	x, ok := p.parseExpr()
	if !ok {
		return nil, false
	}
	if _, ok := p.expect(token.RParen, diag.SynUnclosedParen, "expected ')'"); !ok {
		return nil, false
	}
	return x, true
}

// when (subject) { conds -> body ... else -> body }
func (p *Parser) parseWhen() (ast.Expr, bool) {
	start := p.advance().Span
	w := &ast.When{}
	if p.at(token.LParen) {
		subj, ok := p.parseParenCond()
		if !ok {
			return nil, false
		}
		w.Subject = subj
	}
	if _, ok := p.expect(token.LBrace, diag.SynExpectBody, "expected '{' after when"); !ok {
		return nil, false
	}
	for {
		p.skipSemicolons()
		if p.at(token.RBrace) || p.at(token.EOF) {
			break
		}
		startPos := p.pos
		e, ok := p.parseWhenEntry()
		if !ok {
			p.resyncStmt(startPos)
			continue
		}
		w.Entries = append(w.Entries, e)
		p.expectSeparator()
	}
	closer := p.peek().Span.Start
	if _, ok := p.expect(token.RBrace, diag.SynUnclosedBrace, "expected '}'"); !ok {
		return nil, false
	}
	w.Sp = p.spanFrom(start)
	p.closers[w] = closer
	return w, true
}

func (p *Parser) parseWhenEntry() (*ast.WhenEntry, bool) {
	start := p.peek().Span
	e := &ast.WhenEntry{}
	if !p.eat(token.KwElse) {
		for {
			c, ok := p.parseWhenCond()
			if !ok {
				return nil, false
			}
			e.Conds = append(e.Conds, c)
			if !p.eat(token.Comma) {
				break
			}
		}
	}
	if _, ok := p.expect(token.Arrow, diag.SynUnexpectedToken, "expected '->'"); !ok {
		return nil, false
	}
	body, ok := p.parseControlBody()
	if !ok {
		return nil, false
	}
	e.Body = body
	e.Sp = p.spanFrom(start)
	return e, true
}

func (p *Parser) parseWhenCond() (*ast.WhenCond, bool) {
	start := p.peek().Span
	c := &ast.WhenCond{}
	if p.at(token.Bang) && (p.peekN(1).Kind == token.KwIn || p.peekN(1).Kind == token.KwIs) {
		p.advance()
		c.Op = "!"
	}
	switch {
	case p.eat(token.KwIn):
		c.Op += "in"
		x, ok := p.parseExpr()
		if !ok {
			return nil, false
		}
		c.X = x
	case p.eat(token.KwIs):
		c.Op += "is"
		t, ok := p.parseType()
		if !ok {
			return nil, false
		}
		c.Type = t
	default:
		if c.Op != "" {
			p.err(diag.SynUnexpectedToken, "expected 'in' or 'is'")
			return nil, false
		}
		x, ok := p.parseExpr()
		if !ok {
			return nil, false
		}
		c.X = x
	}
	c.Sp = p.spanFrom(start)
	return c, true
}

func (p *Parser) parseWhile() (ast.Expr, bool) {
	start := p.advance().Span
	cond, ok := p.parseParenCond()
	if !ok {
		return nil, false
	}
	body, ok := p.parseControlBody()
	if !ok {
		return nil, false
	}
	return &ast.While{Pos: ast.Pos{Sp: p.spanFrom(start)}, Cond: cond, Body: body}, true
}

func (p *Parser) parseDoWhile() (ast.Expr, bool) {
	start := p.advance().Span
	body, ok := p.parseControlBody()
	if !ok {
		return nil, false
	}
	if _, ok := p.expect(token.KwWhile, diag.SynUnexpectedToken, "expected 'while' after do body"); !ok {
		return nil, false
	}
	cond, ok := p.parseParenCond()
	if !ok {
		return nil, false
	}
	return &ast.While{Pos: ast.Pos{Sp: p.spanFrom(start)}, Cond: cond, Body: body, DoWhile: true}, true
}

// for (x in xs) body, for ((a, b) in m) body
func (p *Parser) parseFor() (ast.Expr, bool) {
	start := p.advance().Span
	f := &ast.For{}
	if _, ok := p.expect(token.LParen, diag.SynUnexpectedToken, "expected '('"); !ok {
		return nil, false
	}
	if p.at(token.LParen) {
		vars, ok := p.parseDestructuring()
		if !ok {
			return nil, false
		}
		f.Vars = vars
	} else {
		vs := p.peek().Span
		n, ok := p.name()
		if !ok {
			return nil, false
		}
		v := &ast.PropertyVar{Name: n}
		if p.eat(token.Colon) {
			t, ok := p.parseType()
			if !ok {
				return nil, false
			}
			v.Type = t
		}
		v.Sp = p.spanFrom(vs)
		f.Vars = []*ast.PropertyVar{v}
	}
	if _, ok := p.expect(token.KwIn, diag.SynUnexpectedToken, "expected 'in'"); !ok {
		return nil, false
	}
	in, ok := p.parseExpr()
	if !ok {
		return nil, false
	}
	f.In = in
	if _, ok := p.expect(token.RParen, diag.SynUnclosedParen, "expected ')'"); !ok {
		return nil, false
	}
	body, ok := p.parseControlBody()
	if !ok {
		return nil, false
	}
	f.Body = body
	f.Sp = p.spanFrom(start)
	return f, true
}

// try {} catch (e: T) {} finally {}
func (p *Parser) parseTry() (ast.Expr, bool) {
	start := p.advance().Span
	t := &ast.Try{}
	body, ok := p.parseBlock()
	if !ok {
		return nil, false
	}
	t.Body = body
	for p.at(token.KwCatch) {
		cs := p.advance().Span
		c := &ast.Catch{}
		if _, ok := p.expect(token.LParen, diag.SynUnexpectedToken, "expected '('"); !ok {
			return nil, false
		}
		n, ok := p.name()
		if !ok {
			return nil, false
		}
		c.Name = n
		if _, ok := p.expect(token.Colon, diag.SynExpectType, "expected ':'"); !ok {
			return nil, false
		}
		ct, ok := p.parseType()
		if !ok {
			return nil, false
		}
		c.Type = ct
		if _, ok := p.expect(token.RParen, diag.SynUnclosedParen, "expected ')'"); !ok {
			return nil, false
		}
		cb, ok := p.parseBlock()
		if !ok {
			return nil, false
		}
		c.Body = cb
		c.Sp = p.spanFrom(cs)
		t.Catches = append(t.Catches, c)
	}
	if p.eat(token.KwFinally) {
		fb, ok := p.parseBlock()
		if !ok {
			return nil, false
		}
		t.Finally = fb
	}
	if len(t.Catches) == 0 && t.Finally == nil {
		p.err(diag.SynUnexpectedToken, "expected 'catch' or 'finally'")
		return nil, false
	}
	t.Sp = p.spanFrom(start)
	return t, true
}
