package parser

import (
	"kremap/internal/ast"
	"kremap/internal/diag"
	"kremap/internal/source"
	"kremap/internal/token"
)

// parseType разбирает ссылку на тип: простой путь с аргументами, nullable,
// скобочный и функциональный тип (с получателем или без).
func (p *Parser) parseType() (ast.TypeRef, bool) {
	start := p.peek().Span
	var t ast.TypeRef
	switch {
	case p.at(token.LParen):
		ft, ok := p.parseParenOrFuncType(nil)
		if !ok {
			return nil, false
		}
		t = ft
	case p.at(token.Ident):
		st, ok := p.parseSimpleType()
		if !ok {
			return nil, false
		}
		t = st
	default:
		p.err(diag.SynExpectType, "expected type")
		return nil, false
	}
	t = p.parseNullableSuffix(t, start)

	// A.() -> B - функциональный тип с получателем
	if p.at(token.Dot) && p.peekN(1).Kind == token.LParen {
		p.advance()
		ft, ok := p.parseParenOrFuncType(t)
		if !ok {
			return nil, false
		}
		return p.parseNullableSuffix(ft, start), true
	}
	return t, true
}

func (p *Parser) parseNullableSuffix(t ast.TypeRef, start source.Span) ast.TypeRef {
	for p.at(token.Question) && p.adjacent() {
		p.advance()
		t = &ast.NullableType{Pos: ast.Pos{Sp: p.spanFrom(start)}, Type: t}
	}
	return t
}

// a.b.C<T>.D
func (p *Parser) parseSimpleType() (*ast.SimpleType, bool) {
	start := p.peek().Span
	st := &ast.SimpleType{}
	for {
		pieceStart := p.peek().Span
		n, ok := p.name()
		if !ok {
			return nil, false
		}
		piece := &ast.TypePiece{Name: n}
		if p.at(token.Lt) {
			args, ok := p.parseTypeArgs()
			if !ok {
				return nil, false
			}
			piece.Args = args
		}
		piece.Sp = p.spanFrom(pieceStart)
		st.Pieces = append(st.Pieces, piece)
		if !p.at(token.Dot) || p.peekN(1).Kind != token.Ident {
			break
		}
		p.advance()
	}
	st.Sp = p.spanFrom(start)
	return st, true
}

// <T, out U, *>
func (p *Parser) parseTypeArgs() ([]*ast.TypeArg, bool) {
	if _, ok := p.expect(token.Lt, diag.SynExpectType, "expected '<'"); !ok {
		return nil, false
	}
	var args []*ast.TypeArg
	for {
		start := p.peek().Span
		arg := &ast.TypeArg{}
		switch {
		case p.at(token.Star):
			p.advance()
			arg.Star = true
		default:
			if p.at(token.KwIn) || (p.atIdent("out") && p.peekN(1).Kind != token.Comma && p.peekN(1).Kind != token.Gt) {
				arg.Variance = p.advance().Text
			}
			t, ok := p.parseType()
			if !ok {
				return nil, false
			}
			arg.Type = t
		}
		arg.Sp = p.spanFrom(start)
		args = append(args, arg)
		if !p.eat(token.Comma) {
			break
		}
	}
	if _, ok := p.expect(token.Gt, diag.SynUnclosedAngle, "expected '>'"); !ok {
		return nil, false
	}
	return args, true
}

// (A, b: B) -> C  |  (A)
func (p *Parser) parseParenOrFuncType(receiver ast.TypeRef) (ast.TypeRef, bool) {
	start := p.peek().Span
	if receiver != nil {
		start = receiver.Span()
	}
	p.advance() // (
	var params []*ast.FuncTypeParam
	for !p.at(token.RParen) {
		ps := p.peek().Span
		param := &ast.FuncTypeParam{}
		if p.at(token.Ident) && p.peekN(1).Kind == token.Colon {
			param.Name = p.advance().Name()
			p.advance() // :
		}
		t, ok := p.parseType()
		if !ok {
			return nil, false
		}
		param.Type = t
		param.Sp = p.spanFrom(ps)
		params = append(params, param)
		if !p.eat(token.Comma) {
			break
		}
	}
	if _, ok := p.expect(token.RParen, diag.SynUnclosedParen, "expected ')'"); !ok {
		return nil, false
	}
	if p.at(token.Arrow) {
		p.advance()
		res, ok := p.parseType()
		if !ok {
			return nil, false
		}
		return &ast.FuncType{Pos: ast.Pos{Sp: p.spanFrom(start)}, Receiver: receiver, Params: params, Result: res}, true
	}
	if receiver != nil || len(params) != 1 || params[0].Name != "" {
		p.err(diag.SynExpectType, "expected '->' in function type")
		return nil, false
	}
	return &ast.ParenType{Pos: ast.Pos{Sp: p.spanFrom(start)}, Type: params[0].Type}, true
}

// <T, U : Bound>
func (p *Parser) parseTypeParams() ([]*ast.TypeParam, bool) {
	p.advance() // <
	var out []*ast.TypeParam
	for {
		start := p.peek().Span
		tp := &ast.TypeParam{}
		for p.at(token.KwIn) || ((p.atIdent("out") || p.atIdent("reified")) && p.peekN(1).Kind == token.Ident) {
			tok := p.advance()
			tp.Mods = append(tp.Mods, &ast.Keyword{Pos: ast.Pos{Sp: tok.Span}, Name: tok.Text})
		}
		n, ok := p.name()
		if !ok {
			return nil, false
		}
		tp.Name = n
		if p.eat(token.Colon) {
			b, ok := p.parseType()
			if !ok {
				return nil, false
			}
			tp.Bound = b
		}
		tp.Sp = p.spanFrom(start)
		out = append(out, tp)
		if !p.eat(token.Comma) {
			break
		}
	}
	if _, ok := p.expect(token.Gt, diag.SynUnclosedAngle, "expected '>'"); !ok {
		return nil, false
	}
	return out, true
}
