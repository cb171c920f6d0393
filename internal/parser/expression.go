package parser

import (
	"kremap/internal/ast"
	"kremap/internal/diag"
	"kremap/internal/token"
)

func (p *Parser) parseExpr() (ast.Expr, bool) {
	return p.parseBinary(precDisjunction)
}

// parseBinary - precedence climbing; все бинарные операторы левоассоциативны.
func (p *Parser) parseBinary(minPrec int) (ast.Expr, bool) {
	start := p.peek().Span
	lhs, ok := p.parseTypeOps()
	if !ok {
		return nil, false
	}
	for {
		prec, op, width := p.binaryOp()
		if prec < minPrec {
			return lhs, true
		}
		if p.newlineBefore() && !continuesAcrossNewline(op) {
			return lhs, true
		}
		for range width {
			p.advance()
		}
		if op == "is" || op == "!is" {
			t, ok := p.parseType()
			if !ok {
				return nil, false
			}
			lhs = &ast.TypeOp{Pos: ast.Pos{Sp: p.spanFrom(start)}, X: lhs, Op: op, Type: t}
			continue
		}
		rhs, ok := p.parseBinary(prec + 1)
		if !ok {
			return nil, false
		}
		lhs = &ast.Binary{Pos: ast.Pos{Sp: p.spanFrom(start)}, X: lhs, Op: op, Y: rhs}
	}
}

// x as T, x as? T
func (p *Parser) parseTypeOps() (ast.Expr, bool) {
	start := p.peek().Span
	x, ok := p.parsePrefix()
	if !ok {
		return nil, false
	}
	for p.at(token.KwAs) && !p.newlineBefore() {
		p.advance()
		op := "as"
		if p.at(token.Question) && p.adjacent() {
			p.advance()
			op = "as?"
		}
		t, ok := p.parseType()
		if !ok {
			return nil, false
		}
		x = &ast.TypeOp{Pos: ast.Pos{Sp: p.spanFrom(start)}, X: x, Op: op, Type: t}
	}
	return x, true
}

func (p *Parser) parsePrefix() (ast.Expr, bool) {
	switch p.peek().Kind {
	case token.Minus, token.Plus, token.Bang, token.PlusPlus, token.MinusMinus:
		tok := p.advance()
		x, ok := p.parsePrefix()
		if !ok {
			return nil, false
		}
		return &ast.Unary{Pos: ast.Pos{Sp: p.spanFrom(tok.Span)}, Op: tok.Text, Prefix: true, X: x}, true
	}
	return p.parsePostfix()
}

// callable - к чему допустимо приклеить аргументы типов и trailing lambda.
func callable(x ast.Expr) bool {
	switch x := x.(type) {
	case *ast.Name, *ast.This, *ast.Super:
		return true
	case *ast.Binary:
		return x.Op == "." || x.Op == "?."
	case *ast.Call:
		return x.Lambda == nil
	}
	return false
}

func (p *Parser) parsePostfix() (ast.Expr, bool) {
	start := p.peek().Span
	x, ok := p.parsePrimary()
	if !ok {
		return nil, false
	}
	for {
		tok := p.peek()
		switch {
		case tok.Kind == token.Dot || tok.Kind == token.SafeDot:
			p.advance()
			ns := p.peek().Span
			n, ok := p.name()
			if !ok {
				return nil, false
			}
			y := &ast.Name{Pos: ast.Pos{Sp: ns}, Name: n}
			x = &ast.Binary{Pos: ast.Pos{Sp: p.spanFrom(start)}, X: x, Op: tok.Text, Y: y}

		case tok.Kind == token.ColonColon:
			p.advance()
			dc := &ast.DoubleColon{Recv: x}
			if p.eat(token.KwClass) {
				dc.Name = "class"
			} else {
				n, ok := p.name()
				if !ok {
					return nil, false
				}
				dc.Name = n
			}
			dc.Sp = p.spanFrom(start)
			x = dc

		case p.newlineBefore():
			return x, true

		case tok.Kind == token.LParen:
			args, ok := p.parseValueArgs()
			if !ok {
				return nil, false
			}
			call := &ast.Call{Fun: x, Args: args}
			if !p.parseTrailingLambda(call) {
				return nil, false
			}
			call.Sp = p.spanFrom(start)
			x = call

		case tok.Kind == token.Lt && callable(x):
			var targs []*ast.TypeArg
			if !p.speculate(func() bool {
				var ok bool
				targs, ok = p.parseTypeArgs()
				if !ok {
					return false
				}
				next := p.peek()
				return (next.Kind == token.LParen || next.Kind == token.LBrace) && !next.NewlineBefore()
			}) {
				return x, true
			}
			call := &ast.Call{Fun: x, TypeArgs: targs}
			if p.at(token.LParen) {
				args, ok := p.parseValueArgs()
				if !ok {
					return nil, false
				}
				call.Args = args
			}
			if !p.parseTrailingLambda(call) {
				return nil, false
			}
			call.Sp = p.spanFrom(start)
			x = call

		case tok.Kind == token.LBrace && callable(x):
			call := &ast.Call{Fun: x}
			if c, isCall := x.(*ast.Call); isCall {
				call = c
			}
			if !p.parseTrailingLambda(call) {
				return nil, false
			}
			call.Sp = p.spanFrom(start)
			x = call

		case tok.Kind == token.LBracket:
			p.advance()
			idx := &ast.Index{X: x}
			for !p.at(token.RBracket) {
				e, ok := p.parseExpr()
				if !ok {
					return nil, false
				}
				idx.Indices = append(idx.Indices, e)
				if !p.eat(token.Comma) {
					break
				}
			}
			if _, ok := p.expect(token.RBracket, diag.SynUnclosedBracket, "expected ']'"); !ok {
				return nil, false
			}
			idx.Sp = p.spanFrom(start)
			x = idx

		case tok.Kind == token.BangBang || tok.Kind == token.PlusPlus || tok.Kind == token.MinusMinus:
			p.advance()
			x = &ast.Unary{Pos: ast.Pos{Sp: p.spanFrom(start)}, Op: tok.Text, X: x}

		default:
			return x, true
		}
	}
}

// parseTrailingLambda приклеивает `{ ... }` на той же строке к вызову.
func (p *Parser) parseTrailingLambda(call *ast.Call) bool {
	if !p.at(token.LBrace) || p.newlineBefore() {
		return true
	}
	l, ok := p.parseLambda()
	if !ok {
		return false
	}
	call.Lambda = l
	return true
}

// (a, name = b, *c)
func (p *Parser) parseValueArgs() ([]*ast.ValueArg, bool) {
	p.advance() // (
	var args []*ast.ValueArg
	for !p.at(token.RParen) {
		start := p.peek().Span
		arg := &ast.ValueArg{}
		if p.at(token.Ident) && p.peekN(1).Kind == token.Assign {
			arg.Name = p.advance().Name()
			p.advance() // =
		}
		if p.eat(token.Star) {
			arg.Spread = true
		}
		x, ok := p.parseExpr()
		if !ok {
			return nil, false
		}
		arg.X = x
		arg.Sp = p.spanFrom(start)
		args = append(args, arg)
		if !p.eat(token.Comma) {
			break
		}
	}
	if _, ok := p.expect(token.RParen, diag.SynUnclosedParen, "expected ')'"); !ok {
		return nil, false
	}
	return args, true
}
