package parser

import (
	"kremap/internal/ast"
	"kremap/internal/diag"
	"kremap/internal/token"
)

// { stmts }
func (p *Parser) parseBlock() (*ast.Block, bool) {
	start := p.peek().Span
	if _, ok := p.expect(token.LBrace, diag.SynExpectBody, "expected '{'"); !ok {
		return nil, false
	}
	b := &ast.Block{}
	b.Stmts = p.parseStatements()
	closer := p.peek().Span.Start
	if _, ok := p.expect(token.RBrace, diag.SynUnclosedBrace, "expected '}'"); !ok {
		return nil, false
	}
	b.Sp = p.spanFrom(start)
	p.closers[b] = closer
	return b, true
}

// parseStatements читает инструкции до '}' или EOF.
func (p *Parser) parseStatements() []ast.Stmt {
	var out []ast.Stmt
	for {
		p.skipSemicolons()
		if p.at(token.RBrace) || p.at(token.EOF) {
			return out
		}
		startPos := p.pos
		st, ok := p.parseStatement()
		if !ok {
			p.resyncStmt(startPos)
			continue
		}
		out = append(out, st)
		p.expectSeparator()
	}
}

func (p *Parser) atDeclStart() bool {
	switch p.peek().Kind {
	case token.KwClass, token.KwInterface, token.KwFun, token.KwVal, token.KwVar, token.KwTypeAlias:
		return true
	case token.KwObject:
		// object : Foo {} - это выражение, но такого в подмножестве нет
		return p.peekN(1).Kind == token.Ident
	case token.At:
		return true
	}
	return p.atModifier()
}

func (p *Parser) parseStatement() (ast.Stmt, bool) {
	start := p.peek().Span
	if p.atDeclStart() {
		mods := p.parseModifiers()
		d, ok := p.parseDecl(mods)
		if !ok {
			return nil, false
		}
		return &ast.DeclStmt{Pos: ast.Pos{Sp: p.spanFrom(start)}, Decl: d}, true
	}
	x, ok := p.parseExprOrAssign()
	if !ok {
		return nil, false
	}
	return &ast.ExprStmt{Pos: ast.Pos{Sp: p.spanFrom(start)}, X: x}, true
}

var assignOps = map[token.Kind]struct{}{
	token.Assign: {}, token.PlusAssign: {}, token.MinusAssign: {},
	token.StarAssign: {}, token.SlashAssign: {}, token.PercentAssign: {},
}

// parseExprOrAssign - присваивание допустимо только на уровне инструкции
// и в телах управляющих конструкций.
func (p *Parser) parseExprOrAssign() (ast.Expr, bool) {
	start := p.peek().Span
	x, ok := p.parseExpr()
	if !ok {
		return nil, false
	}
	if _, isAssign := assignOps[p.peek().Kind]; isAssign && !p.newlineBefore() {
		op := p.advance().Text
		y, ok := p.parseExpr()
		if !ok {
			return nil, false
		}
		return &ast.Binary{Pos: ast.Pos{Sp: p.spanFrom(start)}, X: x, Op: op, Y: y}, true
	}
	return x, true
}

// parseControlBody - тело if/while/for/when: блок или одиночное выражение.
func (p *Parser) parseControlBody() (ast.Expr, bool) {
	if p.at(token.LBrace) {
		b, ok := p.parseBlock()
		if !ok {
			return nil, false
		}
		return b, true
	}
	return p.parseExprOrAssign()
}
