package parser

import (
	"kremap/internal/ast"
	"kremap/internal/diag"
	"kremap/internal/source"
	"kremap/internal/token"
)

// parseDecl разбирает декларацию после уже прочитанных модификаторов.
func (p *Parser) parseDecl(mods []ast.Modifier) (ast.Decl, bool) {
	start := p.peek().Span
	if len(mods) > 0 {
		start = mods[0].Span()
	}
	switch p.peek().Kind {
	case token.KwClass:
		rest, isEnum := takeForm(mods, "enum")
		form := ast.FormClass
		if isEnum {
			form = ast.FormEnumClass
		}
		return p.parseClass(rest, form, start)
	case token.KwInterface:
		return p.parseClass(mods, ast.FormInterface, start)
	case token.KwObject:
		rest, isCompanion := takeForm(mods, "companion")
		form := ast.FormObject
		if isCompanion {
			form = ast.FormCompanionObject
		}
		return p.parseClass(rest, form, start)
	case token.KwFun:
		return p.parseFunc(mods, start)
	case token.KwVal, token.KwVar:
		return p.parseProperty(mods, start)
	case token.KwTypeAlias:
		return p.parseTypeAlias(mods, start)
	case token.Ident:
		if p.peek().Text == "init" && p.peekN(1).Kind == token.LBrace && len(mods) == 0 {
			p.advance()
			body, ok := p.parseBlock()
			if !ok {
				return nil, false
			}
			return &ast.Init{Pos: ast.Pos{Sp: p.spanFrom(start)}, Body: body}, true
		}
	case token.KwPackage:
		p.report(diag.SynMisplacedPackage, p.peek().Span, "package directive must come first")
		return nil, false
	case token.KwImport:
		p.report(diag.SynMisplacedImport, p.peek().Span, "imports must precede declarations")
		return nil, false
	}
	p.err(diag.SynUnexpectedTopLevel, "expected declaration")
	return nil, false
}

// class Name<T> [mods constructor](params) : Parents { members }
func (p *Parser) parseClass(mods []ast.Modifier, form ast.ClassForm, start source.Span) (ast.Decl, bool) {
	p.advance() // class / interface / object
	c := &ast.Class{Mods: mods, Form: form}
	if form == ast.FormCompanionObject {
		c.Name = "Companion"
		if p.at(token.Ident) && !p.newlineBefore() {
			c.Name = p.advance().Name()
		}
	} else {
		n, ok := p.name()
		if !ok {
			return nil, false
		}
		c.Name = n
	}
	if p.at(token.Lt) {
		tps, ok := p.parseTypeParams()
		if !ok {
			return nil, false
		}
		c.TypeParams = tps
	}
	if ctor, ok, present := p.parsePrimaryConstructor(); present {
		if !ok {
			return nil, false
		}
		c.Constructor = ctor
	}
	if p.at(token.Colon) {
		p.advance()
		parents, ok := p.parseParents()
		if !ok {
			return nil, false
		}
		c.Parents = parents
	}
	if p.at(token.LBrace) {
		members, closer, ok := p.parseClassBody(form == ast.FormEnumClass)
		if !ok {
			return nil, false
		}
		c.Members = members
		c.Sp = p.spanFrom(start)
		p.closers[c] = closer
		return c, true
	}
	c.Sp = p.spanFrom(start)
	return c, true
}

// parsePrimaryConstructor: present=false, если конструктора нет вовсе.
func (p *Parser) parsePrimaryConstructor() (ctor *ast.PrimaryConstructor, ok, present bool) {
	start := p.peek().Span
	var mods []ast.Modifier
	if p.at(token.At) || p.atModifier() || p.atIdent("constructor") {
		if !p.speculate(func() bool {
			mods = p.parseModifiers()
			return p.atIdent("constructor")
		}) {
			return nil, false, false
		}
		p.advance()
	} else if !p.at(token.LParen) || p.newlineBefore() {
		return nil, false, false
	}
	if !p.at(token.LParen) {
		p.err(diag.SynUnexpectedToken, "expected '(' after constructor")
		return nil, false, true
	}
	params, ok := p.parseParams(true)
	if !ok {
		return nil, false, true
	}
	return &ast.PrimaryConstructor{Pos: ast.Pos{Sp: p.spanFrom(start)}, Mods: mods, Params: params}, true, true
}

// A, B(args), C by d
func (p *Parser) parseParents() ([]*ast.Parent, bool) {
	var out []*ast.Parent
	for {
		start := p.peek().Span
		t, ok := p.parseType()
		if !ok {
			return nil, false
		}
		parent := &ast.Parent{Type: t}
		if p.at(token.LParen) && !p.newlineBefore() {
			args, ok := p.parseValueArgs()
			if !ok {
				return nil, false
			}
			parent.HasCall = true
			parent.Args = args
		}
		if p.atIdent("by") {
			p.advance()
			by, ok := p.parseExpr()
			if !ok {
				return nil, false
			}
			parent.By = by
		}
		parent.Sp = p.spanFrom(start)
		out = append(out, parent)
		if !p.eat(token.Comma) {
			return out, true
		}
	}
}

// parseClassBody разбирает { members }; для enum сначала идут элементы.
func (p *Parser) parseClassBody(enum bool) ([]ast.Decl, uint32, bool) {
	p.advance() // {
	var members []ast.Decl
	if enum {
		entries, ok := p.parseEnumEntries()
		if !ok {
			return nil, 0, false
		}
		members = append(members, entries...)
	}
	for {
		p.skipSemicolons()
		if p.at(token.RBrace) || p.at(token.EOF) {
			break
		}
		startPos := p.pos
		mods := p.parseModifiers()
		d, ok := p.parseDecl(mods)
		if !ok {
			p.resyncStmt(startPos)
			continue
		}
		members = append(members, d)
		p.expectSeparator()
	}
	closer := p.peek().Span.Start
	if _, ok := p.expect(token.RBrace, diag.SynUnclosedBrace, "expected '}'"); !ok {
		return nil, 0, false
	}
	return members, closer, true
}

// A, B(1), C { ... };
func (p *Parser) parseEnumEntries() ([]ast.Decl, bool) {
	var out []ast.Decl
	for p.at(token.Ident) || p.at(token.At) {
		if p.at(token.Ident) && p.peekN(1).Kind != token.Comma && p.peekN(1).Kind != token.Semicolon &&
			p.peekN(1).Kind != token.LParen && p.peekN(1).Kind != token.LBrace && p.peekN(1).Kind != token.RBrace {
			break
		}
		start := p.peek().Span
		e := &ast.EnumEntry{Mods: p.parseModifiers()}
		n, ok := p.name()
		if !ok {
			return nil, false
		}
		e.Name = n
		if p.at(token.LParen) {
			args, ok := p.parseValueArgs()
			if !ok {
				return nil, false
			}
			e.Args = args
		}
		if p.at(token.LBrace) {
			members, closer, ok := p.parseClassBody(false)
			if !ok {
				return nil, false
			}
			e.Members = members
			e.Sp = p.spanFrom(start)
			p.closers[e] = closer
		} else {
			e.Sp = p.spanFrom(start)
		}
		out = append(out, e)
		if !p.eat(token.Comma) {
			break
		}
	}
	p.eat(token.Semicolon)
	return out, true
}

// fun <T> Recv.name(params): Type body
func (p *Parser) parseFunc(mods []ast.Modifier, start source.Span) (ast.Decl, bool) {
	p.advance() // fun
	fn := &ast.Func{Mods: mods}
	if p.at(token.Lt) {
		tps, ok := p.parseTypeParams()
		if !ok {
			return nil, false
		}
		fn.TypeParams = tps
	}
	recv, name, ok := p.parseReceiverAndName()
	if !ok {
		return nil, false
	}
	fn.Receiver, fn.Name = recv, name
	if !p.at(token.LParen) {
		p.err(diag.SynUnexpectedToken, "expected '(' after function name")
		return nil, false
	}
	params, ok := p.parseParams(false)
	if !ok {
		return nil, false
	}
	fn.Params = params
	if p.eat(token.Colon) {
		t, ok := p.parseType()
		if !ok {
			return nil, false
		}
		fn.Result = t
	}
	switch {
	case p.at(token.LBrace):
		b, ok := p.parseBlock()
		if !ok {
			return nil, false
		}
		fn.Body = b
	case p.at(token.Assign):
		bs := p.advance().Span
		x, ok := p.parseExpr()
		if !ok {
			return nil, false
		}
		fn.Body = &ast.ExprBody{Pos: ast.Pos{Sp: p.spanFrom(bs)}, X: x}
	}
	fn.Sp = p.spanFrom(start)
	return fn, true
}

// parseReceiverAndName - "name" или "Recv.name" / "Recv?.name".
func (p *Parser) parseReceiverAndName() (ast.TypeRef, string, bool) {
	if p.at(token.Ident) && p.peekN(1).Kind != token.Dot && p.peekN(1).Kind != token.Lt && p.peekN(1).Kind != token.Question {
		return nil, p.advance().Name(), true
	}
	t, ok := p.parseType()
	if !ok {
		return nil, "", false
	}
	if p.eat(token.Dot) {
		n, ok := p.name()
		return t, n, ok
	}
	st, isSimple := t.(*ast.SimpleType)
	if !isSimple {
		p.err(diag.SynExpectIdentifier, "expected name after receiver type")
		return nil, "", false
	}
	last := st.Pieces[len(st.Pieces)-1]
	if len(last.Args) > 0 {
		p.err(diag.SynExpectIdentifier, "expected name after receiver type")
		return nil, "", false
	}
	if len(st.Pieces) == 1 {
		return nil, last.Name, true
	}
	recv := &ast.SimpleType{Pieces: st.Pieces[:len(st.Pieces)-1]}
	recv.Sp = recv.Pieces[0].Sp.Cover(recv.Pieces[len(recv.Pieces)-1].Sp)
	return recv, last.Name, true
}

// (mods [val|var] name: Type = default, ...)
func (p *Parser) parseParams(ctor bool) ([]*ast.Param, bool) {
	p.advance() // (
	var out []*ast.Param
	for !p.at(token.RParen) {
		start := p.peek().Span
		param := &ast.Param{Mods: p.parseModifiers()}
		if ctor {
			switch {
			case p.eat(token.KwVal):
				param.Binding = ast.BindVal
			case p.eat(token.KwVar):
				param.Binding = ast.BindVar
			}
		}
		n, ok := p.name()
		if !ok {
			return nil, false
		}
		param.Name = n
		if _, ok := p.expect(token.Colon, diag.SynExpectType, "expected ':' before parameter type"); !ok {
			return nil, false
		}
		t, ok := p.parseType()
		if !ok {
			return nil, false
		}
		param.Type = t
		if p.eat(token.Assign) {
			d, ok := p.parseExpr()
			if !ok {
				return nil, false
			}
			param.Default = d
		}
		param.Sp = p.spanFrom(start)
		out = append(out, param)
		if !p.eat(token.Comma) {
			break
		}
	}
	if _, ok := p.expect(token.RParen, diag.SynUnclosedParen, "expected ')'"); !ok {
		return nil, false
	}
	return out, true
}

// val [<T>] [Recv.]name[: Type] [= expr | by expr], либо val (a, _) = expr
func (p *Parser) parseProperty(mods []ast.Modifier, start source.Span) (ast.Decl, bool) {
	prop := &ast.Property{Mods: mods, ReadOnly: p.advance().Kind == token.KwVal}
	if p.at(token.Lt) {
		tps, ok := p.parseTypeParams()
		if !ok {
			return nil, false
		}
		prop.TypeParams = tps
	}
	if p.at(token.LParen) {
		vars, ok := p.parseDestructuring()
		if !ok {
			return nil, false
		}
		prop.Vars = vars
	} else {
		vs := p.peek().Span
		recv, name, ok := p.parseReceiverAndName()
		if !ok {
			return nil, false
		}
		if recv != nil {
			vs = p.lastSpan
		}
		prop.Receiver = recv
		v := &ast.PropertyVar{Name: name}
		if p.eat(token.Colon) {
			t, ok := p.parseType()
			if !ok {
				return nil, false
			}
			v.Type = t
		}
		v.Sp = p.spanFrom(vs)
		prop.Vars = []*ast.PropertyVar{v}
	}
	switch {
	case p.eat(token.Assign):
		x, ok := p.parseExpr()
		if !ok {
			return nil, false
		}
		prop.Init = x
	case p.atIdent("by") && !p.newlineBefore():
		p.advance()
		x, ok := p.parseExpr()
		if !ok {
			return nil, false
		}
		prop.Delegated = true
		prop.Init = x
	}
	prop.Sp = p.spanFrom(start)
	return prop, true
}

// (a, b: T, _)
func (p *Parser) parseDestructuring() ([]*ast.PropertyVar, bool) {
	p.advance() // (
	var vars []*ast.PropertyVar
	for !p.at(token.RParen) {
		if p.eat(token.Underscore) {
			vars = append(vars, nil)
		} else {
			start := p.peek().Span
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
			v.Sp = p.spanFrom(start)
			vars = append(vars, v)
		}
		if !p.eat(token.Comma) {
			break
		}
	}
	if _, ok := p.expect(token.RParen, diag.SynUnclosedParen, "expected ')'"); !ok {
		return nil, false
	}
	return vars, true
}

// typealias Name<T> = Type
func (p *Parser) parseTypeAlias(mods []ast.Modifier, start source.Span) (ast.Decl, bool) {
	p.advance() // typealias
	ta := &ast.TypeAlias{Mods: mods}
	n, ok := p.name()
	if !ok {
		return nil, false
	}
	ta.Name = n
	if p.at(token.Lt) {
		tps, ok := p.parseTypeParams()
		if !ok {
			return nil, false
		}
		ta.TypeParams = tps
	}
	if _, ok := p.expect(token.Assign, diag.SynUnexpectedToken, "expected '=' in typealias"); !ok {
		return nil, false
	}
	t, ok := p.parseType()
	if !ok {
		return nil, false
	}
	ta.Type = t
	ta.Sp = p.spanFrom(start)
	return ta, true
}
