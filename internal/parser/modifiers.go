package parser

import (
	"kremap/internal/ast"
	"kremap/internal/diag"
	"kremap/internal/token"
)

var modifierNames = map[string]struct{}{
	"public": {}, "private": {}, "protected": {}, "internal": {},
	"abstract": {}, "final": {}, "open": {}, "sealed": {},
	"data": {}, "enum": {}, "inner": {}, "companion": {}, "annotation": {}, "value": {},
	"override": {}, "lateinit": {}, "const": {},
	"suspend": {}, "inline": {}, "infix": {}, "operator": {}, "external": {}, "tailrec": {},
	"vararg": {}, "noinline": {}, "crossinline": {}, "reified": {},
	"expect": {}, "actual": {},
}

func isModifierName(s string) bool {
	_, ok := modifierNames[s]
	return ok
}

// atModifier - текущий Ident является модификатором, если за ним идёт
// что-то, что может продолжать объявление.
func (p *Parser) atModifier() bool {
	tok := p.peek()
	if tok.Kind != token.Ident || !isModifierName(tok.Text) {
		return false
	}
	next := p.peekN(1)
	switch next.Kind {
	case token.KwClass, token.KwInterface, token.KwObject, token.KwFun, token.KwVal, token.KwVar,
		token.KwTypeAlias, token.At:
		return true
	case token.Ident:
		if next.NewlineBefore() {
			// "enum\nFoo" - скорее два выражения
			return isModifierName(next.Text) || next.Text == "constructor" || next.Text == "init"
		}
		return true
	}
	return false
}

// parseModifiers читает аннотации и модификаторы в любом порядке.
func (p *Parser) parseModifiers() []ast.Modifier {
	var mods []ast.Modifier
	for {
		switch {
		case p.at(token.At):
			if ann, ok := p.parseAnnotation(); ok {
				mods = append(mods, ann)
				continue
			}
			return mods
		case p.atModifier():
			tok := p.advance()
			mods = append(mods, &ast.Keyword{Pos: ast.Pos{Sp: tok.Span}, Name: tok.Text})
		default:
			return mods
		}
	}
}

// @[target:]a.b.C<T>(args)
func (p *Parser) parseAnnotation() (*ast.Annotation, bool) {
	start := p.advance().Span // @
	ann := &ast.Annotation{}
	if !p.adjacent() {
		p.err(diag.SynExpectIdentifier, "expected annotation name right after '@'")
		return nil, false
	}
	if p.peekN(1).Kind == token.Colon && p.at(token.Ident) {
		ann.Target = p.advance().Text
		p.advance() // :
	}
	for {
		n, ok := p.name()
		if !ok {
			return nil, false
		}
		ann.Names = append(ann.Names, n)
		if !p.at(token.Dot) || !p.adjacent() || p.peekN(1).Kind != token.Ident {
			break
		}
		p.advance()
	}
	if p.at(token.Lt) && p.adjacent() {
		var args []*ast.TypeArg
		if p.speculate(func() bool {
			var ok bool
			args, ok = p.parseTypeArgs()
			return ok
		}) {
			ann.TypeArgs = args
		}
	}
	if p.at(token.LParen) && p.adjacent() {
		ann.HasArgs = true
		args, ok := p.parseValueArgs()
		if !ok {
			return nil, false
		}
		ann.Args = args
	}
	ann.Sp = p.spanFrom(start)
	return ann, true
}

// takeForm вынимает последний модификатор enum/companion, превращая его в форму класса.
func takeForm(mods []ast.Modifier, name string) ([]ast.Modifier, bool) {
	if len(mods) == 0 {
		return mods, false
	}
	if k, ok := mods[len(mods)-1].(*ast.Keyword); ok && k.Name == name {
		return mods[:len(mods)-1], true
	}
	return mods, false
}
