package parser

import (
	"kremap/internal/ast"
	"kremap/internal/diag"
	"kremap/internal/source"
	"kremap/internal/token"
)

// package a.b.c
func (p *Parser) parsePackage(mods []ast.Modifier, start source.Span) *ast.Package {
	p.advance() // package
	pkg := &ast.Package{Mods: mods}
	pkg.Names = p.parseDottedNames()
	pkg.Sp = p.spanFrom(start)
	p.expectSeparator()
	p.skipSemicolons()
	if p.at(token.KwPackage) {
		p.report(diag.SynMisplacedPackage, p.peek().Span, "duplicate package directive")
		p.resyncTop(p.pos)
	}
	return pkg
}

// import a.b.C [as D] | import a.b.*
func (p *Parser) parseImport() *ast.Import {
	start := p.advance().Span // import
	imp := &ast.Import{}
	for {
		n, ok := p.name()
		if !ok {
			break
		}
		imp.Names = append(imp.Names, n)
		if !p.at(token.Dot) || p.newlineBefore() {
			break
		}
		p.advance()
		if p.eat(token.Star) {
			imp.Wildcard = true
			break
		}
	}
	if !imp.Wildcard && p.eat(token.KwAs) {
		if alias, ok := p.name(); ok {
			imp.Alias = alias
		}
	}
	imp.Sp = p.spanFrom(start)
	p.expectSeparator()
	p.skipSemicolons()
	return imp
}

// a.b.c - имена через точку, все на одной строке.
func (p *Parser) parseDottedNames() []string {
	var names []string
	for {
		n, ok := p.name()
		if !ok {
			return names
		}
		names = append(names, n)
		if !p.at(token.Dot) || p.newlineBefore() || p.peekN(1).Kind != token.Ident {
			return names
		}
		p.advance()
	}
}
