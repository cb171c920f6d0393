package parser

import (
	"context"
	"fmt"

	"kremap/internal/ast"
	"kremap/internal/diag"
	"kremap/internal/lexer"
	"kremap/internal/source"
	"kremap/internal/token"
	"kremap/internal/trace"
)

type Options struct {
	MaxErrors uint
	Reporter  diag.Reporter
}

type Result struct {
	File   *ast.File
	Extras *ast.Extras
	// Errors is the number of syntax errors reported.
	Errors uint
}

// Parser - состояние парсера на один файл
type Parser struct {
	fs       *source.FileSet // нужен только для спанов/путей
	file     *source.File
	toks     []token.Token
	pos      int
	opts     Options
	lastSpan source.Span // span последнего съеденного токена
	errors   uint
	muted    int                 // >0 во время пробного разбора
	closers  map[ast.Node]uint32 // узел -> смещение его закрывающей '}'
	root     *ast.File
}

// ParseFile разбирает один файл целиком. Лексер должен быть свежим:
// парсер сам вычитывает все токены, чтобы иметь произвольный lookahead.
func ParseFile(ctx context.Context, fs *source.FileSet, lx *lexer.Lexer, opts Options) Result {
	_, span := trace.Start(ctx, trace.ScopePass, "parse")
	defer span.End("")

	p := &Parser{
		fs:       fs,
		file:     lx.File(),
		toks:     lx.All(),
		opts:     opts,
		closers:  make(map[ast.Node]uint32),
		lastSpan: lx.EmptySpan(),
	}
	p.root = p.parseFile()
	extras := attachExtras(p.root, p.toks, p.closers)
	span.WithExtra("tokens", fmt.Sprint(len(p.toks)))
	return Result{File: p.root, Extras: extras, Errors: p.errors}
}

// ParseError is returned by Parse when the source has syntax errors.
type ParseError struct {
	Path string
	Bag  *diag.Bag
	FS   *source.FileSet // resolves the spans in Bag
}

func (e *ParseError) Error() string {
	n := 0
	var first string
	for _, d := range e.Bag.Items() {
		if d.Severity < diag.SevError {
			continue
		}
		if n == 0 {
			first = d.Message
		}
		n++
	}
	if n <= 1 {
		return fmt.Sprintf("%s: parse error: %s", e.Path, first)
	}
	return fmt.Sprintf("%s: parse error: %s (and %d more)", e.Path, first, n-1)
}

// Parse is the convenience entry point: it lexes and parses src and returns
// a *ParseError carrying every diagnostic when anything went wrong.
func Parse(ctx context.Context, path string, src []byte, maxDiagnostics int) (*ast.File, *ast.Extras, error) {
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual(path, src))
	bag := diag.NewBag(maxDiagnostics)
	rep := diag.BagReporter{Bag: bag}
	lx := lexer.New(file, lexer.Options{Reporter: rep})
	res := ParseFile(ctx, fs, lx, Options{Reporter: rep, MaxErrors: uint(bag.Cap())})
	if bag.HasErrors() {
		bag.Sort()
		return res.File, res.Extras, &ParseError{Path: path, Bag: bag, FS: fs}
	}
	return res.File, res.Extras, nil
}

// parseFile - верхний уровень: package, imports, декларации.
func (p *Parser) parseFile() *ast.File {
	f := &ast.File{}
	start := p.peek().Span

	mods := p.parseModifiers()
	if p.at(token.KwPackage) {
		f.Package = p.parsePackage(mods, start)
		mods = nil
	}
	for p.at(token.KwImport) {
		if len(mods) > 0 {
			p.report(diag.SynMisplacedImport, mods[0].Span(), "modifiers are not allowed on import")
			mods = nil
		}
		f.Imports = append(f.Imports, p.parseImport())
	}
	if len(mods) == 0 {
		// после заголовка модификаторы первой декларации ещё не прочитаны
		mods = p.parseModifiers()
	}
	for !p.at(token.EOF) {
		startPos := p.pos
		decl, ok := p.parseDecl(mods)
		mods = nil
		if ok {
			f.Decls = append(f.Decls, decl)
			p.expectSeparator()
		} else {
			p.resyncTop(startPos)
		}
		p.skipSemicolons()
		if !p.at(token.EOF) {
			mods = p.parseModifiers()
		}
	}
	if len(mods) > 0 {
		p.report(diag.SynUnexpectedTopLevel, mods[0].Span(), "dangling modifiers at end of file")
	}
	f.Sp = start.Cover(p.lastSpan)
	return f
}

// resyncTop - восстановление после ошибки на верхнем уровне: пропускаем
// токены до начала строки со стартером декларации или до EOF.
func (p *Parser) resyncTop(startPos int) {
	if p.pos == startPos && !p.at(token.EOF) {
		p.advance()
	}
	depth := 0
	for !p.at(token.EOF) {
		tok := p.peek()
		switch tok.Kind {
		case token.LBrace:
			depth++
		case token.RBrace:
			if depth > 0 {
				depth--
			}
		}
		if depth == 0 && tok.NewlineBefore() && isDeclStarter(tok) {
			return
		}
		p.advance()
	}
}

func isDeclStarter(tok token.Token) bool {
	switch tok.Kind {
	case token.KwClass, token.KwInterface, token.KwObject, token.KwFun, token.KwVal, token.KwVar,
		token.KwTypeAlias, token.At:
		return true
	case token.Ident:
		return isModifierName(tok.Text)
	}
	return false
}
