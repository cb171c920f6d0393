package remap

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"kremap/internal/ast"
	"kremap/internal/format"
	"kremap/internal/mapping"
	"kremap/internal/parser"
	"kremap/internal/trace"
)

// Result is a remapped file. Extras is a copy of the input extras with
// every replaced node's entries moved to its replacement.
type Result struct {
	File    *ast.File
	Extras  *ast.Extras
	Renamed int
}

// File rewrites f through set. f and extras are not modified; nodes whose
// subtree has nothing to rename are shared with the input tree.
func File(f *ast.File, extras *ast.Extras, set *mapping.Set) Result {
	fc := newFileContext(f, set)
	ex := extras.Clone()
	renamed := 0

	// имена справа от '.' - члены, а не классы
	members := make(map[*ast.Name]bool)
	ast.Inspect(f, func(n ast.Node) bool {
		if b, ok := n.(*ast.Binary); ok && (b.Op == "." || b.Op == "?.") {
			if y, ok := b.Y.(*ast.Name); ok {
				members[y] = true
			}
		}
		return true
	})

	out := ast.Rewrite(f, func(n ast.Node) ast.Node {
		var res ast.Node
		switch n := n.(type) {
		case *ast.Import:
			res = fc.remapImport(n)
		case *ast.SimpleType:
			res = fc.remapType(n, ex)
		case *ast.Name:
			if !members[n] {
				res = fc.remapName(n)
			}
		case *ast.Annotation:
			res = fc.remapAnnotation(n)
		case *ast.Binary:
			res = fc.remapQualified(n)
		}
		if res != nil {
			renamed++
		}
		return res
	}, ex.Migrate)

	return Result{File: out.(*ast.File), Extras: ex, Renamed: renamed}
}

func (fc *fileContext) remapImport(imp *ast.Import) ast.Node {
	if imp.Wildcard {
		return nil
	}
	mapped, ok := fc.resolve(imp.Names)
	if !ok || slices.Equal(mapped, imp.Names) {
		return nil
	}
	cp := *imp
	cp.Names = mapped
	return &cp
}

// remapType renames the pieces of a type reference. Type arguments stay
// with the class they belong to, counted from the end of the path.
func (fc *fileContext) remapType(t *ast.SimpleType, ex *ast.Extras) ast.Node {
	names, ok := fc.rename(t.Names())
	if !ok {
		return nil
	}
	pieces := make([]*ast.TypePiece, len(names))
	shift := len(t.Pieces) - len(names)
	for i, name := range names {
		p := &ast.TypePiece{Name: name}
		if j := i + shift; j >= 0 && j < len(t.Pieces) {
			old := t.Pieces[j]
			p.Pos, p.Args = old.Pos, old.Args
			ex.Migrate(old, p)
		}
		pieces[i] = p
	}
	// аргументы отброшенных ведущих сегментов переезжают на первый кусок
	for j := 0; j < shift; j++ {
		if len(t.Pieces[j].Args) > 0 {
			pieces[0].Args = append(pieces[0].Args, t.Pieces[j].Args...)
		}
		ex.Migrate(t.Pieces[j], pieces[0])
	}
	cp := *t
	cp.Pieces = pieces
	return &cp
}

func (fc *fileContext) remapName(n *ast.Name) ast.Node {
	if _, imported := fc.imports[n.Name]; !imported && len(fc.pkg) == 0 {
		return nil
	}
	names, ok := fc.rename([]string{n.Name})
	if !ok {
		return nil
	}
	cp := *n
	cp.Name = names[0]
	return &cp
}

// remapQualified rewrites a fully qualified class name used as an
// expression, e.g. net.obf.A() or net.obf.A.create(). Only an exact
// class match counts: trailing segments here are members.
func (fc *fileContext) remapQualified(b *ast.Binary) ast.Node {
	names, ok := dottedNames(b)
	if !ok {
		return nil
	}
	mapped, ok := fc.set.Class(strings.Join(names, "/"))
	if !ok {
		return nil
	}
	segs := mapping.SplitClass(mapped)
	if len(segs) < 2 || slices.Equal(segs, names) {
		return nil
	}
	var x ast.Expr = &ast.Name{Name: segs[0]}
	for _, s := range segs[1:] {
		x = &ast.Binary{X: x, Op: ".", Y: &ast.Name{Name: s}}
	}
	out := x.(*ast.Binary)
	out.Pos = b.Pos
	return out
}

// dottedNames flattens a chain a.b.c of plain names.
func dottedNames(e ast.Expr) ([]string, bool) {
	switch e := e.(type) {
	case *ast.Name:
		return []string{e.Name}, true
	case *ast.Binary:
		if e.Op != "." {
			return nil, false
		}
		y, ok := e.Y.(*ast.Name)
		if !ok {
			return nil, false
		}
		head, ok := dottedNames(e.X)
		if !ok {
			return nil, false
		}
		return append(head, y.Name), true
	}
	return nil, false
}

func (fc *fileContext) remapAnnotation(a *ast.Annotation) ast.Node {
	names, ok := fc.rename(a.Names)
	if !ok {
		return nil
	}
	cp := *a
	cp.Names = names
	return &cp
}

// Options controls Source.
type Options struct {
	Format         format.Options
	MaxDiagnostics int
}

// Source parses src, remaps it and renders the result.
func Source(ctx context.Context, path string, src []byte, set *mapping.Set, opts Options) (string, error) {
	ctx, span := trace.Start(ctx, trace.ScopePass, "remap")
	defer span.End("")

	f, extras, err := parser.Parse(ctx, path, src, opts.MaxDiagnostics)
	if err != nil {
		return "", err
	}
	res := File(f, extras, set)
	span.WithExtra("renamed", fmt.Sprint(res.Renamed))
	out, err := format.String(res.File, res.Extras, opts.Format)
	if err != nil {
		return "", fmt.Errorf("%s: write: %w", path, err)
	}
	return out, nil
}
