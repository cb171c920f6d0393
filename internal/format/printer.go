package format

import (
	"io"
	"strings"
	"unicode"

	"kremap/internal/ast"
	"kremap/internal/token"
)

// Write renders n with its extras to out. extras may be nil.
func Write(out io.Writer, n ast.Node, extras ast.ExtrasMap, opts Options) error {
	return NewWriter(out, extras, opts).Write(n)
}

// String renders n to a string.
func String(n ast.Node, extras ast.ExtrasMap, opts Options) (string, error) {
	var sb strings.Builder
	if err := Write(&sb, n, extras, opts); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// Write renders n and flushes the last line. It returns the first sink error.
func (w *Writer) Write(n ast.Node) error {
	w.Visit(n)
	return w.Flush()
}

// Visit renders one node surrounded by its extras.
func (w *Writer) Visit(n ast.Node) {
	if ast.IsNil(n) || w.err != nil {
		return
	}
	w.opt.Renderer.WriteExtrasBefore(w, n)
	w.node(n)
	if w.extras != nil {
		if after := w.extras.ExtrasAfter(n); len(after) > 0 {
			w.opt.Renderer.WriteExtras(w, n, after)
		}
	}
}

func (w *Writer) within(n ast.Node) []ast.Extra {
	if w.extras == nil {
		return nil
	}
	return w.extras.ExtrasWithin(n)
}

func (w *Writer) writeWithin(n ast.Node, xs []ast.Extra) {
	if len(xs) > 0 {
		w.opt.Renderer.WriteExtras(w, n, xs)
	}
}

func (w *Writer) hasExtras(n ast.Node) bool {
	if w.extras == nil {
		return false
	}
	return len(w.extras.ExtrasBefore(n)) > 0 || len(w.extras.ExtrasAfter(n)) > 0
}

// AppendName writes an identifier, back-quoting it when it is a keyword
// or not a plain identifier.
func (w *Writer) AppendName(name string) {
	if needsQuotes(name) {
		w.Append("`" + name + "`")
		return
	}
	w.Append(name)
}

func needsQuotes(name string) bool {
	if name == "" || token.IsHardKeyword(name) || name == "typeof" {
		return true
	}
	for i, r := range name {
		if r == '_' || unicode.IsLetter(r) || (i > 0 && unicode.IsDigit(r)) {
			continue
		}
		return true
	}
	return false
}

func (w *Writer) appendNames(names []string, sep string) {
	for i, n := range names {
		if i > 0 {
			w.Append(sep)
		}
		w.AppendName(n)
	}
}

// visitList renders nodes separated by sep. Once a later node carries extras
// or lands on a fresh line, the rest of the list is indented one level.
func visitList[T ast.Node](w *Writer, nodes []T, sep string) {
	pushed := false
	for i, n := range nodes {
		if i > 0 && !pushed && (w.AtLineStart() || w.hasExtras(n)) {
			w.IndentPush()
			pushed = true
		}
		if i > 0 {
			w.Append(sep)
		}
		w.Visit(n)
	}
	if pushed {
		w.IndentPop()
	}
}

func parenList[T ast.Node](w *Writer, nodes []T) {
	w.Append("(")
	visitList(w, nodes, ", ")
	w.Append(")")
}

func bracketList[T ast.Node](w *Writer, nodes []T) {
	if len(nodes) == 0 {
		return
	}
	w.Append("<")
	visitList(w, nodes, ", ")
	w.Append(">")
}

// lines renders nodes one per line. sep is the number of line breaks
// between nodes and last the number after the final one.
func lines[T ast.Node](w *Writer, nodes []T, sep, last int) {
	for i, n := range nodes {
		w.LineBegin()
		w.Visit(n)
		if i+1 < len(nodes) && needsEmptyBraces(n, nodes[i+1]) {
			w.Append(" {}")
		}
		count := sep
		if i == len(nodes)-1 {
			count = last
		}
		w.LineEnd()
		for k := 1; k < count; k++ {
			if w.blank < k {
				w.Line()
			}
		}
	}
}

// needsEmptyBraces reports whether a memberless local class would swallow
// the parenthesised expression that follows it as a constructor.
func needsEmptyBraces(cur, next ast.Node) bool {
	ds, ok := any(cur).(*ast.DeclStmt)
	if !ok {
		return false
	}
	c, ok := ds.Decl.(*ast.Class)
	if !ok || c.Form != ast.FormClass || len(c.Members) > 0 || c.Constructor != nil {
		return false
	}
	es, ok := any(next).(*ast.ExprStmt)
	if !ok {
		return false
	}
	_, ok = es.X.(*ast.Paren)
	return ok
}

// mods writes modifiers each followed by a space. With newlines set,
// annotations sit on their own line.
func (w *Writer) mods(mods []ast.Modifier, newlines bool) {
	for i, m := range mods {
		w.Visit(m)
		_, isAnn := m.(*ast.Annotation)
		nextAnn := false
		if i+1 < len(mods) {
			_, nextAnn = mods[i+1].(*ast.Annotation)
		}
		if newlines && (isAnn || nextAnn) {
			w.LineEnd()
		} else {
			w.Append(" ")
		}
	}
}

// block writes `{ stmts }` with one statement per line, or `{}`.
func (w *Writer) block(n ast.Node, stmts []ast.Stmt) {
	in := w.within(n)
	if len(stmts) == 0 && len(in) == 0 {
		w.Append("{}")
		return
	}
	w.Append("{")
	w.LineEnd()
	w.indented(func() {
		lines(w, stmts, 1, 1)
		w.writeWithin(n, in)
	})
	w.LineBegin()
	w.Append("}")
}

func (w *Writer) node(n ast.Node) {
	switch n := n.(type) {
	case *ast.File:
		w.file(n)
	case *ast.Package:
		w.mods(n.Mods, true)
		w.Append("package ")
		w.appendNames(n.Names, ".")
	case *ast.Import:
		w.Append("import ")
		w.appendNames(n.Names, ".")
		if n.Wildcard {
			w.Append(".*")
		} else if n.Alias != "" {
			w.Append(" as ")
			w.AppendName(n.Alias)
		}
	case *ast.Annotation:
		w.Append("@")
		if n.Target != "" {
			w.Append(n.Target + ":")
		}
		w.appendNames(n.Names, ".")
		bracketList(w, n.TypeArgs)
		if n.HasArgs {
			parenList(w, n.Args)
		}
	case *ast.Keyword:
		w.Append(n.Name)
	case ast.Decl:
		w.decl(n)
	case ast.TypeRef:
		w.typeRef(n)
	case ast.Stmt:
		w.stmt(n)
	case ast.Expr:
		w.expr(n)
	default:
		w.part(n)
	}
}

func (w *Writer) file(f *ast.File) {
	if f.Package != nil {
		last := 1
		if len(f.Imports) > 0 || len(f.Decls) > 0 {
			last = 2
		}
		lines(w, []*ast.Package{f.Package}, 1, last)
	}
	if len(f.Imports) > 0 {
		last := 1
		if len(f.Decls) > 0 {
			last = 2
		}
		lines(w, f.Imports, 1, last)
	}
	lines(w, f.Decls, 2, 1)
	w.writeWithin(f, w.within(f))
	w.LineEnd()
}
