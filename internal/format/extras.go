package format

import "kremap/internal/ast"

// ExtrasRenderer emits the extras around a node. Writer calls
// WriteExtrasBefore before every node and WriteExtras with the resolved
// trailing and inner extras of a node.
type ExtrasRenderer interface {
	WriteExtrasBefore(w *Writer, n ast.Node)
	WriteExtras(w *Writer, n ast.Node, extras []ast.Extra)
}

// DefaultExtras is the stock renderer. Custom renderers embed it and call
// its methods directly for the cases they do not override.
type DefaultExtras struct{}

// WriteExtrasBefore writes the extras anchored before n, in source order.
func (DefaultExtras) WriteExtrasBefore(w *Writer, n ast.Node) {
	m := w.ExtrasMap()
	if m == nil {
		return
	}
	for _, x := range m.ExtrasBefore(n) {
		w.writeExtra(x, true)
	}
}

// WriteExtras writes extras exactly as given.
func (DefaultExtras) WriteExtras(w *Writer, _ ast.Node, extras []ast.Extra) {
	for _, x := range extras {
		w.writeExtra(x, false)
	}
}

// WriteComment writes one comment using the line rules of its flags.
// A leading comment that stays on the line is followed by a space.
func (w *Writer) WriteComment(c *ast.Comment, leading bool) {
	switch {
	case c.StartsLine:
		w.LineBegin()
	case w.lastByte() != '(' && w.lastByte() != '[':
		w.Space()
	}
	w.Append(c.Text)
	switch {
	case c.EndsLine || c.IsLineComment():
		w.LineEnd()
	case leading:
		w.Space()
	}
}

// WriteBlankLines makes sure at least n empty lines precede the next text.
// Nothing is written at the very start of the output.
func (w *Writer) WriteBlankLines(n int) {
	if !w.Started() {
		return
	}
	w.LineEnd()
	for w.blank < n && w.err == nil {
		w.Line()
	}
}

func (w *Writer) writeExtra(x ast.Extra, leading bool) {
	switch x := x.(type) {
	case *ast.Comment:
		w.WriteComment(x, leading)
	case *ast.BlankLines:
		if w.IncludeExtraBlankLines() {
			w.WriteBlankLines(x.Count)
		}
	}
}
