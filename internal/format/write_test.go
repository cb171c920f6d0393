package format

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"kremap/internal/ast"
)

func name(s string) *ast.Name { return &ast.Name{Name: s} }

func simple(names ...string) *ast.SimpleType {
	t := &ast.SimpleType{}
	for _, n := range names {
		t.Pieces = append(t.Pieces, &ast.TypePiece{Name: n})
	}
	return t
}

func lineComment(text string) *ast.Comment {
	return &ast.Comment{Text: text, StartsLine: true, EndsLine: true}
}

func mustString(t *testing.T, n ast.Node, extras ast.ExtrasMap, opts Options) string {
	t.Helper()
	out, err := String(n, extras, opts)
	if err != nil {
		t.Fatalf("String: %v", err)
	}
	return out
}

func TestBeforeCommentsOnStatement(t *testing.T) {
	stmt := &ast.ExprStmt{X: &ast.Call{Fun: name("f")}}
	ex := ast.NewExtras()
	ex.AddBefore(stmt, lineComment("// a"), lineComment("// b"))

	got := mustString(t, stmt, ex, Options{})
	want := "// a\n// b\nf()"
	if got != want {
		t.Fatalf("want %q, got %q", want, got)
	}
}

func TestBlankLinesFlag(t *testing.T) {
	stmt := &ast.ExprStmt{X: name("x")}
	ex := ast.NewExtras()
	ex.AddBefore(stmt, lineComment("// a"), &ast.BlankLines{Count: 1}, lineComment("// b"))

	tests := []struct {
		name  string
		blank bool
		want  string
	}{
		{"omitted", false, "// a\n// b\nx"},
		{"included", true, "// a\n\n// b\nx"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mustString(t, stmt, ex, Options{IncludeExtraBlankLines: tt.blank})
			if got != tt.want {
				t.Fatalf("want %q, got %q", tt.want, got)
			}
		})
	}
}

func TestOnlyBlankLineMarkerWithoutFlag(t *testing.T) {
	stmt := &ast.ExprStmt{X: name("x")}
	ex := ast.NewExtras()
	ex.AddBefore(stmt, &ast.BlankLines{Count: 2}, lineComment("// a"))

	got := mustString(t, stmt, ex, Options{})
	if want := "// a\nx"; got != want {
		t.Fatalf("want %q, got %q", want, got)
	}
}

func TestLeadingBlankLinesDropped(t *testing.T) {
	stmt := &ast.ExprStmt{X: name("x")}
	ex := ast.NewExtras()
	ex.AddBefore(stmt, &ast.BlankLines{Count: 3})

	got := mustString(t, stmt, ex, Options{IncludeExtraBlankLines: true})
	if got != "x" {
		t.Fatalf("want %q, got %q", "x", got)
	}
}

func sampleFile() (*ast.File, *ast.Extras) {
	imp := &ast.Import{Names: []string{"a", "b", "C"}}
	prop := &ast.Property{
		ReadOnly: true,
		Vars:     []*ast.PropertyVar{{Name: "x", Type: simple("C")}},
		Init:     &ast.Const{Value: "1"},
	}
	fn := &ast.Func{
		Name: "f",
		Body: &ast.Block{Stmts: []ast.Stmt{
			&ast.ExprStmt{X: &ast.Call{Fun: name("g"), Args: []*ast.ValueArg{{X: name("x")}}}},
		}},
	}
	file := &ast.File{
		Package: &ast.Package{Names: []string{"p"}},
		Imports: []*ast.Import{imp},
		Decls:   []ast.Decl{prop, fn},
	}
	ex := ast.NewExtras()
	ex.AddBefore(prop, &ast.Comment{Text: "/* doc */", StartsLine: true, EndsLine: true})
	ex.AddAfter(prop, &ast.Comment{Text: "// one", EndsLine: true})
	ex.AddBefore(fn, &ast.BlankLines{Count: 2}, lineComment("// f"))
	ex.AddWithin(fn.Body.(*ast.Block), lineComment("// end"))
	ex.AddWithin(file, lineComment("// eof"))
	return file, ex
}

func TestNoExtrasMapIsStructural(t *testing.T) {
	file, ex := sampleFile()

	plain := mustString(t, file, nil, Options{})
	want := "package p\n\nimport a.b.C\n\nval x: C = 1\n\nfun f() {\n    g(x)\n}\n"
	if plain != want {
		t.Fatalf("want %q, got %q", want, plain)
	}
	empty := mustString(t, file, ast.NewExtras(), Options{})
	if empty != plain {
		t.Fatalf("empty extras changed output:\n%q\n%q", plain, empty)
	}

	withExtras := mustString(t, file, ex, Options{})
	want = "package p\n\nimport a.b.C\n\n/* doc */\nval x: C = 1 // one\n\n// f\nfun f() {\n    g(x)\n    // end\n}\n// eof\n"
	if withExtras != want {
		t.Fatalf("want %q, got %q", want, withExtras)
	}
}

func TestBlankLinesAreAtLeast(t *testing.T) {
	file, ex := sampleFile()
	got := mustString(t, file, ex, Options{IncludeExtraBlankLines: true})
	if !strings.Contains(got, "val x: C = 1 // one\n\n\n// f\nfun f()") {
		t.Fatalf("expected two blank lines before // f, got %q", got)
	}
}

func TestIdempotent(t *testing.T) {
	file, ex := sampleFile()
	for _, blank := range []bool{false, true} {
		opts := Options{IncludeExtraBlankLines: blank}
		a := mustString(t, file, ex, opts)
		b := mustString(t, file, ex, opts)
		if a != b {
			t.Fatalf("blank=%v: outputs differ:\n%q\n%q", blank, a, b)
		}
	}
}

func TestIndentOptions(t *testing.T) {
	file, _ := sampleFile()
	got := mustString(t, file, nil, Options{UseTabs: true})
	if !strings.Contains(got, "{\n\tg(x)\n}") {
		t.Fatalf("expected tab indent, got %q", got)
	}
	got = mustString(t, file, nil, Options{IndentWidth: 2})
	if !strings.Contains(got, "{\n  g(x)\n}") {
		t.Fatalf("expected two-space indent, got %q", got)
	}
}

var errSink = errors.New("sink closed")

type failingWriter struct {
	writesLeft int
	buf        bytes.Buffer
}

func (f *failingWriter) Write(p []byte) (int, error) {
	if f.writesLeft <= 0 {
		return 0, errSink
	}
	f.writesLeft--
	return f.buf.Write(p)
}

func TestSinkErrorPropagates(t *testing.T) {
	file, ex := sampleFile()
	sink := &failingWriter{writesLeft: 2}
	err := Write(sink, file, ex, Options{})
	if !errors.Is(err, errSink) {
		t.Fatalf("want errSink, got %v", err)
	}
	if got := sink.buf.String(); got != "package p\n\n" {
		t.Fatalf("text written before the failure must stay, got %q", got)
	}
}

type taggingRenderer struct {
	DefaultExtras
	calls int
}

func (r *taggingRenderer) WriteExtrasBefore(w *Writer, n ast.Node) {
	r.calls++
	if _, ok := n.(*ast.Func); ok {
		w.Append("// generated")
		w.LineEnd()
	}
	r.DefaultExtras.WriteExtrasBefore(w, n)
}

func TestCustomRendererCallsDefault(t *testing.T) {
	file, ex := sampleFile()
	r := &taggingRenderer{}
	got := mustString(t, file, ex, Options{Renderer: r})
	if !strings.Contains(got, "// generated\n// f\nfun f() {") {
		t.Fatalf("custom and default extras not both written: %q", got)
	}
	if !strings.Contains(got, "/* doc */\nval x") {
		t.Fatalf("default extras lost: %q", got)
	}
	if r.calls == 0 {
		t.Fatalf("renderer was never called")
	}
}

func TestInlineBlockComment(t *testing.T) {
	arg := &ast.ValueArg{X: name("a")}
	call := &ast.Call{Fun: name("f"), Args: []*ast.ValueArg{arg, {X: name("b")}}}
	ex := ast.NewExtras()
	ex.AddBefore(arg, &ast.Comment{Text: "/* x */"})
	ex.AddAfter(arg, &ast.Comment{Text: "/* y */"})

	got := mustString(t, call, ex, Options{})
	if want := "f(/* x */ a /* y */, b)"; got != want {
		t.Fatalf("want %q, got %q", want, got)
	}
}

func TestTrailingSpacesTrimmed(t *testing.T) {
	stmt := &ast.ExprStmt{X: name("x")}
	ex := ast.NewExtras()
	ex.AddBefore(stmt, &ast.Comment{Text: "/* a */", StartsLine: true})
	ex.AddAfter(stmt, &ast.Comment{Text: "/* b */", EndsLine: true})
	blk := &ast.Block{Stmts: []ast.Stmt{stmt}}

	got := mustString(t, blk, ex, Options{})
	if want := "{\n    /* a */ x /* b */\n}"; got != want {
		t.Fatalf("want %q, got %q", want, got)
	}
}
