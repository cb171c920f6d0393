package parser

// Тесты структуры дерева для подмножества kt.
//
// Покрытие:
//   - package / import (алиасы, wildcard)
//   - классы, enum, companion, функции, свойства, typealias
//   - приоритеты операторов и переводы строк между операндами
//   - диагностика и ParseError

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"kremap/internal/ast"
	"kremap/internal/diag"
	"kremap/internal/lexer"
	"kremap/internal/source"
)

// parseString - хелпер: разбирает input и возвращает результат и bag.
func parseString(t *testing.T, input string) (Result, *diag.Bag) {
	t.Helper()
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("test.kt", []byte(input)))
	bag := diag.NewBag(100)
	reporter := diag.BagReporter{Bag: bag}
	lx := lexer.New(file, lexer.Options{Reporter: reporter})
	res := ParseFile(context.Background(), fs, lx, Options{MaxErrors: 100, Reporter: reporter})
	return res, bag
}

func mustParse(t *testing.T, input string) Result {
	t.Helper()
	res, bag := parseString(t, input)
	if bag.HasErrors() {
		var msgs []string
		for _, d := range bag.Items() {
			msgs = append(msgs, fmt.Sprintf("%s: %s", d.Code, d.Message))
		}
		t.Fatalf("unexpected errors for %q: %v", input, msgs)
	}
	return res
}

// sexpr печатает выражение в виде скобочной записи для сравнения.
func sexpr(e ast.Node) string {
	switch e := e.(type) {
	case *ast.Name:
		return e.Name
	case *ast.Const:
		return e.Value
	case *ast.Binary:
		return "(" + e.Op + " " + sexpr(e.X) + " " + sexpr(e.Y) + ")"
	case *ast.Unary:
		if e.Prefix {
			return "(" + e.Op + " " + sexpr(e.X) + ")"
		}
		return "(" + sexpr(e.X) + " " + e.Op + ")"
	case *ast.TypeOp:
		return "(" + e.Op + " " + sexpr(e.X) + " " + sexpr(e.Type) + ")"
	case *ast.SimpleType:
		return strings.Join(e.Names(), ".")
	case *ast.NullableType:
		return sexpr(e.Type) + "?"
	case *ast.Paren:
		return "[" + sexpr(e.X) + "]"
	case *ast.Call:
		var args []string
		for _, a := range e.Args {
			args = append(args, sexpr(a.X))
		}
		s := "(call " + sexpr(e.Fun) + " " + strings.Join(args, " ")
		if e.Lambda != nil {
			s += " {}"
		}
		return s + ")"
	case *ast.Index:
		return "(index " + sexpr(e.X) + ")"
	case *ast.DoubleColon:
		if e.Recv == nil {
			return "::" + e.Name
		}
		return sexpr(e.Recv) + "::" + e.Name
	case nil:
		return "<nil>"
	}
	return fmt.Sprintf("<%T>", e)
}

func initOf(t *testing.T, d ast.Decl) ast.Expr {
	t.Helper()
	p, ok := d.(*ast.Property)
	if !ok {
		t.Fatalf("expected property, got %T", d)
	}
	return p.Init
}

func TestParseImports(t *testing.T) {
	tests := []struct {
		input    string
		names    string
		wildcard bool
		alias    string
	}{
		{"import a", "a", false, ""},
		{"import a.b.C", "a.b.C", false, ""},
		{"import a.b.*", "a.b", true, ""},
		{"import a.b.C as D", "a.b.C", false, "D"},
		{"import a.`in`.C", "a.in.C", false, ""},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			res := mustParse(t, tt.input+"\n")
			if len(res.File.Imports) != 1 {
				t.Fatalf("expected 1 import, got %d", len(res.File.Imports))
			}
			imp := res.File.Imports[0]
			if got := strings.Join(imp.Names, "."); got != tt.names {
				t.Fatalf("names: want %q, got %q", tt.names, got)
			}
			if imp.Wildcard != tt.wildcard || imp.Alias != tt.alias {
				t.Fatalf("want wildcard=%v alias=%q, got %v %q", tt.wildcard, tt.alias, imp.Wildcard, imp.Alias)
			}
		})
	}
}

func TestParsePackageWithFileAnnotation(t *testing.T) {
	res := mustParse(t, "@file:JvmName(\"X\")\npackage a.b\n\nval v = 1\n")
	pkg := res.File.Package
	if pkg == nil || strings.Join(pkg.Names, ".") != "a.b" {
		t.Fatalf("unexpected package %+v", pkg)
	}
	if len(pkg.Mods) != 1 {
		t.Fatalf("expected file annotation, got %d mods", len(pkg.Mods))
	}
	ann, ok := pkg.Mods[0].(*ast.Annotation)
	if !ok || ann.Target != "file" || !ann.HasArgs || ann.Names[0] != "JvmName" {
		t.Fatalf("unexpected annotation %+v", pkg.Mods[0])
	}
	if len(res.File.Decls) != 1 {
		t.Fatalf("expected 1 decl, got %d", len(res.File.Decls))
	}
}

func TestParseModifiersAfterHeader(t *testing.T) {
	tests := []struct {
		name string
		src  string
		mod  string
	}{
		{"package", "package p\n\nprivate fun f() {}\n", "private"},
		{"imports", "package p\n\nimport a.B\n\n@Ann class A\n", "Ann"},
		{"imports only", "import a.B\ninternal data class A(val x: Int)\n", "data"},
		{"no header", "private fun f() {}\n", "private"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := mustParse(t, tt.src)
			if len(res.File.Decls) != 1 {
				t.Fatalf("expected 1 decl, got %d", len(res.File.Decls))
			}
			var mods []ast.Modifier
			switch d := res.File.Decls[0].(type) {
			case *ast.Func:
				mods = d.Mods
			case *ast.Class:
				mods = d.Mods
			default:
				t.Fatalf("unexpected decl %T", d)
			}
			if !ast.HasModifier(mods, tt.mod) && !hasAnnotation(mods, tt.mod) {
				t.Fatalf("modifier %q missing from %+v", tt.mod, mods)
			}
		})
	}
}

func hasAnnotation(mods []ast.Modifier, name string) bool {
	for _, m := range mods {
		if a, ok := m.(*ast.Annotation); ok && a.Names[len(a.Names)-1] == name {
			return true
		}
	}
	return false
}

func TestParseClassForms(t *testing.T) {
	src := `data class A<T : Any>(val x: T, y: Int = 0) : C by d, B(x) {
    fun f() = x
}
enum class E { X, Y(1); fun g() {} }
interface I
object O : I
class K {
    companion object {
        const val N = 1
    }
}
`
	res := mustParse(t, src)
	if len(res.File.Decls) != 5 {
		t.Fatalf("expected 5 decls, got %d", len(res.File.Decls))
	}

	a := res.File.Decls[0].(*ast.Class)
	if a.Form != ast.FormClass || a.Name != "A" || !ast.HasModifier(a.Mods, "data") {
		t.Fatalf("unexpected class header %+v", a)
	}
	if len(a.TypeParams) != 1 || sexpr(a.TypeParams[0].Bound) != "Any" {
		t.Fatalf("unexpected type params")
	}
	if a.Constructor == nil || len(a.Constructor.Params) != 2 {
		t.Fatalf("expected primary constructor with 2 params")
	}
	if a.Constructor.Params[0].Binding != ast.BindVal || a.Constructor.Params[1].Binding != ast.BindNone {
		t.Fatalf("unexpected bindings")
	}
	if sexpr(a.Constructor.Params[1].Default) != "0" {
		t.Fatalf("unexpected default %s", sexpr(a.Constructor.Params[1].Default))
	}
	if len(a.Parents) != 2 || a.Parents[0].By == nil || !a.Parents[1].HasCall {
		t.Fatalf("unexpected parents")
	}
	if len(a.Members) != 1 {
		t.Fatalf("expected 1 member, got %d", len(a.Members))
	}

	e := res.File.Decls[1].(*ast.Class)
	if e.Form != ast.FormEnumClass || len(e.Members) != 3 {
		t.Fatalf("unexpected enum %+v", e)
	}
	if y := e.Members[1].(*ast.EnumEntry); y.Name != "Y" || len(y.Args) != 1 {
		t.Fatalf("unexpected entry %+v", y)
	}
	if _, ok := e.Members[2].(*ast.Func); !ok {
		t.Fatalf("expected function after entries, got %T", e.Members[2])
	}

	if i := res.File.Decls[2].(*ast.Class); i.Form != ast.FormInterface || i.Members != nil {
		t.Fatalf("unexpected interface %+v", i)
	}
	if o := res.File.Decls[3].(*ast.Class); o.Form != ast.FormObject || len(o.Parents) != 1 {
		t.Fatalf("unexpected object %+v", o)
	}
	k := res.File.Decls[4].(*ast.Class)
	comp := k.Members[0].(*ast.Class)
	if comp.Form != ast.FormCompanionObject || comp.Name != "Companion" {
		t.Fatalf("unexpected companion %+v", comp)
	}
	if !ast.HasModifier(comp.Members[0].(*ast.Property).Mods, "const") {
		t.Fatalf("expected const modifier")
	}
}

func TestParseFunctions(t *testing.T) {
	res := mustParse(t, "fun <T> List<T>.second(): T? = get(1)\nfun f(vararg xs: Int) {}\n")
	f := res.File.Decls[0].(*ast.Func)
	if f.Name != "second" || sexpr(f.Receiver) != "List" || sexpr(f.Result) != "T?" {
		t.Fatalf("unexpected function %s %s %s", f.Name, sexpr(f.Receiver), sexpr(f.Result))
	}
	if _, ok := f.Body.(*ast.ExprBody); !ok {
		t.Fatalf("expected expression body, got %T", f.Body)
	}
	g := res.File.Decls[1].(*ast.Func)
	if !ast.HasModifier(g.Params[0].Mods, "vararg") {
		t.Fatalf("expected vararg param")
	}
	if b, ok := g.Body.(*ast.Block); !ok || len(b.Stmts) != 0 {
		t.Fatalf("expected empty block body")
	}
}

func TestParseProperties(t *testing.T) {
	res := mustParse(t, "val (a, _) = p\nvar x: Int? = null\nval y by lazy { 1 }\n")
	d := res.File.Decls[0].(*ast.Property)
	if len(d.Vars) != 2 || d.Vars[0].Name != "a" || d.Vars[1] != nil {
		t.Fatalf("unexpected destructuring %+v", d.Vars)
	}
	x := res.File.Decls[1].(*ast.Property)
	if x.ReadOnly || sexpr(x.Vars[0].Type) != "Int?" {
		t.Fatalf("unexpected var %+v", x)
	}
	y := res.File.Decls[2].(*ast.Property)
	if !y.Delegated || sexpr(y.Init) != "(call lazy  {})" {
		t.Fatalf("unexpected delegate %s", sexpr(y.Init))
	}
}

func TestOperatorPrecedence(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"a + b * c", "(+ a (* b c))"},
		{"a * b + c", "(+ (* a b) c)"},
		{"a || b && c", "(|| a (&& b c))"},
		{"a == b < c", "(== a (< b c))"},
		{"a ?: b + c", "(?: a (+ b c))"},
		{"a to b + c", "(to a (+ b c))"},
		{"1..n - 1", "(.. 1 (- n 1))"},
		{"x in a..b", "(in x (.. a b))"},
		{"x !in xs", "(!in x xs)"},
		{"x is String?", "(is x String?)"},
		{"x as T + 1", "(+ (as x T) 1)"},
		{"-a * b", "(* (- a) b)"},
		{"!a.b", "(! (. a b))"},
		{"a?.b!!", "((?. a b) !!)"},
		{"f(1)(2)", "(call (call f 1) 2)"},
		{"a.f<Int>(x)", "(call (. a f) x)"},
		{"a < b", "(< a b)"},
		{"xs[0]", "(index xs)"},
		{"String::class", "String::class"},
		{"(a + b) * c", "(* [(+ a b)] c)"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			res := mustParse(t, "val v = "+tt.input+"\n")
			if got := sexpr(initOf(t, res.File.Decls[0])); got != tt.want {
				t.Fatalf("want %s, got %s", tt.want, got)
			}
		})
	}
}

func TestNewlinesBetweenOperands(t *testing.T) {
	res := mustParse(t, "fun f() {\n    a\n    -b\n    x\n        .y\n    p &&\n        q\n    c ?:\n        d\n}\n")
	body := res.File.Decls[0].(*ast.Func).Body.(*ast.Block)
	var got []string
	for _, st := range body.Stmts {
		got = append(got, sexpr(st.(*ast.ExprStmt).X))
	}
	want := []string{"a", "(- b)", "(. x y)", "(&& p q)", "(?: c d)"}
	if strings.Join(got, " ") != strings.Join(want, " ") {
		t.Fatalf("want %v, got %v", want, got)
	}
}

func TestParseControlFlow(t *testing.T) {
	src := `fun f(x: Any) {
    if (x is String) g() else if (x is Int) h() else {}
    when (x) {
        1, 2 -> a()
        in 3..4 -> b()
        !is Long -> c()
        else -> d()
    }
    for ((k, v) in m) println(k)
    while (true) break
    do { x++ } while (x < 3)
    try { g() } catch (e: E) { throw e } finally { h() }
    return@f
}
`
	res := mustParse(t, src)
	stmts := res.File.Decls[0].(*ast.Func).Body.(*ast.Block).Stmts
	if len(stmts) != 7 {
		t.Fatalf("expected 7 statements, got %d", len(stmts))
	}
	iff := stmts[0].(*ast.ExprStmt).X.(*ast.If)
	if _, ok := iff.Else.(*ast.If); !ok {
		t.Fatalf("expected else-if chain, got %T", iff.Else)
	}
	w := stmts[1].(*ast.ExprStmt).X.(*ast.When)
	if len(w.Entries) != 4 || len(w.Entries[0].Conds) != 2 || w.Entries[3].Conds != nil {
		t.Fatalf("unexpected when entries")
	}
	if w.Entries[1].Conds[0].Op != "in" || w.Entries[2].Conds[0].Op != "!is" {
		t.Fatalf("unexpected when conditions %q %q", w.Entries[1].Conds[0].Op, w.Entries[2].Conds[0].Op)
	}
	loop := stmts[2].(*ast.ExprStmt).X.(*ast.For)
	if len(loop.Vars) != 2 {
		t.Fatalf("expected destructuring loop variable")
	}
	if dw := stmts[4].(*ast.ExprStmt).X.(*ast.While); !dw.DoWhile {
		t.Fatalf("expected do-while")
	}
	tr := stmts[5].(*ast.ExprStmt).X.(*ast.Try)
	if len(tr.Catches) != 1 || tr.Finally == nil {
		t.Fatalf("unexpected try")
	}
	if r := stmts[6].(*ast.ExprStmt).X.(*ast.Return); r.Label != "f" || r.X != nil {
		t.Fatalf("unexpected return %+v", r)
	}
}

func TestParseLambdas(t *testing.T) {
	res := mustParse(t, "val a = xs.map { it * 2 }\nval b = { x: Int, y -> x + y }\nval c = f(1) { }\n")
	call := initOf(t, res.File.Decls[0]).(*ast.Call)
	if call.Lambda == nil || len(call.Lambda.Stmts) != 1 {
		t.Fatalf("expected trailing lambda")
	}
	l := initOf(t, res.File.Decls[1]).(*ast.Lambda)
	if len(l.Params) != 2 || sexpr(l.Params[0].Type) != "Int" || l.Params[1].Type != nil {
		t.Fatalf("unexpected lambda params")
	}
	c := initOf(t, res.File.Decls[2]).(*ast.Call)
	if len(c.Args) != 1 || c.Lambda == nil {
		t.Fatalf("expected args and lambda")
	}
}

func TestTypes(t *testing.T) {
	res := mustParse(t, "typealias F = (Int, name: String) -> Unit\ntypealias G = String.() -> List<out T>?\ntypealias H = Map<*, in K>\n")
	if len(res.File.Decls) != 3 {
		t.Fatalf("expected 3 aliases, got %d", len(res.File.Decls))
	}
	g := res.File.Decls[1].(*ast.TypeAlias)
	ft, ok := g.Type.(*ast.FuncType)
	if !ok || ft.Receiver == nil {
		t.Fatalf("expected receiver function type, got %T", g.Type)
	}
	h := res.File.Decls[2].(*ast.TypeAlias).Type.(*ast.SimpleType)
	args := h.Pieces[0].Args
	if len(args) != 2 || !args[0].Star || args[1].Variance != "in" {
		t.Fatalf("unexpected type args")
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		code  diag.Code
	}{
		{"unclosed brace", "fun f() {\n    g()\n", diag.SynUnclosedBrace},
		{"unclosed paren", "val x = f(1\n", diag.SynUnclosedParen},
		{"missing separator", "val x = 1 val y = 2\n", diag.SynExpectSeparator},
		{"top level expression", "f()\n", diag.SynUnexpectedTopLevel},
		{"misplaced import", "val x = 1\nimport a.B\n", diag.SynMisplacedImport},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, bag := parseString(t, tt.input)
			if !bag.HasErrors() {
				t.Fatalf("expected errors")
			}
			found := false
			for _, d := range bag.Items() {
				if d.Code == tt.code {
					found = true
				}
			}
			if !found {
				t.Fatalf("expected %s among %v", tt.code, bag.Items())
			}
		})
	}
}

func TestRecoveryKeepsLaterDecls(t *testing.T) {
	res, bag := parseString(t, "val = 1\nfun ok() {}\n")
	if !bag.HasErrors() {
		t.Fatalf("expected an error")
	}
	var names []string
	for _, d := range res.File.Decls {
		if f, ok := d.(*ast.Func); ok {
			names = append(names, f.Name)
		}
	}
	if len(names) != 1 || names[0] != "ok" {
		t.Fatalf("expected recovery to keep fun ok, got %v", names)
	}
}

func TestParseReturnsParseError(t *testing.T) {
	_, _, err := Parse(context.Background(), "bad.kt", []byte("fun (\nval = \n"), 10)
	if err == nil {
		t.Fatalf("expected error")
	}
	pe, ok := err.(*ParseError)
	if !ok {
		t.Fatalf("expected *ParseError, got %T", err)
	}
	if pe.Path != "bad.kt" || !strings.HasPrefix(err.Error(), "bad.kt: parse error: ") {
		t.Fatalf("unexpected error %q", err.Error())
	}

	file, extras, err := Parse(context.Background(), "ok.kt", []byte("val x = 1 // c\n"), 10)
	if err != nil || file == nil || extras.Len() != 1 {
		t.Fatalf("unexpected result %v %v", err, extras.Len())
	}
}
