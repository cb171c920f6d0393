package format

import "kremap/internal/ast"

func (w *Writer) typeRef(t ast.TypeRef) {
	switch t := t.(type) {
	case *ast.SimpleType:
		visitList(w, t.Pieces, ".")
	case *ast.NullableType:
		w.Visit(t.Type)
		w.Append("?")
	case *ast.FuncType:
		if t.Receiver != nil {
			w.Visit(t.Receiver)
			w.Append(".")
		}
		parenList(w, t.Params)
		w.Append(" -> ")
		w.Visit(t.Result)
	case *ast.ParenType:
		w.Append("(")
		w.Visit(t.Type)
		w.Append(")")
	}
}

func (w *Writer) stmt(s ast.Stmt) {
	switch s := s.(type) {
	case *ast.DeclStmt:
		w.Visit(s.Decl)
	case *ast.ExprStmt:
		w.Visit(s.X)
	}
}

// Операторы, которые пишутся без пробелов вокруг.
var tightOps = map[string]bool{".": true, "?.": true, "..": true}

func (w *Writer) label(l string) {
	if l != "" {
		w.Append("@")
		w.AppendName(l)
	}
}

func (w *Writer) expr(e ast.Expr) {
	switch e := e.(type) {
	case *ast.Block:
		w.block(e, e.Stmts)
	case *ast.Name:
		w.AppendName(e.Name)
	case *ast.Const:
		w.Append(e.Value)
	case *ast.Call:
		w.Visit(e.Fun)
		bracketList(w, e.TypeArgs)
		if len(e.Args) > 0 || e.Lambda == nil {
			parenList(w, e.Args)
		}
		if e.Lambda != nil {
			w.Append(" ")
			w.Visit(e.Lambda)
		}
	case *ast.Index:
		w.Visit(e.X)
		w.Append("[")
		visitList(w, e.Indices, ", ")
		w.Append("]")
	case *ast.Binary:
		w.Visit(e.X)
		if tightOps[e.Op] {
			w.Append(e.Op)
		} else {
			w.Append(" " + e.Op + " ")
		}
		w.Visit(e.Y)
	case *ast.Unary:
		if e.Prefix {
			w.Append(e.Op)
			w.Visit(e.X)
		} else {
			w.Visit(e.X)
			w.Append(e.Op)
		}
	case *ast.TypeOp:
		w.Visit(e.X)
		if e.Op == ":" {
			w.Append(": ")
		} else {
			w.Append(" " + e.Op + " ")
		}
		w.Visit(e.Type)
	case *ast.Paren:
		w.Append("(")
		w.Visit(e.X)
		w.Append(")")
	case *ast.Lambda:
		w.lambda(e)
	case *ast.This:
		w.Append("this")
		w.label(e.Label)
	case *ast.Super:
		w.Append("super")
		if e.TypeArg != nil {
			w.Append("<")
			w.Visit(e.TypeArg)
			w.Append(">")
		}
		w.label(e.Label)
	case *ast.DoubleColon:
		w.Visit(e.Recv)
		w.Append("::")
		if e.Name == "class" {
			w.Append("class")
		} else {
			w.AppendName(e.Name)
		}
	case *ast.If:
		w.Append("if (")
		w.Visit(e.Cond)
		w.Append(") ")
		w.Visit(e.Then)
		if e.Else != nil {
			w.Space()
			w.Append("else ")
			w.Visit(e.Else)
		}
	case *ast.When:
		w.when(e)
	case *ast.While:
		if e.DoWhile {
			w.Append("do ")
			w.Visit(e.Body)
			w.Space()
			w.Append("while (")
			w.Visit(e.Cond)
			w.Append(")")
			return
		}
		w.Append("while (")
		w.Visit(e.Cond)
		w.Append(") ")
		w.Visit(e.Body)
	case *ast.For:
		w.Append("for (")
		w.vars(e.Vars)
		w.Append(" in ")
		w.Visit(e.In)
		w.Append(") ")
		w.Visit(e.Body)
	case *ast.Try:
		w.Append("try ")
		w.Visit(e.Body)
		for _, c := range e.Catches {
			w.Space()
			w.Visit(c)
		}
		if e.Finally != nil {
			w.Space()
			w.Append("finally ")
			w.Visit(e.Finally)
		}
	case *ast.Return:
		w.Append("return")
		w.label(e.Label)
		if e.X != nil {
			w.Append(" ")
			w.Visit(e.X)
		}
	case *ast.Throw:
		w.Append("throw ")
		w.Visit(e.X)
	case *ast.Break:
		w.Append("break")
		w.label(e.Label)
	case *ast.Continue:
		w.Append("continue")
		w.label(e.Label)
	}
}

// lambda keeps a single plain statement on one line: `{ x -> x + 1 }`.
func (w *Writer) lambda(l *ast.Lambda) {
	w.Append("{")
	if len(l.Params) > 0 {
		w.Append(" ")
		visitList(w, l.Params, ", ")
		w.Append(" ->")
	}
	in := w.within(l)
	switch {
	case len(l.Stmts) == 0 && len(in) == 0:
		if len(l.Params) > 0 {
			w.Append(" ")
		}
		w.Append("}")
	case len(l.Stmts) == 1 && len(in) == 0 && !w.hasExtras(l.Stmts[0]) && singleLine(l.Stmts[0]):
		w.Append(" ")
		w.Visit(l.Stmts[0])
		w.Append(" }")
	default:
		w.LineEnd()
		w.indented(func() {
			lines(w, l.Stmts, 1, 1)
			w.writeWithin(l, in)
		})
		w.LineBegin()
		w.Append("}")
	}
}

// singleLine reports whether a statement renders without line breaks of
// its own, so it can sit inside `{ ... }` on one line.
func singleLine(s ast.Stmt) bool {
	ok := true
	ast.Inspect(s, func(n ast.Node) bool {
		switch n := n.(type) {
		case *ast.Block:
			if len(n.Stmts) > 0 {
				ok = false
			}
		case *ast.When, *ast.Class, *ast.EnumEntry:
			ok = false
		case *ast.Lambda:
			if len(n.Stmts) > 1 {
				ok = false
			}
		}
		return ok
	})
	return ok
}

func (w *Writer) when(e *ast.When) {
	w.Append("when ")
	if e.Subject != nil {
		w.Append("(")
		w.Visit(e.Subject)
		w.Append(") ")
	}
	in := w.within(e)
	w.Append("{")
	w.LineEnd()
	w.indented(func() {
		lines(w, e.Entries, 1, 1)
		w.writeWithin(e, in)
	})
	w.LineBegin()
	w.Append("}")
}
