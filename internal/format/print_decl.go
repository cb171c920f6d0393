package format

import "kremap/internal/ast"

func (w *Writer) decl(d ast.Decl) {
	switch d := d.(type) {
	case *ast.Class:
		w.class(d)
	case *ast.EnumEntry:
		w.mods(d.Mods, true)
		w.AppendName(d.Name)
		if len(d.Args) > 0 {
			parenList(w, d.Args)
		}
		if len(d.Members) > 0 || len(w.within(d)) > 0 {
			w.Append(" ")
			w.members(d, d.Members)
		}
	case *ast.Init:
		w.Append("init ")
		w.Visit(d.Body)
	case *ast.Func:
		w.mods(d.Mods, true)
		w.Append("fun ")
		if len(d.TypeParams) > 0 {
			bracketList(w, d.TypeParams)
			w.Append(" ")
		}
		if d.Receiver != nil {
			w.Visit(d.Receiver)
			w.Append(".")
		}
		w.AppendName(d.Name)
		parenList(w, d.Params)
		if d.Result != nil {
			w.Append(": ")
			w.Visit(d.Result)
		}
		if d.Body != nil {
			w.Append(" ")
			w.Visit(d.Body)
		}
	case *ast.Property:
		w.property(d)
	case *ast.TypeAlias:
		w.mods(d.Mods, true)
		w.Append("typealias ")
		w.AppendName(d.Name)
		bracketList(w, d.TypeParams)
		w.Append(" = ")
		w.Visit(d.Type)
	}
}

func (w *Writer) class(c *ast.Class) {
	w.mods(c.Mods, true)
	w.Append(c.Form.Keyword())
	if c.Form != ast.FormCompanionObject || c.Name != "Companion" {
		w.Append(" ")
		w.AppendName(c.Name)
	}
	bracketList(w, c.TypeParams)
	w.Visit(c.Constructor)
	if len(c.Parents) > 0 {
		w.Append(" : ")
		visitList(w, c.Parents, ", ")
	}
	if len(c.Members) == 0 && len(w.within(c)) == 0 {
		return
	}
	w.Append(" ")
	w.members(c, c.Members)
}

// members writes a class body. Enum entries come first, separated by
// commas and closed by a semicolon when other members follow.
func (w *Writer) members(n ast.Node, members []ast.Decl) {
	entries := 0
	for entries < len(members) {
		if _, ok := members[entries].(*ast.EnumEntry); !ok {
			break
		}
		entries++
	}
	in := w.within(n)
	w.Append("{")
	w.LineEnd()
	w.indented(func() {
		for i, e := range members[:entries] {
			w.LineBegin()
			w.Visit(e)
			switch {
			case i == len(members)-1:
				w.LineEnd()
			case i == entries-1:
				w.Append(";")
				w.LineEnd()
				w.Line()
			default:
				w.Append(",")
				w.LineEnd()
			}
		}
		lines(w, members[entries:], 2, 1)
		w.writeWithin(n, in)
	})
	w.LineBegin()
	w.Append("}")
}

func (w *Writer) property(p *ast.Property) {
	w.mods(p.Mods, true)
	if p.ReadOnly {
		w.Append("val ")
	} else {
		w.Append("var ")
	}
	if len(p.TypeParams) > 0 {
		bracketList(w, p.TypeParams)
		w.Append(" ")
	}
	if p.Receiver != nil {
		w.Visit(p.Receiver)
		w.Append(".")
	}
	w.vars(p.Vars)
	if p.Init != nil {
		if p.Delegated {
			w.Append(" by ")
		} else {
			w.Append(" = ")
		}
		w.Visit(p.Init)
	}
}

// vars writes a single name or a destructuring list `(a, _)`.
func (w *Writer) vars(vars []*ast.PropertyVar) {
	if len(vars) == 1 && vars[0] != nil {
		w.Visit(vars[0])
		return
	}
	w.Append("(")
	for i, v := range vars {
		if i > 0 {
			w.Append(", ")
		}
		if v == nil {
			w.Append("_")
		} else {
			w.Visit(v)
		}
	}
	w.Append(")")
}

// part covers nodes that only appear inside declarations and expressions.
func (w *Writer) part(n ast.Node) {
	switch n := n.(type) {
	case *ast.PrimaryConstructor:
		if len(n.Mods) > 0 {
			w.Append(" ")
			w.mods(n.Mods, false)
			w.Append("constructor")
		}
		parenList(w, n.Params)
	case *ast.Parent:
		w.Visit(n.Type)
		if n.HasCall {
			parenList(w, n.Args)
		}
		if n.By != nil {
			w.Append(" by ")
			w.Visit(n.By)
		}
	case *ast.Param:
		w.mods(n.Mods, false)
		switch n.Binding {
		case ast.BindVal:
			w.Append("val ")
		case ast.BindVar:
			w.Append("var ")
		}
		w.AppendName(n.Name)
		if n.Type != nil {
			w.Append(": ")
			w.Visit(n.Type)
		}
		if n.Default != nil {
			w.Append(" = ")
			w.Visit(n.Default)
		}
	case *ast.PropertyVar:
		w.AppendName(n.Name)
		if n.Type != nil {
			w.Append(": ")
			w.Visit(n.Type)
		}
	case *ast.TypeParam:
		w.mods(n.Mods, false)
		w.AppendName(n.Name)
		if n.Bound != nil {
			w.Append(": ")
			w.Visit(n.Bound)
		}
	case *ast.ExprBody:
		w.Append("= ")
		w.Visit(n.X)
	case *ast.TypePiece:
		w.AppendName(n.Name)
		bracketList(w, n.Args)
	case *ast.TypeArg:
		if n.Star {
			w.Append("*")
			return
		}
		if n.Variance != "" {
			w.Append(n.Variance + " ")
		}
		w.Visit(n.Type)
	case *ast.FuncTypeParam:
		if n.Name != "" {
			w.AppendName(n.Name)
			w.Append(": ")
		}
		w.Visit(n.Type)
	case *ast.ValueArg:
		if n.Name != "" {
			w.AppendName(n.Name)
			w.Append(" = ")
		}
		if n.Spread {
			w.Append("*")
		}
		w.Visit(n.X)
	case *ast.LambdaParam:
		w.AppendName(n.Name)
		if n.Type != nil {
			w.Append(": ")
			w.Visit(n.Type)
		}
	case *ast.WhenEntry:
		if len(n.Conds) == 0 {
			w.Append("else")
		} else {
			visitList(w, n.Conds, ", ")
		}
		w.Append(" -> ")
		w.Visit(n.Body)
	case *ast.WhenCond:
		switch n.Op {
		case "":
			w.Visit(n.X)
		case "is", "!is":
			w.Append(n.Op + " ")
			w.Visit(n.Type)
		default:
			w.Append(n.Op + " ")
			w.Visit(n.X)
		}
	case *ast.Catch:
		w.Append("catch (")
		w.AppendName(n.Name)
		w.Append(": ")
		w.Visit(n.Type)
		w.Append(") ")
		w.Visit(n.Body)
	}
}
