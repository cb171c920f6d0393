package ast

import "fmt"

// Rewrite applies f to every node of the tree bottom-up and returns the new
// root. Nodes whose subtree is unchanged keep their identity; a parent with
// a replaced child is shallow-copied. replaced, if set, is called for every
// node that got a new identity, copies included, so callers can carry
// extras over.
//
// f must return a node that fits the field it came from; Rewrite panics
// otherwise.
func Rewrite(n Node, f func(Node) Node, replaced func(old, new Node)) Node {
	r := &rewriter{f: f, replaced: replaced}
	return r.apply(n)
}

type rewriter struct {
	f        func(Node) Node
	replaced func(old, new Node)
}

func (r *rewriter) apply(n Node) Node {
	if IsNil(n) {
		return n
	}
	out := r.children(n)
	if res := r.f(out); !IsNil(res) {
		out = res
	}
	if out != n && r.replaced != nil {
		r.replaced(n, out)
	}
	return out
}

func one[T Node](r *rewriter, ch *bool, x T) T {
	if IsNil(x) {
		return x
	}
	y := r.apply(x)
	if y == Node(x) {
		return x
	}
	t, ok := y.(T)
	if !ok {
		panic(fmt.Errorf("ast: rewrite replaced %s with incompatible %s", x.Kind(), y.Kind()))
	}
	*ch = true
	return t
}

func list[T Node](r *rewriter, ch *bool, xs []T) []T {
	var out []T
	for i, x := range xs {
		var c bool
		y := one(r, &c, x)
		if c && out == nil {
			out = append([]T(nil), xs...)
		}
		if out != nil {
			out[i] = y
		}
	}
	if out == nil {
		return xs
	}
	*ch = true
	return out
}

func (r *rewriter) children(n Node) Node {
	var ch bool
	switch n := n.(type) {
	case *File:
		cp := *n
		cp.Package = one(r, &ch, n.Package)
		cp.Imports = list(r, &ch, n.Imports)
		cp.Decls = list(r, &ch, n.Decls)
		if ch {
			return &cp
		}
	case *Package:
		cp := *n
		cp.Mods = list(r, &ch, n.Mods)
		if ch {
			return &cp
		}
	case *Annotation:
		cp := *n
		cp.TypeArgs = list(r, &ch, n.TypeArgs)
		cp.Args = list(r, &ch, n.Args)
		if ch {
			return &cp
		}
	case *TypeAlias:
		cp := *n
		cp.Mods = list(r, &ch, n.Mods)
		cp.TypeParams = list(r, &ch, n.TypeParams)
		cp.Type = one(r, &ch, n.Type)
		if ch {
			return &cp
		}
	case *Class:
		cp := *n
		cp.Mods = list(r, &ch, n.Mods)
		cp.TypeParams = list(r, &ch, n.TypeParams)
		cp.Constructor = one(r, &ch, n.Constructor)
		cp.Parents = list(r, &ch, n.Parents)
		cp.Members = list(r, &ch, n.Members)
		if ch {
			return &cp
		}
	case *PrimaryConstructor:
		cp := *n
		cp.Mods = list(r, &ch, n.Mods)
		cp.Params = list(r, &ch, n.Params)
		if ch {
			return &cp
		}
	case *Parent:
		cp := *n
		cp.Type = one(r, &ch, n.Type)
		cp.Args = list(r, &ch, n.Args)
		cp.By = one(r, &ch, n.By)
		if ch {
			return &cp
		}
	case *EnumEntry:
		cp := *n
		cp.Mods = list(r, &ch, n.Mods)
		cp.Args = list(r, &ch, n.Args)
		cp.Members = list(r, &ch, n.Members)
		if ch {
			return &cp
		}
	case *Init:
		cp := *n
		cp.Body = one(r, &ch, n.Body)
		if ch {
			return &cp
		}
	case *Func:
		cp := *n
		cp.Mods = list(r, &ch, n.Mods)
		cp.TypeParams = list(r, &ch, n.TypeParams)
		cp.Receiver = one(r, &ch, n.Receiver)
		cp.Params = list(r, &ch, n.Params)
		cp.Result = one(r, &ch, n.Result)
		cp.Body = one(r, &ch, n.Body)
		if ch {
			return &cp
		}
	case *Param:
		cp := *n
		cp.Mods = list(r, &ch, n.Mods)
		cp.Type = one(r, &ch, n.Type)
		cp.Default = one(r, &ch, n.Default)
		if ch {
			return &cp
		}
	case *Property:
		cp := *n
		cp.Mods = list(r, &ch, n.Mods)
		cp.TypeParams = list(r, &ch, n.TypeParams)
		cp.Receiver = one(r, &ch, n.Receiver)
		cp.Vars = list(r, &ch, n.Vars)
		cp.Init = one(r, &ch, n.Init)
		if ch {
			return &cp
		}
	case *PropertyVar:
		cp := *n
		cp.Type = one(r, &ch, n.Type)
		if ch {
			return &cp
		}
	case *TypeParam:
		cp := *n
		cp.Mods = list(r, &ch, n.Mods)
		cp.Bound = one(r, &ch, n.Bound)
		if ch {
			return &cp
		}
	case *ExprBody:
		cp := *n
		cp.X = one(r, &ch, n.X)
		if ch {
			return &cp
		}
	case *SimpleType:
		cp := *n
		cp.Pieces = list(r, &ch, n.Pieces)
		if ch {
			return &cp
		}
	case *TypePiece:
		cp := *n
		cp.Args = list(r, &ch, n.Args)
		if ch {
			return &cp
		}
	case *TypeArg:
		cp := *n
		cp.Type = one(r, &ch, n.Type)
		if ch {
			return &cp
		}
	case *NullableType:
		cp := *n
		cp.Type = one(r, &ch, n.Type)
		if ch {
			return &cp
		}
	case *FuncType:
		cp := *n
		cp.Receiver = one(r, &ch, n.Receiver)
		cp.Params = list(r, &ch, n.Params)
		cp.Result = one(r, &ch, n.Result)
		if ch {
			return &cp
		}
	case *FuncTypeParam:
		cp := *n
		cp.Type = one(r, &ch, n.Type)
		if ch {
			return &cp
		}
	case *ParenType:
		cp := *n
		cp.Type = one(r, &ch, n.Type)
		if ch {
			return &cp
		}
	case *Block:
		cp := *n
		cp.Stmts = list(r, &ch, n.Stmts)
		if ch {
			return &cp
		}
	case *DeclStmt:
		cp := *n
		cp.Decl = one(r, &ch, n.Decl)
		if ch {
			return &cp
		}
	case *ExprStmt:
		cp := *n
		cp.X = one(r, &ch, n.X)
		if ch {
			return &cp
		}
	case *Call:
		cp := *n
		cp.Fun = one(r, &ch, n.Fun)
		cp.TypeArgs = list(r, &ch, n.TypeArgs)
		cp.Args = list(r, &ch, n.Args)
		cp.Lambda = one(r, &ch, n.Lambda)
		if ch {
			return &cp
		}
	case *ValueArg:
		cp := *n
		cp.X = one(r, &ch, n.X)
		if ch {
			return &cp
		}
	case *Index:
		cp := *n
		cp.X = one(r, &ch, n.X)
		cp.Indices = list(r, &ch, n.Indices)
		if ch {
			return &cp
		}
	case *Binary:
		cp := *n
		cp.X = one(r, &ch, n.X)
		cp.Y = one(r, &ch, n.Y)
		if ch {
			return &cp
		}
	case *Unary:
		cp := *n
		cp.X = one(r, &ch, n.X)
		if ch {
			return &cp
		}
	case *TypeOp:
		cp := *n
		cp.X = one(r, &ch, n.X)
		cp.Type = one(r, &ch, n.Type)
		if ch {
			return &cp
		}
	case *Paren:
		cp := *n
		cp.X = one(r, &ch, n.X)
		if ch {
			return &cp
		}
	case *Lambda:
		cp := *n
		cp.Params = list(r, &ch, n.Params)
		cp.Stmts = list(r, &ch, n.Stmts)
		if ch {
			return &cp
		}
	case *LambdaParam:
		cp := *n
		cp.Type = one(r, &ch, n.Type)
		if ch {
			return &cp
		}
	case *Super:
		cp := *n
		cp.TypeArg = one(r, &ch, n.TypeArg)
		if ch {
			return &cp
		}
	case *DoubleColon:
		cp := *n
		cp.Recv = one(r, &ch, n.Recv)
		if ch {
			return &cp
		}
	case *If:
		cp := *n
		cp.Cond = one(r, &ch, n.Cond)
		cp.Then = one(r, &ch, n.Then)
		cp.Else = one(r, &ch, n.Else)
		if ch {
			return &cp
		}
	case *When:
		cp := *n
		cp.Subject = one(r, &ch, n.Subject)
		cp.Entries = list(r, &ch, n.Entries)
		if ch {
			return &cp
		}
	case *WhenEntry:
		cp := *n
		cp.Conds = list(r, &ch, n.Conds)
		cp.Body = one(r, &ch, n.Body)
		if ch {
			return &cp
		}
	case *WhenCond:
		cp := *n
		cp.X = one(r, &ch, n.X)
		cp.Type = one(r, &ch, n.Type)
		if ch {
			return &cp
		}
	case *While:
		cp := *n
		cp.Cond = one(r, &ch, n.Cond)
		cp.Body = one(r, &ch, n.Body)
		if ch {
			return &cp
		}
	case *For:
		cp := *n
		cp.Vars = list(r, &ch, n.Vars)
		cp.In = one(r, &ch, n.In)
		cp.Body = one(r, &ch, n.Body)
		if ch {
			return &cp
		}
	case *Try:
		cp := *n
		cp.Body = one(r, &ch, n.Body)
		cp.Catches = list(r, &ch, n.Catches)
		cp.Finally = one(r, &ch, n.Finally)
		if ch {
			return &cp
		}
	case *Catch:
		cp := *n
		cp.Type = one(r, &ch, n.Type)
		cp.Body = one(r, &ch, n.Body)
		if ch {
			return &cp
		}
	case *Return:
		cp := *n
		cp.X = one(r, &ch, n.X)
		if ch {
			return &cp
		}
	case *Throw:
		cp := *n
		cp.X = one(r, &ch, n.X)
		if ch {
			return &cp
		}
	}
	return n
}
