package ast

import "reflect"

// Children returns the direct children of n in source order.
func Children(n Node) []Node {
	var out []Node
	switch n := n.(type) {
	case *File:
		out = add1(out, n.Package)
		out = addList(out, n.Imports)
		out = addList(out, n.Decls)
	case *Package:
		out = addList(out, n.Mods)
	case *Import, *Keyword, *Name, *Const, *This, *Break, *Continue:
	case *Annotation:
		out = addList(out, n.TypeArgs)
		out = addList(out, n.Args)
	case *TypeAlias:
		out = addList(out, n.Mods)
		out = addList(out, n.TypeParams)
		out = add1(out, n.Type)
	case *Class:
		out = addList(out, n.Mods)
		out = addList(out, n.TypeParams)
		out = add1(out, n.Constructor)
		out = addList(out, n.Parents)
		out = addList(out, n.Members)
	case *PrimaryConstructor:
		out = addList(out, n.Mods)
		out = addList(out, n.Params)
	case *Parent:
		out = add1(out, n.Type)
		out = addList(out, n.Args)
		out = add1(out, n.By)
	case *EnumEntry:
		out = addList(out, n.Mods)
		out = addList(out, n.Args)
		out = addList(out, n.Members)
	case *Init:
		out = add1(out, n.Body)
	case *Func:
		out = addList(out, n.Mods)
		out = addList(out, n.TypeParams)
		out = add1(out, n.Receiver)
		out = addList(out, n.Params)
		out = add1(out, n.Result)
		out = add1(out, n.Body)
	case *Param:
		out = addList(out, n.Mods)
		out = add1(out, n.Type)
		out = add1(out, n.Default)
	case *Property:
		out = addList(out, n.Mods)
		out = addList(out, n.TypeParams)
		out = add1(out, n.Receiver)
		out = addList(out, n.Vars)
		out = add1(out, n.Init)
	case *PropertyVar:
		out = add1(out, n.Type)
	case *TypeParam:
		out = addList(out, n.Mods)
		out = add1(out, n.Bound)
	case *ExprBody:
		out = add1(out, n.X)
	case *SimpleType:
		out = addList(out, n.Pieces)
	case *TypePiece:
		out = addList(out, n.Args)
	case *TypeArg:
		out = add1(out, n.Type)
	case *NullableType:
		out = add1(out, n.Type)
	case *FuncType:
		out = add1(out, n.Receiver)
		out = addList(out, n.Params)
		out = add1(out, n.Result)
	case *FuncTypeParam:
		out = add1(out, n.Type)
	case *ParenType:
		out = add1(out, n.Type)
	case *Block:
		out = addList(out, n.Stmts)
	case *DeclStmt:
		out = add1(out, n.Decl)
	case *ExprStmt:
		out = add1(out, n.X)
	case *Call:
		out = add1(out, n.Fun)
		out = addList(out, n.TypeArgs)
		out = addList(out, n.Args)
		out = add1(out, n.Lambda)
	case *ValueArg:
		out = add1(out, n.X)
	case *Index:
		out = add1(out, n.X)
		out = addList(out, n.Indices)
	case *Binary:
		out = add1(out, n.X)
		out = add1(out, n.Y)
	case *Unary:
		out = add1(out, n.X)
	case *TypeOp:
		out = add1(out, n.X)
		out = add1(out, n.Type)
	case *Paren:
		out = add1(out, n.X)
	case *Lambda:
		out = addList(out, n.Params)
		out = addList(out, n.Stmts)
	case *LambdaParam:
		out = add1(out, n.Type)
	case *Super:
		out = add1(out, n.TypeArg)
	case *DoubleColon:
		out = add1(out, n.Recv)
	case *If:
		out = add1(out, n.Cond)
		out = add1(out, n.Then)
		out = add1(out, n.Else)
	case *When:
		out = add1(out, n.Subject)
		out = addList(out, n.Entries)
	case *WhenEntry:
		out = addList(out, n.Conds)
		out = add1(out, n.Body)
	case *WhenCond:
		out = add1(out, n.X)
		out = add1(out, n.Type)
	case *While:
		if n.DoWhile {
			out = add1(out, n.Body)
			out = add1(out, n.Cond)
		} else {
			out = add1(out, n.Cond)
			out = add1(out, n.Body)
		}
	case *For:
		out = addList(out, n.Vars)
		out = add1(out, n.In)
		out = add1(out, n.Body)
	case *Try:
		out = add1(out, n.Body)
		out = addList(out, n.Catches)
		out = add1(out, n.Finally)
	case *Catch:
		out = add1(out, n.Type)
		out = add1(out, n.Body)
	case *Return:
		out = add1(out, n.X)
	case *Throw:
		out = add1(out, n.X)
	}
	return out
}

// Inspect traverses the tree depth-first in source order. If f returns
// false the children of that node are skipped.
func Inspect(n Node, f func(Node) bool) {
	if IsNil(n) || !f(n) {
		return
	}
	for _, c := range Children(n) {
		Inspect(c, f)
	}
}

// IsNil reports whether n is nil or a typed nil pointer.
func IsNil(n Node) bool {
	if n == nil {
		return true
	}
	v := reflect.ValueOf(n)
	return v.Kind() == reflect.Pointer && v.IsNil()
}

func add1(out []Node, n Node) []Node {
	if IsNil(n) {
		return out
	}
	return append(out, n)
}

func addList[T Node](out []Node, xs []T) []Node {
	for _, x := range xs {
		out = add1(out, x)
	}
	return out
}
