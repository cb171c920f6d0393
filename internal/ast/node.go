package ast

import "kremap/internal/source"

// Node is any element of the syntax tree.
type Node interface {
	Kind() Kind
	Span() source.Span
}

// Decl is a declaration: class-like, function, property, type alias, init block.
type Decl interface {
	Node
	declNode()
}

// Stmt is an element of a block.
type Stmt interface {
	Node
	stmtNode()
}

// Expr is an expression. Control flow (if, when, loops, jumps) is expression-shaped.
type Expr interface {
	Node
	exprNode()
}

// TypeRef is a reference to a type.
type TypeRef interface {
	Node
	typeNode()
}

// Modifier is either a keyword modifier or an annotation.
type Modifier interface {
	Node
	modNode()
}

// FuncBody is either *Block or *ExprBody.
type FuncBody interface {
	Node
	bodyNode()
}

// Pos is embedded by every node and carries its source span.
// Nodes built by hand (for example by the remapper) may leave it empty.
type Pos struct {
	Sp source.Span
}

func (p Pos) Span() source.Span { return p.Sp }
