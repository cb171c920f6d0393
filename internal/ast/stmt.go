package ast

// Block is `{ stmts }`. It is also an expression when used as the body of
// if, while, for or try.
type Block struct {
	Pos
	Stmts []Stmt
}

type DeclStmt struct {
	Pos
	Decl Decl
}

type ExprStmt struct {
	Pos
	X Expr
}

func (*Block) Kind() Kind    { return KindBlock }
func (*DeclStmt) Kind() Kind { return KindDeclStmt }
func (*ExprStmt) Kind() Kind { return KindExprStmt }

func (*DeclStmt) stmtNode() {}
func (*ExprStmt) stmtNode() {}

func (*Block) exprNode() {}
