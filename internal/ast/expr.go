package ast

type Name struct {
	Pos
	Name string
}

type ConstForm uint8

const (
	ConstInt ConstForm = iota
	ConstFloat
	ConstString
	ConstChar
	ConstBool
	ConstNull
)

// Const keeps the literal exactly as written, string templates included.
type Const struct {
	Pos
	Value string
	Form  ConstForm
}

// Call is `fun<TypeArgs>(args) lambda`. Parens are omitted only when a
// trailing lambda is present and there are no arguments.
type Call struct {
	Pos
	Fun      Expr
	TypeArgs []*TypeArg
	Args     []*ValueArg
	Lambda   *Lambda
}

type ValueArg struct {
	Pos
	Name   string
	Spread bool
	X      Expr
}

type Index struct {
	Pos
	X       Expr
	Indices []Expr
}

// Binary holds infix operators including assignment, member access
// (`.`, `?.`), ranges and named infix calls like `to`.
type Binary struct {
	Pos
	X  Expr
	Op string
	Y  Expr
}

type Unary struct {
	Pos
	Op     string
	Prefix bool
	X      Expr
}

// TypeOp is `x as T`, `x as? T`, `x is T`, `x !is T` and `x: T`.
type TypeOp struct {
	Pos
	X    Expr
	Op   string
	Type TypeRef
}

type Paren struct {
	Pos
	X Expr
}

type Lambda struct {
	Pos
	Params []*LambdaParam
	Stmts  []Stmt
}

type LambdaParam struct {
	Pos
	Name string
	Type TypeRef
}

type This struct {
	Pos
	Label string
}

type Super struct {
	Pos
	TypeArg TypeRef
	Label   string
}

// DoubleColon is `recv::name`; Name is "class" for class literals.
type DoubleColon struct {
	Pos
	Recv Expr
	Name string
}

type If struct {
	Pos
	Cond Expr
	Then Expr
	Else Expr
}

type When struct {
	Pos
	Subject Expr
	Entries []*WhenEntry
}

// WhenEntry with no conditions is the `else` branch.
type WhenEntry struct {
	Pos
	Conds []*WhenCond
	Body  Expr
}

// WhenCond Op is "" for a plain expression, or one of in, !in, is, !is.
type WhenCond struct {
	Pos
	Op   string
	X    Expr
	Type TypeRef
}

type While struct {
	Pos
	Cond    Expr
	Body    Expr
	DoWhile bool
}

type For struct {
	Pos
	Vars []*PropertyVar
	In   Expr
	Body Expr
}

type Try struct {
	Pos
	Body    *Block
	Catches []*Catch
	Finally *Block
}

type Catch struct {
	Pos
	Name string
	Type TypeRef
	Body *Block
}

type Return struct {
	Pos
	Label string
	X     Expr
}

type Throw struct {
	Pos
	X Expr
}

type Break struct {
	Pos
	Label string
}

type Continue struct {
	Pos
	Label string
}

func (*Name) Kind() Kind        { return KindName }
func (*Const) Kind() Kind       { return KindConst }
func (*Call) Kind() Kind        { return KindCall }
func (*ValueArg) Kind() Kind    { return KindValueArg }
func (*Index) Kind() Kind       { return KindIndex }
func (*Binary) Kind() Kind      { return KindBinary }
func (*Unary) Kind() Kind       { return KindUnary }
func (*TypeOp) Kind() Kind      { return KindTypeOp }
func (*Paren) Kind() Kind       { return KindParen }
func (*Lambda) Kind() Kind      { return KindLambda }
func (*LambdaParam) Kind() Kind { return KindLambdaParam }
func (*This) Kind() Kind        { return KindThis }
func (*Super) Kind() Kind       { return KindSuper }
func (*DoubleColon) Kind() Kind { return KindDoubleColon }
func (*If) Kind() Kind          { return KindIf }
func (*When) Kind() Kind        { return KindWhen }
func (*WhenEntry) Kind() Kind   { return KindWhenEntry }
func (*WhenCond) Kind() Kind    { return KindWhenCond }
func (*While) Kind() Kind       { return KindWhile }
func (*For) Kind() Kind         { return KindFor }
func (*Try) Kind() Kind         { return KindTry }
func (*Catch) Kind() Kind       { return KindCatch }
func (*Return) Kind() Kind      { return KindReturn }
func (*Throw) Kind() Kind       { return KindThrow }
func (*Break) Kind() Kind       { return KindBreak }
func (*Continue) Kind() Kind    { return KindContinue }

func (*Name) exprNode()        {}
func (*Const) exprNode()       {}
func (*Call) exprNode()        {}
func (*Index) exprNode()       {}
func (*Binary) exprNode()      {}
func (*Unary) exprNode()       {}
func (*TypeOp) exprNode()      {}
func (*Paren) exprNode()       {}
func (*Lambda) exprNode()      {}
func (*This) exprNode()        {}
func (*Super) exprNode()       {}
func (*DoubleColon) exprNode() {}
func (*If) exprNode()          {}
func (*When) exprNode()        {}
func (*While) exprNode()       {}
func (*For) exprNode()         {}
func (*Try) exprNode()         {}
func (*Return) exprNode()      {}
func (*Throw) exprNode()       {}
func (*Break) exprNode()       {}
func (*Continue) exprNode()    {}
