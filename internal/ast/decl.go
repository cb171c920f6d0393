package ast

type ClassForm uint8

const (
	FormClass ClassForm = iota
	FormEnumClass
	FormInterface
	FormObject
	FormCompanionObject
)

func (f ClassForm) Keyword() string {
	switch f {
	case FormEnumClass:
		return "enum class"
	case FormInterface:
		return "interface"
	case FormObject:
		return "object"
	case FormCompanionObject:
		return "companion object"
	default:
		return "class"
	}
}

// Class covers class, enum class, interface, object and companion object.
// Members of an enum class start with its entries.
type Class struct {
	Pos
	Mods        []Modifier
	Form        ClassForm
	Name        string
	TypeParams  []*TypeParam
	Constructor *PrimaryConstructor
	Parents     []*Parent
	Members     []Decl
}

// PrimaryConstructor is `[mods constructor](params)` after the class name.
type PrimaryConstructor struct {
	Pos
	Mods   []Modifier
	Params []*Param
}

// Parent is a supertype entry. HasCall marks `Base(args)`; By is a delegate.
type Parent struct {
	Pos
	Type    TypeRef
	HasCall bool
	Args    []*ValueArg
	By      Expr
}

type EnumEntry struct {
	Pos
	Mods    []Modifier
	Name    string
	Args    []*ValueArg
	Members []Decl
}

type Init struct {
	Pos
	Body *Block
}

type Func struct {
	Pos
	Mods       []Modifier
	TypeParams []*TypeParam
	Receiver   TypeRef
	Name       string
	Params     []*Param
	Result     TypeRef
	Body       FuncBody
}

type Binding uint8

const (
	BindNone Binding = iota
	BindVal
	BindVar
)

// Param is a function or constructor parameter. Binding is only set for
// primary constructor properties.
type Param struct {
	Pos
	Mods    []Modifier
	Binding Binding
	Name    string
	Type    TypeRef
	Default Expr
}

// Property is `val`/`var`. Several Vars mean a destructuring declaration.
type Property struct {
	Pos
	Mods       []Modifier
	ReadOnly   bool
	TypeParams []*TypeParam
	Receiver   TypeRef
	Vars       []*PropertyVar
	Delegated  bool
	Init       Expr
}

// PropertyVar is one declared name. A nil entry in Property.Vars is `_`.
type PropertyVar struct {
	Pos
	Name string
	Type TypeRef
}

type TypeAlias struct {
	Pos
	Mods       []Modifier
	Name       string
	TypeParams []*TypeParam
	Type       TypeRef
}

type TypeParam struct {
	Pos
	Mods  []Modifier
	Name  string
	Bound TypeRef
}

// ExprBody is `= expr` as a function body.
type ExprBody struct {
	Pos
	X Expr
}

func (*Class) Kind() Kind              { return KindClass }
func (*PrimaryConstructor) Kind() Kind { return KindPrimaryConstructor }
func (*Parent) Kind() Kind             { return KindParent }
func (*EnumEntry) Kind() Kind          { return KindEnumEntry }
func (*Init) Kind() Kind               { return KindInit }
func (*Func) Kind() Kind               { return KindFunc }
func (*Param) Kind() Kind              { return KindParam }
func (*Property) Kind() Kind           { return KindProperty }
func (*PropertyVar) Kind() Kind        { return KindPropertyVar }
func (*TypeAlias) Kind() Kind          { return KindTypeAlias }
func (*TypeParam) Kind() Kind          { return KindTypeParam }
func (*ExprBody) Kind() Kind           { return KindExprBody }

func (*Class) declNode()     {}
func (*EnumEntry) declNode() {}
func (*Init) declNode()      {}
func (*Func) declNode()      {}
func (*Property) declNode()  {}
func (*TypeAlias) declNode() {}

func (*Block) bodyNode()    {}
func (*ExprBody) bodyNode() {}
