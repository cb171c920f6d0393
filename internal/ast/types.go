package ast

// SimpleType is a dotted type path such as `a.b.C<T>.D`.
type SimpleType struct {
	Pos
	Pieces []*TypePiece
}

type TypePiece struct {
	Pos
	Name string
	Args []*TypeArg
}

// TypeArg is a type argument; Star marks the `*` projection.
type TypeArg struct {
	Pos
	Variance string
	Star     bool
	Type     TypeRef
}

type NullableType struct {
	Pos
	Type TypeRef
}

type FuncType struct {
	Pos
	Receiver TypeRef
	Params   []*FuncTypeParam
	Result   TypeRef
}

type FuncTypeParam struct {
	Pos
	Name string
	Type TypeRef
}

type ParenType struct {
	Pos
	Type TypeRef
}

func (*SimpleType) Kind() Kind    { return KindSimpleType }
func (*TypePiece) Kind() Kind     { return KindTypePiece }
func (*TypeArg) Kind() Kind       { return KindTypeArg }
func (*NullableType) Kind() Kind  { return KindNullableType }
func (*FuncType) Kind() Kind      { return KindFuncType }
func (*FuncTypeParam) Kind() Kind { return KindFuncTypeParam }
func (*ParenType) Kind() Kind     { return KindParenType }

func (*SimpleType) typeNode()   {}
func (*NullableType) typeNode() {}
func (*FuncType) typeNode()     {}
func (*ParenType) typeNode()    {}

// Names returns the piece names of the path.
func (t *SimpleType) Names() []string {
	out := make([]string, len(t.Pieces))
	for i, p := range t.Pieces {
		out[i] = p.Name
	}
	return out
}
