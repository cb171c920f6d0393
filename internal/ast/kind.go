package ast

type Kind uint8

const (
	KindInvalid Kind = iota
	KindFile
	KindPackage
	KindImport
	KindAnnotation
	KindModifier
	KindTypeAlias
	KindClass
	KindEnumEntry
	KindPrimaryConstructor
	KindParent
	KindInit
	KindFunc
	KindParam
	KindProperty
	KindPropertyVar
	KindTypeParam
	KindSimpleType
	KindTypePiece
	KindTypeArg
	KindNullableType
	KindFuncType
	KindFuncTypeParam
	KindParenType
	KindBlock
	KindExprBody
	KindDeclStmt
	KindExprStmt
	KindName
	KindConst
	KindCall
	KindValueArg
	KindIndex
	KindBinary
	KindUnary
	KindTypeOp
	KindParen
	KindLambda
	KindLambdaParam
	KindThis
	KindSuper
	KindDoubleColon
	KindIf
	KindWhen
	KindWhenEntry
	KindWhenCond
	KindWhile
	KindFor
	KindTry
	KindCatch
	KindReturn
	KindThrow
	KindBreak
	KindContinue
)

var kindNames = [...]string{
	KindInvalid:            "Invalid",
	KindFile:               "File",
	KindPackage:            "Package",
	KindImport:             "Import",
	KindAnnotation:         "Annotation",
	KindModifier:           "Modifier",
	KindTypeAlias:          "TypeAlias",
	KindClass:              "Class",
	KindEnumEntry:          "EnumEntry",
	KindPrimaryConstructor: "PrimaryConstructor",
	KindParent:             "Parent",
	KindInit:               "Init",
	KindFunc:               "Func",
	KindParam:              "Param",
	KindProperty:           "Property",
	KindPropertyVar:        "PropertyVar",
	KindTypeParam:          "TypeParam",
	KindSimpleType:         "SimpleType",
	KindTypePiece:          "TypePiece",
	KindTypeArg:            "TypeArg",
	KindNullableType:       "NullableType",
	KindFuncType:           "FuncType",
	KindFuncTypeParam:      "FuncTypeParam",
	KindParenType:          "ParenType",
	KindBlock:              "Block",
	KindExprBody:           "ExprBody",
	KindDeclStmt:           "DeclStmt",
	KindExprStmt:           "ExprStmt",
	KindName:               "Name",
	KindConst:              "Const",
	KindCall:               "Call",
	KindValueArg:           "ValueArg",
	KindIndex:              "Index",
	KindBinary:             "Binary",
	KindUnary:              "Unary",
	KindTypeOp:             "TypeOp",
	KindParen:              "Paren",
	KindLambda:             "Lambda",
	KindLambdaParam:        "LambdaParam",
	KindThis:               "This",
	KindSuper:              "Super",
	KindDoubleColon:        "DoubleColon",
	KindIf:                 "If",
	KindWhen:               "When",
	KindWhenEntry:          "WhenEntry",
	KindWhenCond:           "WhenCond",
	KindWhile:              "While",
	KindFor:                "For",
	KindTry:                "Try",
	KindCatch:              "Catch",
	KindReturn:             "Return",
	KindThrow:              "Throw",
	KindBreak:              "Break",
	KindContinue:           "Continue",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "Kind(?)"
}
