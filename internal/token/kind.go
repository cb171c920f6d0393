package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Ident represents an identifier token (plain or back-quoted).
	Ident

	KwPackage   // package
	KwImport    // import
	KwAs        // as
	KwClass     // class
	KwInterface // interface
	KwObject    // object
	KwFun       // fun
	KwVal       // val
	KwVar       // var
	KwTypeAlias // typealias
	KwReturn    // return
	KwIf        // if
	KwElse      // else
	KwWhile     // while
	KwDo        // do
	KwFor       // for
	KwIn        // in
	KwIs        // is
	KwNull      // null
	KwTrue      // true
	KwFalse     // false
	KwThis      // this
	KwSuper     // super
	KwThrow     // throw
	KwTry       // try
	KwCatch     // catch
	KwFinally   // finally
	KwBreak     // break
	KwContinue  // continue
	KwWhen      // when

	// IntLit represents the integer literal token (suffix included).
	IntLit
	// FloatLit represents the float literal token.
	FloatLit
	// StringLit represents a "..." string literal; templates stay verbatim.
	StringLit
	// CharLit represents a 'c' character literal.
	CharLit

	Plus          // +
	Minus         // -
	Star          // *
	Slash         // /
	Percent       // %
	Assign        // =
	PlusAssign    // +=
	MinusAssign   // -=
	StarAssign    // *=
	SlashAssign   // /=
	PercentAssign // %=
	PlusPlus      // ++
	MinusMinus    // --
	EqEq          // ==
	EqEqEq        // ===
	Bang          // !
	BangEq        // !=
	BangEqEq      // !==
	BangBang      // !!
	Lt            // <
	LtEq          // <=
	Gt            // >
	GtEq          // >=
	AndAnd        // &&
	OrOr          // ||
	Question      // ?
	SafeDot       // ?.
	Elvis         // ?:
	Colon         // :
	ColonColon    // ::
	Semicolon     // ;
	Comma         // ,
	Dot           // .
	DotDot        // ..
	Arrow         // ->
	LParen        // (
	RParen        // )
	LBrace        // {
	RBrace        // }
	LBracket      // [
	RBracket      // ]
	At            // @
	Underscore    // _
)

var kindNames = [...]string{
	Invalid: "Invalid", EOF: "EOF", Ident: "Ident",
	KwPackage: "package", KwImport: "import", KwAs: "as", KwClass: "class",
	KwInterface: "interface", KwObject: "object", KwFun: "fun", KwVal: "val",
	KwVar: "var", KwTypeAlias: "typealias", KwReturn: "return", KwIf: "if",
	KwElse: "else", KwWhile: "while", KwDo: "do", KwFor: "for", KwIn: "in",
	KwIs: "is", KwNull: "null", KwTrue: "true", KwFalse: "false", KwThis: "this",
	KwSuper: "super", KwThrow: "throw", KwTry: "try", KwCatch: "catch",
	KwFinally: "finally", KwBreak: "break", KwContinue: "continue", KwWhen: "when",
	IntLit: "IntLit", FloatLit: "FloatLit", StringLit: "StringLit", CharLit: "CharLit",
	Plus: "+", Minus: "-", Star: "*", Slash: "/", Percent: "%", Assign: "=",
	PlusAssign: "+=", MinusAssign: "-=", StarAssign: "*=", SlashAssign: "/=",
	PercentAssign: "%=", PlusPlus: "++", MinusMinus: "--", EqEq: "==", EqEqEq: "===",
	Bang: "!", BangEq: "!=", BangEqEq: "!==", BangBang: "!!", Lt: "<", LtEq: "<=",
	Gt: ">", GtEq: ">=", AndAnd: "&&", OrOr: "||", Question: "?", SafeDot: "?.",
	Elvis: "?:", Colon: ":", ColonColon: "::", Semicolon: ";", Comma: ",", Dot: ".",
	DotDot: "..", Arrow: "->", LParen: "(", RParen: ")", LBrace: "{", RBrace: "}",
	LBracket: "[", RBracket: "]", At: "@", Underscore: "_",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "Kind(?)"
}
