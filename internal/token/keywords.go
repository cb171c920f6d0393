package token

var keywords = map[string]Kind{
	"package":   KwPackage,
	"import":    KwImport,
	"as":        KwAs,
	"class":     KwClass,
	"interface": KwInterface,
	"object":    KwObject,
	"fun":       KwFun,
	"val":       KwVal,
	"var":       KwVar,
	"typealias": KwTypeAlias,
	"return":    KwReturn,
	"if":        KwIf,
	"else":      KwElse,
	"while":     KwWhile,
	"do":        KwDo,
	"for":       KwFor,
	"in":        KwIn,
	"is":        KwIs,
	"null":      KwNull,
	"true":      KwTrue,
	"false":     KwFalse,
	"this":      KwThis,
	"super":     KwSuper,
	"throw":     KwThrow,
	"try":       KwTry,
	"catch":     KwCatch,
	"finally":   KwFinally,
	"break":     KwBreak,
	"continue":  KwContinue,
	"when":      KwWhen,
}

// LookupKeyword возвращает тип и bool если это ключевое слово.
// Ключевые слова регистрозависимые - только lowercase версии распознаются.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}

// IsHardKeyword reports whether name cannot be used as a plain identifier
// and must be back-quoted when written as a name.
func IsHardKeyword(name string) bool {
	_, ok := keywords[name]
	return ok
}
