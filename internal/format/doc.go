// Package format renders a syntax tree back to kt source text.
//
// The Writer walks the tree depth-first and, around every node, hands the
// node's extras (comments, blank lines) to an ExtrasRenderer. DefaultExtras
// is the stock renderer; a custom one can embed it and still call its
// methods for the cases it does not handle itself.
//
// Зависимости: internal/ast, internal/token, internal/parser (roundtrip.go).
package format
