package format

import (
	"context"

	"kremap/internal/ast"
	"kremap/internal/parser"
)

// CheckRoundTrip formats src, re-parses the result and formats it again.
// The check passes when the second pass parses cleanly, keeps the same
// top-level declaration kinds and produces byte-identical text.
func CheckRoundTrip(ctx context.Context, path string, src []byte, opt Options, maxDiag int) (ok bool, msg string) {
	file, extras, err := parser.Parse(ctx, path, src, maxDiag)
	if err != nil {
		return false, "fmt-check: initial parse failed: " + err.Error()
	}
	first, err := String(file, extras, opt)
	if err != nil {
		return false, "fmt-check: formatter failed: " + err.Error()
	}

	file2, extras2, err := parser.Parse(ctx, path, []byte(first), maxDiag)
	if err != nil {
		return false, "fmt-check: reparse failed: " + err.Error()
	}
	if !sameTopDeclKinds(file, file2) {
		return false, "fmt-check: top-level declaration kinds differ after round-trip"
	}
	second, err := String(file2, extras2, opt)
	if err != nil {
		return false, "fmt-check: formatter failed: " + err.Error()
	}
	if first != second {
		return false, "fmt-check: formatting is not stable"
	}
	return true, "fmt-check: OK"
}

func sameTopDeclKinds(a, b *ast.File) bool {
	if len(a.Decls) != len(b.Decls) || len(a.Imports) != len(b.Imports) {
		return false
	}
	for i := range a.Decls {
		if a.Decls[i].Kind() != b.Decls[i].Kind() {
			return false
		}
	}
	return true
}
