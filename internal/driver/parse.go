package driver

import (
	"context"

	"fortio.org/safecast"

	"kremap/internal/ast"
	"kremap/internal/diag"
	"kremap/internal/lexer"
	"kremap/internal/parser"
	"kremap/internal/source"
)

type ParseResult struct {
	FileSet *source.FileSet
	File    *source.File
	AST     *ast.File
	Extras  *ast.Extras
	Bag     *diag.Bag
}

// Parse parses one file or stdin and keeps the tree even when the bag
// holds errors, so a broken file can still be inspected.
func Parse(ctx context.Context, path string, maxDiagnostics int) (*ParseResult, error) {
	fs, file, bag, err := openFile(path, maxDiagnostics)
	if err != nil {
		return nil, err
	}
	maxErrors, err := safecast.Conv[uint](bag.Cap())
	if err != nil {
		maxErrors = 0
	}
	rep := diag.BagReporter{Bag: bag}
	res := parser.ParseFile(ctx, fs, lexer.New(file, lexer.Options{Reporter: rep}), parser.Options{Reporter: rep, MaxErrors: maxErrors})
	bag.Sort()
	return &ParseResult{FileSet: fs, File: file, AST: res.File, Extras: res.Extras, Bag: bag}, nil
}
