package driver

import (
	"context"
	"strconv"

	"kremap/internal/diag"
	"kremap/internal/lexer"
	"kremap/internal/source"
	"kremap/internal/token"
	"kremap/internal/trace"
)

type TokenizeResult struct {
	FileSet *source.FileSet
	File    *source.File
	Tokens  []token.Token // ends with EOF
	Bag     *diag.Bag
}

// Tokenize lexes one file or stdin. Lexer errors go to the bag; only I/O
// failures are returned.
func Tokenize(ctx context.Context, path string, maxDiagnostics int) (*TokenizeResult, error) {
	_, span := trace.Start(ctx, trace.ScopePass, "tokenize")
	defer span.End("")

	fs, file, bag, err := openFile(path, maxDiagnostics)
	if err != nil {
		return nil, err
	}
	lx := lexer.New(file, lexer.Options{Reporter: diag.BagReporter{Bag: bag}})
	toks := lx.All()
	span.WithExtra("tokens", strconv.Itoa(len(toks)))
	return &TokenizeResult{FileSet: fs, File: file, Tokens: toks, Bag: bag}, nil
}
