package driver

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"kremap/internal/token"
)

func TestParseKeepsBrokenTree(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.kt")
	writeFile(t, path, "fun f() = 1\nclass A {\n", 0o644)

	res, err := Parse(context.Background(), path, 0)
	if err != nil {
		t.Fatal(err)
	}
	if !res.Bag.HasErrors() {
		t.Fatal("expected diagnostics for the unclosed class")
	}
	if res.AST == nil || len(res.AST.Decls) == 0 {
		t.Fatalf("tree = %+v", res.AST)
	}
	if res.File.Path != filepath.ToSlash(path) {
		t.Errorf("path = %q", res.File.Path)
	}
}

func TestTokenize(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.kts")
	writeFile(t, path, "println(1)\r\n", 0o644)

	res, err := Tokenize(context.Background(), path, 0)
	if err != nil {
		t.Fatal(err)
	}
	if n := len(res.Tokens); n == 0 || res.Tokens[n-1].Kind != token.EOF {
		t.Fatalf("tokens = %+v", res.Tokens)
	}
	if res.Tokens[0].Text != "println" {
		t.Errorf("first token = %+v", res.Tokens[0])
	}
	if _, err := Tokenize(context.Background(), filepath.Join(t.TempDir(), "missing.kt"), 0); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestParseStdin(t *testing.T) {
	prev := Stdin
	t.Cleanup(func() { Stdin = prev })
	Stdin = strings.NewReader("val x = 1\n")

	res, err := Parse(context.Background(), StdinPath, 0)
	if err != nil {
		t.Fatal(err)
	}
	if res.File.Path != "<stdin>" || res.Bag.HasErrors() {
		t.Fatalf("path = %q, errors = %v", res.File.Path, res.Bag.Items())
	}
	if len(res.AST.Decls) != 1 {
		t.Fatalf("decls = %d", len(res.AST.Decls))
	}
}
