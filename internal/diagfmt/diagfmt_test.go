package diagfmt

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"kremap/internal/lexer"
	"kremap/internal/parser"
	"kremap/internal/source"
)

func TestFormatTree(t *testing.T) {
	file, _, err := parser.Parse(context.Background(), "t.kt", []byte("package a.b\n\nval x = 1 + y\n"), 16)
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := FormatTree(&buf, file, nil, TreeOpts{}); err != nil {
		t.Fatal(err)
	}
	want := strings.Join([]string{
		"File",
		"├─ Package a.b",
		"└─ Property val",
		"   ├─ PropertyVar x",
		"   └─ Binary +",
		"      ├─ Const 1",
		"      └─ Name y",
		"",
	}, "\n")
	if buf.String() != want {
		t.Fatalf("tree:\n%s\nwant:\n%s", buf.String(), want)
	}
}

func TestFormatTreeJSON(t *testing.T) {
	file, _, err := parser.Parse(context.Background(), "t.kt", []byte("import a.B as C\n"), 16)
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := FormatTreeJSON(&buf, file); err != nil {
		t.Fatal(err)
	}
	var got NodeJSON
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatal(err)
	}
	if got.Kind != "File" || len(got.Children) != 1 || got.Children[0].Label != "a.B as C" {
		t.Fatalf("json = %+v", got)
	}
}

func TestFormatTokens(t *testing.T) {
	fs := source.NewFileSet()
	f := fs.Get(fs.AddVirtual("t.kt", []byte("val x")))
	toks := lexer.New(f, lexer.Options{}).All()

	var buf bytes.Buffer
	if err := FormatTokensPretty(&buf, toks, fs); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("lines = %q", lines)
	}
	if !strings.Contains(lines[1], `Ident`) || !strings.Contains(lines[1], `"x" at 1:5-1:6 (leading: Space)`) {
		t.Errorf("ident line = %q", lines[1])
	}

	buf.Reset()
	if err := FormatTokensJSON(&buf, toks); err != nil {
		t.Fatal(err)
	}
	var out []TokenOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatal(err)
	}
	if len(out) != 3 || out[2].Kind != "EOF" || out[1].Leading[0] != "Space" {
		t.Errorf("json tokens = %+v", out)
	}
}

func TestDiagnosticsJSON(t *testing.T) {
	_, _, err := parser.Parse(context.Background(), "bad.kt", []byte("class A {\n"), 16)
	var pe *parser.ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("err = %v", err)
	}
	out := BuildDiagnosticsOutput(pe.Bag, pe.FS, JSONOpts{IncludePositions: true, Max: 1})
	if out.Count < 1 || len(out.Diagnostics) != 1 {
		t.Fatalf("out = %+v", out)
	}
	d := out.Diagnostics[0]
	if d.Severity != "ERROR" && d.Severity != "error" {
		t.Errorf("severity = %q", d.Severity)
	}
	if d.Location.File != "bad.kt" || d.Location.StartLine == 0 {
		t.Errorf("location = %+v", d.Location)
	}

	empty := BuildDiagnosticsOutput(nil, nil, JSONOpts{})
	if empty.Diagnostics == nil || empty.Count != 0 {
		t.Errorf("empty = %+v", empty)
	}
}
