package mapping

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestReadSRG(t *testing.T) {
	src := "PK: net/obf net/obf\nCL: net/obf/TestObf deobf/TestDeobf\r\nFD: net/obf/TestObf/a deobf/TestDeobf/field\n\n# note\nMD: a/b ()V c/d ()V\n"
	s, err := ReadSRG(strings.NewReader(src))
	if err != nil {
		t.Fatalf("ReadSRG: %v", err)
	}
	if s.Len() != 1 {
		t.Fatalf("want 1 class, got %d", s.Len())
	}
	if d, _ := s.Lookup("net/obf/TestObf"); d != "deobf/TestDeobf" {
		t.Fatalf("unexpected mapping %q", d)
	}
}

func TestReadSRGErrors(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"CL: a\n", "line 1: CL wants 2 names"},
		{"CL: a b\nXX: c d\n", "line 2: unknown record type"},
		{"garbage\n", "line 1: missing record type"},
	}
	for _, tt := range tests {
		_, err := ReadSRG(strings.NewReader(tt.src))
		if err == nil || !strings.Contains(err.Error(), tt.want) {
			t.Fatalf("want error containing %q, got %v", tt.want, err)
		}
	}
}

func TestReadTSRG(t *testing.T) {
	src := "tsrg2 obf deobf\nnet/obf/TestObf deobf/TestDeobf\n\ta field\n\tb ()V method\nnet/obf/Q deobf/Q2\n"
	s, err := ReadTSRG(strings.NewReader(src))
	if err != nil {
		t.Fatalf("ReadTSRG: %v", err)
	}
	if s.Len() != 2 {
		t.Fatalf("want 2 classes, got %d", s.Len())
	}
	if d, _ := s.Lookup("net/obf/Q"); d != "deobf/Q2" {
		t.Fatalf("unexpected mapping %q", d)
	}
}

func TestReadTOML(t *testing.T) {
	src := "[classes]\n\"net/obf/TestObf\" = \"deobf/TestDeobf\"\n"
	s, err := ReadTOML(strings.NewReader(src))
	if err != nil {
		t.Fatalf("ReadTOML: %v", err)
	}
	if d, _ := s.Lookup("net/obf/TestObf"); d != "deobf/TestDeobf" {
		t.Fatalf("unexpected mapping %q", d)
	}

	if _, err := ReadTOML(strings.NewReader("title = \"x\"\n")); err == nil {
		t.Fatalf("expected error for missing [classes]")
	}
}

func TestLoadPicksFormatByExtension(t *testing.T) {
	dir := t.TempDir()
	files := map[string]string{
		"m.srg":  "CL: a/A b/B\n",
		"m.tsrg": "a/A b/B\n",
		"m.toml": "[classes]\n\"a/A\" = \"b/B\"\n",
	}
	for name, content := range files {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
		s, err := Load(path)
		if err != nil {
			t.Fatalf("Load(%s): %v", name, err)
		}
		if d, _ := s.Lookup("a/A"); d != "b/B" {
			t.Fatalf("%s: unexpected mapping %q", name, d)
		}
	}

	bad := filepath.Join(dir, "m.txt")
	if err := os.WriteFile(bad, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); err == nil || !strings.Contains(err.Error(), "unknown mapping format") {
		t.Fatalf("expected unknown format error, got %v", err)
	}
}
