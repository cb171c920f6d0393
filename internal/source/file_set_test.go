package source

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileSetAddAssignsFreshIDs(t *testing.T) {
	fs := NewFileSet()

	id1 := fs.Add("test.kt", []byte("hello world"), 0)
	if id1 != 0 {
		t.Errorf("Expected first FileID to be 0, got %d", id1)
	}

	id2 := fs.Add("test.kt", []byte("hello universe"), 0)
	if id2 != 1 {
		t.Errorf("Expected second FileID to be 1, got %d", id2)
	}

	// старый файл все еще доступен
	if got := string(fs.Get(id1).Content); got != "hello world" {
		t.Errorf("Expected first file content 'hello world', got %q", got)
	}
	if fs.Len() != 2 {
		t.Errorf("Expected 2 files, got %d", fs.Len())
	}
}

func TestResolve(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("a.kt", []byte("ab\ncd\n\nef"))

	tests := []struct {
		off  uint32
		want LineCol
	}{
		{0, LineCol{1, 1}},
		{2, LineCol{1, 3}}, // сам '\n' принадлежит первой строке
		{3, LineCol{2, 1}},
		{6, LineCol{3, 1}},
		{8, LineCol{4, 2}},
	}
	for _, tt := range tests {
		got, _ := fs.Resolve(Span{File: id, Start: tt.off, End: tt.off})
		if got != tt.want {
			t.Errorf("Resolve(%d) = %+v, want %+v", tt.off, got, tt.want)
		}
	}
}

func TestGetLine(t *testing.T) {
	fs := NewFileSet()
	f := fs.Get(fs.AddVirtual("a.kt", []byte("first\nsecond\nthird")))

	for i, want := range []string{"", "first", "second", "third", ""} {
		if got := f.GetLine(uint32(i)); got != want {
			t.Errorf("GetLine(%d) = %q, want %q", i, got, want)
		}
	}
}

func TestCRLFAndBOMNormalization(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("crlf.kt", []byte("\xEF\xBB\xBFval a = 1\r\nval b = 2\r\n"))
	f := fs.Get(id)

	if string(f.Content) != "val a = 1\nval b = 2\n" {
		t.Fatalf("unexpected content %q", f.Content)
	}
	if f.Flags&FileHadBOM == 0 || f.Flags&FileNormalizedCRLF == 0 || f.Flags&FileVirtual == 0 {
		t.Errorf("flags not recorded: %b", f.Flags)
	}
	if len(f.LineIdx) != 2 {
		t.Errorf("Expected 2 line breaks, got %d", len(f.LineIdx))
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "Main.kt")
	if err := os.WriteFile(path, []byte("package a\r\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	fs := NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	f := fs.Get(id)
	if string(f.Content) != "package a\n" {
		t.Errorf("unexpected content %q", f.Content)
	}
	if f.Text(Span{File: id, Start: 0, End: 7}) != "package" {
		t.Errorf("Text mismatch: %q", f.Text(Span{File: id, Start: 0, End: 7}))
	}
}

func TestSpanCover(t *testing.T) {
	a := Span{File: 1, Start: 5, End: 8}
	b := Span{File: 1, Start: 2, End: 6}
	if got := a.Cover(b); got != (Span{File: 1, Start: 2, End: 8}) {
		t.Errorf("Cover = %v", got)
	}
	other := Span{File: 2, Start: 0, End: 100}
	if got := a.Cover(other); got != a {
		t.Errorf("Cover across files must keep receiver, got %v", got)
	}
	if !a.Contains(5) || a.Contains(8) {
		t.Errorf("Contains boundaries wrong")
	}
}
