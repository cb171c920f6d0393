package source

import (
	"fmt"
	"os"

	"fortio.org/safecast"
)

// FileSet owns loaded files and resolves spans to line and column. It is
// not safe for concurrent mutation; the driver gives each worker its own.
type FileSet struct {
	files []File
}

func NewFileSet() *FileSet {
	return &FileSet{}
}

// Add stores content as-is under a fresh FileID, even when path is already
// present.
func (fileSet *FileSet) Add(path string, content []byte, flags FileFlags) FileID {
	if _, err := safecast.Conv[uint32](len(content)); err != nil {
		panic(fmt.Errorf("%s: file larger than 4 GiB: %w", path, err))
	}
	n, err := safecast.Conv[uint32](len(fileSet.files))
	if err != nil {
		panic(fmt.Errorf("too many files: %w", err))
	}
	id := FileID(n)
	fileSet.files = append(fileSet.files, File{
		ID:      id,
		Path:    normalizePath(path),
		Content: content,
		LineIdx: buildLineIndex(content),
		Flags:   flags,
	})
	return id
}

// AddNormalized strips a UTF-8 BOM and CRLF line endings, records what it
// changed in the flags and adds the result.
func (fileSet *FileSet) AddNormalized(path string, content []byte, flags FileFlags) FileID {
	content, changed := normalize(content)
	return fileSet.Add(path, content, flags|changed)
}

// Load reads path from disk and adds it normalized.
func (fileSet *FileSet) Load(path string) (FileID, error) {
	// #nosec G304 -- path is provided by the caller
	content, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}
	return fileSet.AddNormalized(path, content, 0), nil
}

// AddVirtual adds in-memory content (stdin, tests) with FileVirtual set.
func (fileSet *FileSet) AddVirtual(name string, content []byte) FileID {
	return fileSet.AddNormalized(name, content, FileVirtual)
}

func (fileSet *FileSet) Get(id FileID) *File {
	return &fileSet.files[id]
}

// Len counts every version ever added.
func (fileSet *FileSet) Len() int {
	return len(fileSet.files)
}

// Resolve converts both ends of span to line and column.
func (fileSet *FileSet) Resolve(span Span) (start, end LineCol) {
	f := &fileSet.files[span.File]
	return toLineCol(f.LineIdx, span.Start), toLineCol(f.LineIdx, span.End)
}

// GetLine returns line n (1-based) without its '\n', or "" past the end.
func (f *File) GetLine(n uint32) string {
	if n == 0 || int(n) > len(f.LineIdx)+1 {
		return ""
	}
	var start uint32
	if n > 1 {
		start = f.LineIdx[n-2] + 1
	}
	end := uint32(len(f.Content)) // #nosec G115 -- Add bounds the length
	if int(n) <= len(f.LineIdx) {
		end = f.LineIdx[n-1]
	}
	if start >= end {
		return ""
	}
	return string(f.Content[start:end])
}

// Text returns the bytes sp covers, or "" if sp is not inside f.
func (f *File) Text(sp Span) string {
	if sp.File != f.ID || int(sp.End) > len(f.Content) || sp.Start > sp.End {
		return ""
	}
	return string(f.Content[sp.Start:sp.End])
}
