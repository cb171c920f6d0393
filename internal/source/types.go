package source

// FileID - индекс файла в FileSet.
type FileID uint32

// FileFlags records how a file got into the set and what loading changed.
type FileFlags uint8

const (
	FileVirtual        FileFlags = 1 << iota // stdin, тесты: не с диска
	FileHadBOM                               // UTF-8 BOM снят при загрузке
	FileNormalizedCRLF                       // \r\n заменены на \n
)

// File is one loaded source. Content is already normalized, so every
// offset in a Span indexes Content directly.
type File struct {
	ID      FileID
	Path    string // slash-separated, cleaned
	Content []byte
	LineIdx []uint32 // offsets of every '\n'
	Flags   FileFlags
}

// LineCol is a 1-based line and byte column.
type LineCol struct {
	Line uint32
	Col  uint32
}
