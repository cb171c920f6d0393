package lexer

import (
	"bytes"
	"fmt"

	"fortio.org/safecast"

	"kremap/internal/source"
)

// Cursor - байтовая позиция в содержимом файла.
type Cursor struct {
	File *source.File
	Off  uint32
	end  uint32
}

func NewCursor(f *source.File) Cursor {
	end, err := safecast.Conv[uint32](len(f.Content))
	if err != nil {
		panic(fmt.Errorf("file %s too large: %w", f.Path, err))
	}
	return Cursor{File: f, end: end}
}

func (c *Cursor) EOF() bool {
	return c.Off >= c.end
}

// Peek возвращает текущий байт или 0 в конце файла.
func (c *Cursor) Peek() byte {
	return c.PeekAt(0)
}

// PeekAt возвращает байт со смещением n от курсора или 0 за концом.
func (c *Cursor) PeekAt(n uint32) byte {
	if c.Off+n >= c.end {
		return 0
	}
	return c.File.Content[c.Off+n]
}

// Peek2 возвращает два следующих байта; ok=false если их меньше двух.
func (c *Cursor) Peek2() (b0, b1 byte, ok bool) {
	if c.Off+1 >= c.end {
		return 0, 0, false
	}
	return c.File.Content[c.Off], c.File.Content[c.Off+1], true
}

// Rest - непрочитанный остаток файла.
func (c *Cursor) Rest() []byte {
	return c.File.Content[c.Off:c.end]
}

// HasPrefix сообщает, начинается ли остаток с s.
func (c *Cursor) HasPrefix(s string) bool {
	return bytes.HasPrefix(c.Rest(), []byte(s))
}

// EatString съедает s, если остаток с него начинается.
func (c *Cursor) EatString(s string) bool {
	if !c.HasPrefix(s) {
		return false
	}
	c.Off += uint32(len(s)) // #nosec G115 -- len(s) <= len(Rest)
	return true
}

// Bump съедает один байт и возвращает его.
func (c *Cursor) Bump() byte {
	if c.EOF() {
		return 0
	}
	b := c.File.Content[c.Off]
	c.Off++
	return b
}

// Eat съедает b, если это текущий байт.
func (c *Cursor) Eat(b byte) bool {
	if c.EOF() || c.File.Content[c.Off] != b {
		return false
	}
	c.Off++
	return true
}

// Mark - сохранённая позиция для SpanFrom и Reset.
type Mark uint32

func (c *Cursor) Mark() Mark {
	return Mark(c.Off)
}

// SpanFrom покрывает байты от m до курсора.
func (c *Cursor) SpanFrom(m Mark) source.Span {
	return source.Span{File: c.File.ID, Start: uint32(m), End: c.Off}
}

func (c *Cursor) Reset(m Mark) {
	c.Off = uint32(m)
}
