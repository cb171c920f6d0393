package format

import (
	"bytes"
	"io"
	"strings"

	"kremap/internal/ast"
)

// Writer emits formatted text to a sink line by line. Indentation is written
// lazily, right before the first text of a line, so empty lines stay empty.
// The first sink error sticks: later output is dropped and Err reports it.
type Writer struct {
	out         io.Writer
	opt         Options
	extras      ast.ExtrasMap
	line        []byte
	indentLevel int
	atLineStart bool
	blank       int  // пустых строк подряд в конце вывода
	started     bool // что-то уже выведено
	err         error
}

// NewWriter creates a writer over out. extras may be nil.
func NewWriter(out io.Writer, extras ast.ExtrasMap, opt Options) *Writer {
	return &Writer{
		out:         out,
		opt:         opt.withDefaults(),
		extras:      extras,
		atLineStart: true,
	}
}

// ExtrasMap returns the map the writer was created with, possibly nil.
func (w *Writer) ExtrasMap() ast.ExtrasMap { return w.extras }

func (w *Writer) IncludeExtraBlankLines() bool { return w.opt.IncludeExtraBlankLines }

// Err returns the first error returned by the sink.
func (w *Writer) Err() error { return w.err }

// AtLineStart reports whether nothing has been written on the current line.
func (w *Writer) AtLineStart() bool { return w.atLineStart }

// Started reports whether any text has been produced yet.
func (w *Writer) Started() bool { return w.started || len(w.line) > 0 }

// BlankLines returns how many empty lines currently end the output.
func (w *Writer) BlankLines() int { return w.blank }

func (w *Writer) emit(b []byte) {
	if w.err != nil || len(b) == 0 {
		return
	}
	w.started = true
	_, w.err = w.out.Write(b)
}

func (w *Writer) writeIndent() {
	if !w.atLineStart {
		return
	}
	if w.opt.UseTabs {
		for range w.indentLevel {
			w.line = append(w.line, '\t')
		}
	} else {
		w.line = append(w.line, bytes.Repeat([]byte{' '}, w.indentLevel*w.opt.IndentWidth)...)
	}
	w.atLineStart = false
}

// Append writes s at the current position. Line breaks inside s are copied
// verbatim (raw strings, block comments) without re-indenting.
func (w *Writer) Append(s string) {
	if s == "" {
		return
	}
	w.writeIndent()
	if i := strings.LastIndexByte(s, '\n'); i >= 0 {
		w.line = append(w.line, s[:i+1]...)
		w.emit(w.line)
		w.line = w.line[:0]
		w.blank = 0
		s = s[i+1:]
		if s == "" {
			w.atLineStart = true
			return
		}
	}
	w.line = append(w.line, s...)
}

// Space writes one space unless the line is empty or already ends in one.
func (w *Writer) Space() {
	if w.atLineStart || len(w.line) == 0 {
		return
	}
	if last := w.line[len(w.line)-1]; last == ' ' || last == '\t' {
		return
	}
	w.line = append(w.line, ' ')
}

func (w *Writer) lastByte() byte {
	if len(w.line) == 0 {
		return 0
	}
	return w.line[len(w.line)-1]
}

// newline ends the current line, dropping trailing spaces.
func (w *Writer) newline() {
	trimmed := bytes.TrimRight(w.line, " \t")
	if len(trimmed) == 0 {
		if w.Started() {
			w.blank++
		}
	} else {
		w.blank = 0
	}
	w.line = append(trimmed, '\n')
	w.emit(w.line)
	w.line = w.line[:0]
	w.atLineStart = true
}

// LineEnd ends the current line if anything is on it.
func (w *Writer) LineEnd() {
	if !w.atLineStart {
		w.newline()
	}
}

// LineBegin makes sure the next text starts a fresh line at the current indent.
func (w *Writer) LineBegin() { w.LineEnd() }

// Line writes a line break unconditionally; at a line start that is an empty line.
func (w *Writer) Line() { w.newline() }

// IndentPush increases the indentation level.
func (w *Writer) IndentPush() { w.indentLevel++ }

// IndentPop decreases the indentation level.
func (w *Writer) IndentPop() {
	if w.indentLevel > 0 {
		w.indentLevel--
	}
}

func (w *Writer) indented(fn func()) {
	w.IndentPush()
	fn()
	w.IndentPop()
}

// Flush writes out a pending unterminated line.
func (w *Writer) Flush() error {
	if len(w.line) > 0 {
		trimmed := bytes.TrimRight(w.line, " \t")
		w.emit(trimmed)
		w.line = w.line[:0]
	}
	return w.err
}
