package diag

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"kremap/internal/source"
)

// PrettyOpts controls Pretty rendering.
type PrettyOpts struct {
	Color bool
	// Context prints the offending source line with a caret underline.
	Context bool
}

// Pretty форматирует диагностики в человекочитаемый вид:
//
//	<path>:<line>:<col>: <SEV> <CODE>: <Message>
//
// затем строка исходника с подчёркиванием ^~~~ по Span.
func Pretty(w io.Writer, bag *Bag, fs *source.FileSet, opts PrettyOpts) error {
	if bag == nil || fs == nil {
		return nil
	}
	sevColor := map[Severity]*color.Color{
		SevError:   color.New(color.FgRed, color.Bold),
		SevWarning: color.New(color.FgYellow, color.Bold),
		SevInfo:    color.New(color.FgCyan),
	}
	for _, c := range sevColor {
		if opts.Color {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	for _, d := range bag.Items() {
		f := fs.Get(d.Primary.File)
		start, end := fs.Resolve(d.Primary)
		sev := sevColor[d.Severity].Sprint(d.Severity.String())
		if _, err := fmt.Fprintf(w, "%s:%d:%d: %s %s: %s\n", f.Path, start.Line, start.Col, sev, d.Code.ID(), d.Message); err != nil {
			return err
		}
		if opts.Context {
			if err := writeContext(w, f, start, end); err != nil {
				return err
			}
		}
		for _, n := range d.Notes {
			nl, _ := fs.Resolve(n.Span)
			if _, err := fmt.Fprintf(w, "  note: %s:%d:%d: %s\n", fs.Get(n.Span.File).Path, nl.Line, nl.Col, n.Msg); err != nil {
				return err
			}
		}
	}
	if n := bag.Dropped(); n > 0 {
		if _, err := fmt.Fprintf(w, "... %d more diagnostics not shown\n", n); err != nil {
			return err
		}
	}
	return nil
}

// writeContext prints the line and a caret run under the span. Columns
// are bytes; the padding is measured in display cells so the caret lines up
// under wide runes, and tabs are kept as tabs.
func writeContext(w io.Writer, f *source.File, start, end source.LineCol) error {
	line := f.GetLine(start.Line)
	if line == "" {
		return nil
	}
	from := min(int(start.Col-1), len(line))
	to := from + 1
	if end.Line == start.Line && end.Col > start.Col {
		to = int(end.Col - 1)
	}
	to = min(to, len(line))
	var pad strings.Builder
	for _, r := range line[:from] {
		if r == '\t' {
			pad.WriteByte('\t')
			continue
		}
		pad.WriteString(strings.Repeat(" ", runewidth.RuneWidth(r)))
	}
	width := max(runewidth.StringWidth(line[from:max(from, to)]), 1)
	underline := pad.String() + "^" + strings.Repeat("~", width-1)
	_, err := fmt.Fprintf(w, "  %s\n  %s\n", line, underline)
	return err
}
