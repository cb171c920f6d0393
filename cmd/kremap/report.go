package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"

	"kremap/internal/diag"
	"kremap/internal/diagfmt"
	"kremap/internal/driver"
	"kremap/internal/parser"
)

// errSilent is returned once the failure has already been printed.
var errSilent = errors.New("failed")

type reportOptions struct {
	verb   string // "reformatted", "remapped"
	mode   driver.Mode
	format string // text|json
	quiet  bool
	max    int
}

type jsonResult struct {
	Path        string                     `json:"path"`
	Changed     bool                       `json:"changed"`
	Renamed     int                        `json:"renamed,omitempty"`
	Check       bool                       `json:"check"`
	Error       string                     `json:"error,omitempty"`
	Diagnostics *diagfmt.DiagnosticsOutput `json:"diagnostics,omitempty"`
	Diff        string                     `json:"diff,omitempty"`
}

// report prints results and tells whether any file changed or failed.
func report(stdout, stderr io.Writer, results []driver.FileResult, ro reportOptions) (changed, failed bool, err error) {
	failed = driver.Failed(results)
	for _, res := range results {
		changed = changed || res.Changed
	}
	if ro.format == "json" {
		return changed, failed, reportJSON(stdout, results, ro)
	}
	if ro.format != "text" {
		return changed, failed, fmt.Errorf("unsupported output format %q (expected text|json)", ro.format)
	}

	for _, res := range results {
		if res.Err != nil {
			printFileError(stderr, res.Path, res.Err)
			continue
		}
		switch ro.mode {
		case driver.ModeStdout:
			if _, err := stdout.Write(res.Output); err != nil {
				return changed, failed, err
			}
		case driver.ModeCheck:
			if res.Changed && !ro.quiet {
				fmt.Fprintln(stdout, res.Path)
			}
		default:
			if res.Changed && !ro.quiet {
				fmt.Fprintf(stdout, "%s %s\n", ro.verb, res.Path)
			}
		}
		if res.Diff != "" {
			fmt.Fprint(stdout, colorizeDiff(res.Diff))
		}
	}
	return changed, failed, nil
}

func reportJSON(w io.Writer, results []driver.FileResult, ro reportOptions) error {
	payload := make([]jsonResult, 0, len(results))
	for _, res := range results {
		jr := jsonResult{
			Path:    res.Path,
			Changed: res.Changed,
			Renamed: res.Renamed,
			Check:   ro.mode == driver.ModeCheck,
			Diff:    res.Diff,
		}
		if res.Err != nil {
			jr.Error = res.Err.Error()
			var pe *parser.ParseError
			if errors.As(res.Err, &pe) {
				out := diagfmt.BuildDiagnosticsOutput(pe.Bag, pe.FS, diagfmt.JSONOpts{IncludePositions: true, Max: ro.max})
				jr.Diagnostics = &out
			}
		}
		payload = append(payload, jr)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(payload)
}

// printFileError shows parse errors with source context and anything else
// as a single line.
func printFileError(w io.Writer, path string, err error) {
	var pe *parser.ParseError
	if errors.As(err, &pe) && pe.FS != nil {
		opts := diag.PrettyOpts{Color: useColor(os.Stderr), Context: true}
		if perr := diag.Pretty(w, pe.Bag, pe.FS, opts); perr == nil {
			return
		}
	}
	fmt.Fprintf(w, "kremap: %s: %v\n", path, err)
}

func colorizeDiff(diff string) string {
	if color.NoColor {
		return diff
	}
	added := color.New(color.FgGreen, color.Bold)
	removed := color.New(color.FgRed, color.Bold)
	lines := strings.SplitAfter(diff, "\n")
	for i, line := range lines {
		switch {
		case strings.HasPrefix(line, "+++"), strings.HasPrefix(line, "---"):
		case strings.HasPrefix(line, "+"):
			lines[i] = paintLine(added, line)
		case strings.HasPrefix(line, "-"):
			lines[i] = paintLine(removed, line)
		}
	}
	return strings.Join(lines, "")
}

func paintLine(c *color.Color, line string) string {
	body, ok := strings.CutSuffix(line, "\n")
	if ok {
		return c.Sprint(body) + "\n"
	}
	return c.Sprint(body)
}
