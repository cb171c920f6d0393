// Package diagfmt renders tokens, syntax trees and diagnostics for the
// inspection commands and for --format json reports.
package diagfmt

// JSONOpts configures JSON output of diagnostics.
type JSONOpts struct {
	IncludePositions bool // добавить line/col
	Max              int  // обрезка вывода, не Bag
}

// TreeOpts configures FormatTree.
type TreeOpts struct {
	// Spans appends line:col ranges when a FileSet is given.
	Spans bool
}
