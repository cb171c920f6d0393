// Package diag defines the diagnostic model shared by the lexer and parser.
//
// Diagnostic is the central record: Severity, Code, Message, the Primary span
// and optional Notes. Phases emit through a Reporter; BagReporter collects into
// a Bag, which supports sorting and deduplication. Pretty renders a Bag for the
// CLI as `path:line:col: SEVERITY CODE: message` followed by the source line.
package diag
