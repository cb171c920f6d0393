// Package token defines lexical token kinds and trivia for the kt source subset.
// Invariants:
//   - Token.Text is a slice of the original source.
//   - Token.Span matches Text exactly (Begin..End).
//   - Newlines, spaces and comments never appear in the main token stream;
//     they are attached as leading Trivia to the next significant token
//     (EOF included).
//   - Soft keywords and modifiers (private, data, enum, get, ...) are identifiers.
//     They are recognized by the parser, not the lexer.
package token
