package parser

import (
	"strings"

	"kremap/internal/ast"
	"kremap/internal/token"
)

// attachExtras превращает leading trivia токенов в extras узлов.
//
// Trivia каждого токена делится на голову (до первого перевода строки) и
// хвост. Комментарии головы висят "после" самого внешнего узла, который
// заканчивается на предыдущем токене. Хвост уходит "перед" самым внешним
// узлом, начинающимся на этом токене; перед '}' и EOF - "внутрь" блока или
// файла. Всё, что некуда прицепить, переносится к следующему узлу.
func attachExtras(root *ast.File, toks []token.Token, closers map[ast.Node]uint32) *ast.Extras {
	ex := ast.NewExtras()
	starts := make(map[uint32]ast.Node)
	ends := make(map[uint32]ast.Node)
	closedBy := make(map[uint32]ast.Node)
	ast.Inspect(root, func(n ast.Node) bool {
		if off, ok := closers[n]; ok {
			closedBy[off] = n
		}
		if n == ast.Node(root) {
			return true
		}
		sp := n.Span()
		if sp.Empty() {
			return true
		}
		if _, seen := starts[sp.Start]; !seen {
			starts[sp.Start] = n
		}
		if _, seen := ends[sp.End]; !seen {
			ends[sp.End] = n
		}
		return true
	})

	var pending []ast.Extra
	for i, tok := range toks {
		trivia := tok.Leading
		if len(trivia) == 0 && len(pending) == 0 {
			continue
		}
		head, tail := splitAtNewline(trivia)
		if i == 0 {
			head, tail = nil, trivia
		}

		if headExtras := convertTrivia(head, false); len(headExtras) > 0 {
			var prev ast.Node
			if i > 0 {
				prev = ends[toks[i-1].Span.End]
			}
			if prev != nil {
				if c, ok := headExtras[len(headExtras)-1].(*ast.Comment); ok && len(tail) > 0 {
					c.EndsLine = true
				}
				ex.AddAfter(prev, headExtras...)
			} else {
				pending = append(pending, headExtras...)
			}
		}
		pending = append(pending, convertTrivia(tail, true)...)
		if len(pending) == 0 {
			continue
		}

		switch {
		case tok.Kind == token.EOF:
			ex.AddWithin(root, pending...)
			pending = nil
		case tok.Kind == token.RBrace && closedBy[tok.Span.Start] != nil:
			ex.AddWithin(closedBy[tok.Span.Start], pending...)
			pending = nil
		case starts[tok.Span.Start] != nil:
			ex.AddBefore(starts[tok.Span.Start], forceLineStarts(pending)...)
			pending = nil
		}
	}
	return ex
}

// splitAtNewline: хвост начинается с первого TriviaNewline.
func splitAtNewline(trivia []token.Trivia) (head, tail []token.Trivia) {
	for i, tr := range trivia {
		if tr.Kind == token.TriviaNewline {
			return trivia[:i], trivia[i:]
		}
	}
	return trivia, nil
}

// convertTrivia строит extras по порядку. lineStart - сегмент начинается
// с начала строки.
func convertTrivia(trivia []token.Trivia, lineStart bool) []ast.Extra {
	var out []ast.Extra
	var last *ast.Comment
	atLineStart := lineStart
	for _, tr := range trivia {
		switch tr.Kind {
		case token.TriviaNewline:
			if last != nil {
				last.EndsLine = true
			}
			last = nil
			if n := tr.Newlines(); n >= 2 {
				out = append(out, &ast.BlankLines{Count: n - 1})
			}
			atLineStart = true
		case token.TriviaLineComment, token.TriviaBlockComment, token.TriviaDocBlock:
			c := &ast.Comment{
				Text:       strings.TrimRight(tr.Text, " \t\r"),
				StartsLine: atLineStart,
				EndsLine:   tr.Kind == token.TriviaLineComment,
			}
			out = append(out, c)
			last = c
			atLineStart = false
		}
	}
	return out
}

// forceLineStarts: "//" перед узлом всегда начинает строку.
func forceLineStarts(xs []ast.Extra) []ast.Extra {
	for _, x := range xs {
		if c, ok := x.(*ast.Comment); ok && c.IsLineComment() {
			c.StartsLine = true
		}
	}
	return xs
}
