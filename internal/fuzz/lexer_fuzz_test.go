package fuzztests

import (
	"testing"

	"kremap/internal/diag"
	"kremap/internal/lexer"
	"kremap/internal/source"
	"kremap/internal/token"
)

func FuzzLexerTokens(f *testing.F) {
	addSeeds(f)
	f.Add([]byte("\"unterminated"))
	f.Add([]byte("/* open comment"))
	f.Add([]byte("val s = \"${a + \"${b}\"}\"\n"))
	f.Fuzz(func(t *testing.T, input []byte) {
		input = clampInput(input)

		fs := source.NewFileSet()
		file := fs.Get(fs.AddVirtual("fuzz.kt", input))

		bag := diag.NewBag(64)
		lx := lexer.New(file, lexer.Options{Reporter: diag.BagReporter{Bag: bag}})
		// каждый токен должен продвигать лексер
		for i := 0; ; i++ {
			tok := lx.Next()
			if tok.Kind == token.EOF {
				break
			}
			if i > 4*len(input)+16 {
				t.Fatalf("lexer does not advance on %q", truncateForLog(input, 200))
			}
		}
	})
}
