package fuzztests

import (
	"context"
	"testing"
	"time"

	"kremap/internal/diag"
	"kremap/internal/lexer"
	"kremap/internal/parser"
	"kremap/internal/source"
)

// parseTimeout is the maximum time allowed for parsing a single input.
const parseTimeout = 5 * time.Second

// FuzzParserNoHang checks that error recovery always terminates.
func FuzzParserNoHang(f *testing.F) {
	addSeeds(f)
	f.Add([]byte("fun f() { val x = 1\nval y = }"))
	f.Add([]byte("class A {"))
	f.Add([]byte("fun f() { { { { } } } }"))
	f.Add([]byte("fun f() = when (x) { -> }"))
	f.Add([]byte("val l = { a, -> }"))
	f.Add([]byte("fun ("))
	f.Fuzz(func(t *testing.T, input []byte) {
		input = clampInput(input)

		ctx, cancel := context.WithTimeout(context.Background(), parseTimeout)
		defer cancel()

		done := make(chan struct{})
		go func() {
			defer close(done)

			fs := source.NewFileSet()
			file := fs.Get(fs.AddVirtual("fuzz.kt", input))
			bag := diag.NewBag(128)
			reporter := diag.BagReporter{Bag: bag}
			lx := lexer.New(file, lexer.Options{Reporter: reporter})
			_ = parser.ParseFile(ctx, fs, lx, parser.Options{Reporter: reporter, MaxErrors: 128})
		}()

		select {
		case <-done:
		case <-ctx.Done():
			t.Fatalf("parser hang detected: parsing took longer than %v\ninput (%d bytes): %q",
				parseTimeout, len(input), truncateForLog(input, 200))
		}
	})
}
