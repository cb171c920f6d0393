package fuzztests

import (
	"context"
	"strings"
	"testing"

	"kremap/internal/format"
)

// FuzzFormatStable checks that formatting a file that parses cleanly is a
// fixed point: formatting the output again changes nothing.
func FuzzFormatStable(f *testing.F) {
	addSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		input = clampInput(input)
		for _, opt := range []format.Options{{}, {IncludeExtraBlankLines: true}} {
			ok, msg := format.CheckRoundTrip(context.Background(), "fuzz.kt", input, opt, 64)
			if ok || strings.Contains(msg, "initial parse failed") {
				continue
			}
			t.Fatalf("%s\ninput (%d bytes): %q", msg, len(input), truncateForLog(input, 200))
		}
	})
}
