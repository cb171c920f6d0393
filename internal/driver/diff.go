package driver

import (
	"github.com/pmezard/go-difflib/difflib"
)

func unifiedDiff(path string, before, after []byte) (string, error) {
	return difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(before)),
		B:        difflib.SplitLines(string(after)),
		FromFile: path,
		ToFile:   path + " (kremap)",
		Context:  3,
	})
}
