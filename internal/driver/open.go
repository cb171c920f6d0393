package driver

import (
	"io"
	"os"

	"kremap/internal/diag"
	"kremap/internal/source"
)

// StdinPath stands for standard input wherever a file path is accepted.
const StdinPath = "-"

// stdinName is how standard input appears in diagnostics.
const stdinName = "<stdin>"

// Stdin is read by openFile for StdinPath; tests swap it.
var Stdin io.Reader = os.Stdin

// openFile loads path, or stdin for StdinPath, into a fresh FileSet with a
// bag sized for maxDiagnostics.
func openFile(path string, maxDiagnostics int) (*source.FileSet, *source.File, *diag.Bag, error) {
	fs := source.NewFileSet()
	var id source.FileID
	if path == StdinPath {
		src, err := io.ReadAll(Stdin)
		if err != nil {
			return nil, nil, nil, err
		}
		id = fs.AddVirtual(stdinName, src)
	} else {
		var err error
		if id, err = fs.Load(path); err != nil {
			return nil, nil, nil, err
		}
	}
	return fs, fs.Get(id), diag.NewBag(maxDiagnostics), nil
}
