package mapping

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// Format is a mapping file format.
type Format uint8

const (
	FormatUnknown Format = iota
	FormatSRG
	FormatTSRG
	FormatTOML
)

func (f Format) String() string {
	switch f {
	case FormatSRG:
		return "srg"
	case FormatTSRG:
		return "tsrg"
	case FormatTOML:
		return "toml"
	default:
		return "unknown"
	}
}

// FormatOf picks the format by file extension.
func FormatOf(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".srg":
		return FormatSRG
	case ".tsrg":
		return FormatTSRG
	case ".toml":
		return FormatTOML
	default:
		return FormatUnknown
	}
}

// Load reads a mapping file, choosing the reader by extension.
func Load(path string) (*Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(path, data)
}

// Parse decodes data in the format implied by path.
func Parse(path string, data []byte) (*Set, error) {
	var (
		set *Set
		err error
	)
	switch FormatOf(path) {
	case FormatSRG:
		set, err = ReadSRG(bytes.NewReader(data))
	case FormatTSRG:
		set, err = ReadTSRG(bytes.NewReader(data))
	case FormatTOML:
		set, err = ReadTOML(bytes.NewReader(data))
	default:
		return nil, fmt.Errorf("%s: unknown mapping format (want .srg, .tsrg or .toml)", path)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return set, nil
}

// ReadSRG reads `CL: obf deobf` lines. Package, field and method lines
// are accepted and ignored.
func ReadSRG(r io.Reader) (*Set, error) {
	set := NewSet()
	err := eachLine(r, func(n int, line string) error {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			return nil
		}
		kind, rest, ok := strings.Cut(line, ":")
		if !ok {
			return fmt.Errorf("line %d: missing record type", n)
		}
		switch kind {
		case "CL":
			f := strings.Fields(rest)
			if len(f) != 2 {
				return fmt.Errorf("line %d: CL wants 2 names, got %d", n, len(f))
			}
			set.Add(f[0], f[1])
		case "PK", "FD", "MD":
		default:
			return fmt.Errorf("line %d: unknown record type %q", n, kind)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return set, nil
}

// ReadTSRG reads class lines `obf deobf`; indented member lines are
// skipped. A tsrg2 header selects the first two namespaces.
func ReadTSRG(r io.Reader) (*Set, error) {
	set := NewSet()
	err := eachLine(r, func(n int, line string) error {
		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
			return nil
		}
		if line[0] == '\t' || line[0] == ' ' {
			return nil
		}
		f := strings.Fields(line)
		if n == 1 && f[0] == "tsrg2" {
			if len(f) < 3 {
				return fmt.Errorf("line 1: tsrg2 header wants at least 2 namespaces")
			}
			return nil
		}
		if len(f) < 2 {
			return fmt.Errorf("line %d: class line wants 2 names", n)
		}
		set.Add(f[0], f[1])
		return nil
	})
	if err != nil {
		return nil, err
	}
	return set, nil
}

type tomlMappings struct {
	Classes map[string]string `toml:"classes"`
}

// ReadTOML reads a `[classes]` table of obf = deobf pairs.
func ReadTOML(r io.Reader) (*Set, error) {
	var doc tomlMappings
	meta, err := toml.NewDecoder(r).Decode(&doc)
	if err != nil {
		return nil, err
	}
	if !meta.IsDefined("classes") {
		return nil, fmt.Errorf("missing [classes] table")
	}
	if und := meta.Undecoded(); len(und) > 0 {
		return nil, fmt.Errorf("unknown key %q", und[0].String())
	}
	set := NewSet()
	for o, d := range doc.Classes {
		set.Add(o, d)
	}
	return set, nil
}

func eachLine(r io.Reader, fn func(n int, line string) error) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	n := 0
	for sc.Scan() {
		n++
		if err := fn(n, strings.TrimRight(sc.Text(), "\r")); err != nil {
			return err
		}
	}
	return sc.Err()
}
