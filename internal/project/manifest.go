package project

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// FormatSection is [format].
type FormatSection struct {
	Indent     int  `toml:"indent"`
	Tabs       bool `toml:"tabs"`
	BlankLines bool `toml:"blank_lines"`
}

// RemapSection is [remap].
type RemapSection struct {
	// Mappings is relative to the manifest directory unless absolute.
	Mappings string `toml:"mappings"`
	// NoCache disables the decoded mappings cache.
	NoCache bool `toml:"no_cache"`
}

// Manifest is a decoded kremap.toml. Keys left out keep their zero value;
// IsSet tells them apart from explicit zeros so flags can take precedence.
type Manifest struct {
	Path   string
	Root   string
	Format FormatSection
	Remap  RemapSection

	meta toml.MetaData
}

type manifestFile struct {
	Format FormatSection `toml:"format"`
	Remap  RemapSection  `toml:"remap"`
}

// Load decodes the manifest at path. Unknown keys are an error.
func Load(path string) (*Manifest, error) {
	var raw manifestFile
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if meta.IsDefined("format", "indent") && raw.Format.Indent <= 0 {
		return nil, fmt.Errorf("%s: [format].indent must be positive, got %d", path, raw.Format.Indent)
	}
	return &Manifest{
		Path:   path,
		Root:   filepath.Dir(path),
		Format: raw.Format,
		Remap:  raw.Remap,
		meta:   meta,
	}, nil
}

// Discover finds and loads the manifest above startDir. It returns nil
// without error when there is none.
func Discover(startDir string) (*Manifest, error) {
	path, ok, err := FindManifest(startDir)
	if err != nil || !ok {
		return nil, err
	}
	return Load(path)
}

// IsSet reports whether the dotted key path was present in the file.
func (m *Manifest) IsSet(key ...string) bool {
	if m == nil {
		return false
	}
	return m.meta.IsDefined(key...)
}

// MappingsPath returns [remap].mappings resolved against the manifest
// directory, or "" when unset.
func (m *Manifest) MappingsPath() string {
	if m == nil || m.Remap.Mappings == "" {
		return ""
	}
	if filepath.IsAbs(m.Remap.Mappings) {
		return m.Remap.Mappings
	}
	return filepath.Join(m.Root, m.Remap.Mappings)
}
