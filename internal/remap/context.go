package remap

import (
	"slices"
	"strings"

	"kremap/internal/ast"
	"kremap/internal/mapping"
)

// fileContext resolves names against the imports of one file.
type fileContext struct {
	set     *mapping.Set
	pkg     []string
	imports map[string]string // короткое имя -> путь через '/'
	aliased map[string]bool
}

func newFileContext(f *ast.File, set *mapping.Set) *fileContext {
	fc := &fileContext{
		set:     set,
		imports: make(map[string]string),
		aliased: make(map[string]bool),
	}
	if f.Package != nil {
		fc.pkg = f.Package.Names
	}
	for _, imp := range f.Imports {
		short := imp.ShortName()
		if short == "" {
			continue
		}
		fc.imports[short] = strings.Join(imp.Names, "/")
		if imp.Alias != "" {
			fc.aliased[short] = true
		}
	}
	return fc
}

// resolve maps a dotted path. Trailing segments may name inner classes,
// so a/B/C is also tried as a/B$C and a/B$C... as a fallback.
func (fc *fileContext) resolve(pieces []string) ([]string, bool) {
	if len(pieces) == 0 {
		return nil, false
	}
	for k := len(pieces); k >= 1; k-- {
		name := strings.Join(pieces[:k], "/")
		if k < len(pieces) {
			name += "$" + strings.Join(pieces[k:], "$")
		}
		if mapped, ok := fc.set.Class(name); ok {
			return mapping.SplitClass(mapped), true
		}
	}
	return nil, false
}

// qualify expands a reference whose first segment is an imported short
// name. It reports whether the head was imported and whether it was aliased.
func (fc *fileContext) qualify(names []string) (full []string, imported, aliased bool) {
	path, ok := fc.imports[names[0]]
	if !ok {
		return names, false, false
	}
	full = append(strings.Split(path, "/"), names[1:]...)
	return full, true, fc.aliased[names[0]]
}

// rename returns the new segments for a reference as written in source.
// An imported reference keeps its length and takes the tail of the mapped
// path; a qualified one is replaced by the whole mapped path.
func (fc *fileContext) rename(names []string) ([]string, bool) {
	if len(names) == 0 {
		return nil, false
	}
	full, imported, aliased := fc.qualify(names)
	if aliased {
		return nil, false
	}
	mapped, ok := fc.resolve(full)
	relative := imported
	if !ok && !imported && len(fc.pkg) > 0 {
		// ссылка на класс того же пакета
		mapped, ok = fc.resolve(append(slices.Clone(fc.pkg), names...))
		relative = true
	}
	if !ok {
		return nil, false
	}
	if relative {
		if len(mapped) < len(names) {
			return nil, false
		}
		mapped = mapped[len(mapped)-len(names):]
	}
	if slices.Equal(mapped, names) {
		return nil, false
	}
	return mapped, true
}
