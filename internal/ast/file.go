package ast

type File struct {
	Pos
	Package *Package
	Imports []*Import
	Decls   []Decl
}

type Package struct {
	Pos
	Mods  []Modifier
	Names []string
}

type Import struct {
	Pos
	Names    []string
	Wildcard bool
	Alias    string
}

func (*File) Kind() Kind    { return KindFile }
func (*Package) Kind() Kind { return KindPackage }
func (*Import) Kind() Kind  { return KindImport }

// ShortName is the name an import brings into scope: the alias if any,
// otherwise the last path segment. Wildcard imports have no short name.
func (i *Import) ShortName() string {
	if i.Wildcard || len(i.Names) == 0 {
		return ""
	}
	if i.Alias != "" {
		return i.Alias
	}
	return i.Names[len(i.Names)-1]
}
