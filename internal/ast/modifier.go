package ast

// Annotation is `@[target:]a.b.C<T>(args)`.
type Annotation struct {
	Pos
	Target   string
	Names    []string
	TypeArgs []*TypeArg
	Args     []*ValueArg
	HasArgs  bool
}

// Keyword is a keyword modifier such as `private`, `data` or `override`.
type Keyword struct {
	Pos
	Name string
}

func (*Annotation) Kind() Kind { return KindAnnotation }
func (*Keyword) Kind() Kind    { return KindModifier }

func (*Annotation) modNode() {}
func (*Keyword) modNode()    {}

// HasModifier reports whether mods contains the keyword modifier name.
func HasModifier(mods []Modifier, name string) bool {
	for _, m := range mods {
		if k, ok := m.(*Keyword); ok && k.Name == name {
			return true
		}
	}
	return false
}
