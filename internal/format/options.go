package format

type Options struct {
	IndentWidth int
	UseTabs     bool
	// IncludeExtraBlankLines keeps blank-line extras from the source.
	IncludeExtraBlankLines bool
	// Renderer overrides the handling of extras; nil means DefaultExtras.
	Renderer ExtrasRenderer
}

func (o Options) withDefaults() Options {
	if o.IndentWidth <= 0 {
		o.IndentWidth = 4
	}
	if o.Renderer == nil {
		o.Renderer = DefaultExtras{}
	}
	return o
}
