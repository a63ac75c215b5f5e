package content

// FallbackType is the tag of the renderer used for unknown type tags.
const FallbackType = "text"

// MaxMixedDepth caps recursion through nested "mixed" blocks. Blocks nested
// deeper than this render as an empty string.
const MaxMixedDepth = 16

// Registry maps content type tags to renderer instances. Construct one with
// NewRegistry during startup and share it read-only afterwards; registration
// must happen before the first Render call.
type Registry struct {
	renderers map[string]Renderer
}

// NewRegistry returns a registry with all base renderers registered.
func NewRegistry() *Registry {
	r := &Registry{renderers: make(map[string]Renderer)}
	r.Register(
		textRenderer{},
		textItalicRenderer{},
		paragraphsRenderer{},
		bulletsRenderer{},
		styledListRenderer{},
		propertiesRenderer{},
		tableRenderer{},
		quoteRenderer{},
		comparisonRenderer{},
		talesRenderer{},
		subsectionsRenderer{},
		&synergyRenderer{reg: r},
		&mixedRenderer{reg: r},
	)
	return r
}

// Register adds renderers keyed by their declared type tag.
// Re-registering a tag overwrites the previous entry: last wins.
func (r *Registry) Register(renderers ...Renderer) {
	for _, rend := range renderers {
		r.renderers[rend.Type()] = rend
	}
}

// Get returns the renderer for tag, falling back to the "text" renderer when
// the tag is unregistered. It never fails: the fallback keeps the pipeline
// rendering partially specified content.
func (r *Registry) Get(tag string) Renderer {
	if rend, ok := r.renderers[tag]; ok {
		return rend
	}
	return r.renderers[FallbackType]
}

// Render dispatches the block to the renderer registered for its type tag.
func (r *Registry) Render(b Block, ctx Context) string {
	return r.Get(b.Type()).Render(b, ctx)
}
