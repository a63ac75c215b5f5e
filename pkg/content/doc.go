// Package content implements the content-block model and the renderer
// registry at the heart of sheetsmith.
//
// A content block is a tagged record decoded from JSON: a map with a "type"
// discriminator and type-specific fields. Each Renderer converts exactly one
// block shape into an HTML fragment. The Registry maps type tags to renderer
// instances and dispatches blocks to them.
//
// # Dispatch
//
// Dispatch is deliberately forgiving: an unknown type tag resolves to the
// "text" renderer and missing fields read as zero values, so a partially
// specified document still renders instead of aborting the pipeline.
//
//	reg := content.NewRegistry()
//	html := reg.Render(content.Block{"type": "bullets", "items": []any{"a"}}, content.Context{})
//
// Domain-specific renderers (ability scores, spell levels, ...) live in the
// character subpackage and are added with character.Register(reg).
package content
