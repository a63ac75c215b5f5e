package content

import "regexp"

// Renderer converts one content-block shape into an HTML fragment.
// Render must be a pure function of its inputs: no I/O, no mutation of the
// block, and tolerant of every field being absent.
type Renderer interface {
	// Type returns the type tag this renderer is registered under.
	Type() string
	// Render converts the block to an HTML fragment.
	Render(b Block, ctx Context) string
}

// Context carries per-render state through the dispatch tree. The zero value
// is ready to use.
type Context struct {
	// Vars holds caller-supplied values renderers may consult (ability
	// modifiers, header fields). Most renderers ignore it.
	Vars map[string]any

	// depth tracks mixed-block nesting for the recursion guard.
	depth int
}

// Deeper returns a copy of the context one nesting level down.
func (c Context) Deeper() Context {
	c.depth++
	return c
}

// Depth reports the current mixed-block nesting level.
func (c Context) Depth() int { return c.depth }

var boldRe = regexp.MustCompile(`\*\*([^*]+)\*\*`)
var italicRe = regexp.MustCompile(`\*([^*]+)\*`)

// MarkdownBold converts the **bold** markdown subset to <strong> tags.
func MarkdownBold(text string) string {
	return boldRe.ReplaceAllString(text, "<strong>$1</strong>")
}

// MarkdownItalic converts the *italic* markdown subset to <em> tags.
func MarkdownItalic(text string) string {
	return italicRe.ReplaceAllString(text, "<em>$1</em>")
}

// FormatModifier formats a signed modifier value ("+2", "-1").
func FormatModifier(value int) string {
	if value >= 0 {
		return "+" + Stringify(value)
	}
	return Stringify(value)
}
