package content

import (
	"fmt"
	"strings"
)

// quoteRenderer renders a lore quote with optional attribution.
type quoteRenderer struct{}

func (quoteRenderer) Type() string { return "quote" }

func (quoteRenderer) Render(b Block, _ Context) string {
	attr := ""
	if a := b.Str("attribution", ""); a != "" {
		attr = fmt.Sprintf(`<div class="lore-attribution">%s</div>`, a)
	}
	return fmt.Sprintf(`<div class="lore-quote">%s%s</div>`, b.Str("text", ""), attr)
}

// comparisonRenderer renders before → after stat rows.
type comparisonRenderer struct{}

func (comparisonRenderer) Type() string { return "comparison" }

func (comparisonRenderer) Render(b Block, _ Context) string {
	var buf strings.Builder
	for _, item := range b.Blocks("items") {
		fmt.Fprintf(&buf, `<div class="stat-comparison">`+
			`<div class="stat-before">%s</div>`+
			`<div class="stat-arrow">→</div>`+
			`<div class="stat-after">%s</div>`+
			`</div>`,
			item.Str("before", ""), item.Str("after", ""))
	}
	return buf.String()
}

// talesRenderer renders title + description pairs (legendary tales).
type talesRenderer struct{}

func (talesRenderer) Type() string { return "tales" }

func (talesRenderer) Render(b Block, _ Context) string {
	var buf strings.Builder
	buf.WriteString(`<div class="section-content tales-content">`)
	for _, item := range b.Blocks("items") {
		fmt.Fprintf(&buf, `<div class="legendary-tale">`+
			`<span class="tale-title">%s</span>`+
			`<span class="tale-desc">%s</span>`+
			`</div>`,
			item.Str("title", ""), item.Str("desc", ""))
	}
	buf.WriteString("</div>")
	return buf.String()
}

// subsectionsRenderer renders named groups each with a bullet list.
type subsectionsRenderer struct{}

func (subsectionsRenderer) Type() string { return "subsections" }

func (subsectionsRenderer) Render(b Block, _ Context) string {
	var buf strings.Builder
	for _, item := range b.Blocks("items") {
		writeAbilityBlock(&buf, item, "")
	}
	return buf.String()
}

// writeAbilityBlock writes one named group with bullets, shared by the
// subsections and synergy renderers.
func writeAbilityBlock(buf *strings.Builder, item Block, extraClass string) {
	class := "ability-block"
	if extraClass != "" {
		class += " " + extraClass
	}
	fmt.Fprintf(buf, `<div class="%s"><div class="ability-name">%s</div><ul class="ability-bullets">`,
		class, item.Str("name", ""))
	for _, bullet := range item.StrList("bullets") {
		fmt.Fprintf(buf, "<li>%s</li>", MarkdownBold(bullet))
	}
	buf.WriteString("</ul></div>")
}

// synergyRenderer renders the companion-synergy composite: a header, a set of
// comparisons delegated to the comparison renderer through the registry, and
// trailing subsections.
type synergyRenderer struct {
	reg *Registry
}

func (*synergyRenderer) Type() string { return "synergy" }

func (r *synergyRenderer) Render(b Block, ctx Context) string {
	header := b.Map("header")

	var buf strings.Builder
	fmt.Fprintf(&buf, `<div class="synergy-header">`+
		`<div class="synergy-icon">%s</div>`+
		`<div><div class="synergy-title">%s</div>`+
		`<div class="synergy-subtitle">%s</div></div>`+
		`</div>`,
		header.Str("icon", ""), header.Str("title", ""), header.Str("subtitle", ""))

	buf.WriteString(r.reg.Render(Block{
		"type":  "comparison",
		"items": b["comparisons"],
	}, ctx))

	for _, item := range b.Blocks("subsections") {
		writeAbilityBlock(&buf, item, "ability-block--spaced")
	}
	return buf.String()
}

// mixedRenderer dispatches an ordered sequence of nested blocks back through
// the registry. It is the only recursive entry point; nesting past
// MaxMixedDepth renders as an empty string to bound cyclic input.
type mixedRenderer struct {
	reg *Registry
}

func (*mixedRenderer) Type() string { return "mixed" }

func (r *mixedRenderer) Render(b Block, ctx Context) string {
	if ctx.Depth() >= MaxMixedDepth {
		return ""
	}
	var buf strings.Builder
	for _, block := range b.Blocks("blocks") {
		buf.WriteString(r.reg.Render(block, ctx.Deeper()))
	}
	return buf.String()
}
