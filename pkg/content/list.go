package content

import (
	"fmt"
	"strings"
)

// bulletsRenderer renders a bullet list with the markdown-bold subset applied
// to each item.
type bulletsRenderer struct{}

func (bulletsRenderer) Type() string { return "bullets" }

func (bulletsRenderer) Render(b Block, _ Context) string {
	var buf strings.Builder
	fmt.Fprintf(&buf, `<ul class="%s">`, b.Str("class", "ability-bullets"))
	for _, item := range b.StrList("items") {
		fmt.Fprintf(&buf, "<li>%s</li>", MarkdownBold(item))
	}
	buf.WriteString("</ul>")
	return buf.String()
}

// styledListRenderer renders a plain styled list (equipment, proficiencies).
// An empty item list still yields a well-formed empty <ul> container.
type styledListRenderer struct{}

func (styledListRenderer) Type() string { return "styled_list" }

func (styledListRenderer) Render(b Block, _ Context) string {
	var buf strings.Builder
	fmt.Fprintf(&buf, `<ul class="%s">`, b.Str("class", "styled-list"))
	for _, item := range b.StrList("items") {
		fmt.Fprintf(&buf, "<li>%s</li>", item)
	}
	buf.WriteString("</ul>")
	return buf.String()
}

// propertiesRenderer renders icon + name + description property rows.
type propertiesRenderer struct{}

func (propertiesRenderer) Type() string { return "properties" }

func (propertiesRenderer) Render(b Block, _ Context) string {
	var buf strings.Builder
	buf.WriteString(`<ul class="property-list">`)
	for _, item := range b.Blocks("items") {
		fmt.Fprintf(&buf, `<li class="property-item">`+
			`<div class="property-icon">%s</div>`+
			`<div class="property-content">`+
			`<div class="property-name">%s</div>`+
			`<div class="property-desc">%s</div>`+
			`</div></li>`,
			item.Str("icon", ""), item.Str("name", ""), item.Str("desc", ""))
	}
	buf.WriteString("</ul>")
	return buf.String()
}
