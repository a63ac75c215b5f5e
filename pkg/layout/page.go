package layout

import (
	"fmt"
	"strings"

	"github.com/fennwick/sheetsmith/pkg/content"
)

// Section is a titled content box placed into a page column. Variant "lore"
// adds the description-box styling.
type Section struct {
	Content  content.Block
	Title    string
	Variant  string // default, lore, highlight
	FlexGrow bool
	Column   int // 1 or 2
	Class    string
	Style    string
}

// NormalizeColumn clamps out-of-range column indexes to the first column.
func (s *Section) NormalizeColumn() {
	if s.Column != 1 && s.Column != 2 {
		s.Column = 1
	}
}

func (s *Section) Render(reg *content.Registry, ctx content.Context) string {
	classes := []string{"box", "section-box"}
	if s.Variant == "lore" {
		classes = append(classes, "description-box")
	}
	if s.FlexGrow {
		classes = append(classes, "box--flex")
	}
	if s.Class != "" {
		classes = append(classes, s.Class)
	}

	titleHTML := ""
	if s.Title != "" {
		titleHTML = fmt.Sprintf(`<div class="section-title">%s</div>`, s.Title)
	}

	return fmt.Sprintf(`<div class="%s"%s>%s%s</div>`,
		strings.Join(classes, " "), styleAttr(s.Style), titleHTML, reg.Render(s.Content, ctx))
}

// SectionFromMap builds a Section from a page-descriptor map. The column
// index is clamped here so downstream partitioning never sees a stray value.
func SectionFromMap(data content.Block) *Section {
	s := &Section{
		Content:  data.Map("content"),
		Title:    data.Str("title", ""),
		Variant:  data.Str("variant", "default"),
		FlexGrow: data.Bool("flex_grow"),
		Column:   data.Int("column", 1),
		Class:    data.Str("class", ""),
		Style:    data.Str("style", ""),
	}
	s.NormalizeColumn()
	return s
}

// Column is an ordered list of sections rendered into one container div.
type Column struct {
	Sections []*Section
	Class    string // defaults to "column"
	Style    string
}

// AddSection appends a section to the column.
func (c *Column) AddSection(s *Section) {
	c.Sections = append(c.Sections, s)
}

func (c *Column) Render(reg *content.Registry, ctx content.Context) string {
	class := c.Class
	if class == "" {
		class = "column"
	}
	var buf strings.Builder
	for _, s := range c.Sections {
		buf.WriteString(s.Render(reg, ctx))
	}
	return fmt.Sprintf(`<div class="%s"%s>%s</div>`, class, styleAttr(c.Style), buf.String())
}

// Page is a single printed page. Sections are partitioned by their column
// index into two content columns, preserving insertion order within each.
// A one-column page keeps all sections in a single full-width column.
type Page struct {
	Sections []*Section
	Columns  int // 1 or 2 (default)
	Header   string
	Footer   string
	Class    string // defaults to "page"
}

// AddSection appends a section to the page, clamping its column index.
func (p *Page) AddSection(s *Section) {
	s.NormalizeColumn()
	p.Sections = append(p.Sections, s)
}

func (p *Page) Render(reg *content.Registry, ctx content.Context) string {
	class := p.Class
	if class == "" {
		class = "page"
	}

	var contentHTML string
	if p.Columns == 1 {
		all := Column{Sections: p.Sections, Class: "content-column"}
		contentHTML = fmt.Sprintf(`<div class="item-content" style="grid-template-columns: 1fr;">%s</div>`,
			all.Render(reg, ctx))
	} else {
		var col1, col2 Column
		col1.Class, col2.Class = "content-column", "content-column"
		for _, s := range p.Sections {
			if s.Column == 2 {
				col2.AddSection(s)
			} else {
				col1.AddSection(s)
			}
		}
		contentHTML = fmt.Sprintf(`<div class="item-content">%s%s</div>`,
			col1.Render(reg, ctx), col2.Render(reg, ctx))
	}

	return fmt.Sprintf(`<div class="%s">%s%s%s</div>`, class, p.Header, contentHTML, p.Footer)
}

// PageFromMap builds a Page from a page-descriptor map with a layout map
// (columns) and a sections list. Header and footer HTML are injected
// verbatim.
func PageFromMap(data content.Block, header, footer string) *Page {
	layoutSpec := data.Map("layout")
	p := &Page{
		Columns: layoutSpec.Int("columns", 2),
		Header:  header,
		Footer:  footer,
	}
	for _, s := range data.Blocks("sections") {
		p.AddSection(SectionFromMap(s))
	}
	return p
}
