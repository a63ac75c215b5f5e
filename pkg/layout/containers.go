package layout

import (
	"fmt"
	"strings"

	"github.com/fennwick/sheetsmith/pkg/content"
)

// Node is anything that can render itself to HTML given a renderer registry.
type Node interface {
	Render(reg *content.Registry, ctx content.Context) string
}

// renderChild resolves one child of a container: layout nodes render
// recursively, strings pass through verbatim, content blocks dispatch
// through the registry. Anything else renders nothing.
func renderChild(child any, reg *content.Registry, ctx content.Context) string {
	switch c := child.(type) {
	case Node:
		return c.Render(reg, ctx)
	case string:
		return c
	case content.Block:
		return reg.Render(c, ctx)
	case map[string]any:
		return reg.Render(content.Block(c), ctx)
	default:
		return ""
	}
}

func renderChildren(children []any, reg *content.Registry, ctx content.Context) string {
	var buf strings.Builder
	for _, child := range children {
		buf.WriteString(renderChild(child, reg, ctx))
	}
	return buf.String()
}

func styleAttr(style string) string {
	if style == "" {
		return ""
	}
	return fmt.Sprintf(` style="%s"`, style)
}

// Row is a horizontal flex container.
type Row struct {
	Children []any
	Gap      string // none, xs, sm, md (default), lg
	Stretch  bool
	Center   bool
	Wrap     bool
	Class    string
	Style    string
}

// Add appends a child and returns the row for chaining.
func (r *Row) Add(child any) *Row {
	r.Children = append(r.Children, child)
	return r
}

func (r *Row) Render(reg *content.Registry, ctx content.Context) string {
	classes := []string{"row"}
	switch r.Gap {
	case "xs", "sm", "lg":
		classes = append(classes, "row--gap-"+r.Gap)
	case "none":
		classes = append(classes, "row--no-gap")
	}
	if r.Stretch {
		classes = append(classes, "row--stretch")
	}
	if r.Center {
		classes = append(classes, "row--center")
	}
	if r.Wrap {
		classes = append(classes, "row--wrap")
	}
	if r.Class != "" {
		classes = append(classes, r.Class)
	}
	return fmt.Sprintf(`<div class="%s"%s>%s</div>`,
		strings.Join(classes, " "), styleAttr(r.Style), renderChildren(r.Children, reg, ctx))
}

// Col is a vertical flex container and flex child. Flex 0 means auto width,
// 1 to 3 select a flex ratio class.
type Col struct {
	Children []any
	Flex     int    // 0 (auto) or 1..3
	Gap      string // none, xs, sm (default), md, lg
	Class    string
	Style    string
}

// Add appends a child and returns the column for chaining.
func (c *Col) Add(child any) *Col {
	c.Children = append(c.Children, child)
	return c
}

func (c *Col) Render(reg *content.Registry, ctx content.Context) string {
	classes := []string{"col"}
	if c.Flex >= 1 && c.Flex <= 3 {
		classes = append(classes, fmt.Sprintf("col--%d", c.Flex))
	}
	switch c.Gap {
	case "xs":
		classes = append(classes, "col--gap-xs")
	case "md":
		classes = append(classes, "col--gap-md")
	case "none":
		classes = append(classes, "col--no-gap")
	}
	if c.Class != "" {
		classes = append(classes, c.Class)
	}
	return fmt.Sprintf(`<div class="%s"%s>%s</div>`,
		strings.Join(classes, " "), styleAttr(c.Style), renderChildren(c.Children, reg, ctx))
}

// Grid is a CSS grid container with 2, 3, or 4 columns.
type Grid struct {
	Children []any
	Columns  int    // 2 (default), 3, or 4
	Gap      string // sm, md (default), lg
	Class    string
	Style    string
}

// Add appends a child and returns the grid for chaining.
func (g *Grid) Add(child any) *Grid {
	g.Children = append(g.Children, child)
	return g
}

func (g *Grid) Render(reg *content.Registry, ctx content.Context) string {
	cols := g.Columns
	if cols < 2 || cols > 4 {
		cols = 2
	}
	classes := []string{"grid", fmt.Sprintf("grid--%dcol", cols)}
	switch g.Gap {
	case "sm":
		classes = append(classes, "grid--gap-sm")
	case "lg":
		classes = append(classes, "grid--gap-lg")
	}
	if g.Class != "" {
		classes = append(classes, g.Class)
	}
	return fmt.Sprintf(`<div class="%s"%s>%s</div>`,
		strings.Join(classes, " "), styleAttr(g.Style), renderChildren(g.Children, reg, ctx))
}
