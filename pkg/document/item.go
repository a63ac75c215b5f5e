package document

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/fennwick/sheetsmith/pkg/content"
	"github.com/fennwick/sheetsmith/pkg/layout"
	"github.com/fennwick/sheetsmith/pkg/styles"
)

// svgPathRe extracts the first path outline from an SVG decoration file.
var svgPathRe = regexp.MustCompile(`<path[^>]*d="([^"]*)"`)

// svgViewBoxRe extracts the viewBox of an SVG decoration file.
var svgViewBoxRe = regexp.MustCompile(`viewBox="([^"]*)"`)

// defaultViewBox is used when a decoration SVG carries no viewBox.
const defaultViewBox = "0 0 2893.32 468.16"

// ItemDocument renders a magic item card from data-driven page descriptors.
// The decorated item header and the footer appear on the first page only.
type ItemDocument struct {
	Data   content.Block
	Styles styles.Loader

	// BasePath is prefixed to relative image references.
	BasePath string
	// AssetDir is where decoration SVGs referenced by the header live.
	AssetDir string

	reg *content.Registry
}

// NewItemDocument builds an item document over raw item data.
func NewItemDocument(data content.Block, loader styles.Loader) *ItemDocument {
	return &ItemDocument{
		Data:   data,
		Styles: loader,
		reg:    newRegistry(),
	}
}

// BuildHTML renders the complete item document. The base stylesheet is
// required; the item stylesheet is layered on top when available.
func (d *ItemDocument) BuildHTML() (string, error) {
	css, err := d.Styles.Load([]string{"sheet.css"}, []string{"item.css"})
	if err != nil {
		return "", err
	}

	header := d.renderHeader()
	footer := d.renderFooter()

	var body strings.Builder
	rctx := content.Context{}
	for i, pageData := range d.Data.Blocks("pages") {
		h, f := "", ""
		if i == 0 {
			h, f = header, footer
		}
		body.WriteString(layout.PageFromMap(pageData, h, f).Render(d.reg, rctx))
	}

	name := d.Data.Map("header").Str("name", "Magic Item")
	return wrap(name+" - Magic Item", css, body.String()), nil
}

func (d *ItemDocument) renderHeader() string {
	header := d.Data.Map("header")
	name := header.Str("name", "")

	image := header.Str("image", "")
	if d.BasePath != "" && image != "" {
		image = d.BasePath + "/" + image
	}
	imageHTML := ""
	if image != "" {
		imageHTML = fmt.Sprintf(`<div class="item-image-frame">`+
			`<img src="%s" alt="%s" class="item-image">`+
			`</div>`, image, name)
	}

	subtitleHTML := ""
	if subtitle := header.Str("subtitle", ""); subtitle != "" {
		subtitleHTML = fmt.Sprintf(`<div class="item-subtitle">%s</div>`, subtitle)
	}

	stats := d.reg.Render(content.Block{
		"type":  "item_stats",
		"stats": header["stats"],
	}, content.Context{})

	return fmt.Sprintf(`<div class="item-header">%s%s`+
		`<div class="item-title-block">`+
		`<div class="item-title-group">`+
		`<div class="item-name">%s</div>%s`+
		`</div>`+
		`<div class="item-stats-row">%s</div>`+
		`</div>`+
		`</div>`,
		d.svgDecoration(header.Str("background_svg", "")), imageHTML, name, subtitleHTML, stats)
}

func (d *ItemDocument) renderFooter() string {
	footer := d.Data.Map("footer")
	return fmt.Sprintf(`<div class="item-footer">`+
		`<div>%s</div>`+
		`<div class="market-value">%s</div>`+
		`</div>`,
		footer.Str("left", ""), footer.Str("right", ""))
}

// svgDecoration loads a decoration SVG and re-emits its first path as a
// background layer. A missing or pathless file renders nothing.
func (d *ItemDocument) svgDecoration(svgPath string) string {
	if svgPath == "" {
		return ""
	}
	raw, err := os.ReadFile(filepath.Join(d.AssetDir, svgPath))
	if err != nil {
		return ""
	}

	pathMatch := svgPathRe.FindSubmatch(raw)
	if pathMatch == nil {
		return ""
	}

	viewBox := defaultViewBox
	if m := svgViewBoxRe.FindSubmatch(raw); m != nil {
		viewBox = string(m[1])
	}

	return fmt.Sprintf(`<svg class="header-bg-decoration" viewBox="%s" preserveAspectRatio="xMidYMid slice"><path d="%s"/></svg>`,
		viewBox, pathMatch[1])
}
