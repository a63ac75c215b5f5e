package character

import (
	"fmt"
	"strings"

	"github.com/fennwick/sheetsmith/pkg/content"
)

// galleryRenderer renders an image gallery row. No images, no output.
type galleryRenderer struct{}

func (galleryRenderer) Type() string { return "gallery" }

func (galleryRenderer) Render(b content.Block, _ content.Context) string {
	images := b.StrList("images")
	if len(images) == 0 {
		return ""
	}
	var buf strings.Builder
	buf.WriteString(`<div class="gallery-row">`)
	for _, src := range images {
		fmt.Fprintf(&buf, `<div class="gallery-item"><img src="%s" alt="Character Art" class="gallery-img"></div>`, src)
	}
	buf.WriteString("</div>")
	return buf.String()
}

// notesRenderer renders an empty lined notes box.
type notesRenderer struct{}

func (notesRenderer) Type() string { return "notes" }

func (notesRenderer) Render(b content.Block, _ content.Context) string {
	return fmt.Sprintf(`<div class="box box--label-top notes-box box--flex">`+
		`<div class="box__label">%s</div>`+
		`<div class="notes-lines"></div>`+
		`</div>`,
		b.Str("title", "Notes"))
}

// traitBoxRenderer renders a labeled personality trait box.
type traitBoxRenderer struct{}

func (traitBoxRenderer) Type() string { return "trait_box" }

func (traitBoxRenderer) Render(b content.Block, _ content.Context) string {
	return fmt.Sprintf(`<div class="box box--label-bottom trait-box">`+
		`<div class="trait-content">%s</div>`+
		`<div class="box__label">%s</div>`+
		`</div>`,
		b.Str("text", ""), b.Str("label", ""))
}

// itemStatsRenderer renders label/value stat rows for item headers. Each stat
// may carry an extra CSS class on its value.
type itemStatsRenderer struct{}

func (itemStatsRenderer) Type() string { return "item_stats" }

func (itemStatsRenderer) Render(b content.Block, _ content.Context) string {
	var buf strings.Builder
	for _, s := range b.Blocks("stats") {
		fmt.Fprintf(&buf, `<div class="item-stat">`+
			`<span class="item-stat-label">%s</span>`+
			`<span class="item-stat-value %s">%s</span>`+
			`</div>`,
			s.Str("label", ""), s.Str("class", ""), s.Str("value", ""))
	}
	return buf.String()
}
