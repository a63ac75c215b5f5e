package sheet

import (
	"fmt"

	"github.com/fennwick/sheetsmith/pkg/content"
)

// BackgroundPage builds the background page: appearance fields in the header,
// appearance and backstory prose, allies, additional features, treasure, and
// a lined notes area across the bottom.
type BackgroundPage struct {
	Ctx *Context
	Reg *content.Registry
}

func (p *BackgroundPage) Build() string {
	data := p.Ctx.Data
	rctx := content.Context{}
	appearance := data.Map("appearance")
	allies := data.Map("allies_organizations")

	header := pageHeader(
		p.Ctx.Header.Str("character_name", ""), "Character Name", "",
		[]headerField{
			{appearance.Str("age", ""), "Age"},
			{appearance.Str("height", ""), "Height"},
			{appearance.Str("weight", ""), "Weight"},
			{appearance.Str("eyes", ""), "Eyes"},
			{appearance.Str("skin", ""), "Skin"},
			{appearance.Str("hair", ""), "Hair"},
		},
		false,
	)

	paragraphs := func(text string) string {
		return p.Reg.Render(content.Block{
			"type":  "paragraphs",
			"text":  text,
			"class": "text-content",
		}, rctx)
	}
	styledList := func(items any) string {
		return p.Reg.Render(content.Block{
			"type":  "styled_list",
			"items": items,
		}, rctx)
	}

	left := fmt.Sprintf(`<div class="column">`+
		`<div class="box box--label-top large-box" style="min-height: 45mm;">`+
		`<div class="box__label">Character Appearance</div>`+
		`<div class="large-box-content">%s</div>`+
		`</div>`+
		`<div class="box box--label-top large-box box--flex">`+
		`<div class="box__label">Character Backstory</div>`+
		`<div class="large-box-content">%s</div>`+
		`</div>`+
		`</div>`,
		paragraphs(data.Str("character_appearance_description", "")),
		paragraphs(data.Str("backstory", "")))

	right := fmt.Sprintf(`<div class="column">`+
		`<div class="box box--label-top large-box" style="min-height: 60mm;">`+
		`<div class="box__label">Allies & Organizations</div>`+
		`<div class="allies-name">%s</div>`+
		`<div class="large-box-content">%s</div>`+
		`</div>`+
		`<div class="box box--label-top large-box">`+
		`<div class="box__label">Additional Features & Traits</div>`+
		`<div class="large-box-content">%s</div>`+
		`</div>`+
		`<div class="box box--label-top large-box box--flex">`+
		`<div class="box__label">Treasure</div>`+
		`<div class="large-box-content">%s</div>`+
		`</div>`+
		`</div>`,
		allies.Str("name", ""),
		paragraphs(allies.Str("description", "")),
		styledList(data["additional_features_traits"]),
		styledList(data["treasure"]))

	return fmt.Sprintf(`<div class="page">%s`+
		`<div class="page2-content">`+
		`<div class="page2-columns">%s%s</div>`+
		`<div class="page2-notes-row">`+
		`<div class="box box--label-top large-box notes-box" style="min-height: 110mm;">`+
		`<div class="box__label">Notes</div>`+
		`<div class="notes-lines"></div>`+
		`</div>`+
		`</div>`+
		`</div>`+
		`</div>`,
		header, left, right)
}
