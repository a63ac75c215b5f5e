package sheet

import (
	"fmt"
	"strings"
)

// brand is the banner line printed above the name box on every page header.
const brand = "Dungeons & Dragons"

type headerField struct {
	value string
	label string
}

// pageHeader renders the shared page header chrome: brand line, name box with
// optional portrait, and a grid of labeled info fields on the right. Compact
// headers use a single three-column row.
func pageHeader(nameValue, nameLabel, portrait string, fields []headerField, compact bool) string {
	portraitHTML := ""
	if portrait != "" {
		portraitHTML = fmt.Sprintf(`<div class="portrait-frame">`+
			`<img src="%s" alt="Character Portrait" class="portrait-img">`+
			`</div>`, portrait)
	}

	nameHTML := fmt.Sprintf(`<div class="box box--label-bottom header-name">`+
		`<div class="value--large">%s</div>`+
		`<div class="box__label">%s</div>`+
		`</div>`, nameValue, nameLabel)

	var left string
	if portraitHTML != "" {
		left = fmt.Sprintf(`<div class="header-brand">%s</div><div class="header-name-row">%s%s</div>`,
			brand, portraitHTML, nameHTML)
	} else {
		left = fmt.Sprintf(`<div class="header-brand">%s</div>%s`, brand, nameHTML)
	}

	var right strings.Builder
	for _, f := range fields {
		fmt.Fprintf(&right, `<div class="box box--label-bottom box--centered info-field">`+
			`<div class="value--medium">%s</div>`+
			`<div class="box__label">%s</div>`+
			`</div>`, f.value, f.label)
	}

	rightStyle := ""
	if compact {
		rightStyle = ` style="grid-template-columns: repeat(3, 1fr); grid-template-rows: 1fr;"`
	}

	return fmt.Sprintf(`<div class="page-header">`+
		`<div class="header-left">%s</div>`+
		`<div class="header-right"%s>%s</div>`+
		`</div>`, left, rightStyle, right.String())
}
