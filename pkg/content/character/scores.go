package character

import (
	"fmt"
	"strings"

	"github.com/fennwick/sheetsmith/pkg/content"
)

// abilityScoresRenderer renders the six ability score boxes.
type abilityScoresRenderer struct{}

func (abilityScoresRenderer) Type() string { return "ability_scores" }

func (abilityScoresRenderer) Render(b content.Block, _ content.Context) string {
	var buf strings.Builder
	buf.WriteString(`<div class="ability-block">`)
	for _, a := range b.Blocks("abilities") {
		fmt.Fprintf(&buf, `<div class="box ability-score">`+
			`<div class="box__label">%s</div>`+
			`<div class="value--large">%d</div>`+
			`<div class="ability-modifier">%s</div>`+
			`</div>`,
			a.Str("name", ""), a.Int("score", 10), a.Str("modifier", "+0"))
	}
	buf.WriteString("</div>")
	return buf.String()
}

// savingThrowsRenderer renders saving throw rows with proficiency circles.
type savingThrowsRenderer struct{}

func (savingThrowsRenderer) Type() string { return "saving_throws" }

func (savingThrowsRenderer) Render(b content.Block, _ content.Context) string {
	var buf strings.Builder
	for _, s := range b.Blocks("saves") {
		fmt.Fprintf(&buf, `<div class="save-row">`+
			`<div class="prof-circle %s"></div>`+
			`<div class="save-mod">%s</div>`+
			`<div class="save-name">%s</div>`+
			`</div>`,
			filled(s.Bool("proficient")), s.Str("modifier", "+0"), s.Str("name", ""))
	}
	return buf.String()
}

// skillsRenderer renders skill rows with proficiency circles and the
// governing ability abbreviation.
type skillsRenderer struct{}

func (skillsRenderer) Type() string { return "skills" }

func (skillsRenderer) Render(b content.Block, _ content.Context) string {
	var buf strings.Builder
	for _, s := range b.Blocks("skills") {
		fmt.Fprintf(&buf, `<div class="skill-row">`+
			`<div class="prof-circle %s"></div>`+
			`<div class="skill-mod">%s</div>`+
			`<div class="skill-name">%s <span class="skill-ability">(%s)</span></div>`+
			`</div>`,
			filled(s.Bool("proficient")), s.Str("modifier", "+0"),
			s.Str("name", ""), s.Str("ability", ""))
	}
	return buf.String()
}

// filled maps a proficiency flag to the CSS class of a filled circle.
func filled(proficient bool) string {
	if proficient {
		return "filled"
	}
	return ""
}
