package character

import (
	"fmt"
	"strings"

	"github.com/fennwick/sheetsmith/pkg/content"
)

// abilityOrder is the fixed stat-block ordering for the companion abilities.
var abilityOrder = []string{"str", "dex", "con", "int", "wis", "cha"}

// companionRenderer renders a full companion stat block: header with optional
// portrait, AC/HP/Speed row, six ability boxes with computed modifiers,
// skills/senses, traits, actions, and beast master commands. An absent or
// empty companion map renders nothing.
type companionRenderer struct{}

func (companionRenderer) Type() string { return "companion" }

func (companionRenderer) Render(b content.Block, _ content.Context) string {
	companion := b.Map("companion")
	if len(companion) == 0 {
		return ""
	}

	abilities := companion.Map("abilities")
	var abilityBuf strings.Builder
	for _, key := range abilityOrder {
		score := abilities.Int(key, 10)
		fmt.Fprintf(&abilityBuf, `<div class="companion-ability">`+
			`<div class="companion-ability-name">%s</div>`+
			`<div class="companion-ability-score">%d</div>`+
			`<div class="companion-ability-mod">(%s)</div>`+
			`</div>`,
			strings.ToUpper(key), score, content.FormatModifier(abilityModifier(score)))
	}

	var traitBuf strings.Builder
	for _, t := range companion.Blocks("traits") {
		fmt.Fprintf(&traitBuf, `<div class="companion-trait">`+
			`<span class="companion-trait-name">%s.</span>`+
			`<span class="companion-trait-desc">%s</span>`+
			`</div>`,
			t.Str("name", ""), t.Str("description", ""))
	}

	var actionBuf strings.Builder
	for _, a := range companion.Blocks("actions") {
		fmt.Fprintf(&actionBuf, `<div class="companion-action">`+
			`<span class="companion-action-name">%s.</span>`+
			`<span class="companion-action-desc">%s</span>`+
			`</div>`,
			a.Str("name", ""), a.Str("description", ""))
	}

	var commandBuf strings.Builder
	for _, cmd := range companion.StrList("commands") {
		fmt.Fprintf(&commandBuf, "<li>%s</li>", cmd)
	}

	image := companion.Str("image", "")
	imageHTML := ""
	if image != "" {
		imageHTML = fmt.Sprintf(`<div class="companion-portrait">`+
			`<img src="%s" alt="%s" class="companion-img">`+
			`</div>`,
			image, companion.Str("name", "Companion"))
	}

	return fmt.Sprintf(`<div class="box companion-block box--flex">`+
		`<div class="companion-header-row">`+
		`<div class="companion-header">`+
		`<div class="companion-name">%s</div>`+
		`<div class="companion-type">%s %s</div>`+
		`</div>%s`+
		`</div>`+
		`<div class="companion-stats-row">`+
		`<div class="companion-stat"><span class="companion-stat-label">AC</span> %s</div>`+
		`<div class="companion-stat"><span class="companion-stat-label">HP</span> %s <span class="companion-hp-notes">(%s)</span></div>`+
		`<div class="companion-stat"><span class="companion-stat-label">Speed</span> %s</div>`+
		`</div>`+
		`<div class="companion-abilities">%s</div>`+
		`<div class="companion-stats-row">`+
		`<div class="companion-stat"><span class="companion-stat-label">Skills</span> %s</div>`+
		`<div class="companion-stat"><span class="companion-stat-label">Senses</span> %s</div>`+
		`</div>`+
		`<div class="companion-section">`+
		`<div class="companion-section-title">Traits</div>%s`+
		`</div>`+
		`<div class="companion-section">`+
		`<div class="companion-section-title">Actions</div>%s`+
		`</div>`+
		`<div class="companion-section">`+
		`<div class="companion-section-title">Beast Master Commands</div>`+
		`<ul class="companion-commands">%s</ul>`+
		`</div>`+
		`</div>`,
		companion.Str("name", ""), companion.Str("size", ""), companion.Str("type", ""),
		imageHTML,
		companion.Str("armor_class", ""),
		companion.Str("hit_points", ""), companion.Str("hp_notes", ""),
		companion.Str("speed", ""),
		abilityBuf.String(),
		companion.Str("skills", ""), companion.Str("senses", ""),
		traitBuf.String(), actionBuf.String(), commandBuf.String())
}

// abilityModifier computes (score-10)/2 with flooring, so a score of 7 gives
// -2 rather than the truncated -1.
func abilityModifier(score int) int {
	d := score - 10
	if d < 0 {
		d -= 1
	}
	return d / 2
}
