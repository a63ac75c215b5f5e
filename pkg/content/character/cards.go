package character

import (
	"fmt"
	"strings"

	"github.com/fennwick/sheetsmith/pkg/content"
)

// weaponCardRenderer renders weapon reference cards.
type weaponCardRenderer struct{}

func (weaponCardRenderer) Type() string { return "weapon_card" }

func (weaponCardRenderer) Render(b content.Block, _ content.Context) string {
	var buf strings.Builder
	for _, w := range b.Blocks("weapons") {
		fmt.Fprintf(&buf, `<div class="weapon-card ref-card">`+
			`<div class="weapon-name">%s</div>`+
			`<div class="weapon-type">%s</div>`+
			`<div class="weapon-stats"><span class="weapon-damage">%s</span></div>`+
			`<div class="weapon-properties">%s</div>`+
			`<div class="weapon-notes">%s</div>`+
			`</div>`,
			w.Str("name", ""), w.Str("type", ""), w.Str("damage", ""),
			w.Str("properties", ""), w.Str("notes", ""))
	}
	return buf.String()
}

// spellCardRenderer renders spell reference cards with casting metadata.
type spellCardRenderer struct{}

func (spellCardRenderer) Type() string { return "spell_card" }

func (spellCardRenderer) Render(b content.Block, _ content.Context) string {
	var buf strings.Builder
	for _, s := range b.Blocks("spells") {
		fmt.Fprintf(&buf, `<div class="spell-card ref-card">`+
			`<div class="spell-name">%s <span class="spell-level-tag">(%s)</span></div>`+
			`<div class="spell-meta">`+
			`<span><span class="spell-meta-label">Cast:</span> %s</span>`+
			`<span><span class="spell-meta-label">Range:</span> %s</span>`+
			`<span><span class="spell-meta-label">Duration:</span> %s</span>`+
			`</div>`+
			`<div class="spell-desc">%s</div>`+
			`</div>`,
			s.Str("name", ""), s.Str("level", ""), s.Str("casting_time", ""),
			s.Str("range", ""), s.Str("duration", ""), s.Str("description", ""))
	}
	return buf.String()
}

// featureCardRenderer renders class/racial feature reference cards.
type featureCardRenderer struct{}

func (featureCardRenderer) Type() string { return "feature_card" }

func (featureCardRenderer) Render(b content.Block, _ content.Context) string {
	var buf strings.Builder
	for _, f := range b.Blocks("features") {
		fmt.Fprintf(&buf, `<div class="feature-card ref-card">`+
			`<div class="feature-name">%s</div>`+
			`<div class="feature-desc">%s</div>`+
			`</div>`,
			f.Str("name", ""), f.Str("description", ""))
	}
	return buf.String()
}

// turnStructureRenderer renders the turn structure reference box with its
// fixed trailing reaction row.
type turnStructureRenderer struct{}

func (turnStructureRenderer) Type() string { return "turn_structure" }

func (turnStructureRenderer) Render(b content.Block, _ content.Context) string {
	var buf strings.Builder
	fmt.Fprintf(&buf, `<div class="box ref-box turn-box"><div class="ref-section-title">%s</div>`,
		b.Str("title", "Your Turn"))
	for _, p := range b.Blocks("phases") {
		fmt.Fprintf(&buf, `<div class="turn-phase">`+
			`<span class="turn-phase-name">%s</span>`+
			`<span class="turn-phase-desc">%s</span>`+
			`</div>`,
			p.Str("name", ""), p.Str("desc", ""))
	}
	fmt.Fprintf(&buf, `<div class="turn-reaction">`+
		`<span class="turn-phase-name">Reaction</span>`+
		`<span class="turn-phase-desc">%s</span>`+
		`</div></div>`,
		b.Str("reaction", ""))
	return buf.String()
}

// combatReferenceRenderer renders the actions/conditions/cover quick
// reference box.
type combatReferenceRenderer struct{}

func (combatReferenceRenderer) Type() string { return "combat_reference" }

func (combatReferenceRenderer) Render(b content.Block, _ content.Context) string {
	var buf strings.Builder
	buf.WriteString(`<div class="box ref-box combat-ref-box">`)

	buf.WriteString(`<div class="ref-section-title">Actions</div>`)
	for _, a := range b.Blocks("actions") {
		fmt.Fprintf(&buf, `<div class="combat-action">`+
			`<span class="combat-action-name">%s</span>`+
			`<span class="combat-action-desc">%s</span>`+
			`</div>`,
			a.Str("name", ""), a.Str("desc", ""))
	}

	buf.WriteString(`<div class="ref-section-title ref-section-title--spaced">Conditions</div>`)
	for _, c := range b.Blocks("conditions_quick") {
		fmt.Fprintf(&buf, `<div class="combat-condition">`+
			`<span class="combat-condition-name">%s</span>`+
			`<span class="combat-condition-desc">%s</span>`+
			`</div>`,
			c.Str("name", ""), c.Str("desc", ""))
	}

	buf.WriteString(`<div class="ref-section-title ref-section-title--spaced">Cover</div>`)
	for _, c := range b.Blocks("cover") {
		fmt.Fprintf(&buf, `<div class="combat-cover">`+
			`<span class="combat-cover-type">%s</span>`+
			`<span class="combat-cover-bonus">%s</span>`+
			`</div>`,
			c.Str("type", ""), c.Str("bonus", ""))
	}

	buf.WriteString("</div>")
	return buf.String()
}
