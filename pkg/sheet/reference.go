package sheet

import (
	"fmt"

	"github.com/fennwick/sheetsmith/pkg/content"
)

// ReferencePage builds the quick reference page: turn structure, combat
// actions, weapon and spell cards, and the companion stat block when one is
// present.
type ReferencePage struct {
	Ctx *Context
	Reg *content.Registry
}

func (p *ReferencePage) Build() string {
	data := p.Ctx.Data
	rctx := content.Context{}
	reference := data.Map("reference")
	spellcasting := data.Map("spellcasting")

	header := pageHeader(
		"Quick Reference", p.Ctx.Header.Str("character_name", ""), "",
		[]headerField{
			{p.Ctx.Header.Str("class_level", ""), "Class & Level"},
			{fmt.Sprintf("+%d", p.Ctx.ProfBonus), "Proficiency Bonus"},
			{spellcasting.Str("spell_save_dc", ""), "Spell Save DC"},
		},
		true,
	)

	turn := ""
	if ts := reference.Map("turn_structure"); len(ts) > 0 {
		block := content.Block{"type": "turn_structure"}
		for k, v := range ts {
			block[k] = v
		}
		turn = p.Reg.Render(block, rctx)
	}

	combatRef := ""
	if cr := reference.Map("combat_reference"); len(cr) > 0 {
		block := content.Block{"type": "combat_reference"}
		for k, v := range cr {
			block[k] = v
		}
		combatRef = p.Reg.Render(block, rctx)
	}

	weapons := p.Reg.Render(content.Block{
		"type":    "weapon_card",
		"weapons": reference["weapons"],
	}, rctx)
	spells := p.Reg.Render(content.Block{
		"type":   "spell_card",
		"spells": reference["spells"],
	}, rctx)
	companion := p.Reg.Render(content.Block{
		"type":      "companion",
		"companion": data["companion"],
	}, rctx)

	return fmt.Sprintf(`<div class="page">%s`+
		`<div class="page4-grid">`+
		`<div class="column">%s%s`+
		`<div class="box ref-box box--flex"><div class="ref-section-title">Weapons</div>%s</div>`+
		`</div>`+
		`<div class="column">`+
		`<div class="box ref-box"><div class="ref-section-title">Spells</div>%s</div>%s`+
		`</div>`+
		`</div>`+
		`</div>`,
		header, turn, combatRef, weapons, spells, companion)
}
