package sheet

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fennwick/sheetsmith/pkg/content"
)

// SpellcastingPage builds the spellcasting page: class and ability header,
// the cantrip box, spell levels 1 through 9 (absent levels render with zero
// slots and empty rows), and two notes boxes.
type SpellcastingPage struct {
	Ctx *Context
	Reg *content.Registry
}

func (p *SpellcastingPage) Build() string {
	rctx := content.Context{}
	spellcasting := p.Ctx.Data.Map("spellcasting")
	spells := spellcasting.Map("spells")

	header := pageHeader(
		spellcasting.Str("class", ""), "Spellcasting Class", "",
		[]headerField{
			{spellcasting.Str("ability", ""), "Spellcasting Ability"},
			{spellcasting.Str("spell_save_dc", ""), "Spell Save DC"},
			{spellcasting.Str("spell_attack_bonus", ""), "Spell Attack Bonus"},
		},
		true,
	)

	var cantrips strings.Builder
	for _, c := range spellcasting.StrList("cantrips") {
		fmt.Fprintf(&cantrips, `<div class="spell-item"><span>%s</span></div>`, c)
	}
	cantripBox := fmt.Sprintf(`<div class="box spell-level-box cantrip-box">`+
		`<div class="spell-level-header">`+
		`<div class="spell-level-num">0</div>`+
		`<div class="spell-level-title">Cantrips</div>`+
		`</div>`+
		`<div class="spell-list">%s</div>`+
		`</div>`, cantrips.String())

	var levels strings.Builder
	for level := 1; level <= 9; level++ {
		levelData := spells.Map(strconv.Itoa(level))
		levels.WriteString(p.Reg.Render(content.Block{
			"type":           "spell_level",
			"level":          level,
			"slots_total":    levelData.Int("slots_total", 0),
			"slots_expended": levelData.Int("slots_expended", 0),
			"spells":         levelData["known"],
			"min_rows":       8,
		}, rctx))
	}

	notesBox := `<div class="box spell-level-box notes-box">` +
		`<div class="box__label spell-notes-label">Notes</div>` +
		`<div class="notes-lines"></div>` +
		`</div>`

	return fmt.Sprintf(`<div class="page">%s<div class="spell-grid">%s%s%s%s</div></div>`,
		header, cantripBox, levels.String(), notesBox, notesBox)
}
