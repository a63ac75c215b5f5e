package character

import (
	"fmt"
	"strings"

	"github.com/fennwick/sheetsmith/pkg/content"
)

// defaultSpellRows is the minimum prepared-spell row count per level box.
const defaultSpellRows = 8

// spellLevelRenderer renders one spell level box. Level 0 renders the cantrip
// variant without slot counters; other levels show total and expended slots.
// The spell list is padded with empty rows to min_rows.
type spellLevelRenderer struct{}

func (spellLevelRenderer) Type() string { return "spell_level" }

func (spellLevelRenderer) Render(b content.Block, _ content.Context) string {
	level := b.Int("level", 0)
	spells := b.Blocks("spells")
	minRows := b.Int("min_rows", defaultSpellRows)

	var list strings.Builder
	for _, s := range spells {
		fmt.Fprintf(&list, `<div class="spell-item">`+
			`<div class="spell-prepared %s"></div>`+
			`<span>%s</span>`+
			`</div>`,
			filled(s.Bool("prepared")), s.Str("name", ""))
	}
	for i := len(spells); i < minRows; i++ {
		list.WriteString(`<div class="spell-item"><div class="spell-prepared"></div><span></span></div>`)
	}

	if level == 0 {
		return fmt.Sprintf(`<div class="box spell-level-box cantrip-box">`+
			`<div class="spell-level-header">`+
			`<div class="spell-level-num">0</div>`+
			`<div class="spell-level-title">Cantrips</div>`+
			`</div>`+
			`<div class="spell-list">%s</div>`+
			`</div>`, list.String())
	}

	return fmt.Sprintf(`<div class="box spell-level-box">`+
		`<div class="spell-level-header">`+
		`<div class="spell-level-num">%d</div>`+
		`<div class="spell-slots">`+
		`<div class="spell-slots-row"><span>Slots:</span><div class="spell-slot-box">%d</div></div>`+
		`<div class="spell-slots-row"><span>Used:</span><div class="spell-slot-box">%d</div></div>`+
		`</div>`+
		`</div>`+
		`<div class="spell-list">%s</div>`+
		`</div>`,
		level, b.Int("slots_total", 0), b.Int("slots_expended", 0), list.String())
}
