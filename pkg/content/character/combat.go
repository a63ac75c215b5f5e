package character

import (
	"fmt"
	"strings"

	"github.com/fennwick/sheetsmith/pkg/content"
)

// defaultAttackRows is the minimum attack row count; shorter lists are padded
// with empty rows so the printed box keeps its height.
const defaultAttackRows = 5

// attacksRenderer renders attack rows (name, bonus, damage/type), padded to
// min_rows.
type attacksRenderer struct{}

func (attacksRenderer) Type() string { return "attacks" }

func (attacksRenderer) Render(b content.Block, _ content.Context) string {
	attacks := b.Blocks("attacks")
	minRows := b.Int("min_rows", defaultAttackRows)

	var buf strings.Builder
	for _, a := range attacks {
		fmt.Fprintf(&buf, `<div class="attack-row">`+
			`<div class="attack-name">%s</div>`+
			`<div class="attack-bonus">%s</div>`+
			`<div class="attack-damage">%s</div>`+
			`</div>`,
			a.Str("name", ""), a.Str("atk_bonus", ""), a.Str("damage_type", ""))
	}
	for i := len(attacks); i < minRows; i++ {
		buf.WriteString(`<div class="attack-row">` +
			`<div class="attack-name"></div>` +
			`<div class="attack-bonus"></div>` +
			`<div class="attack-damage"></div>` +
			`</div>`)
	}
	return buf.String()
}

// combatStatsRenderer renders labeled combat stat boxes (AC, Initiative,
// Speed).
type combatStatsRenderer struct{}

func (combatStatsRenderer) Type() string { return "combat_stats" }

func (combatStatsRenderer) Render(b content.Block, _ content.Context) string {
	var buf strings.Builder
	buf.WriteString(`<div class="combat-row">`)
	for _, stat := range b.Blocks("stats") {
		fmt.Fprintf(&buf, `<div class="box box--label-bottom combat-stat">`+
			`<div class="combat-value value--xlarge">%s</div>`+
			`<div class="box__label">%s</div>`+
			`</div>`,
			stat.Str("value", ""), stat.Str("label", ""))
	}
	buf.WriteString("</div>")
	return buf.String()
}

// hitPointsRenderer renders the HP section (maximum, current, temporary).
type hitPointsRenderer struct{}

func (hitPointsRenderer) Type() string { return "hit_points" }

func (hitPointsRenderer) Render(b content.Block, _ content.Context) string {
	return fmt.Sprintf(`<div class="box box--label-bottom hp-section">`+
		`<div class="hp-max-row">`+
		`<div class="hp-max-label">Hit Point Maximum</div>`+
		`<div class="hp-max-value">%s</div>`+
		`</div>`+
		`<div class="hp-current">%s</div>`+
		`<div class="box__label">Current Hit Points</div>`+
		`</div>`+
		`<div class="box box--label-bottom hp-temp">`+
		`<div class="hp-temp-value">%s</div>`+
		`<div class="box__label">Temporary Hit Points</div>`+
		`</div>`,
		b.Str("hp_maximum", ""), b.Str("hp_current", ""), b.Str("hp_temporary", ""))
}

// hitDiceDeathRenderer renders the hit dice box and the death save circles.
type hitDiceDeathRenderer struct{}

func (hitDiceDeathRenderer) Type() string { return "hit_dice_death" }

func (hitDiceDeathRenderer) Render(b content.Block, _ content.Context) string {
	hitDice := b.Map("hit_dice")
	return fmt.Sprintf(`<div class="hitdice-death-row">`+
		`<div class="box box--label-bottom hitdice-box">`+
		`<div class="hitdice-total">Total: %s</div>`+
		`<div class="hitdice-value">%s</div>`+
		`<div class="box__label">Hit Dice</div>`+
		`</div>`+
		deathSavesBox+
		`</div>`,
		hitDice.Str("total", ""), hitDice.Str("current", ""))
}

// deathSavesBox is static markup: three success and three failure circles.
const deathSavesBox = `<div class="box box--label-bottom death-box">` +
	`<div class="death-row">` +
	`<div class="death-label">Successes</div>` +
	`<div class="death-circles"><div class="death-circle"></div><div class="death-circle"></div><div class="death-circle"></div></div>` +
	`</div>` +
	`<div class="death-row">` +
	`<div class="death-label">Failures</div>` +
	`<div class="death-circles"><div class="death-circle"></div><div class="death-circle"></div><div class="death-circle"></div></div>` +
	`</div>` +
	`<div class="box__label">Death Saves</div>` +
	`</div>`

// currencyRenderer renders the five-coin currency row.
type currencyRenderer struct{}

func (currencyRenderer) Type() string { return "currency" }

var coinOrder = []struct{ key, label string }{
	{"cp", "Copper"},
	{"sp", "Silver"},
	{"ep", "Electrum"},
	{"gp", "Gold"},
	{"pp", "Platinum"},
}

func (currencyRenderer) Render(b content.Block, _ content.Context) string {
	currency := b.Map("currency")
	var buf strings.Builder
	buf.WriteString(`<div class="coin-row">`)
	for _, coin := range coinOrder {
		fmt.Fprintf(&buf, `<div class="coin coin--%s"><div class="coin-icon">%d</div><div class="coin-label">%s</div></div>`,
			coin.key, currency.Int(coin.key, 0), coin.label)
	}
	buf.WriteString("</div>")
	return buf.String()
}
