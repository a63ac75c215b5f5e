package sheet

import (
	"fmt"

	"github.com/fennwick/sheetsmith/pkg/content"
)

// StatsPage builds the main stats page: header with portrait, abilities,
// saves and skills, combat block, attacks, equipment, personality, and the
// optional gallery.
type StatsPage struct {
	Ctx *Context
	Reg *content.Registry
}

func (p *StatsPage) Build() string {
	data := p.Ctx.Data
	rctx := content.Context{}

	header := pageHeader(
		p.Ctx.Header.Str("character_name", ""), "Character Name",
		data.Map("meta").Str("portrait", ""),
		[]headerField{
			{p.Ctx.Header.Str("class_level", ""), "Class & Level"},
			{p.Ctx.Header.Str("background", ""), "Background"},
			{p.Ctx.Header.Str("player_name", ""), "Player Name"},
			{p.Ctx.Header.Str("race", ""), "Race"},
			{p.Ctx.Header.Str("alignment", ""), "Alignment"},
			{p.Ctx.Header.Str("experience_points", ""), "Experience Points"},
		},
		false,
	)

	gallery := p.Reg.Render(content.Block{
		"type":   "gallery",
		"images": data.Map("meta")["gallery"],
	}, rctx)

	return fmt.Sprintf(`<div class="page">%s<div class="main-content">%s%s%s</div>%s</div>`,
		header, p.leftColumn(rctx), p.middleColumn(rctx), p.rightColumn(rctx), gallery)
}

func (p *StatsPage) leftColumn(rctx content.Context) string {
	data := p.Ctx.Data

	abilities := p.Reg.Render(content.Block{
		"type":      "ability_scores",
		"abilities": p.Ctx.AbilityRows(),
	}, rctx)
	saves := p.Reg.Render(content.Block{
		"type":  "saving_throws",
		"saves": p.Ctx.SaveRows(),
	}, rctx)
	skills := p.Reg.Render(content.Block{
		"type":   "skills",
		"skills": p.Ctx.SkillRows(),
	}, rctx)
	profLang := p.Reg.Render(content.Block{
		"type":  "styled_list",
		"items": data["proficiencies_languages"],
		"class": "styled-list prof-list",
	}, rctx)

	inspiration := ""
	if data.Bool("inspiration") {
		inspiration = "X"
	}

	return fmt.Sprintf(`<div class="column">`+
		`<div class="left-section">`+
		`<div class="abilities-column">%s</div>`+
		`<div class="stats-column">`+
		`<div class="box stat-row"><div class="stat-circle">%s</div><div class="stat-label">Inspiration</div></div>`+
		`<div class="box stat-row"><div class="stat-circle">+%d</div><div class="stat-label">Proficiency Bonus</div></div>`+
		`<div class="box box--label-top saves-skills-box"><div class="box__label">Saving Throws</div>%s</div>`+
		`<div class="box box--label-top saves-skills-box box--flex"><div class="box__label">Skills</div>%s</div>`+
		`</div>`+
		`</div>`+
		`<div class="box passive-box">`+
		`<div class="passive-value">%d</div>`+
		`<div class="passive-label">Passive Wisdom<br>(Perception)</div>`+
		`</div>`+
		`<div class="box box--label-bottom proficiencies-box">%s<div class="box__label">Other Proficiencies & Languages</div></div>`+
		`</div>`,
		abilities, inspiration, p.Ctx.ProfBonus, saves, skills, p.Ctx.PassivePerception(), profLang)
}

func (p *StatsPage) middleColumn(rctx content.Context) string {
	data := p.Ctx.Data
	combat := data.Map("combat")

	initiative := combat.Str("initiative", "")
	if initiative == "" {
		initiative = content.FormatModifier(p.Ctx.Mod("dexterity"))
	}

	combatStats := p.Reg.Render(content.Block{
		"type": "combat_stats",
		"stats": []any{
			map[string]any{"value": combat.Str("armor_class", ""), "label": "Armor Class"},
			map[string]any{"value": initiative, "label": "Initiative"},
			map[string]any{"value": combat.Str("speed", ""), "label": "Speed"},
		},
	}, rctx)
	hitPoints := p.Reg.Render(content.Block{
		"type":         "hit_points",
		"hp_maximum":   combat.Str("hp_maximum", ""),
		"hp_current":   combat.Str("hp_current", ""),
		"hp_temporary": combat.Str("hp_temporary", ""),
	}, rctx)
	hitDice := p.Reg.Render(content.Block{
		"type":     "hit_dice_death",
		"hit_dice": combat["hit_dice"],
	}, rctx)
	attacks := p.Reg.Render(content.Block{
		"type":     "attacks",
		"attacks":  data["attacks"],
		"min_rows": 5,
	}, rctx)
	equipment := p.Reg.Render(content.Block{
		"type":  "styled_list",
		"items": data["equipment"],
		"class": "styled-list",
	}, rctx)
	currency := p.Reg.Render(content.Block{
		"type":     "currency",
		"currency": data["currency"],
	}, rctx)

	return fmt.Sprintf(`<div class="column">`+
		`%s%s%s`+
		`<div class="box box--label-top attacks-box">`+
		`<div class="box__label">Attacks & Spellcasting</div>`+
		`<div class="attack-header"><div>Name</div><div>Atk Bonus</div><div>Damage/Type</div></div>%s`+
		`</div>`+
		`<div class="box box--label-bottom equipment-box">%s<div class="box-content">%s</div><div class="box__label">Equipment</div></div>`+
		`</div>`,
		combatStats, hitPoints, hitDice, attacks, currency, equipment)
}

func (p *StatsPage) rightColumn(rctx content.Context) string {
	data := p.Ctx.Data
	personality := data.Map("personality")

	features := p.Reg.Render(content.Block{
		"type":  "styled_list",
		"items": data["features_traits"],
		"class": "styled-list",
	}, rctx)
	notes := p.Reg.Render(content.Block{"type": "notes"}, rctx)

	traitBox := func(text, label string) string {
		return p.Reg.Render(content.Block{
			"type":  "trait_box",
			"text":  text,
			"label": label,
		}, rctx)
	}

	return fmt.Sprintf(`<div class="column">%s%s%s%s%s%s</div>`,
		traitBox(personality.Str("traits", ""), "Personality Traits"),
		traitBox(personality.Str("ideals", ""), "Ideals"),
		traitBox(personality.Str("bonds", ""), "Bonds"),
		traitBox(personality.Str("flaws", ""), "Flaws"),
		traitBox(features, "Features & Traits"),
		notes)
}
