package sheet

import (
	"strings"

	"github.com/fennwick/sheetsmith/pkg/content"
)

// AbilityOrder is the canonical ordering of the six ability scores.
var AbilityOrder = []string{"strength", "dexterity", "constitution", "intelligence", "wisdom", "charisma"}

// SkillOrder is the canonical alphabetical skill ordering used on the sheet.
var SkillOrder = []string{
	"acrobatics", "animal_handling", "arcana", "athletics", "deception",
	"history", "insight", "intimidation", "investigation", "medicine",
	"nature", "perception", "performance", "persuasion", "religion",
	"sleight_of_hand", "stealth", "survival",
}

// skillAbilities maps each skill to its governing ability abbreviation and
// full name.
var skillAbilities = map[string]struct{ abbr, ability string }{
	"acrobatics":      {"Dex", "dexterity"},
	"animal_handling": {"Wis", "wisdom"},
	"arcana":          {"Int", "intelligence"},
	"athletics":       {"Str", "strength"},
	"deception":       {"Cha", "charisma"},
	"history":         {"Int", "intelligence"},
	"insight":         {"Wis", "wisdom"},
	"intimidation":    {"Cha", "charisma"},
	"investigation":   {"Int", "intelligence"},
	"medicine":        {"Wis", "wisdom"},
	"nature":          {"Int", "intelligence"},
	"perception":      {"Wis", "wisdom"},
	"performance":     {"Cha", "charisma"},
	"persuasion":      {"Cha", "charisma"},
	"religion":        {"Int", "intelligence"},
	"sleight_of_hand": {"Dex", "dexterity"},
	"stealth":         {"Dex", "dexterity"},
	"survival":        {"Wis", "wisdom"},
}

// Modifier computes the ability modifier (score-10)/2 with flooring, so odd
// scores below 10 round down (score 7 gives -2, not -1).
func Modifier(score int) int {
	d := score - 10
	if d < 0 {
		d -= 1
	}
	return d / 2
}

// Context holds the character data and the values derived from it that every
// page builder needs: header fields, ability modifiers, and the proficiency
// bonus.
type Context struct {
	Data      content.Block
	Header    content.Block
	ProfBonus int

	mods map[string]int
}

// NewContext derives a builder context from raw character data.
func NewContext(data content.Block) *Context {
	ctx := &Context{
		Data:      data,
		Header:    data.Map("header"),
		ProfBonus: data.Int("proficiency_bonus", 2),
		mods:      make(map[string]int, len(AbilityOrder)),
	}
	abilities := data.Map("abilities")
	for name := range abilities {
		ctx.mods[name] = Modifier(abilities.Map(name).Int("score", 10))
	}
	return ctx
}

// Mod returns the modifier of an ability, zero when the ability is absent.
func (c *Context) Mod(ability string) int {
	return c.mods[ability]
}

// SaveRows derives the six saving throw rows with proficiency applied.
func (c *Context) SaveRows() []any {
	saves := c.Data.Map("saving_throws")
	rows := make([]any, 0, len(AbilityOrder))
	for _, ability := range AbilityOrder {
		prof := saves.Map(ability).Bool("proficient")
		mod := c.Mod(ability)
		if prof {
			mod += c.ProfBonus
		}
		rows = append(rows, map[string]any{
			"name":       capitalize(ability),
			"proficient": prof,
			"modifier":   content.FormatModifier(mod),
		})
	}
	return rows
}

// SkillRows derives the eighteen skill rows with proficiency applied.
func (c *Context) SkillRows() []any {
	skills := c.Data.Map("skills")
	rows := make([]any, 0, len(SkillOrder))
	for _, skill := range SkillOrder {
		prof := skills.Map(skill).Bool("proficient")
		governing := skillAbilities[skill]
		mod := c.Mod(governing.ability)
		if prof {
			mod += c.ProfBonus
		}
		rows = append(rows, map[string]any{
			"name":       skillTitle(skill),
			"ability":    governing.abbr,
			"proficient": prof,
			"modifier":   content.FormatModifier(mod),
		})
	}
	return rows
}

// AbilityRows derives the six ability score boxes with computed modifiers.
func (c *Context) AbilityRows() []any {
	abilities := c.Data.Map("abilities")
	rows := make([]any, 0, len(AbilityOrder))
	for _, ability := range AbilityOrder {
		score := abilities.Map(ability).Int("score", 10)
		rows = append(rows, map[string]any{
			"name":     strings.ToUpper(ability[:3]),
			"score":    score,
			"modifier": content.FormatModifier(Modifier(score)),
		})
	}
	return rows
}

// PassivePerception is 10 plus the wisdom modifier, plus the proficiency
// bonus when the character is proficient in perception.
func (c *Context) PassivePerception() int {
	mod := c.Mod("wisdom")
	if c.Data.Map("skills").Map("perception").Bool("proficient") {
		mod += c.ProfBonus
	}
	return 10 + mod
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func skillTitle(skill string) string {
	words := strings.Split(skill, "_")
	for i, w := range words {
		words[i] = capitalize(w)
	}
	return strings.Join(words, " ")
}
