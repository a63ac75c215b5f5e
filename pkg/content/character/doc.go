// Package character provides the sheet-specific content renderers: ability
// scores, saving throws, skills, attacks, spell levels, reference cards, and
// the companion stat block.
//
// All renderers follow the content.Renderer contract: pure presentation of a
// pre-shaped block, defaults for every missing field. Several of them pad
// short lists to a fixed minimum row count (attacks to 5, spell slots to 8)
// so print layouts keep their size regardless of data volume.
//
// Call Register once during startup to add them to a registry:
//
//	reg := content.NewRegistry()
//	character.Register(reg)
package character

import "github.com/fennwick/sheetsmith/pkg/content"

// Register adds all character renderers to the registry.
func Register(reg *content.Registry) {
	reg.Register(
		abilityScoresRenderer{},
		savingThrowsRenderer{},
		skillsRenderer{},
		attacksRenderer{},
		combatStatsRenderer{},
		hitPointsRenderer{},
		hitDiceDeathRenderer{},
		currencyRenderer{},
		spellLevelRenderer{},
		galleryRenderer{},
		weaponCardRenderer{},
		spellCardRenderer{},
		featureCardRenderer{},
		turnStructureRenderer{},
		combatReferenceRenderer{},
		companionRenderer{},
		notesRenderer{},
		traitBoxRenderer{},
		itemStatsRenderer{},
	)
}
