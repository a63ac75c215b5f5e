package character

import (
	"strings"
	"testing"

	"github.com/fennwick/sheetsmith/pkg/content"
)

func newTestRegistry() *content.Registry {
	reg := content.NewRegistry()
	Register(reg)
	return reg
}

func TestAbilityScores(t *testing.T) {
	reg := newTestRegistry()
	got := reg.Render(content.Block{
		"type": "ability_scores",
		"abilities": []any{
			map[string]any{"name": "STR", "score": float64(10), "modifier": "+0"},
			map[string]any{"name": "DEX", "score": float64(18), "modifier": "+4"},
		},
	}, content.Context{})

	if n := strings.Count(got, `class="box ability-score"`); n != 2 {
		t.Errorf("ability box count = %d, want 2", n)
	}
	if !strings.Contains(got, `<div class="value--large">18</div>`) {
		t.Errorf("score missing, got %q", got)
	}
	if !strings.Contains(got, `<div class="ability-modifier">+4</div>`) {
		t.Errorf("modifier missing, got %q", got)
	}
}

func TestSavingThrowsProficiencyCircle(t *testing.T) {
	reg := newTestRegistry()
	got := reg.Render(content.Block{
		"type": "saving_throws",
		"saves": []any{
			map[string]any{"name": "Dexterity", "modifier": "+7", "proficient": true},
			map[string]any{"name": "Strength", "modifier": "+0", "proficient": false},
		},
	}, content.Context{})

	if !strings.Contains(got, `<div class="prof-circle filled"></div>`) {
		t.Errorf("proficient save should have a filled circle, got %q", got)
	}
	if !strings.Contains(got, `<div class="prof-circle "></div>`) {
		t.Errorf("non-proficient save should have an empty circle, got %q", got)
	}
}

func TestAttacksPadding(t *testing.T) {
	reg := newTestRegistry()

	tests := []struct {
		name     string
		attacks  []any
		minRows  int
		wantRows int
	}{
		{"pads short list", []any{map[string]any{"name": "Rapier"}}, 5, 5},
		{"keeps long list", []any{
			map[string]any{"name": "a"}, map[string]any{"name": "b"},
			map[string]any{"name": "c"}, map[string]any{"name": "d"},
			map[string]any{"name": "e"}, map[string]any{"name": "f"},
		}, 5, 6},
		{"empty list still renders rows", nil, 3, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := reg.Render(content.Block{
				"type":     "attacks",
				"attacks":  tt.attacks,
				"min_rows": tt.minRows,
			}, content.Context{})
			if n := strings.Count(got, `<div class="attack-row">`); n != tt.wantRows {
				t.Errorf("row count = %d, want %d", n, tt.wantRows)
			}
		})
	}
}

func TestSpellLevelCantripVariant(t *testing.T) {
	reg := newTestRegistry()

	got := reg.Render(content.Block{
		"type":  "spell_level",
		"level": 0,
		"spells": []any{
			map[string]any{"name": "Mage Hand"},
		},
		"min_rows": 4,
	}, content.Context{})

	if !strings.Contains(got, "cantrip-box") {
		t.Errorf("level 0 should use the cantrip variant, got %q", got)
	}
	if strings.Contains(got, "Slots:") {
		t.Errorf("cantrip box must not show slot counters, got %q", got)
	}
	if n := strings.Count(got, `<div class="spell-item">`); n != 4 {
		t.Errorf("spell rows = %d, want 4 (padded)", n)
	}
}

func TestSpellLevelSlots(t *testing.T) {
	reg := newTestRegistry()

	got := reg.Render(content.Block{
		"type":           "spell_level",
		"level":          3,
		"slots_total":    2,
		"slots_expended": 1,
		"min_rows":       1,
	}, content.Context{})

	if !strings.Contains(got, `<div class="spell-level-num">3</div>`) {
		t.Errorf("level number missing, got %q", got)
	}
	if !strings.Contains(got, `<div class="spell-slot-box">2</div>`) {
		t.Errorf("slot total missing, got %q", got)
	}
	if !strings.Contains(got, `<div class="spell-slot-box">1</div>`) {
		t.Errorf("expended slots missing, got %q", got)
	}
}

func TestSpellLevelPreparedMark(t *testing.T) {
	reg := newTestRegistry()
	got := reg.Render(content.Block{
		"type":  "spell_level",
		"level": 1,
		"spells": []any{
			map[string]any{"name": "Shield", "prepared": true},
			map[string]any{"name": "Sleep"},
		},
		"min_rows": 2,
	}, content.Context{})

	if !strings.Contains(got, `<div class="spell-prepared filled"></div>`) {
		t.Errorf("prepared spell should be marked, got %q", got)
	}
}

func TestCurrencyRow(t *testing.T) {
	reg := newTestRegistry()
	got := reg.Render(content.Block{
		"type":     "currency",
		"currency": map[string]any{"gp": float64(85), "sp": float64(30)},
	}, content.Context{})

	// All five coins render even when absent from the data.
	for _, coin := range []string{"coin--cp", "coin--sp", "coin--ep", "coin--gp", "coin--pp"} {
		if !strings.Contains(got, coin) {
			t.Errorf("missing %s in %q", coin, got)
		}
	}
	if !strings.Contains(got, `<div class="coin-icon">85</div>`) {
		t.Errorf("gold amount missing, got %q", got)
	}
	if !strings.Contains(got, `<div class="coin-icon">0</div>`) {
		t.Errorf("absent coins should render as 0, got %q", got)
	}
}

func TestCompanionEmpty(t *testing.T) {
	reg := newTestRegistry()
	got := reg.Render(content.Block{"type": "companion"}, content.Context{})
	if got != "" {
		t.Errorf("empty companion = %q, want empty output", got)
	}
}

func TestCompanionStatBlock(t *testing.T) {
	reg := newTestRegistry()
	got := reg.Render(content.Block{
		"type": "companion",
		"companion": map[string]any{
			"name": "Shadow",
			"type": "Wolf companion",
			"abilities": map[string]any{
				"str": float64(12),
				"dex": float64(7),
			},
			"commands": []any{"Attack", "Heel"},
		},
	}, content.Context{})

	if !strings.Contains(got, "Shadow") {
		t.Errorf("companion name missing, got %q", got)
	}
	if !strings.Contains(got, "(+1)") {
		t.Errorf("strength 12 should show +1 modifier, got %q", got)
	}
	// Score 7 floors to -2, not -1.
	if !strings.Contains(got, "(-2)") {
		t.Errorf("dexterity 7 should show -2 modifier, got %q", got)
	}
	if !strings.Contains(got, "Beast Master Commands") {
		t.Errorf("commands section missing, got %q", got)
	}
}

func TestAbilityModifierFloors(t *testing.T) {
	tests := []struct {
		score int
		want  int
	}{
		{1, -5},
		{7, -2},
		{8, -1},
		{9, -1},
		{10, 0},
		{11, 0},
		{15, 2},
		{20, 5},
	}
	for _, tt := range tests {
		if got := abilityModifier(tt.score); got != tt.want {
			t.Errorf("abilityModifier(%d) = %d, want %d", tt.score, got, tt.want)
		}
	}
}

func TestTurnStructure(t *testing.T) {
	reg := newTestRegistry()
	got := reg.Render(content.Block{
		"type": "turn_structure",
		"phases": []any{
			map[string]any{"name": "Move", "desc": "Up to 30 ft."},
			map[string]any{"name": "Action", "desc": "Attack or Dash"},
		},
		"reaction": "Opportunity attack",
	}, content.Context{})

	if !strings.Contains(got, "Your Turn") {
		t.Errorf("default title missing, got %q", got)
	}
	if n := strings.Count(got, `class="turn-phase"`); n != 2 {
		t.Errorf("phase count = %d, want 2", n)
	}
	if !strings.Contains(got, "Opportunity attack") {
		t.Errorf("reaction text missing, got %q", got)
	}
}

func TestWeaponCard(t *testing.T) {
	reg := newTestRegistry()
	got := reg.Render(content.Block{
		"type": "weapon_card",
		"weapons": []any{
			map[string]any{
				"name":       "Rapier",
				"type":       "Martial melee",
				"damage":     "1d8+4 piercing",
				"properties": "Finesse",
			},
		},
	}, content.Context{})

	if !strings.Contains(got, "weapon-card") {
		t.Errorf("card container missing, got %q", got)
	}
	if !strings.Contains(got, "Rapier") || !strings.Contains(got, "Finesse") {
		t.Errorf("weapon fields missing, got %q", got)
	}
}

func TestGalleryEmpty(t *testing.T) {
	reg := newTestRegistry()
	if got := reg.Render(content.Block{"type": "gallery"}, content.Context{}); got != "" {
		t.Errorf("empty gallery = %q, want empty output", got)
	}
}

func TestTraitBox(t *testing.T) {
	reg := newTestRegistry()
	got := reg.Render(content.Block{
		"type":  "trait_box",
		"text":  "I never back down from a bet.",
		"label": "Personality Traits",
	}, content.Context{})

	if !strings.Contains(got, "I never back down from a bet.") {
		t.Errorf("trait text missing, got %q", got)
	}
	if !strings.Contains(got, `<div class="box__label">Personality Traits</div>`) {
		t.Errorf("label missing, got %q", got)
	}
}
