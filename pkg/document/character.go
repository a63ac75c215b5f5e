package document

import (
	"strings"

	"github.com/fennwick/sheetsmith/pkg/content"
	"github.com/fennwick/sheetsmith/pkg/sheet"
	"github.com/fennwick/sheetsmith/pkg/styles"
)

// CharacterDocument renders a four-page character sheet: main stats,
// background, spellcasting, and quick reference, in that order.
type CharacterDocument struct {
	Data   content.Block
	Styles styles.Loader

	reg *content.Registry
}

// NewCharacterDocument builds a character document over raw character data.
func NewCharacterDocument(data content.Block, loader styles.Loader) *CharacterDocument {
	return &CharacterDocument{
		Data:   data,
		Styles: loader,
		reg:    newRegistry(),
	}
}

// BuildHTML renders the complete character sheet. The base stylesheet is
// required; building fails when it cannot be resolved.
func (d *CharacterDocument) BuildHTML() (string, error) {
	css, err := d.Styles.Load([]string{"sheet.css"}, nil)
	if err != nil {
		return "", err
	}

	ctx := sheet.NewContext(d.Data)
	builders := []interface{ Build() string }{
		&sheet.StatsPage{Ctx: ctx, Reg: d.reg},
		&sheet.BackgroundPage{Ctx: ctx, Reg: d.reg},
		&sheet.SpellcastingPage{Ctx: ctx, Reg: d.reg},
		&sheet.ReferencePage{Ctx: ctx, Reg: d.reg},
	}

	var body strings.Builder
	for _, b := range builders {
		body.WriteString(b.Build())
	}

	name := d.Data.Map("header").Str("character_name", "Character")
	return wrap(name+" - Character Sheet", css, body.String()), nil
}
