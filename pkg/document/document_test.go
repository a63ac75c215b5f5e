package document

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fennwick/sheetsmith/pkg/content"
	"github.com/fennwick/sheetsmith/pkg/styles"
)

func characterData() content.Block {
	return content.Block{
		"header": map[string]any{
			"character_name": "Ember Nightshade",
			"class_level":    "Rogue 5",
		},
		"abilities": map[string]any{
			"dexterity": map[string]any{"score": float64(18)},
		},
	}
}

func itemData() content.Block {
	return content.Block{
		"header": map[string]any{
			"name":     "Flametongue",
			"subtitle": "Weapon (longsword), rare",
		},
		"footer": map[string]any{
			"left":  "Dungeon Master's Guide",
			"right": "~5,000 gp",
		},
		"pages": []any{
			map[string]any{
				"sections": []any{
					map[string]any{
						"title":   "Description",
						"content": map[string]any{"type": "text", "text": "Flames erupt from the blade."},
					},
				},
			},
			map[string]any{
				"sections": []any{
					map[string]any{
						"title":   "History",
						"content": map[string]any{"type": "text", "text": "Forged in the elemental fire."},
					},
				},
			},
		},
	}
}

func TestCharacterDocument(t *testing.T) {
	doc := NewCharacterDocument(characterData(), styles.Loader{})

	html, err := doc.BuildHTML()
	if err != nil {
		t.Fatalf("BuildHTML: %v", err)
	}

	if !strings.HasPrefix(html, "<!DOCTYPE html>") {
		t.Error("output should be a standalone HTML document")
	}
	if !strings.Contains(html, "<title>Ember Nightshade - Character Sheet</title>") {
		t.Errorf("title missing, got head %q", html[:200])
	}
	if n := strings.Count(html, `<div class="page">`); n != 4 {
		t.Errorf("page count = %d, want 4", n)
	}
	if !strings.Contains(html, "fonts.googleapis.com") {
		t.Error("font link missing")
	}
	if !strings.Contains(html, "<style>") {
		t.Error("stylesheet should be inlined")
	}
}

func TestCharacterDocumentDefaultTitle(t *testing.T) {
	doc := NewCharacterDocument(content.Block{}, styles.Loader{})
	html, err := doc.BuildHTML()
	if err != nil {
		t.Fatalf("BuildHTML: %v", err)
	}
	if !strings.Contains(html, "<title>Character - Character Sheet</title>") {
		t.Error("unnamed character should use the default title")
	}
}

func TestCharacterDocumentDeterministic(t *testing.T) {
	data := characterData()
	first, err := NewCharacterDocument(data, styles.Loader{}).BuildHTML()
	if err != nil {
		t.Fatal(err)
	}
	second, err := NewCharacterDocument(data, styles.Loader{}).BuildHTML()
	if err != nil {
		t.Fatal(err)
	}
	if first != second {
		t.Error("building the same data twice should produce identical output")
	}
}

func TestCharacterDocumentEmptyOverrideDir(t *testing.T) {
	// An override dir without sheet.css falls back to the embedded copy.
	doc := NewCharacterDocument(content.Block{}, styles.Loader{Dir: t.TempDir()})
	if _, err := doc.BuildHTML(); err != nil {
		t.Fatalf("embedded fallback should keep the build working: %v", err)
	}
}

func TestItemDocument(t *testing.T) {
	doc := NewItemDocument(itemData(), styles.Loader{})

	html, err := doc.BuildHTML()
	if err != nil {
		t.Fatalf("BuildHTML: %v", err)
	}

	if !strings.Contains(html, "<title>Flametongue - Magic Item</title>") {
		t.Error("title missing")
	}
	if n := strings.Count(html, `<div class="page">`); n != 2 {
		t.Errorf("page count = %d, want 2", n)
	}

	// Header and footer appear on the first page only.
	if n := strings.Count(html, `<div class="item-header">`); n != 1 {
		t.Errorf("item header count = %d, want 1", n)
	}
	if n := strings.Count(html, `<div class="item-footer">`); n != 1 {
		t.Errorf("item footer count = %d, want 1", n)
	}
	firstPageEnd := strings.Index(html, "Forged in the elemental fire")
	if !strings.Contains(html[:firstPageEnd], "item-header") {
		t.Error("header should be on the first page")
	}
}

func TestItemDocumentImageBasePath(t *testing.T) {
	data := itemData()
	data.Map("header")["image"] = "flametongue.png"

	doc := NewItemDocument(data, styles.Loader{})
	doc.BasePath = "assets"

	html, err := doc.BuildHTML()
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(html, `img src="assets/flametongue.png"`) {
		t.Error("relative image should get the base path prefix")
	}
}

func TestItemDocumentSVGDecoration(t *testing.T) {
	dir := t.TempDir()
	svg := `<svg viewBox="0 0 100 50"><path d="M0 0 L100 50"/></svg>`
	if err := os.WriteFile(filepath.Join(dir, "banner.svg"), []byte(svg), 0644); err != nil {
		t.Fatal(err)
	}

	data := itemData()
	data.Map("header")["background_svg"] = "banner.svg"

	doc := NewItemDocument(data, styles.Loader{})
	doc.AssetDir = dir

	html, err := doc.BuildHTML()
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(html, `viewBox="0 0 100 50"`) {
		t.Error("decoration should reuse the source viewBox")
	}
	if !strings.Contains(html, `<path d="M0 0 L100 50"/>`) {
		t.Error("decoration path missing")
	}
}

func TestItemDocumentMissingDecoration(t *testing.T) {
	data := itemData()
	data.Map("header")["background_svg"] = "missing.svg"

	doc := NewItemDocument(data, styles.Loader{})
	doc.AssetDir = t.TempDir()

	html, err := doc.BuildHTML()
	if err != nil {
		t.Fatalf("missing decoration should not fail the build: %v", err)
	}
	if strings.Contains(html, "header-bg-decoration") {
		t.Error("missing decoration should render nothing")
	}
}
