package content

import (
	"strings"
	"testing"
)

func TestBlockAccessors(t *testing.T) {
	b := Block{
		"type":    "text",
		"text":    "hello",
		"score":   float64(14),
		"level":   "3",
		"flag":    true,
		"nested":  map[string]any{"inner": "value"},
		"list":    []any{"a", float64(2)},
		"objects": []any{map[string]any{"name": "x"}, "skipped"},
	}

	if got := b.Str("text", ""); got != "hello" {
		t.Errorf("Str(text) = %q, want %q", got, "hello")
	}
	if got := b.Str("missing", "def"); got != "def" {
		t.Errorf("Str(missing) = %q, want default", got)
	}
	if got := b.Str("score", ""); got != "14" {
		t.Errorf("Str(score) = %q, want stringified number", got)
	}
	if got := b.Int("score", 0); got != 14 {
		t.Errorf("Int(score) = %d, want 14", got)
	}
	if got := b.Int("level", 0); got != 3 {
		t.Errorf("Int(level) = %d, want 3 (string form)", got)
	}
	if got := b.Int("missing", 7); got != 7 {
		t.Errorf("Int(missing) = %d, want default 7", got)
	}
	if !b.Bool("flag") {
		t.Error("Bool(flag) = false, want true")
	}
	if b.Bool("missing") {
		t.Error("Bool(missing) = true, want false")
	}
	if got := b.Map("nested").Str("inner", ""); got != "value" {
		t.Errorf("Map(nested).Str(inner) = %q, want %q", got, "value")
	}
	if got := b.Map("missing"); len(got) != 0 {
		t.Errorf("Map(missing) = %v, want empty", got)
	}
	if got := b.StrList("list"); len(got) != 2 || got[0] != "a" || got[1] != "2" {
		t.Errorf("StrList(list) = %v, want [a 2]", got)
	}
	if got := b.Blocks("objects"); len(got) != 1 || got[0].Str("name", "") != "x" {
		t.Errorf("Blocks(objects) = %v, want one block", got)
	}
}

func TestStringify(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"nil", nil, ""},
		{"string", "abc", "abc"},
		{"integral float", float64(14), "14"},
		{"fractional float", 2.5, "2.5"},
		{"int", 7, "7"},
		{"bool true", true, "true"},
		{"bool false", false, "false"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Stringify(tt.in); got != tt.want {
				t.Errorf("Stringify(%v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestRegistryFallback(t *testing.T) {
	reg := NewRegistry()

	got := reg.Render(Block{"type": "no_such_type", "text": "still shown"}, Context{})
	if !strings.Contains(got, "still shown") {
		t.Errorf("unknown tag should fall back to text renderer, got %q", got)
	}
	if !strings.Contains(got, `class="section-content"`) {
		t.Errorf("fallback should use the text container class, got %q", got)
	}
}

type stubRenderer struct {
	tag string
	out string
}

func (s stubRenderer) Type() string                 { return s.tag }
func (s stubRenderer) Render(Block, Context) string { return s.out }

func TestRegistryLastRegistrationWins(t *testing.T) {
	reg := NewRegistry()
	reg.Register(stubRenderer{tag: "custom", out: "first"})
	reg.Register(stubRenderer{tag: "custom", out: "second"})

	if got := reg.Render(Block{"type": "custom"}, Context{}); got != "second" {
		t.Errorf("Render = %q, want the last registered renderer", got)
	}
}

func TestParagraphs(t *testing.T) {
	reg := NewRegistry()

	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "blank line split",
			text: "First paragraph.\n\nSecond paragraph.",
			want: []string{"<p>First paragraph.</p>", "<p>Second paragraph.</p>"},
		},
		{
			name: "single newline fallback",
			text: "Line one.\nLine two.",
			want: []string{"<p>Line one.</p>", "<p>Line two.</p>"},
		},
		{
			name: "single paragraph",
			text: "Just one.",
			want: []string{"<p>Just one.</p>"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := reg.Render(Block{"type": "paragraphs", "text": tt.text}, Context{})
			for _, w := range tt.want {
				if !strings.Contains(got, w) {
					t.Errorf("output missing %q in %q", w, got)
				}
			}
		})
	}

	t.Run("empty text", func(t *testing.T) {
		if got := reg.Render(Block{"type": "paragraphs", "text": ""}, Context{}); got != "" {
			t.Errorf("empty text = %q, want empty output", got)
		}
	})
}

func TestStyledListEmptyContainer(t *testing.T) {
	reg := NewRegistry()
	got := reg.Render(Block{"type": "styled_list"}, Context{})
	if got != `<ul class="styled-list"></ul>` {
		t.Errorf("empty styled_list = %q, want empty <ul> container", got)
	}
}

func TestBulletsMarkdown(t *testing.T) {
	reg := NewRegistry()
	got := reg.Render(Block{
		"type":  "bullets",
		"items": []any{"**Sneak Attack.** Extra damage."},
	}, Context{})
	if !strings.Contains(got, "<strong>Sneak Attack.</strong>") {
		t.Errorf("bullets should apply markdown bold, got %q", got)
	}
}

func TestTableClampsRows(t *testing.T) {
	reg := NewRegistry()
	got := reg.Render(Block{
		"type":    "table",
		"columns": []any{"Level", "Damage"},
		"rows": []any{
			[]any{"5"},
			[]any{"11", "3d6", "extra"},
		},
	}, Context{})

	if n := strings.Count(got, "<td>"); n != 4 {
		t.Errorf("cell count = %d, want 4 (2 columns x 2 rows)", n)
	}
	if !strings.Contains(got, "<td>5</td><td></td>") {
		t.Errorf("short row should be padded, got %q", got)
	}
	if strings.Contains(got, "extra") {
		t.Errorf("long row should be truncated, got %q", got)
	}
}

func TestTableFootnote(t *testing.T) {
	reg := NewRegistry()
	got := reg.Render(Block{
		"type":    "table",
		"columns": []any{"A"},
		"footer":  "Values scale with level.",
	}, Context{})
	if !strings.Contains(got, `<div class="table-footnote">Values scale with level.</div>`) {
		t.Errorf("footnote missing, got %q", got)
	}
}

func TestMixedRecursion(t *testing.T) {
	reg := NewRegistry()

	got := reg.Render(Block{
		"type": "mixed",
		"blocks": []any{
			map[string]any{"type": "text", "text": "one"},
			map[string]any{"type": "quote", "text": "two"},
		},
	}, Context{})
	if !strings.Contains(got, "one") || !strings.Contains(got, "two") {
		t.Errorf("mixed should render all children, got %q", got)
	}
}

func TestMixedDepthCap(t *testing.T) {
	reg := NewRegistry()

	// Build a chain of mixed blocks deeper than the cap.
	leaf := map[string]any{"type": "text", "text": "bottom"}
	nested := any(leaf)
	for i := 0; i < MaxMixedDepth+2; i++ {
		nested = map[string]any{"type": "mixed", "blocks": []any{nested}}
	}

	got := reg.Render(Block(nested.(map[string]any)), Context{})
	if strings.Contains(got, "bottom") {
		t.Errorf("leaf below depth cap should not render, got %q", got)
	}
}

func TestMarkdownBold(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"**bold**", "<strong>bold</strong>"},
		{"no markup", "no markup"},
		{"**a** and **b**", "<strong>a</strong> and <strong>b</strong>"},
	}
	for _, tt := range tests {
		if got := MarkdownBold(tt.in); got != tt.want {
			t.Errorf("MarkdownBold(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatModifier(t *testing.T) {
	tests := []struct {
		in   int
		want string
	}{
		{3, "+3"},
		{0, "+0"},
		{-2, "-2"},
	}
	for _, tt := range tests {
		if got := FormatModifier(tt.in); got != tt.want {
			t.Errorf("FormatModifier(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
