package content

import (
	"fmt"
	"strings"
)

// textRenderer renders plain text in a container div. It doubles as the
// fallback renderer for unknown type tags.
type textRenderer struct{}

func (textRenderer) Type() string { return "text" }

func (textRenderer) Render(b Block, _ Context) string {
	text := MarkdownBold(b.Str("text", ""))
	class := b.Str("class", "section-content")
	return fmt.Sprintf(`<div class="%s">%s</div>`, class, text)
}

// textItalicRenderer renders flavor text in the description style.
type textItalicRenderer struct{}

func (textItalicRenderer) Type() string { return "text_italic" }

func (textItalicRenderer) Render(b Block, _ Context) string {
	text := MarkdownBold(b.Str("text", ""))
	return fmt.Sprintf(`<div class="section-content description-text">%s</div>`, text)
}

// paragraphsRenderer splits text on blank lines into <p> elements. It falls
// back to single newlines, then the whole string; empty input yields empty
// output rather than a single empty paragraph.
type paragraphsRenderer struct{}

func (paragraphsRenderer) Type() string { return "paragraphs" }

func (paragraphsRenderer) Render(b Block, _ Context) string {
	text := b.Str("text", "")
	if text == "" {
		return ""
	}

	paragraphs := splitNonEmpty(text, "\n\n")
	if len(paragraphs) == 0 {
		paragraphs = splitNonEmpty(text, "\n")
	}
	if len(paragraphs) == 0 {
		paragraphs = []string{strings.TrimSpace(text)}
	}

	var buf strings.Builder
	class := b.Str("class", "text-content")
	fmt.Fprintf(&buf, `<div class="%s">`, class)
	for _, p := range paragraphs {
		fmt.Fprintf(&buf, "<p>%s</p>", MarkdownBold(p))
	}
	buf.WriteString("</div>")
	return buf.String()
}

// splitNonEmpty splits s on sep, trims each part, and drops empty parts.
func splitNonEmpty(s, sep string) []string {
	var out []string
	for _, part := range strings.Split(s, sep) {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
