package content

import (
	"fmt"
	"strings"
)

// tableRenderer renders a data table with a header row from "columns", body
// rows from "rows", and an optional footnote. Ragged rows are clamped to the
// column count: short rows are padded with empty cells, long rows truncated.
type tableRenderer struct{}

func (tableRenderer) Type() string { return "table" }

func (tableRenderer) Render(b Block, _ Context) string {
	columns := b.StrList("columns")
	rows := b.Rows("rows")
	footer := b.Str("footer", "")

	var buf strings.Builder
	fmt.Fprintf(&buf, `<table class="%s">`, b.Str("class", "scaling-table"))

	buf.WriteString("<thead><tr>")
	for _, col := range columns {
		fmt.Fprintf(&buf, "<th>%s</th>", col)
	}
	buf.WriteString("</tr></thead>")

	buf.WriteString("<tbody>")
	for _, row := range rows {
		buf.WriteString("<tr>")
		for _, cell := range clampRow(row, len(columns)) {
			fmt.Fprintf(&buf, "<td>%s</td>", cell)
		}
		buf.WriteString("</tr>")
	}
	buf.WriteString("</tbody></table>")

	if footer != "" {
		fmt.Fprintf(&buf, `<div class="table-footnote">%s</div>`, footer)
	}
	return buf.String()
}

// clampRow pads or truncates row to width cells. A zero width (no columns
// declared) leaves the row untouched.
func clampRow(row []string, width int) []string {
	if width == 0 || len(row) == width {
		return row
	}
	if len(row) > width {
		return row[:width]
	}
	padded := make([]string, width)
	copy(padded, row)
	return padded
}
