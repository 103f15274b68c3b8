package gridtable

import (
	"fmt"
	"strings"
)

// renderMediaWiki writes wiki table markup. Without explicit attributes the
// table opens as class="wikitable" so it picks up the site's default
// styling.
func (t *Table) renderMediaWiki(ly *layout, o *Style) (string, error) {
	open := `{| class="wikitable"`
	if len(o.Attributes) > 0 {
		parts := []string{"{|"}
		for _, k := range sortedKeys(o.Attributes) {
			parts = append(parts, fmt.Sprintf("%s=%q", k, o.Attributes[k]))
		}
		open = strings.Join(parts, " ")
	}

	lines := []string{open}
	if o.Title != "" {
		lines = append(lines, "|+ "+o.Title)
	}
	if o.Header {
		names := make([]string, len(ly.fields))
		for i, f := range ly.fields {
			names[i] = applyHeaderStyle(f, o.HeaderStyle)
		}
		lines = append(lines, "|-", "! "+strings.Join(names, " !! "))
	}
	for _, row := range ly.rows {
		lines = append(lines, "|-", "| "+strings.Join(row, " || "))
	}
	lines = append(lines, "|}")
	return strings.Join(lines, "\n"), nil
}
