package gridtable

import (
	"encoding/json"
	"strings"
)

// renderJSON writes a JSON array whose first element is the field name list
// and whose remaining elements are one object per row. Values are raw by
// default; WithFormattedValues swaps in the display text instead.
func (t *Table) renderJSON(ly *layout, o *Style) (string, error) {
	objects := make([]any, 0, len(ly.raws)+1)
	if o.Header {
		objects = append(objects, ly.fields)
	}
	for r := range ly.raws {
		obj := make(map[string]any, len(ly.fields))
		for i, f := range ly.fields {
			if o.FormattedValues {
				obj[f] = ly.rows[r][i]
			} else {
				obj[f] = ly.raws[r][i]
			}
		}
		objects = append(objects, obj)
	}
	var b strings.Builder
	enc := json.NewEncoder(&b)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(objects); err != nil {
		return "", err
	}
	return strings.TrimSuffix(b.String(), "\n"), nil
}
