package gridtable

import "gopkg.in/yaml.v3"

// renderYAML writes a document with the field list under "fields" and one
// mapping per row under "rows". Like JSON, values are raw unless
// WithFormattedValues is set.
func (t *Table) renderYAML(ly *layout, o *Style) (string, error) {
	doc := struct {
		Fields []string         `yaml:"fields,omitempty"`
		Rows   []map[string]any `yaml:"rows"`
	}{}
	if o.Header {
		doc.Fields = ly.fields
	}
	doc.Rows = make([]map[string]any, 0, len(ly.raws))
	for r := range ly.raws {
		row := make(map[string]any, len(ly.fields))
		for i, f := range ly.fields {
			if o.FormattedValues {
				row[f] = ly.rows[r][i]
			} else {
				row[f] = ly.raws[r][i]
			}
		}
		doc.Rows = append(doc.Rows, row)
	}
	data, err := yaml.Marshal(doc)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
