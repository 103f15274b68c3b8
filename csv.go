package gridtable

import (
	"encoding/csv"
	"strings"
)

// renderCSV writes the view as RFC 4180 CSV with CRLF line endings. Cells
// carry raw values, not display text, so width and alignment settings have
// no effect here.
func (t *Table) renderCSV(ly *layout, o *Style) (string, error) {
	var b strings.Builder
	w := csv.NewWriter(&b)
	w.UseCRLF = true
	if o.Delimiter != 0 {
		w.Comma = o.Delimiter
	}

	if o.Header {
		if err := w.Write(ly.fields); err != nil {
			return "", err
		}
	}
	record := make([]string, len(ly.fields))
	for _, row := range ly.raws {
		for i, v := range row {
			record[i] = cellString(v)
		}
		if err := w.Write(record); err != nil {
			return "", err
		}
	}
	w.Flush()
	return b.String(), w.Error()
}
