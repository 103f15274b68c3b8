package gridtable

import (
	"slices"
	"sort"
)

// layout is the fully resolved, render-ready view of one call: visible
// fields, final widths, per-cell display text, and divider positions. It is
// derived fresh from Table state plus merged options on every render and
// never cached, which keeps repeated renders byte-identical.
type layout struct {
	fields  []string
	indexes []int // position of each visible field in storage order
	widths  []int
	aligns  []Alignment
	valigns []VAlignment

	rows     [][]string // formatted display text, visible columns only
	raws     [][]any    // raw values, visible columns only
	dividers []bool
}

func (t *Table) resolveLayout(o *Style) (*layout, error) {
	ly := &layout{}
	if o.Fields != nil {
		for _, f := range o.Fields {
			idx, err := t.fieldIndex(f)
			if err != nil {
				return nil, err
			}
			if slices.Contains(ly.indexes, idx) {
				continue
			}
			ly.fields = append(ly.fields, f)
			ly.indexes = append(ly.indexes, idx)
		}
	} else {
		ly.fields = slices.Clone(t.fields)
		ly.indexes = make([]int, len(t.fields))
		for i := range t.fields {
			ly.indexes[i] = i
		}
	}

	for _, f := range ly.fields {
		ly.aligns = append(ly.aligns, t.alignFor(f, o))
		ly.valigns = append(ly.valigns, t.valignFor(f, o))
	}

	rows, dividers := t.viewRows(o)
	for _, row := range rows {
		raw := make([]any, len(ly.indexes))
		formatted := make([]string, len(ly.indexes))
		for i, idx := range ly.indexes {
			raw[i] = row[idx]
			cell, err := t.formatValue(ly.fields[i], row[idx])
			if err != nil {
				return nil, err
			}
			formatted[i] = cell
		}
		ly.raws = append(ly.raws, raw)
		ly.rows = append(ly.rows, formatted)
	}
	ly.dividers = dividers

	ly.widths = t.computeWidths(ly, o)
	return ly, nil
}

// viewRows applies the filter, sort, and row-range pipeline without touching
// canonical storage. Sorting clears divider markers in the view because they
// were tied to pre-sort adjacency.
func (t *Table) viewRows(o *Style) ([][]any, []bool) {
	rows := make([][]any, 0, len(t.rows))
	dividers := make([]bool, 0, len(t.dividers))
	for i, row := range t.rows {
		if o.RowFilter != nil && !o.RowFilter(row) {
			continue
		}
		rows = append(rows, row)
		dividers = append(dividers, t.dividers[i])
	}

	if o.SortBy != "" {
		idx := slices.Index(t.fields, o.SortBy) // validated by resolveOptions
		key := func(row []any) any {
			v := row[idx]
			if o.SortKey != nil {
				return o.SortKey(v)
			}
			return v
		}
		sort.SliceStable(rows, func(i, j int) bool {
			return compareValues(key(rows[i]), key(rows[j])) < 0
		})
		if o.ReverseSort {
			slices.Reverse(rows)
		}
		for i := range dividers {
			dividers[i] = false
		}
	}

	start := min(o.Start, len(rows))
	end := len(rows)
	if o.End >= 0 {
		end = min(o.End, len(rows))
	}
	if end < start {
		end = start
	}
	return rows[start:end], dividers[start:end]
}

func (t *Table) alignFor(field string, o *Style) Alignment {
	if a, ok := t.aligns[field]; ok {
		return a
	}
	return o.Align
}

func (t *Table) valignFor(field string, o *Style) VAlignment {
	if v, ok := t.valigns[field]; ok {
		return v
	}
	return o.VAlign
}

func (t *Table) minWidthFor(field string, o *Style) int {
	if w, ok := t.minWidths[field]; ok {
		return w
	}
	return o.MinColumnWidth
}

func (t *Table) maxWidthFor(field string, o *Style) int {
	if w, ok := t.maxWidths[field]; ok {
		return w
	}
	return o.MaxColumnWidth
}

// rowHeight is the number of physical lines the tallest cell needs.
func rowHeight(cells [][]string) int {
	h := 1
	for _, lines := range cells {
		if len(lines) > h {
			h = len(lines)
		}
	}
	return h
}

// padLines pads a cell's line slice to height per the vertical alignment.
func padLines(lines []string, height int, v VAlignment) []string {
	missing := height - len(lines)
	if missing <= 0 {
		return lines
	}
	out := make([]string, 0, height)
	switch v {
	case VAlignMiddle:
		top := missing / 2
		out = append(out, make([]string, top)...)
		out = append(out, lines...)
		out = append(out, make([]string, missing-top)...)
	case VAlignBottom:
		out = append(out, make([]string, missing)...)
		out = append(out, lines...)
	default:
		out = append(out, lines...)
		out = append(out, make([]string, missing)...)
	}
	return out
}
