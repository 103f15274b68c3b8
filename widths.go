package gridtable

// computeWidths resolves the final display width of each visible column:
// natural content width clamped into the per-field min/max band, then
// adjusted to honour the whole-table width bounds and the title.
func (t *Table) computeWidths(ly *layout, o *Style) []int {
	widths := make([]int, len(ly.fields))

	if o.Header && o.UseHeaderWidth {
		for i, f := range ly.fields {
			widths[i] = maxLineWidth(f)
		}
	}
	for _, row := range ly.rows {
		for i, cell := range row {
			w := maxLineWidth(cell)
			if mw := t.maxWidthFor(ly.fields[i], o); mw > 0 && w > mw {
				w = mw
			}
			if w > widths[i] {
				widths[i] = w
			}
		}
	}
	for i, f := range ly.fields {
		if mw := t.minWidthFor(f, o); widths[i] < mw {
			widths[i] = mw
		}
	}

	// Markdown needs room for the alignment markers in the separator row.
	if t.preset == StyleMarkdown {
		for i, a := range ly.aligns {
			floor := 1
			if a == AlignCenter {
				floor = 3
			}
			if widths[i] < floor {
				widths[i] = floor
			}
		}
	}

	if o.MaxTableWidth > 0 {
		t.shrinkToTableWidth(ly, widths, o)
	}

	lpad, rpad := o.paddings()
	if o.MinTableWidth > 0 || o.Title != "" {
		desired := o.MinTableWidth
		if o.Title != "" {
			// The title needs one line of borders + padding around it.
			if tw := displayWidth(o.Title) + lpad + rpad + 2; tw > desired {
				desired = tw
			}
		}
		borders := tableWidth(widths, o) - sum(widths)
		content := desired - borders
		if total := sum(widths); total < content && total > 0 {
			scale := float64(content) / float64(total)
			grown := 0
			for i := range widths {
				widths[i] = int(scale * float64(widths[i]))
				grown += widths[i]
			}
			widths[len(widths)-1] += content - grown
		}
	}

	return widths
}

// shrinkToTableWidth narrows the widest column one character at a time until
// the rendered table fits the cap or no column can give up more space. On a
// width tie the leftmost column shrinks first.
func (t *Table) shrinkToTableWidth(ly *layout, widths []int, o *Style) {
	for tableWidth(widths, o) > o.MaxTableWidth {
		best := -1
		for i, w := range widths {
			floor := max(1, t.minWidthFor(ly.fields[i], o))
			if w <= floor {
				continue
			}
			if best < 0 || w > widths[best] {
				best = i
			}
		}
		if best < 0 {
			return
		}
		widths[best]--
	}
}

// tableWidth is the total rendered width of one horizontal rule: content
// plus padding plus however many vertical rule characters the style draws.
func tableWidth(widths []int, o *Style) int {
	lpad, rpad := o.paddings()
	total := sum(widths) + len(widths)*(lpad+rpad)
	if o.Border {
		switch o.VRules {
		case VRuleAll:
			total += len(widths) + 1
		case VRuleFrame:
			total += 2
		}
	} else if o.PreserveInternalBorder && len(widths) > 0 {
		total += len(widths) - 1
	}
	return total
}

func sum(xs []int) int {
	n := 0
	for _, x := range xs {
		n += x
	}
	return n
}
