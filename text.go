package gridtable

import (
	"strings"
	"unicode"

	"github.com/mattn/go-runewidth"
)

func (t *Table) renderText(ly *layout, o *Style) string {
	if len(ly.rows) == 0 && (!o.PrintEmpty || !o.Border) {
		return ""
	}

	// Markdown has no outer frame; its only rule is the header separator.
	frame := t.preset != StyleMarkdown

	var lines []string
	if o.Title != "" {
		lines = append(lines, t.renderTitle(ly, o)...)
	}

	drewHeaderRule := false
	if o.Header {
		header, ruled := t.renderHeader(ly, o, frame)
		drewHeaderRule = ruled
		lines = append(lines, header...)
	} else if frame && o.Border && o.HRules != HRuleNone {
		lines = append(lines, t.drawRule(ly, o, "top"))
		drewHeaderRule = true
	}

	midRule := t.drawRule(ly, o, "")
	for i, row := range ly.rows {
		lines = append(lines, t.renderRow(ly, o, row)...)
		last := i == len(ly.rows)-1
		if !last && (o.HRules == HRuleAll || ly.dividers[i]) && (o.Border || o.PreserveInternalBorder) {
			lines = append(lines, midRule)
		}
	}

	if frame && o.Border && o.HRules != HRuleNone {
		if len(ly.rows) > 0 || !drewHeaderRule {
			lines = append(lines, t.drawRule(ly, o, "bottom"))
		}
	}
	return strings.Join(lines, "\n")
}

// drawRule builds one horizontal rule. where selects the junction variants:
// "top", "bottom", or "" for an internal rule.
func (t *Table) drawRule(ly *layout, o *Style, where string) string {
	if !o.Border && !o.PreserveInternalBorder {
		return ""
	}
	lpad, rpad := o.paddings()
	capped := o.VRules == VRuleAll || o.VRules == VRuleFrame
	leftPos, midPos, rightPos := "left", "", "right"
	if where != "" {
		leftPos, midPos, rightPos = where+"Left", where, where+"Right"
	}

	var b strings.Builder
	if capped {
		b.WriteString(o.junction(leftPos))
	} else {
		b.WriteString(o.HorizontalChar)
	}
	for i, w := range ly.widths {
		line := strings.Repeat(o.HorizontalChar, w+lpad+rpad)
		if o.HorizontalAlignChar != "" {
			line = markAlignment(line, ly.aligns[i], lpad, rpad, o.HorizontalAlignChar)
		}
		b.WriteString(line)
		if i < len(ly.widths)-1 {
			if o.VRules == VRuleAll {
				b.WriteString(o.junction(midPos))
			} else {
				b.WriteString(o.HorizontalChar)
			}
		}
	}
	if capped {
		b.WriteString(o.junction(rightPos))
	} else {
		b.WriteString(o.HorizontalChar)
	}

	rule := b.String()
	if !o.Border && o.PreserveInternalBorder {
		r := []rune(rule)
		if len(r) >= 2 {
			rule = string(r[1 : len(r)-1])
		}
	}
	if o.OrgMode {
		r := []rune(rule)
		if len(r) >= 2 {
			r[0] = []rune(o.VerticalChar)[0]
			r[len(r)-1] = r[0]
			rule = string(r)
		}
	}
	return rule
}

// markAlignment swaps the alignment marker into a rule segment, markdown
// style: ":---" for left, "---:" for right, ":--:" for center.
func markAlignment(line string, a Alignment, lpad, rpad int, mark string) string {
	r := []rune(line)
	m := []rune(mark)[0]
	if a == AlignLeft || a == AlignCenter {
		for j := 0; j < lpad && j < len(r); j++ {
			r[j] = ' '
		}
		if lpad < len(r) {
			r[lpad] = m
		}
	}
	if a == AlignCenter || a == AlignRight {
		n := len(r)
		if n > rpad {
			r[n-rpad-1] = m
		}
		for j := n - rpad; j < n; j++ {
			r[j] = ' '
		}
	}
	return string(r)
}

// renderTitle draws the title banner: a junction-free top rule when the
// style frames the table, then the centered title between the frame edges.
func (t *Table) renderTitle(ly *layout, o *Style) []string {
	var lines []string
	if o.Border && (o.VRules == VRuleAll || o.VRules == VRuleFrame) {
		flat := o.clone()
		flat.VRules = VRuleFrame
		lines = append(lines, t.drawRule(ly, &flat, "top"))
	}

	width := displayWidth(t.drawRule(ly, o, ""))
	endpoint := " "
	if o.VRules == VRuleAll || o.VRules == VRuleFrame {
		endpoint = o.VerticalChar
	}
	lpad, rpad := o.paddings()
	padded := strings.Repeat(" ", lpad) + o.Title + strings.Repeat(" ", rpad)
	lines = append(lines, endpoint+justify(padded, width-2, AlignCenter)+endpoint)
	return lines
}

// renderHeader returns the header block and whether it started with a rule.
func (t *Table) renderHeader(ly *layout, o *Style, frame bool) ([]string, bool) {
	var lines []string
	ruled := false
	if frame && o.Border && o.HRules != HRuleNone {
		rule := t.drawRule(ly, o, "top")
		if o.Title != "" && (o.VRules == VRuleAll || o.VRules == VRuleFrame) {
			// The rule below the title meets the frame sides, not corners.
			r := []rune(rule)
			r[0] = []rune(o.junction("left"))[0]
			r[len(r)-1] = []rune(o.junction("right"))[0]
			rule = string(r)
		}
		lines = append(lines, rule)
		ruled = true
	}

	cells := make([]string, len(ly.fields))
	for i, f := range ly.fields {
		name := applyHeaderStyle(f, o.HeaderStyle)
		if displayWidth(name) > ly.widths[i] {
			name = runewidth.Truncate(name, ly.widths[i], "")
		}
		cells[i] = name
	}
	lines = append(lines, t.joinCells(ly, o, cells))

	if (o.HRules == HRuleAll || o.HRules == HRuleHeader) && (o.Border || o.PreserveInternalBorder) {
		lines = append(lines, t.drawRule(ly, o, ""))
	}
	return lines, ruled
}

func (t *Table) renderRow(ly *layout, o *Style, row []string) []string {
	cells := make([][]string, len(row))
	for i, cell := range row {
		cells[i] = wrapText(cell, ly.widths[i], o.BreakOnHyphens)
	}
	height := rowHeight(cells)
	for i := range cells {
		cells[i] = padLines(cells[i], height, ly.valigns[i])
	}

	lines := make([]string, height)
	line := make([]string, len(row))
	for y := 0; y < height; y++ {
		for i := range cells {
			line[i] = cells[i][y]
		}
		lines[y] = t.joinCells(ly, o, line)
	}
	return lines
}

// joinCells pads and justifies one physical line of cells and joins them
// with whatever vertical separators the style calls for.
func (t *Table) joinCells(ly *layout, o *Style, cells []string) string {
	lpad, rpad := o.paddings()
	var b strings.Builder
	if o.Border {
		if o.VRules == VRuleAll || o.VRules == VRuleFrame {
			b.WriteString(o.VerticalChar)
		} else {
			b.WriteString(" ")
		}
	}
	if len(cells) == 0 && o.Border && (o.VRules == VRuleAll || o.VRules == VRuleFrame) {
		b.WriteString(o.VerticalChar)
	}
	for i, cell := range cells {
		b.WriteString(strings.Repeat(" ", lpad))
		b.WriteString(justify(cell, ly.widths[i], ly.aligns[i]))
		b.WriteString(strings.Repeat(" ", rpad))
		last := i == len(cells)-1
		switch {
		case o.Border && o.VRules == VRuleAll:
			b.WriteString(o.VerticalChar)
		case o.Border && o.VRules == VRuleFrame:
			if last {
				b.WriteString(o.VerticalChar)
			} else {
				b.WriteString(" ")
			}
		case o.Border:
			b.WriteString(" ")
		case o.PreserveInternalBorder:
			if last {
				b.WriteString(" ")
			} else {
				b.WriteString(o.VerticalChar)
			}
		}
	}
	return b.String()
}

// justify pads text to width. Centering biases the extra space to the right
// for odd-width text and to the left otherwise, so repeated renders of the
// same cell land on the same column.
func justify(text string, width int, a Alignment) string {
	excess := width - displayWidth(text)
	if excess <= 0 {
		return text
	}
	switch a {
	case AlignLeft:
		return text + strings.Repeat(" ", excess)
	case AlignRight:
		return strings.Repeat(" ", excess) + text
	default:
		half := excess / 2
		if excess%2 == 1 {
			if displayWidth(text)%2 == 1 {
				return strings.Repeat(" ", half) + text + strings.Repeat(" ", half+1)
			}
			return strings.Repeat(" ", half+1) + text + strings.Repeat(" ", half)
		}
		return strings.Repeat(" ", half) + text + strings.Repeat(" ", half)
	}
}

func applyHeaderStyle(name string, style HeaderStyle) string {
	switch style {
	case HeaderStyleCap:
		if name == "" {
			return name
		}
		r := []rune(name)
		return string(unicode.ToUpper(r[0])) + strings.ToLower(string(r[1:]))
	case HeaderStyleTitle:
		return titleCase(name)
	case HeaderStyleUpper:
		return strings.ToUpper(name)
	case HeaderStyleLower:
		return strings.ToLower(name)
	default:
		return name
	}
}

// titleCase uppercases the first letter of every word, where a word starts
// after any non-letter rune.
func titleCase(s string) string {
	var b strings.Builder
	prevLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			if prevLetter {
				b.WriteRune(unicode.ToLower(r))
			} else {
				b.WriteRune(unicode.ToUpper(r))
			}
			prevLetter = true
		} else {
			b.WriteRune(r)
			prevLetter = false
		}
	}
	return b.String()
}
