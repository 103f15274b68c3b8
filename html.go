package gridtable

import (
	"fmt"
	"html"
	"sort"
	"strings"
)

// renderHTML writes the view as a <table> element. The plain form carries
// no styling; WithFormatted adds inline padding, alignment, and vertical
// alignment styles so the markup mirrors the text layout.
func (t *Table) renderHTML(ly *layout, o *Style) (string, error) {
	var lines []string

	open := []string{"<table"}
	if o.Formatted && o.Border {
		open = append(open, frameAttributes(o))
	}
	for _, k := range sortedKeys(o.Attributes) {
		open = append(open, fmt.Sprintf(" %s=%q", k, o.Attributes[k]))
	}
	open = append(open, ">")
	lines = append(lines, strings.Join(open, ""))

	if o.Title != "" {
		lines = append(lines, "    <caption>"+html.EscapeString(o.Title)+"</caption>")
	}

	br := "<br>"
	if o.XHTML {
		br = "<br/>"
	}
	escape := func(s string, on bool) string {
		if on {
			s = html.EscapeString(s)
		}
		return strings.ReplaceAll(s, "\n", br)
	}

	if o.Header {
		lines = append(lines, "    <thead>", "        <tr>")
		for _, f := range ly.fields {
			name := escape(applyHeaderStyle(f, o.HeaderStyle), o.EscapeHeader)
			if o.Formatted {
				lines = append(lines, fmt.Sprintf(
					"            <th style=\"padding-left: %dem; padding-right: %dem; text-align: center\">%s</th>",
					leftPad(o), rightPad(o), name))
			} else {
				lines = append(lines, "            <th>"+name+"</th>")
			}
		}
		lines = append(lines, "        </tr>", "    </thead>")
	}

	lines = append(lines, "    <tbody>")
	for _, row := range ly.rows {
		lines = append(lines, "        <tr>")
		for i, cell := range row {
			value := escape(cell, o.EscapeData)
			if o.Formatted {
				lines = append(lines, fmt.Sprintf(
					"            <td style=\"padding-left: %dem; padding-right: %dem; text-align: %s; vertical-align: %s\">%s</td>",
					leftPad(o), rightPad(o), cssAlign(ly.aligns[i]), cssVAlign(ly.valigns[i]), value))
			} else {
				lines = append(lines, "            <td>"+value+"</td>")
			}
		}
		lines = append(lines, "        </tr>")
	}
	lines = append(lines, "    </tbody>", "</table>")
	return strings.Join(lines, "\n"), nil
}

// frameAttributes maps the rule policies onto the legacy table frame and
// rules attributes for formatted output.
func frameAttributes(o *Style) string {
	framed := o.HRules == HRuleFrame || o.HRules == HRuleHeader || o.HRules == HRuleAll
	switch {
	case o.HRules == HRuleAll && o.VRules == VRuleAll:
		return ` frame="box" rules="all"`
	case framed && o.VRules == VRuleAll:
		return ` frame="box" rules="cols"`
	case framed && o.VRules == VRuleFrame:
		return ` frame="box"`
	case framed:
		return ` frame="hsides"`
	case o.VRules == VRuleAll:
		return ` frame="vsides" rules="cols"`
	case o.VRules == VRuleFrame:
		return ` frame="vsides"`
	default:
		return ""
	}
}

func leftPad(o *Style) int  { l, _ := o.paddings(); return l }
func rightPad(o *Style) int { _, r := o.paddings(); return r }

func cssAlign(a Alignment) string {
	switch a {
	case AlignLeft:
		return "left"
	case AlignRight:
		return "right"
	default:
		return "center"
	}
}

func cssVAlign(v VAlignment) string {
	switch v {
	case VAlignMiddle:
		return "middle"
	case VAlignBottom:
		return "bottom"
	default:
		return "top"
	}
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
