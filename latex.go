package gridtable

import "strings"

// renderLaTeX writes a tabular environment. The plain form is bare rows;
// WithFormatted draws \hline rules following the horizontal rule policy and
// column separators following the vertical one.
func (t *Table) renderLaTeX(ly *layout, o *Style) (string, error) {
	spec := make([]string, len(ly.fields))
	for i, a := range ly.aligns {
		spec[i] = latexColumn(a)
	}
	columns := strings.Join(spec, "")
	if o.Formatted && o.Border && o.VRules == VRuleAll {
		columns = "|" + strings.Join(spec, "|") + "|"
	}

	bits := []string{"\\begin{tabular}{" + columns + "}"}
	ruled := o.Formatted && o.Border
	if ruled && o.HRules != HRuleNone {
		bits = append(bits, "\\hline")
	}
	if o.Header {
		bits = append(bits, strings.Join(ly.fields, " & ")+" \\\\")
		if ruled && (o.HRules == HRuleAll || o.HRules == HRuleHeader) {
			bits = append(bits, "\\hline")
		}
	}
	for _, row := range ly.rows {
		bits = append(bits, strings.Join(row, " & ")+" \\\\")
		if ruled && o.HRules == HRuleAll {
			bits = append(bits, "\\hline")
		}
	}
	if ruled && (o.HRules == HRuleFrame || o.HRules == HRuleHeader) {
		bits = append(bits, "\\hline")
	}
	bits = append(bits, "\\end{tabular}")
	return strings.Join(bits, "\r\n"), nil
}

func latexColumn(a Alignment) string {
	switch a {
	case AlignLeft:
		return "l"
	case AlignRight:
		return "r"
	default:
		return "c"
	}
}
