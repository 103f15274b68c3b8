package gridtable

import (
	"fmt"
	"maps"
	"slices"
)

// Option is a one-shot render override. Options apply to a copy of the
// table's persistent style for the duration of a single render call and never
// leak back into it.
type Option func(*Style)

// WithTitle sets the table title for this call.
func WithTitle(title string) Option { return func(s *Style) { s.Title = title } }

// WithFields restricts the visible columns to the named fields, in the given
// order.
func WithFields(fields ...string) Option {
	return func(s *Style) { s.Fields = slices.Clone(fields) }
}

// WithRowRange selects rows[start:end] (half-open) of the post-filter,
// post-sort sequence. Pass end < 0 for "through the last row".
func WithRowRange(start, end int) Option {
	return func(s *Style) { s.Start, s.End = start, end }
}

// WithHeader toggles the header row.
func WithHeader(on bool) Option { return func(s *Style) { s.Header = on } }

// WithHeaderStyle transforms header text (cap, title, upper, lower).
func WithHeaderStyle(hs HeaderStyle) Option { return func(s *Style) { s.HeaderStyle = hs } }

// WithBorder toggles the outer border.
func WithBorder(on bool) Option { return func(s *Style) { s.Border = on } }

// WithPreserveInternalBorder keeps internal rules when the border is off.
func WithPreserveInternalBorder(on bool) Option {
	return func(s *Style) { s.PreserveInternalBorder = on }
}

// WithHRules sets the horizontal rule policy.
func WithHRules(h HRuleStyle) Option { return func(s *Style) { s.HRules = h } }

// WithVRules sets the vertical rule policy.
func WithVRules(v VRuleStyle) Option { return func(s *Style) { s.VRules = v } }

// WithAlign sets the default column alignment for this call.
func WithAlign(a Alignment) Option { return func(s *Style) { s.Align = a } }

// WithVAlign sets the default vertical cell alignment for this call.
func WithVAlign(v VAlignment) Option { return func(s *Style) { s.VAlign = v } }

// WithPadding sets both padding widths.
func WithPadding(w int) Option {
	return func(s *Style) { s.PaddingWidth = w; s.LeftPadding, s.RightPadding = -1, -1 }
}

// WithLeftPadding overrides the left padding width.
func WithLeftPadding(w int) Option { return func(s *Style) { s.LeftPadding = w } }

// WithRightPadding overrides the right padding width.
func WithRightPadding(w int) Option { return func(s *Style) { s.RightPadding = w } }

// WithSortBy sorts the rendered rows by the named field's raw values.
func WithSortBy(field string) Option { return func(s *Style) { s.SortBy = field } }

// WithReverseSort reverses the fully sorted order, ties included.
func WithReverseSort(on bool) Option { return func(s *Style) { s.ReverseSort = on } }

// WithSortKey maps the sort column's raw value to the comparison key.
func WithSortKey(fn SortKeyFunc) Option { return func(s *Style) { s.SortKey = fn } }

// WithRowFilter excludes rows the predicate rejects from the rendered view.
func WithRowFilter(fn RowFilterFunc) Option { return func(s *Style) { s.RowFilter = fn } }

// WithMinTableWidth sets the minimum full-line width.
func WithMinTableWidth(w int) Option { return func(s *Style) { s.MinTableWidth = w } }

// WithMaxTableWidth sets the maximum full-line width; the widest columns are
// shrunk (and their cells wrapped) to fit it.
func WithMaxTableWidth(w int) Option { return func(s *Style) { s.MaxTableWidth = w } }

// WithPrintEmpty controls whether a rowless table renders its frame and
// header instead of an empty string.
func WithPrintEmpty(on bool) Option { return func(s *Style) { s.PrintEmpty = on } }

// WithBreakOnHyphens toggles hyphen-aware wrapping.
func WithBreakOnHyphens(on bool) Option { return func(s *Style) { s.BreakOnHyphens = on } }

// WithAttributes sets the attribute map for the HTML <table> tag and the
// MediaWiki table header.
func WithAttributes(attrs map[string]string) Option {
	return func(s *Style) { s.Attributes = maps.Clone(attrs) }
}

// WithEscapeHeader toggles HTML escaping of header text.
func WithEscapeHeader(on bool) Option { return func(s *Style) { s.EscapeHeader = on } }

// WithEscapeData toggles HTML escaping of cell text.
func WithEscapeData(on bool) Option { return func(s *Style) { s.EscapeData = on } }

// WithFormatted enables the styled HTML (inline CSS) and ruled LaTeX output
// modes.
func WithFormatted(on bool) Option { return func(s *Style) { s.Formatted = on } }

// WithXHTML emits <br/> instead of <br> in HTML output.
func WithXHTML(on bool) Option { return func(s *Style) { s.XHTML = on } }

// WithFormattedValues makes JSON output use display text instead of raw
// values.
func WithFormattedValues(on bool) Option { return func(s *Style) { s.FormattedValues = on } }

// WithDelimiter sets the CSV field delimiter.
func WithDelimiter(d rune) Option { return func(s *Style) { s.Delimiter = d } }

// WithStyleOverride replaces the whole per-call style. Useful for one-shot
// glyph changes without touching persistent state.
func WithStyleOverride(style Style) Option { return func(s *Style) { *s = style.clone() } }

// resolveOptions merges one-shot options over a copy of the persistent style
// and validates the result against the current field set.
func (t *Table) resolveOptions(opts []Option) (Style, error) {
	o := t.style.clone()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.validate(); err != nil {
		return Style{}, err
	}
	for _, f := range o.Fields {
		if !slices.Contains(t.fields, f) {
			return Style{}, fmt.Errorf("%w: %q in fields selection", ErrUnknownField, f)
		}
	}
	if o.SortBy != "" {
		if !slices.Contains(t.fields, o.SortBy) {
			return Style{}, fmt.Errorf("%w: %q in sortby", ErrUnknownField, o.SortBy)
		}
	}
	return o, nil
}
