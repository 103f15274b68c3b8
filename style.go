package gridtable

import (
	"fmt"
	"maps"
)

// Alignment controls horizontal cell alignment.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

func (a Alignment) validate() error {
	if a < AlignLeft || a > AlignRight {
		return fmt.Errorf("%w: alignment %d", ErrInvalidOption, int(a))
	}
	return nil
}

// VAlignment controls vertical cell alignment within a multi-line row.
type VAlignment int

const (
	VAlignTop VAlignment = iota
	VAlignMiddle
	VAlignBottom
)

func (v VAlignment) validate() error {
	if v < VAlignTop || v > VAlignBottom {
		return fmt.Errorf("%w: vertical alignment %d", ErrInvalidOption, int(v))
	}
	return nil
}

// HRuleStyle controls where horizontal rule lines are drawn.
type HRuleStyle int

const (
	// HRuleFrame draws only the outermost top and bottom rules.
	HRuleFrame HRuleStyle = iota
	// HRuleAll draws the frame, a rule below the header, and a rule after
	// every data row.
	HRuleAll
	// HRuleNone draws no horizontal rules.
	HRuleNone
	// HRuleHeader draws the frame plus a rule below the header.
	HRuleHeader
)

func (h HRuleStyle) validate() error {
	if h < HRuleFrame || h > HRuleHeader {
		return fmt.Errorf("%w: hrules %d", ErrInvalidOption, int(h))
	}
	return nil
}

// VRuleStyle controls where vertical rule characters are drawn.
type VRuleStyle int

const (
	// VRuleFrame draws only the outermost left and right rules.
	VRuleFrame VRuleStyle = iota
	// VRuleAll draws a rule between every column as well.
	VRuleAll
	// VRuleNone draws no vertical rules.
	VRuleNone
)

func (v VRuleStyle) validate() error {
	if v < VRuleFrame || v > VRuleNone {
		return fmt.Errorf("%w: vrules %d", ErrInvalidOption, int(v))
	}
	return nil
}

// HeaderStyle transforms field names in the rendered header.
type HeaderStyle string

const (
	HeaderStyleNone  HeaderStyle = ""
	HeaderStyleCap   HeaderStyle = "cap"
	HeaderStyleTitle HeaderStyle = "title"
	HeaderStyleUpper HeaderStyle = "upper"
	HeaderStyleLower HeaderStyle = "lower"
)

func (h HeaderStyle) validate() error {
	switch h {
	case HeaderStyleNone, HeaderStyleCap, HeaderStyleTitle, HeaderStyleUpper, HeaderStyleLower:
		return nil
	}
	return fmt.Errorf("%w: header style %q", ErrInvalidOption, string(h))
}

// TableStyle names a preset combination of style attributes.
type TableStyle int

const (
	StyleDefault TableStyle = iota
	StyleMSWordFriendly
	StylePlainColumns
	StyleMarkdown
	StyleOrgMode
	StyleDoubleBorder
	StyleSingleBorder
)

// Style is the persistent render configuration owned by a Table. It lives
// across render calls; each call merges one-shot options over a copy of it
// and never writes back.
type Style struct {
	Title string

	// Fields restricts and orders the visible columns; nil shows all
	// fields in declaration order.
	Fields []string

	// Start and End select a half-open row range over the post-filter,
	// post-sort sequence. End < 0 means "through the last row".
	Start int
	End   int

	Header         bool
	UseHeaderWidth bool
	HeaderStyle    HeaderStyle

	Border                 bool
	PreserveInternalBorder bool
	HRules                 HRuleStyle
	VRules                 VRuleStyle

	// Align and VAlign are the defaults for fields without a per-field
	// override.
	Align  Alignment
	VAlign VAlignment

	// PaddingWidth is the spaces on either side of cell content;
	// LeftPadding/RightPadding override it per side when >= 0.
	PaddingWidth int
	LeftPadding  int
	RightPadding int

	VerticalChar        string
	HorizontalChar      string
	HorizontalAlignChar string // alignment marker in rules, e.g. ":" for markdown
	JunctionChar        string

	// Position-specific junction glyphs; empty strings fall back to
	// JunctionChar.
	TopJunctionChar         string
	BottomJunctionChar      string
	LeftJunctionChar        string
	RightJunctionChar       string
	TopLeftJunctionChar     string
	TopRightJunctionChar    string
	BottomLeftJunctionChar  string
	BottomRightJunctionChar string

	// MinColumnWidth and MaxColumnWidth clamp every column that has no
	// per-field override. Zero means unset.
	MinColumnWidth int
	MaxColumnWidth int

	// MinTableWidth and MaxTableWidth bound the full rendered line width,
	// including padding and rule characters. Zero means unset.
	MinTableWidth int
	MaxTableWidth int

	SortBy      string
	ReverseSort bool
	SortKey     SortKeyFunc
	RowFilter   RowFilterFunc

	PrintEmpty     bool
	OrgMode        bool
	BreakOnHyphens bool

	// HTML and LaTeX specific.
	Formatted       bool // inline-style HTML / ruled LaTeX
	XHTML           bool // <br/> instead of <br>
	EscapeHeader    bool
	EscapeData      bool
	Attributes      map[string]string
	FormattedValues bool // JSON emits display text instead of raw values

	// CSV specific. Zero means comma.
	Delimiter rune
}

// DefaultStyle is the style a new Table starts with: bordered ASCII grid,
// rules after every row, centered cells, one space of padding.
func DefaultStyle() Style {
	return Style{
		Header:         true,
		UseHeaderWidth: true,
		Border:         true,
		HRules:         HRuleAll,
		VRules:         VRuleAll,
		Align:          AlignCenter,
		VAlign:         VAlignTop,
		PaddingWidth:   1,
		LeftPadding:    -1,
		RightPadding:   -1,
		VerticalChar:   "|",
		HorizontalChar: "-",
		JunctionChar:   "+",
		End:            -1,
		PrintEmpty:     true,
		EscapeHeader:   true,
		EscapeData:     true,
		BreakOnHyphens: true,
	}
}

func (s Style) clone() Style {
	c := s
	c.Fields = append([]string(nil), s.Fields...)
	c.Attributes = maps.Clone(s.Attributes)
	return c
}

func (s *Style) paddings() (lpad, rpad int) {
	lpad, rpad = s.PaddingWidth, s.PaddingWidth
	if s.LeftPadding >= 0 {
		lpad = s.LeftPadding
	}
	if s.RightPadding >= 0 {
		rpad = s.RightPadding
	}
	return lpad, rpad
}

func (s *Style) junction(pos string) string {
	var c string
	switch pos {
	case "top":
		c = s.TopJunctionChar
	case "bottom":
		c = s.BottomJunctionChar
	case "left":
		c = s.LeftJunctionChar
	case "right":
		c = s.RightJunctionChar
	case "topLeft":
		c = s.TopLeftJunctionChar
	case "topRight":
		c = s.TopRightJunctionChar
	case "bottomLeft":
		c = s.BottomLeftJunctionChar
	case "bottomRight":
		c = s.BottomRightJunctionChar
	}
	if c == "" {
		return s.JunctionChar
	}
	return c
}

// validate checks the fully merged per-call configuration. All violations are
// configuration errors wrapping ErrInvalidOption.
func (s *Style) validate() error {
	if err := s.HRules.validate(); err != nil {
		return err
	}
	if err := s.VRules.validate(); err != nil {
		return err
	}
	if err := s.Align.validate(); err != nil {
		return err
	}
	if err := s.VAlign.validate(); err != nil {
		return err
	}
	if err := s.HeaderStyle.validate(); err != nil {
		return err
	}
	if s.PaddingWidth < 0 {
		return fmt.Errorf("%w: padding width %d must not be negative", ErrInvalidOption, s.PaddingWidth)
	}
	if s.Start < 0 {
		return fmt.Errorf("%w: start %d must not be negative", ErrInvalidOption, s.Start)
	}
	if s.End < -1 {
		return fmt.Errorf("%w: end %d", ErrInvalidOption, s.End)
	}
	if s.MinColumnWidth < 0 || s.MaxColumnWidth < 0 || s.MinTableWidth < 0 || s.MaxTableWidth < 0 {
		return fmt.Errorf("%w: width bounds must not be negative", ErrInvalidOption)
	}
	for name, c := range map[string]string{
		"vertical_char":   s.VerticalChar,
		"horizontal_char": s.HorizontalChar,
		"junction_char":   s.JunctionChar,
	} {
		if displayWidth(c) != 1 {
			return fmt.Errorf("%w: %s %q must be one cell wide", ErrInvalidOption, name, c)
		}
	}
	for name, c := range map[string]string{
		"horizontal_align_char":      s.HorizontalAlignChar,
		"top_junction_char":          s.TopJunctionChar,
		"bottom_junction_char":       s.BottomJunctionChar,
		"left_junction_char":         s.LeftJunctionChar,
		"right_junction_char":        s.RightJunctionChar,
		"top_left_junction_char":     s.TopLeftJunctionChar,
		"top_right_junction_char":    s.TopRightJunctionChar,
		"bottom_left_junction_char":  s.BottomLeftJunctionChar,
		"bottom_right_junction_char": s.BottomRightJunctionChar,
	} {
		if c != "" && displayWidth(c) != 1 {
			return fmt.Errorf("%w: %s %q must be one cell wide", ErrInvalidOption, name, c)
		}
	}
	return nil
}

// SetStyle resets the persistent style to the default and applies a preset on
// top. Per-field overrides and data are untouched.
func (t *Table) SetStyle(style TableStyle) error {
	base := DefaultStyle()
	// Carry data-selection state across preset switches.
	base.Title = t.style.Title
	base.Fields = append([]string(nil), t.style.Fields...)
	base.Start, base.End = t.style.Start, t.style.End
	base.SortBy, base.ReverseSort = t.style.SortBy, t.style.ReverseSort
	base.SortKey, base.RowFilter = t.style.SortKey, t.style.RowFilter

	switch style {
	case StyleDefault:
	case StyleMSWordFriendly:
		base.HRules = HRuleNone
	case StylePlainColumns:
		base.Border = false
		base.LeftPadding = 0
		base.RightPadding = 8
	case StyleMarkdown:
		base.HRules = HRuleHeader
		base.VerticalChar = "|"
		base.JunctionChar = "|"
		base.HorizontalAlignChar = ":"
	case StyleOrgMode:
		base.HRules = HRuleHeader
		base.OrgMode = true
	case StyleDoubleBorder:
		base.HRules = HRuleHeader
		base.HorizontalChar = "═"
		base.VerticalChar = "║"
		base.JunctionChar = "╬"
		base.TopJunctionChar = "╦"
		base.BottomJunctionChar = "╩"
		base.LeftJunctionChar = "╠"
		base.RightJunctionChar = "╣"
		base.TopLeftJunctionChar = "╔"
		base.TopRightJunctionChar = "╗"
		base.BottomLeftJunctionChar = "╚"
		base.BottomRightJunctionChar = "╝"
	case StyleSingleBorder:
		base.HRules = HRuleHeader
		base.HorizontalChar = "─"
		base.VerticalChar = "│"
		base.JunctionChar = "┼"
		base.TopJunctionChar = "┬"
		base.BottomJunctionChar = "┴"
		base.LeftJunctionChar = "├"
		base.RightJunctionChar = "┤"
		base.TopLeftJunctionChar = "┌"
		base.TopRightJunctionChar = "┐"
		base.BottomLeftJunctionChar = "└"
		base.BottomRightJunctionChar = "┘"
	default:
		return fmt.Errorf("%w: table style %d", ErrInvalidOption, int(style))
	}
	t.style = base
	t.preset = style
	return nil
}
