package gridtable

import (
	"fmt"
	"io"
	"strings"
)

// Format represents an output format.
type Format string

const (
	Text      Format = "text"
	HTML      Format = "html"
	JSON      Format = "json"
	CSV       Format = "csv"
	LaTeX     Format = "latex"
	MediaWiki Format = "mediawiki"
	YAML      Format = "yaml"
)

var formats = []Format{Text, HTML, JSON, CSV, LaTeX, MediaWiki, YAML}

// String returns the format name.
func (f Format) String() string { return string(f) }

// Formats returns all supported format names.
func Formats() []Format {
	out := make([]Format, len(formats))
	copy(out, formats)
	return out
}

// ParseFormat parses a format string.
func ParseFormat(s string) (Format, error) {
	for _, f := range formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// render resolves the one-shot options over the persistent style, builds
// the row view, and hands both to the format-specific renderer.
func (t *Table) render(opts []Option, fn func(*layout, *Style) (string, error)) (string, error) {
	o, err := t.resolveOptions(opts)
	if err != nil {
		return "", err
	}
	ly, err := t.resolveLayout(&o)
	if err != nil {
		return "", err
	}
	return fn(ly, &o)
}

// GetString renders the table as plain text.
func (t *Table) GetString(opts ...Option) (string, error) {
	return t.render(opts, func(ly *layout, o *Style) (string, error) {
		return t.renderText(ly, o), nil
	})
}

// GetHTMLString renders the table as an HTML <table> element.
func (t *Table) GetHTMLString(opts ...Option) (string, error) {
	return t.render(opts, t.renderHTML)
}

// GetJSONString renders the table as a JSON array holding the field name
// list followed by one object per row.
func (t *Table) GetJSONString(opts ...Option) (string, error) {
	return t.render(opts, t.renderJSON)
}

// GetCSVString renders the table as RFC 4180 CSV.
func (t *Table) GetCSVString(opts ...Option) (string, error) {
	return t.render(opts, t.renderCSV)
}

// GetLaTeXString renders the table as a LaTeX tabular environment.
func (t *Table) GetLaTeXString(opts ...Option) (string, error) {
	return t.render(opts, t.renderLaTeX)
}

// GetMediaWikiString renders the table in MediaWiki markup.
func (t *Table) GetMediaWikiString(opts ...Option) (string, error) {
	return t.render(opts, t.renderMediaWiki)
}

// GetYAMLString renders the table as a YAML document with a fields list
// and one mapping per row.
func (t *Table) GetYAMLString(opts ...Option) (string, error) {
	return t.render(opts, t.renderYAML)
}

// GetFormattedString renders the table in the given format.
func (t *Table) GetFormattedString(f Format, opts ...Option) (string, error) {
	switch f {
	case Text:
		return t.GetString(opts...)
	case HTML:
		return t.GetHTMLString(opts...)
	case JSON:
		return t.GetJSONString(opts...)
	case CSV:
		return t.GetCSVString(opts...)
	case LaTeX:
		return t.GetLaTeXString(opts...)
	case MediaWiki:
		return t.GetMediaWikiString(opts...)
	case YAML:
		return t.GetYAMLString(opts...)
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
}

// Write renders the table in the given format and writes it to w.
func (t *Table) Write(w io.Writer, f Format, opts ...Option) error {
	s, err := t.GetFormattedString(f, opts...)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, s)
	return err
}

// String renders the table as plain text with the persistent style only.
// Render errors surface as an error line so the Stringer contract holds.
func (t *Table) String() string {
	s, err := t.GetString()
	if err != nil {
		return fmt.Sprintf("<gridtable render error: %v>", err)
	}
	return s
}

// Paginate renders the table as plain text in pages of pageLength rows,
// joined by the page break string. An empty break string means form feed.
func (t *Table) Paginate(pageLength int, pageBreak string, opts ...Option) (string, error) {
	if pageLength < 1 {
		return "", fmt.Errorf("%w: page length %d", ErrInvalidOption, pageLength)
	}
	if pageBreak == "" {
		pageBreak = "\f"
	}
	var pages []string
	for start := 0; ; start += pageLength {
		merged := make([]Option, 0, len(opts)+1)
		merged = append(merged, opts...)
		merged = append(merged, WithRowRange(start, start+pageLength))
		page, err := t.GetString(merged...)
		if err != nil {
			return "", err
		}
		pages = append(pages, page)
		if start+pageLength >= t.RowCount() {
			break
		}
	}
	return strings.Join(pages, pageBreak), nil
}
