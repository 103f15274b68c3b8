package gridtable

import (
	"database/sql"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
)

// ErrParse reports malformed input handed to one of the From constructors.
var ErrParse = errors.New("malformed input")

// applyOptions folds render options into the persistent style of a freshly
// built table, so From constructors can take one-shot styling.
func applyOptions(t *Table, opts []Option) *Table {
	for _, opt := range opts {
		opt(&t.style)
	}
	return t
}

// FromCSV builds a table from CSV input. With a nil fieldNames slice the
// first record becomes the field names; otherwise every record is data.
// Options are applied to the new table's persistent style.
func FromCSV(r io.Reader, fieldNames []string, opts ...Option) (*Table, error) {
	cr := csv.NewReader(r)
	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	if fieldNames == nil {
		if len(records) == 0 {
			return nil, fmt.Errorf("%w: no header record", ErrParse)
		}
		fieldNames, records = records[0], records[1:]
	}
	t := New()
	if err := t.SetFieldNames(fieldNames); err != nil {
		return nil, err
	}
	for _, record := range records {
		row := make([]any, len(record))
		for i, cell := range record {
			row[i] = cell
		}
		if err := t.AddRow(row); err != nil {
			return nil, err
		}
	}
	return applyOptions(t, opts), nil
}

// FromJSON builds a table from the JSON shape GetJSONString produces: an
// array whose first element is the field name list and whose remaining
// elements are row objects.
func FromJSON(data []byte, opts ...Option) (*Table, error) {
	var elements []json.RawMessage
	if err := json.Unmarshal(data, &elements); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	if len(elements) == 0 {
		return nil, fmt.Errorf("%w: no field name list", ErrParse)
	}
	var fields []string
	if err := json.Unmarshal(elements[0], &fields); err != nil {
		return nil, fmt.Errorf("%w: first element is not a field name list: %v", ErrParse, err)
	}
	t := New()
	if err := t.SetFieldNames(fields); err != nil {
		return nil, err
	}
	for _, element := range elements[1:] {
		var obj map[string]any
		if err := json.Unmarshal(element, &obj); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrParse, err)
		}
		row := make([]any, len(fields))
		for i, f := range fields {
			row[i] = obj[f]
		}
		if err := t.AddRow(row); err != nil {
			return nil, err
		}
	}
	return applyOptions(t, opts), nil
}

// FromDBRows builds a table from a database/sql result set, consuming it.
// Column names become field names and []byte values arrive as strings.
func FromDBRows(rows *sql.Rows, opts ...Option) (*Table, error) {
	columns, err := rows.Columns()
	if err != nil {
		return nil, err
	}
	t := New()
	if err := t.SetFieldNames(columns); err != nil {
		return nil, err
	}
	values := make([]any, len(columns))
	scan := make([]any, len(columns))
	for i := range values {
		scan[i] = &values[i]
	}
	for rows.Next() {
		if err := rows.Scan(scan...); err != nil {
			return nil, err
		}
		row := make([]any, len(columns))
		for i, v := range values {
			if b, ok := v.([]byte); ok {
				v = string(b)
			}
			row[i] = v
		}
		if err := t.AddRow(row); err != nil {
			return nil, err
		}
	}
	return applyOptions(t, opts), rows.Err()
}

// FromHTML builds one table per <table> element in the document.
func FromHTML(data string, opts ...Option) ([]*Table, error) {
	doc, err := html.Parse(strings.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	var tables []*Table
	for _, node := range findElements(doc, "table") {
		t, err := tableFromNode(node)
		if err != nil {
			return nil, err
		}
		tables = append(tables, applyOptions(t, opts))
	}
	if len(tables) == 0 {
		return nil, fmt.Errorf("%w: no <table> element", ErrParse)
	}
	return tables, nil
}

// FromHTMLOne is FromHTML for documents expected to hold exactly one table.
func FromHTMLOne(data string, opts ...Option) (*Table, error) {
	tables, err := FromHTML(data, opts...)
	if err != nil {
		return nil, err
	}
	if len(tables) != 1 {
		return nil, fmt.Errorf("%w: expected one <table> element, found %d", ErrParse, len(tables))
	}
	return tables[0], nil
}

func tableFromNode(table *html.Node) (*Table, error) {
	var fields []string
	var rows [][]any
	for _, tr := range findElements(table, "tr") {
		var cells []any
		header := false
		for c := tr.FirstChild; c != nil; c = c.NextSibling {
			if c.Type != html.ElementNode {
				continue
			}
			switch c.Data {
			case "th":
				header = true
				fallthrough
			case "td":
				cells = append(cells, strings.TrimSpace(nodeText(c)))
			}
		}
		if len(cells) == 0 {
			continue
		}
		if header && fields == nil {
			fields = make([]string, len(cells))
			for i, c := range cells {
				fields[i] = c.(string)
			}
			continue
		}
		rows = append(rows, cells)
	}
	if fields == nil {
		if len(rows) == 0 {
			return New(), nil
		}
		fields = make([]string, len(rows[0]))
		for i := range fields {
			fields[i] = fmt.Sprintf("Field %d", i+1)
		}
	}
	t := New()
	if err := t.SetFieldNames(fields); err != nil {
		return nil, err
	}
	for _, row := range rows {
		if err := t.AddRow(row); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// findElements walks the parse tree and collects elements by tag name,
// skipping descent into matches so nested tables come back whole.
func findElements(n *html.Node, tag string) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == tag {
			out = append(out, n)
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c)
	}
	return out
}

func nodeText(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}

// FromMediaWiki builds a table from wiki table markup, the inverse of
// GetMediaWikiString. Cells may sit on one "||"-joined line or one per line.
func FromMediaWiki(data string, opts ...Option) (*Table, error) {
	var t *Table
	var fields []string
	var row []any
	title := ""

	flush := func() error {
		if t == nil || len(row) == 0 {
			return nil
		}
		err := t.AddRow(row)
		row = nil
		return err
	}

	for _, raw := range strings.Split(data, "\n") {
		line := strings.TrimSpace(raw)
		switch {
		case line == "" || strings.HasPrefix(line, "{|"):
			continue
		case strings.HasPrefix(line, "|+"):
			title = strings.TrimSpace(line[2:])
		case line == "|-":
			if err := flush(); err != nil {
				return nil, err
			}
		case strings.HasPrefix(line, "!"):
			for _, cell := range strings.Split(line[1:], "!!") {
				fields = append(fields, strings.TrimSpace(cell))
			}
			t = New()
			if err := t.SetFieldNames(fields); err != nil {
				return nil, err
			}
		case line == "|}":
			if err := flush(); err != nil {
				return nil, err
			}
		case strings.HasPrefix(line, "|"):
			if t == nil {
				return nil, fmt.Errorf("%w: data row before header row", ErrParse)
			}
			for _, cell := range strings.Split(line[1:], "||") {
				row = append(row, strings.TrimSpace(cell))
			}
		}
	}
	if t == nil {
		return nil, fmt.Errorf("%w: no header row", ErrParse)
	}
	if err := flush(); err != nil {
		return nil, err
	}
	if title != "" {
		t.Style().Title = title
	}
	return applyOptions(t, opts), nil
}
