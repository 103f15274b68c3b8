package gridtable

import (
	"errors"
	"fmt"
	"maps"
	"slices"
)

// Sentinel errors for programmatic error handling.
var (
	ErrDuplicateField    = errors.New("duplicate field name")
	ErrRowLength         = errors.New("row length mismatch")
	ErrColumnLength      = errors.New("column length mismatch")
	ErrUnknownField      = errors.New("unknown field")
	ErrRowIndex          = errors.New("row index out of range")
	ErrInvalidOption     = errors.New("invalid option")
	ErrUnsupportedFormat = errors.New("unsupported format")
)

// FormatterFunc converts a raw cell value to display text for one field.
// Its result is used verbatim; no numeric format specs are applied on top.
type FormatterFunc func(field string, value any) (string, error)

// RowFilterFunc reports whether a row (raw values, field order) should be
// included in the rendered view. Canonical storage is never affected.
type RowFilterFunc func(row []any) bool

// SortKeyFunc maps the sort column's raw value to the key actually compared.
type SortKeyFunc func(value any) any

// Table owns an ordered set of fields and a sequence of rows, plus persistent
// style state used as the default for every render call. A Table is not safe
// for concurrent mutation; callers must serialize externally.
type Table struct {
	fields   []string
	rows     [][]any
	dividers []bool

	// Rows added before any fields are declared wait here until
	// SetFieldNames commits them.
	pending         [][]any
	pendingDividers []bool

	style  Style
	preset TableStyle

	aligns       map[string]Alignment
	valigns      map[string]VAlignment
	minWidths    map[string]int
	maxWidths    map[string]int
	intFormats   map[string]string
	floatFormats map[string]string
	formatters   map[string]FormatterFunc
	noneFormats  map[string]string
}

// New returns an empty Table with the default style. Field names, when given,
// are declared immediately; duplicate names panic here because a constructor
// argument list is a programming error, not input data. Use SetFieldNames to
// handle untrusted names.
func New(fieldNames ...string) *Table {
	t := &Table{
		style:        DefaultStyle(),
		preset:       StyleDefault,
		aligns:       map[string]Alignment{},
		valigns:      map[string]VAlignment{},
		minWidths:    map[string]int{},
		maxWidths:    map[string]int{},
		intFormats:   map[string]string{},
		floatFormats: map[string]string{},
		formatters:   map[string]FormatterFunc{},
		noneFormats:  map[string]string{},
	}
	if len(fieldNames) > 0 {
		if err := t.SetFieldNames(fieldNames); err != nil {
			panic(err)
		}
	}
	return t
}

// FieldNames returns a copy of the declared field names in display order.
func (t *Table) FieldNames() []string {
	return slices.Clone(t.fields)
}

// RowCount returns the number of committed rows.
func (t *Table) RowCount() int { return len(t.rows) }

// ColCount returns the number of declared fields.
func (t *Table) ColCount() int { return len(t.fields) }

// Rows returns a copy of the stored rows in insertion order.
func (t *Table) Rows() [][]any {
	out := make([][]any, len(t.rows))
	for i, row := range t.rows {
		out[i] = slices.Clone(row)
	}
	return out
}

// Style returns a pointer to the persistent style so callers can adjust
// long-lived defaults in place. Render calls never mutate it.
func (t *Table) Style() *Style { return &t.style }

// SetFieldNames declares or renames the table's fields.
//
// When no fields exist yet, the names become the field set and any rows that
// were buffered before declaration are committed (each must match the new
// field count). When fields already exist the list must have the same length;
// columns are renamed in place and per-column overrides follow the rename.
func (t *Table) SetFieldNames(names []string) error {
	seen := make(map[string]struct{}, len(names))
	for _, name := range names {
		if _, ok := seen[name]; ok {
			return fmt.Errorf("%w: %q", ErrDuplicateField, name)
		}
		seen[name] = struct{}{}
	}
	if len(t.fields) > 0 {
		if len(names) != len(t.fields) {
			return fmt.Errorf("%w: got %d field names, table has %d fields", ErrRowLength, len(names), len(t.fields))
		}
		old := t.fields
		t.fields = slices.Clone(names)
		t.renameOverrides(old, names)
		return nil
	}
	for i, row := range t.pending {
		if len(row) != len(names) {
			return fmt.Errorf("%w: buffered row %d has %d values, %d fields declared", ErrRowLength, i, len(row), len(names))
		}
	}
	t.fields = slices.Clone(names)
	t.rows = append(t.rows, t.pending...)
	t.dividers = append(t.dividers, t.pendingDividers...)
	t.pending = nil
	t.pendingDividers = nil
	return nil
}

func (t *Table) renameOverrides(old, new []string) {
	renameKeys(t.aligns, old, new)
	renameKeys(t.valigns, old, new)
	renameKeys(t.minWidths, old, new)
	renameKeys(t.maxWidths, old, new)
	renameKeys(t.intFormats, old, new)
	renameKeys(t.floatFormats, old, new)
	renameKeys(t.formatters, old, new)
	renameKeys(t.noneFormats, old, new)
}

func renameKeys[V any](m map[string]V, old, new []string) {
	moved := make(map[string]V)
	for i, o := range old {
		if v, ok := m[o]; ok {
			delete(m, o)
			moved[new[i]] = v
		}
	}
	for k, v := range moved {
		m[k] = v
	}
}

func (t *Table) fieldIndex(name string) (int, error) {
	if i := slices.Index(t.fields, name); i >= 0 {
		return i, nil
	}
	return -1, fmt.Errorf("%w: %q", ErrUnknownField, name)
}

// AddRow appends one row. The row must have exactly one value per declared
// field. Rows added before any fields are declared are buffered and committed
// by SetFieldNames.
func (t *Table) AddRow(row []any) error {
	return t.addRow(row, false)
}

// AddRowWithDivider appends one row and marks it so a horizontal rule is
// drawn after it in plain-text output.
func (t *Table) AddRowWithDivider(row []any) error {
	return t.addRow(row, true)
}

func (t *Table) addRow(row []any, divider bool) error {
	if len(t.fields) == 0 {
		t.pending = append(t.pending, slices.Clone(row))
		t.pendingDividers = append(t.pendingDividers, divider)
		return nil
	}
	if len(row) != len(t.fields) {
		return fmt.Errorf("%w: row has %d values, table has %d fields", ErrRowLength, len(row), len(t.fields))
	}
	t.rows = append(t.rows, slices.Clone(row))
	t.dividers = append(t.dividers, divider)
	return nil
}

// AddRows appends rows in order. The first invalid row aborts the call; rows
// before it stay added.
func (t *Table) AddRows(rows [][]any) error {
	for _, row := range rows {
		if err := t.AddRow(row); err != nil {
			return err
		}
	}
	return nil
}

// AddDivider marks the most recently added row so a horizontal rule follows
// it. A no-op on an empty table.
func (t *Table) AddDivider() {
	if n := len(t.dividers); n > 0 {
		t.dividers[n-1] = true
	} else if n := len(t.pendingDividers); n > 0 {
		t.pendingDividers[n-1] = true
	}
}

// DelRow deletes the row at index i, preserving the order of the rest.
func (t *Table) DelRow(i int) error {
	if i < 0 || i >= len(t.rows) {
		return fmt.Errorf("%w: %d (table has %d rows)", ErrRowIndex, i, len(t.rows))
	}
	t.rows = slices.Delete(t.rows, i, i+1)
	t.dividers = slices.Delete(t.dividers, i, i+1)
	return nil
}

// AddColumn appends a new field with its data. When the table has rows the
// column may be shorter; missing cells are padded with the empty string. When
// the table has no rows the column's values become the first rows.
func (t *Table) AddColumn(name string, column []any) error {
	if slices.Contains(t.fields, name) {
		return fmt.Errorf("%w: %q", ErrDuplicateField, name)
	}
	if len(t.fields) == 0 && len(t.pending) > 0 {
		return fmt.Errorf("%w: %d rows are waiting for field names; declare fields with SetFieldNames first", ErrRowLength, len(t.pending))
	}
	if len(t.rows) > 0 && len(column) > len(t.rows) {
		return fmt.Errorf("%w: column %q has %d values, table has %d rows", ErrColumnLength, name, len(column), len(t.rows))
	}
	t.fields = append(t.fields, name)
	for i := range column {
		if i >= len(t.rows) {
			// Only reachable when the table had no rows: the column
			// becomes the first one and defines the row count.
			t.rows = append(t.rows, make([]any, len(t.fields)-1))
			t.dividers = append(t.dividers, false)
			for j := range t.rows[i] {
				t.rows[i][j] = ""
			}
		}
		t.rows[i] = append(t.rows[i], column[i])
	}
	for i := len(column); i < len(t.rows); i++ {
		t.rows[i] = append(t.rows[i], "")
	}
	return nil
}

// AddAutoIndex prepends a column counting rows from 1.
func (t *Table) AddAutoIndex(name string) error {
	if slices.Contains(t.fields, name) {
		return fmt.Errorf("%w: %q", ErrDuplicateField, name)
	}
	t.fields = slices.Insert(t.fields, 0, name)
	for i := range t.rows {
		t.rows[i] = slices.Insert(t.rows[i], 0, any(i+1))
	}
	return nil
}

// DelColumn removes a field and its data from every row.
func (t *Table) DelColumn(name string) error {
	idx, err := t.fieldIndex(name)
	if err != nil {
		return err
	}
	t.fields = slices.Delete(t.fields, idx, idx+1)
	for i := range t.rows {
		t.rows[i] = slices.Delete(t.rows[i], idx, idx+1)
	}
	delete(t.aligns, name)
	delete(t.valigns, name)
	delete(t.minWidths, name)
	delete(t.maxWidths, name)
	delete(t.intFormats, name)
	delete(t.floatFormats, name)
	delete(t.formatters, name)
	delete(t.noneFormats, name)
	return nil
}

// ClearRows drops all rows and dividers; fields and style are retained.
func (t *Table) ClearRows() {
	t.rows = nil
	t.dividers = nil
	t.pending = nil
	t.pendingDividers = nil
}

// Clear drops rows, fields, and per-field overrides; style attributes are
// retained.
func (t *Table) Clear() {
	t.ClearRows()
	t.fields = nil
	t.aligns = map[string]Alignment{}
	t.valigns = map[string]VAlignment{}
	t.minWidths = map[string]int{}
	t.maxWidths = map[string]int{}
	t.intFormats = map[string]string{}
	t.floatFormats = map[string]string{}
	t.formatters = map[string]FormatterFunc{}
	t.noneFormats = map[string]string{}
}

// Copy returns a deep, independent copy. The copy shares no mutable state
// with the original; formatter functions are shared by reference.
func (t *Table) Copy() *Table {
	n := &Table{
		fields:       slices.Clone(t.fields),
		dividers:     slices.Clone(t.dividers),
		style:        t.style.clone(),
		preset:       t.preset,
		aligns:       maps.Clone(t.aligns),
		valigns:      maps.Clone(t.valigns),
		minWidths:    maps.Clone(t.minWidths),
		maxWidths:    maps.Clone(t.maxWidths),
		intFormats:   maps.Clone(t.intFormats),
		floatFormats: maps.Clone(t.floatFormats),
		formatters:   maps.Clone(t.formatters),
		noneFormats:  maps.Clone(t.noneFormats),
	}
	n.rows = make([][]any, len(t.rows))
	for i, row := range t.rows {
		n.rows[i] = slices.Clone(row)
	}
	n.pending = make([][]any, len(t.pending))
	for i, row := range t.pending {
		n.pending[i] = slices.Clone(row)
	}
	n.pendingDividers = slices.Clone(t.pendingDividers)
	return n
}

// Slice returns a new Table holding rows[start:end] (half-open over storage
// order). The result shares no mutable state with the receiver.
func (t *Table) Slice(start, end int) (*Table, error) {
	if start < 0 || end < start || end > len(t.rows) {
		return nil, fmt.Errorf("%w: slice [%d:%d] of %d rows", ErrRowIndex, start, end, len(t.rows))
	}
	n := t.Copy()
	n.ClearRows()
	for _, row := range t.rows[start:end] {
		n.rows = append(n.rows, slices.Clone(row))
	}
	n.dividers = append(n.dividers, t.dividers[start:end]...)
	return n, nil
}

// SetAlign sets the horizontal alignment for one field.
func (t *Table) SetAlign(field string, a Alignment) error {
	if _, err := t.fieldIndex(field); err != nil {
		return err
	}
	if err := a.validate(); err != nil {
		return err
	}
	t.aligns[field] = a
	return nil
}

// SetVAlign sets the vertical alignment for one field.
func (t *Table) SetVAlign(field string, v VAlignment) error {
	if _, err := t.fieldIndex(field); err != nil {
		return err
	}
	if err := v.validate(); err != nil {
		return err
	}
	t.valigns[field] = v
	return nil
}

// SetMinWidth sets the minimum content width for one field.
func (t *Table) SetMinWidth(field string, w int) error {
	if _, err := t.fieldIndex(field); err != nil {
		return err
	}
	if w < 0 {
		return fmt.Errorf("%w: min width %d for %q must not be negative", ErrInvalidOption, w, field)
	}
	t.minWidths[field] = w
	return nil
}

// SetMaxWidth sets the maximum content width for one field. Cells wider than
// this are wrapped at render time.
func (t *Table) SetMaxWidth(field string, w int) error {
	if _, err := t.fieldIndex(field); err != nil {
		return err
	}
	if w < 1 {
		return fmt.Errorf("%w: max width %d for %q must be positive", ErrInvalidOption, w, field)
	}
	t.maxWidths[field] = w
	return nil
}

// SetIntFormat sets a printf-style integer directive body for one field,
// e.g. "03" renders 7 as "007". Digits only.
func (t *Table) SetIntFormat(field, spec string) error {
	if _, err := t.fieldIndex(field); err != nil {
		return err
	}
	if !validIntFormat(spec) {
		return fmt.Errorf("%w: int format %q for %q", ErrInvalidOption, spec, field)
	}
	t.intFormats[field] = spec
	return nil
}

// SetFloatFormat sets a printf-style float directive body for one field,
// e.g. ".2" renders 3.14159 as "3.14".
func (t *Table) SetFloatFormat(field, spec string) error {
	if _, err := t.fieldIndex(field); err != nil {
		return err
	}
	if !validFloatFormat(spec) {
		return fmt.Errorf("%w: float format %q for %q", ErrInvalidOption, spec, field)
	}
	t.floatFormats[field] = spec
	return nil
}

// SetFormatter registers a custom cell formatter for one field. It wins over
// numeric format specs; a nil fn removes the hook.
func (t *Table) SetFormatter(field string, fn FormatterFunc) error {
	if _, err := t.fieldIndex(field); err != nil {
		return err
	}
	if fn == nil {
		delete(t.formatters, field)
		return nil
	}
	t.formatters[field] = fn
	return nil
}

// SetNoneFormat sets the text substituted for nil values in one field.
func (t *Table) SetNoneFormat(field, text string) error {
	if _, err := t.fieldIndex(field); err != nil {
		return err
	}
	t.noneFormats[field] = text
	return nil
}
