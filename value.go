package gridtable

import (
	"fmt"
	"reflect"
	"strings"
)

// formatValue converts a raw cell value to display text for field. A custom
// formatter wins outright; numeric format specs apply to values of the
// matching kind; everything else gets its default string conversion. nil
// renders as the field's none-format, or the empty string.
func (t *Table) formatValue(field string, value any) (string, error) {
	if fn, ok := t.formatters[field]; ok {
		s, err := fn(field, value)
		if err != nil {
			return "", fmt.Errorf("custom formatter for field %q: %w", field, err)
		}
		return s, nil
	}
	if value == nil {
		if nf, ok := t.noneFormats[field]; ok {
			return nf, nil
		}
		return "", nil
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if spec, ok := t.intFormats[field]; ok {
			return fmt.Sprintf("%"+spec+"d", rv.Int()), nil
		}
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if spec, ok := t.intFormats[field]; ok {
			return fmt.Sprintf("%"+spec+"d", rv.Uint()), nil
		}
	case reflect.Float32, reflect.Float64:
		if spec, ok := t.floatFormats[field]; ok {
			return fmt.Sprintf("%"+spec+"f", rv.Float()), nil
		}
	}
	return fmt.Sprint(value), nil
}

// cellString is the plain conversion used where formatting is bypassed (CSV
// and raw JSON mirror the stored values).
func cellString(value any) string {
	if value == nil {
		return ""
	}
	return fmt.Sprint(value)
}

// validIntFormat accepts printf integer directive bodies: digits only, as in
// "03" for zero-padded width three.
func validIntFormat(spec string) bool {
	for _, r := range spec {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// validFloatFormat accepts printf float directive bodies such as ".2", "8.3",
// or "6".
func validFloatFormat(spec string) bool {
	if spec == "" {
		return true
	}
	whole, frac, dot := strings.Cut(spec, ".")
	if !validIntFormat(whole) {
		return false
	}
	if dot && !validIntFormat(frac) {
		return false
	}
	return true
}

// compareValues orders two raw cell values: numerics numerically, strings
// lexically, bools false-first, anything else by its string form. Mixed kinds
// fall back to string comparison so the sort is total.
func compareValues(a, b any) int {
	if af, aok := toFloat(a); aok {
		if bf, bok := toFloat(b); bok {
			switch {
			case af < bf:
				return -1
			case af > bf:
				return 1
			default:
				return 0
			}
		}
	}
	if as, aok := a.(string); aok {
		if bs, bok := b.(string); bok {
			return strings.Compare(as, bs)
		}
	}
	if ab, aok := a.(bool); aok {
		if bb, bok := b.(bool); bok {
			switch {
			case !ab && bb:
				return -1
			case ab && !bb:
				return 1
			default:
				return 0
			}
		}
	}
	return strings.Compare(cellString(a), cellString(b))
}

func toFloat(v any) (float64, bool) {
	if v == nil {
		return 0, false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	}
	return 0, false
}
