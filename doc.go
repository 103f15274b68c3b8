// Package gridtable builds and renders tables of tabular data.
//
// A [Table] holds field names and rows of raw values. Rendering turns that
// data into text for one of the supported formats: Text, HTML, JSON, CSV,
// LaTeX, MediaWiki, and YAML. The central entry points are the per-format
// GetString methods and [Table.Write], which accepts a [Format] constant:
//
//	t := gridtable.New("City", "Population")
//	t.AddRow([]any{"Adelaide", 1158259})
//	t.AddRow([]any{"Brisbane", 1857594})
//	s, err := t.GetString()
//
// # Styling
//
// Every Table owns a persistent [Style], reachable through [Table.Style] and
// presettable with [Table.SetStyle]. Render calls accept functional options
// ([WithSortBy], [WithFields], [WithMaxTableWidth], ...) that are merged over
// a copy of the persistent style for that call only; the same call with the
// same data always produces the same bytes.
//
// Text rendering measures cells by display width, so wide East Asian runes
// and ANSI escape sequences line up correctly, and wraps cell content at
// word boundaries to honour column width limits.
//
// # Per-field settings
//
// Alignment, vertical alignment, width bounds, and value formatting can be
// set per field with the Set methods ([Table.SetAlign], [Table.SetMaxWidth],
// [Table.SetFloatFormat], [Table.SetFormatter], ...).
//
// # Import adapters
//
// [FromCSV], [FromJSON], [FromDBRows], [FromHTML], and [FromMediaWiki] build
// populated tables from external data.
package gridtable
