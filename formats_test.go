package gridtable_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bjaus/gridtable"
)

func newNameValueTable(t *testing.T) *gridtable.Table {
	t.Helper()
	tbl := gridtable.New("Name", "Value")
	require.NoError(t, tbl.AddRow([]any{"<b>x</b>", 1}))
	require.NoError(t, tbl.AddRow([]any{"line1\nline2", 2.5}))
	return tbl
}

func TestParseFormat(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		input   string
		want    gridtable.Format
		wantErr require.ErrorAssertionFunc
	}{
		"text":      {input: "text", want: gridtable.Text, wantErr: require.NoError},
		"html":      {input: "html", want: gridtable.HTML, wantErr: require.NoError},
		"json":      {input: "json", want: gridtable.JSON, wantErr: require.NoError},
		"csv":       {input: "csv", want: gridtable.CSV, wantErr: require.NoError},
		"latex":     {input: "latex", want: gridtable.LaTeX, wantErr: require.NoError},
		"mediawiki": {input: "mediawiki", want: gridtable.MediaWiki, wantErr: require.NoError},
		"yaml":      {input: "yaml", want: gridtable.YAML, wantErr: require.NoError},
		"unknown":   {input: "xml", want: "", wantErr: require.Error},
	}
	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, err := gridtable.ParseFormat(tt.input)
			tt.wantErr(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormats(t *testing.T) {
	t.Parallel()
	got := gridtable.Formats()
	assert.Equal(t, []gridtable.Format{
		gridtable.Text, gridtable.HTML, gridtable.JSON, gridtable.CSV,
		gridtable.LaTeX, gridtable.MediaWiki, gridtable.YAML,
	}, got)
	// Returned slice must be a copy.
	got[0] = "modified"
	assert.Equal(t, gridtable.Text, gridtable.Formats()[0])
}

func TestGetFormattedStringDispatch(t *testing.T) {
	t.Parallel()
	tbl := gridtable.New("a")
	require.NoError(t, tbl.AddRow([]any{1}))

	for _, f := range gridtable.Formats() {
		s, err := tbl.GetFormattedString(f)
		require.NoError(t, err, "format %s", f)
		assert.NotEmpty(t, s)
	}

	_, err := tbl.GetFormattedString("xml")
	require.ErrorIs(t, err, gridtable.ErrUnsupportedFormat)
}

func TestWrite(t *testing.T) {
	t.Parallel()
	tbl := gridtable.New("a")
	require.NoError(t, tbl.AddRow([]any{1}))

	var buf bytes.Buffer
	require.NoError(t, tbl.Write(&buf, gridtable.Text))
	assert.Contains(t, buf.String(), "| 1 |")

	err := tbl.Write(&buf, "xml")
	require.ErrorIs(t, err, gridtable.ErrUnsupportedFormat)
}

func TestGetCSVString(t *testing.T) {
	t.Parallel()
	tbl := newNameValueTable(t)
	s, err := tbl.GetCSVString()
	require.NoError(t, err)
	assert.Equal(t, "Name,Value\r\n<b>x</b>,1\r\n\"line1\r\nline2\",2.5\r\n", s)
}

func TestGetCSVStringNoHeaderAndDelimiter(t *testing.T) {
	t.Parallel()
	tbl := gridtable.New("a", "b")
	require.NoError(t, tbl.AddRow([]any{1, 2}))

	s, err := tbl.GetCSVString(
		gridtable.WithHeader(false),
		gridtable.WithDelimiter(';'),
	)
	require.NoError(t, err)
	assert.Equal(t, "1;2\r\n", s)
}

func TestGetJSONString(t *testing.T) {
	t.Parallel()
	tbl := newNameValueTable(t)
	s, err := tbl.GetJSONString()
	require.NoError(t, err)
	assert.Equal(t, `[
    [
        "Name",
        "Value"
    ],
    {
        "Name": "<b>x</b>",
        "Value": 1
    },
    {
        "Name": "line1\nline2",
        "Value": 2.5
    }
]`, s)
}

func TestGetJSONStringFormattedValues(t *testing.T) {
	t.Parallel()
	tbl := gridtable.New("flt")
	require.NoError(t, tbl.SetFloatFormat("flt", ".2"))
	require.NoError(t, tbl.AddRow([]any{2.5}))

	s, err := tbl.GetJSONString(gridtable.WithFormattedValues(true))
	require.NoError(t, err)
	assert.Contains(t, s, `"flt": "2.50"`)
}

func TestGetHTMLString(t *testing.T) {
	t.Parallel()
	tbl := newNameValueTable(t)
	s, err := tbl.GetHTMLString()
	require.NoError(t, err)
	assert.Equal(t, `<table>
    <thead>
        <tr>
            <th>Name</th>
            <th>Value</th>
        </tr>
    </thead>
    <tbody>
        <tr>
            <td>&lt;b&gt;x&lt;/b&gt;</td>
            <td>1</td>
        </tr>
        <tr>
            <td>line1<br>line2</td>
            <td>2.5</td>
        </tr>
    </tbody>
</table>`, s)
}

func TestGetHTMLStringFormatted(t *testing.T) {
	t.Parallel()
	tbl := gridtable.New("a")
	require.NoError(t, tbl.AddRow([]any{"x"}))

	s, err := tbl.GetHTMLString(
		gridtable.WithFormatted(true),
		gridtable.WithAttributes(map[string]string{"class": "tbl", "id": "t1"}),
	)
	require.NoError(t, err)
	assert.Contains(t, s, `<table frame="box" rules="all" class="tbl" id="t1">`)
	assert.Contains(t, s, `<th style="padding-left: 1em; padding-right: 1em; text-align: center">a</th>`)
	assert.Contains(t, s, `<td style="padding-left: 1em; padding-right: 1em; text-align: center; vertical-align: top">x</td>`)
}

func TestGetHTMLStringEscapeToggles(t *testing.T) {
	t.Parallel()
	tbl := gridtable.New("<h>")
	require.NoError(t, tbl.AddRow([]any{"<d>"}))

	s, err := tbl.GetHTMLString()
	require.NoError(t, err)
	assert.Contains(t, s, "&lt;h&gt;")
	assert.Contains(t, s, "&lt;d&gt;")

	s, err = tbl.GetHTMLString(
		gridtable.WithEscapeHeader(false),
		gridtable.WithEscapeData(false),
	)
	require.NoError(t, err)
	assert.Contains(t, s, "<th><h></th>")
	assert.Contains(t, s, "<td><d></td>")
}

func TestGetHTMLStringXHTMLLineBreaks(t *testing.T) {
	t.Parallel()
	tbl := gridtable.New("a")
	require.NoError(t, tbl.AddRow([]any{"x\ny"}))

	s, err := tbl.GetHTMLString(gridtable.WithXHTML(true))
	require.NoError(t, err)
	assert.Contains(t, s, "x<br/>y")
}

func TestGetHTMLStringTitleCaption(t *testing.T) {
	t.Parallel()
	tbl := gridtable.New("a")
	require.NoError(t, tbl.AddRow([]any{1}))

	s, err := tbl.GetHTMLString(gridtable.WithTitle("My Data"))
	require.NoError(t, err)
	assert.Contains(t, s, "<caption>My Data</caption>")
}

func TestGetLaTeXString(t *testing.T) {
	t.Parallel()
	tbl := gridtable.New("Name", "Value")
	require.NoError(t, tbl.AddRow([]any{"x", 1}))
	require.NoError(t, tbl.AddRow([]any{"y", 2}))

	s, err := tbl.GetLaTeXString()
	require.NoError(t, err)
	assert.Equal(t, "\\begin{tabular}{cc}\r\n"+
		"Name & Value \\\\\r\n"+
		"x & 1 \\\\\r\n"+
		"y & 2 \\\\\r\n"+
		"\\end{tabular}", s)
}

func TestGetLaTeXStringFormatted(t *testing.T) {
	t.Parallel()
	tbl := gridtable.New("Name", "Value")
	require.NoError(t, tbl.AddRow([]any{"x", 1}))

	s, err := tbl.GetLaTeXString(
		gridtable.WithFormatted(true),
		gridtable.WithHRules(gridtable.HRuleFrame),
	)
	require.NoError(t, err)
	assert.Equal(t, "\\begin{tabular}{|c|c|}\r\n"+
		"\\hline\r\n"+
		"Name & Value \\\\\r\n"+
		"x & 1 \\\\\r\n"+
		"\\hline\r\n"+
		"\\end{tabular}", s)
}

func TestGetMediaWikiString(t *testing.T) {
	t.Parallel()
	tbl := gridtable.New("a", "b")
	require.NoError(t, tbl.AddRow([]any{1, 2}))

	s, err := tbl.GetMediaWikiString(gridtable.WithTitle("My Table"))
	require.NoError(t, err)
	assert.Equal(t, "{| class=\"wikitable\"\n"+
		"|+ My Table\n"+
		"|-\n"+
		"! a !! b\n"+
		"|-\n"+
		"| 1 || 2\n"+
		"|}", s)
}

func TestGetYAMLString(t *testing.T) {
	t.Parallel()
	tbl := gridtable.New("name", "n")
	require.NoError(t, tbl.AddRow([]any{"x", 1}))

	s, err := tbl.GetYAMLString()
	require.NoError(t, err)
	assert.Equal(t, "fields:\n"+
		"    - name\n"+
		"    - n\n"+
		"rows:\n"+
		"    - n: 1\n"+
		"      name: x\n", s)
}

func TestFormatsRespectProjectionAndSort(t *testing.T) {
	t.Parallel()
	tbl := gridtable.New("a", "b")
	require.NoError(t, tbl.AddRows([][]any{{2, "y"}, {1, "x"}}))

	s, err := tbl.GetCSVString(gridtable.WithFields("b"), gridtable.WithSortBy("a"))
	require.NoError(t, err)
	assert.Equal(t, "b\r\nx\r\ny\r\n", s)
}
