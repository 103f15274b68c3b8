package gridtable_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bjaus/gridtable"
)

func newStyledCityTable(t *testing.T, style gridtable.TableStyle) *gridtable.Table {
	t.Helper()
	tbl := gridtable.New("City name", "Area", "Population")
	require.NoError(t, tbl.SetStyle(style))
	require.NoError(t, tbl.AddRow([]any{"Adelaide", 1295, 1158259}))
	require.NoError(t, tbl.AddRow([]any{"Brisbane", 5905, 1857594}))
	require.NoError(t, tbl.SetAlign("City name", gridtable.AlignLeft))
	require.NoError(t, tbl.SetAlign("Area", gridtable.AlignRight))
	require.NoError(t, tbl.SetAlign("Population", gridtable.AlignCenter))
	return tbl
}

func TestSetStylePresets(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		style gridtable.TableStyle
		want  string
	}{
		"default": {
			style: gridtable.StyleDefault,
			want: "+-----------+------+------------+\n" +
				"| City name | Area | Population |\n" +
				"+-----------+------+------------+\n" +
				"| Adelaide  | 1295 |  1158259   |\n" +
				"+-----------+------+------------+\n" +
				"| Brisbane  | 5905 |  1857594   |\n" +
				"+-----------+------+------------+",
		},
		"msword": {
			style: gridtable.StyleMSWordFriendly,
			want: "| City name | Area | Population |\n" +
				"| Adelaide  | 1295 |  1158259   |\n" +
				"| Brisbane  | 5905 |  1857594   |",
		},
		"plain columns": {
			style: gridtable.StylePlainColumns,
			want: "City name        Area        Population        \n" +
				"Adelaide         1295         1158259          \n" +
				"Brisbane         5905         1857594          ",
		},
		"markdown": {
			style: gridtable.StyleMarkdown,
			want: "| City name | Area | Population |\n" +
				"| :---------|----: | :--------: |\n" +
				"| Adelaide  | 1295 |  1158259   |\n" +
				"| Brisbane  | 5905 |  1857594   |",
		},
		"orgmode": {
			style: gridtable.StyleOrgMode,
			want: "|-----------+------+------------|\n" +
				"| City name | Area | Population |\n" +
				"|-----------+------+------------|\n" +
				"| Adelaide  | 1295 |  1158259   |\n" +
				"| Brisbane  | 5905 |  1857594   |\n" +
				"|-----------+------+------------|",
		},
		"double border": {
			style: gridtable.StyleDoubleBorder,
			want: "╔═══════════╦══════╦════════════╗\n" +
				"║ City name ║ Area ║ Population ║\n" +
				"╠═══════════╬══════╬════════════╣\n" +
				"║ Adelaide  ║ 1295 ║  1158259   ║\n" +
				"║ Brisbane  ║ 5905 ║  1857594   ║\n" +
				"╚═══════════╩══════╩════════════╝",
		},
		"single border": {
			style: gridtable.StyleSingleBorder,
			want: "┌───────────┬──────┬────────────┐\n" +
				"│ City name │ Area │ Population │\n" +
				"├───────────┼──────┼────────────┤\n" +
				"│ Adelaide  │ 1295 │  1158259   │\n" +
				"│ Brisbane  │ 5905 │  1857594   │\n" +
				"└───────────┴──────┴────────────┘",
		},
	}
	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			tbl := newStyledCityTable(t, tt.style)
			s, err := tbl.GetString()
			require.NoError(t, err)
			assert.Equal(t, tt.want, s)
		})
	}
}

func TestSetStyleUnknown(t *testing.T) {
	t.Parallel()
	tbl := gridtable.New("a")
	err := tbl.SetStyle(gridtable.TableStyle(99))
	require.ErrorIs(t, err, gridtable.ErrInvalidOption)
}

func TestSetStyleKeepsSelectionState(t *testing.T) {
	t.Parallel()
	tbl := gridtable.New("a", "b")
	require.NoError(t, tbl.AddRows([][]any{{2, "y"}, {1, "x"}}))
	st := tbl.Style()
	st.Title = "T"
	st.SortBy = "a"

	require.NoError(t, tbl.SetStyle(gridtable.StyleMSWordFriendly))
	assert.Equal(t, "T", tbl.Style().Title)
	assert.Equal(t, "a", tbl.Style().SortBy)

	s, err := tbl.GetString()
	require.NoError(t, err)
	assert.Equal(t, "+-------+\n"+
		"|   T   |\n"+
		"| a | b |\n"+
		"| 1 | x |\n"+
		"| 2 | y |", s)
}

func TestSetStyleResetsPriorPreset(t *testing.T) {
	t.Parallel()
	tbl := gridtable.New("a")
	require.NoError(t, tbl.AddRow([]any{1}))

	require.NoError(t, tbl.SetStyle(gridtable.StyleOrgMode))
	require.NoError(t, tbl.SetStyle(gridtable.StyleDefault))
	s, err := tbl.GetString()
	require.NoError(t, err)
	assert.Equal(t, "+---+\n"+
		"| a |\n"+
		"+---+\n"+
		"| 1 |\n"+
		"+---+", s)
}

func TestMarkdownMinimumColumnWidths(t *testing.T) {
	t.Parallel()
	tbl := gridtable.New("x")
	require.NoError(t, tbl.SetStyle(gridtable.StyleMarkdown))
	require.NoError(t, tbl.SetAlign("x", gridtable.AlignCenter))
	require.NoError(t, tbl.AddRow([]any{"y"}))

	s, err := tbl.GetString()
	require.NoError(t, err)
	// Centered columns keep room for a ":-:" marker.
	assert.Equal(t, "|  x  |\n"+
		"| :-: |\n"+
		"|  y  |", s)
}
