package gridtable

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrapText(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		in             string
		width          int
		breakOnHyphens bool
		want           []string
	}{
		"fits":              {in: "hello", width: 5, want: []string{"hello"}},
		"word boundary":     {in: "hello world", width: 5, want: []string{"hello", "world"}},
		"greedy fill":       {in: "a bb ccc", width: 4, want: []string{"a bb", "ccc"}},
		"explicit newlines": {in: "a\n\nb", width: 10, want: []string{"a", "", "b"}},
		"oversized token":   {in: "abcdefgh", width: 3, want: []string{"abc", "def", "gh"}},
		"hyphens kept":      {in: "well-known", width: 6, want: []string{"well-k", "nown"}},
		"hyphens split":     {in: "well-known", width: 6, breakOnHyphens: true, want: []string{"well-", "known"}},
		"wide runes":        {in: "你好世界", width: 3, want: []string{"你", "好", "世", "界"}},
		"width clamped":     {in: "ab", width: 0, want: []string{"a", "b"}},
		"empty":             {in: "", width: 5, want: []string{""}},
	}
	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, wrapText(tt.in, tt.width, tt.breakOnHyphens))
		})
	}
}

func TestJustifyCenterBias(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		text  string
		width int
		want  string
	}{
		"even excess":          {text: "ab", width: 4, want: " ab "},
		"odd excess odd text":  {text: "abc", width: 6, want: " abc  "},
		"odd excess even text": {text: "ab", width: 5, want: "  ab "},
		"no excess":            {text: "abc", width: 3, want: "abc"},
		"overflow untouched":   {text: "abcd", width: 3, want: "abcd"},
	}
	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, justify(tt.text, tt.width, AlignCenter))
		})
	}
}

func TestDisplayWidth(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		in   string
		want int
	}{
		"plain":          {in: "abc", want: 3},
		"sgr stripped":   {in: "\x1b[31mred\x1b[0m", want: 3},
		"osc8 hyperlink": {in: "\x1b]8;;https://x\x1b\\link\x1b]8;;\x1b\\", want: 4},
		"wide runes":     {in: "名前", want: 4},
		"empty":          {in: "", want: 0},
	}
	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, displayWidth(tt.in))
		})
	}
}

func TestCompareValues(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		a, b any
		want int
	}{
		"ints":           {a: 1, b: 2, want: -1},
		"mixed numerics": {a: 3, b: 2.5, want: 1},
		"equal floats":   {a: 1.5, b: 1.5, want: 0},
		"strings":        {a: "a", b: "b", want: -1},
		"bools":          {a: false, b: true, want: -1},
		"mixed kinds":    {a: 1, b: "x", want: -1},
		"nil vs value":   {a: nil, b: "x", want: -1},
	}
	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, compareValues(tt.a, tt.b))
		})
	}
}

func TestApplyHeaderStyle(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		style HeaderStyle
		want  string
	}{
		"none":  {style: HeaderStyleNone, want: "avg SPEED"},
		"cap":   {style: HeaderStyleCap, want: "Avg speed"},
		"title": {style: HeaderStyleTitle, want: "Avg Speed"},
		"upper": {style: HeaderStyleUpper, want: "AVG SPEED"},
		"lower": {style: HeaderStyleLower, want: "avg speed"},
	}
	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, applyHeaderStyle("avg SPEED", tt.style))
		})
	}
}

func TestMarkAlignment(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		align Alignment
		want  string
	}{
		"left":   {align: AlignLeft, want: " :---"},
		"right":  {align: AlignRight, want: "---: "},
		"center": {align: AlignCenter, want: " :-: "},
	}
	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, markAlignment("-----", tt.align, 1, 1, ":"))
		})
	}
}

func TestShrinkToTableWidth(t *testing.T) {
	t.Parallel()
	tbl := New("a", "b")
	o := DefaultStyle()
	ly := &layout{fields: []string{"a", "b"}}

	// Tied widths shrink leftmost first.
	widths := []int{5, 5}
	o.MaxTableWidth = 16
	tbl.shrinkToTableWidth(ly, widths, &o)
	assert.Equal(t, []int{4, 5}, widths)

	// Columns never shrink below one cell.
	widths = []int{1, 1}
	o.MaxTableWidth = 1
	tbl.shrinkToTableWidth(ly, widths, &o)
	assert.Equal(t, []int{1, 1}, widths)
}

func TestHardSplitAdvances(t *testing.T) {
	t.Parallel()
	// A rune wider than the target still lands somewhere.
	assert.Equal(t, []string{"你", "好"}, hardSplit("你好", 1))
}
