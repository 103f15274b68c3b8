package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const citiesCSV = "City,Pop\nBrisbane,1857594\nAdelaide,1158259\n"

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out, logs bytes.Buffer
	c := New(&logs, LogInfo)
	root := c.RootCommand()
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&out)
	root.SetErr(&logs)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestRenderText(t *testing.T) {
	t.Parallel()
	out, err := run(t, citiesCSV, "render")
	require.NoError(t, err)
	assert.Equal(t, "+----------+---------+\n"+
		"|   City   |   Pop   |\n"+
		"+----------+---------+\n"+
		"| Brisbane | 1857594 |\n"+
		"+----------+---------+\n"+
		"| Adelaide | 1158259 |\n"+
		"+----------+---------+\n", out)
}

func TestRenderSortAndFields(t *testing.T) {
	t.Parallel()
	out, err := run(t, citiesCSV, "render", "--format", "csv", "--fields", "City", "--sort-by", "City")
	require.NoError(t, err)
	assert.Equal(t, "City\r\nAdelaide\r\nBrisbane\r\n\n", out)
}

func TestRenderStylePreset(t *testing.T) {
	t.Parallel()
	out, err := run(t, citiesCSV, "render", "--style", "msword")
	require.NoError(t, err)
	assert.Equal(t, "|   City   |   Pop   |\n"+
		"| Brisbane | 1857594 |\n"+
		"| Adelaide | 1158259 |\n", out)
}

func TestRenderFlagErrors(t *testing.T) {
	t.Parallel()
	tests := map[string][]string{
		"unknown format": {"render", "--format", "xml"},
		"unknown style":  {"render", "--style", "fancy"},
		"unknown align":  {"render", "--align", "justified"},
		"unknown field":  {"render", "--fields", "nope"},
	}
	for name, args := range tests {
		args := args
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			_, err := run(t, citiesCSV, args...)
			require.Error(t, err)
		})
	}
}

func TestRenderBadCSV(t *testing.T) {
	t.Parallel()
	_, err := run(t, "a,b\n\"broken", "render")
	require.Error(t, err)
}

func TestFormatsCommand(t *testing.T) {
	t.Parallel()
	out, err := run(t, "", "formats")
	require.NoError(t, err)
	assert.Equal(t, "text\nhtml\njson\ncsv\nlatex\nmediawiki\nyaml\n", out)
}
