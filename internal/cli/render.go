package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/bjaus/gridtable"
)

type renderFlags struct {
	format        string
	fields        []string
	sortBy        string
	reverse       bool
	style         string
	title         string
	align         string
	maxTableWidth int
	noHeader      bool
}

func (c *CLI) renderCommand() *cobra.Command {
	var flags renderFlags

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render CSV input as a table",
		Long:  `Render reads CSV from the given file, or stdin when no file is given, and writes the table to stdout in the chosen format.`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := cmd.InOrStdin()
			if len(args) == 1 {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				in = f
			}
			return c.render(cmd.OutOrStdout(), in, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.format, "format", "f", "text", "output format (text, html, json, csv, latex, mediawiki, yaml)")
	cmd.Flags().StringSliceVar(&flags.fields, "fields", nil, "visible columns, in order")
	cmd.Flags().StringVar(&flags.sortBy, "sort-by", "", "sort rows by this field")
	cmd.Flags().BoolVar(&flags.reverse, "reverse", false, "reverse the sorted order")
	cmd.Flags().StringVar(&flags.style, "style", "", "style preset (msword, plain, markdown, orgmode, double, single)")
	cmd.Flags().StringVar(&flags.title, "title", "", "table title")
	cmd.Flags().StringVar(&flags.align, "align", "", "default alignment (left, center, right)")
	cmd.Flags().IntVar(&flags.maxTableWidth, "max-table-width", 0, "maximum rendered line width")
	cmd.Flags().BoolVar(&flags.noHeader, "no-header", false, "omit the header row")

	return cmd
}

func (c *CLI) render(w io.Writer, in io.Reader, flags renderFlags) error {
	format, err := gridtable.ParseFormat(flags.format)
	if err != nil {
		return err
	}

	t, err := gridtable.FromCSV(in, nil)
	if err != nil {
		return err
	}
	c.Logger.Debug("parsed csv input", "fields", t.ColCount(), "rows", t.RowCount())

	if flags.style != "" {
		preset, err := parsePreset(flags.style)
		if err != nil {
			return err
		}
		if err := t.SetStyle(preset); err != nil {
			return err
		}
	}

	var opts []gridtable.Option
	if flags.title != "" {
		opts = append(opts, gridtable.WithTitle(flags.title))
	}
	if len(flags.fields) > 0 {
		opts = append(opts, gridtable.WithFields(flags.fields...))
	}
	if flags.sortBy != "" {
		opts = append(opts, gridtable.WithSortBy(flags.sortBy))
	}
	if flags.reverse {
		opts = append(opts, gridtable.WithReverseSort(true))
	}
	if flags.align != "" {
		align, err := parseAlign(flags.align)
		if err != nil {
			return err
		}
		opts = append(opts, gridtable.WithAlign(align))
	}
	if flags.maxTableWidth > 0 {
		opts = append(opts, gridtable.WithMaxTableWidth(flags.maxTableWidth))
	}
	if flags.noHeader {
		opts = append(opts, gridtable.WithHeader(false))
	}

	if err := t.Write(w, format, opts...); err != nil {
		return err
	}
	_, err = fmt.Fprintln(w)
	return err
}

func (c *CLI) formatsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: "List supported output formats",
		Run: func(cmd *cobra.Command, args []string) {
			for _, f := range gridtable.Formats() {
				fmt.Fprintln(cmd.OutOrStdout(), f)
			}
		},
	}
}

func parsePreset(name string) (gridtable.TableStyle, error) {
	switch name {
	case "default":
		return gridtable.StyleDefault, nil
	case "msword":
		return gridtable.StyleMSWordFriendly, nil
	case "plain":
		return gridtable.StylePlainColumns, nil
	case "markdown":
		return gridtable.StyleMarkdown, nil
	case "orgmode":
		return gridtable.StyleOrgMode, nil
	case "double":
		return gridtable.StyleDoubleBorder, nil
	case "single":
		return gridtable.StyleSingleBorder, nil
	default:
		return 0, fmt.Errorf("unknown style preset %q", name)
	}
}

func parseAlign(name string) (gridtable.Alignment, error) {
	switch name {
	case "left":
		return gridtable.AlignLeft, nil
	case "center":
		return gridtable.AlignCenter, nil
	case "right":
		return gridtable.AlignRight, nil
	default:
		return 0, fmt.Errorf("unknown alignment %q", name)
	}
}
