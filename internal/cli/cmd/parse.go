package cmd

import (
	"fmt"
	"strconv"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"bytesize/bytesize"
	"bytesize/internal/config"
	"bytesize/internal/util/format"
)

func newParseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse <size...>",
		Short: "Parse human readable sizes into byte counts",
		Example: `  bytesize parse 1.5KiB "3 MB" 8P
  bytesize parse --output json 1.5KiB`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRows(cmd, args, func(b bytesize.ByteSize) string {
				return strconv.FormatUint(b.Uint64(), 10)
			})
		},
	}
	cmd.Flags().StringP("output", "o", string(format.OutputText), "Output: text, table, json, yaml")
	return cmd
}

func newConvertCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "convert <size...>",
		Short:   "Show every rendering of each size",
		Example: `  bytesize convert 1907MiB 518GB 1536`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			conf := configFrom(cmd)
			return runRows(cmd, args, func(b bytesize.ByteSize) string {
				return b.Humanize(conf.Format)
			})
		},
	}
	cmd.Flags().StringP("output", "o", string(format.OutputTable), "Output: text, table, json, yaml")
	return cmd
}

// runRows parses args and writes them in the format chosen by --output.
// Text output writes text(b) per input.
func runRows(cmd *cobra.Command, args []string, text func(bytesize.ByteSize) string) error {
	raw, _ := cmd.Flags().GetString("output")
	out, err := format.ParseOutput(raw)
	if err != nil {
		return &ExitError{Code: ExitCLIError, Err: err}
	}

	sizes, err := parseArgs(cmd, args)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	switch out {
	case format.OutputTable:
		format.WriteTable(w, lo.Map(sizes, func(b bytesize.ByteSize, i int) format.Row {
			return format.NewRow(args[i], b)
		}))
		return nil
	case format.OutputJSON, format.OutputYAML:
		rows := lo.Map(sizes, func(b bytesize.ByteSize, i int) format.Row {
			return format.NewRow(args[i], b)
		})
		if out == format.OutputJSON {
			err = format.WriteJSON(w, rows)
		} else {
			err = format.WriteYAML(w, rows)
		}
		if err != nil {
			return &ExitError{Code: ExitCLIError, Err: fmt.Errorf("write %s: %w", out, err)}
		}
		return nil
	default:
		return format.WriteLines(w, lo.Map(sizes, func(b bytesize.ByteSize, _ int) string { return text(b) }), styleOf(configFrom(cmd)))
	}
}

func styleOf(conf config.Config) format.Style {
	return format.Style{Width: conf.Width, Align: conf.Align, Fill: conf.FillRune()}
}
