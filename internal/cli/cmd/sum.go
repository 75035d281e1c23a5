package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"bytesize/bytesize"
	"bytesize/internal/util/format"
)

func newSumCmd() *cobra.Command {
	var (
		limit bytesize.ByteSize
		scale uint64
		raw   bool
	)
	cmd := &cobra.Command{
		Use:   "sum <size...>",
		Short: "Add sizes without overflowing",
		Example: `  bytesize sum 1.5GiB 700MB 12KiB
  bytesize sum --scale 3 --limit 4GiB 1.5GiB`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			conf := configFrom(cmd)
			logger := loggerFrom(cmd)

			sizes, err := parseArgs(cmd, args)
			if err != nil {
				return err
			}
			total, err := bytesize.Sum(sizes...)
			if err != nil {
				return &ExitError{Code: ExitLimitError, Err: fmt.Errorf("sum of %d sizes: %w", len(sizes), err)}
			}
			if scale != 1 {
				if total, err = total.Mul(scale); err != nil {
					return &ExitError{Code: ExitLimitError, Err: fmt.Errorf("scale by %d: %w", scale, err)}
				}
			}

			if !cmd.Flags().Changed("limit") {
				limit = conf.Limit
			}
			logger.Debug().
				Uint64("total", total.Uint64()).
				Uint64("limit", limit.Uint64()).
				Uint64("scale", scale).
				Msg("summed")
			if limit > 0 && total > limit {
				return &ExitError{Code: ExitLimitError, Err: fmt.Errorf("total %s exceeds limit %s", total, limit)}
			}

			out := total.Humanize(conf.Format)
			if raw {
				out = strconv.FormatUint(total.Uint64(), 10)
			}
			return format.WriteLines(cmd.OutOrStdout(), []string{out}, styleOf(conf))
		},
	}
	cmd.Flags().Var(&limit, "limit", "Fail when the total exceeds this size, e.g. 4GiB; 0 disables")
	cmd.Flags().Uint64Var(&scale, "scale", 1, "Multiply the total by this factor")
	cmd.Flags().BoolVar(&raw, "bytes", false, "Print the total as a byte count")
	return cmd
}
