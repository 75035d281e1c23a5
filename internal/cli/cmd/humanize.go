package cmd

import (
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"bytesize/bytesize"
	"bytesize/internal/util/format"
)

func newHumanizeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "humanize <size...>",
		Short: "Render byte counts as human readable sizes",
		Example: `  bytesize humanize 1536 1999634432
  bytesize humanize --format decimal --width 10 --align center 357`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sizes, err := parseArgs(cmd, args)
			if err != nil {
				return err
			}
			conf := configFrom(cmd)
			lines := lo.Map(sizes, func(b bytesize.ByteSize, _ int) string {
				return b.Humanize(conf.Format)
			})
			return format.WriteLines(cmd.OutOrStdout(), lines, styleOf(conf))
		},
	}
	bindPadFlags(cmd.Flags())
	return cmd
}

func bindPadFlags(fs *pflag.FlagSet) {
	fs.IntP("width", "w", 0, "Pad output to this many characters; 0 disables padding")
	fs.String("align", bytesize.AlignRight.String(), "Alignment within --width: left, right, center")
	fs.String("fill", " ", "Padding character")
}
