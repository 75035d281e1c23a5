package cmd

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bytesize/bytesize"
	"bytesize/internal/config"
	"bytesize/internal/log"
)

const (
	ExitOK         = 0
	ExitCLIError   = 1
	ExitParseError = 2
	ExitLimitError = 3
)

// ExitError wraps an error with a process exit code.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err == nil {
		return ""
	}
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error { return e.Err }

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "bytesize",
		Short: "Convert between byte counts and human readable sizes",
		Long: `bytesize turns raw byte counts into strings like "1.5 KiB" and parses
such strings back. Decimal (KB, MB, ...) and binary (KiB, MiB, ...) units
are supported in both directions.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: loadSettings,
	}

	// Persistent flags available to all subcommands
	root.PersistentFlags().String("config", "", "Config file (default: <config dir>/bytesize/config.yaml)")
	root.PersistentFlags().BoolP("verbose", "v", false, "Log at debug level")
	root.PersistentFlags().String("log-level", "warn", "Log level: trace, debug, info, warn, error")
	root.PersistentFlags().String("log-format", "pretty", "Log format: pretty, json")
	root.PersistentFlags().StringP("format", "f", bytesize.FormatBinary.String(), "Output format: decimal, binary, sort")

	root.AddCommand(newHumanizeCmd())
	root.AddCommand(newParseCmd())
	root.AddCommand(newConvertCmd())
	root.AddCommand(newSumCmd())
	root.AddCommand(newTuiCmd())
	root.AddCommand(newConfigCmd())
	root.AddCommand(newCompletionCmd())

	return root
}

// Execute runs the CLI with the provided context.
func Execute(ctx context.Context) error {
	root := newRootCmd()
	return root.ExecuteContext(ctx)
}

type ctxKey string

const configKey ctxKey = "config"

// loadSettings resolves the configuration for cmd and stores it, along with
// the logger built from it, in the command context.
func loadSettings(cmd *cobra.Command, _ []string) error {
	v := viper.New()
	if err := config.Init(v, cmd); err != nil {
		return &ExitError{Code: ExitCLIError, Err: err}
	}
	conf, err := config.Load(v)
	if err != nil {
		return &ExitError{Code: ExitCLIError, Err: err}
	}

	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		conf.Log.Level = zerolog.LevelDebugValue
	}
	logger, err := log.FromConfig(conf.Log, cmd.ErrOrStderr())
	if err != nil {
		return &ExitError{Code: ExitCLIError, Err: err}
	}
	logger.Debug().Dict("config", conf.ToDict()).Str("file", v.ConfigFileUsed()).Msg("loaded configuration")

	ctx := context.WithValue(cmd.Context(), configKey, conf)
	cmd.SetContext(logger.WithContext(ctx))
	return nil
}

func configFrom(cmd *cobra.Command) config.Config {
	if c, ok := cmd.Context().Value(configKey).(config.Config); ok {
		return c
	}
	return config.Config{Format: bytesize.FormatBinary, Align: bytesize.AlignRight, Fill: " "}
}

func loggerFrom(cmd *cobra.Command) *zerolog.Logger {
	return zerolog.Ctx(cmd.Context())
}

// parseArgs parses every argument, stopping at the first failure.
func parseArgs(cmd *cobra.Command, args []string) ([]bytesize.ByteSize, error) {
	logger := loggerFrom(cmd)
	sizes := make([]bytesize.ByteSize, 0, len(args))
	for _, arg := range args {
		b, err := bytesize.Parse(arg)
		if err != nil {
			return nil, &ExitError{Code: ExitParseError, Err: err}
		}
		logger.Debug().Str("input", arg).Uint64("bytes", b.Uint64()).Msg("parsed")
		sizes = append(sizes, b)
	}
	return sizes, nil
}
