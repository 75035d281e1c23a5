package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"bytesize/internal/config"
	"bytesize/internal/dirs"
	"bytesize/internal/log"
	"bytesize/internal/util/format"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or create the configuration file",
	}
	cmd.AddCommand(newConfigShowCmd())
	cmd.AddCommand(newConfigInitCmd())
	return cmd
}

func newConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			conf := configFrom(cmd)
			return format.WriteYAML(cmd.OutOrStdout(), conf.Settings())
		},
	}
}

func newConfigInitCmd() *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a config file holding the defaults",
		Args:  cobra.NoArgs,
		// The file may not exist yet, so skip loading it.
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			logger := log.NewDefault()
			cmd.SetContext(logger.WithContext(cmd.Context()))
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, _ := cmd.Flags().GetString("config")
			if path == "" {
				var err error
				if path, err = dirs.ConfigFile(); err != nil {
					return &ExitError{Code: ExitCLIError, Err: fmt.Errorf("locate config dir: %w", err)}
				}
			}

			if _, err := os.Stat(path); err == nil {
				if !force {
					return &ExitError{Code: ExitCLIError, Err: fmt.Errorf("%s already exists (use --force to overwrite)", path)}
				}
				loggerFrom(cmd).Warn().Str("path", path).Msg("overwriting existing config")
			} else if !errors.Is(err, fs.ErrNotExist) {
				return &ExitError{Code: ExitCLIError, Err: err}
			}

			if err := dirs.Ensure(filepath.Dir(path)); err != nil {
				return &ExitError{Code: ExitCLIError, Err: fmt.Errorf("create config dir: %w", err)}
			}
			defaults := config.Defaults()
			var buf bytes.Buffer
			if err := format.WriteYAML(&buf, defaults.Settings()); err != nil {
				return &ExitError{Code: ExitCLIError, Err: err}
			}
			if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
				return &ExitError{Code: ExitCLIError, Err: fmt.Errorf("write config: %w", err)}
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing file")
	return cmd
}
