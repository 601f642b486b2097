package cmd

import (
	"fmt"
	"tokentrack/internal/config"

	"github.com/spf13/cobra"
)

func loadOptions() config.LoadOptions {
	return config.LoadOptions{
		Path:     configPath,
		Strict:   strict,
		LogLevel: logLevel,
	}
}

func newConfigCmd() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect and create the tokentrack configuration",
	}
	configCmd.AddCommand(
		newConfigShowCmd(),
		newConfigPathCmd(),
		newConfigValidateCmd(),
		newConfigInitCmd(),
	)
	return configCmd
}

func newConfigShowCmd() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration after defaults and overrides",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := config.ParseFormat(output)
			if err != nil {
				return err
			}
			settings, err := config.Load(loadOptions())
			if err != nil {
				return err
			}
			return config.Encode(cmd.OutOrStdout(), settings, format)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "toml", "Output format (toml, yaml)")
	return cmd
}

func newConfigPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the configuration file location",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, _, err := config.ResolvePath(loadOptions())
			if err != nil {
				return fmt.Errorf("failed to resolve configuration path: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
}

func newConfigValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate the configuration and report every problem",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := config.Load(loadOptions())
			if err != nil {
				return err
			}
			source := settings.Source()
			if source == "" {
				source = "built-in defaults"
			}
			n := len(settings.Providers())
			fmt.Fprintf(cmd.OutOrStdout(), "Configuration OK: %s (%d provider(s), %d enabled)\n", source, n, len(settings.EnabledProviders()))
			return nil
		},
	}
}

func newConfigInitCmd() *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a starter configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, _, err := config.ResolvePath(loadOptions())
			if err != nil {
				return fmt.Errorf("failed to resolve configuration path: %w", err)
			}
			if err := config.WriteDefaultFile(path, force); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote starter configuration to %s\n", path)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing file")
	return cmd
}
