package cmd

import (
	"fmt"
	"tokentrack/internal/tui/model"

	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of tokentrack",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s version %s (%s %s)\n", rootCmd.Name(), rootCmd.Version, model.AppName, model.Codename)
		},
	}
}
