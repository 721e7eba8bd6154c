package main

import (
	"os"

	"github.com/aretw0/combogen/internal/cli"
	"github.com/aretw0/combogen/internal/presentation/tui"
	"github.com/spf13/cobra"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [config]",
	Short: "Print a summary of chains, states and merges",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		render := tui.NewRenderer(os.Stdout)
		return cli.Inspect(cmd.OutOrStdout(), configPath(cmd, args), render, loggerFor(cmd))
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}
