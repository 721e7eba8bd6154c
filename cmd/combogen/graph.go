package main

import (
	"github.com/aretw0/combogen/internal/cli"
	"github.com/spf13/cobra"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph [config]",
	Short: "Export the automaton visualization",
	Long:  `Builds the automaton and outputs a Mermaid diagram (graph LR) of its states and transitions.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		trace, _ := cmd.Flags().GetString("trace")
		return cli.Graph(cmd.OutOrStdout(), configPath(cmd, args), trace, loggerFor(cmd))
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)

	graphCmd.Flags().String("trace", "", "Comma separated key sequence to highlight (e.g. KC_6,KC_9)")
}
