package main

import (
	"fmt"

	"github.com/aretw0/combogen/internal/cli"
	"github.com/aretw0/combogen/internal/presentation/tui"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate [config]",
	Short: "Check the combo declarations without writing artifacts",
	Long: `Builds the automaton, walks every declared key sequence through it and
runs the emission checks. Reports unknown symbols as warnings.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		res, err := cli.Validate(configPath(cmd, args), loggerFor(cmd))
		if err != nil {
			tui.PrintFailure(cmd.ErrOrStderr(), err)
			return fmt.Errorf("validation failed")
		}
		tui.PrintDiagnostics(cmd.OutOrStdout(), res.Diagnostics)
		tui.PrintSuccess(cmd.OutOrStdout(), "Combos are valid: %d chains, %d states", res.Stats.Chains, res.Table.Len())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
