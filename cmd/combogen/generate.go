package main

import (
	"github.com/aretw0/combogen"
	"github.com/aretw0/combogen/internal/cli"
	"github.com/aretw0/combogen/internal/presentation/tui"
	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate [config]",
	Short: "Write the dispatch and enumeration artifacts",
	Long: `Builds the combo automaton and writes state_machine.gen.c and
state_machine.gen.h next to the config file (or where output/flags point).
Nothing is written when any chain fails.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := cli.GenerateOptions{ConfigPath: configPath(cmd, args)}
		opts.Dispatch, _ = cmd.Flags().GetString("dispatch")
		opts.Enum, _ = cmd.Flags().GetString("enum")
		opts.MetricsFile, _ = cmd.Flags().GetString("metrics-file")
		opts.Watch, _ = cmd.Flags().GetBool("watch")
		opts.Quiet, _ = cmd.Flags().GetBool("quiet")

		if opts.Watch {
			tui.PrintBanner(cmd.OutOrStdout(), combogen.Version)
		}

		ctx := cli.NewSignalContext(cmd.Context())
		defer ctx.Cancel()

		return cli.Generate(ctx, opts, loggerFor(cmd))
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().String("dispatch", "", "Output path of the dispatch artifact (overrides output.dispatch)")
	generateCmd.Flags().String("enum", "", "Output path of the enumeration artifact (overrides output.enum)")
	generateCmd.Flags().String("metrics-file", "", "Write generation metrics in Prometheus text format")
	generateCmd.Flags().BoolP("watch", "w", false, "Regenerate whenever the config file changes")
	generateCmd.Flags().BoolP("quiet", "q", false, "Suppress status output")

	rootCmd.RunE = generateCmd.RunE
}
