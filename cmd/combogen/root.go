package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/aretw0/combogen/internal/cli"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "combogen",
	Short: "combogen compiles combo key sequences into a QMK state machine",
	Long: `combogen reads combo chains from combos.yaml, builds a deterministic automaton
that recognizes them and writes the C dispatch logic and state enumeration
consumed by the keyboard firmware.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().StringP("config", "c", "combos.yaml", "Combo declaration file (YAML or JSON)")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().String("log-format", "text", "Log format: text or json")
}

func configPath(cmd *cobra.Command, args []string) string {
	path, _ := cmd.Flags().GetString("config")
	if !cmd.Flags().Changed("config") && len(args) > 0 {
		path = args[0]
	}
	return path
}

func loggerFor(cmd *cobra.Command) *slog.Logger {
	debug, _ := cmd.Flags().GetBool("debug")
	format, _ := cmd.Flags().GetString("log-format")
	return cli.CreateLogger(debug, format)
}
