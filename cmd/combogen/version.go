package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/combogen"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of combogen",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "combogen version %s\n", strings.TrimSpace(combogen.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
