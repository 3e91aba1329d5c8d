package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/composer"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of composer",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "composer version %s\n", strings.TrimSpace(composer.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
