package main

import (
	"github.com/aretw0/composer/internal/cli"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the seed composition as a tree",
	Long:  `Builds the composition described by --config (or the --demo sample) and prints its architecture tree.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cli.Show(cmd.OutOrStdout(), runOptions(cmd))
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}
