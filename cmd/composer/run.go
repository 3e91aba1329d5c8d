package main

import (
	"github.com/aretw0/composer/internal/cli"
	"github.com/spf13/cobra"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start the interactive menu",
	Long:  `Starts the menu on stdin/stdout. Press 5 (or type quit) to leave; end of input also exits.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := runOptions(cmd)
		opts.Debug, _ = cmd.Flags().GetBool("debug")
		opts.NoBanner, _ = cmd.Flags().GetBool("no-banner")
		return cli.Execute(cmd.Context(), opts)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().Bool("debug", false, "Write debug logs to stderr")
	runCmd.Flags().Bool("no-banner", false, "Do not print the startup banner")

	// 'run' is the default when no command is provided.
	rootCmd.RunE = runCmd.RunE
	rootCmd.Flags().AddFlagSet(runCmd.Flags())
}
