package main

import (
	"fmt"
	"os"

	"github.com/aretw0/composer/internal/cli"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "composer",
	Short: "Composer is an interactive software architecture configurator",
	Long: `Composer builds an in-memory model of a software architecture:
compositions holding components, which own ports and runnables.`,
	SilenceUsage: true,
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
	rootCmd.PersistentFlags().StringP("config", "c", "", "Settings file (.yaml, .yml or .toml) with an optional seed composition")
	rootCmd.PersistentFlags().Bool("demo", false, "Start from the sample composition 'Compo21'")
	rootCmd.PersistentFlags().Bool("rich", false, "Render the architecture as styled Markdown")
}

// runOptions reads the shared flags of cmd.
func runOptions(cmd *cobra.Command) cli.RunOptions {
	configPath, _ := cmd.Flags().GetString("config")
	demo, _ := cmd.Flags().GetBool("demo")
	rich, _ := cmd.Flags().GetBool("rich")
	return cli.RunOptions{
		ConfigPath: configPath,
		Demo:       demo,
		Rich:       rich,
	}
}
