// Package cmd implements CLI commands using cobra framework.
package cmd

import (
	"github.com/spf13/cobra"

	// Register built-in plugins.
	_ "firestige.xyz/gensource/plugins"
)

var configFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "gensource",
	Short: "gensource - event-source plugin harness for runtime security monitoring",
	Long: `Gensource hosts event-source plugins the way a security-monitoring
runtime would: it loads a registered plugin, drives its lifecycle
(init, open, next batch, close, destroy), and extracts the declared
fields from every produced event.

The built-in random_generator plugin emits a continuous stream of
bounded random integers exposed through the gen.num field.`,
	Version: "0.1.0",
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "gensource.yml",
		"config file path")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(fieldsCmd)
}
