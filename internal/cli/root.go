// Package cli implements the invoicedesk command line interface.
package cli

import (
	"github.com/spf13/cobra"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "invoicedesk",
	Short: "Local-first invoice authoring and rendering",
	Long: `invoicedesk manages invoices in a local workspace database,
renders them through customizable templates and exports HTML and PDF
documents.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "config.json", "path to the configuration file")
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}
