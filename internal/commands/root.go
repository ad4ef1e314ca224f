package commands

import (
	"github.com/spf13/cobra"
)

var (
	verbose bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "growth-back",
	Short: "Content Intelligence Backend",
	Long: `Backend for the growth dashboard content pipeline. Aggregates market,
social and competitor signals into a single context block, scores draft
content against anti-slop quality rules, and generates ranked posting
suggestions over HTTP, WebSocket and NATS.`,
	Version: "1.0.0",
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
