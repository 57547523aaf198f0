package commands

import (
	"github.com/spf13/cobra"
)

var (
	// Global flags
	configFile string
	env        string
	verbose    bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "argus",
	Short: "Argus - correlation and Sharpe ratio analysis for stock tickers",
	Long: `Argus Unified CLI

Fetches monthly price history for stock tickers, measures each ticker's
correlation with a market benchmark and its annualized Sharpe ratio, and
serves the results over a REST API.

Usage:
  go run ./cmd/argus [command]

Examples:
  go run ./cmd/argus api
  go run ./cmd/argus analyze AAPL MSFT GOOG`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default is .env)")
	rootCmd.PersistentFlags().StringVar(&env, "env", "development", "environment (development|staging|production)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
