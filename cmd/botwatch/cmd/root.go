package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "botwatch",
	Short: "Performance reporting for trading bot logs",
	Long: `Botwatch reconstructs typed time series from a trading bot's log file
and reports on them.

It provides tools for:
  - Extracting market, transaction and account series from bot logs
  - Computing P&L summary statistics over account snapshots
  - Printing performance reports and serving them as a dashboard
  - Journaling report runs to SQLite for later comparison

Complete documentation is available at https://github.com/rustyeddy/botwatch`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}
