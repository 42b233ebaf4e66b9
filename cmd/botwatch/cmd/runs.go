package cmd

import (
	"fmt"
	"time"

	"github.com/rustyeddy/botwatch/journal"
	"github.com/spf13/cobra"
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "Query journaled report runs",
	Long: `Query and display report runs from the SQLite run journal.

Subcommands:
  list  - List recent runs
  show  - Get details of a specific run by ID

Examples:
  botwatch runs list
  botwatch runs show <run-id>`,
}

var runsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent report runs",
	Args:  cobra.NoArgs,
	RunE:  runRunsList,
}

var runsShowCmd = &cobra.Command{
	Use:   "show <run-id>",
	Short: "Get details of a specific run",
	Args:  cobra.ExactArgs(1),
	RunE:  runRunsShow,
}

var (
	runsDBPath string
	runsLimit  int
)

func init() {
	rootCmd.AddCommand(runsCmd)
	runsCmd.AddCommand(runsListCmd)
	runsCmd.AddCommand(runsShowCmd)

	runsCmd.PersistentFlags().StringVarP(&runsDBPath, "db", "d", "./botwatch.sqlite", "path to SQLite run journal DB")
	runsListCmd.Flags().IntVarP(&runsLimit, "limit", "n", 20, "maximum runs to list")
}

func runRunsList(cmd *cobra.Command, args []string) error {
	j, err := journal.NewSQLite(runsDBPath)
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer j.Close()

	recs, err := j.ListRuns(runsLimit)
	if err != nil {
		return fmt.Errorf("query runs: %w", err)
	}
	if len(recs) == 0 {
		fmt.Println("No runs recorded.")
		return nil
	}

	for _, r := range recs {
		fmt.Printf("%s  %s  cycles=%d  pnl=%.4f  %s\n",
			r.RunID, r.Created.Format(time.RFC3339), r.TotalCycles, r.CurrentPnL, r.LogPath)
	}
	return nil
}

func runRunsShow(cmd *cobra.Command, args []string) error {
	j, err := journal.NewSQLite(runsDBPath)
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer j.Close()

	r, err := j.GetRun(args[0])
	if err != nil {
		return fmt.Errorf("get run: %w", err)
	}

	fmt.Printf("Run ID:        %s\n", r.RunID)
	fmt.Printf("Created:       %s\n", r.Created.Format(time.RFC3339))
	fmt.Printf("Log:           %s\n", r.LogPath)
	fmt.Printf("Records:       %d market / %d transactions / %d account\n",
		r.MarketRows, r.TransactionRows, r.AccountRows)
	fmt.Printf("Current P&L:   $%.4f\n", r.CurrentPnL)
	fmt.Printf("Max P&L:       $%.4f\n", r.MaxPnL)
	fmt.Printf("Min P&L:       $%.4f\n", r.MinPnL)
	fmt.Printf("P&L Range:     $%.4f\n", r.PnLRange)
	fmt.Printf("Total Cycles:  %d\n", r.TotalCycles)
	fmt.Printf("Runtime (hrs): %.1f\n", r.RuntimeHours)
	return nil
}
