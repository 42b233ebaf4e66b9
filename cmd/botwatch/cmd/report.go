package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/rustyeddy/botwatch/botlog"
	"github.com/rustyeddy/botwatch/config"
	"github.com/rustyeddy/botwatch/journal"
	"github.com/rustyeddy/botwatch/pkg/id"
	"github.com/rustyeddy/botwatch/report"
	"github.com/rustyeddy/botwatch/stats"
	"github.com/spf13/cobra"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Parse a bot log and print the performance report",
	Long: `Read a bot log file once, extract the market, transaction and account
series, compute P&L summary statistics and print a text report.

Examples:
  botwatch report --log bot.log
  botwatch report --config botwatch.yaml
  botwatch report --log bot.log --db runs.sqlite`,
	RunE: runReport,
}

var (
	reportConfigPath string
	reportLogPath    string
	reportDBPath     string
	reportRecent     int
)

func init() {
	rootCmd.AddCommand(reportCmd)

	reportCmd.Flags().StringVarP(&reportConfigPath, "config", "c", "", "path to config file")
	reportCmd.Flags().StringVarP(&reportLogPath, "log", "l", "", "path to bot log (overrides config)")
	reportCmd.Flags().StringVarP(&reportDBPath, "db", "d", "", "journal report run to this SQLite DB")
	reportCmd.Flags().IntVarP(&reportRecent, "recent", "n", 0, "recent transactions to show (overrides config)")
}

// loadConfig resolves the effective configuration: defaults, then an
// optional config file, then flag overrides.
func loadConfig(configPath, logPath, dbPath string, recent int) (*config.Config, error) {
	cfg := config.Default()
	if configPath != "" {
		loaded, err := config.LoadFromFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	}
	if logPath != "" {
		cfg.Log.Path = logPath
	}
	if dbPath != "" {
		cfg.Journal.Enabled = true
		cfg.Journal.DBPath = dbPath
	}
	if recent > 0 {
		cfg.Report.Recent = recent
	}
	return cfg, nil
}

func runReport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(reportConfigPath, reportLogPath, reportDBPath, reportRecent)
	if err != nil {
		return err
	}

	series, err := botlog.ParseFile(cfg.Log.Path)
	if err != nil {
		return fmt.Errorf("parse log: %w", err)
	}

	sum, err := stats.Compute(series.Account)
	if err != nil {
		return fmt.Errorf("compute stats: %w", err)
	}
	if sum == nil {
		return fmt.Errorf("no account data found in %s", cfg.Log.Path)
	}

	report.Print(os.Stdout, series, sum, cfg.Report.Markets, cfg.Report.Recent)

	if cfg.Journal.Enabled {
		if err := recordRun(cfg, series, sum); err != nil {
			return fmt.Errorf("journal run: %w", err)
		}
	}
	return nil
}

func recordRun(cfg *config.Config, series *botlog.Series, sum *stats.Summary) error {
	j, err := journal.NewSQLite(cfg.Journal.DBPath)
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer j.Close()

	rec := journal.RunRecord{
		RunID:           id.New(),
		Created:         time.Now().UTC(),
		LogPath:         cfg.Log.Path,
		MarketRows:      len(series.Market),
		TransactionRows: len(series.Transactions),
		AccountRows:     len(series.Account),
		CurrentPnL:      sum.CurrentPnL,
		MaxPnL:          sum.MaxPnL,
		MinPnL:          sum.MinPnL,
		PnLRange:        sum.PnLRange,
		TotalCycles:     sum.TotalCycles,
		RuntimeHours:    sum.RuntimeHours,
	}
	if err := j.RecordRun(rec); err != nil {
		return err
	}

	fmt.Printf("Recorded run %s in %s\n", rec.RunID, cfg.Journal.DBPath)
	return nil
}
