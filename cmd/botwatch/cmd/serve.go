package cmd

import (
	"fmt"

	"github.com/rustyeddy/botwatch/botlog"
	"github.com/rustyeddy/botwatch/stats"
	"github.com/rustyeddy/botwatch/web"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the performance dashboard over HTTP",
	Long: `Parse a bot log once and serve the resulting report as a web dashboard:
summary metrics, SVG charts and JSON endpoints for the raw series.

The log is read a single time at startup; restart to pick up new data.

Examples:
  botwatch serve --log bot.log
  botwatch serve --config botwatch.yaml --addr :9090`,
	RunE: runServe,
}

var (
	serveConfigPath string
	serveLogPath    string
	serveAddr       string
)

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVarP(&serveConfigPath, "config", "c", "", "path to config file")
	serveCmd.Flags().StringVarP(&serveLogPath, "log", "l", "", "path to bot log (overrides config)")
	serveCmd.Flags().StringVarP(&serveAddr, "addr", "a", "", "listen address (overrides config)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(serveConfigPath, serveLogPath, "", 0)
	if err != nil {
		return err
	}
	if serveAddr != "" {
		cfg.Web.Addr = serveAddr
	}

	series, err := botlog.ParseFile(cfg.Log.Path)
	if err != nil {
		return fmt.Errorf("parse log: %w", err)
	}

	sum, err := stats.Compute(series.Account)
	if err != nil {
		return fmt.Errorf("compute stats: %w", err)
	}

	s := web.NewServer(cfg.Web.Addr, series, sum, cfg.Report.Markets, cfg.Report.Recent)
	return s.Serve()
}
