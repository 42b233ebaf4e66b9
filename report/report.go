// report/report.go
package report

import (
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/rustyeddy/botwatch/botlog"
	"github.com/rustyeddy/botwatch/stats"
)

// DefaultMarketNames maps the bot's perp market indexes to display names.
var DefaultMarketNames = map[int]string{
	30: "DRIFT",
	28: "KMNO",
}

// SummaryKeys is the display order for the summary mapping.
var SummaryKeys = []string{
	"Current P&L",
	"Max P&L",
	"Min P&L",
	"P&L Range",
	"Total Cycles",
	"Runtime (hrs)",
}

// SummaryStrings renders a Summary into the six display metrics. Monetary
// values get four decimals, runtime one. A nil Summary (empty account
// sequence) renders to an empty map.
func SummaryStrings(s *stats.Summary) map[string]string {
	if s == nil {
		return map[string]string{}
	}
	return map[string]string{
		"Current P&L":   fmt.Sprintf("$%.4f", s.CurrentPnL),
		"Max P&L":       fmt.Sprintf("$%.4f", s.MaxPnL),
		"Min P&L":       fmt.Sprintf("$%.4f", s.MinPnL),
		"P&L Range":     fmt.Sprintf("$%.4f", s.PnLRange),
		"Total Cycles":  strconv.Itoa(s.TotalCycles),
		"Runtime (hrs)": fmt.Sprintf("%.1f", s.RuntimeHours),
	}
}

// MarketName resolves a market index to its display name, falling back to
// the bare index for markets the mapping does not know.
func MarketName(names map[int]string, index int) string {
	if name, ok := names[index]; ok {
		return name
	}
	return strconv.Itoa(index)
}

// Recent returns the last n transactions, oldest first.
func Recent(txns []botlog.TransactionRecord, n int) []botlog.TransactionRecord {
	if n <= 0 || len(txns) <= n {
		return txns
	}
	return txns[len(txns)-n:]
}

// DistRow is one side+market bucket of the transaction distribution.
type DistRow struct {
	Side        string
	MarketIndex int
	Count       int
}

// Distribution groups transactions by side and market index. Rows come back
// sorted by market index then side so output is stable.
func Distribution(txns []botlog.TransactionRecord) []DistRow {
	type key struct {
		side  string
		index int
	}
	counts := make(map[key]int)
	for _, t := range txns {
		counts[key{t.Side, t.MarketIndex}]++
	}

	rows := make([]DistRow, 0, len(counts))
	for k, n := range counts {
		rows = append(rows, DistRow{Side: k.side, MarketIndex: k.index, Count: n})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].MarketIndex != rows[j].MarketIndex {
			return rows[i].MarketIndex < rows[j].MarketIndex
		}
		return rows[i].Side < rows[j].Side
	})
	return rows
}

// Print writes the full text report: summary metrics, recent transactions
// and the side/market distribution.
func Print(w io.Writer, series *botlog.Series, sum *stats.Summary, names map[int]string, recent int) {
	if names == nil {
		names = DefaultMarketNames
	}

	fmt.Fprintln(w, "==================================================")
	fmt.Fprintln(w, " Trading Bot Performance")
	fmt.Fprintln(w, "==================================================")

	if sum == nil {
		fmt.Fprintln(w, "No account snapshots found.")
		return
	}

	display := SummaryStrings(sum)
	for _, k := range SummaryKeys {
		fmt.Fprintf(w, "%-14s %s\n", k+":", display[k])
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Records")
	fmt.Fprintln(w, "--------------------------------------------------")
	fmt.Fprintf(w, "Market:        %d\n", len(series.Market))
	fmt.Fprintf(w, "Transactions:  %d\n", len(series.Transactions))
	fmt.Fprintf(w, "Account:       %d\n", len(series.Account))

	if len(series.Transactions) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Recent Transactions (last %d)\n", recent)
		fmt.Fprintln(w, "--------------------------------------------------")
		for _, t := range Recent(series.Transactions, recent) {
			fmt.Fprintf(w, "%s  %-4s %6d  %s\n",
				t.Timestamp, t.Side, t.Size, MarketName(names, t.MarketIndex))
		}

		fmt.Fprintln(w)
		fmt.Fprintln(w, "Transactions by Side & Market")
		fmt.Fprintln(w, "--------------------------------------------------")
		for _, row := range Distribution(series.Transactions) {
			fmt.Fprintf(w, "%-6s %-8s %d\n",
				row.Side, MarketName(names, row.MarketIndex), row.Count)
		}
	}

	if dropped := total(series.Skipped); dropped > 0 {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Skipped lines: %d\n", dropped)
	}

	fmt.Fprintln(w)
}

func total(skipped map[botlog.SkipReason]int) int {
	n := 0
	for _, c := range skipped {
		n += c
	}
	return n
}
