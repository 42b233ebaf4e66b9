// web/server.go
package web

import (
	"encoding/json"
	"html/template"
	"log"
	"net/http"

	"github.com/rustyeddy/botwatch/botlog"
	"github.com/rustyeddy/botwatch/report"
	"github.com/rustyeddy/botwatch/stats"
)

// Server renders one parsed log as a dashboard: an HTML overview page, JSON
// endpoints for the three record series, and SVG charts. The log is parsed
// once before the server starts; there is no tailing or re-reading.
type Server struct {
	Addr string

	series  *botlog.Series
	summary *stats.Summary
	names   map[int]string
	recent  int
}

func NewServer(addr string, series *botlog.Series, summary *stats.Summary, names map[int]string, recent int) *Server {
	if addr == "" {
		addr = ":8080"
	}
	if names == nil {
		names = report.DefaultMarketNames
	}
	if recent <= 0 {
		recent = 10
	}
	return &Server{Addr: addr, series: series, summary: summary, names: names, recent: recent}
}

// Handler builds the route table. Split from Serve so tests can drive it
// through httptest.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/", s.handleIndex)
	mux.HandleFunc("/api/summary", s.handleSummary)
	mux.HandleFunc("/api/market", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, s.series.Market)
	})
	mux.HandleFunc("/api/transactions", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, s.series.Transactions)
	})
	mux.HandleFunc("/api/account", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, s.series.Account)
	})

	mux.HandleFunc("/charts/pnl.svg", s.chartPnL)
	mux.HandleFunc("/charts/collateral.svg", s.chartCollateral)
	mux.HandleFunc("/charts/prices.svg", s.chartPrices)
	mux.HandleFunc("/charts/spread.svg", s.chartSpread)

	return mux
}

func (s *Server) Serve() error {
	log.Printf("web: listening on %s", s.Addr)
	return http.ListenAndServe(s.Addr, s.Handler())
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("web: encode response: %v", err)
	}
}

func writeSVG(w http.ResponseWriter, svg []byte) {
	w.Header().Set("Content-Type", "image/svg+xml")
	_, _ = w.Write(svg)
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, report.SummaryStrings(s.summary))
}

func (s *Server) chartPnL(w http.ResponseWriter, r *http.Request) {
	pts := report.AccountPoints(s.series.Account, func(a botlog.AccountRecord) float64 { return a.UnrealizedPnL })
	writeSVG(w, report.LineChart(900, 300, "Unrealized P&L Over Time",
		report.ChartSeries{Label: "P&L", Points: pts}))
}

func (s *Server) chartCollateral(w http.ResponseWriter, r *http.Request) {
	total := report.AccountPoints(s.series.Account, func(a botlog.AccountRecord) float64 { return a.TotalCollateral })
	free := report.AccountPoints(s.series.Account, func(a botlog.AccountRecord) float64 { return a.FreeCollateral })
	writeSVG(w, report.LineChart(900, 300, "Collateral Levels",
		report.ChartSeries{Label: "Total", Color: "#2ca02c", Points: total},
		report.ChartSeries{Label: "Free", Color: "#ff7f0e", Points: free}))
}

func (s *Server) chartPrices(w http.ResponseWriter, r *http.Request) {
	drift := report.MarketPoints(s.series.Market, func(m botlog.MarketRecord) float64 { return m.DriftPrice })
	kmno := report.MarketPoints(s.series.Market, func(m botlog.MarketRecord) float64 { return m.KmnoPrice })
	writeSVG(w, report.LineChart(900, 300, "Asset Prices",
		report.ChartSeries{Label: "DRIFT", Color: "#d62728", Points: drift},
		report.ChartSeries{Label: "KMNO", Color: "#9467bd", Points: kmno}))
}

func (s *Server) chartSpread(w http.ResponseWriter, r *http.Request) {
	pts := report.MarketPoints(s.series.Market, func(m botlog.MarketRecord) float64 { return m.Spread })
	writeSVG(w, report.LineChart(900, 300, "Spread Analysis",
		report.ChartSeries{Label: "Spread", Color: "#e377c2", Points: pts}))
}

type indexTxn struct {
	Timestamp string
	Side      string
	Size      int
	Market    string
}

type indexData struct {
	Keys    []string
	Summary map[string]string
	Recent  []indexTxn
	Markets int
	Txns    int
	Account int
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	data := indexData{
		Keys:    report.SummaryKeys,
		Summary: report.SummaryStrings(s.summary),
		Markets: len(s.series.Market),
		Txns:    len(s.series.Transactions),
		Account: len(s.series.Account),
	}
	for _, t := range report.Recent(s.series.Transactions, s.recent) {
		data.Recent = append(data.Recent, indexTxn{
			Timestamp: t.Timestamp,
			Side:      t.Side,
			Size:      t.Size,
			Market:    report.MarketName(s.names, t.MarketIndex),
		})
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := indexTmpl.Execute(w, data); err != nil {
		log.Printf("web: render index: %v", err)
	}
}

var indexTmpl = template.Must(template.New("index").Parse(`<!doctype html>
<html>
<head>
<title>Trading Bot Performance Dashboard</title>
<style>
body { font-family: sans-serif; margin: 2em; color: #222; }
.metrics { display: flex; gap: 1em; }
.metric { border: 1px solid #ddd; border-radius: 6px; padding: 1em; min-width: 9em; }
.metric .label { color: #777; font-size: 0.8em; }
.metric .value { font-size: 1.3em; margin-top: 0.3em; }
table { border-collapse: collapse; margin-top: 1em; }
td, th { border: 1px solid #ddd; padding: 0.4em 0.8em; text-align: left; }
img { display: block; margin-top: 1.5em; }
</style>
</head>
<body>
<h1>Trading Bot Performance Dashboard</h1>
{{if .Summary}}
<div class="metrics">
{{$s := .Summary}}
{{range .Keys}}<div class="metric"><div class="label">{{.}}</div><div class="value">{{index $s .}}</div></div>
{{end}}
</div>
<img src="/charts/pnl.svg" alt="P&L">
<img src="/charts/collateral.svg" alt="Collateral">
<img src="/charts/prices.svg" alt="Prices">
<img src="/charts/spread.svg" alt="Spread">
<h2>Recent Transactions</h2>
{{if .Recent}}
<table>
<tr><th>Timestamp</th><th>Side</th><th>Size</th><th>Market</th></tr>
{{range .Recent}}<tr><td>{{.Timestamp}}</td><td>{{.Side}}</td><td>{{.Size}}</td><td>{{.Market}}</td></tr>
{{end}}
</table>
{{else}}<p>No transactions found</p>{{end}}
<p>{{.Markets}} market records, {{.Txns}} transactions, {{.Account}} account snapshots.</p>
{{else}}
<p>No data found in bot log.</p>
{{end}}
</body>
</html>
`))
