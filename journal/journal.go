// journal/journal.go
package journal

import "time"

// RunRecord is one report run: which log was analyzed, how many records each
// series produced and the derived P&L summary. The parsed series themselves
// are never stored.
type RunRecord struct {
	RunID   string
	Created time.Time
	LogPath string

	MarketRows      int
	TransactionRows int
	AccountRows     int

	CurrentPnL   float64
	MaxPnL       float64
	MinPnL       float64
	PnLRange     float64
	TotalCycles  int
	RuntimeHours float64
}

type Journal interface {
	RecordRun(RunRecord) error
	Close() error
}
