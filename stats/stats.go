// stats/stats.go
package stats

import (
	"fmt"

	"github.com/rustyeddy/botwatch/botlog"
)

// Summary is the derived view of one account-state sequence. All values are
// raw numerics; display formatting belongs to the presentation boundary.
type Summary struct {
	CurrentPnL   float64 // unrealizedPnL of the last snapshot
	MaxPnL       float64
	MinPnL       float64
	PnLRange     float64 // MaxPnL - MinPnL
	TotalCycles  int     // snapshot count
	RuntimeHours float64 // last timestamp minus first, in hours
}

// Compute summarizes an account sequence already in file (ascending time)
// order. An empty sequence yields a nil Summary and no error: the extrema
// and last-element reads are undefined without data, and callers decide how
// to present "no data". RuntimeHours is not guarded against a sequence that
// is out of time order.
func Compute(accounts []botlog.AccountRecord) (*Summary, error) {
	if len(accounts) == 0 {
		return nil, nil
	}

	s := &Summary{
		CurrentPnL:  accounts[len(accounts)-1].UnrealizedPnL,
		MaxPnL:      accounts[0].UnrealizedPnL,
		MinPnL:      accounts[0].UnrealizedPnL,
		TotalCycles: len(accounts),
	}
	for _, rec := range accounts[1:] {
		if rec.UnrealizedPnL > s.MaxPnL {
			s.MaxPnL = rec.UnrealizedPnL
		}
		if rec.UnrealizedPnL < s.MinPnL {
			s.MinPnL = rec.UnrealizedPnL
		}
	}
	s.PnLRange = s.MaxPnL - s.MinPnL

	first, err := accounts[0].Time()
	if err != nil {
		return nil, fmt.Errorf("first snapshot timestamp: %w", err)
	}
	last, err := accounts[len(accounts)-1].Time()
	if err != nil {
		return nil, fmt.Errorf("last snapshot timestamp: %w", err)
	}
	s.RuntimeHours = last.Sub(first).Hours()

	return s, nil
}
