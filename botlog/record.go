// botlog/record.go
package botlog

import "time"

// TimestampLen is the width of the timestamp prefix each bot log line
// carries: "YYYY-MM-DD HH:MM:SS.mmm".
const TimestampLen = 23

// TimestampLayout matches the log's timestamp prefix.
const TimestampLayout = "2006-01-02 15:04:05.000"

// ParseTimestamp resolves a raw timestamp prefix into an instant. Records
// keep the raw string as sliced from the line; parsing is the caller's job.
func ParseTimestamp(s string) (time.Time, error) {
	return time.Parse(TimestampLayout, s)
}

// Fields holds JSON payload keys that are not part of a record's fixed core.
type Fields map[string]any

// MarketRecord is one "Market data processed" observation.
type MarketRecord struct {
	Timestamp  string  `json:"timestamp"`
	DriftPrice float64 `json:"driftPrice"`
	KmnoPrice  float64 `json:"kmnoPrice"`
	Spread     float64 `json:"spread"`
	Extra      Fields  `json:"-"`
}

// TransactionRecord is one "Order placed" event. Side and Size come from the
// "Order placed: <side> <size>" text; the line's JSON payload is overlaid
// afterwards and wins on key collision.
type TransactionRecord struct {
	Timestamp   string `json:"timestamp"`
	Side        string `json:"side"`
	Size        int    `json:"size"`
	MarketIndex int    `json:"marketIndex"`
	Extra       Fields `json:"-"`
}

// AccountRecord is one "Account state" snapshot.
type AccountRecord struct {
	Timestamp       string  `json:"timestamp"`
	UnrealizedPnL   float64 `json:"unrealizedPnL"`
	TotalCollateral float64 `json:"totalCollateral"`
	FreeCollateral  float64 `json:"freeCollateral"`
	Extra           Fields  `json:"-"`
}

// Time parses the record's raw timestamp prefix.
func (r MarketRecord) Time() (time.Time, error) { return ParseTimestamp(r.Timestamp) }

// Time parses the record's raw timestamp prefix.
func (r TransactionRecord) Time() (time.Time, error) { return ParseTimestamp(r.Timestamp) }

// Time parses the record's raw timestamp prefix.
func (r AccountRecord) Time() (time.Time, error) { return ParseTimestamp(r.Timestamp) }
