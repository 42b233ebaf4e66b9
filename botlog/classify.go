// botlog/classify.go
package botlog

import (
	"encoding/json"
	"regexp"
	"strconv"
	"strings"
)

// Category markers, tested in this order. First match wins.
const (
	markerMarket  = "Market data processed"
	markerOrder   = "Order placed"
	markerAccount = "Account state"
)

// orderRe pulls side and size out of the order confirmation text. The JSON
// payload on the same line is overlaid afterwards, so a payload that carries
// its own side/size keys overrides the captured values.
var orderRe = regexp.MustCompile(`Order placed: (\w+) (\d+)`)

// Kind tags a classified record.
type Kind int

const (
	KindNone Kind = iota
	KindMarket
	KindTransaction
	KindAccount
)

// SkipReason says why a line produced no record.
type SkipReason int

const (
	SkipNone           SkipReason = iota
	SkipNoJSON                    // no {...} span on the line
	SkipBadJSON                   // span does not decode as a JSON object
	SkipNoOrderPattern            // "Order placed" marker without "side size" text
	SkipNoMarker                  // no recognized category marker
)

func (r SkipReason) String() string {
	switch r {
	case SkipNoJSON:
		return "no json span"
	case SkipBadJSON:
		return "malformed json"
	case SkipNoOrderPattern:
		return "no order pattern"
	case SkipNoMarker:
		return "no marker"
	default:
		return "not skipped"
	}
}

// Result is the outcome of classifying one line: exactly one record pointer
// is set when Kind != KindNone, otherwise Skip holds the reason.
type Result struct {
	Kind        Kind
	Skip        SkipReason
	Market      *MarketRecord
	Transaction *TransactionRecord
	Account     *AccountRecord
}

func skipped(reason SkipReason) Result {
	return Result{Kind: KindNone, Skip: reason}
}

// Classify inspects one raw log line and extracts at most one record.
//
// The timestamp candidate is the first 23 characters, taken blindly (a
// shorter line yields a shorter candidate). The JSON payload is the span
// from the first '{' to the last '}'; a line without a decodable span is
// skipped even when it carries a marker. Marker tests run in fixed priority
// order: market, order, account.
func Classify(line string) Result {
	ts := line
	if len(line) > TimestampLen {
		ts = line[:TimestampLen]
	}

	start := strings.Index(line, "{")
	end := strings.LastIndex(line, "}")
	if start < 0 || end < start {
		return skipped(SkipNoJSON)
	}
	span := []byte(line[start : end+1])

	var payload map[string]any
	if err := json.Unmarshal(span, &payload); err != nil {
		return skipped(SkipBadJSON)
	}

	switch {
	case strings.Contains(line, markerMarket):
		rec := MarketRecord{Timestamp: ts}
		if err := json.Unmarshal(span, &rec); err != nil {
			return skipped(SkipBadJSON)
		}
		rec.Extra = extras(payload, "timestamp", "driftPrice", "kmnoPrice", "spread")
		return Result{Kind: KindMarket, Market: &rec}

	case strings.Contains(line, markerOrder):
		m := orderRe.FindStringSubmatch(line)
		if m == nil {
			return skipped(SkipNoOrderPattern)
		}
		size, err := strconv.Atoi(m[2])
		if err != nil {
			return skipped(SkipNoOrderPattern)
		}
		rec := TransactionRecord{Timestamp: ts, Side: m[1], Size: size}
		if err := json.Unmarshal(span, &rec); err != nil {
			return skipped(SkipBadJSON)
		}
		rec.Extra = extras(payload, "timestamp", "side", "size", "marketIndex")
		return Result{Kind: KindTransaction, Transaction: &rec}

	case strings.Contains(line, markerAccount):
		rec := AccountRecord{Timestamp: ts}
		if err := json.Unmarshal(span, &rec); err != nil {
			return skipped(SkipBadJSON)
		}
		rec.Extra = extras(payload, "timestamp", "unrealizedPnL", "totalCollateral", "freeCollateral")
		return Result{Kind: KindAccount, Account: &rec}
	}

	return skipped(SkipNoMarker)
}

// extras copies payload keys outside the record's fixed core. Returns nil
// when the payload holds nothing but known keys.
func extras(payload map[string]any, known ...string) Fields {
	var out Fields
	for k, v := range payload {
		keep := true
		for _, name := range known {
			if k == name {
				keep = false
				break
			}
		}
		if keep {
			if out == nil {
				out = make(Fields)
			}
			out[k] = v
		}
	}
	return out
}
