// botlog/aggregate.go
package botlog

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ulikunitz/xz"
)

// maxLineBytes bounds a single log line. Bot lines are normally well under
// 1 KiB but the format imposes no limit, so leave generous headroom.
const maxLineBytes = 1024 * 1024

// Series holds everything one aggregation pass produced: the three record
// sequences in file order, plus a count of dropped lines per skip reason.
// Timestamps are the raw 23-character prefixes; resolve them with
// ParseTimestamp (or Record.Time) when instants are needed.
type Series struct {
	Market       []MarketRecord
	Transactions []TransactionRecord
	Account      []AccountRecord
	Skipped      map[SkipReason]int
}

// Lines returns the number of lines that produced a record.
func (s *Series) Lines() int {
	return len(s.Market) + len(s.Transactions) + len(s.Account)
}

// ParseReader runs the classifier over every line of r, in order, and
// partitions the results. Lines that classify as nothing are counted and
// dropped; they are never an error. The only error cases are read failures.
func ParseReader(r io.Reader) (*Series, error) {
	series := &Series{Skipped: make(map[SkipReason]int)}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	for sc.Scan() {
		res := Classify(sc.Text())
		switch res.Kind {
		case KindMarket:
			series.Market = append(series.Market, *res.Market)
		case KindTransaction:
			series.Transactions = append(series.Transactions, *res.Transaction)
		case KindAccount:
			series.Account = append(series.Account, *res.Account)
		default:
			series.Skipped[res.Skip]++
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read log: %w", err)
	}
	return series, nil
}

// ParseFile reads one log file start to end. Files ending in .xz or .gz are
// decompressed transparently; the file is assumed static for the duration
// of the read.
func ParseFile(path string) (*Series, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open log: %w", err)
	}
	defer f.Close()

	var r io.Reader = f
	switch {
	case strings.HasSuffix(path, ".xz"):
		xr, err := xz.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("open xz log: %w", err)
		}
		r = xr
	case strings.HasSuffix(path, ".gz"):
		zr, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("open gzip log: %w", err)
		}
		defer zr.Close()
		r = zr
	}

	return ParseReader(r)
}
