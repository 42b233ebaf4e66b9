package botlog

import (
	"compress/gzip"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ulikunitz/xz"
)

const sampleLog = `2024-01-01 00:00:00.000 INFO Market data processed {"driftPrice": 1.5, "kmnoPrice": 2.0, "spread": 0.5}
2024-01-01 00:00:01.000 INFO Order placed: buy 100 {"marketIndex": 30}
garbage line with no JSON at all
2024-01-01 00:00:02.000 INFO Account state {"unrealizedPnL": 10.0, "totalCollateral": 1000, "freeCollateral": 900}
2024-01-01 00:00:03.000 INFO Order placed {"marketIndex": 30}
2024-01-01 00:00:04.000 INFO Order placed: sell 50 {"marketIndex": 28}
2024-01-01 01:00:02.000 INFO Account state {"unrealizedPnL": 25.0, "totalCollateral": 1010, "freeCollateral": 910}
2024-01-01 01:00:03.000 INFO heartbeat {"ok": true}
`

func TestParseReaderPartitionsInOrder(t *testing.T) {
	t.Parallel()

	series, err := ParseReader(strings.NewReader(sampleLog))
	require.NoError(t, err)

	require.Len(t, series.Market, 1)
	require.Len(t, series.Transactions, 2)
	require.Len(t, series.Account, 2)

	// File order is preserved within each category.
	assert.Equal(t, "buy", series.Transactions[0].Side)
	assert.Equal(t, "sell", series.Transactions[1].Side)
	assert.Equal(t, 10.0, series.Account[0].UnrealizedPnL)
	assert.Equal(t, 25.0, series.Account[1].UnrealizedPnL)

	assert.Equal(t, 1, series.Skipped[SkipNoJSON])
	assert.Equal(t, 1, series.Skipped[SkipNoOrderPattern])
	assert.Equal(t, 1, series.Skipped[SkipNoMarker])
	assert.Equal(t, 5, series.Lines())
}

func TestParseReaderEmptyInput(t *testing.T) {
	t.Parallel()

	series, err := ParseReader(strings.NewReader(""))
	require.NoError(t, err)

	assert.Empty(t, series.Market)
	assert.Empty(t, series.Transactions)
	assert.Empty(t, series.Account)
	assert.Equal(t, 0, series.Lines())
}

// A log with no transactions yields an empty transaction sequence, not an
// error.
func TestParseReaderNoTransactions(t *testing.T) {
	t.Parallel()

	log := `2024-01-01 00:00:02.000 INFO Account state {"unrealizedPnL": 1.0}` + "\n"
	series, err := ParseReader(strings.NewReader(log))
	require.NoError(t, err)

	assert.Empty(t, series.Transactions)
	assert.Len(t, series.Account, 1)
}

func TestParseFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "bot.log")
	require.NoError(t, os.WriteFile(path, []byte(sampleLog), 0644))

	series, err := ParseFile(path)
	require.NoError(t, err)
	assert.Len(t, series.Account, 2)
}

func TestParseFileXZ(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "bot.log.xz")
	f, err := os.Create(path)
	require.NoError(t, err)

	xw, err := xz.NewWriter(f)
	require.NoError(t, err)
	_, err = xw.Write([]byte(sampleLog))
	require.NoError(t, err)
	require.NoError(t, xw.Close())
	require.NoError(t, f.Close())

	series, err := ParseFile(path)
	require.NoError(t, err)
	assert.Len(t, series.Market, 1)
	assert.Len(t, series.Transactions, 2)
	assert.Len(t, series.Account, 2)
}

func TestParseFileGzip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "bot.log.gz")
	f, err := os.Create(path)
	require.NoError(t, err)

	zw := gzip.NewWriter(f)
	_, err = zw.Write([]byte(sampleLog))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	require.NoError(t, f.Close())

	series, err := ParseFile(path)
	require.NoError(t, err)
	assert.Len(t, series.Account, 2)
}

func TestParseFileMissing(t *testing.T) {
	t.Parallel()

	_, err := ParseFile(filepath.Join(t.TempDir(), "nope.log"))
	assert.Error(t, err)
}
