package stats

import (
	"testing"

	"github.com/rustyeddy/botwatch/botlog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func acct(ts string, pnl float64) botlog.AccountRecord {
	return botlog.AccountRecord{Timestamp: ts, UnrealizedPnL: pnl}
}

func TestComputeEmptySequence(t *testing.T) {
	t.Parallel()

	sum, err := Compute(nil)
	require.NoError(t, err)
	assert.Nil(t, sum)

	sum, err = Compute([]botlog.AccountRecord{})
	require.NoError(t, err)
	assert.Nil(t, sum)
}

func TestComputeSingleRecord(t *testing.T) {
	t.Parallel()

	sum, err := Compute([]botlog.AccountRecord{acct("2024-01-01 00:00:00.000", 7.5)})
	require.NoError(t, err)
	require.NotNil(t, sum)

	assert.Equal(t, 7.5, sum.CurrentPnL)
	assert.Equal(t, 7.5, sum.MaxPnL)
	assert.Equal(t, 7.5, sum.MinPnL)
	assert.Equal(t, 0.0, sum.PnLRange)
	assert.Equal(t, 1, sum.TotalCycles)
	assert.Equal(t, 0.0, sum.RuntimeHours)
}

func TestComputeTwoRecordsAnHourApart(t *testing.T) {
	t.Parallel()

	sum, err := Compute([]botlog.AccountRecord{
		acct("2024-01-01 00:00:00.000", 10.0),
		acct("2024-01-01 01:00:00.000", 25.0),
	})
	require.NoError(t, err)
	require.NotNil(t, sum)

	assert.Equal(t, 25.0, sum.CurrentPnL)
	assert.Equal(t, 25.0, sum.MaxPnL)
	assert.Equal(t, 10.0, sum.MinPnL)
	assert.Equal(t, 15.0, sum.PnLRange)
	assert.Equal(t, 2, sum.TotalCycles)
	assert.InDelta(t, 1.0, sum.RuntimeHours, 1e-9)
}

// Current is the last value, not the max: extrema and last are independent.
func TestComputeCurrentIsLastNotMax(t *testing.T) {
	t.Parallel()

	sum, err := Compute([]botlog.AccountRecord{
		acct("2024-01-01 00:00:00.000", 5.0),
		acct("2024-01-01 00:30:00.000", 40.0),
		acct("2024-01-01 01:00:00.000", -3.0),
	})
	require.NoError(t, err)

	assert.Equal(t, -3.0, sum.CurrentPnL)
	assert.Equal(t, 40.0, sum.MaxPnL)
	assert.Equal(t, -3.0, sum.MinPnL)
	assert.Equal(t, 43.0, sum.PnLRange)
}

func TestComputeBadTimestamp(t *testing.T) {
	t.Parallel()

	_, err := Compute([]botlog.AccountRecord{acct("short", 1.0)})
	assert.Error(t, err)
}
