package botlog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyMarketLine(t *testing.T) {
	t.Parallel()

	line := `2024-01-01 00:00:00.000 INFO Market data processed {"driftPrice": 1.5, "kmnoPrice": 2.0, "spread": 0.5}`
	res := Classify(line)

	require.Equal(t, KindMarket, res.Kind)
	require.NotNil(t, res.Market)
	assert.Equal(t, "2024-01-01 00:00:00.000", res.Market.Timestamp)
	assert.Equal(t, 1.5, res.Market.DriftPrice)
	assert.Equal(t, 2.0, res.Market.KmnoPrice)
	assert.Equal(t, 0.5, res.Market.Spread)
	assert.Nil(t, res.Market.Extra)
}

func TestClassifyOrderLine(t *testing.T) {
	t.Parallel()

	line := `2024-01-01 00:00:01.000 INFO Order placed: buy 100 {"marketIndex": 30}`
	res := Classify(line)

	require.Equal(t, KindTransaction, res.Kind)
	require.NotNil(t, res.Transaction)
	assert.Equal(t, "2024-01-01 00:00:01.000", res.Transaction.Timestamp)
	assert.Equal(t, "buy", res.Transaction.Side)
	assert.Equal(t, 100, res.Transaction.Size)
	assert.Equal(t, 30, res.Transaction.MarketIndex)
}

func TestClassifyAccountLine(t *testing.T) {
	t.Parallel()

	line := `2024-01-01 00:00:02.000 INFO Account state {"unrealizedPnL": 12.5, "totalCollateral": 1000, "freeCollateral": 900}`
	res := Classify(line)

	require.Equal(t, KindAccount, res.Kind)
	require.NotNil(t, res.Account)
	assert.Equal(t, 12.5, res.Account.UnrealizedPnL)
	assert.Equal(t, 1000.0, res.Account.TotalCollateral)
	assert.Equal(t, 900.0, res.Account.FreeCollateral)
}

func TestClassifySkips(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		line string
		skip SkipReason
	}{
		{
			name: "no json at all",
			line: "garbage line with no JSON at all",
			skip: SkipNoJSON,
		},
		{
			name: "marker but no json",
			line: "2024-01-01 00:00:00.000 INFO Market data processed",
			skip: SkipNoJSON,
		},
		{
			name: "closing brace before opening",
			line: "2024-01-01 00:00:00.000 } Market data processed {",
			skip: SkipNoJSON,
		},
		{
			name: "malformed json",
			line: `2024-01-01 00:00:00.000 INFO Market data processed {"driftPrice": }`,
			skip: SkipBadJSON,
		},
		{
			name: "span covering two json objects",
			line: `2024-01-01 00:00:00.000 INFO Account state {"unrealizedPnL": 1} {"x": 2}`,
			skip: SkipBadJSON,
		},
		{
			name: "order marker without side size text",
			line: `2024-01-01 00:00:02.000 INFO Order placed {"marketIndex": 30}`,
			skip: SkipNoOrderPattern,
		},
		{
			name: "valid json but no marker",
			line: `2024-01-01 00:00:00.000 INFO something else {"a": 1}`,
			skip: SkipNoMarker,
		},
		{
			name: "typed field with wrong json type",
			line: `2024-01-01 00:00:00.000 INFO Market data processed {"driftPrice": "one"}`,
			skip: SkipBadJSON,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			res := Classify(tt.line)
			assert.Equal(t, KindNone, res.Kind)
			assert.Equal(t, tt.skip, res.Skip)
		})
	}
}

// A line matching two markers classifies by the earlier rule only.
func TestClassifyMarkerPriority(t *testing.T) {
	t.Parallel()

	line := `2024-01-01 00:00:00.000 INFO Market data processed after Account state {"driftPrice": 1.0}`
	res := Classify(line)
	assert.Equal(t, KindMarket, res.Kind)
}

// The timestamp slice has no length guard: a short line yields whatever
// prefix remains.
func TestClassifyShortLine(t *testing.T) {
	t.Parallel()

	res := Classify(`Account state {"a": 1}`)
	require.Equal(t, KindAccount, res.Kind)
	assert.Equal(t, `Account state {"a": 1}`, res.Account.Timestamp)
}

// JSON payload keys override the regex-derived side/size and the sliced
// timestamp: literal fields first, JSON overlay second.
func TestClassifyJSONOverridesLiteralFields(t *testing.T) {
	t.Parallel()

	line := `2024-01-01 00:00:01.000 INFO Order placed: buy 100 {"side": "sell", "size": 250, "timestamp": "override"}`
	res := Classify(line)

	require.Equal(t, KindTransaction, res.Kind)
	assert.Equal(t, "sell", res.Transaction.Side)
	assert.Equal(t, 250, res.Transaction.Size)
	assert.Equal(t, "override", res.Transaction.Timestamp)
}

func TestClassifyExtraFields(t *testing.T) {
	t.Parallel()

	line := `2024-01-01 00:00:00.000 INFO Market data processed {"driftPrice": 1.5, "fundingRate": 0.01, "venue": "drift"}`
	res := Classify(line)

	require.Equal(t, KindMarket, res.Kind)
	require.NotNil(t, res.Market.Extra)
	assert.Equal(t, 0.01, res.Market.Extra["fundingRate"])
	assert.Equal(t, "drift", res.Market.Extra["venue"])
	assert.NotContains(t, res.Market.Extra, "driftPrice")
}

func TestParseTimestamp(t *testing.T) {
	t.Parallel()

	ts, err := ParseTimestamp("2024-01-01 12:30:45.678")
	require.NoError(t, err)
	assert.Equal(t, 2024, ts.Year())
	assert.Equal(t, 45, ts.Second())

	_, err = ParseTimestamp("not a timestamp at all!")
	assert.Error(t, err)
}
