package feed

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/adshao/go-binance/v2"
	"github.com/raykavin/momentum/pkg/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const hourly = `time,open,close,low,high,volume
1609459200,10,11,9,12,100
1609462800,11,12,10,13,200
1609466400,12,13,11,14,300
1609470000,13,14,12,15,400
1609473600,14,15,13,16,500
`

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "feed.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestReadCandles(t *testing.T) {
	t.Run("with header", func(t *testing.T) {
		candles, err := ReadCandles(strings.NewReader(hourly), "BTCUSDT")
		require.NoError(t, err)
		require.Len(t, candles, 5)
		assert.Equal(t, "BTCUSDT", candles[0].Pair)
		assert.Equal(t, time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC), candles[0].Time)
		assert.Equal(t, 10.0, candles[0].Open)
		assert.Equal(t, 11.0, candles[0].Close)
		assert.Equal(t, 9.0, candles[0].Low)
		assert.Equal(t, 12.0, candles[0].High)
		assert.Equal(t, 100.0, candles[0].Volume)
	})

	t.Run("custom column order", func(t *testing.T) {
		csv := "high,low,open,close,volume,time\n5,1,2,4,7,1609459200\n"
		candles, err := ReadCandles(strings.NewReader(csv), "ETHUSDT")
		require.NoError(t, err)
		require.Len(t, candles, 1)
		assert.Equal(t, core.Candle{
			Pair: "ETHUSDT", Time: time.Unix(1609459200, 0).UTC(),
			Open: 2, Close: 4, Low: 1, High: 5, Volume: 7, Complete: true,
		}, candles[0])
	})

	t.Run("without header", func(t *testing.T) {
		candles, err := ReadCandles(strings.NewReader("1609459200,1,2,0.5,3,10\n"), "BTCUSDT")
		require.NoError(t, err)
		require.Len(t, candles, 1)
		assert.Equal(t, 2.0, candles[0].Close)
	})

	t.Run("errors", func(t *testing.T) {
		_, err := ReadCandles(strings.NewReader(""), "BTCUSDT")
		assert.ErrorIs(t, err, ErrInsufficientData)

		_, err = ReadCandles(strings.NewReader("time,open\n1,2\n"), "BTCUSDT")
		assert.Error(t, err)

		_, err = ReadCandles(strings.NewReader("1609459200,x,2,0.5,3,10\n"), "BTCUSDT")
		assert.Error(t, err)
	})
}

func TestCSVFeed(t *testing.T) {
	path := writeCSV(t, hourly)

	feed, err := NewCSVFeed("2h", PairFeed{Pair: "BTCUSDT", File: path, Timeframe: "1h"})
	require.NoError(t, err)

	ctx := context.Background()

	t.Run("source timeframe", func(t *testing.T) {
		candles, err := feed.Candles(ctx, "BTCUSDT", "1h")
		require.NoError(t, err)
		assert.Len(t, candles, 5)
	})

	t.Run("resampled", func(t *testing.T) {
		candles, err := feed.Candles(ctx, "BTCUSDT", "2h")
		require.NoError(t, err)
		require.Len(t, candles, 2)

		assert.Equal(t, 10.0, candles[0].Open)
		assert.Equal(t, 12.0, candles[0].Close)
		assert.Equal(t, 9.0, candles[0].Low)
		assert.Equal(t, 13.0, candles[0].High)
		assert.Equal(t, 300.0, candles[0].Volume)
		assert.True(t, candles[0].Complete)

		assert.Equal(t, 14.0, candles[1].Close)
		assert.Equal(t, 700.0, candles[1].Volume)
	})

	t.Run("unknown pair", func(t *testing.T) {
		_, err := feed.Candles(ctx, "ETHUSDT", "1h")
		assert.ErrorIs(t, err, ErrInsufficientData)
	})

	t.Run("dataframe", func(t *testing.T) {
		df, err := Dataframe(ctx, feed, "BTCUSDT", "1h")
		require.NoError(t, err)
		assert.Equal(t, core.Series[float64]{11, 12, 13, 14, 15}, df.Close)
	})

	t.Run("limit", func(t *testing.T) {
		feed.Limit(2 * time.Hour)
		candles, err := feed.Candles(ctx, "BTCUSDT", "1h")
		require.NoError(t, err)
		assert.Len(t, candles, 2)
	})
}

func TestNewCSVFeed_Errors(t *testing.T) {
	_, err := NewCSVFeed("", PairFeed{Pair: "BTCUSDT", File: filepath.Join(t.TempDir(), "missing.csv"), Timeframe: "1h"})
	assert.Error(t, err)

	path := writeCSV(t, hourly)
	_, err = NewCSVFeed("90m", PairFeed{Pair: "BTCUSDT", File: path, Timeframe: "1h"})
	assert.Error(t, err)
}

func TestParseDuration(t *testing.T) {
	d, err := ParseDuration("1d")
	require.NoError(t, err)
	assert.Equal(t, 24*time.Hour, d)

	d, err = ParseDuration("1w")
	require.NoError(t, err)
	assert.Equal(t, 7*24*time.Hour, d)
}

func TestClosedCandles(t *testing.T) {
	data := []*binance.Kline{
		{OpenTime: 1609459200000, Open: "1", Close: "2", High: "3", Low: "0.5", Volume: "10"},
		{OpenTime: 1609462800000, Open: "2", Close: "1", High: "2.5", Low: "1", Volume: "4"},
		{OpenTime: 1609466400000, Open: "1", Close: "1", High: "1", Low: "1", Volume: "0"},
	}

	candles, err := closedCandles("BTCUSDT", data)
	require.NoError(t, err)
	require.Len(t, candles, 2)
	assert.Equal(t, time.Unix(1609459200, 0).UTC(), candles[0].Time)
	assert.Equal(t, 0.5, candles[0].Low)
	assert.Equal(t, 4.0, candles[1].Volume)

	_, err = closedCandles("BTCUSDT", data[:1])
	assert.ErrorIs(t, err, ErrInsufficientData)

	data[0].Open = "nan?"
	_, err = closedCandles("BTCUSDT", data)
	assert.Error(t, err)
}

func TestWriteCSV(t *testing.T) {
	candles, err := ReadCandles(strings.NewReader(hourly), "BTCUSDT")
	require.NoError(t, err)

	var buf strings.Builder
	require.NoError(t, WriteCSV(&buf, candles))
	assert.Equal(t, hourly, buf.String())
}
