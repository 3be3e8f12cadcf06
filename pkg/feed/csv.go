package feed

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"time"

	"github.com/raykavin/momentum/pkg/core"
	"github.com/samber/lo"
)

// default column order when the file has no header row
var defaultHeaderMap = map[string]int{
	"time": 0, "open": 1, "close": 2, "low": 3, "high": 4, "volume": 5,
}

// PairFeed points a pair at a CSV file recorded in a given timeframe
type PairFeed struct {
	Pair      string
	File      string
	Timeframe string
}

// CSVFeed serves candles read from CSV files, optionally resampled
type CSVFeed struct {
	candles map[string][]core.Candle
}

var _ Source = (*CSVFeed)(nil)

// NewCSVFeed reads every feed and resamples it to targetTimeframe. An empty
// target keeps each feed's own timeframe only.
func NewCSVFeed(targetTimeframe string, feeds ...PairFeed) (*CSVFeed, error) {
	c := &CSVFeed{candles: make(map[string][]core.Candle)}

	for _, feed := range feeds {
		candles, err := readCandlesFromFile(feed)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", feed.File, err)
		}

		c.candles[key(feed.Pair, feed.Timeframe)] = candles

		if targetTimeframe == "" || targetTimeframe == feed.Timeframe {
			continue
		}

		resampled, err := Resample(candles, feed.Timeframe, targetTimeframe)
		if err != nil {
			return nil, err
		}
		c.candles[key(feed.Pair, targetTimeframe)] = resampled
	}

	return c, nil
}

func key(pair, timeframe string) string {
	return fmt.Sprintf("%s--%s", pair, timeframe)
}

// Candles implements Source.
func (c *CSVFeed) Candles(_ context.Context, pair, timeframe string) ([]core.Candle, error) {
	candles := c.candles[key(pair, timeframe)]
	if len(candles) == 0 {
		return nil, fmt.Errorf("%w: %s %s", ErrInsufficientData, pair, timeframe)
	}
	return candles, nil
}

// Limit keeps only the candles within duration of each feed's last candle
func (c *CSVFeed) Limit(duration time.Duration) *CSVFeed {
	for k, candles := range c.candles {
		if len(candles) == 0 {
			continue
		}

		start := candles[len(candles)-1].Time.Add(-duration)
		c.candles[k] = lo.Filter(candles, func(candle core.Candle, _ int) bool {
			return candle.Time.After(start)
		})
	}
	return c
}

func readCandlesFromFile(feed PairFeed) ([]core.Candle, error) {
	f, err := os.Open(feed.File)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return ReadCandles(f, feed.Pair)
}

// ReadCandles parses OHLCV rows. A header row, when present, may order the
// columns freely; otherwise time,open,close,low,high,volume is assumed.
// Time is a unix timestamp in seconds.
func ReadCandles(r io.Reader, pair string) ([]core.Candle, error) {
	lines, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, err
	}

	if len(lines) == 0 {
		return nil, fmt.Errorf("%w: empty csv", ErrInsufficientData)
	}

	headerMap, hasHeader := parseHeaders(lines[0])
	if hasHeader {
		lines = lines[1:]
	}

	for _, column := range []string{"time", "open", "close", "low", "high", "volume"} {
		if _, ok := headerMap[column]; !ok {
			return nil, fmt.Errorf("missing column %q", column)
		}
	}

	candles := make([]core.Candle, 0, len(lines))
	for n, line := range lines {
		candle, err := parseCandle(line, headerMap, pair)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", n+1, err)
		}
		candles = append(candles, candle)
	}

	return candles, nil
}

func parseHeaders(headers []string) (map[string]int, bool) {
	if _, err := strconv.Atoi(headers[0]); err == nil {
		return defaultHeaderMap, false
	}

	headerMap := make(map[string]int, len(headers))
	for index, header := range headers {
		headerMap[header] = index
	}
	return headerMap, true
}

func parseCandle(line []string, headerMap map[string]int, pair string) (core.Candle, error) {
	field := func(name string) (string, error) {
		idx := headerMap[name]
		if idx >= len(line) {
			return "", fmt.Errorf("missing value for %q", name)
		}
		return line[idx], nil
	}

	raw, err := field("time")
	if err != nil {
		return core.Candle{}, err
	}
	timestamp, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return core.Candle{}, err
	}

	candle := core.Candle{
		Pair:     pair,
		Time:     time.Unix(timestamp, 0).UTC(),
		Complete: true,
	}

	targets := []struct {
		name string
		dst  *float64
	}{
		{"open", &candle.Open},
		{"close", &candle.Close},
		{"low", &candle.Low},
		{"high", &candle.High},
		{"volume", &candle.Volume},
	}

	for _, target := range targets {
		raw, err := field(target.name)
		if err != nil {
			return core.Candle{}, err
		}
		if *target.dst, err = strconv.ParseFloat(raw, 64); err != nil {
			return core.Candle{}, err
		}
	}

	return candle, nil
}

// Resample aggregates candles recorded in sourceTimeframe into
// targetTimeframe buckets. Buckets start on UTC boundaries (weeks on
// Sunday); a trailing bucket that is not yet complete is dropped.
func Resample(candles []core.Candle, sourceTimeframe, targetTimeframe string) ([]core.Candle, error) {
	source, err := ParseDuration(sourceTimeframe)
	if err != nil {
		return nil, err
	}

	target, err := ParseDuration(targetTimeframe)
	if err != nil {
		return nil, err
	}

	if target < source || target%source != 0 {
		return nil, fmt.Errorf("cannot resample %s into %s", sourceTimeframe, targetTimeframe)
	}

	var (
		result  []core.Candle
		current core.Candle
		bucket  time.Time
		open    bool
	)

	for _, candle := range candles {
		start := bucketStart(candle.Time, target, targetTimeframe)

		// the first bucket is skipped unless it starts with this candle
		if !open && !start.Equal(candle.Time) {
			continue
		}

		if !open || !start.Equal(bucket) {
			current, bucket, open = candle, start, true
			current.Time = start
			current.Complete = false
		} else {
			current.High = math.Max(current.High, candle.High)
			current.Low = math.Min(current.Low, candle.Low)
			current.Close = candle.Close
			current.Volume += candle.Volume
		}

		if !candle.Time.Add(source).Before(bucket.Add(target)) {
			current.Complete = true
			result = append(result, current)
			open = false
		}
	}

	return result, nil
}

func bucketStart(t time.Time, d time.Duration, timeframe string) time.Time {
	t = t.UTC()
	if timeframe == "1w" {
		day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
		return day.AddDate(0, 0, -int(day.Weekday()))
	}
	return t.Truncate(d)
}

// csv header written by WriteCSV, readable by ReadCandles
var csvHeaders = []string{"time", "open", "close", "low", "high", "volume"}

// WriteCSV writes candles with a header row in the layout ReadCandles expects
func WriteCSV(w io.Writer, candles []core.Candle) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(csvHeaders); err != nil {
		return err
	}

	for _, candle := range candles {
		err := writer.Write([]string{
			strconv.FormatInt(candle.Time.Unix(), 10),
			strconv.FormatFloat(candle.Open, 'f', -1, 64),
			strconv.FormatFloat(candle.Close, 'f', -1, 64),
			strconv.FormatFloat(candle.Low, 'f', -1, 64),
			strconv.FormatFloat(candle.High, 'f', -1, 64),
			strconv.FormatFloat(candle.Volume, 'f', -1, 64),
		})
		if err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}
