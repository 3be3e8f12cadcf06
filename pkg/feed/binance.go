package feed

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/adshao/go-binance/v2"
	"github.com/jpillora/backoff"
	"github.com/raykavin/momentum/pkg/core"
	"github.com/raykavin/momentum/pkg/logger"
)

const defaultKlineLimit = 500

// BinanceOption configures a BinanceFeed
type BinanceOption func(*BinanceFeed)

// WithBinanceCredentials sets the API key pair. Public klines work without it.
func WithBinanceCredentials(key, secret string) BinanceOption {
	return func(b *BinanceFeed) {
		b.client = binance.NewClient(key, secret)
	}
}

// WithKlineLimit sets how many closed candles are requested
func WithKlineLimit(limit int) BinanceOption {
	return func(b *BinanceFeed) {
		if limit > 0 {
			b.limit = limit
		}
	}
}

// WithRetries sets how many times a failed request is retried
func WithRetries(retries int) BinanceOption {
	return func(b *BinanceFeed) {
		if retries >= 0 {
			b.retries = retries
		}
	}
}

// WithBinanceLogger sets the logger used to report retries
func WithBinanceLogger(log logger.Logger) BinanceOption {
	return func(b *BinanceFeed) {
		if log != nil {
			b.log = log
		}
	}
}

// BinanceFeed downloads spot klines from Binance
type BinanceFeed struct {
	client  *binance.Client
	limit   int
	retries int
	log     logger.Logger
}

var _ Source = (*BinanceFeed)(nil)

// NewBinanceFeed creates a feed backed by the public Binance spot API
func NewBinanceFeed(options ...BinanceOption) *BinanceFeed {
	b := &BinanceFeed{
		client:  binance.NewClient("", ""),
		limit:   defaultKlineLimit,
		retries: 3,
		log:     logger.Nop{},
	}

	for _, option := range options {
		option(b)
	}

	return b
}

// Candles implements Source. The still open candle Binance returns last is
// dropped.
func (b *BinanceFeed) Candles(ctx context.Context, pair, timeframe string) ([]core.Candle, error) {
	retry := setupBackoffRetry()

	for {
		data, err := b.client.NewKlinesService().
			Symbol(pair).
			Interval(timeframe).
			Limit(b.limit + 1).
			Do(ctx)
		if err == nil {
			return closedCandles(pair, data)
		}

		if int(retry.Attempt()) >= b.retries {
			return nil, fmt.Errorf("binance klines %s %s: %w", pair, timeframe, err)
		}

		wait := retry.Duration()
		b.log.WithError(err).
			WithField("pair", pair).
			Warnf("klines request failed, retrying in %s", wait)

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(wait):
		}
	}
}

func setupBackoffRetry() *backoff.Backoff {
	return &backoff.Backoff{
		Min:    100 * time.Millisecond,
		Max:    time.Second,
		Factor: 2,
	}
}

func closedCandles(pair string, data []*binance.Kline) ([]core.Candle, error) {
	if len(data) < 2 {
		return nil, fmt.Errorf("%w: %s", ErrInsufficientData, pair)
	}

	candles := make([]core.Candle, 0, len(data)-1)
	for _, k := range data[:len(data)-1] {
		candle, err := klineToCandle(pair, *k)
		if err != nil {
			return nil, err
		}
		candles = append(candles, candle)
	}

	return candles, nil
}

func klineToCandle(pair string, k binance.Kline) (core.Candle, error) {
	candle := core.Candle{
		Pair:     pair,
		Time:     time.UnixMilli(k.OpenTime).UTC(),
		Complete: true,
	}

	values := []struct {
		raw string
		dst *float64
	}{
		{k.Open, &candle.Open},
		{k.Close, &candle.Close},
		{k.High, &candle.High},
		{k.Low, &candle.Low},
		{k.Volume, &candle.Volume},
	}

	for _, v := range values {
		var err error
		if *v.dst, err = strconv.ParseFloat(v.raw, 64); err != nil {
			return core.Candle{}, fmt.Errorf("kline %d: %w", k.OpenTime, err)
		}
	}

	return candle, nil
}
