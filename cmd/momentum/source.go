package main

import (
	"context"
	"fmt"

	"github.com/raykavin/momentum"
	"github.com/raykavin/momentum/internal/config"
	"github.com/raykavin/momentum/pkg/core"
	"github.com/raykavin/momentum/pkg/feed"
)

// loadDataframe reads candles from the configured source
func loadDataframe(ctx context.Context, app *config.AppConfig, src config.SourceConfig) (core.Dataframe, error) {
	timeframe := src.Timeframe

	var source feed.Source
	switch src.Kind {
	case "csv":
		csvFeed, err := feed.NewCSVFeed(src.Resample, feed.PairFeed{
			Pair:      src.Pair,
			File:      src.File,
			Timeframe: src.Timeframe,
		})
		if err != nil {
			return core.Dataframe{}, err
		}

		if src.Window != "" {
			window, err := feed.ParseDuration(src.Window)
			if err != nil {
				return core.Dataframe{}, fmt.Errorf("invalid window: %w", err)
			}
			csvFeed.Limit(window)
		}

		if src.Resample != "" {
			timeframe = src.Resample
		}
		source = csvFeed

	case "binance":
		source = feed.NewBinanceFeed(
			feed.WithBinanceCredentials(app.Binance.APIKey, app.Binance.SecretKey),
			feed.WithKlineLimit(src.Limit),
			feed.WithRetries(app.Binance.Retries),
			feed.WithBinanceLogger(momentum.DefaultLog),
		)

	default:
		return core.Dataframe{}, fmt.Errorf("unknown source %q", src.Kind)
	}

	df, err := feed.Dataframe(ctx, source, src.Pair, timeframe)
	if err != nil {
		return core.Dataframe{}, err
	}

	momentum.DefaultLog.WithFields(map[string]any{
		"pair":      src.Pair,
		"timeframe": timeframe,
		"candles":   df.Len(),
	}).Info("candles loaded")

	return df, nil
}
