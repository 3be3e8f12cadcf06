package feed

import (
	"context"
	"errors"
	"time"

	"github.com/raykavin/momentum/pkg/core"
	"github.com/xhit/go-str2duration/v2"
)

// ErrInsufficientData is returned when a source holds no candles for a request
var ErrInsufficientData = errors.New("insufficient data")

// Source provides historical candles, oldest first
type Source interface {
	Candles(ctx context.Context, pair, timeframe string) ([]core.Candle, error)
}

// Dataframe loads candles from src and turns them into columns
func Dataframe(ctx context.Context, src Source, pair, timeframe string) (core.Dataframe, error) {
	candles, err := src.Candles(ctx, pair, timeframe)
	if err != nil {
		return core.Dataframe{}, err
	}
	return core.NewDataframe(pair, candles), nil
}

// ParseDuration understands day and week units ("1d", "2w") on top of
// time.ParseDuration.
func ParseDuration(s string) (time.Duration, error) {
	return str2duration.ParseDuration(s)
}
