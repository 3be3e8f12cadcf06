package indicator

import (
	"fmt"
	"strings"

	"github.com/raykavin/momentum/pkg/core"
	"gonum.org/v1/gonum/floats"
)

// MaMode selects the moving average used by the oscillators
type MaMode int

const (
	ModeSMA MaMode = iota
	ModeEMA
	ModeWMA
)

func (m MaMode) String() string {
	switch m {
	case ModeSMA:
		return "sma"
	case ModeEMA:
		return "ema"
	case ModeWMA:
		return "wma"
	default:
		return fmt.Sprintf("MaMode(%d)", int(m))
	}
}

// ParseMaMode maps "sma", "ema" or "wma" (any case) to a MaMode
func ParseMaMode(s string) (MaMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "sma":
		return ModeSMA, nil
	case "ema":
		return ModeEMA, nil
	case "wma":
		return ModeWMA, nil
	default:
		return 0, fmt.Errorf("%w: unknown moving average mode %q", core.ErrInvalidInput, s)
	}
}

// MA computes the moving average selected by mode
func MA(mode MaMode, series []float64, period int) ([]float64, error) {
	switch mode {
	case ModeSMA:
		return SMA(series, period)
	case ModeEMA:
		return EMA(series, period)
	case ModeWMA:
		return WMA(series, period)
	default:
		return nil, fmt.Errorf("%w: unknown moving average mode %s", core.ErrInvalidInput, mode)
	}
}

func checkPeriod(series []float64, period int) error {
	if period <= 0 || period > len(series) {
		return fmt.Errorf("%w: period %d for series of length %d", core.ErrInvalidInput, period, len(series))
	}
	return nil
}

// SMA calculates the Simple Moving Average. Positions before period-1 are 0.
func SMA(series []float64, period int) ([]float64, error) {
	if err := checkPeriod(series, period); err != nil {
		return nil, err
	}

	result := make([]float64, len(series))
	n := float64(period)

	sum := floats.Sum(series[:period])
	result[period-1] = sum / n
	for i := period; i < len(series); i++ {
		sum += series[i] - series[i-period]
		result[i] = sum / n
	}

	return result, nil
}

// EMA calculates the Exponential Moving Average seeded with the SMA of the
// first period samples. Positions before period-1 are 0.
func EMA(series []float64, period int) ([]float64, error) {
	if err := checkPeriod(series, period); err != nil {
		return nil, err
	}

	result := make([]float64, len(series))
	multiplier := 2.0 / float64(period+1)

	result[period-1] = floats.Sum(series[:period]) / float64(period)
	for i := period; i < len(series); i++ {
		result[i] = (series[i]-result[i-1])*multiplier + result[i-1]
	}

	return result, nil
}

// WMA calculates the linearly Weighted Moving Average: the most recent
// sample weighs period, the oldest in the window weighs 1.
func WMA(series []float64, period int) ([]float64, error) {
	if err := checkPeriod(series, period); err != nil {
		return nil, err
	}

	// weights are oldest first so they line up with series[i-period+1 : i+1]
	weights := make([]float64, period)
	for j := range weights {
		weights[j] = float64(j + 1)
	}
	weightSum := floats.Sum(weights)

	result := make([]float64, len(series))
	for i := period - 1; i < len(series); i++ {
		result[i] = floats.Dot(series[i-period+1:i+1], weights) / weightSum
	}

	return result, nil
}
