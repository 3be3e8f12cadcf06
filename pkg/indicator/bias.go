package indicator

import (
	"fmt"

	"github.com/raykavin/momentum/pkg/core"
)

const defaultBiasLength = 26

// Bias measures how far close deviates from its moving average:
// close / MA(close, length) - 1. Positions where the average is zero,
// including the warm-up, are 0.
type Bias struct {
	base
	length int
}

var _ Indicator = (*Bias)(nil)

// NewBias creates a Bias calculator with default length 26
func NewBias(length int, opts ...Option) *Bias {
	length = positiveOr(length, defaultBiasLength)
	return &Bias{
		base:   newBase(KindBias, fmt.Sprintf("BIAS_%d", length), newSettings(opts)),
		length: length,
	}
}

// Length returns the lookback period
func (b *Bias) Length() int { return b.length }

// MaMode returns the moving average mode
func (b *Bias) MaMode() MaMode { return b.mode }

// Params returns the normalized configuration handed to a Backend
func (b *Bias) Params() Params {
	return Params{Length: b.length, Mode: b.mode}
}

// Compute implements Indicator.
func (b *Bias) Compute(df core.Dataframe) ([]float64, error) {
	return b.Calculate(df.Close)
}

// Calculate returns the bias of close against its moving average
func (b *Bias) Calculate(close []float64) ([]float64, error) {
	series, err := VerifySeries(close, b.length)
	if err != nil {
		return nil, err
	}

	if err := b.verifyOffset(); err != nil {
		return nil, err
	}

	params := b.Params()
	if result, handled, err := b.delegate(Inputs{Close: series}, params, len(series), emptyResult); handled {
		return result, err
	}

	ma, err := MA(b.mode, series, b.length)
	if err != nil {
		return nil, err
	}

	return b.finish(biasFromMA(series, ma))
}

func biasFromMA(series, ma []float64) []float64 {
	bias := make([]float64, len(series))
	for i := range series {
		if ma[i] != 0 {
			bias[i] = series[i]/ma[i] - 1
		}
	}
	return bias
}
