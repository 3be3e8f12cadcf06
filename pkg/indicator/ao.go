package indicator

import (
	"fmt"

	"github.com/raykavin/momentum/pkg/core"
)

const (
	defaultAOFast = 5
	defaultAOSlow = 34
)

// AO is the Awesome Oscillator: SMA(median, fast) - SMA(median, slow) where
// median is (high + low) / 2.
type AO struct {
	base
	fast int
	slow int
}

var _ Indicator = (*AO)(nil)

// NewAO creates an Awesome Oscillator. Non-positive periods fall back to 5
// and 34 and the periods are swapped if fast > slow.
func NewAO(fast, slow int, opts ...Option) *AO {
	fast, slow = normalizePeriods(fast, slow, defaultAOFast, defaultAOSlow)
	return &AO{
		base: newBase(KindAO, fmt.Sprintf("AO_%d_%d", fast, slow), newSettings(opts)),
		fast: fast,
		slow: slow,
	}
}

// FastPeriod returns the fast period
func (a *AO) FastPeriod() int { return a.fast }

// SlowPeriod returns the slow period
func (a *AO) SlowPeriod() int { return a.slow }

// Params returns the normalized configuration handed to a Backend
func (a *AO) Params() Params {
	return Params{Fast: a.fast, Slow: a.slow}
}

// Compute implements Indicator.
func (a *AO) Compute(df core.Dataframe) ([]float64, error) {
	return a.Calculate(df.High, df.Low)
}

// Calculate returns the oscillator for the given high and low series
func (a *AO) Calculate(high, low []float64) ([]float64, error) {
	length := max(a.fast, a.slow)

	high, err := VerifySeries(high, length)
	if err != nil {
		return nil, err
	}

	low, err = VerifySeries(low, length)
	if err != nil {
		return nil, err
	}

	if err := VerifyAligned(high, low); err != nil {
		return nil, err
	}

	if err := a.verifyOffset(); err != nil {
		return nil, err
	}

	params := a.Params()
	if result, handled, err := a.delegate(Inputs{High: high, Low: low}, params, len(high), emptyResult); handled {
		return result, err
	}

	median := make([]float64, len(high))
	for i := range high {
		median[i] = 0.5 * (high[i] + low[i])
	}

	fastSMA, err := SMA(median, a.fast)
	if err != nil {
		return nil, err
	}

	slowSMA, err := SMA(median, a.slow)
	if err != nil {
		return nil, err
	}

	// the oscillator only exists once the slow window is full
	ao := make([]float64, len(median))
	for i := a.slow - 1; i < len(ao); i++ {
		ao[i] = fastSMA[i] - slowSMA[i]
	}

	return a.finish(ao)
}
