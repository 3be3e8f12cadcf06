package indicator

import (
	"fmt"

	"github.com/raykavin/momentum/pkg/core"
)

const (
	defaultAPOFast = 12
	defaultAPOSlow = 26
)

// APO is the Absolute Price Oscillator: MA(close, fast) - MA(close, slow)
type APO struct {
	base
	fast int
	slow int
}

var _ Indicator = (*APO)(nil)

// NewAPO creates an Absolute Price Oscillator with defaults 12 and 26
func NewAPO(fast, slow int, opts ...Option) *APO {
	fast, slow = normalizePeriods(fast, slow, defaultAPOFast, defaultAPOSlow)
	return &APO{
		base: newBase(KindAPO, fmt.Sprintf("APO_%d_%d", fast, slow), newSettings(opts)),
		fast: fast,
		slow: slow,
	}
}

// FastPeriod returns the fast period
func (a *APO) FastPeriod() int { return a.fast }

// SlowPeriod returns the slow period
func (a *APO) SlowPeriod() int { return a.slow }

// MaMode returns the moving average mode
func (a *APO) MaMode() MaMode { return a.mode }

// Params returns the normalized configuration handed to a Backend
func (a *APO) Params() Params {
	return Params{Fast: a.fast, Slow: a.slow, Mode: a.mode}
}

// Compute implements Indicator.
func (a *APO) Compute(df core.Dataframe) ([]float64, error) {
	return a.Calculate(df.Close)
}

// Calculate returns the oscillator for close
func (a *APO) Calculate(close []float64) ([]float64, error) {
	series, err := VerifySeries(close, max(a.fast, a.slow))
	if err != nil {
		return nil, err
	}

	if err := a.verifyOffset(); err != nil {
		return nil, err
	}

	params := a.Params()
	if result, handled, err := a.delegate(Inputs{Close: series}, params, len(series), emptyResult); handled {
		return result, err
	}

	fastMA, err := MA(a.mode, series, a.fast)
	if err != nil {
		return nil, err
	}

	slowMA, err := MA(a.mode, series, a.slow)
	if err != nil {
		return nil, err
	}

	// the oscillator only exists once the slow window is full
	apo := make([]float64, len(series))
	for i := a.slow - 1; i < len(apo); i++ {
		apo[i] = fastMA[i] - slowMA[i]
	}

	return a.finish(apo)
}
