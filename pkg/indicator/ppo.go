package indicator

import (
	"fmt"

	"github.com/raykavin/momentum/pkg/core"
)

const (
	defaultPPOFast   = 12
	defaultPPOSlow   = 26
	defaultPPOScalar = 100.0
)

// PPO is the Percentage Price Oscillator:
// scalar * (MA(close, fast) - MA(close, slow)) / MA(close, slow)
type PPO struct {
	base
	fast   int
	slow   int
	scalar float64
}

var _ Indicator = (*PPO)(nil)

// NewPPO creates a Percentage Price Oscillator with defaults 12, 26 and
// scalar 100.
func NewPPO(fast, slow int, opts ...Option) *PPO {
	s := newSettings(opts)
	fast, slow = normalizePeriods(fast, slow, defaultPPOFast, defaultPPOSlow)
	return &PPO{
		base:   newBase(KindPPO, fmt.Sprintf("PPO_%d_%d", fast, slow), s),
		fast:   fast,
		slow:   slow,
		scalar: nonZeroOr(s.scalar, defaultPPOScalar),
	}
}

// FastPeriod returns the fast period
func (p *PPO) FastPeriod() int { return p.fast }

// SlowPeriod returns the slow period
func (p *PPO) SlowPeriod() int { return p.slow }

// MaMode returns the moving average mode
func (p *PPO) MaMode() MaMode { return p.mode }

// Scalar returns the output multiplier
func (p *PPO) Scalar() float64 { return p.scalar }

// Params returns the normalized configuration handed to a Backend
func (p *PPO) Params() Params {
	return Params{Fast: p.fast, Slow: p.slow, Mode: p.mode, Scalar: p.scalar}
}

// Compute implements Indicator.
func (p *PPO) Compute(df core.Dataframe) ([]float64, error) {
	return p.Calculate(df.Close)
}

// Calculate returns the oscillator for close; positions where the slow
// average is zero are 0.
func (p *PPO) Calculate(close []float64) ([]float64, error) {
	series, err := VerifySeries(close, max(p.fast, p.slow))
	if err != nil {
		return nil, err
	}

	if err := p.verifyOffset(); err != nil {
		return nil, err
	}

	params := p.Params()
	if result, handled, err := p.delegate(Inputs{Close: series}, params, len(series), emptyResult); handled {
		return result, err
	}

	fastMA, err := MA(p.mode, series, p.fast)
	if err != nil {
		return nil, err
	}

	slowMA, err := MA(p.mode, series, p.slow)
	if err != nil {
		return nil, err
	}

	ppo := make([]float64, len(series))
	for i := p.slow - 1; i < len(ppo); i++ {
		if slowMA[i] != 0 {
			ppo[i] = p.scalar * (fastMA[i] - slowMA[i]) / slowMA[i]
		}
	}

	return p.finish(ppo)
}
