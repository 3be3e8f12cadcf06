package indicator

import (
	"fmt"

	"github.com/raykavin/momentum/pkg/core"
)

const (
	defaultROCLength = 10
	defaultROCScalar = 100.0
)

// ROC is the Rate of Change: scalar * (close[i] - close[i-length]) / close[i-length]
type ROC struct {
	base
	length int
	scalar float64
}

var _ Indicator = (*ROC)(nil)

// NewROC creates a Rate of Change calculator with default length 10 and
// scalar 100 (percent).
func NewROC(length int, opts ...Option) *ROC {
	s := newSettings(opts)
	length = positiveOr(length, defaultROCLength)
	return &ROC{
		base:   newBase(KindROC, fmt.Sprintf("ROC_%d", length), s),
		length: length,
		scalar: nonZeroOr(s.scalar, defaultROCScalar),
	}
}

// Length returns the lookback period
func (r *ROC) Length() int { return r.length }

// Scalar returns the output multiplier
func (r *ROC) Scalar() float64 { return r.scalar }

// Params returns the normalized configuration handed to a Backend
func (r *ROC) Params() Params {
	return Params{Length: r.length, Scalar: r.scalar}
}

// Compute implements Indicator.
func (r *ROC) Compute(df core.Dataframe) ([]float64, error) {
	return r.Calculate(df.Close)
}

// Calculate returns the rate of change of close. A zero reference price
// yields 0 at that position.
func (r *ROC) Calculate(close []float64) ([]float64, error) {
	series, err := VerifySeries(close, r.length)
	if err != nil {
		return nil, err
	}

	if err := r.verifyOffset(); err != nil {
		return nil, err
	}

	params := r.Params()
	if result, handled, err := r.delegate(Inputs{Close: series}, params, len(series), emptyResult); handled {
		return result, err
	}

	roc := make([]float64, len(series))
	for i := r.length; i < len(series); i++ {
		if prev := series[i-r.length]; prev != 0 {
			roc[i] = r.scalar * (series[i] - prev) / prev
		}
	}

	return r.finish(roc)
}
