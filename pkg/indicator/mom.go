package indicator

import (
	"fmt"

	"github.com/raykavin/momentum/pkg/core"
)

const defaultMOMLength = 10

// MOM is the Momentum: close[i] - close[i-length]
type MOM struct {
	base
	length int
}

var _ Indicator = (*MOM)(nil)

// NewMOM creates a Momentum calculator with default length 10
func NewMOM(length int, opts ...Option) *MOM {
	length = positiveOr(length, defaultMOMLength)
	return &MOM{
		base:   newBase(KindMOM, fmt.Sprintf("MOM_%d", length), newSettings(opts)),
		length: length,
	}
}

// Length returns the lookback period
func (m *MOM) Length() int { return m.length }

// Params returns the normalized configuration handed to a Backend
func (m *MOM) Params() Params {
	return Params{Length: m.length}
}

// Compute implements Indicator.
func (m *MOM) Compute(df core.Dataframe) ([]float64, error) {
	return m.Calculate(df.Close)
}

// Calculate returns the momentum of close; the first length values are 0
func (m *MOM) Calculate(close []float64) ([]float64, error) {
	series, err := VerifySeries(close, m.length)
	if err != nil {
		return nil, err
	}

	if err := m.verifyOffset(); err != nil {
		return nil, err
	}

	if result, handled, err := m.delegate(Inputs{Close: series}, m.Params(), len(series), emptyResult); handled {
		return result, err
	}

	mom := make([]float64, len(series))
	for i := m.length; i < len(series); i++ {
		mom[i] = series[i] - series[i-m.length]
	}

	return m.finish(mom)
}
