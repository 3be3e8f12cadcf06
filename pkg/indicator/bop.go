package indicator

import (
	"github.com/raykavin/momentum/pkg/core"
)

const defaultBOPScalar = 1.0

// BOP is the Balance of Power:
// scalar * NonZeroRange(close, open) / NonZeroRange(high, low)
type BOP struct {
	base
	scalar float64
}

var _ Indicator = (*BOP)(nil)

// NewBOP creates a Balance of Power calculator. A zero scalar becomes 1.
func NewBOP(opts ...Option) *BOP {
	s := newSettings(opts)
	return &BOP{
		base:   newBase(KindBOP, "BOP", s),
		scalar: nonZeroOr(s.scalar, defaultBOPScalar),
	}
}

// Scalar returns the output multiplier
func (b *BOP) Scalar() float64 { return b.scalar }

// Params returns the normalized configuration handed to a Backend
func (b *BOP) Params() Params {
	return Params{Scalar: b.scalar}
}

// Compute implements Indicator.
func (b *BOP) Compute(df core.Dataframe) ([]float64, error) {
	return b.Calculate(df.Open, df.High, df.Low, df.Close)
}

// Calculate returns the balance of power. All four series must be non-empty
// and of equal length. With external computation enabled but unavailable the
// result is zero-filled.
func (b *BOP) Calculate(open, high, low, close []float64) ([]float64, error) {
	verified := make([][]float64, 0, 4)
	for _, series := range [][]float64{open, high, low, close} {
		s, err := VerifyNonEmpty(series)
		if err != nil {
			return nil, err
		}
		verified = append(verified, s)
	}
	open, high, low, close = verified[0], verified[1], verified[2], verified[3]

	if err := VerifyAligned(open, high, low, close); err != nil {
		return nil, err
	}

	if err := b.verifyOffset(); err != nil {
		return nil, err
	}

	in := Inputs{Open: open, High: high, Low: low, Close: close}
	zeros := func() []float64 { return make([]float64, len(close)) }
	if result, handled, err := b.delegate(in, b.Params(), len(close), zeros); handled {
		return result, err
	}

	highLow, err := NonZeroRange(high, low)
	if err != nil {
		return nil, err
	}

	closeOpen, err := NonZeroRange(close, open)
	if err != nil {
		return nil, err
	}

	bop := make([]float64, len(close))
	for i := range bop {
		bop[i] = b.scalar * closeOpen[i] / highLow[i]
	}

	return b.finish(bop)
}
