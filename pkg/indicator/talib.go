package indicator

import (
	"fmt"

	"github.com/markcheno/go-talib"
	"github.com/raykavin/momentum/pkg/core"
)

// Talib computes indicators with github.com/markcheno/go-talib. Results match
// the native calculators except for BOP, where TA-Lib returns 0 for flat bars
// instead of substituting a unit range.
type Talib struct{}

var _ Backend = Talib{}

// NewTalib returns the TA-Lib backend
func NewTalib() Talib {
	return Talib{}
}

func maType(mode MaMode) (talib.MaType, error) {
	switch mode {
	case ModeSMA:
		return talib.SMA, nil
	case ModeEMA:
		return talib.EMA, nil
	case ModeWMA:
		return talib.WMA, nil
	default:
		return 0, fmt.Errorf("%w: unknown moving average mode %s", core.ErrInvalidInput, mode)
	}
}

// Compute implements Backend.
func (Talib) Compute(kind Kind, in Inputs, p Params) ([]float64, error) {
	switch kind {
	case KindAO:
		if err := VerifyAligned(in.High, in.Low); err != nil {
			return nil, err
		}
		if err := talibPeriods(in.High, p.Fast, p.Slow); err != nil {
			return nil, err
		}
		median := talib.MedPrice(in.High, in.Low)
		fast := talib.Sma(median, p.Fast)
		slow := talib.Sma(median, p.Slow)
		for i := p.Slow - 1; i < len(slow); i++ {
			slow[i] = fast[i] - slow[i]
		}
		return slow, nil

	case KindAPO, KindPPO:
		if err := talibPeriods(in.Close, p.Fast, p.Slow); err != nil {
			return nil, err
		}
		mt, err := maType(p.Mode)
		if err != nil {
			return nil, err
		}
		if kind == KindAPO {
			return talib.Apo(in.Close, p.Fast, p.Slow, mt), nil
		}
		return scale(talib.Ppo(in.Close, p.Fast, p.Slow, mt), p.Scalar/100), nil

	case KindBias:
		if err := talibPeriods(in.Close, p.Length); err != nil {
			return nil, err
		}
		mt, err := maType(p.Mode)
		if err != nil {
			return nil, err
		}
		return biasFromMA(in.Close, talib.Ma(in.Close, p.Length, mt)), nil

	case KindBOP:
		if err := VerifyAligned(in.Open, in.High, in.Low, in.Close); err != nil {
			return nil, err
		}
		return scale(talib.Bop(in.Open, in.High, in.Low, in.Close), p.Scalar), nil

	case KindMOM:
		if err := talibPeriods(in.Close, p.Length); err != nil {
			return nil, err
		}
		return talib.Mom(in.Close, p.Length), nil

	case KindROC:
		if err := talibPeriods(in.Close, p.Length); err != nil {
			return nil, err
		}
		return scale(talib.Roc(in.Close, p.Length), p.Scalar/100), nil

	default:
		return nil, fmt.Errorf("%w: %s", ErrBackendUnavailable, kind)
	}
}

// talibPeriods guards go-talib, which indexes out of range instead of
// failing on short input.
func talibPeriods(series []float64, periods ...int) error {
	for _, period := range periods {
		if err := checkPeriod(series, period); err != nil {
			return err
		}
	}
	return nil
}

func scale(series []float64, factor float64) []float64 {
	if factor == 1 {
		return series
	}
	for i := range series {
		series[i] *= factor
	}
	return series
}
