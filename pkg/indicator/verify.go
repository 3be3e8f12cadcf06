package indicator

import (
	"fmt"

	"github.com/raykavin/momentum/pkg/core"
)

// VerifySeries returns a copy of series when it holds at least minLength
// samples. Empty series are always rejected.
func VerifySeries(series []float64, minLength int) ([]float64, error) {
	if len(series) == 0 {
		return nil, fmt.Errorf("%w: series cannot be empty", core.ErrInvalidInput)
	}

	if len(series) < minLength {
		return nil, fmt.Errorf("%w: series length %d is less than %d", core.ErrInvalidInput, len(series), minLength)
	}

	return core.Series[float64](series).Clone(), nil
}

// VerifyNonEmpty returns a copy of series, failing only when it is empty
func VerifyNonEmpty(series []float64) ([]float64, error) {
	return VerifySeries(series, 1)
}

// VerifyAligned fails when the given series do not share one length
func VerifyAligned(series ...[]float64) error {
	for i := 1; i < len(series); i++ {
		if len(series[i]) != len(series[0]) {
			return fmt.Errorf("%w: series lengths differ (%d != %d)", core.ErrInvalidInput, len(series[i]), len(series[0]))
		}
	}
	return nil
}
