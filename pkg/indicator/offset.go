package indicator

import (
	"fmt"

	"github.com/raykavin/momentum/pkg/core"
)

// Offset shifts series forward by n samples, zero-filling the head.
// n == 0 returns series as is and negative offsets are rejected.
func Offset(series []float64, n int) ([]float64, error) {
	switch {
	case n < 0:
		return nil, fmt.Errorf("%w: negative offset %d", core.ErrInvalidInput, n)
	case n == 0:
		return series, nil
	default:
		return core.Series[float64](series).Shift(n), nil
	}
}
