package metric

import (
	"math/rand/v2"
	"sort"

	"github.com/samber/lo"
	"gonum.org/v1/gonum/stat"
)

// Interval is a bootstrap confidence interval for some measure of a series
type Interval struct {
	Lower  float64
	Upper  float64
	Mean   float64
	StdDev float64
}

// Bootstrap resamples values with replacement rounds times, applies measure
// to every resample and returns the central confidence interval of the
// results (confidence 0.95 keeps the 2.5%..97.5% quantiles).
//
// rng may be nil, in which case the global source is used.
func Bootstrap(values []float64, measure func([]float64) float64, rounds int,
	confidence float64, rng *rand.Rand) Interval {

	if len(values) == 0 || rounds <= 0 {
		return Interval{}
	}

	pick := func() float64 { return lo.Sample(values) }
	if rng != nil {
		pick = func() float64 { return values[rng.IntN(len(values))] }
	}

	measured := lo.Times(rounds, func(int) float64 {
		resample := lo.Times(len(values), func(int) float64 { return pick() })
		return measure(resample)
	})
	sort.Float64s(measured)

	tail := 1 - confidence
	mean, stdDev := stat.MeanStdDev(measured, nil)

	return Interval{
		Lower:  stat.Quantile(tail/2, stat.LinInterp, measured, nil),
		Upper:  stat.Quantile(1-tail/2, stat.LinInterp, measured, nil),
		Mean:   mean,
		StdDev: stdDev,
	}
}

// Mean is a measure for Bootstrap
func Mean(values []float64) float64 {
	return stat.Mean(values, nil)
}
