package metric

import (
	"math"

	"github.com/raykavin/momentum/pkg/core"
	"github.com/samber/lo"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary describes an indicator series after its warm-up
type Summary struct {
	Count       int     // values after the warm-up
	Warmup      int     // leading zeros skipped
	Mean        float64
	StdDev      float64
	Min         float64
	Max         float64
	Last        float64
	Positive    float64 // share of values above zero
	Crossovers  int     // upward zero crossings
	Crossunders int     // downward zero crossings
}

// Warmup counts the leading zeros of a series
func Warmup(values []float64) int {
	for i, v := range values {
		if v != 0 {
			return i
		}
	}
	return len(values)
}

// Summarize computes descriptive statistics of values, ignoring the
// zero-filled warm-up at its head.
func Summarize(values []float64) Summary {
	warmup := Warmup(values)
	active := values[warmup:]

	summary := Summary{Count: len(active), Warmup: warmup}
	if len(active) == 0 {
		return summary
	}

	summary.Mean, summary.StdDev = stat.MeanStdDev(active, nil)
	if len(active) == 1 {
		summary.StdDev = 0
	}
	summary.Min = floats.Min(active)
	summary.Max = floats.Max(active)
	summary.Last = active[len(active)-1]
	summary.Positive = float64(lo.CountBy(active, func(v float64) bool { return v > 0 })) / float64(len(active))

	zero := core.Series[float64]{0, 0}
	for i := 1; i < len(active); i++ {
		window := core.Series[float64]{active[i-1], active[i]}
		switch {
		case window.Crossover(zero):
			summary.Crossovers++
		case window.Crossunder(zero):
			summary.Crossunders++
		}
	}

	if math.IsNaN(summary.StdDev) {
		summary.StdDev = 0
	}

	return summary
}
