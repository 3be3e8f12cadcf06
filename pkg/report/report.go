package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/aybabtme/uniplot/histogram"
	"github.com/olekukonko/tablewriter"
	"github.com/raykavin/momentum/pkg/metric"
)

// Row is one computed indicator ready for display
type Row struct {
	Pair      string
	Timeframe string
	Indicator string
	Values    []float64
	Summary   metric.Summary
	Interval  metric.Interval
}

// NewRow summarizes values and bootstraps a confidence interval of their mean
func NewRow(pair, timeframe, indicator string, values []float64, rounds int) Row {
	summary := metric.Summarize(values)
	active := values[summary.Warmup:]

	return Row{
		Pair:      pair,
		Timeframe: timeframe,
		Indicator: indicator,
		Values:    values,
		Summary:   summary,
		Interval:  metric.Bootstrap(active, metric.Mean, rounds, 0.95, nil),
	}
}

// Table writes rows as a text table
func Table(w io.Writer, rows []Row) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Pair", "TF", "Indicator", "N", "Warm-up", "Last", "Mean", "Std", "Min", "Max", "% Pos", "X↑", "X↓", "Mean CI 95%"})
	table.SetAlignment(tablewriter.ALIGN_RIGHT)

	for _, row := range rows {
		s := row.Summary
		table.Append([]string{
			row.Pair,
			row.Timeframe,
			row.Indicator,
			strconv.Itoa(s.Count),
			strconv.Itoa(s.Warmup),
			fmt.Sprintf("%.4f", s.Last),
			fmt.Sprintf("%.4f", s.Mean),
			fmt.Sprintf("%.4f", s.StdDev),
			fmt.Sprintf("%.4f", s.Min),
			fmt.Sprintf("%.4f", s.Max),
			fmt.Sprintf("%.1f %%", s.Positive*100),
			strconv.Itoa(s.Crossovers),
			strconv.Itoa(s.Crossunders),
			fmt.Sprintf("%.4f ~ %.4f", row.Interval.Lower, row.Interval.Upper),
		})
	}

	table.Render()
}

// Histogram prints the distribution of a row's values after the warm-up
func Histogram(w io.Writer, row Row, bins int) error {
	active := row.Values[row.Summary.Warmup:]
	if len(active) == 0 {
		_, err := fmt.Fprintf(w, "%s: no values\n", row.Indicator)
		return err
	}

	if _, err := fmt.Fprintf(w, "------ %s %s %s -------\n", row.Pair, row.Timeframe, row.Indicator); err != nil {
		return err
	}

	hist := histogram.Hist(bins, active)
	return histogram.Fprint(w, hist, histogram.Linear(10))
}

// Series writes one line per value, index first
func Series(w io.Writer, values []float64) error {
	for i, v := range values {
		if _, err := fmt.Fprintf(w, "%d\t%s\n", i, strconv.FormatFloat(v, 'f', -1, 64)); err != nil {
			return err
		}
	}
	return nil
}
