package main

import (
	"os"

	"github.com/raykavin/momentum"
	"github.com/raykavin/momentum/internal/batch"
	"github.com/raykavin/momentum/internal/config"
	"github.com/raykavin/momentum/pkg/indicator"
	"github.com/raykavin/momentum/pkg/report"
	"github.com/spf13/cobra"
)

// Command line flags of calc
var (
	calcSource config.SourceConfig
	calcConfig indicator.Config
	calcRaw    bool
	calcBins   int
)

func buildCalcCmd() *cobra.Command {
	calcCmd := &cobra.Command{
		Use:   "calc",
		Short: "Compute a single indicator",
		RunE:  runCalc,
	}

	flags := calcCmd.Flags()
	flags.StringVar(&calcSource.Kind, "source", "csv", "Candle source (csv or binance)")
	flags.StringVarP(&calcSource.File, "file", "f", "", "CSV file with OHLCV candles")
	flags.StringVarP(&calcSource.Pair, "pair", "p", "", "Trading pair (e.g. BTCUSDT)")
	flags.StringVarP(&calcSource.Timeframe, "timeframe", "t", "1h", "Timeframe of the candles")
	flags.StringVar(&calcSource.Resample, "resample", "", "Resample CSV candles to this timeframe")
	flags.StringVar(&calcSource.Window, "window", "", "Keep only the last window of CSV candles (e.g. 30d)")
	flags.IntVar(&calcSource.Limit, "limit", 500, "Number of Binance candles")

	flags.StringVarP(&calcConfig.Kind, "indicator", "i", "", "Indicator (ao, apo, bias, bop, mom, roc, ppo)")
	flags.IntVar(&calcConfig.Fast, "fast", 0, "Fast period")
	flags.IntVar(&calcConfig.Slow, "slow", 0, "Slow period")
	flags.IntVar(&calcConfig.Length, "length", 0, "Period of single period indicators")
	flags.StringVar(&calcConfig.Mode, "mode", "", "Moving average mode (sma, ema, wma)")
	flags.Float64Var(&calcConfig.Scalar, "scalar", 0, "Output scalar")
	flags.IntVar(&calcConfig.Offset, "offset", 0, "Shift the output forward")
	flags.BoolVar(&calcConfig.External, "external", false, "Compute with TA-Lib")

	flags.BoolVar(&calcRaw, "raw", false, "Print every value instead of a summary")
	flags.IntVar(&calcBins, "bins", 15, "Histogram bins")

	_ = calcCmd.MarkFlagRequired("pair")
	_ = calcCmd.MarkFlagRequired("indicator")

	return calcCmd
}

func runCalc(cmd *cobra.Command, _ []string) error {
	app := config.LoadAppConfig()

	df, err := loadDataframe(cmd.Context(), app, calcSource)
	if err != nil {
		return err
	}

	runner := batch.NewRunner(momentum.DefaultLog, batch.WithBackend(indicator.NewTalib()))
	results, err := runner.Run(df, []indicator.Config{calcConfig})
	if err != nil {
		return err
	}

	result := results[0]
	if calcRaw {
		return report.Series(os.Stdout, result.Values)
	}

	timeframe := calcSource.Timeframe
	if calcSource.Kind == "csv" && calcSource.Resample != "" {
		timeframe = calcSource.Resample
	}

	row := report.NewRow(df.Pair, timeframe, result.Label(), result.Values, 10000)
	report.Table(os.Stdout, []report.Row{row})
	return report.Histogram(os.Stdout, row, calcBins)
}
