package main

import (
	"os"

	"github.com/raykavin/momentum"
	"github.com/raykavin/momentum/internal/batch"
	"github.com/raykavin/momentum/internal/config"
	"github.com/raykavin/momentum/pkg/indicator"
	"github.com/raykavin/momentum/pkg/report"
	"github.com/raykavin/momentum/pkg/storage"
	"github.com/spf13/cobra"
)

// Command line flags of batch
var (
	batchConfigPath string
	batchPersist    bool
)

func buildBatchCmd() *cobra.Command {
	batchCmd := &cobra.Command{
		Use:   "batch",
		Short: "Compute every indicator listed in a batch file",
		RunE:  runBatch,
	}

	batchCmd.Flags().StringVarP(&batchConfigPath, "config", "c", "", "Batch file (default $MOMENTUM_CONFIG_PATH or ./momentum.yaml)")
	batchCmd.Flags().BoolVar(&batchPersist, "persist", false, "Store results in $MOMENTUM_STORAGE_PATH")

	return batchCmd
}

func runBatch(cmd *cobra.Command, _ []string) error {
	app := config.LoadAppConfig()

	path := app.ConfigPath
	if batchConfigPath != "" {
		path = batchConfigPath
	}

	cfg, err := config.LoadBatch(path, momentum.DefaultLog)
	if err != nil {
		return err
	}

	df, err := loadDataframe(cmd.Context(), app, cfg.Source)
	if err != nil {
		return err
	}

	timeframe := cfg.Source.Timeframe
	if cfg.Source.Kind == "csv" && cfg.Source.Resample != "" {
		timeframe = cfg.Source.Resample
	}

	options := []batch.Option{
		batch.WithBackend(indicator.NewTalib()),
		batch.WithProgress(os.Stderr),
	}

	if cfg.Persist || batchPersist {
		store, err := storage.FromFile(app.StoragePath, momentum.DefaultLog)
		if err != nil {
			return err
		}
		defer store.Close()

		options = append(options, batch.WithSaver(store, timeframe))
	}

	results, err := batch.NewRunner(momentum.DefaultLog, options...).Run(df, cfg.Indicators)
	if err != nil {
		return err
	}

	rows := make([]report.Row, 0, len(results))
	for _, result := range results {
		rows = append(rows, report.NewRow(df.Pair, timeframe, result.Label(), result.Values, 1000))
	}

	report.Table(os.Stdout, rows)

	momentum.DefaultLog.WithField("indicators", len(rows)).Info("batch finished")
	return nil
}
