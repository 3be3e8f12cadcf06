package main

import (
	"os"

	"github.com/raykavin/momentum"
	"github.com/raykavin/momentum/internal/config"
	"github.com/raykavin/momentum/pkg/feed"
	"github.com/spf13/cobra"
)

// Command line flags of download
var (
	downloadPair      string
	downloadTimeframe string
	downloadLimit     int
	downloadOutput    string
)

func buildDownloadCmd() *cobra.Command {
	downloadCmd := &cobra.Command{
		Use:   "download",
		Short: "Save recent Binance candles as CSV",
		RunE:  runDownload,
	}

	downloadCmd.Flags().StringVarP(&downloadPair, "pair", "p", "", "Trading pair (e.g. BTCUSDT)")
	downloadCmd.Flags().StringVarP(&downloadTimeframe, "timeframe", "t", "1h", "Timeframe (e.g. 1h)")
	downloadCmd.Flags().IntVar(&downloadLimit, "limit", 1000, "Number of closed candles")
	downloadCmd.Flags().StringVarP(&downloadOutput, "output", "o", "", "Output file path (e.g. ./btc.csv)")

	_ = downloadCmd.MarkFlagRequired("pair")
	_ = downloadCmd.MarkFlagRequired("output")

	return downloadCmd
}

func runDownload(cmd *cobra.Command, _ []string) error {
	app := config.LoadAppConfig()

	source := feed.NewBinanceFeed(
		feed.WithBinanceCredentials(app.Binance.APIKey, app.Binance.SecretKey),
		feed.WithKlineLimit(downloadLimit),
		feed.WithRetries(app.Binance.Retries),
		feed.WithBinanceLogger(momentum.DefaultLog),
	)

	candles, err := source.Candles(cmd.Context(), downloadPair, downloadTimeframe)
	if err != nil {
		return err
	}

	file, err := os.Create(downloadOutput)
	if err != nil {
		return err
	}
	defer file.Close()

	if err := feed.WriteCSV(file, candles); err != nil {
		return err
	}

	momentum.DefaultLog.WithFields(map[string]any{
		"pair":    downloadPair,
		"candles": len(candles),
		"output":  downloadOutput,
	}).Info("candles saved")

	return file.Close()
}
