package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "momentum",
		Short:        "Momentum indicators over historical candles",
		Version:      "1.0.0",
		SilenceUsage: true,
	}

	rootCmd.AddCommand(buildCalcCmd(), buildBatchCmd(), buildDownloadCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
